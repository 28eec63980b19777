// Package transform translates a legacy/V1 connector configuration to
// the V2 shape, driven by the declarative tables in the mapping package.
package transform

import (
	"fmt"

	"github.com/ccloud-tools/ccmigrate/internal/pkg/connector"
	"github.com/ccloud-tools/ccmigrate/internal/pkg/mapping"
)

// Error means a structural field required by the variant is missing or
// empty in the source configuration.
type Error struct {
	message string
}

func (e *Error) Error() string {
	return e.message
}

// Transform builds a new target configuration from the source one.
// The source is never mutated. Conversion notices are reported through
// notify, which may be nil.
//
// Policy for overlapping rules: a mapped key always wins, passthrough
// and the forward-compatibility copy never overwrite an existing key.
func Transform(source *connector.Config, variant *mapping.Variant, notify mapping.Notifier) (*connector.Config, error) {
	if notify == nil {
		notify = func(format string, args ...any) {}
	}

	// Structural constants
	target := connector.NewConfig()
	target.Set("connector.class", variant.ConnectorClass)
	if tasks, found := source.Get("tasks.max"); found {
		target.Set("tasks.max", tasks)
	} else {
		target.Set("tasks.max", 1)
	}
	for _, constant := range variant.Constants {
		target.Set(constant.Key, constant.Value)
	}

	// Structural extraction, eg. composite URL split
	if variant.Extract != nil {
		extracted, err := variant.Extract(source)
		if err != nil {
			return nil, &Error{message: fmt.Sprintf("cannot transform %s configuration: %s", variant.Name, err)}
		}
		for _, item := range extracted {
			target.Set(item.Key, item.Value)
		}
	}

	// Renamed keys, in source order, so the output order is stable
	for _, sourceKey := range source.Keys() {
		if targetKey, mapped := variant.Fields[sourceKey]; mapped {
			value, _ := source.Get(sourceKey)
			target.Set(targetKey, value)
		}
	}

	// Specialized value conversions
	for _, conversion := range variant.Conversions {
		if target.Has(conversion.Key) {
			target.Set(conversion.Key, conversion.Convert(target.GetString(conversion.Key), notify))
		}
	}

	// Common passthrough, never overwrites a mapped key
	for _, key := range variant.Passthrough {
		if value, found := source.Get(key); found && !target.Has(key) {
			target.Set(key, value)
		}
	}

	// Forward-compatibility: copy unknown keys unchanged
	for _, key := range source.Keys() {
		if _, mapped := variant.Fields[key]; mapped {
			continue
		}
		if variant.IsPassthrough(key) || variant.IsReserved(key) {
			continue
		}
		if _, unsupported := variant.Unsupported[key]; unsupported {
			continue
		}
		if !target.Has(key) {
			value, _ := source.Get(key)
			target.Set(key, value)
		}
	}

	// Defaults for still-unset keys
	ApplyDefaults(target, variant)

	// Keys derived from final values, after defaults
	for _, derived := range variant.DerivedKeys {
		if target.Has(derived.From) {
			target.Set(derived.Key, derived.Calc(target.GetString(derived.From)))
		}
	}

	return target, nil
}

// ApplyDefaults sets each default only if the key is absent, so it is
// idempotent.
func ApplyDefaults(config *connector.Config, variant *mapping.Variant) {
	for _, def := range variant.Defaults {
		if !config.Has(def.Key) {
			config.Set(def.Key, def.Value)
		}
	}
}
