// Package mapping declares the migration tables for each connector
// variant: key renames, passthrough sets, unsupported keys, defaults
// and the specialized value rules the transform engine applies.
package mapping

import (
	"github.com/ccloud-tools/ccmigrate/internal/pkg/connector"
)

// Notifier reports a conversion performed or a fallback taken.
type Notifier func(format string, args ...any)

// Conversion rewrites an already mapped value, eg. boolean flag -> enum.
type Conversion struct {
	Key     string
	Convert func(value string, notify Notifier) string
}

// Derived computes a key from the final value of a sibling key.
// It runs after defaults, so it always sees the final value.
type Derived struct {
	Key  string
	From string
	Calc func(finalValue string) string
}

// Default is applied only when the key is still absent.
type Default struct {
	Key   string
	Value string
}

// BreakingChange is surfaced to the operator before migration starts.
type BreakingChange struct {
	Tag  string
	Text string
}

// Variant describes one source -> target connector migration.
type Variant struct {
	Name           string
	ConnectorClass string

	// Constants seed the target config, before any mapping.
	Constants []Default

	// Extract resolves structural keys from the source config.
	// A missing required source field is reported as an error.
	Extract func(source *connector.Config) ([]Default, error)

	// Fields maps source keys to renamed target keys.
	Fields map[string]string

	// Passthrough keys are copied verbatim if present.
	Passthrough []string

	// Unsupported keys never appear in the target config,
	// each has a message explaining the dropped feature.
	Unsupported map[string]string

	// Reserved structural keys, excluded from forward-compat copying.
	Reserved []string

	// Conversions and DerivedKeys are the specialized value rules.
	Conversions []Conversion
	DerivedKeys []Derived

	// Defaults are applied to still-unset keys, in order.
	Defaults []Default

	// NewNameSuffix is the default suffix for the new connector name.
	NewNameSuffix string

	BreakingChanges []BreakingChange
}

// UnsupportedIn returns the unsupported keys present in the config,
// in the config's key order.
func (v *Variant) UnsupportedIn(config *connector.Config) []string {
	var found []string
	for _, key := range config.Keys() {
		if _, ok := v.Unsupported[key]; ok {
			found = append(found, key)
		}
	}
	return found
}

func (v *Variant) IsReserved(key string) bool {
	for _, reserved := range v.Reserved {
		if key == reserved {
			return true
		}
	}
	return false
}

func (v *Variant) IsPassthrough(key string) bool {
	for _, passthrough := range v.Passthrough {
		if key == passthrough {
			return true
		}
	}
	return false
}
