package connector

import (
	"encoding/json"
	"sort"

	"github.com/keboola/go-utils/pkg/orderedmap"
	"github.com/spf13/cast"
)

// Connector states returned by the status endpoint.
const (
	StateRunning = "RUNNING"
	StatePaused  = "PAUSED"
)

// PlaceholderSecret is the sentinel the service returns instead of a
// secret value. It must never be sent back in a create request.
const PlaceholderSecret = "****************"

// Config is a flat key -> value connector configuration.
// Keys keep their original order, values are opaque JSON scalars.
type Config struct {
	data *orderedmap.OrderedMap
}

func NewConfig() *Config {
	return &Config{data: orderedmap.New()}
}

func ConfigFromMap(m map[string]any) *Config {
	c := NewConfig()
	for _, key := range sortedKeys(m) {
		c.Set(key, m[key])
	}
	return c
}

func (c *Config) UnmarshalJSON(data []byte) error {
	c.data = orderedmap.New()
	return json.Unmarshal(data, c.data)
}

func (c *Config) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.data)
}

func (c *Config) Len() int {
	return c.data.Len()
}

func (c *Config) Keys() []string {
	return c.data.Keys()
}

func (c *Config) Has(key string) bool {
	_, found := c.data.Get(key)
	return found
}

func (c *Config) Get(key string) (any, bool) {
	return c.data.Get(key)
}

// GetString returns the value converted to its string form, eg. a JSON
// number 2 is returned as "2".
func (c *Config) GetString(key string) string {
	value, found := c.data.Get(key)
	if !found {
		return ""
	}
	return cast.ToString(value)
}

func (c *Config) Set(key string, value any) {
	c.data.Set(key, value)
}

func (c *Config) Delete(key string) {
	c.data.Delete(key)
}

// Clone returns a deep copy, the original is never mutated through it.
func (c *Config) Clone() *Config {
	return &Config{data: c.data.Clone()}
}

// String returns the configuration as indented JSON, for operator review.
func (c *Config) String() string {
	out, err := json.MarshalIndent(c.data, "", "    ")
	if err != nil {
		panic(err)
	}
	return string(out)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	// Deterministic order for configs built from plain maps (tests)
	sort.Strings(keys)
	return keys
}

// Offsets is the progress-tracking state of the source connector.
// It is copied verbatim to the new connector and never interpreted.
type Offsets = json.RawMessage
