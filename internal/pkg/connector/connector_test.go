package connector

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigJSONRoundTrip(t *testing.T) {
	t.Parallel()
	in := `{"connector.class":"BigQuerySink","tasks.max":2,"keyfile":"****************"}`

	config := &Config{}
	require.NoError(t, json.Unmarshal([]byte(in), config))

	// Key order from the document is kept
	assert.Equal(t, []string{"connector.class", "tasks.max", "keyfile"}, config.Keys())

	out, err := json.Marshal(config)
	require.NoError(t, err)
	assert.Equal(t, in, string(out))
}

func TestConfigGetString(t *testing.T) {
	t.Parallel()
	config := &Config{}
	require.NoError(t, json.Unmarshal([]byte(`{"tasks.max":2,"name":"my-sink","enabled":true}`), config))

	// JSON scalars are converted to their string form
	assert.Equal(t, "2", config.GetString("tasks.max"))
	assert.Equal(t, "my-sink", config.GetString("name"))
	assert.Equal(t, "true", config.GetString("enabled"))
	assert.Equal(t, "", config.GetString("missing"))
}

func TestConfigSetDelete(t *testing.T) {
	t.Parallel()
	config := NewConfig()
	assert.Equal(t, 0, config.Len())
	assert.False(t, config.Has("key"))

	config.Set("key", "value")
	assert.True(t, config.Has("key"))
	assert.Equal(t, 1, config.Len())

	config.Delete("key")
	assert.False(t, config.Has("key"))
}

func TestConfigClone(t *testing.T) {
	t.Parallel()
	config := ConfigFromMap(map[string]any{"a": "1", "b": "2"})
	clone := config.Clone()
	clone.Set("a", "changed")
	clone.Set("c", "3")

	assert.Equal(t, "1", config.GetString("a"))
	assert.False(t, config.Has("c"))
	assert.Equal(t, "changed", clone.GetString("a"))
}

func TestConfigString(t *testing.T) {
	t.Parallel()
	config := NewConfig()
	config.Set("name", "my-sink")
	config.Set("tasks.max", "1")

	assert.Equal(t, `{
    "name": "my-sink",
    "tasks.max": "1"
}`, config.String())
}
