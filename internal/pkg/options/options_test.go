package options

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNoRequired(t *testing.T) {
	t.Parallel()
	options := NewOptions()
	assert.Empty(t, options.Validate([]string{}))
}

func TestValidateAllRequired(t *testing.T) {
	t.Parallel()
	options := NewOptions()

	errors := options.Validate([]string{"Connector", "Environment", "Cluster"})
	assert.Equal(t, `- Missing connector. Please use "--connector" flag or ENV variable "CCLOUD_CONNECTOR".
- Missing environment. Please use "--environment" flag or ENV variable "CCLOUD_ENVIRONMENT".
- Missing cluster. Please use "--cluster" flag or ENV variable "CCLOUD_CLUSTER".`, errors)
}

func TestValidateSomeSet(t *testing.T) {
	t.Parallel()
	options := NewOptions()
	options.Connector = "my-sink"

	errors := options.Validate([]string{"Connector", "Environment"})
	assert.Equal(t, `- Missing environment. Please use "--environment" flag or ENV variable "CCLOUD_ENVIRONMENT".`, errors)
}

func TestEnvNamingConvention(t *testing.T) {
	t.Parallel()
	naming := &envNamingConvention{}
	assert.Equal(t, "CCLOUD_BASE_URL", naming.Replace("base-url"))
	assert.Equal(t, "CCLOUD_CONNECTOR", naming.Replace("connector"))
	assert.Equal(t, "CCLOUD_NON_INTERACTIVE", naming.Replace("non-interactive"))
	assert.PanicsWithValue(t, "flag name cannot be empty", func() {
		naming.Replace("")
	})
}

func TestLoadFromFlags(t *testing.T) {
	options := NewOptions()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	options.BindPersistentFlags(flags)
	options.BindMigrationFlags(flags)
	require.NoError(t, flags.Parse([]string{"--connector", "my-sink", "--environment", "env-1", "--verbose"}))

	warnings, err := options.Load(flags)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "my-sink", options.Connector)
	assert.Equal(t, "env-1", options.Environment)
	assert.True(t, options.Verbose)
	assert.Empty(t, options.Cluster)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CCLOUD_CONNECTOR", "env-sink")
	t.Setenv("CCLOUD_CLUSTER", "lkc-env")

	options := NewOptions()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	options.BindPersistentFlags(flags)
	options.BindMigrationFlags(flags)
	require.NoError(t, flags.Parse(nil))

	_, err := options.Load(flags)
	require.NoError(t, err)
	assert.Equal(t, "env-sink", options.Connector)
	assert.Equal(t, "lkc-env", options.Cluster)
}

func TestLoadFlagOverridesEnv(t *testing.T) {
	t.Setenv("CCLOUD_CONNECTOR", "env-sink")

	options := NewOptions()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	options.BindPersistentFlags(flags)
	options.BindMigrationFlags(flags)
	require.NoError(t, flags.Parse([]string{"--connector", "flag-sink"}))

	_, err := options.Load(flags)
	require.NoError(t, err)
	assert.Equal(t, "flag-sink", options.Connector)
}

func TestDump(t *testing.T) {
	t.Parallel()
	options := NewOptions()
	options.Connector = "my-sink"
	options.Verbose = true

	dump := options.Dump()
	assert.Contains(t, dump, "Parsed options: ")
	assert.Contains(t, dump, `Connector: "my-sink"`)
	assert.Contains(t, dump, `Verbose: "true"`)
}

func TestLoadCredentialsFromFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"email":"user@example.com","password":"secret"}`), 0o600))

	options := NewOptions()
	options.CredentialsFile = path

	credentials, err := options.LoadCredentials()
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", credentials.Email)
	assert.Equal(t, "secret", credentials.Password)
}

func TestLoadCredentialsFileNotFound(t *testing.T) {
	t.Parallel()
	options := NewOptions()
	options.CredentialsFile = "/no/such/credentials.json"

	_, err := options.LoadCredentials()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot read credentials file")
}

func TestLoadCredentialsFileInvalidJSON(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o600))

	options := NewOptions()
	options.CredentialsFile = path

	_, err := options.LoadCredentials()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot parse credentials file")
}

func TestLoadCredentialsFileMissingFields(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"email":"user@example.com"}`), 0o600))

	options := NewOptions()
	options.CredentialsFile = path

	_, err := options.LoadCredentials()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `must contain "email" and "password"`)
}

func TestLoadCredentialsFromEnv(t *testing.T) {
	t.Setenv(EnvEmail, "user@example.com")
	t.Setenv(EnvPassword, "secret")

	credentials, err := NewOptions().LoadCredentials()
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", credentials.Email)
	assert.Equal(t, "secret", credentials.Password)
}

func TestLoadCredentialsLegacyEnvFallback(t *testing.T) {
	t.Setenv(EnvEmail, "")
	t.Setenv(EnvPassword, "")
	t.Setenv(EnvEmailLegacy, "legacy@example.com")
	t.Setenv(EnvPasswordLegacy, "legacy-secret")

	credentials, err := NewOptions().LoadCredentials()
	require.NoError(t, err)
	assert.Equal(t, "legacy@example.com", credentials.Email)
	assert.Equal(t, "legacy-secret", credentials.Password)
}

func TestLoadCredentialsNotConfigured(t *testing.T) {
	t.Setenv(EnvEmail, "")
	t.Setenv(EnvPassword, "")
	t.Setenv(EnvEmailLegacy, "")
	t.Setenv(EnvPasswordLegacy, "")

	credentials, err := NewOptions().LoadCredentials()
	require.NoError(t, err)
	assert.True(t, credentials.Empty())
}
