package options

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ccloud-tools/ccmigrate/internal/pkg/api/connect"
)

// ENV variables with the operator credentials. The short names are the
// original ones, kept for compatibility.
const (
	EnvEmail          = "CCLOUD_EMAIL"
	EnvPassword       = "CCLOUD_PASSWORD"
	EnvEmailLegacy    = "EMAIL"
	EnvPasswordLegacy = "PASSWORD"
)

// LoadCredentials resolves credentials from the credentials file or
// ENV variables, whichever is configured. The two sources are mutually
// exclusive per run, the file wins when both are present. Empty
// credentials are returned when neither source is set, the caller then
// asks the operator.
func (o *Options) LoadCredentials() (connect.Credentials, error) {
	if o.CredentialsFile != "" {
		return credentialsFromFile(o.CredentialsFile)
	}
	return credentialsFromEnv(), nil
}

func credentialsFromFile(path string) (connect.Credentials, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return connect.Credentials{}, fmt.Errorf(`cannot read credentials file "%s": %w`, path, err)
	}

	credentials := connect.Credentials{}
	if err := json.Unmarshal(content, &credentials); err != nil {
		return connect.Credentials{}, fmt.Errorf(`cannot parse credentials file "%s": %w`, path, err)
	}
	if credentials.Empty() {
		return connect.Credentials{}, fmt.Errorf(`credentials file "%s" must contain "email" and "password"`, path)
	}
	return credentials, nil
}

func credentialsFromEnv() connect.Credentials {
	email := os.Getenv(EnvEmail)
	if email == "" {
		email = os.Getenv(EnvEmailLegacy)
	}
	password := os.Getenv(EnvPassword)
	if password == "" {
		password = os.Getenv(EnvPasswordLegacy)
	}
	return connect.Credentials{Email: email, Password: password}
}
