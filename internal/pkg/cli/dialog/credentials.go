package dialog

import (
	"github.com/ccloud-tools/ccmigrate/internal/pkg/api/connect"
	"github.com/ccloud-tools/ccmigrate/internal/pkg/cli/prompt"
)

// AskCredentials prompts for the operator email and password, masked.
// Used only when neither ENV variables nor a credentials file are set.
func (d *Dialogs) AskCredentials() (connect.Credentials, error) {
	if !d.IsInteractive() {
		return connect.Credentials{}, validationErrorf(
			"missing credentials: set %s, or use a credentials file, or run interactively",
			"CCLOUD_EMAIL and CCLOUD_PASSWORD",
		)
	}

	email, ok := d.Ask(&prompt.Question{
		Label:     "Email",
		Validator: prompt.ValueRequired,
	})
	if !ok {
		return connect.Credentials{}, validationErrorf("no email provided")
	}

	password, ok := d.Ask(&prompt.Question{
		Label:     "Password",
		Validator: prompt.ValueRequired,
		Hidden:    true,
	})
	if !ok {
		return connect.Credentials{}, validationErrorf("no password provided")
	}

	return connect.Credentials{Email: email, Password: password}, nil
}
