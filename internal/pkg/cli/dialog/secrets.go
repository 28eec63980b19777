package dialog

import (
	"encoding/json"
	"os"

	"github.com/ccloud-tools/ccmigrate/internal/pkg/cli/prompt"
	"github.com/ccloud-tools/ccmigrate/internal/pkg/connector"
)

// EnvKeyfilePath optionally points to the GCP service account JSON file.
const EnvKeyfilePath = "GCP_KEYFILE_PATH"

// Keyfile acquisition options.
const (
	keyfileFromPath  = "File path - provide path to a JSON file"
	keyfileFromEnv   = "Environment variable - read path from " + EnvKeyfilePath
	keyfileFromPaste = "Direct input - paste the JSON content"
)

// ResolveSecrets replaces every placeholder value in the config with a
// real value supplied by the operator. The service scrubs secrets from
// the returned config, a placeholder must never be sent back.
func (d *Dialogs) ResolveSecrets(config *connector.Config) error {
	for _, key := range config.Keys() {
		if config.GetString(key) != connector.PlaceholderSecret {
			continue
		}

		if !d.IsInteractive() {
			return validationErrorf(`configuration key "%s" holds a scrubbed secret and no interactive prompt is available`, key)
		}

		var value string
		var ok bool
		if key == "keyfile" {
			value, ok = d.askKeyfile()
		} else {
			value, ok = d.Ask(&prompt.Question{
				Label:     `Please enter the value for "` + key + `"`,
				Validator: prompt.ValueRequired,
				Hidden:    true,
			})
		}
		if !ok {
			return validationErrorf(`no value provided for the scrubbed configuration key "%s"`, key)
		}
		config.Set(key, value)
	}

	return nil
}

// askKeyfile loads the GCP service account keyfile from a path, the
// environment variable, or a direct paste. The content must be valid
// JSON. Falls through to direct input when a source fails.
func (d *Dialogs) askKeyfile() (string, bool) {
	source, ok := d.Select(&prompt.Select{
		Label:       "GCP service account keyfile",
		Description: "Choose how you want to provide the keyfile.",
		Options:     []string{keyfileFromPath, keyfileFromEnv, keyfileFromPaste},
		Default:     keyfileFromPath,
		UseDefault:  true,
	})
	if !ok {
		return "", false
	}

	switch source {
	case keyfileFromEnv:
		path := os.Getenv(EnvKeyfilePath)
		if path == "" {
			d.Printf("%s environment variable is not set.", EnvKeyfilePath)
			return d.askKeyfileContent()
		}
		if content, ok := d.readKeyfile(path); ok {
			return content, true
		}
		return d.askKeyfileContent()
	case keyfileFromPaste:
		return d.askKeyfileContent()
	default:
		path, ok := d.Ask(&prompt.Question{
			Label:     "Path to your GCP service account JSON file",
			Validator: prompt.ValueRequired,
		})
		if !ok {
			return "", false
		}
		if content, ok := d.readKeyfile(path); ok {
			return content, true
		}
		return d.askKeyfileContent()
	}
}

func (d *Dialogs) askKeyfileContent() (string, bool) {
	for {
		content, ok := d.Multiline(&prompt.Question{
			Label: "Paste your GCP service account JSON content",
		})
		if !ok {
			return "", false
		}
		if json.Valid([]byte(content)) {
			return content, true
		}
		d.Printf("Invalid JSON format.")
		if !d.Confirm(&prompt.Confirm{Label: "Try again?", Default: true}) {
			return "", false
		}
	}
}

func (d *Dialogs) readKeyfile(path string) (string, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		d.Printf(`Cannot read keyfile "%s": %s`, path, err)
		return "", false
	}
	if !json.Valid(content) {
		d.Printf(`Keyfile "%s" is not valid JSON.`, path)
		return "", false
	}
	d.Printf(`Keyfile loaded from "%s".`, path)
	return string(content), true
}
