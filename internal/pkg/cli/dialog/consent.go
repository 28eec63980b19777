package dialog

import (
	"github.com/fatih/color"

	"github.com/ccloud-tools/ccmigrate/internal/pkg/cli/prompt"
	"github.com/ccloud-tools/ccmigrate/internal/pkg/connector"
	"github.com/ccloud-tools/ccmigrate/internal/pkg/mapping"
)

const docsURL = "https://docs.confluent.io/cloud/current/connectors/cc-gcp-bigquery-storage-sink.html#legacy-to-v2-connector-migration"

// ConfirmBreakingChanges briefs the operator on the breaking API
// changes of the variant. Returns false when the operator declines.
// Variants without breaking changes pass without a prompt.
func (d *Dialogs) ConfirmBreakingChanges(variant *mapping.Variant) bool {
	if len(variant.BreakingChanges) == 0 {
		return true
	}

	d.Printf("%s", color.YellowString("IMPORTANT: BREAKING API CHANGES"))
	d.Printf("The new connector has breaking changes from the legacy API:")
	for _, change := range variant.BreakingChanges {
		d.Printf("  - %s: %s", change.Tag, change.Text)
	}
	d.Printf("")
	d.Printf("Recommendations:")
	d.Printf("  1. Test the migration with a small dataset first.")
	d.Printf("  2. Verify data integrity after migration.")
	d.Printf("  3. Review documentation: %s", docsURL)

	return d.Confirm(&prompt.Confirm{
		Label: "Do you understand these breaking changes and want to proceed?",
	})
}

// ConfirmNotPaused warns that migrating a running connector may
// duplicate data in the target system.
func (d *Dialogs) ConfirmNotPaused(name, state string) bool {
	d.Printf("%s", color.YellowString(`Connector "%s" is not paused, state: %s.`, name, state))
	return d.Confirm(&prompt.Confirm{
		Label: "The connector is not paused. There might be data duplication if you continue. Proceed?",
	})
}

// ConfirmUnsupportedKeys lists the source keys the new connector does
// not support. They are dropped by the migration, the operator must
// acknowledge the loss. Passes silently when there is nothing to drop.
func (d *Dialogs) ConfirmUnsupportedKeys(variant *mapping.Variant, found []string) bool {
	if len(found) == 0 {
		return true
	}

	d.Printf("%s", color.YellowString("UNSUPPORTED CONFIGURATIONS DETECTED"))
	d.Printf("The following configurations are NOT SUPPORTED in the new connector:")
	for _, key := range found {
		d.Printf("  - %s: %s", key, variant.Unsupported[key])
	}
	d.Printf("Impact: these configurations will be ignored during migration.")

	return d.Confirm(&prompt.Confirm{
		Label: "Do you understand that these configurations will not be migrated?",
	})
}

// ConfirmFinalConfig shows the translated configuration for review
// before anything is created remotely.
func (d *Dialogs) ConfirmFinalConfig(config *connector.Config) bool {
	d.Printf("The transformed connector configuration is as follows:")
	d.Printf("%s", config.String())
	return d.Confirm(&prompt.Confirm{
		Label: "Please review the above configuration. Do you want to proceed with creating the connector?",
	})
}
