package cli

import (
	"github.com/spf13/cobra"

	"github.com/ccloud-tools/ccmigrate/internal/pkg/mapping"
)

func httpCommand(root *rootCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "http",
		Short: "Migrate an HTTP sink V1 connector to V2",
		Long: "Migrate an HTTP sink V1 connector to the V2 connector.\n\n" +
			"The composite \"http.api.url\" is split into the base URL and\n" +
			"the request path, the remaining keys are renamed to their V2\n" +
			"counterparts and the source offsets are copied.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.runMigration(mapping.HTTP())
		},
	}

	root.options.BindMigrationFlags(cmd.Flags())
	return cmd
}
