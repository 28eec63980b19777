package cli

import (
	"github.com/spf13/cobra"

	"github.com/ccloud-tools/ccmigrate/internal/pkg/mapping"
)

func bigqueryCommand(root *rootCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bigquery",
		Short: "Migrate a BigQuery legacy sink connector to the Storage Write API sink",
		Long: "Migrate a BigQuery legacy (InsertAll) sink connector to the\n" +
			"Storage Write API sink connector.\n\n" +
			"The source connector's configuration is translated to the new\n" +
			"shape and its offsets are copied, so ingestion resumes where\n" +
			"the legacy connector stopped.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.runMigration(mapping.BigQuery())
		},
	}

	root.options.BindMigrationFlags(cmd.Flags())
	return cmd
}
