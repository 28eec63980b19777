package cli

import (
	"github.com/spf13/cobra"
)

func statusCommand(root *rootCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print the state of a connector",
		Long: "Print the state of a connector, eg. RUNNING or PAUSED.\n\n" +
			"Useful to verify the source connector is paused before a migration.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := root.ValidateOptions([]string{"Connector", "Environment", "Cluster"}); err != nil {
				return err
			}

			api, err := root.GetApi()
			if err != nil {
				return err
			}

			state, err := api.ConnectorStatus(root.options.Environment, root.options.Cluster, root.options.Connector)
			if err != nil {
				return err
			}

			root.logger.Infof(`Connector status for "%s": %s`, root.options.Connector, state)
			return nil
		},
	}

	root.options.BindMigrationFlags(cmd.Flags())
	return cmd
}
