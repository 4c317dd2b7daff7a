package cli

import (
	"github.com/spf13/cobra"

	"github.com/BuzzLyutic/plm-api/internal/migrate"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the task and personal_note schema",
	}
	cmd.AddCommand(
		newMigrateSubCmd(migrate.Up, "Apply all pending migrations"),
		newMigrateSubCmd(migrate.Down, "Roll back the latest migration"),
		newMigrateSubCmd(migrate.Status, "Print applied and pending migrations"),
	)
	return cmd
}

func newMigrateSubCmd(c migrate.Command, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(c),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()

			pool, err := openPool(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer pool.Close()

			return migrate.Run(cmd.Context(), pool, logger, c)
		},
	}
}
