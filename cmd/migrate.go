package cmd

import (
	"github.com/spf13/cobra"

	config "project-hub.com/project-hub/internal/configs"
	"project-hub.com/project-hub/internal/logging"
	"project-hub.com/project-hub/internal/migrations"
)

var rollback bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Long:  "Applies every pending schema migration, or rolls back the last one with --rollback",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		database := config.NewDatabaseClient(cfg.DatabaseDriver, cfg.DatabaseDSN)

		if rollback {
			if err := migrations.RollbackLast(database); err != nil {
				return err
			}
			logging.Logger.Info("rolled back last migration")
			return nil
		}

		if err := migrations.Migrate(database); err != nil {
			return err
		}
		logging.Logger.Info("database is up to date")
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&rollback, "rollback", false, "roll back the last applied migration")
	rootCmd.AddCommand(migrateCmd)
}
