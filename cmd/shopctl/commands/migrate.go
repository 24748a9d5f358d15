package commands

import (
	"shop-backoffice/internal/database"

	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Apply or inspect the embedded schema migrations.

Subcommands:
  up      - Apply pending migrations
  down    - Roll back the latest migration
  status  - Show migration status`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, log, err := connect()
		if err != nil {
			return err
		}
		defer db.Close()
		defer log.Sync()

		return database.RunMigrations(db.DB(), log)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the latest migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, log, err := connect()
		if err != nil {
			return err
		}
		defer db.Close()
		defer log.Sync()

		return database.RollbackMigration(db.DB(), log)
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, log, err := connect()
		if err != nil {
			return err
		}
		defer db.Close()
		defer log.Sync()

		return database.GetMigrationStatus(db.DB())
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
}
