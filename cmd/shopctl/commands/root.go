package commands

import (
	"fmt"
	"os"

	"shop-backoffice/internal/config"
	"shop-backoffice/internal/database"
	"shop-backoffice/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logLevel string

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "shopctl",
	Short: "Operator tooling for the shop back office",
	Long: `shopctl manages the shop back office database with the same
environment configuration (DB_*, .env) as the API server.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (defaults to LOG_LEVEL)")
	rootCmd.AddCommand(migrateCmd)
}

// connect loads configuration and opens the database.
func connect() (database.Service, *zap.Logger, error) {
	cfg := config.Load()
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	log, err := logger.New(cfg.Server.Env, cfg.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.New(cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	return db, log, nil
}
