package main

import (
	"fmt"

	"sitebuilder-be/internal/config"
	"sitebuilder-be/internal/model"
	"sitebuilder-be/pkg/database"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	dsnFlag string
	logSQL  bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "cmsctl",
	Short: "Operator tooling for the site builder backend",
	Long: `cmsctl runs maintenance tasks against the site builder database:
schema migration, demo content seeding, SMTP checks and event tailing.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		if dsnFlag != "" {
			cfg.Database.Connection = dsnFlag
		}
		if logSQL {
			cfg.Database.LogSQL = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dsnFlag, "dsn", "", "database connection string (overrides DB_CONNECTION_STRING)")
	rootCmd.PersistentFlags().BoolVar(&logSQL, "log-sql", false, "print executed SQL")

	rootCmd.AddCommand(migrateCmd, seedCmd, testEmailCmd, eventsCmd)
}

// openDB connects and brings the schema up to date.
func openDB() (*gorm.DB, error) {
	db, err := database.NewGormDBWithLogLevel(cfg.Database.Connection, cfg.Database.LogSQL)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := database.Migrate(db, model.All()...); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}
