package main

import (
	"github.com/YourGothDaddy/fitness-tracker-sub000/db"
	"github.com/YourGothDaddy/fitness-tracker-sub000/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		defer logger.Close()

		if err := db.InitDB(cfg); err != nil {
			return err
		}
		defer db.Close()

		if err := db.Migrate(db.GetDBInstance()); err != nil {
			logger.Error("migration failed", zap.Error(err))
			return err
		}

		color.Green("✓ schema up to date")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
