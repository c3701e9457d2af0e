package main

import (
	"github.com/YourGothDaddy/fitness-tracker-sub000/db"
	"github.com/YourGothDaddy/fitness-tracker-sub000/logger"
	"github.com/YourGothDaddy/fitness-tracker-sub000/seed"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load reference data (activity levels, nutrient catalog, MET table, starter foods)",
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

		color.Cyan("seeding reference data...")
		if err := seed.Run(db.GetDBInstance()); err != nil {
			color.Red("✗ seeding failed: %v", err)
			return err
		}
		color.Green("✓ reference data loaded")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
