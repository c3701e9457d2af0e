package main

import (
	"os"

	"github.com/YourGothDaddy/fitness-tracker-sub000/config"
	"github.com/YourGothDaddy/fitness-tracker-sub000/entity"
	"github.com/YourGothDaddy/fitness-tracker-sub000/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "fitness-tracker",
	Short: "Nutrition and energy accounting service",
	Long: `fitness-tracker serves a JSON API for food and activity tracking:
energy budgets, macro targets, exercise calorie estimates, and nutrient
breakdowns, all derived from per-user profiles.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config/development.yaml", "path to the YAML config file")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig initializes logging and reads the config. Every subcommand
// starts here.
func loadConfig() (*entity.Config, error) {
	// A missing .env is fine; the env vars may come from the shell.
	_ = godotenv.Load()

	logger.InitializeLogger()

	cfg, err := config.ReadConfig(configPath)
	if err != nil {
		logger.Error("failed to load config", zap.String("path", configPath), zap.Error(err))
		return nil, err
	}
	return cfg, nil
}
