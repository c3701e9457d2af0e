package main

import (
	"github.com/YourGothDaddy/fitness-tracker-sub000/db"
	"github.com/YourGothDaddy/fitness-tracker-sub000/logger"
	"github.com/YourGothDaddy/fitness-tracker-sub000/route"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
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

		r := gin.New()
		r.Use(gin.Recovery())
		if err := route.SetupRoutes(r, cfg); err != nil {
			return err
		}

		logger.Info("starting server", zap.String("port", cfg.ServerConfig.Port))
		return r.Run(":" + cfg.ServerConfig.Port)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
