package db

import (
	"fmt"

	"github.com/YourGothDaddy/fitness-tracker-sub000/entity"
	"github.com/YourGothDaddy/fitness-tracker-sub000/logger"
	"github.com/YourGothDaddy/fitness-tracker-sub000/model"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the PostgreSQL connection
func InitDB(c *entity.Config) error {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.PostgresConfig.Host, c.PostgresConfig.User, c.PostgresConfig.Password,
		c.PostgresConfig.DBName, c.PostgresConfig.Port, c.PostgresConfig.SSLMode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("could not connect to database", zap.Error(err))
		return err
	}
	logger.Info("database connection established")
	return nil
}

// Migrate runs the schema migration for every model the service owns.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&model.User{},
		&model.UserProfile{},
		&model.ActivityLevel{},
		&model.NutrientDefinition{},
		&model.UserNutrientTarget{},
		&model.ConsumableItem{},
		&model.ItemNutrient{},
		&model.MealEntry{},
		&model.MealComponent{},
		&model.ComponentNutrient{},
		&model.ActivityType{},
		&model.ActivityExercise{},
		&model.MetEntry{},
		&model.TerrainOption{},
		&model.ActivityRecord{},
	)
}

func Close() {
	sqlDB, err := DB.DB()
	if err != nil {
		logger.Error("failed to retrieve sql.DB", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("error closing the database connection", zap.Error(err))
	}
}

func GetDBInstance() *gorm.DB {
	return DB
}
