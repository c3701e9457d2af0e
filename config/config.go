// config.go
package config

import (
	"os"
	"time"

	"github.com/YourGothDaddy/fitness-tracker-sub000/entity"
	"github.com/YourGothDaddy/fitness-tracker-sub000/logger"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

const defaultCacheTTL = 30 * time.Second

// ReadConfig reads the configuration from the YAML file. Database credentials
// and the JWT secret can be overridden through the environment (DB_PASSWORD,
// JWT_SECRET), so the YAML file never needs to carry real secrets.
func ReadConfig(filePath string) (*entity.Config, error) {
	var config entity.Config

	data, err := os.ReadFile(filePath)
	if err != nil {
		logger.Error("unable to read config file", zap.Error(err))
		return nil, err
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		logger.Error("unable to unmarshal YAML", zap.Error(err))
		return nil, err
	}

	if v := os.Getenv("DB_PASSWORD"); v != "" {
		config.PostgresConfig.Password = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.JWTSecretKey = []byte(v)
	}
	if config.CacheConfig.TTLRaw != "" {
		ttl, err := time.ParseDuration(config.CacheConfig.TTLRaw)
		if err != nil {
			logger.Error("invalid cache ttl", zap.String("ttl", config.CacheConfig.TTLRaw), zap.Error(err))
			return nil, err
		}
		config.CacheConfig.TTL = ttl
	}
	if config.CacheConfig.TTL <= 0 {
		config.CacheConfig.TTL = defaultCacheTTL
	}
	if config.ServerConfig.Port == "" {
		config.ServerConfig.Port = "8080"
	}

	return &config, nil
}
