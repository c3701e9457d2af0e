package entity

import "time"

type Config struct {
	ServerConfig   ServerConfig   `yaml:"server"`
	PostgresConfig PostgresConfig `yaml:"database"`
	CacheConfig    CacheConfig    `yaml:"cache"`
	JWTSecretKey   []byte         `yaml:"jwt_secret"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type PostgresConfig struct {
	Host     string `yaml:"host"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	Port     string `yaml:"port"`
	SSLMode  string `yaml:"sslmode"`
}

type CacheConfig struct {
	// TTLRaw holds the YAML value ("30s"); yaml.v2 cannot decode duration
	// strings directly, so ReadConfig parses it into TTL.
	TTLRaw string        `yaml:"ttl"`
	TTL    time.Duration `yaml:"-"`
}
