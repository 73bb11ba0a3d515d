package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StorageInMemory = "in-memory"
	StoragePostgres = "postgres"
	StorageMongo    = "mongo"
)

// ServerConfig - настройки HTTP-сервера.
type ServerConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
	JWTSecret      string
}

// DatabaseConfig - выбор и параметры хранилища.
type DatabaseConfig struct {
	Storage       string
	PostgresDSN   string
	MongoURI      string
	MongoDatabase string
}

// Config - полная конфигурация приложения.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Debug    bool
}

// DefaultConfig возвращает конфигурацию по умолчанию.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:           "0.0.0.0",
			Port:           8080,
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Database: DatabaseConfig{
			Storage:       StorageInMemory,
			MongoDatabase: "blog",
		},
	}
}

// Load читает .env (если есть) и переменные окружения поверх значений по умолчанию.
func Load() (*Config, error) {
	// .env не обязателен
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if host := os.Getenv("HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", portStr, err)
		}
		cfg.Server.Port = port
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.Server.AllowedOrigins = strings.Split(origins, ",")
	}
	cfg.Server.JWTSecret = os.Getenv("JWT_SECRET")

	if st := os.Getenv("STORAGE"); st != "" {
		cfg.Database.Storage = st
	}
	cfg.Database.PostgresDSN = os.Getenv("DATABASE_URL")
	cfg.Database.MongoURI = os.Getenv("MONGO_URI")
	if name := os.Getenv("MONGO_DATABASE"); name != "" {
		cfg.Database.MongoDatabase = name
	}

	cfg.Debug = os.Getenv("DEBUG") == "true"

	return cfg, nil
}

// Validate проверяет, что для выбранного хранилища заданы все параметры.
func (c *Config) Validate() error {
	if c.Server.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}
	switch c.Database.Storage {
	case StorageInMemory:
	case StoragePostgres:
		if c.Database.PostgresDSN == "" {
			return fmt.Errorf("DATABASE_URL must be set for postgres storage")
		}
	case StorageMongo:
		if c.Database.MongoURI == "" {
			return fmt.Errorf("MONGO_URI must be set for mongo storage")
		}
	default:
		return fmt.Errorf("unknown storage type %q", c.Database.Storage)
	}
	return nil
}

func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
