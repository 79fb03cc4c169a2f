// Package config loads the application configuration from environment
// variables, with a .env file as optional local convenience.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// RedisConfig is optional: an empty Host disables the cache and the rate
// limiter, the API still works.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret     string
	JWTIssuer     string
	TokenDuration time.Duration
}

// ConnectionString returns the postgres DSN.
func (c DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Name,
		c.SSLMode,
	)
}

func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

// Load reads configuration from the environment. A .env file is loaded if
// present but its absence is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbConfig, err := loadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("database config: %w", err)
	}

	authConfig, err := loadAuthConfig()
	if err != nil {
		return nil, fmt.Errorf("auth config: %w", err)
	}

	redisConfig, err := loadRedisConfig()
	if err != nil {
		return nil, fmt.Errorf("redis config: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Database: dbConfig,
		Redis:    redisConfig,
		Auth:     authConfig,
	}, nil
}

func loadDatabaseConfig() (DatabaseConfig, error) {
	config := DatabaseConfig{
		Host:     getEnvOrDefault("DB_HOST", "localhost"),
		Port:     getEnvOrDefault("DB_PORT", "5432"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
		SSLMode:  getEnvOrDefault("DB_SSL_MODE", "disable"),
	}

	if config.User == "" {
		return config, errors.New("DB_USER is required")
	}
	if config.Password == "" {
		return config, errors.New("DB_PASSWORD is required")
	}
	if config.Name == "" {
		return config, errors.New("DB_NAME is required")
	}

	return config, nil
}

func loadRedisConfig() (RedisConfig, error) {
	config := RedisConfig{
		Host:     os.Getenv("REDIS_HOST"),
		Port:     getEnvOrDefault("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}

	if raw := os.Getenv("REDIS_DB"); raw != "" {
		db, err := strconv.Atoi(raw)
		if err != nil {
			return config, fmt.Errorf("REDIS_DB must be a number: %w", err)
		}
		config.DB = db
	}

	return config, nil
}

func loadAuthConfig() (AuthConfig, error) {
	config := AuthConfig{
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTIssuer:     getEnvOrDefault("JWT_ISSUER", "skymning"),
		TokenDuration: 24 * time.Hour,
	}

	if config.JWTSecret == "" {
		return config, errors.New("JWT_SECRET is required")
	}

	if raw := os.Getenv("JWT_TOKEN_DURATION"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return config, fmt.Errorf("JWT_TOKEN_DURATION must be a duration like 24h: %w", err)
		}
		config.TokenDuration = d
	}

	return config, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
