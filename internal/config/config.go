// Package config provides application configuration loading from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Directory DirectoryConfig
	Messenger MessengerConfig
	Matching  MatchingConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string
	Port string
}

// DatabaseConfig contains PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig contains settings for the notification queue transport.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// DirectoryConfig contains settings for the org directory client.
type DirectoryConfig struct {
	BaseURL string
	Token   string
}

// MessengerConfig contains settings for the bot delivery client.
type MessengerConfig struct {
	BaseURL string
	Token   string
}

// MatchingConfig contains pair-up matching pipeline settings.
type MatchingConfig struct {
	WeeklyCron       string
	MonthlyCron      string
	QueueName        string
	BatchSize        int
	CardTemplatePath string
}

// Load reads configuration from environment variables.
// Returns error if required variables are not set.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbHost, err := getRequiredEnv("DB_HOST")
	if err != nil {
		return nil, err
	}

	dbPort, err := getRequiredEnv("DB_PORT")
	if err != nil {
		return nil, err
	}

	dbUser, err := getRequiredEnv("DB_USER")
	if err != nil {
		return nil, err
	}

	dbPassword, err := getRequiredEnv("DB_PASSWORD")
	if err != nil {
		return nil, err
	}

	dbName, err := getRequiredEnv("DB_NAME")
	if err != nil {
		return nil, err
	}

	redisDB, err := getIntEnv("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	batchSize, err := getIntEnv("MATCHING_BATCH_SIZE", 100)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("SERVER_PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     dbHost,
			Port:     dbPort,
			User:     dbUser,
			Password: dbPassword,
			DBName:   dbName,
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Directory: DirectoryConfig{
			BaseURL: getEnv("DIRECTORY_BASE_URL", "https://graph.microsoft.com/v1.0"),
			Token:   os.Getenv("DIRECTORY_TOKEN"),
		},
		Messenger: MessengerConfig{
			BaseURL: getEnv("MESSENGER_BASE_URL", "https://smba.trafficmanager.net/teams"),
			Token:   os.Getenv("MESSENGER_TOKEN"),
		},
		Matching: MatchingConfig{
			WeeklyCron:       getEnv("MATCHING_WEEKLY_CRON", "0 10 * * 1"),
			MonthlyCron:      getEnv("MATCHING_MONTHLY_CRON", "0 10 1 * *"),
			QueueName:        getEnv("MATCHING_QUEUE_NAME", "pairup-notifications"),
			BatchSize:        batchSize,
			CardTemplatePath: getEnv("CARD_TEMPLATE_PATH", "templates/pairup_card.json.tmpl"),
		},
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// getRequiredEnv reads required environment variable or returns error.
func getRequiredEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return value, nil
}

// getEnv reads an environment variable with a fallback default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnv reads an integer environment variable with a fallback default.
func getIntEnv(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return n, nil
}
