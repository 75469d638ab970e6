package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Port          string
	GinMode       string
	Database      DatabaseConfig
	Quote         QuoteConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Session       SessionConfig
	AdminUsers    []string
	StartingCash  decimal.Decimal
	TemplatesGlob string
}

type DatabaseConfig struct {
	URL string
}

type QuoteConfig struct {
	APIKey string
	APIURL string
}

type RedisConfig struct {
	Addr string
}

type JWTConfig struct {
	Secret string
}

type SessionConfig struct {
	Secret string
	Secure bool
}

func Load() (*Config, error) {
	godotenv.Load()

	apiKey := os.Getenv("QUOTE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("QUOTE_API_KEY not set")
	}

	startingCash, err := decimal.NewFromString(getEnv("STARTING_CASH", "10000"))
	if err != nil {
		return nil, fmt.Errorf("invalid STARTING_CASH: %w", err)
	}

	adminUsersStr := os.Getenv("ADMIN_USERS")
	adminUsers := []string{}
	if adminUsersStr != "" {
		adminUsers = strings.Split(adminUsersStr, ",")
		for i := range adminUsers {
			adminUsers[i] = strings.TrimSpace(adminUsers[i])
		}
	}

	return &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", "sqlite:finance.db"),
		},
		Quote: QuoteConfig{
			APIKey: apiKey,
			APIURL: getEnv("QUOTE_API_URL", "https://cloud.iexapis.com/stable"),
		},
		Redis: RedisConfig{
			Addr: getEnv("REDIS_ADDR", ""),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", ""),
			Secure: getEnv("SESSION_SECURE", "false") == "true",
		},
		AdminUsers:    adminUsers,
		StartingCash:  startingCash,
		TemplatesGlob: getEnv("TEMPLATES_GLOB", "web/templates/*"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
