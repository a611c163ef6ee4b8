package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	Port        string
	Environment string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	CORSOrigins []string
	SeedDB      bool
}

// LoadConfig reads the environment with development defaults. main
// loads .env first, so a plain `go run .` works against a local
// postgres without any exported variables.
func LoadConfig() Config {
	return Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("APP_ENV", "development"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBName:      getEnv("DB_NAME", "product_api"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ","),
		SeedDB:      getEnv("SEED_DB", "false") == "true",
	}
}

// DSN builds the postgres connection string shared by the migration
// runner and the ORM session.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
