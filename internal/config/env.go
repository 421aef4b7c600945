package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr  string
	GinMode  string
	LogLevel string

	CatalogPath string
	CatalogDSN  string

	JWTSecret string

	StaffEmail        string
	StaffPasswordHash string
}

// LoadEnv reads configuration from the environment, loading a local .env file
// first when present.
func LoadEnv() Env {
	_ = godotenv.Load()

	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	catalogPath := strings.TrimSpace(os.Getenv("CATALOG_PATH"))
	if catalogPath == "" {
		catalogPath = "data/trips.json"
	}

	jwtSecret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if jwtSecret == "" {
		jwtSecret = "super-secret-key-change-me"
	}

	return Env{
		AppAddr:  appAddr,
		GinMode:  strings.TrimSpace(os.Getenv("GIN_MODE")),
		LogLevel: strings.TrimSpace(os.Getenv("LOG_LEVEL")),

		CatalogPath: catalogPath,
		CatalogDSN:  strings.TrimSpace(os.Getenv("CATALOG_DSN")),

		JWTSecret: jwtSecret,

		StaffEmail:        strings.TrimSpace(os.Getenv("STAFF_EMAIL")),
		StaffPasswordHash: strings.TrimSpace(os.Getenv("STAFF_PASSWORD_HASH")),
	}
}
