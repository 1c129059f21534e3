package config

import (
	"fmt"
	"os"
)

const (
	apiPortEnvKey       = "API_PORT"
	dbHostEnvKey        = "DB_HOST"
	dbPortEnvKey        = "DB_PORT"
	dbUserEnvKey        = "DB_USER"
	dbPasswordEnvKey    = "DB_PASSWORD"
	dbNameEnvKey        = "DB_NAME"
	sessionSecretEnvKey = "SESSION_SECRET"
	uploadDirEnvKey     = "UPLOAD_DIR"
)

type App struct {
	Port            string
	DBConnectionURL string
	SessionSecret   string
	UploadDir       string
}

// NewApp reads the application configuration from the environment. Every
// variable has a default suitable only for local development.
func NewApp() App {
	dbHost := envOrDefault(dbHostEnvKey, "localhost")
	dbPort := envOrDefault(dbPortEnvKey, "5432")
	dbUser := envOrDefault(dbUserEnvKey, "gallery_user")
	dbPassword := envOrDefault(dbPasswordEnvKey, "gallery_password")
	dbName := envOrDefault(dbNameEnvKey, "gallery")

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName)

	return App{
		Port:            envOrDefault(apiPortEnvKey, "8080"),
		DBConnectionURL: dsn,
		SessionSecret:   envOrDefault(sessionSecretEnvKey, "change-me-in-production"),
		UploadDir:       envOrDefault(uploadDirEnvKey, "./uploads"),
	}
}

func envOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
