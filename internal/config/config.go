// internal/config/config.go
package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database struct {
		Host       string `json:"host"`
		Port       string `json:"port"`
		User       string `json:"user"`
		Password   string `json:"password"`
		Name       string `json:"name"`
		SSLMode    string `json:"sslmode"`
		SearchPath string `json:"schema"`
	} `json:"database"`
	JWT struct {
		Secret       string        `json:"secret"`
		ExpiryPeriod time.Duration `json:"expiry_period"`
	} `json:"jwt"`
	Server struct {
		Port         string        `json:"port"`
		ReadTimeout  time.Duration `json:"read_timeout"`
		WriteTimeout time.Duration `json:"write_timeout"`
	}
	Permify struct {
		Host          string `json:"host"`
		Tenant        string `json:"tenant"`
		SchemaVersion string `json:"schema_version"`
	} `json:"permify"`
	Sendgrid struct {
		APIKey string `json:"api_key"`
		From   string `json:"from"`
	} `json:"sendgrid"`
	SMTP map[string]struct {
		Host     string `json:"host"`
		Port     int    `json:"port"`
		Username string `json:"username"`
		Password string `json:"password"`
		From     string `json:"from"`
	} `json:"smtp"`
	Notify struct {
		AdminEmail string `json:"admin_email"`
	} `json:"notify"`
	Cache struct {
		TTL         time.Duration `json:"ttl"`
		CleanupFreq time.Duration `json:"cleanup_freq"`
	} `json:"cache"`
}

func Load() *Config {
	// A local .env is optional; real deployments set the environment
	// directly.
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded environment from .env")
	}

	cfg := &Config{}

	// Database configuration
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnv("DB_PORT", "5432")
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "")
	cfg.Database.Name = getEnv("DB_NAME", "hrplatform")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.SearchPath = getEnv("DB_SCHEMA", "public")

	// JWT configuration
	cfg.JWT.Secret = getEnv("JWT_SECRET", "your-secret-key")
	cfg.JWT.ExpiryPeriod = time.Hour * 24

	// Permify configuration (optional; role claims decide when unset)
	cfg.Permify.Host = getEnv("PERMIFY_HOST", "")
	cfg.Permify.Tenant = getEnv("PERMIFY_TENANT", "t1")
	cfg.Permify.SchemaVersion = getEnv("PERMIFY_SCHEMA_VERSION", "v1")

	// Sendgrid configuration
	cfg.Sendgrid.APIKey = getEnv("SENDGRID_API_KEY", "")
	cfg.Sendgrid.From = getEnv("SENDGRID_FROM", "")

	// Notification configuration
	cfg.Notify.AdminEmail = getEnv("NOTIFY_ADMIN_EMAIL", "")

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.ReadTimeout = time.Second * 15
	cfg.Server.WriteTimeout = time.Second * 15

	// Cache configuration
	cfg.Cache.TTL = time.Minute * 5
	cfg.Cache.CleanupFreq = time.Minute * 1

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
