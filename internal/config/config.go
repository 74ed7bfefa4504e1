package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Location LocationConfig
	Cron     CronConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Name           string
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// DatabaseConfig selects the storage engine. Engine "sqlite" persists to
// Path; "memory" keeps everything in-process.
type DatabaseConfig struct {
	Engine string
	Path   string
}

// LocationConfig tunes the acquisition fallbacks.
type LocationConfig struct {
	IPEndpoint      string
	NetworkFallback bool
}

type CronConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	// A missing .env is fine; the environment may carry everything.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Name:           getEnv("APP_NAME", "trijoshh-attendance"),
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),
	}

	config.Database = DatabaseConfig{
		Engine: getEnv("DB_ENGINE", "sqlite"),
		Path:   getEnv("DB_PATH", "attendance.db"),
	}

	config.Location = LocationConfig{
		IPEndpoint:      getEnv("IP_LOCATION_ENDPOINT", "https://ipapi.co/json/"),
		NetworkFallback: getEnvBool("IP_LOCATION_FALLBACK", true),
	}

	config.Cron = CronConfig{
		Enabled: getEnvBool("CRON_ENABLED", true),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks configuration consistency
func (c *Config) Validate() error {
	if c.App.Port < 1 || c.App.Port > 65535 {
		return fmt.Errorf("APP_PORT must be between 1 and 65535, got %d", c.App.Port)
	}

	switch c.Database.Engine {
	case "sqlite":
		if c.Database.Path == "" {
			return fmt.Errorf("DB_PATH is required for the sqlite engine")
		}
	case "memory":
	default:
		return fmt.Errorf("unknown DB_ENGINE %q (want sqlite or memory)", c.Database.Engine)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
