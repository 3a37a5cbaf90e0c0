package configs

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	SQLitePath string
	LogLevel   slog.Level
}

// Load reads configuration from the environment. A .env file is applied
// first when present so local runs don't need exported variables.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:       os.Getenv("PORT"),
		SQLitePath: os.Getenv("SQLITE_PATH"),
		LogLevel:   slog.LevelInfo,
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = "social_app.db"
	}
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		cfg.LogLevel = slog.LevelDebug
	case "warn":
		cfg.LogLevel = slog.LevelWarn
	case "error":
		cfg.LogLevel = slog.LevelError
	}
	return cfg
}
