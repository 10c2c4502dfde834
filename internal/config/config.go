package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Static   StaticConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	// Path is the SQLite database file. foreign_keys is forced on via the
	// DSN so the store rejects orders that reference missing rows.
	Path         string
	MaxOpenConns int
}

type StaticConfig struct {
	// Dir holds the browsing UI served at /.
	Dir string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", ":3000"),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Database: DatabaseConfig{
			Path:         getEnv("DB_PATH", "EventTicket.db"),
			MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 1),
		},
		Static: StaticConfig{
			Dir: getEnv("STATIC_DIR", "web"),
		},
	}
}

// DSN builds the SQLite connection string with referential integrity enabled.
func (d DatabaseConfig) DSN() string {
	return "file:" + d.Path + "?_pragma=foreign_keys(1)"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
