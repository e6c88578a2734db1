// Package config loads process configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the server and scheduler.
type Config struct {
	AppEnv   string
	HTTPPort string
	LogLevel string

	DatabaseURL string

	// RedisAddr enables the distributed generation lock when set.
	RedisAddr     string
	RedisPassword string

	JWTSecret string

	// GenerationHour/Minute is the local wall-clock time the nightly
	// generation fires, shortly after midnight by default.
	GenerationHour   int
	GenerationMinute int

	// Timezone is the business timezone used to truncate record dates.
	Timezone string

	ShutdownTimeout time.Duration
}

// Load reads configuration from the environment, consulting a local .env
// file first when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppEnv:           getenv("APP_ENV", "development"),
		HTTPPort:         getenv("APP_PORT", "8080"),
		LogLevel:         getenv("LOG_LEVEL", "info"),
		DatabaseURL:      getenv("DATABASE_URL", ""),
		RedisAddr:        getenv("REDIS_ADDR", ""),
		RedisPassword:    getenv("REDIS_PASSWORD", ""),
		JWTSecret:        getenv("JWT_SECRET", "change-me-in-production"),
		GenerationHour:   getenvInt("GENERATION_HOUR", 0),
		GenerationMinute: getenvInt("GENERATION_MINUTE", 5),
		Timezone:         getenv("APP_TIMEZONE", "Asia/Seoul"),
		ShutdownTimeout:  getenvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
	}
}

// Location resolves the configured business timezone, falling back to UTC.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// IsDevelopment reports whether the process runs in development mode.
func (c Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
