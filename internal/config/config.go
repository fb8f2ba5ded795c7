// Package config reads the CLI defaults from the environment and an optional .env file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables understood by memo.
const (
	EnvDir       = "MEMO_DIR"
	EnvAdapter   = "MEMO_ADAPTER"
	EnvRedisAddr = "MEMO_REDIS_ADDR"
	EnvLogLevel  = "MEMO_LOG_LEVEL"
)

type Config struct {
	Dir       string
	Adapter   string
	RedisAddr string
	LogLevel  slog.Level
}

// Load reads .env from the working directory, if present, and then the
// environment. Unset values get defaults; an empty Dir means "resolve at startup".
func Load() (*Config, error) {
	godotenv.Load()

	level, err := parseLevel(getEnv(EnvLogLevel, "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvLogLevel, err)
	}

	return &Config{
		Dir:       getEnv(EnvDir, ""),
		Adapter:   getEnv(EnvAdapter, "fs"),
		RedisAddr: getEnv(EnvRedisAddr, "localhost:6379"),
		LogLevel:  level,
	}, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
