// internal/config/config.go
package config

import (
	"os"
	"strconv"
	"time"
)

// Env reads an environment variable or returns a default value.
func Env(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// EnvInt parses an environment variable as an integer, else a default value.
func EnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

// EnvDuration parses an environment variable as a time.Duration, else a
// default value.
func EnvDuration(key string, def time.Duration) time.Duration {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}
