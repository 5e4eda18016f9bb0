// Package config provides application configuration management with support for environment variables, command-line flags, and .env files.
package config

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"
)

// Storage driver names.
const (
	DriverLocal  = "local"  // badger key-value store, whole-collection blobs
	DriverSQLite = "sqlite" // embedded relational store
)

// Config holds the application configuration.
type Config struct {
	App     AppConfig
	Logger  LoggerConfig
	Storage StorageConfig
	Server  ServerConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// StorageConfig holds persistence backend configuration.
type StorageConfig struct {
	Driver string // "local" or "sqlite"
	Path   string // data directory (local) or database file (sqlite)
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// LoadConfig loads configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func LoadConfig() (*Config, error) {
	env := flag.String("env", "", "Environment (development, production)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	storageDriver := flag.String("storage-driver", "", "Storage backend (local, sqlite)")
	storagePath := flag.String("storage-path", "", "Data directory (local) or database file (sqlite)")
	serverPort := flag.String("port", "", "Server port (default: 8080)")
	readTimeout := flag.String("read-timeout", "", "HTTP read timeout (default: 15s)")
	writeTimeout := flag.String("write-timeout", "", "HTTP write timeout (default: 15s)")
	idleTimeout := flag.String("idle-timeout", "", "HTTP idle timeout (default: 60s)")
	envFile := flag.String("env-file", ".env", "Path to .env file")
	flag.Parse()

	// Load .env file into the environment (lowest non-default priority).
	if err := loadEnvFile(*envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Environment: firstOf(*env, os.Getenv("SALONBOOK_ENV"), "development"),
		},
		Logger: LoggerConfig{
			Level: firstOf(*logLevel, os.Getenv("SALONBOOK_LOG_LEVEL"), "info"),
		},
		Storage: StorageConfig{
			Driver: firstOf(*storageDriver, os.Getenv("SALONBOOK_STORAGE_DRIVER"), DriverLocal),
			Path:   firstOf(*storagePath, os.Getenv("SALONBOOK_STORAGE_PATH"), "./data"),
		},
		Server: ServerConfig{
			Port:         firstOf(*serverPort, os.Getenv("SALONBOOK_PORT"), "8080"),
			ReadTimeout:  parseDuration(firstOf(*readTimeout, os.Getenv("SALONBOOK_READ_TIMEOUT")), 15*time.Second),
			WriteTimeout: parseDuration(firstOf(*writeTimeout, os.Getenv("SALONBOOK_WRITE_TIMEOUT")), 15*time.Second),
			IdleTimeout:  parseDuration(firstOf(*idleTimeout, os.Getenv("SALONBOOK_IDLE_TIMEOUT")), 60*time.Second),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverLocal, DriverSQLite:
	default:
		return fmt.Errorf("unknown storage driver %q (want %q or %q)", c.Storage.Driver, DriverLocal, DriverSQLite)
	}
	if c.Storage.Path == "" {
		return errors.New("storage path must not be empty")
	}
	return nil
}

// loadEnvFile reads KEY=VALUE lines into the process environment.
// Existing environment variables are never overwritten.
func loadEnvFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		if _, exists := os.LookupEnv(key); !exists {
			os.Setenv(key, value)
		}
	}
	return scanner.Err()
}

// firstOf returns the first non-empty value.
func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// parseDuration parses a duration string, falling back to def on empty or invalid input.
func parseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}
