// Package config provides configuration loading and management using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 8080

	// DefaultMaxRequestSize is the default maximum request body size (1MB).
	DefaultMaxRequestSize = 1 << 20 // 1048576 bytes

	// DefaultBcryptCost is the default bcrypt work factor for password hashes.
	DefaultBcryptCost = 10

	// DefaultDBMaxOpenConns is the default size of the database connection pool.
	DefaultDBMaxOpenConns = 10

	// DefaultDBMaxIdleConns is the default number of idle pooled connections.
	DefaultDBMaxIdleConns = 5

	// DefaultLogFileMaxSizeMB is the default max log file size in megabytes.
	DefaultLogFileMaxSizeMB = 100

	// DefaultLogFileMaxBackups is the default number of old log files to retain.
	DefaultLogFileMaxBackups = 3

	// DefaultLogFileMaxAgeDays is the default max days to retain old log files.
	DefaultLogFileMaxAgeDays = 28
)

// Database drivers understood by the store adapter.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is the root configuration structure.
type Config struct {
	App       AppConfig       `koanf:"app"       validate:"required"`
	Server    ServerConfig    `koanf:"server"    validate:"required"`
	Log       LogConfig       `koanf:"log"       validate:"required"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Auth      AuthConfig      `koanf:"auth"      validate:"required"`
	Database  DatabaseConfig  `koanf:"database"  validate:"required"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
	RequestTimeout  time.Duration `koanf:"request_timeout"  validate:"required,min=1s"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig contains OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true,omitempty,url"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// AuthConfig contains session token and password hashing settings.
type AuthConfig struct {
	JWTSecret  string        `koanf:"jwt_secret"  validate:"required,min=32"`
	Issuer     string        `koanf:"issuer"      validate:"required"`
	TokenTTL   time.Duration `koanf:"token_ttl"   validate:"required,min=1m"`
	BcryptCost int           `koanf:"bcrypt_cost" validate:"required,min=4,max=31"`
}

// DatabaseConfig contains relational store settings.
type DatabaseConfig struct {
	Driver          string        `koanf:"driver"            validate:"required,oneof=postgres sqlite"`
	DSN             string        `koanf:"dsn"               validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns"    validate:"required,min=1"`
	MaxIdleConns    int           `koanf:"max_idle_conns"    validate:"min=0,ltefield=MaxOpenConns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"min=0"`
	AutoMigrate     bool          `koanf:"auto_migrate"`
	LogQueries      bool          `koanf:"log_queries"`
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "quotes-api",
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":             DefaultServerPort,
		"server.host":             "0.0.0.0",
		"server.read_timeout":     "30s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",
		"server.request_timeout":  "30s",
		"server.max_request_size": DefaultMaxRequestSize,

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/app.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  "quotes-api",
		"telemetry.sampling_rate": 1.0,

		"auth.jwt_secret":  "",
		"auth.issuer":      "quotes-api",
		"auth.token_ttl":   "24h",
		"auth.bcrypt_cost": DefaultBcryptCost,

		"database.driver":            DriverSQLite,
		"database.dsn":               "file:quotes.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
		"database.max_open_conns":    DefaultDBMaxOpenConns,
		"database.max_idle_conns":    DefaultDBMaxIdleConns,
		"database.conn_max_lifetime": "30m",
		"database.auto_migrate":      true,
		"database.log_queries":       false,
	}
}

// Load loads configuration with the following precedence (highest to lowest):
//  1. Environment variables (APP_ prefix)
//  2. Profile config file (configs/{profile}.yaml)
//  3. Base config file (configs/base.yaml)
//  4. Default values
func Load(profile string) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	err := k.Load(confmap.Provider(defaults(), "."), nil)
	if err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// 2. Load base config file if it exists
	err = loadFileIfExists(k, "configs/base.yaml")
	if err != nil {
		return nil, fmt.Errorf("loading base config: %w", err)
	}

	// 3. Load profile config file if it exists
	if profile != "" {
		profilePath := fmt.Sprintf("configs/%s.yaml", profile)

		err := loadFileIfExists(k, profilePath)
		if err != nil {
			return nil, fmt.Errorf("loading profile config %q: %w", profile, err)
		}
	}

	// 4. Load environment variables with APP_ prefix
	err = k.Load(env.Provider("APP_", ".", envKeyMapper(k.Keys())), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	// Unmarshal into Config struct
	var cfg Config

	err = k.Unmarshal("", &cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// envKeyMapper maps APP_AUTH_JWT_SECRET to auth.jwt_secret by matching the
// known keys, so keys containing underscores survive. Unknown variables fall
// back to replacing every underscore with a dot.
func envKeyMapper(knownKeys []string) func(string) string {
	lookup := make(map[string]string, len(knownKeys))
	for _, key := range knownKeys {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(s string) string {
		flat := strings.ToLower(strings.TrimPrefix(s, "APP_"))
		if key, ok := lookup[flat]; ok {
			return key
		}

		return strings.ReplaceAll(flat, "_", ".")
	}
}

// loadFileIfExists loads a YAML config file if it exists.
// Returns nil if the file doesn't exist, error only for parse/read failures.
func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil // File doesn't exist, that's fine
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
