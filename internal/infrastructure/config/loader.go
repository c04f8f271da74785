package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "CPA"

// ErrNoConfig is returned when no config file exists for an environment
var ErrNoConfig = errors.New("no configuration file found")

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// LoadConfig loads configuration for the environment named by CPA_ENV
func LoadConfig() (*Config, error) {
	// Load environment variables from .env file first
	if err := loadDotEnvFile(); err != nil {
		return nil, err
	}
	return Load(getEnvironment(), ConfigPaths...)
}

// Load reads <env>.yaml from the first matching path, applies environment
// overrides and validates the result
func Load(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	// Set default values for non-critical settings
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w for environment %q", ErrNoConfig, env)
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Environment variables override the file
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	config.Environment = env

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s configuration: %w", env, err)
	}
	return &config, nil
}

// loadDotEnvFile loads the first .env file found. A missing file is not an error.
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("could not load %s: %w", path, err)
		}
		return nil
	}
	return nil
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", "15s")
	v.SetDefault("server.writeTimeout", "15s")
	v.SetDefault("server.idleTimeout", "60s")
	v.SetDefault("server.readHeaderTimeout", "10s")
	v.SetDefault("server.shutdownTimeout", "10s")

	// Storage
	v.SetDefault("storage.driver", DriverMemory)
	v.SetDefault("storage.filePath", "data/cardpay.json")

	// Database
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 10)
	v.SetDefault("database.maxIdleConns", 5)
	v.SetDefault("database.connMaxLifetime", "30m")
	v.SetDefault("database.connMaxIdleTime", "15m")
	v.SetDefault("database.queryTimeout", "5s")
	v.SetDefault("database.logLevel", "warn")
	v.SetDefault("database.slowThreshold", "200ms")

	// Logger
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.service", "cardpay-admin")

	// Session
	v.SetDefault("session.mode", "local")
	v.SetDefault("session.verifyTimeout", "5s")
	v.SetDefault("session.cookieName", "cpa_sid")
	v.SetDefault("session.cookieMaxAge", "24h")
	v.SetDefault("session.sweepInterval", "1h")

	// Auth
	v.SetDefault("auth.jwtSecret", DefaultJWTSecret)
	v.SetDefault("auth.jwtIssuer", "cardpay-admin")
	v.SetDefault("auth.tokenTTL", "12h")
	v.SetDefault("auth.loginRateLimit", "5-M")
	v.SetDefault("auth.bcryptCost", 10)
	v.SetDefault("auth.accounts", []map[string]any{
		{"id": 1, "username": "admin", "password": "admin", "role": "admin", "name": "Administrator"},
	})

	// I18n
	v.SetDefault("i18n.defaultLanguage", "en")

	// Seed
	v.SetDefault("seed.enabled", true)
	v.SetDefault("seed.demoData", false)

	// CORS
	v.SetDefault("cors.allowOrigins", []string{"http://localhost:5173"})
}

// getEnvironment determines the environment to use based on CPA_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides maps the short names used in deployments onto config keys
func processEnvOverrides(v *viper.Viper) {
	overrides := map[string]string{
		"DB_HOST":        "database.host",
		"DB_PORT":        "database.port",
		"DB_USERNAME":    "database.username",
		"DB_PASSWORD":    "database.password",
		"DB_NAME":        "database.name",
		"DB_SSL_MODE":    "database.sslMode",
		"JWT_SECRET":     "auth.jwtSecret",
		"VERIFY_URL":     "session.verifyBaseURL",
		"STORAGE_DRIVER": "storage.driver",
		"STORAGE_FILE":   "storage.filePath",
		"SERVER_PORT":    "server.port",
		"LOGGER_LEVEL":   "logger.level",
	}
	for env, key := range overrides {
		if value := os.Getenv(EnvPrefix + "_" + env); value != "" {
			v.Set(key, value)
		}
	}
}
