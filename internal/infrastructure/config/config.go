package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ulule/limiter/v3"

	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/entity"
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/usecase/session"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/cardpay-admin/internal/infrastructure/adapter/i18n"
)

// Storage drivers
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverPostgres = "postgres"
)

// DefaultJWTSecret is only acceptable outside production
const DefaultJWTSecret = "change-me"

// Config holds all configuration for the application
type Config struct {
	Environment string           `mapstructure:"environment"`
	Server      ServerConfig     `mapstructure:"server"`
	Storage     StorageConfig    `mapstructure:"storage"`
	Database    database.Config  `mapstructure:"database"`
	Logger      LoggerConfig     `mapstructure:"logger"`
	Session     SessionConfig    `mapstructure:"session"`
	Auth        AuthConfig       `mapstructure:"auth"`
	I18n        I18nConfig       `mapstructure:"i18n"`
	Products    []entity.Product `mapstructure:"products"`
	Seed        SeedConfig       `mapstructure:"seed"`
	CORS        CORSConfig       `mapstructure:"cors"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`
}

// StorageConfig selects the key-value store backing all persisted state
type StorageConfig struct {
	Driver   string `mapstructure:"driver"`
	FilePath string `mapstructure:"filePath"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level   string `mapstructure:"level"`
	Format  string `mapstructure:"format"`
	Service string `mapstructure:"service"`
}

// SessionConfig controls how the current actor is resolved
type SessionConfig struct {
	Mode          string        `mapstructure:"mode"`
	VerifyBaseURL string        `mapstructure:"verifyBaseURL"`
	VerifyTimeout time.Duration `mapstructure:"verifyTimeout"`
	CookieName    string        `mapstructure:"cookieName"`
	CookieMaxAge  time.Duration `mapstructure:"cookieMaxAge"`
	SecureCookie  bool          `mapstructure:"secureCookie"`
	// SweepInterval is how often idle sessions are purged. Zero disables purging.
	SweepInterval time.Duration `mapstructure:"sweepInterval"`
}

// AccountConfig is an operator login. Either Password or PasswordHash must be set.
type AccountConfig struct {
	ID           uint64 `mapstructure:"id"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	PasswordHash string `mapstructure:"passwordHash"`
	Role         string `mapstructure:"role"`
	Name         string `mapstructure:"name"`
}

// AuthConfig contains login and token settings
type AuthConfig struct {
	JWTSecret      string          `mapstructure:"jwtSecret"`
	JWTIssuer      string          `mapstructure:"jwtIssuer"`
	TokenTTL       time.Duration   `mapstructure:"tokenTTL"`
	LoginRateLimit string          `mapstructure:"loginRateLimit"`
	BcryptCost     int             `mapstructure:"bcryptCost"`
	Accounts       []AccountConfig `mapstructure:"accounts"`
}

// I18nConfig contains translation settings
type I18nConfig struct {
	DefaultLanguage string `mapstructure:"defaultLanguage"`
}

// SeedConfig controls first-start data
type SeedConfig struct {
	Enabled  bool `mapstructure:"enabled"`
	DemoData bool `mapstructure:"demoData"`
}

// CORSConfig contains cross-origin settings
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allowOrigins"`
}

// IsProduction reports whether the production environment is active
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

// Validate rejects missing or inconsistent settings
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Storage.Driver {
	case DriverMemory:
	case DriverFile:
		if c.Storage.FilePath == "" {
			return errors.New("storage.filePath is required for the file driver")
		}
	case DriverPostgres:
		if err := c.Database.Validate(); err != nil {
			return fmt.Errorf("database: %w", err)
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	mode, err := session.ParseMode(c.Session.Mode)
	if err != nil {
		return err
	}
	if mode == session.ModeVerified && c.Session.VerifyBaseURL == "" {
		return errors.New("session.verifyBaseURL is required in verified mode")
	}
	if c.Session.CookieName == "" {
		return errors.New("session.cookieName is required")
	}

	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwtSecret is required")
	}
	if c.IsProduction() && c.Auth.JWTSecret == DefaultJWTSecret {
		return errors.New("auth.jwtSecret must be changed in production")
	}
	if c.Auth.TokenTTL < 0 {
		return errors.New("auth.tokenTTL cannot be negative")
	}
	if _, err := limiter.NewRateFromFormatted(c.Auth.LoginRateLimit); err != nil {
		return fmt.Errorf("auth.loginRateLimit: %w", err)
	}
	if err := c.validateAccounts(); err != nil {
		return err
	}

	if _, err := i18n.ParseLanguage(c.I18n.DefaultLanguage); err != nil {
		return fmt.Errorf("i18n.defaultLanguage: %w", err)
	}

	return c.validateProducts()
}

func (c *Config) validateAccounts() error {
	seen := make(map[string]bool, len(c.Auth.Accounts))
	for i, account := range c.Auth.Accounts {
		if account.Username == "" {
			return fmt.Errorf("auth.accounts[%d]: username is required", i)
		}
		if seen[account.Username] {
			return fmt.Errorf("auth.accounts[%d]: duplicate username %q", i, account.Username)
		}
		seen[account.Username] = true

		if account.Password == "" && account.PasswordHash == "" {
			return fmt.Errorf("auth.accounts[%d]: password or passwordHash is required", i)
		}
		if account.Role == "" {
			return fmt.Errorf("auth.accounts[%d]: role is required", i)
		}
	}
	return nil
}

func (c *Config) validateProducts() error {
	seen := make(map[string]bool, len(c.Products))
	for i, product := range c.Products {
		if product.ID == "" || product.Name == "" {
			return fmt.Errorf("products[%d]: id and name are required", i)
		}
		if seen[product.ID] {
			return fmt.Errorf("products[%d]: duplicate id %q", i, product.ID)
		}
		seen[product.ID] = true

		if product.Price <= 0 || product.Price > entity.MaxBalance {
			return fmt.Errorf("products[%d]: price must be positive", i)
		}
	}
	return nil
}
