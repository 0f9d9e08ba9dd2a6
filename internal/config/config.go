package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	RateLimit  RateLimitConfig
	Seed       SeedConfig
	Telemetry  TelemetryConfig
	Invitation InvitationConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port           string
	Env            string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	AllowedOrigins []string
}

// DatabaseConfig holds the relational store settings
type DatabaseConfig struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	LogQueries      bool
}

// JWTConfig holds token signing settings
type JWTConfig struct {
	Secret         string
	ExpirationMins int
	Issuer         string
}

// RateLimitConfig holds per-client request limits
type RateLimitConfig struct {
	Enabled bool
	Rate    int
	Window  time.Duration
	Burst   int
}

// SeedConfig controls the startup data seeder
type SeedConfig struct {
	OnStartup     bool
	AdminPassword string
}

// TelemetryConfig controls request tracing
type TelemetryConfig struct {
	TracingEnabled bool
	ServiceName    string
}

// InvitationConfig controls how long sign-up invitations stay valid
type InvitationConfig struct {
	TTL           time.Duration
	PurgeInterval time.Duration
}

// Development defaults that Validate refuses in production
const (
	defaultJWTSecret    = "dev-secret-change-me"
	defaultSeedPassword = "password"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Load reads configuration from the environment, after loading an optional
// .env file from the working directory.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	if v.GetString("SERVER_ENV") == "production" {
		// Demo accounts are opt-in outside development
		v.SetDefault("SEED_ON_STARTUP", false)
		v.SetDefault("SEED_PASSWORD", "")
	}

	return &Config{
		Server: ServerConfig{
			Port:           v.GetString("SERVER_PORT"),
			Env:            v.GetString("SERVER_ENV"),
			ReadTimeout:    v.GetDuration("SERVER_READ_TIMEOUT"),
			WriteTimeout:   v.GetDuration("SERVER_WRITE_TIMEOUT"),
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(v.GetString("DB_DRIVER")),
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
			LogQueries:      v.GetBool("DB_LOG_QUERIES"),
		},
		JWT: JWTConfig{
			Secret:         v.GetString("JWT_SECRET"),
			ExpirationMins: v.GetInt("JWT_EXPIRATION_MINS"),
			Issuer:         v.GetString("JWT_ISSUER"),
		},
		RateLimit: RateLimitConfig{
			Enabled: v.GetBool("RATE_LIMIT_ENABLED"),
			Rate:    v.GetInt("RATE_LIMIT_RATE"),
			Window:  v.GetDuration("RATE_LIMIT_WINDOW"),
			Burst:   v.GetInt("RATE_LIMIT_BURST"),
		},
		Seed: SeedConfig{
			OnStartup:     v.GetBool("SEED_ON_STARTUP"),
			AdminPassword: v.GetString("SEED_PASSWORD"),
		},
		Telemetry: TelemetryConfig{
			TracingEnabled: v.GetBool("TRACING_ENABLED"),
			ServiceName:    v.GetString("TRACING_SERVICE_NAME"),
		},
		Invitation: InvitationConfig{
			TTL:           v.GetDuration("INVITATION_TTL"),
			PurgeInterval: v.GetDuration("INVITATION_PURGE_INTERVAL"),
		},
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_ENV", "development")
	v.SetDefault("SERVER_READ_TIMEOUT", 15*time.Second)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15*time.Second)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")

	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DB_DSN", "file:frogcrew.db?_foreign_keys=on")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", time.Hour)
	v.SetDefault("DB_LOG_QUERIES", false)

	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRATION_MINS", 120)
	v.SetDefault("JWT_ISSUER", "frogcrew")

	v.SetDefault("RATE_LIMIT_ENABLED", true)
	v.SetDefault("RATE_LIMIT_RATE", 100)
	v.SetDefault("RATE_LIMIT_WINDOW", time.Minute)
	v.SetDefault("RATE_LIMIT_BURST", 20)

	v.SetDefault("SEED_ON_STARTUP", true)
	v.SetDefault("SEED_PASSWORD", defaultSeedPassword)

	v.SetDefault("TRACING_ENABLED", false)
	v.SetDefault("TRACING_SERVICE_NAME", "frogcrew-api")

	v.SetDefault("INVITATION_TTL", 7*24*time.Hour)
	v.SetDefault("INVITATION_PURGE_INTERVAL", time.Hour)
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Validate checks that all required configuration values are present and valid.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	// Server validation
	if c.Server.Port == "" {
		errs = append(errs, errors.New("SERVER_PORT is required"))
	}
	if c.Server.Env != "development" && c.Server.Env != "production" && c.Server.Env != "test" {
		errs = append(errs, fmt.Errorf("SERVER_ENV must be 'development', 'production', or 'test', got '%s'", c.Server.Env))
	}
	if len(c.Server.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS must have at least one origin"))
	}

	// Database validation
	if c.Database.Driver != DriverPostgres && c.Database.Driver != DriverSQLite {
		errs = append(errs, fmt.Errorf("DB_DRIVER must be '%s' or '%s', got '%s'", DriverPostgres, DriverSQLite, c.Database.Driver))
	}
	if c.Database.DSN == "" {
		errs = append(errs, errors.New("DB_DSN is required"))
	}
	if c.Database.MaxOpenConns < 0 || c.Database.MaxIdleConns < 0 {
		errs = append(errs, errors.New("DB_MAX_OPEN_CONNS and DB_MAX_IDLE_CONNS must not be negative"))
	}

	// JWT validation - the development default must not reach production
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	} else if c.IsProduction() && c.JWT.Secret == defaultJWTSecret {
		errs = append(errs, errors.New("JWT_SECRET must be changed in production"))
	}
	if c.JWT.ExpirationMins <= 0 {
		errs = append(errs, errors.New("JWT_EXPIRATION_MINS must be positive"))
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.Rate <= 0 {
			errs = append(errs, errors.New("RATE_LIMIT_RATE must be positive"))
		}
		if c.RateLimit.Window <= 0 {
			errs = append(errs, errors.New("RATE_LIMIT_WINDOW must be positive"))
		}
	}

	if c.Seed.OnStartup && c.Seed.AdminPassword == "" {
		errs = append(errs, errors.New("SEED_PASSWORD is required when SEED_ON_STARTUP is true"))
	}
	if c.IsProduction() && c.Seed.AdminPassword == defaultSeedPassword {
		errs = append(errs, errors.New("SEED_PASSWORD must be changed in production"))
	}

	if c.Invitation.TTL <= 0 || c.Invitation.PurgeInterval <= 0 {
		errs = append(errs, errors.New("INVITATION_TTL and INVITATION_PURGE_INTERVAL must be positive"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
