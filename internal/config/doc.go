// Package config manages application configuration for the FrogCrew API.
//
// Values come from environment variables, read through viper. A .env file in
// the working directory is loaded first when present, so local development can
// keep settings out of the shell.
//
// # Configuration Loading
//
//	cfg, err := config.Load()
//	if err != nil { ... }
//	if err := cfg.Validate(); err != nil { ... }
//
// # Configuration Groups
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - DatabaseConfig: driver (postgres or sqlite), DSN and pool sizes
//   - JWTConfig: token signing secret, issuer and lifetime
//   - RateLimitConfig: per-client request budget
//   - SeedConfig: startup seeding of demo crew data
//   - TelemetryConfig: request tracing
//   - InvitationConfig: invitation lifetime and purge cadence
//
// # Environment Variables
//
//	SERVER_PORT          - HTTP server port (default: 8080)
//	SERVER_ENV           - development, test or production
//	CORS_ALLOWED_ORIGINS - comma separated origins
//	DB_DRIVER            - postgres or sqlite (default: sqlite)
//	DB_DSN               - driver specific connection string
//	JWT_SECRET           - HMAC signing secret
//	JWT_EXPIRATION_MINS  - token lifetime in minutes
//	RATE_LIMIT_RATE      - requests allowed per window
//	SEED_ON_STARTUP      - seed demo data into an empty database (off by default in production)
//	SEED_PASSWORD        - password of seeded members; the default is refused in production
//	TRACING_ENABLED      - export request spans to stdout
//	INVITATION_TTL       - how long an invitation stays valid (default: 168h)
package config
