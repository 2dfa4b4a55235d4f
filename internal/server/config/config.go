// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// DefaultSecretKey is the development JWT secret. The server warns at startup
// when it is still in use.
const DefaultSecretKey = "secretKey"

// Config holds runtime settings for the LedgerKeeper server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the REST API.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory store.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use test defaults in prod.
//   - TokenIssuer: value of the "iss" claim, checked on every request.
//   - AccessTokenValidityDuration: lifetime of issued bearer tokens.
//   - PasswordHashCost: bcrypt cost used at registration.
//   - ShutdownTimeout: grace period for in-flight requests on shutdown.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddrHTTP            string
	DatabaseDSN                 string
	SecretKey                   string
	TokenIssuer                 string
	AccessTokenValidityDuration time.Duration
	PasswordHashCost            int
	ShutdownTimeout             time.Duration
	LogLevel                    string
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret key is insecure for production and must be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.DatabaseDSN = ""
	c.SecretKey = DefaultSecretKey
	c.TokenIssuer = "ledgerkeeper"
	c.AccessTokenValidityDuration = 1 * time.Hour
	c.PasswordHashCost = bcrypt.DefaultCost
	c.ShutdownTimeout = 10 * time.Second
	c.LogLevel = "info"
}

// Validate reports settings the server cannot start with.
func (c *Config) Validate() error {
	if c.EndpointAddrHTTP == "" {
		return fmt.Errorf("http address must not be empty")
	}
	if c.SecretKey == "" {
		return fmt.Errorf("secret key must not be empty")
	}
	if c.AccessTokenValidityDuration <= 0 {
		return fmt.Errorf("access token validity must be > 0")
	}
	if c.PasswordHashCost < bcrypt.MinCost || c.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("password hash cost must be within [%d, %d]", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be > 0")
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
// args are the program arguments without the binary name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
