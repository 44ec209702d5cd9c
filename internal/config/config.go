package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds the runtime configuration of the Brainbin API, parsed from
// environment variables.
type Config struct {
	Port           int           `env:"PORT"             envDefault:"4000"`
	MongoURI       string        `env:"MONGODB_URI"`
	MongoDatabase  string        `env:"MONGODB_DATABASE" envDefault:"brainbin"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS"  envDefault:"http://localhost:5173"`
	Token          TokenConfig
}

// TokenConfig holds session token settings.
type TokenConfig struct {
	Secret    string        `env:"JWT_SECRET"`
	Issuer    string        `env:"JWT_ISSUER"       envDefault:"brainbin"`
	ExpiresIn time.Duration `env:"TOKEN_EXPIRES_IN" envDefault:"168h"`
	OTPTTL    time.Duration `env:"OTP_EXPIRES_IN"   envDefault:"24h"`
}

// NewConfig creates a Config instance from environment variables.
func NewConfig(logger *zerolog.Logger) *Config {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse environment variables")
	}

	if err := cfg.validate(); err != nil {
		logger.Fatal().Err(err).Msg("failed to validate configuration")
	}

	return &cfg
}

// validate checks if the configuration is valid.
func (c *Config) validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("missing MONGODB_URI environment variable")
	}
	if c.Token.Secret == "" {
		return fmt.Errorf("missing JWT_SECRET environment variable")
	}
	if len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("missing ALLOWED_ORIGINS environment variable")
	}

	return nil
}
