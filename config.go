package invitekit

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingConfig is returned when environment variables cannot be parsed
// into the Config struct.
var ErrParsingConfig = errors.New("invitekit: failed to parse environment config")

// Config carries everything needed to construct a Client. Applications can
// populate it however they like; the env tags exist for LoadConfig.
type Config struct {
	APIKey      string        `env:"INVITEKIT_API_KEY,required,notEmpty"`
	BaseURL     string        `env:"INVITEKIT_BASE_URL" envDefault:"https://api.invitekit.com"`
	HTTPTimeout time.Duration `env:"INVITEKIT_HTTP_TIMEOUT" envDefault:"30s"`
}

// LoadConfig populates a Config from the environment. A .env file in the
// working directory is loaded first if present. The SDK never calls this on
// its own; env lookup stays an explicit choice of the calling application.
func LoadConfig() (Config, error) {
	// Ignore errors - the .env file might not exist and that's ok
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// NewFromConfig creates a client from a populated Config. Options are applied
// after the config and may override it.
func NewFromConfig(cfg Config, opts ...Option) *Client {
	base := []Option{
		WithBaseURL(cfg.BaseURL),
		WithHTTPTimeout(cfg.HTTPTimeout),
	}
	return New(cfg.APIKey, append(base, opts...)...)
}
