package app

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// DefaultJWTSecret is the development-only signing secret. Startup refuses
// it in production.
const DefaultJWTSecret = "poc-velvet-secret-change-me"

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":3000"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	JWTSecret string        `envconfig:"JWT_SECRET" default:"poc-velvet-secret-change-me"`
	TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"24h"`

	FeedbackFormURL string `envconfig:"FEEDBACK_FORM_URL" default:"https://forms.office.com/e/hYQuQaNr4d"`

	CatalogPath string `envconfig:"CATALOG_PATH" default:"config/pocs.json"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.IsProduction() && cfg.JWTSecret == DefaultJWTSecret {
		return nil, errors.New("JWT_SECRET must be set explicitly in production")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt secret must not be empty")
	}
	if cfg.TokenTTL <= 0 {
		return nil, errors.New("token ttl must be positive")
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

// UsesDefaultSecret reports whether the development placeholder secret is in
// effect, so startup can warn about it.
func (c *Config) UsesDefaultSecret() bool {
	return c != nil && c.JWTSecret == DefaultJWTSecret
}
