package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds everything the server needs at startup. It is built once
// in main and handed to the components that need it.
type Config struct {
	Port     string `env:"PORT" envDefault:"8001"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	MongoURL string `env:"MONGO_URL" envDefault:"mongodb://localhost:27017"`
	MongoDB  string `env:"MONGO_DB" envDefault:"wishplatform"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	Paypal Paypal `envPrefix:"PAYPAL_"`
}

// Paypal carries the payment provider credentials. When ClientID or
// ClientSecret is empty the server falls back to the mock gateway.
type Paypal struct {
	BaseAPIURL   string `env:"BASE_API_URL" envDefault:"https://api-m.sandbox.paypal.com"`
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
}

// Configured reports whether real PayPal credentials were provided.
func (p Paypal) Configured() bool {
	return p.ClientID != "" && p.ClientSecret != ""
}

// LoadConfig reads .env (if present) and parses the environment.
func LoadConfig() (*Config, error) {
	// .env is optional; in deployed environments the variables come
	// from the process environment directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
