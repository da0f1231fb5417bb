package backoffice

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cccteam/backoffice/tokenstore"
	"github.com/go-playground/errors/v5"
	"github.com/joho/godotenv"
)

// Config holds client configuration sourced from env vars.
type Config struct {
	// BaseURL is the admin API's base URL, e.g. https://api.example.com
	BaseURL string `env:"ADMIN_API_BASE_URL,notEmpty"`
	// HTTPTimeout is the transport-level timeout applied to every remote call.
	HTTPTimeout time.Duration `env:"ADMIN_API_TIMEOUT" envDefault:"30s"`
	// TokenPath is where the file-backed token store persists the bearer token.
	TokenPath string `env:"ADMIN_TOKEN_PATH" envDefault:".backoffice-token"`
	// TokenHashKey and TokenBlockKey seal the persisted token at rest.
	TokenHashKey  string `env:"ADMIN_TOKEN_HASH_KEY"`
	TokenBlockKey string `env:"ADMIN_TOKEN_BLOCK_KEY"`
}

// LoadConfig reads configuration from the environment, picking up a local .env
// file when one exists.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "env.Parse()")
	}

	return cfg, nil
}

// TokenStore constructs the file-backed token store the config describes.
func (c *Config) TokenStore() *tokenstore.FileStore {
	var blockKey []byte
	if c.TokenBlockKey != "" {
		blockKey = []byte(c.TokenBlockKey)
	}

	return tokenstore.NewFileStore(c.TokenPath, []byte(c.TokenHashKey), blockKey)
}
