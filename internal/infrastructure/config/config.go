package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Host     string `env:"HOST,      default=127.0.0.1"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret has no default on purpose: tokens signed with a guessable
	// fallback are worthless, so a missing secret fails startup.
	JWTSecret string `env:"JWT_SECRET"`

	Mongo  MongoConfig
	Redis  RedisConfig
	Google GoogleConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=hartford"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// GoogleConfig holds the server-side keys for the external map APIs. The
// placeholder defaults keep local development running; operators override
// them in any real deployment.
type GoogleConfig struct {
	MapsKey   string `env:"GOOGLE_KEY, default=xxxx-xxxx"`
	PlacesKey string `env:"PLACES_KEY, default=xxxx-xxxx"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET must be set")
	}
	return &cfg, nil
}

// Address returns the host:port pair the HTTP server listens on.
func (c *Config) Address() string {
	return c.Host + ":" + c.Port
}
