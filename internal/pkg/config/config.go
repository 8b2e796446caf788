package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,       default=8080"`
	Env       string        `env:"ENV,        default=development"`
	JWTSecret string        `env:"JWT_SECRET, default=slalom-capabilities-secret-key-change-in-production"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=8h"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`

	// UsersFile is the JSON document holding the practice lead records.
	// A missing file yields an empty credential store.
	UsersFile string `env:"USERS_FILE, default=practice_leads.json"`
	// CatalogFile optionally overrides the built-in capability catalog.
	CatalogFile string `env:"CATALOG_FILE"`

	AuditWorkers int `env:"AUDIT_WORKERS, default=4"`

	Redis RedisConfig
}

// RedisConfig configures the optional Redis audit stream. An empty Addr
// disables it.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
