package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const Prefix = "BLOGLIST_"

type Config struct {
	Addr            string        `env:"ADDR"             envDefault:":3003"`
	DiagAddr        string        `env:"DIAG_ADDR"        envDefault:":9999"`
	Routes          bool          `env:"ROUTES"`
	APIURL          string        `env:"API_URL"          envDefault:"http://localhost:3003"`
	StatePath       string        `env:"STATE_PATH,expand" envDefault:"${HOME}/.bloglist/state.db"`
	JWTSecret       string        `env:"JWT_SECRET"       envDefault:"dev-secret"`
	TokenTTL        time.Duration `env:"TOKEN_TTL"        envDefault:"1h"`
	NotificationTTL time.Duration `env:"NOTIFICATION_TTL" envDefault:"5s"`
	HTTPTimeout     time.Duration `env:"HTTP_TIMEOUT"     envDefault:"10s"`
	Verbose         bool          `env:"VERBOSE"`
}

// Load reads an optional .env file, then the BLOGLIST_* environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	return Parse()
}

func Parse() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix}); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}
