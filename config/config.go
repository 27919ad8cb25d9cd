package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type Config struct {
	Port            string        `env:"PORT" envDefault:"8000"`
	StaticDir       string        `env:"STATIC_DIR"`
	SeedFile        string        `env:"SEED_FILE"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"text"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads configuration from the process environment and dotenv files.
// Process variables win over dotenv values. With no files given, ".env" is
// read if it exists.
func Load(files ...string) (Config, error) {
	environ := env.ToMap(os.Environ())

	dotenv, err := godotenv.Read(files...)
	if err != nil {
		if len(files) > 0 || !os.IsNotExist(err) {
			return Config{}, errors.Wrap(err, "read dotenv")
		}
		dotenv = nil
	}
	for k, v := range dotenv {
		if _, ok := environ[k]; !ok {
			environ[k] = v
		}
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return errors.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}
