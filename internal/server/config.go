package server

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the detection service configuration, populated from the
// environment.
type Config struct {
	Port       int    `env:"PORT" envDefault:"8080"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	ProfileDir string `env:"PROFILE_DIR,required"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"10"`
	MaxConns       int     `env:"MAX_CONNS" envDefault:"256"`

	// DetectorSeed pins detection to a fixed seed; leave unset for
	// entropy-seeded detection.
	DetectorSeed  *uint64 `env:"DETECTOR_SEED"`
	Alpha         float64 `env:"ALPHA" envDefault:"0"`
	MaxTextLength int     `env:"MAX_TEXT_LENGTH" envDefault:"0"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Load reads the configuration from the environment, with an optional .env
// file.
func Load() (*Config, error) {
	_ = godotenv.Load() //nolint:errcheck // .env file is optional

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment config: %w", err)
	}

	return cfg, nil
}
