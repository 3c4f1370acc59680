package main

import (
	"github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
)

// Config holds the benchmark parameters. Environment variables seed the
// defaults and command line flags override them.
type Config struct {
	Entities int    `config:"KURA_ENTITIES" json:"entities"`
	Rounds   int    `config:"KURA_ROUNDS" json:"rounds"`
	Profile  string `config:"KURA_PROFILE" json:"profile,omitempty"`
	LogLevel string `config:"KURA_LOG_LEVEL" json:"-"`
}

func defaultConfig() Config {
	return Config{
		Entities: 100000,
		Rounds:   100,
		LogLevel: "info",
	}
}

// LoadConfig reads Config from the environment on top of the defaults.
func LoadConfig() (Config, error) {
	cfg := defaultConfig()
	if err := config.FromEnv().To(&cfg); err != nil {
		return Config{}, eris.Wrap(err, "load config from environment")
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Entities < 0 {
		return eris.Errorf("entities must not be negative, got %d", c.Entities)
	}
	if c.Rounds < 0 {
		return eris.Errorf("rounds must not be negative, got %d", c.Rounds)
	}
	switch c.Profile {
	case "", profileCPU, profileMem, profileAllocs:
	default:
		return eris.Errorf("unknown profile mode %q", c.Profile)
	}
	return nil
}
