package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	dnderr "github.com/KirkDiggler/rpg-arena/internal/errors"
)

// Config holds all configuration for the application
type Config struct {
	Arena   ArenaConfig
	Hero    HeroConfig
	Monster MonsterConfig
}

// ArenaConfig holds settings for the combat run itself
type ArenaConfig struct {
	// Seed makes a run reproducible. Zero seeds from the clock.
	Seed int64 `env:"ARENA_SEED" envDefault:"0"`

	// Verbose narrates every event instead of just the outcome
	Verbose bool `env:"ARENA_VERBOSE" envDefault:"true"`

	// MaxTurns ends a combat nobody can win. Zero means no limit.
	MaxTurns int `env:"ARENA_MAX_TURNS" envDefault:"0" validate:"gte=0"`

	// MetricsDump prints the collected counters after the run
	MetricsDump bool `env:"ARENA_METRICS_DUMP" envDefault:"false"`
}

// HeroConfig holds the hero's starting stats
type HeroConfig struct {
	Name     string  `env:"ARENA_HERO_NAME" envDefault:"Dave" validate:"required"`
	MaxHP    int64   `env:"ARENA_HERO_MAX_HP" envDefault:"997" validate:"gt=0"`
	Strength float64 `env:"ARENA_HERO_STRENGTH" envDefault:"50" validate:"gte=0"`
}

// MonsterConfig holds the monster's starting stats
type MonsterConfig struct {
	Name      string `env:"ARENA_MONSTER_NAME" envDefault:"Amaro" validate:"required"`
	MaxHP     int64  `env:"ARENA_MONSTER_MAX_HP" envDefault:"997" validate:"gt=0"`
	SpawnLoot bool   `env:"ARENA_MONSTER_SPAWN_LOOT" envDefault:"true"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeValidation, "failed to parse environment")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeValidation, "invalid configuration")
	}

	if cfg.Hero.Name == cfg.Monster.Name {
		return nil, dnderr.Validation("hero and monster need different names").
			WithMeta("name", cfg.Hero.Name)
	}

	return cfg, nil
}
