package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Catalog source names
const (
	CatalogSourceSRD = "srd"
	CatalogSourceAPI = "api"
)

// Config holds all configuration for the application
type Config struct {
	Discord DiscordConfig
	Redis   RedisConfig
	DND5E   DND5EConfig
	Catalog CatalogConfig

	// CharacterID is the sheet the CLI and bot read and write
	CharacterID string `env:"CHARACTER_ID" envDefault:"default"`
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string `env:"DISCORD_TOKEN"`
	AppID   string `env:"DISCORD_APP_ID"`
	GuildID string `env:"DISCORD_GUILD_ID"` // Optional: for guild-specific commands
}

// RedisConfig holds Redis-specific configuration. An empty URL means
// in-memory storage.
type RedisConfig struct {
	URL        string        `env:"REDIS_URL"`
	SummonsTTL time.Duration `env:"SUMMONS_TTL" envDefault:"12h"`
}

// DND5EConfig holds D&D 5e API configuration
type DND5EConfig struct {
	BaseURL     string        `env:"DND5E_API_URL" envDefault:"https://www.dnd5eapi.co/api"`
	CacheTTL    time.Duration `env:"DND5E_CACHE_TTL" envDefault:"24h"`
	Concurrency int           `env:"DND5E_CONCURRENCY" envDefault:"8"`
}

// CatalogConfig picks where monsters and spells come from
type CatalogConfig struct {
	Source       string `env:"CATALOG_SOURCE" envDefault:"srd"`
	MonstersPath string `env:"SRD_MONSTERS_PATH" envDefault:"data/srd_5e_monsters.json"`
	SpellsPath   string `env:"SRD_SPELLS_PATH" envDefault:"data/spells.json"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return load(env.Options{})
}

// LoadFrom loads configuration from the given variables instead of the
// process environment
func LoadFrom(environ map[string]string) (*Config, error) {
	if environ == nil {
		environ = map[string]string{}
	}
	return load(env.Options{Environment: environ})
}

func load(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings every entry point needs
func (c *Config) Validate() error {
	if c.CharacterID == "" {
		return fmt.Errorf("CHARACTER_ID must not be empty")
	}

	switch c.Catalog.Source {
	case CatalogSourceSRD:
		if c.Catalog.MonstersPath == "" || c.Catalog.SpellsPath == "" {
			return fmt.Errorf("SRD_MONSTERS_PATH and SRD_SPELLS_PATH are required for the srd catalog")
		}
	case CatalogSourceAPI:
		if c.DND5E.BaseURL == "" {
			return fmt.Errorf("DND5E_API_URL is required for the api catalog")
		}
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q (want %s or %s)", c.Catalog.Source, CatalogSourceSRD, CatalogSourceAPI)
	}

	if c.Redis.SummonsTTL < 0 {
		return fmt.Errorf("SUMMONS_TTL must not be negative")
	}

	return nil
}

// ValidateDiscord checks the settings the bot needs on top of Validate
func (c *Config) ValidateDiscord() error {
	if c.Discord.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.Discord.AppID == "" {
		return fmt.Errorf("DISCORD_APP_ID is required")
	}
	return nil
}
