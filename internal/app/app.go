// Package app wires configuration into a ready service provider. Both the
// CLI and the Discord bot start from here.
package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/druid-summons/internal/clients/dnd5e"
	"github.com/KirkDiggler/druid-summons/internal/clients/srd"
	"github.com/KirkDiggler/druid-summons/internal/clock"
	"github.com/KirkDiggler/druid-summons/internal/config"
	"github.com/KirkDiggler/druid-summons/internal/domain/catalog"
	dnderr "github.com/KirkDiggler/druid-summons/internal/errors"
	"github.com/KirkDiggler/druid-summons/internal/repositories/characters"
	"github.com/KirkDiggler/druid-summons/internal/repositories/summons"
	"github.com/KirkDiggler/druid-summons/internal/services"
)

const redisPingTimeout = 5 * time.Second

// App is a wired provider plus whatever needs closing on shutdown
type App struct {
	Provider    *services.Provider
	CharacterID string

	redisClient *redis.Client
}

// UsingRedis reports whether persistence went to Redis
func (a *App) UsingRedis() bool {
	return a.redisClient != nil
}

// Close releases the Redis connection if there is one
func (a *App) Close() error {
	if a.redisClient == nil {
		return nil
	}
	if err := a.redisClient.Close(); err != nil {
		return dnderr.Wrap(err, "failed to close Redis connection")
	}
	log.Println("Closed Redis connection")
	return nil
}

// New builds the catalog source and repositories described by cfg. A Redis
// URL that cannot be parsed or reached falls back to in-memory storage.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("config is required")
	}

	source, err := NewCatalogSource(cfg)
	if err != nil {
		return nil, err
	}

	providerConfig := &services.ProviderConfig{
		CatalogSource: source,
		Clock:         clock.New(),
	}

	a := &App{CharacterID: cfg.CharacterID}

	if cfg.Redis.URL != "" {
		log.Printf("Connecting to Redis at: %s", cfg.Redis.URL)
		a.redisClient = connectRedis(ctx, cfg.Redis.URL)
	} else {
		log.Println("No REDIS_URL found, using in-memory repositories")
	}

	if a.redisClient != nil {
		providerConfig.CharacterRepository = characters.NewRedis(a.redisClient)
		providerConfig.SummonsRepository = summons.NewRedis(a.redisClient, cfg.Redis.SummonsTTL)
		log.Println("Using Redis for persistence")
	}

	a.Provider = services.NewProvider(providerConfig)
	return a, nil
}

// NewCatalogSource picks the monster and spell source named in cfg
func NewCatalogSource(cfg *config.Config) (catalog.Source, error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourceAPI:
		log.Printf("Using D&D 5e API catalog at %s", cfg.DND5E.BaseURL)
		source, err := dnd5e.New(&dnd5e.Config{
			HTTPClient: &http.Client{
				Timeout: 30 * time.Second,
			},
			BaseURL:     cfg.DND5E.BaseURL,
			CacheTTL:    cfg.DND5E.CacheTTL,
			Concurrency: cfg.DND5E.Concurrency,
		})
		if err != nil {
			return nil, err
		}
		return source, nil
	case config.CatalogSourceSRD, "":
		log.Printf("Using SRD catalog files %s and %s", cfg.Catalog.MonstersPath, cfg.Catalog.SpellsPath)
		loader, err := srd.New(&srd.Config{
			MonstersPath: cfg.Catalog.MonstersPath,
			SpellsPath:   cfg.Catalog.SpellsPath,
		})
		if err != nil {
			return nil, err
		}
		return loader, nil
	default:
		return nil, dnderr.InvalidArgumentf("unknown catalog source %q", cfg.Catalog.Source)
	}
}

func connectRedis(ctx context.Context, url string) *redis.Client {
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("Failed to parse Redis URL: %v", err)
		log.Println("Falling back to in-memory repositories")
		return nil
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		log.Println("Falling back to in-memory repositories")
		if closeErr := client.Close(); closeErr != nil {
			log.Printf("Error closing Redis client: %v", closeErr)
		}
		return nil
	}

	log.Println("Successfully connected to Redis")
	return client
}
