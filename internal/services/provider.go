package services

import (
	"github.com/KirkDiggler/druid-summons/internal/clock"
	"github.com/KirkDiggler/druid-summons/internal/domain/catalog"
	"github.com/KirkDiggler/druid-summons/internal/repositories/characters"
	"github.com/KirkDiggler/druid-summons/internal/repositories/summons"
	characterService "github.com/KirkDiggler/druid-summons/internal/services/character"
	summoningService "github.com/KirkDiggler/druid-summons/internal/services/summoning"
	"github.com/KirkDiggler/druid-summons/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	CharacterService characterService.Service
	SummoningService summoningService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	CatalogSource       catalog.Source // Required
	CharacterRepository characters.Repository
	SummonsRepository   summons.Repository
	Clock               clock.Clock
	UUIDGenerator       uuid.Generator
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repositories if none provided
	charRepo := cfg.CharacterRepository
	if charRepo == nil {
		charRepo = characters.NewInMemoryRepository()
	}

	summonsRepo := cfg.SummonsRepository
	if summonsRepo == nil {
		summonsRepo = summons.NewInMemoryRepository()
	}

	charService := characterService.NewService(&characterService.ServiceConfig{
		Repository: charRepo,
		Clock:      cfg.Clock,
	})

	summonService := summoningService.NewService(&summoningService.ServiceConfig{
		Source:           cfg.CatalogSource,
		Repository:       summonsRepo,
		CharacterService: charService,
		UUIDGenerator:    cfg.UUIDGenerator,
	})

	return &Provider{
		CharacterService: charService,
		SummoningService: summonService,
	}
}
