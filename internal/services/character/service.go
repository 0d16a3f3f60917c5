package character

//go:generate mockgen -destination=mock/mock_service.go -package=mockcharacter -source=service.go

import (
	"context"
	"encoding/json"
	"log"

	"github.com/KirkDiggler/druid-summons/internal/clock"
	"github.com/KirkDiggler/druid-summons/internal/domain/character"
	dnderr "github.com/KirkDiggler/druid-summons/internal/errors"
	"github.com/KirkDiggler/druid-summons/internal/repositories/characters"
)

// Repository is an alias for the character repository interface
type Repository = characters.Repository

// Service manages the tracked character sheet and its derived stats
type Service interface {
	// Get returns the stored character, or a default sheet when none exists yet
	Get(ctx context.Context, id string) (*character.Character, error)

	// Update applies raw sheet values and stores the result
	Update(ctx context.Context, id string, update *character.SheetUpdate) (*character.Character, error)

	// Import merges a JSON character export over the stored character
	Import(ctx context.Context, id string, data []byte) (*character.Character, error)

	// Prerequisites reports, for every known class, whether the character
	// meets its multiclass ability requirements
	Prerequisites(ctx context.Context, id string) (map[string]character.PrerequisiteResult, error)

	// SetBearSpirit records whether the Bear Spirit aura is active
	SetBearSpirit(ctx context.Context, id string, active bool) (*character.Character, error)
}

type service struct {
	repository Repository
	clock      clock.Clock
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository Repository  // Required
	Clock      clock.Clock // Optional, defaults to the system clock
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &service{
		repository: cfg.Repository,
		clock:      clk,
	}
}

func (s *service) Get(ctx context.Context, id string) (*character.Character, error) {
	char, _, err := s.load(ctx, id)
	return char, err
}

func (s *service) Update(ctx context.Context, id string, update *character.SheetUpdate) (*character.Character, error) {
	if update == nil {
		return nil, dnderr.InvalidArgument("update is required")
	}

	char, exists, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	char.ApplySheetUpdate(*update)

	if err := s.save(ctx, char, exists); err != nil {
		return nil, err
	}

	return char, nil
}

func (s *service) Import(ctx context.Context, id string, data []byte) (*character.Character, error) {
	var record character.ImportRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "character import is not valid JSON").
			WithMeta("character_id", id)
	}

	char, exists, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	char.Merge(record, s.clock.Now())

	if err := s.save(ctx, char, exists); err != nil {
		return nil, err
	}

	log.Printf("Imported character %s (%s) from %s", char.ID, char.Name, char.Sync.Source)

	return char, nil
}

func (s *service) Prerequisites(ctx context.Context, id string) (map[string]character.PrerequisiteResult, error) {
	char, _, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	return character.PrerequisiteReport(char.AbilityScores), nil
}

func (s *service) SetBearSpirit(ctx context.Context, id string, active bool) (*character.Character, error) {
	char, exists, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	char.ClassFeatures.BearSpiritActive = active

	if err := s.save(ctx, char, exists); err != nil {
		return nil, err
	}

	return char, nil
}

// load returns the stored character or a fresh default, and whether it was stored
func (s *service) load(ctx context.Context, id string) (*character.Character, bool, error) {
	if id == "" {
		return nil, false, dnderr.InvalidArgument("character ID is required")
	}

	char, err := s.repository.Get(ctx, id)
	if err != nil {
		if dnderr.IsNotFound(err) {
			return character.New(id), false, nil
		}
		return nil, false, dnderr.Wrapf(err, "failed to load character '%s'", id)
	}

	return char, true, nil
}

func (s *service) save(ctx context.Context, char *character.Character, exists bool) error {
	if exists {
		if err := s.repository.Update(ctx, char); err != nil {
			return dnderr.Wrapf(err, "failed to update character '%s'", char.ID)
		}
		return nil
	}

	if err := s.repository.Create(ctx, char); err != nil {
		return dnderr.Wrapf(err, "failed to create character '%s'", char.ID)
	}
	return nil
}
