package summoning

//go:generate mockgen -destination=mock/mock_service.go -package=mocksummoning -source=service.go

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/KirkDiggler/druid-summons/internal/domain/catalog"
	"github.com/KirkDiggler/druid-summons/internal/domain/rulebook"
	"github.com/KirkDiggler/druid-summons/internal/domain/summon"
	dnderr "github.com/KirkDiggler/druid-summons/internal/errors"
	"github.com/KirkDiggler/druid-summons/internal/repositories/summons"
	"github.com/KirkDiggler/druid-summons/internal/services/character"
	"github.com/KirkDiggler/druid-summons/internal/uuid"
)

// Repository is an alias for the roster repository interface
type Repository = summons.Repository

// Service looks up what a spell can summon and tracks the creatures in play
// for each session
type Service interface {
	// ListConjureSpells returns the summoning spells, lowest level first
	ListConjureSpells(ctx context.Context) ([]catalog.SpellRecord, error)

	// GetSpellDetail returns a spell with its filtered summonable creatures
	// and the filter choices available across all of them
	GetSpellDetail(ctx context.Context, spellName string, filter catalog.CreatureFilter) (*SpellDetail, error)

	// ListSummonable returns every creature the spell can summon
	ListSummonable(ctx context.Context, spellName string) ([]catalog.MonsterRecord, error)

	// SearchCreatures searches the whole monster catalog
	SearchCreatures(ctx context.Context, query, crPrefix string) ([]catalog.MonsterRecord, error)

	// GetCreature returns a catalog creature with its parsed hit points
	GetCreature(ctx context.Context, name string) (*CreatureDetail, error)

	// Summon creates creatures and adds them to the session roster
	Summon(ctx context.Context, input *SummonInput) ([]summon.SummonedCreature, error)

	// ListSummoned returns the session roster in summon order
	ListSummoned(ctx context.Context, sessionID string) ([]summon.SummonedCreature, error)

	// UpdateHP sets current and/or temporary HP from raw input. Nil values are skipped.
	UpdateHP(ctx context.Context, input *UpdateHPInput) (*summon.SummonedCreature, error)

	// SetTempHP overwrites one creature's temporary HP
	SetTempHP(ctx context.Context, sessionID, creatureID, raw string) (*summon.SummonedCreature, error)

	// Remove dismisses one creature
	Remove(ctx context.Context, sessionID, creatureID string) error

	// ToggleBearSpirit records the aura on the character and, when it turns on,
	// offers its temporary HP to every creature in the session
	ToggleBearSpirit(ctx context.Context, input *BearSpiritInput) (*BearSpiritResult, error)

	// EndSession dismisses every creature in the session
	EndSession(ctx context.Context, sessionID string) error
}

// SpellDetail is a spell with the creatures it can summon
type SpellDetail struct {
	Spell     catalog.SpellRecord
	Creatures []catalog.MonsterRecord
	// TotalCreatures counts the summonable creatures before filtering
	TotalCreatures int

	AvailableCRs    []string
	AvailableSkills []string
	AvailableTraits []string
}

// CreatureDetail is a catalog creature with its hit points parsed
type CreatureDetail struct {
	Creature catalog.MonsterRecord
	HPMax    int
	HitDice  string
}

// MaxQuantity is the most creatures one summoning can create
const MaxQuantity = 8

// SummonInput describes one summoning
type SummonInput struct {
	SessionID    string
	CreatureName string
	Quantity     int
	Overrides    summon.Overrides

	// MightySummoner forces the feature on or off. When nil the character's
	// feature flag is used, or off if there is no character.
	MightySummoner *bool
	CharacterID    string
}

type UpdateHPInput struct {
	SessionID  string
	CreatureID string
	CurrentHP  *string
	TempHP     *string
}

type BearSpiritInput struct {
	SessionID   string
	CharacterID string
	Active      bool
}

// BearSpiritResult reports what the aura did
type BearSpiritResult struct {
	Active bool
	// TempHP is the amount offered, 0 when toggled off
	TempHP    int
	Creatures []summon.SummonedCreature
}

type service struct {
	source           catalog.Source
	repository       Repository
	characterService character.Service
	summoner         *summon.Summoner

	mu      sync.Mutex
	catalog *catalog.Catalog
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Source           catalog.Source    // Required
	Repository       Repository        // Required
	CharacterService character.Service // Required
	UUIDGenerator    uuid.Generator    // Optional, will use default if nil
}

// NewService creates a new summoning service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Source == nil {
		panic("catalog source is required")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.CharacterService == nil {
		panic("character service is required")
	}

	ids := cfg.UUIDGenerator
	if ids == nil {
		ids = uuid.NewGoogleUUIDGenerator("")
	}

	return &service{
		source:           cfg.Source,
		repository:       cfg.Repository,
		characterService: cfg.CharacterService,
		summoner:         summon.NewSummoner(ids),
	}
}

// loadCatalog reads the catalog once. A failed load is retried on the next call.
func (s *service) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.catalog != nil {
		return s.catalog, nil
	}

	loaded, err := catalog.Load(ctx, s.source)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeUnavailable, "failed to load catalog")
	}

	log.Printf("Loaded catalog with %d monsters and %d spells", len(loaded.Monsters), len(loaded.Spells))
	s.catalog = loaded

	return s.catalog, nil
}

func (s *service) ListConjureSpells(ctx context.Context) ([]catalog.SpellRecord, error) {
	cat, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	return cat.ConjureSpells(), nil
}

func (s *service) GetSpellDetail(ctx context.Context, spellName string, filter catalog.CreatureFilter) (*SpellDetail, error) {
	cat, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	spell, ok := cat.FindSpell(spellName)
	if !ok {
		return nil, dnderr.NotFoundf("spell '%s' not found", spellName).
			WithMeta("spell", spellName)
	}

	creatures := summon.ResolveSummonable(spell.Name, cat.Monsters)

	return &SpellDetail{
		Spell:           spell,
		Creatures:       filter.Apply(creatures),
		TotalCreatures:  len(creatures),
		AvailableCRs:    catalog.AvailableCRs(creatures),
		AvailableSkills: catalog.AvailableSkills(creatures),
		AvailableTraits: catalog.AvailableTraits(creatures),
	}, nil
}

func (s *service) ListSummonable(ctx context.Context, spellName string) ([]catalog.MonsterRecord, error) {
	canonical, ok := conjureSpellName(spellName)
	if !ok {
		return nil, dnderr.NotFoundf("'%s' is not a summoning spell", spellName).
			WithMeta("spell", spellName)
	}

	cat, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	return summon.ResolveSummonable(canonical, cat.Monsters), nil
}

// conjureSpellName matches typed input against the summoning spell names
func conjureSpellName(name string) (string, bool) {
	for _, spell := range rulebook.ConjureSpellNames() {
		if strings.EqualFold(spell, strings.TrimSpace(name)) {
			return spell, true
		}
	}
	return "", false
}

func (s *service) SearchCreatures(ctx context.Context, query, crPrefix string) ([]catalog.MonsterRecord, error) {
	cat, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	return cat.SearchMonsters(query, crPrefix), nil
}

func (s *service) GetCreature(ctx context.Context, name string) (*CreatureDetail, error) {
	cat, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	monster, ok := cat.FindMonster(name)
	if !ok {
		return nil, dnderr.NotFoundf("creature '%s' not found", name).
			WithMeta("creature", name)
	}

	hpMax, hitDice := catalog.ParseHitPoints(monster.HitPoints)

	return &CreatureDetail{
		Creature: monster,
		HPMax:    hpMax,
		HitDice:  hitDice,
	}, nil
}

func (s *service) Summon(ctx context.Context, input *SummonInput) ([]summon.SummonedCreature, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, dnderr.InvalidArgument("session ID is required")
	}
	if input.Quantity > MaxQuantity {
		return nil, dnderr.InvalidArgumentf("can summon at most %d creatures at once", MaxQuantity).
			WithMeta("quantity", input.Quantity)
	}

	cat, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	entry, ok := cat.FindMonster(input.CreatureName)
	if !ok {
		return nil, dnderr.NotFoundf("creature '%s' not found", input.CreatureName).
			WithMeta("creature", input.CreatureName)
	}

	mighty, err := s.mightySummoner(ctx, input)
	if err != nil {
		return nil, err
	}

	roster, err := s.repository.Get(ctx, input.SessionID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to load summons for session '%s'", input.SessionID)
	}

	created := s.summoner.CreateInstances(entry, input.Overrides, input.Quantity, mighty)
	if len(created) == 0 {
		return created, nil
	}

	roster.Add(created...)

	if err := s.repository.Save(ctx, input.SessionID, roster); err != nil {
		return nil, dnderr.Wrapf(err, "failed to save summons for session '%s'", input.SessionID)
	}

	return created, nil
}

func (s *service) mightySummoner(ctx context.Context, input *SummonInput) (bool, error) {
	if input.MightySummoner != nil {
		return *input.MightySummoner, nil
	}
	if input.CharacterID == "" {
		return false, nil
	}

	char, err := s.characterService.Get(ctx, input.CharacterID)
	if err != nil {
		return false, err
	}

	return char.ClassFeatures.MightySummoner, nil
}

func (s *service) ListSummoned(ctx context.Context, sessionID string) ([]summon.SummonedCreature, error) {
	roster, err := s.repository.Get(ctx, sessionID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to load summons for session '%s'", sessionID)
	}

	return roster.List(), nil
}

func (s *service) UpdateHP(ctx context.Context, input *UpdateHPInput) (*summon.SummonedCreature, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}

	return s.mutate(ctx, input.SessionID, input.CreatureID, func(roster *summon.Roster) error {
		if input.CurrentHP != nil && !roster.SetCurrentHP(input.CreatureID, *input.CurrentHP) {
			return dnderr.InvalidArgumentf("current HP '%s' is not a whole number", *input.CurrentHP)
		}
		if input.TempHP != nil && !roster.SetTempHP(input.CreatureID, *input.TempHP) {
			return dnderr.InvalidArgumentf("temporary HP '%s' is not a whole number", *input.TempHP)
		}
		return nil
	})
}

func (s *service) SetTempHP(ctx context.Context, sessionID, creatureID, raw string) (*summon.SummonedCreature, error) {
	return s.mutate(ctx, sessionID, creatureID, func(roster *summon.Roster) error {
		if !roster.SetTempHP(creatureID, raw) {
			return dnderr.InvalidArgumentf("temporary HP '%s' is not a whole number", raw)
		}
		return nil
	})
}

// mutate loads the roster, applies fn to an existing creature and saves.
// Nothing is saved when fn fails.
func (s *service) mutate(ctx context.Context, sessionID, creatureID string, fn func(*summon.Roster) error) (*summon.SummonedCreature, error) {
	roster, err := s.repository.Get(ctx, sessionID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to load summons for session '%s'", sessionID)
	}

	if _, ok := roster.Get(creatureID); !ok {
		return nil, dnderr.NotFoundf("summoned creature '%s' not found", creatureID).
			WithMeta("session_id", sessionID).
			WithMeta("creature_id", creatureID)
	}

	if err := fn(roster); err != nil {
		return nil, err
	}

	if err := s.repository.Save(ctx, sessionID, roster); err != nil {
		return nil, dnderr.Wrapf(err, "failed to save summons for session '%s'", sessionID)
	}

	updated, _ := roster.Get(creatureID)
	return &updated, nil
}

func (s *service) Remove(ctx context.Context, sessionID, creatureID string) error {
	roster, err := s.repository.Get(ctx, sessionID)
	if err != nil {
		return dnderr.Wrapf(err, "failed to load summons for session '%s'", sessionID)
	}

	// Already gone
	if !roster.Remove(creatureID) {
		return nil
	}

	if err := s.repository.Save(ctx, sessionID, roster); err != nil {
		return dnderr.Wrapf(err, "failed to save summons for session '%s'", sessionID)
	}

	return nil
}

func (s *service) ToggleBearSpirit(ctx context.Context, input *BearSpiritInput) (*BearSpiritResult, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input is required")
	}

	roster, err := s.repository.Get(ctx, input.SessionID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to load summons for session '%s'", input.SessionID)
	}

	char, err := s.characterService.SetBearSpirit(ctx, input.CharacterID, input.Active)
	if err != nil {
		return nil, err
	}

	result := &BearSpiritResult{Active: input.Active}

	// Turning the aura off leaves granted temporary HP in place
	if input.Active {
		result.TempHP = roster.ApplyBearSpirit(char.ClassLevel(rulebook.ClassDruid))
		if err := s.repository.Save(ctx, input.SessionID, roster); err != nil {
			// The flag must not stay on without the temporary HP behind it
			if _, revertErr := s.characterService.SetBearSpirit(ctx, input.CharacterID, false); revertErr != nil {
				log.Printf("Failed to switch Bear Spirit back off for %s: %v", input.CharacterID, revertErr)
			}
			return nil, dnderr.Wrapf(err, "failed to save summons for session '%s'", input.SessionID)
		}
	}

	result.Creatures = roster.List()

	return result, nil
}

func (s *service) EndSession(ctx context.Context, sessionID string) error {
	if err := s.repository.Delete(ctx, sessionID); err != nil {
		return dnderr.Wrapf(err, "failed to end session '%s'", sessionID)
	}
	return nil
}
