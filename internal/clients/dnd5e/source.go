package dnd5e

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/druid-summons/internal/domain/catalog"
	"github.com/KirkDiggler/druid-summons/internal/domain/rulebook"
	dnderr "github.com/KirkDiggler/druid-summons/internal/errors"
)

const (
	defaultCacheTTL    = 24 * time.Hour
	defaultConcurrency = 8
)

type Config struct {
	HTTPClient *http.Client
	BaseURL    string
	CacheTTL   time.Duration
	// Concurrency bounds the number of monster detail requests in flight
	Concurrency int
}

// Source serves the catalog from the D&D 5e API
type Source struct {
	client      Client
	concurrency int
}

// New builds a Source over the library's cached API client
func New(cfg *Config) (*Source, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("dnd5e config is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	base, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to create D&D 5e API client")
	}

	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return NewWithClient(dnd5e.NewCachedClient(base, ttl), cfg.Concurrency), nil
}

// NewWithClient wraps an existing client; concurrency <= 0 uses the default
func NewWithClient(client Client, concurrency int) *Source {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &Source{client: client, concurrency: concurrency}
}

// Monsters lists every monster a conjuring spell could summon and fetches
// their details concurrently. The API filters by exact CR only, so each
// standard CR up to the highest summon cap is listed in turn. Monsters whose
// details fail to load are skipped.
func (s *Source) Monsters(ctx context.Context) ([]catalog.MonsterRecord, error) {
	var keys []string
	seen := make(map[string]bool)

	for _, cr := range challengeRatingsUpTo(maxSummonCR()) {
		cr := cr
		refs, err := s.client.ListMonstersWithFilter(&dnd5e.ListMonstersInput{
			ChallengeRating: &cr,
		})
		if err != nil {
			return nil, dnderr.Wrapf(err, "failed to list CR %g monsters from D&D 5e API", cr)
		}

		for _, ref := range refs {
			if ref == nil || ref.Key == "" || seen[ref.Key] {
				continue
			}
			seen[ref.Key] = true
			keys = append(keys, ref.Key)
		}
	}

	records := make([]*catalog.MonsterRecord, len(keys))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, key := range keys {
		i, key := i, key
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			monster, err := s.client.GetMonster(key)
			if err != nil {
				log.Printf("Failed to get monster %s: %v", key, err)
				return nil
			}
			if monster == nil {
				return nil
			}

			record := monsterToRecord(monster)
			records[i] = &record
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, dnderr.Wrap(err, "loading monster details was cancelled")
	}

	monsters := make([]catalog.MonsterRecord, 0, len(records))
	for _, record := range records {
		if record != nil {
			monsters = append(monsters, *record)
		}
	}

	return monsters, nil
}

// standardChallengeRatings are the CR values published in the SRD
var standardChallengeRatings = []float64{0, 0.125, 0.25, 0.5, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10,
	11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30}

func challengeRatingsUpTo(maxCR float64) []float64 {
	var result []float64
	for _, cr := range standardChallengeRatings {
		if cr <= maxCR {
			result = append(result, cr)
		}
	}
	return result
}

// maxSummonCR is the highest CR any conjuring spell allows
func maxSummonCR() float64 {
	highest := 0.0
	for _, name := range rulebook.ConjureSpellNames() {
		mapping, _ := rulebook.SummonMappingFor(name)
		if mapping.CRMax > highest {
			highest = mapping.CRMax
		}
	}
	return highest
}

// Spells fetches only the conjuring spells; the rest of the spell list is
// never shown by this app
func (s *Source) Spells(ctx context.Context) ([]catalog.SpellRecord, error) {
	names := rulebook.ConjureSpellNames()
	records := make([]*catalog.SpellRecord, len(names))

	var mu sync.Mutex
	var missing []string

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			spell, err := s.client.GetSpell(toAPIKey(name))
			if err != nil || spell == nil {
				mu.Lock()
				missing = append(missing, name)
				mu.Unlock()
				return nil
			}

			record := spellToRecord(spell)
			records[i] = &record
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, dnderr.Wrap(err, "loading spells was cancelled")
	}

	if len(missing) > 0 {
		log.Printf("D&D 5e API has no entry for %d conjuring spells: %s", len(missing), strings.Join(missing, ", "))
	}

	spells := make([]catalog.SpellRecord, 0, len(records))
	for _, record := range records {
		if record != nil {
			spells = append(spells, *record)
		}
	}

	return spells, nil
}

// toAPIKey converts "Conjure Animals" to "conjure-animals"
func toAPIKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

func monsterToRecord(monster *apiEntities.Monster) catalog.MonsterRecord {
	record := catalog.MonsterRecord{
		Name:       monster.Name,
		Meta:       fmt.Sprintf("%v", monster.Type),
		ArmorClass: fmt.Sprintf("%v", monster.ArmorClass),
		Challenge:  formatChallenge(float64(monster.ChallengeRating)),
	}

	if monster.HitDice != "" {
		record.HitPoints = fmt.Sprintf("%v (%s)", monster.HitPoints, monster.HitDice)
	} else {
		record.HitPoints = fmt.Sprintf("%v", monster.HitPoints)
	}

	actions := make([]string, 0, len(monster.MonsterActions))
	for _, action := range monster.MonsterActions {
		if action == nil {
			continue
		}
		actions = append(actions, fmt.Sprintf("%s. %s", action.Name, action.Description))
	}
	record.Actions = strings.Join(actions, " ")

	return record
}

// formatChallenge writes a CR the way stat blocks do: fractions below 1
func formatChallenge(cr float64) string {
	switch cr {
	case 0.125:
		return "1/8"
	case 0.25:
		return "1/4"
	case 0.5:
		return "1/2"
	}
	return fmt.Sprintf("%g", cr)
}

func spellToRecord(spell *apiEntities.Spell) catalog.SpellRecord {
	record := catalog.SpellRecord{
		Name:        spell.Name,
		Level:       fmt.Sprintf("%d", spell.SpellLevel),
		CastingTime: spell.CastingTime,
		Range:       spell.Range,
		Duration:    spell.Duration,
	}
	if spell.SpellLevel == 0 {
		record.Level = "cantrip"
	}
	if spell.SpellSchool != nil {
		record.School = strings.ToLower(spell.SpellSchool.Name)
	}
	return record
}
