package summons

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/druid-summons/internal/domain/summon"
	dnderr "github.com/KirkDiggler/druid-summons/internal/errors"
)

// InMemoryRepository keeps rosters for the life of the process
type InMemoryRepository struct {
	mu      sync.RWMutex
	rosters map[string]*summon.Roster
}

func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		rosters: make(map[string]*summon.Roster),
	}
}

func (r *InMemoryRepository) Get(ctx context.Context, sessionID string) (*summon.Roster, error) {
	if sessionID == "" {
		return nil, dnderr.InvalidArgument("session ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	roster, exists := r.rosters[sessionID]
	if !exists {
		return summon.NewRoster(), nil
	}

	return roster.Clone(), nil
}

func (r *InMemoryRepository) Save(ctx context.Context, sessionID string, roster *summon.Roster) error {
	if sessionID == "" {
		return dnderr.InvalidArgument("session ID is required")
	}
	if roster == nil {
		return dnderr.InvalidArgument("roster cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.rosters[sessionID] = roster.Clone()

	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return dnderr.InvalidArgument("session ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.rosters, sessionID)

	return nil
}

func (r *InMemoryRepository) ListSessions(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.rosters))
	for id := range r.rosters {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids, nil
}
