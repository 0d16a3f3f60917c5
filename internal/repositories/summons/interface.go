package summons

//go:generate mockgen -destination=mock/mock.go -package=mocksummons -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/druid-summons/internal/domain/summon"
)

// Repository stores one roster of summoned creatures per play session.
// A session with nothing stored has an empty roster.
type Repository interface {
	// Get returns the session roster, empty when none is stored
	Get(ctx context.Context, sessionID string) (*summon.Roster, error)

	// Save replaces the session roster
	Save(ctx context.Context, sessionID string, roster *summon.Roster) error

	// Delete ends the session and drops its roster
	Delete(ctx context.Context, sessionID string) error

	// ListSessions returns the IDs of sessions with a stored roster, sorted
	ListSessions(ctx context.Context) ([]string, error)
}
