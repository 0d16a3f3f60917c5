package summons

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/KirkDiggler/druid-summons/internal/domain/summon"
	dnderr "github.com/KirkDiggler/druid-summons/internal/errors"
	"github.com/redis/go-redis/v9"
)

const (
	rosterKeyPrefix = "summons:"
	scanBatchSize   = 100

	// A table that goes quiet for this long has ended its session
	defaultSessionTTL = 12 * time.Hour
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client     redis.UniversalClient
	SessionTTL time.Duration
}

type redisRepository struct {
	client     redis.UniversalClient
	sessionTTL time.Duration
}

// NewRedisRepository creates a new Redis-backed roster repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	ttl := cfg.SessionTTL
	if ttl == 0 {
		ttl = defaultSessionTTL
	}

	return &redisRepository{
		client:     cfg.Client,
		sessionTTL: ttl,
	}
}

func (r *redisRepository) key(sessionID string) string {
	return rosterKeyPrefix + sessionID
}

// Get retrieves the session roster and extends its TTL
func (r *redisRepository) Get(ctx context.Context, sessionID string) (*summon.Roster, error) {
	if sessionID == "" {
		return nil, dnderr.InvalidArgument("session ID is required")
	}

	rosterKey := r.key(sessionID)

	data, err := r.client.Get(ctx, rosterKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return summon.NewRoster(), nil
		}
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}

	roster := summon.NewRoster()
	if err := json.Unmarshal(data, roster); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInternal, "failed to deserialize roster").
			WithMeta("session_id", sessionID)
	}

	// Refresh TTL
	if err := r.client.Expire(ctx, rosterKey, r.sessionTTL).Err(); err != nil {
		log.Printf("Failed to refresh roster TTL for session %s: %v", sessionID, err)
	}

	return roster, nil
}

// Save stores the roster with a fresh TTL
func (r *redisRepository) Save(ctx context.Context, sessionID string, roster *summon.Roster) error {
	if sessionID == "" {
		return dnderr.InvalidArgument("session ID is required")
	}
	if roster == nil {
		return dnderr.InvalidArgument("roster cannot be nil")
	}

	data, err := json.Marshal(roster)
	if err != nil {
		return fmt.Errorf("failed to serialize roster: %w", err)
	}

	if err := r.client.Set(ctx, r.key(sessionID), string(data), r.sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save roster: %w", err)
	}

	return nil
}

// Delete drops the roster. Ending a session with no roster is not an error.
func (r *redisRepository) Delete(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return dnderr.InvalidArgument("session ID is required")
	}

	if err := r.client.Del(ctx, r.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete roster: %w", err)
	}

	return nil
}

// ListSessions scans for roster keys. Expired sessions are already gone.
func (r *redisRepository) ListSessions(ctx context.Context) ([]string, error) {
	var ids []string

	iter := r.client.Scan(ctx, 0, rosterKeyPrefix+"*", scanBatchSize).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, strings.TrimPrefix(iter.Val(), rosterKeyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan rosters: %w", err)
	}

	sort.Strings(ids)
	return ids, nil
}
