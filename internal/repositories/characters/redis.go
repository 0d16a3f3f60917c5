package characters

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/druid-summons/internal/clock"
	"github.com/KirkDiggler/druid-summons/internal/domain/character"
	dnderr "github.com/KirkDiggler/druid-summons/internal/errors"
	"github.com/redis/go-redis/v9"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
	Clock  clock.Clock
}

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client redis.UniversalClient
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis-backed character repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}

	return &redisRepo{
		client: cfg.Client,
		clock:  cfg.Clock,
	}
}

func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("character:%s", id)
}

// Create stores a new character
func (r *redisRepo) Create(ctx context.Context, char *character.Character) error {
	if char == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(char.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check character existence: %w", err)
	}
	if exists > 0 {
		return dnderr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}

	stored := char.Clone()
	stored.CreatedAt = r.clock.Now()
	stored.UpdatedAt = stored.CreatedAt

	if err := r.write(ctx, stored); err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}

	char.CreatedAt = stored.CreatedAt
	char.UpdatedAt = stored.UpdatedAt

	return nil
}

// Get retrieves a character by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Result()
	if err == redis.Nil {
		return nil, dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	var char character.Character
	if unmarshalErr := json.Unmarshal([]byte(jsonData), &char); unmarshalErr != nil {
		return nil, dnderr.WrapWithCode(unmarshalErr, dnderr.CodeInternal, "failed to unmarshal character").
			WithMeta("character_id", id)
	}

	if char.AbilityScores == nil {
		char.AbilityScores = character.DefaultAbilityScores()
	}

	// Stored derived stats may predate a rule table change
	char.Recalculate()

	return &char, nil
}

// Update replaces an existing character
func (r *redisRepo) Update(ctx context.Context, char *character.Character) error {
	if char == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(char.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check character existence: %w", err)
	}
	if exists == 0 {
		return dnderr.NotFoundf("character with ID '%s' not found", char.ID).
			WithMeta("character_id", char.ID)
	}

	stored := char.Clone()
	stored.UpdatedAt = r.clock.Now()

	if err := r.write(ctx, stored); err != nil {
		return fmt.Errorf("failed to update character: %w", err)
	}

	char.UpdatedAt = stored.UpdatedAt

	return nil
}

// Delete removes a character
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	deleted, err := r.client.Del(ctx, r.key(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}
	if deleted == 0 {
		return dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	return nil
}

func (r *redisRepo) write(ctx context.Context, char *character.Character) error {
	jsonData, err := json.Marshal(char)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	// Characters are kept until deleted
	return r.client.Set(ctx, r.key(char.ID), string(jsonData), 0).Err()
}
