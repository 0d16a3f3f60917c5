package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/druid-summons/internal/config"
	"github.com/KirkDiggler/druid-summons/internal/repositories/summons"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	redisURL := cfg.Redis.URL
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)
	defer client.Close()

	if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}

	repo := summons.NewRedis(client, cfg.Redis.SummonsTTL)

	sessionIDs, err := repo.ListSessions(ctx)
	if err != nil {
		log.Fatalf("Failed to list sessions: %v", err)
	}

	fmt.Printf("Found %d sessions with summons:\n", len(sessionIDs))
	for _, id := range sessionIDs {
		ttl, ttlErr := client.TTL(ctx, "summons:"+id).Result()
		if ttlErr != nil {
			fmt.Printf("  %s: ERROR - %v\n", id, ttlErr)
			continue
		}

		// repo.Get slides the expiry, read the raw key instead
		data, getErr := client.Get(ctx, "summons:"+id).Bytes()
		if getErr != nil {
			fmt.Printf("  %s: ERROR - %v\n", id, getErr)
			continue
		}

		fmt.Printf("  %s: %d bytes, expires in %s\n", id, len(data), ttl.Round(1e9))
	}
}
