package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/druid-summons/internal/domain/character"
	charactersRepo "github.com/KirkDiggler/druid-summons/internal/repositories/characters"
)

// Backfills class entries saved before hit dice, caster types and
// multiclass requirements were stored on them, then saves the sheet
// with freshly derived stats.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: fix-character <character-id>")
		os.Exit(1)
	}

	characterID := os.Args[1]
	ctx := context.Background()

	_ = godotenv.Load()

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)
	defer client.Close()

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	repo := charactersRepo.NewRedis(client)

	char, err := repo.Get(ctx, characterID)
	if err != nil {
		log.Fatalf("Failed to get character: %v", err)
	}

	log.Printf("Character: %s (ID: %s)", char.Name, char.ID)
	log.Printf("Classes: %d, Total level: %d, Caster level: %d",
		len(char.Classes), char.Derived.TotalLevel, char.Derived.SpellcasterLevel)

	fixed := 0
	classes := make([]character.ClassEntry, 0, len(char.Classes))
	for _, class := range char.Classes {
		filled := character.NewClassEntry(class.Name, class.Subclass, class.Level)
		if class.HitDie != "" {
			filled.HitDie = class.HitDie
		}
		if class.Spellcasting != "" {
			filled.Spellcasting = class.Spellcasting
		}
		if class.PrimaryAbility != nil {
			filled.PrimaryAbility = class.PrimaryAbility
		}

		if filled.HitDie != class.HitDie || filled.Spellcasting != class.Spellcasting ||
			len(filled.PrimaryAbility) != len(class.PrimaryAbility) {
			log.Printf("  %s %d: hit die %q, spellcasting %q", filled.Name, filled.Level, filled.HitDie, filled.Spellcasting)
			fixed++
		}
		classes = append(classes, filled)
	}

	char.SetClasses(classes)

	if err := repo.Update(ctx, char); err != nil {
		log.Fatalf("Failed to update character: %v", err)
	}

	fmt.Printf("Saved %s: %d class entries backfilled, proficiency +%d, %d spell slot levels\n",
		char.ID, fixed, char.Derived.ProficiencyBonus, len(char.Derived.SpellSlots))
}
