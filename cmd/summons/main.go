// Package main is the entry point for the summons command line tool
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/druid-summons/cmd/summons/cli"
	"github.com/KirkDiggler/druid-summons/internal/app"
	"github.com/KirkDiggler/druid-summons/internal/config"
	dnderr "github.com/KirkDiggler/druid-summons/internal/errors"
)

func main() {
	// Wiring chatter is only useful with SUMMONS_DEBUG set
	if os.Getenv("SUMMONS_DEBUG") == "" {
		log.SetOutput(io.Discard)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	a, err := app.New(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	root := cli.NewRootCmd(&cli.Deps{
		CharacterService: a.Provider.CharacterService,
		SummoningService: a.Provider.SummoningService,
		CharacterID:      a.CharacterID,
	})
	root.SilenceErrors = true

	runErr := root.ExecuteContext(ctx)

	if err := a.Close(); err != nil {
		log.Printf("Error closing: %v", err)
	}

	if runErr != nil {
		log.Printf("command failed: %v", runErr)
		fmt.Fprintf(os.Stderr, "Error: %s\n", dnderr.UserMessage(runErr))
		os.Exit(1)
	}
}
