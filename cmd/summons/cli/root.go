// Package cli holds the summons command tree
package cli

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/druid-summons/internal/services/character"
	"github.com/KirkDiggler/druid-summons/internal/services/summoning"
)

// DefaultSessionID is the roster the CLI uses when --session is not given
const DefaultSessionID = "cli"

// Deps are the services the commands call
type Deps struct {
	CharacterService character.Service // Required
	SummoningService summoning.Service // Required
	CharacterID      string            // Required
}

type runner struct {
	characters  character.Service
	summoning   summoning.Service
	characterID string
	sessionID   string
	jsonOutput  bool
}

// NewRootCmd builds the command tree over deps
func NewRootCmd(deps *Deps) *cobra.Command {
	if deps == nil || deps.CharacterService == nil || deps.SummoningService == nil {
		panic("character and summoning services are required")
	}

	r := &runner{
		characters:  deps.CharacterService,
		summoning:   deps.SummoningService,
		characterID: deps.CharacterID,
	}

	root := &cobra.Command{
		Use:   "summons",
		Short: "Druid character sheet and summon tracker",
		Long: `Manage a D&D 5e character sheet and the creatures it summons.

Conjure spells list the beasts, fey and elementals they can call up. Summoned
creatures are tracked per session with their own hit points.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&r.sessionID, "session", DefaultSessionID, "Session whose summons to use")
	root.PersistentFlags().StringVar(&r.characterID, "character", deps.CharacterID, "Character sheet ID")
	root.PersistentFlags().BoolVar(&r.jsonOutput, "json", false, "Output in JSON format")

	root.AddCommand(r.characterCmd())
	root.AddCommand(r.spellsCmd())
	root.AddCommand(r.spellCmd())
	root.AddCommand(r.summonableCmd())
	root.AddCommand(r.creaturesCmd())
	root.AddCommand(r.creatureCmd())
	root.AddCommand(r.summonCmd())
	root.AddCommand(r.summonedCmd())
	root.AddCommand(r.bearSpiritCmd())

	return root
}
