package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/druid-summons/internal/domain/catalog"
)

func (r *runner) spellsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spells",
		Short: "List the summoning spells",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spells, err := r.summoning.ListConjureSpells(cmd.Context())
			if err != nil {
				return err
			}

			if r.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), spells)
			}

			w := cmd.OutOrStdout()
			for _, spell := range spells {
				fmt.Fprintf(w, "%s (level %s)\n", spell.Name, spell.Level)
			}
			return nil
		},
	}
}

func (r *runner) spellCmd() *cobra.Command {
	var filter catalog.CreatureFilter

	cmd := &cobra.Command{
		Use:   "spell [name]",
		Short: "Show a spell and the creatures it can summon",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := r.summoning.GetSpellDetail(cmd.Context(), strings.Join(args, " "), filter)
			if err != nil {
				return err
			}

			if r.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), detail)
			}

			w := cmd.OutOrStdout()
			spell := detail.Spell
			fmt.Fprintf(w, "%s (level %s %s)\n", spell.Name, spell.Level, spell.School)
			if spell.CastingTime != "" {
				fmt.Fprintf(w, "Casting time: %s  Range: %s  Duration: %s\n", spell.CastingTime, spell.Range, spell.Duration)
			}
			if spell.Description != "" {
				fmt.Fprintf(w, "\n%s\n", spell.Description)
			}

			fmt.Fprintf(w, "\nShowing %d of %d creatures\n", len(detail.Creatures), detail.TotalCreatures)
			if len(detail.AvailableCRs) > 0 {
				fmt.Fprintf(w, "CRs: %s\n", strings.Join(detail.AvailableCRs, ", "))
			}
			return printMonsters(w, detail.Creatures)
		},
	}

	cmd.Flags().StringVar(&filter.CR, "cr", "", "Only creatures with this challenge rating")
	cmd.Flags().StringVar(&filter.Skill, "skill", "", "Only creatures whose skills mention this")
	cmd.Flags().StringVar(&filter.Trait, "trait", "", "Only creatures whose traits mention this")

	return cmd
}

func (r *runner) summonableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summonable [spell]",
		Short: "List every creature a spell can summon",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			creatures, err := r.summoning.ListSummonable(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			if r.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), creatures)
			}
			return printMonsters(cmd.OutOrStdout(), creatures)
		},
	}
}

func (r *runner) creaturesCmd() *cobra.Command {
	var crPrefix string

	cmd := &cobra.Command{
		Use:   "creatures [query]",
		Short: "Search the monster catalog by name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}

			creatures, err := r.summoning.SearchCreatures(cmd.Context(), query, crPrefix)
			if err != nil {
				return err
			}

			if r.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), creatures)
			}
			return printMonsters(cmd.OutOrStdout(), creatures)
		},
	}

	cmd.Flags().StringVar(&crPrefix, "cr", "", "Challenge rating prefix")
	return cmd
}

func (r *runner) creatureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "creature [name]",
		Short: "Show one catalog creature",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := r.summoning.GetCreature(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			if r.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), detail)
			}

			w := cmd.OutOrStdout()
			c := detail.Creature
			fmt.Fprintf(w, "%s\n%s\n", c.Name, c.Meta)
			fmt.Fprintf(w, "AC %s  HP %d", c.ArmorClass, detail.HPMax)
			if detail.HitDice != "" {
				fmt.Fprintf(w, " (%s)", detail.HitDice)
			}
			fmt.Fprintf(w, "  Speed %s  CR %s\n", c.Speed, c.ChallengeToken())
			fmt.Fprintf(w, "STR %s  DEX %s  CON %s  INT %s  WIS %s  CHA %s\n", c.STR, c.DEX, c.CON, c.INT, c.WIS, c.CHA)
			if c.Skills != "" {
				fmt.Fprintf(w, "Skills: %s\n", c.Skills)
			}
			if c.Traits != "" {
				fmt.Fprintf(w, "\n%s\n", c.Traits)
			}
			if c.Actions != "" {
				fmt.Fprintf(w, "\nActions: %s\n", c.Actions)
			}
			return nil
		},
	}
}
