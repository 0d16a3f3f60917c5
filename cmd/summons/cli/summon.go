package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/druid-summons/internal/domain/shared"
	"github.com/KirkDiggler/druid-summons/internal/domain/summon"
	dnderr "github.com/KirkDiggler/druid-summons/internal/errors"
	"github.com/KirkDiggler/druid-summons/internal/services/summoning"
)

func (r *runner) summonCmd() *cobra.Command {
	var (
		quantity int
		mighty   bool
		hp       string
		ac       string
		scores   map[string]string
	)

	cmd := &cobra.Command{
		Use:   "summon [creature]",
		Short: "Summon creatures into the session",
		Long: `Summon one or more copies of a catalog creature.

Without --mighty the character sheet decides whether Mighty Summoner applies.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if quantity > summoning.MaxQuantity {
				return dnderr.InvalidArgumentf("--quantity can be at most %d", summoning.MaxQuantity)
			}

			input := &summoning.SummonInput{
				SessionID:    r.sessionID,
				CreatureName: strings.Join(args, " "),
				Quantity:     quantity,
				CharacterID:  r.characterID,
			}

			if cmd.Flags().Changed("mighty") {
				input.MightySummoner = &mighty
			}
			if cmd.Flags().Changed("hp") {
				input.Overrides.HitPoints = &hp
			}
			if cmd.Flags().Changed("ac") {
				input.Overrides.ArmorClass = &ac
			}
			if len(scores) > 0 {
				input.Overrides.Scores = make(map[shared.Attribute]string, len(scores))
				for key, value := range scores {
					attr := shared.ParseAttribute(key)
					if attr == shared.AttributeNone {
						return dnderr.InvalidArgumentf("unknown ability '%s'", key)
					}
					input.Overrides.Scores[attr] = value
				}
			}

			created, err := r.summoning.Summon(cmd.Context(), input)
			if err != nil {
				return err
			}

			if r.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), created)
			}

			w := cmd.OutOrStdout()
			if len(created) == 0 {
				fmt.Fprintln(w, "Nothing summoned.")
				return nil
			}
			fmt.Fprintf(w, "Summoned %d × %s\n", len(created), created[0].Name)
			for _, c := range created {
				printCreature(w, c)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&quantity, "quantity", "n", 1, "How many to summon")
	cmd.Flags().BoolVar(&mighty, "mighty", false, "Force Mighty Summoner on or off")
	cmd.Flags().StringVar(&hp, "hp", "", "Hit points text override, e.g. \"30 (4d8 + 12)\"")
	cmd.Flags().StringVar(&ac, "ac", "", "Armor class override")
	cmd.Flags().StringToStringVar(&scores, "score", nil, "Ability score overrides, e.g. str=16")

	return cmd
}

func (r *runner) summonedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summoned",
		Short: "Track the creatures in the session",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the summoned creatures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			creatures, err := r.summoning.ListSummoned(cmd.Context(), r.sessionID)
			if err != nil {
				return err
			}

			if r.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), creatures)
			}
			return printRoster(cmd.OutOrStdout(), creatures)
		},
	})

	cmd.AddCommand(r.summonedHPCmd())

	cmd.AddCommand(&cobra.Command{
		Use:   "temp-hp [id] [amount]",
		Short: "Set a creature's temporary HP",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := r.summoning.SetTempHP(cmd.Context(), r.sessionID, args[0], args[1])
			if err != nil {
				return err
			}
			return r.printUpdated(cmd, updated)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove [id]",
		Short: "Dismiss one creature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.summoning.Remove(cmd.Context(), r.sessionID, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Dismissed %s\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Dismiss every creature in the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := r.summoning.EndSession(cmd.Context(), r.sessionID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared session %s\n", r.sessionID)
			return nil
		},
	})

	return cmd
}

func (r *runner) summonedHPCmd() *cobra.Command {
	var current, temp string

	cmd := &cobra.Command{
		Use:   "hp [id]",
		Short: "Set a creature's current and/or temporary HP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := &summoning.UpdateHPInput{
				SessionID:  r.sessionID,
				CreatureID: args[0],
			}
			if cmd.Flags().Changed("current") {
				input.CurrentHP = &current
			}
			if cmd.Flags().Changed("temp") {
				input.TempHP = &temp
			}
			if input.CurrentHP == nil && input.TempHP == nil {
				return dnderr.InvalidArgument("set --current and/or --temp")
			}

			updated, err := r.summoning.UpdateHP(cmd.Context(), input)
			if err != nil {
				return err
			}
			return r.printUpdated(cmd, updated)
		},
	}

	cmd.Flags().StringVar(&current, "current", "", "Current HP")
	cmd.Flags().StringVar(&temp, "temp", "", "Temporary HP")

	return cmd
}

func (r *runner) printUpdated(cmd *cobra.Command, updated *summon.SummonedCreature) error {
	if r.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), updated)
	}
	printCreature(cmd.OutOrStdout(), *updated)
	return nil
}

func (r *runner) bearSpiritCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "bear-spirit [on|off]",
		Short:     "Toggle the Bear Spirit aura",
		Long:      `Turning the aura on grants temporary HP equal to 5 + druid level to every summoned creature. Turning it off leaves granted HP in place.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var active bool
			switch strings.ToLower(args[0]) {
			case "on":
				active = true
			case "off":
				active = false
			default:
				return dnderr.InvalidArgumentf("bear spirit must be on or off, not '%s'", args[0])
			}

			result, err := r.summoning.ToggleBearSpirit(cmd.Context(), &summoning.BearSpiritInput{
				SessionID:   r.sessionID,
				CharacterID: r.characterID,
				Active:      active,
			})
			if err != nil {
				return err
			}

			if r.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), result)
			}

			w := cmd.OutOrStdout()
			if result.Active {
				fmt.Fprintf(w, "🐻 Bear Spirit on: %d temporary HP offered\n", result.TempHP)
			} else {
				fmt.Fprintln(w, "Bear Spirit off")
			}
			return printRoster(w, result.Creatures)
		},
	}
}
