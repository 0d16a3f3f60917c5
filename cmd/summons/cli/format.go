package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	domain "github.com/KirkDiggler/druid-summons/internal/domain/character"
	"github.com/KirkDiggler/druid-summons/internal/domain/catalog"
	"github.com/KirkDiggler/druid-summons/internal/domain/shared"
	"github.com/KirkDiggler/druid-summons/internal/domain/summon"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printCharacter(w io.Writer, char *domain.Character) {
	name := char.Name
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(w, "%s [%s]\n", name, char.ID)
	if char.Race != "" {
		fmt.Fprintf(w, "Race: %s\n", char.Race)
	}

	for _, class := range char.Classes {
		if class.Subclass != "" {
			fmt.Fprintf(w, "  %s (%s) %d, %s\n", class.Name, class.Subclass, class.Level, class.HitDie)
			continue
		}
		fmt.Fprintf(w, "  %s %d, %s\n", class.Name, class.Level, class.HitDie)
	}

	scores := make([]string, 0, len(shared.Attributes))
	for _, attr := range shared.Attributes {
		scores = append(scores, fmt.Sprintf("%s %d", attr.Short(), char.AbilityScores[attr]))
	}
	fmt.Fprintf(w, "Scores: %s\n", strings.Join(scores, "  "))

	fmt.Fprintf(w, "Level %d, proficiency +%d, caster level %d\n",
		char.Derived.TotalLevel, char.Derived.ProficiencyBonus, char.Derived.SpellcasterLevel)
	fmt.Fprintf(w, "HP %d/%d  AC %d\n", char.CurrentHP, char.MaxHP, char.AC)

	if dice := formatHitDice(char.Derived.HitDicePool); dice != "" {
		fmt.Fprintf(w, "Hit dice: %s\n", dice)
	}

	slots := make([]string, 0, len(char.Derived.SpellSlots))
	for _, slot := range char.Derived.SpellSlots {
		slots = append(slots, fmt.Sprintf("%s:%d", slot.Level, slot.Count))
	}
	if len(slots) > 0 {
		fmt.Fprintf(w, "Spell slots: %s\n", strings.Join(slots, " "))
	}

	features := char.ClassFeatures
	fmt.Fprintf(w, "Mighty Summoner: %s  Bear Spirit: %s\n", onOff(features.MightySummoner), onOff(features.BearSpiritActive))
}

func formatHitDice(pool map[string]int) string {
	dice := make([]string, 0, len(pool))
	for die := range pool {
		dice = append(dice, die)
	}
	sort.Slice(dice, func(i, j int) bool {
		return dieSides(dice[i]) > dieSides(dice[j])
	})

	parts := make([]string, 0, len(dice))
	for _, die := range dice {
		parts = append(parts, fmt.Sprintf("%d%s", pool[die], die))
	}
	return strings.Join(parts, " + ")
}

// dieSides reads "d10" as 10
func dieSides(die string) int {
	sides, _ := strconv.Atoi(strings.TrimPrefix(die, "d"))
	return sides
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func printMonsters(w io.Writer, monsters []catalog.MonsterRecord) error {
	if len(monsters) == 0 {
		fmt.Fprintln(w, "No creatures found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCR\tHP\tAC\tTYPE")
	for _, m := range monsters {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", m.Name, m.ChallengeToken(), m.HitPoints, m.ArmorClass, m.Meta)
	}
	return tw.Flush()
}

func printRoster(w io.Writer, creatures []summon.SummonedCreature) error {
	if len(creatures) == 0 {
		fmt.Fprintln(w, "Nothing summoned.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tHP\tTEMP\tAC")
	for _, c := range creatures {
		fmt.Fprintf(tw, "%s\t%s\t%d/%d\t%d\t%s\n", c.ID, c.Name, c.CurrentHP, c.HPMax, c.TempHP, c.ArmorClass)
	}
	return tw.Flush()
}

func printCreature(w io.Writer, c summon.SummonedCreature) {
	fmt.Fprintf(w, "%s [%s] HP %d/%d", c.Name, c.ID, c.CurrentHP, c.HPMax)
	if c.TempHP > 0 {
		fmt.Fprintf(w, " +%d temp", c.TempHP)
	}
	fmt.Fprintln(w)
}
