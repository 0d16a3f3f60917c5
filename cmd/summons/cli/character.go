package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	domain "github.com/KirkDiggler/druid-summons/internal/domain/character"
	"github.com/KirkDiggler/druid-summons/internal/domain/shared"
	dnderr "github.com/KirkDiggler/druid-summons/internal/errors"
)

func (r *runner) characterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "character",
		Short: "Show and edit the character sheet",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the character sheet with derived stats",
		Args:  cobra.NoArgs,
		RunE:  r.runCharacterShow,
	})
	cmd.AddCommand(r.characterUpdateCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "import [file]",
		Short: "Merge an exported character JSON file into the sheet",
		Long:  `Merge a character JSON export into the sheet. Use - to read from stdin.`,
		Args:  cobra.ExactArgs(1),
		RunE:  r.runCharacterImport,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "prereqs",
		Short: "Check multiclass ability score prerequisites",
		Args:  cobra.NoArgs,
		RunE:  r.runCharacterPrereqs,
	})

	return cmd
}

func (r *runner) runCharacterShow(cmd *cobra.Command, _ []string) error {
	char, err := r.characters.Get(cmd.Context(), r.characterID)
	if err != nil {
		return err
	}

	if r.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), char)
	}

	printCharacter(cmd.OutOrStdout(), char)
	return nil
}

type updateFlags struct {
	name        string
	race        string
	background  string
	alignment   string
	experience  string
	maxHP       string
	currentHP   string
	ac          string
	speed       string
	inspiration string
	features    string
	equipment   string

	classes []string
	scores  map[string]string

	mightySummoner  bool
	guardianSpirit  bool
	faithfulSummons bool
}

func (r *runner) characterUpdateCmd() *cobra.Command {
	flags := &updateFlags{}

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change sheet fields",
		Long: `Change sheet fields. Fields without a flag keep their current value.

Classes are given as NAME:LEVEL or NAME:LEVEL:SUBCLASS and replace the whole
class list, e.g. --class Druid:6:"Circle of the Shepherd" --class Cleric:1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.runCharacterUpdate(cmd, flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.name, "name", "", "Character name")
	f.StringVar(&flags.race, "race", "", "Race")
	f.StringVar(&flags.background, "background", "", "Background")
	f.StringVar(&flags.alignment, "alignment", "", "Alignment")
	f.StringVar(&flags.experience, "xp", "", "Experience points")
	f.StringVar(&flags.maxHP, "max-hp", "", "Maximum hit points")
	f.StringVar(&flags.currentHP, "current-hp", "", "Current hit points")
	f.StringVar(&flags.ac, "ac", "", "Armor class")
	f.StringVar(&flags.speed, "speed", "", "Speed")
	f.StringVar(&flags.inspiration, "inspiration", "", "Inspiration")
	f.StringVar(&flags.features, "features", "", "Features text")
	f.StringVar(&flags.equipment, "equipment", "", "Equipment text")
	f.StringArrayVar(&flags.classes, "class", nil, "Class as NAME:LEVEL[:SUBCLASS] (repeatable)")
	f.StringToStringVar(&flags.scores, "score", nil, "Ability scores, e.g. wis=16,str=8")
	f.BoolVar(&flags.mightySummoner, "mighty-summoner", false, "Mighty Summoner feature")
	f.BoolVar(&flags.guardianSpirit, "guardian-spirit", false, "Guardian Spirit feature")
	f.BoolVar(&flags.faithfulSummons, "faithful-summons", false, "Faithful Summons feature")

	return cmd
}

func (r *runner) runCharacterUpdate(cmd *cobra.Command, flags *updateFlags) error {
	ctx := cmd.Context()

	current, err := r.characters.Get(ctx, r.characterID)
	if err != nil {
		return err
	}

	update := sheetFromCharacter(current)
	changed := cmd.Flags().Changed

	for flag, target := range map[string]*string{
		"name":        &update.Name,
		"race":        &update.Race,
		"background":  &update.Background,
		"alignment":   &update.Alignment,
		"xp":          &update.Experience,
		"max-hp":      &update.MaxHP,
		"current-hp":  &update.CurrentHP,
		"ac":          &update.AC,
		"speed":       &update.Speed,
		"inspiration": &update.Inspiration,
		"features":    &update.Features,
		"equipment":   &update.Equipment,
	} {
		if changed(flag) {
			value, _ := cmd.Flags().GetString(flag)
			*target = value
		}
	}

	if changed("class") {
		classes, err := parseClasses(flags.classes)
		if err != nil {
			return err
		}
		update.Classes = classes
	}

	for key, value := range flags.scores {
		attr := shared.ParseAttribute(key)
		if attr == shared.AttributeNone {
			return dnderr.InvalidArgumentf("unknown ability '%s'", key)
		}
		update.AbilityScores[attr] = value
	}

	if changed("mighty-summoner") {
		update.MightySummoner = flags.mightySummoner
	}
	if changed("guardian-spirit") {
		update.GuardianSpirit = flags.guardianSpirit
	}
	if changed("faithful-summons") {
		update.FaithfulSummons = flags.faithfulSummons
	}

	char, err := r.characters.Update(ctx, r.characterID, update)
	if err != nil {
		return err
	}

	if r.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), char)
	}

	printCharacter(cmd.OutOrStdout(), char)
	return nil
}

// sheetFromCharacter renders the stored sheet back into form values so an
// update can change a few fields and keep the rest
func sheetFromCharacter(char *domain.Character) *domain.SheetUpdate {
	update := &domain.SheetUpdate{
		Name:            char.Name,
		Race:            char.Race,
		Background:      char.Background,
		Alignment:       char.Alignment,
		Experience:      strconv.Itoa(char.Experience),
		MaxHP:           strconv.Itoa(char.MaxHP),
		CurrentHP:       strconv.Itoa(char.CurrentHP),
		AC:              strconv.Itoa(char.AC),
		Speed:           char.Speed,
		Inspiration:     strconv.Itoa(char.Inspiration),
		Features:        char.Features,
		Equipment:       char.Equipment,
		AbilityScores:   make(map[shared.Attribute]string, len(char.AbilityScores)),
		MightySummoner:  char.ClassFeatures.MightySummoner,
		GuardianSpirit:  char.ClassFeatures.GuardianSpirit,
		FaithfulSummons: char.ClassFeatures.FaithfulSummons,
	}

	for attr, score := range char.AbilityScores {
		update.AbilityScores[attr] = strconv.Itoa(score)
	}

	for _, class := range char.Classes {
		update.Classes = append(update.Classes, domain.ClassInput{
			Name:     class.Name,
			Subclass: class.Subclass,
			Level:    strconv.Itoa(class.Level),
		})
	}

	return update
}

func parseClasses(raw []string) ([]domain.ClassInput, error) {
	classes := make([]domain.ClassInput, 0, len(raw))
	for _, entry := range raw {
		parts := strings.SplitN(entry, ":", 3)
		if len(parts) < 2 {
			return nil, dnderr.InvalidArgumentf("class '%s' must look like NAME:LEVEL or NAME:LEVEL:SUBCLASS", entry)
		}

		input := domain.ClassInput{
			Name:  strings.TrimSpace(parts[0]),
			Level: strings.TrimSpace(parts[1]),
		}
		if len(parts) == 3 {
			input.Subclass = strings.TrimSpace(parts[2])
		}
		classes = append(classes, input)
	}
	return classes, nil
}

func (r *runner) runCharacterImport(cmd *cobra.Command, args []string) error {
	data, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}

	char, err := r.characters.Import(cmd.Context(), r.characterID, data)
	if err != nil {
		return err
	}

	if r.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), char)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Imported character sheet.")
	printCharacter(cmd.OutOrStdout(), char)
	return nil
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, fmt.Sprintf("cannot read '%s'", path))
	}
	return data, nil
}

func (r *runner) runCharacterPrereqs(cmd *cobra.Command, _ []string) error {
	report, err := r.characters.Prerequisites(cmd.Context(), r.characterID)
	if err != nil {
		return err
	}

	if r.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), report)
	}

	classes := make([]string, 0, len(report))
	for class := range report {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	w := cmd.OutOrStdout()
	for _, class := range classes {
		result := report[class]
		if result.Valid {
			fmt.Fprintf(w, "✅ %s\n", class)
			continue
		}
		fmt.Fprintf(w, "❌ %s: %s\n", class, result.Reason)
	}
	return nil
}
