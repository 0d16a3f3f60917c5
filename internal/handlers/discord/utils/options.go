package utils

import "github.com/bwmarrin/discordgo"

// GetSubcommand returns the name of the subcommand that was invoked
func GetSubcommand(i *discordgo.InteractionCreate) string {
	options := i.ApplicationCommandData().Options
	for len(options) > 0 {
		first := options[0]
		switch first.Type {
		case discordgo.ApplicationCommandOptionSubCommand:
			return first.Name
		case discordgo.ApplicationCommandOptionSubCommandGroup:
			options = first.Options
		default:
			return ""
		}
	}
	return ""
}

// GetCommandOption safely retrieves a command option by name from interaction data
func GetCommandOption(i *discordgo.InteractionCreate, name string) *discordgo.ApplicationCommandInteractionDataOption {
	if i.ApplicationCommandData().Options == nil {
		return nil
	}

	// Start with the root options
	options := i.ApplicationCommandData().Options

	// Navigate through subcommand groups and subcommands
	for len(options) > 0 {
		for _, opt := range options {
			if opt.Name == name {
				return opt
			}
		}

		if len(options[0].Options) > 0 {
			options = options[0].Options
		} else {
			break
		}
	}

	return nil
}

// GetStringOption safely retrieves a string option value by name
func GetStringOption(i *discordgo.InteractionCreate, name string) string {
	opt := GetCommandOption(i, name)
	if opt == nil {
		return ""
	}
	return opt.StringValue()
}

// GetOptionalString returns nil when the option was not given
func GetOptionalString(i *discordgo.InteractionCreate, name string) *string {
	opt := GetCommandOption(i, name)
	if opt == nil {
		return nil
	}
	value := opt.StringValue()
	return &value
}

// GetIntOption returns the integer option or fallback when it was not given
func GetIntOption(i *discordgo.InteractionCreate, name string, fallback int) int {
	opt := GetCommandOption(i, name)
	if opt == nil {
		return fallback
	}
	return int(opt.IntValue())
}

// GetOptionalBool returns nil when the option was not given
func GetOptionalBool(i *discordgo.InteractionCreate, name string) *bool {
	opt := GetCommandOption(i, name)
	if opt == nil {
		return nil
	}
	value := opt.BoolValue()
	return &value
}

// GetFocusedOption returns the option being typed during autocomplete
func GetFocusedOption(i *discordgo.InteractionCreate) *discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	for len(options) > 0 {
		for _, opt := range options {
			if opt.Focused {
				return opt
			}
		}
		options = options[0].Options
	}
	return nil
}
