package utils

import "github.com/bwmarrin/discordgo"

// LeafOptions drills through subcommand groups and subcommands to the options
// the user actually filled in
func LeafOptions(options []*discordgo.ApplicationCommandInteractionDataOption) []*discordgo.ApplicationCommandInteractionDataOption {
	for len(options) == 1 {
		switch options[0].Type {
		case discordgo.ApplicationCommandOptionSubCommand, discordgo.ApplicationCommandOptionSubCommandGroup:
			options = options[0].Options
		default:
			return options
		}
	}
	return options
}

// FindOption returns the named leaf option, or nil
func FindOption(data discordgo.ApplicationCommandInteractionData, name string) *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range LeafOptions(data.Options) {
		if opt.Name == name {
			return opt
		}
	}
	return nil
}

// StringOption reads a string option without panicking on other option types
func StringOption(data discordgo.ApplicationCommandInteractionData, name string) string {
	opt := FindOption(data, name)
	if opt == nil {
		return ""
	}
	s, _ := opt.Value.(string)
	return s
}

// GetStringOption safely retrieves a string option value by name
func GetStringOption(i *discordgo.InteractionCreate, name string) string {
	if i.Type != discordgo.InteractionApplicationCommand {
		return ""
	}
	return StringOption(i.ApplicationCommandData(), name)
}

// Attachment resolves an attachment option to the uploaded file
func Attachment(data discordgo.ApplicationCommandInteractionData, name string) (*discordgo.MessageAttachment, bool) {
	opt := FindOption(data, name)
	if opt == nil || data.Resolved == nil {
		return nil, false
	}

	id, _ := opt.Value.(string)
	attachment, ok := data.Resolved.Attachments[id]
	return attachment, ok && attachment != nil
}
