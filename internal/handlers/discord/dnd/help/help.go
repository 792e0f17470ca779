package help

import (
	"github.com/bwmarrin/discordgo"
)

type HelpRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	Topic       string // Optional specific help topic
}

type HelpHandler struct{}

func NewHelpHandler() *HelpHandler {
	return &HelpHandler{}
}

func (h *HelpHandler) Handle(req *HelpRequest) error {
	return req.Session.InteractionRespond(req.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{h.Embed(req.Topic)},
			Flags:  discordgo.MessageFlagsEphemeral, // Only visible to the user
		},
	})
}

// Embed picks the help page for topic, falling back to the general page
func (h *HelpHandler) Embed(topic string) *discordgo.MessageEmbed {
	switch topic {
	case "sheet":
		return h.getSheetHelp()
	case "description":
		return h.getDescriptionHelp()
	default:
		return h.getGeneralHelp()
	}
}

func (h *HelpHandler) getGeneralHelp() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🎲 D&D Sheets Help",
		Description: "Store character descriptions and get a full 5e sheet back, multiclassing included.",
		Color:       0x3498db, // Blue
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "📚 Getting Started",
				Value: "1. Write a JSON description: `{\"name\": \"Brom\", \"classes\": [\"Fighter\", \"Wizard\"], \"levels\": [3, 2]}`\n2. Save it: `/dnd sheet save` with the file attached\n3. Share the sheet ID with your table",
			},
			{
				Name:  "📜 Sheet Commands",
				Value: "`/dnd sheet save` - Save or replace a sheet\n`/dnd sheet show <id>` - Show a sheet\n`/dnd sheet list` - Your sheets\n`/dnd sheet delete <id>` - Delete a sheet",
			},
			{
				Name:  "❓ More Help",
				Value: "Use `/dnd help <topic>` for:\n• `sheet` - Saving and showing sheets\n• `description` - Every key a description understands",
			},
		},
	}
}

func (h *HelpHandler) getSheetHelp() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "📜 Sheet Help",
		Color: 0x2ecc71, // Green
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Saving",
				Value: "Attach a `.json` file or paste JSON into the `json` option. Pass `id` to replace one of your sheets. Descriptions that name an unknown class or mismatched class and level lists are rejected.",
			},
			{
				Name:  "Unknown content",
				Value: "Spells, weapons, features and other names the rulebook does not know are kept and marked with **. They show up as warnings on the Features page.",
			},
			{
				Name:  "Pages",
				Value: "Use the buttons under a sheet to switch between the sheet, spells and features.",
			},
		},
	}
}

func (h *HelpHandler) getDescriptionHelp() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "🧾 Description Keys",
		Color: 0x9b59b6, // Purple
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Classes",
				Value: "`classes`, `levels`, `subclasses` are parallel lists; the first class is the primary one. A single `class`/`level`/`subclass` also works. `feature_choices` picks options such as a Fighting Style.",
			},
			{
				Name:  "Character",
				Value: "`race`, `background`, `strength` … `charisma`, `hp_max`, `skill_proficiencies`, `skill_expertise`, `languages`, `alignment`, `xp`",
			},
			{
				Name:  "Gear and magic",
				Value: "`weapons`, `armor`, `shield`, `magic_items`, `spells`, `spells_prepared`, `features`, `feats`, `weapon_proficiencies`, `infusions` (Artificer), `circle` and `wild_shapes` (Druid)",
			},
		},
	}
}
