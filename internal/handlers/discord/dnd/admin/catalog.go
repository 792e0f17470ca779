package admin

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"
)

type CatalogRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
}

// CatalogHandler reports how much content the bot's rulebook holds
type CatalogHandler struct {
	library       *rulebook.Library
	importSummary string
}

type CatalogHandlerConfig struct {
	Library       *rulebook.Library // Required
	ImportSummary string
}

func NewCatalogHandler(cfg *CatalogHandlerConfig) *CatalogHandler {
	if cfg.Library == nil {
		panic("library is required")
	}
	return &CatalogHandler{
		library:       cfg.Library,
		importSummary: cfg.ImportSummary,
	}
}

func (h *CatalogHandler) Handle(req *CatalogRequest) error {
	return req.Session.InteractionRespond(req.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{h.BuildEmbed()},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}

// BuildEmbed lists the entry count of every catalog
func (h *CatalogHandler) BuildEmbed() *discordgo.MessageEmbed {
	title := cases.Title(language.English)

	counts := []struct {
		capability rulebook.Capability
		count      int
	}{
		{rulebook.CapabilityClass, h.library.Classes.Len()},
		{rulebook.CapabilityRace, h.library.Races.Len()},
		{rulebook.CapabilityBackground, h.library.Backgrounds.Len()},
		{rulebook.CapabilityFeature, h.library.Features.Len()},
		{rulebook.CapabilitySpell, h.library.Spells.Len()},
		{rulebook.CapabilityWeapon, h.library.Weapons.Len()},
		{rulebook.CapabilityArmor, h.library.Armor.Len()},
		{rulebook.CapabilityShield, h.library.Shields.Len()},
		{rulebook.CapabilityMagicItem, h.library.MagicItems.Len()},
		{rulebook.CapabilityInfusion, h.library.Infusions.Len()},
		{rulebook.CapabilityFeat, h.library.Feats.Len()},
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(counts))
	for _, c := range counts {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   title.String(string(c.capability)),
			Value:  fmt.Sprintf("%d", c.count),
			Inline: true,
		})
	}

	description := "Built-in content only."
	if h.importSummary != "" {
		description = h.importSummary
	}

	return &discordgo.MessageEmbed{
		Title:       "📖 Rulebook",
		Description: description,
		Color:       0xf1c40f,
		Fields:      fields,
	}
}
