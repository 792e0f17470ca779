package sheet

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	sheetDomain "github.com/KirkDiggler/dnd-sheets/internal/domain/sheet"
	sheetService "github.com/KirkDiggler/dnd-sheets/internal/services/sheet"
)

type ListRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
}

type ListHandler struct {
	service sheetService.Service
}

func NewListHandler(service sheetService.Service) *ListHandler {
	return &ListHandler{service: service}
}

func (h *ListHandler) Handle(req *ListRequest) error {
	err := req.Session.InteractionRespond(req.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to acknowledge interaction: %w", err)
	}

	sheets, err := h.service.ListByOwner(context.Background(), userID(req.Interaction))
	if err != nil {
		return editWithError(req.Session, req.Interaction, fmt.Sprintf("Failed to retrieve your sheets: %v", err))
	}

	if len(sheets) == 0 {
		content := "📝 You don't have any sheets yet. Use `/dnd sheet save` with a JSON description to add one!"
		_, err = req.Session.InteractionResponseEdit(req.Interaction.Interaction, &discordgo.WebhookEdit{
			Content: &content,
		})
		return err
	}

	embeds := []*discordgo.MessageEmbed{BuildListEmbed(sheets)}
	_, err = req.Session.InteractionResponseEdit(req.Interaction.Interaction, &discordgo.WebhookEdit{
		Embeds: &embeds,
	})
	return err
}

// BuildListEmbed shows one line per sheet with its ID for /dnd sheet show
func BuildListEmbed(sheets []*sheetDomain.Sheet) *discordgo.MessageEmbed {
	lines := make([]string, 0, len(sheets))
	for _, sh := range sheets {
		lines = append(lines, fmt.Sprintf("**%s** `%s` (updated %s)",
			sh.Name, sh.ID, sh.UpdatedAt.Format("2006-01-02")))
	}

	return &discordgo.MessageEmbed{
		Title:       "📚 Your Sheets",
		Description: fmt.Sprintf("You have %d sheet(s):", len(sheets)),
		Color:       colorSheet,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Sheets",
				Value: truncate(strings.Join(lines, "\n")),
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Use /dnd sheet show <id> to view one",
		},
	}
}
