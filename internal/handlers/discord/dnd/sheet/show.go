package sheet

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"

	sheetService "github.com/KirkDiggler/dnd-sheets/internal/services/sheet"
)

type ShowRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	SheetID     string
	Page        Page
	// UpdateMessage edits the message a page button sits on instead of replying
	UpdateMessage bool
}

// ShowHandler renders a stored sheet. Sheets are visible to anyone with the ID.
type ShowHandler struct {
	service sheetService.Service
}

func NewShowHandler(service sheetService.Service) *ShowHandler {
	return &ShowHandler{service: service}
}

func (h *ShowHandler) Handle(req *ShowRequest) error {
	if req.SheetID == "" {
		return respondWithError(req.Session, req.Interaction, "Sheet ID is required")
	}

	result, err := h.service.Render(context.Background(), req.SheetID)
	if err != nil {
		log.Printf("Error rendering sheet %s: %v", req.SheetID, err)
		return respondWithError(req.Session, req.Interaction, userMessage(err))
	}

	embed := BuildEmbed(result.Sheet, result.Character, req.Page)
	components := BuildSheetComponents(result.Sheet.ID, req.Page)

	if req.UpdateMessage {
		return req.Session.InteractionRespond(req.Interaction.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseUpdateMessage,
			Data: &discordgo.InteractionResponseData{
				Embeds:     []*discordgo.MessageEmbed{embed},
				Components: components,
			},
		})
	}

	return req.Session.InteractionRespond(req.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
}
