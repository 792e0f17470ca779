package sheet

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	sheetService "github.com/KirkDiggler/dnd-sheets/internal/services/sheet"
)

type DeleteRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	SheetID     string
}

type DeleteHandler struct {
	service sheetService.Service
}

func NewDeleteHandler(service sheetService.Service) *DeleteHandler {
	return &DeleteHandler{service: service}
}

func (h *DeleteHandler) Handle(req *DeleteRequest) error {
	if req.SheetID == "" {
		return respondWithError(req.Session, req.Interaction, "Sheet ID is required")
	}

	if err := h.service.Delete(context.Background(), userID(req.Interaction), req.SheetID); err != nil {
		log.Printf("Error deleting sheet %s: %v", req.SheetID, err)
		return respondWithError(req.Session, req.Interaction, userMessage(err))
	}

	return req.Session.InteractionRespond(req.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("🗑️ Deleted sheet `%s`", req.SheetID),
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}
