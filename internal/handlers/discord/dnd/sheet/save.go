package sheet

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/dnd-sheets/internal/handlers/discord/utils"
	sheetService "github.com/KirkDiggler/dnd-sheets/internal/services/sheet"
)

type SaveRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
}

// SaveHandler stores a new sheet, or replaces one when the id option is set
type SaveHandler struct {
	service sheetService.Service
	fetch   Fetcher
}

type SaveHandlerConfig struct {
	SheetService sheetService.Service
	// Fetcher defaults to HTTPFetcher(nil)
	Fetcher Fetcher
}

func NewSaveHandler(cfg *SaveHandlerConfig) *SaveHandler {
	fetch := cfg.Fetcher
	if fetch == nil {
		fetch = HTTPFetcher(nil)
	}
	return &SaveHandler{
		service: cfg.SheetService,
		fetch:   fetch,
	}
}

func (h *SaveHandler) Handle(req *SaveRequest) error {
	// Downloading and building can outlast the three second interaction deadline
	err := req.Session.InteractionRespond(req.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to acknowledge interaction: %w", err)
	}

	result, err := h.save(context.Background(), req.Interaction)
	if err != nil {
		log.Printf("Error saving sheet for %s: %v", userID(req.Interaction), err)
		return editWithError(req.Session, req.Interaction, userMessage(err))
	}

	content := fmt.Sprintf("✅ Saved **%s**", result.Sheet.Name)
	if n := len(result.Character.Warnings); n > 0 {
		content += fmt.Sprintf(" with %d warning(s), see the Features page", n)
	}

	embeds := []*discordgo.MessageEmbed{BuildEmbed(result.Sheet, result.Character, PageMain)}
	components := BuildSheetComponents(result.Sheet.ID, PageMain)
	_, err = req.Session.InteractionResponseEdit(req.Interaction.Interaction, &discordgo.WebhookEdit{
		Content:    &content,
		Embeds:     &embeds,
		Components: &components,
	})
	return err
}

func (h *SaveHandler) save(ctx context.Context, i *discordgo.InteractionCreate) (*sheetService.SaveResult, error) {
	data := i.ApplicationCommandData()

	desc, err := ReadDescription(ctx, data, h.fetch)
	if err != nil {
		return nil, err
	}

	if id := strings.TrimSpace(utils.StringOption(data, OptionID)); id != "" {
		return h.service.Replace(ctx, userID(i), id, desc)
	}

	return h.service.Save(ctx, userID(i), desc)
}
