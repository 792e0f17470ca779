package discord

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/dnd-sheets/internal/handlers/discord/dnd/admin"
	"github.com/KirkDiggler/dnd-sheets/internal/handlers/discord/dnd/help"
	"github.com/KirkDiggler/dnd-sheets/internal/handlers/discord/dnd/sheet"
	"github.com/KirkDiggler/dnd-sheets/internal/handlers/discord/utils"
	"github.com/KirkDiggler/dnd-sheets/internal/services"
)

// Handler handles all Discord interactions
type Handler struct {
	ServiceProvider *services.Provider

	// Sheet handlers
	sheetSaveHandler   *sheet.SaveHandler
	sheetShowHandler   *sheet.ShowHandler
	sheetListHandler   *sheet.ListHandler
	sheetDeleteHandler *sheet.DeleteHandler

	catalogHandler *admin.CatalogHandler
	helpHandler    *help.HelpHandler
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ServiceProvider *services.Provider
	// Fetcher downloads attached description files; defaults to plain HTTP
	Fetcher sheet.Fetcher
	// ImportSummary is shown by /dnd catalog, empty when nothing was imported
	ImportSummary string
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	sheetSvc := cfg.ServiceProvider.SheetService

	return &Handler{
		ServiceProvider: cfg.ServiceProvider,
		sheetSaveHandler: sheet.NewSaveHandler(&sheet.SaveHandlerConfig{
			SheetService: sheetSvc,
			Fetcher:      cfg.Fetcher,
		}),
		sheetShowHandler:   sheet.NewShowHandler(sheetSvc),
		sheetListHandler:   sheet.NewListHandler(sheetSvc),
		sheetDeleteHandler: sheet.NewDeleteHandler(sheetSvc),
		catalogHandler: admin.NewCatalogHandler(&admin.CatalogHandlerConfig{
			Library:       cfg.ServiceProvider.Library,
			ImportSummary: cfg.ImportSummary,
		}),
		helpHandler: help.NewHelpHandler(),
	}
}

// Commands lists every slash command the bot registers
func Commands() []*discordgo.ApplicationCommand {
	idOption := func(description string, required bool) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        sheet.OptionID,
			Description: description,
			Required:    required,
		}
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        "dnd",
			Description: "D&D 5e character sheets",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "sheet",
					Description: "Character sheet commands",
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Name:        "save",
							Description: "Save a character description (JSON)",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionAttachment,
									Name:        sheet.OptionFile,
									Description: "JSON description file",
									Required:    false,
								},
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        sheet.OptionJSON,
									Description: "JSON description pasted inline",
									Required:    false,
								},
								idOption("Replace this sheet instead of creating a new one", false),
							},
						},
						{
							Name:        "show",
							Description: "Show a character sheet",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Options: []*discordgo.ApplicationCommandOption{
								idOption("Sheet ID", true),
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        sheet.OptionPage,
									Description: "Page to open",
									Required:    false,
									Choices: []*discordgo.ApplicationCommandOptionChoice{
										{Name: "Sheet", Value: string(sheet.PageMain)},
										{Name: "Spells", Value: string(sheet.PageSpells)},
										{Name: "Features", Value: string(sheet.PageFeatures)},
									},
								},
							},
						},
						{
							Name:        "list",
							Description: "List your sheets",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
						},
						{
							Name:        "delete",
							Description: "Delete one of your sheets",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Options: []*discordgo.ApplicationCommandOption{
								idOption("Sheet ID", true),
							},
						},
					},
				},
				{
					Name:        "catalog",
					Description: "Show what the rulebook knows",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
				{
					Name:        "help",
					Description: "Get help on using the bot",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "topic",
							Description: "Specific help topic (sheet, description)",
							Required:    false,
						},
					},
				},
			},
		},
	}
}

// RegisterCommands registers all slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	for _, cmd := range Commands() {
		_, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd)
		if err != nil {
			return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
		}
		log.Printf("Registered command: %s", cmd.Name)
	}

	return nil
}

// HandleInteraction handles all Discord interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(s, i)
	case discordgo.InteractionMessageComponent:
		h.handleComponent(s, i)
	}
}

// handleCommand handles slash command interactions
func (h *Handler) handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	if data.Name != "dnd" || len(data.Options) == 0 {
		return
	}

	group := data.Options[0]

	if group.Type == discordgo.ApplicationCommandOptionSubCommand {
		var err error
		switch group.Name {
		case "help":
			err = h.helpHandler.Handle(&help.HelpRequest{
				Session:     s,
				Interaction: i,
				Topic:       utils.GetStringOption(i, "topic"),
			})
		case "catalog":
			err = h.catalogHandler.Handle(&admin.CatalogRequest{
				Session:     s,
				Interaction: i,
			})
		}
		if err != nil {
			log.Printf("Error handling %s command: %v", group.Name, err)
		}
		return
	}

	if group.Name != "sheet" || len(group.Options) == 0 {
		return
	}

	sub := group.Options[0]
	var err error
	switch sub.Name {
	case "save":
		err = h.sheetSaveHandler.Handle(&sheet.SaveRequest{
			Session:     s,
			Interaction: i,
		})
	case "show":
		page := sheet.Page(utils.GetStringOption(i, sheet.OptionPage))
		if page == "" {
			page = sheet.PageMain
		}
		err = h.sheetShowHandler.Handle(&sheet.ShowRequest{
			Session:     s,
			Interaction: i,
			SheetID:     strings.TrimSpace(utils.GetStringOption(i, sheet.OptionID)),
			Page:        page,
		})
	case "list":
		err = h.sheetListHandler.Handle(&sheet.ListRequest{
			Session:     s,
			Interaction: i,
		})
	case "delete":
		err = h.sheetDeleteHandler.Handle(&sheet.DeleteRequest{
			Session:     s,
			Interaction: i,
			SheetID:     strings.TrimSpace(utils.GetStringOption(i, sheet.OptionID)),
		})
	}
	if err != nil {
		log.Printf("Error handling sheet %s command: %v", sub.Name, err)
	}
}

// handleComponent handles the page buttons under a sheet
func (h *Handler) handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID

	sheetID, page, ok := sheet.ParseComponentID(customID)
	if !ok {
		log.Printf("Ignoring unknown component %s", customID)
		return
	}

	err := h.sheetShowHandler.Handle(&sheet.ShowRequest{
		Session:       s,
		Interaction:   i,
		SheetID:       sheetID,
		Page:          page,
		UpdateMessage: true,
	})
	if err != nil {
		log.Printf("Error switching sheet %s to %s: %v", sheetID, page, err)
	}
}
