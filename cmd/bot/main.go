package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/dnd-sheets/internal/app"
	"github.com/KirkDiggler/dnd-sheets/internal/config"
	"github.com/KirkDiggler/dnd-sheets/internal/handlers/discord"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Discord.Validate(); err != nil {
		log.Fatalf("Invalid Discord config: %v", err)
	}

	log.Printf("Application ID: %s", cfg.Discord.AppID)
	if cfg.Discord.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.Discord.GuildID)
	}

	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	application, err := app.New(context.Background(), cfg, nil)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			log.Println(err)
		}
	}()

	handler := discord.NewHandler(&discord.HandlerConfig{
		ServiceProvider: application.Provider,
		ImportSummary:   app.ImportSummary(application.ImportResult),
	})

	dg.AddHandler(discord.RecoverMiddleware("interaction", handler.HandleInteraction))

	if err := dg.Open(); err != nil {
		log.Printf("Failed to open Discord connection: %v", err)
		return
	}
	defer func() {
		if err := dg.Close(); err != nil {
			log.Printf("Failed to close Discord connection: %v", err)
		}
	}()

	// Use empty string for global commands, or set a specific guild ID for testing
	if err := handler.RegisterCommands(dg, cfg.Discord.GuildID); err != nil {
		log.Printf("Failed to register commands: %v", err)
		return
	}

	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")
}
