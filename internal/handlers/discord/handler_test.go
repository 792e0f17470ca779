package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-sheets/internal/services"
)

func TestCommands_SheetSubcommands(t *testing.T) {
	commands := Commands()
	require.Len(t, commands, 1)
	assert.Equal(t, "dnd", commands[0].Name)

	var sheetGroup *discordgo.ApplicationCommandOption
	for _, opt := range commands[0].Options {
		if opt.Name == "sheet" {
			sheetGroup = opt
		}
	}
	require.NotNil(t, sheetGroup)

	names := make([]string, 0, len(sheetGroup.Options))
	for _, sub := range sheetGroup.Options {
		names = append(names, sub.Name)
		for _, opt := range sub.Options {
			assert.LessOrEqual(t, len(opt.Description), 100, "%s %s", sub.Name, opt.Name)
		}
	}
	assert.Equal(t, []string{"save", "show", "list", "delete"}, names)
}

func TestNewHandler(t *testing.T) {
	h := NewHandler(&HandlerConfig{ServiceProvider: services.NewProvider(&services.ProviderConfig{})})

	assert.NotNil(t, h.sheetSaveHandler)
	assert.NotNil(t, h.sheetShowHandler)
	assert.NotNil(t, h.catalogHandler)
}

func TestRecoverMiddleware_SwallowsPanics(t *testing.T) {
	called := false
	wrapped := RecoverMiddleware("test", func(*discordgo.Session, *discordgo.InteractionCreate) {
		called = true
	})

	assert.NotPanics(t, func() {
		wrapped(nil, nil)
	})
	assert.True(t, called)
}
