package help

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmbed_Topics(t *testing.T) {
	h := NewHelpHandler()

	assert.Equal(t, "🎲 D&D Sheets Help", h.Embed("").Title)
	assert.Equal(t, "📜 Sheet Help", h.Embed("sheet").Title)
	assert.Equal(t, "🧾 Description Keys", h.Embed("description").Title)
	assert.Equal(t, h.Embed("").Title, h.Embed("combat").Title)
}

func TestEmbed_FieldsFitDiscordLimits(t *testing.T) {
	h := NewHelpHandler()
	for _, topic := range []string{"", "sheet", "description"} {
		for _, f := range h.Embed(topic).Fields {
			assert.LessOrEqual(t, len(f.Value), 1024, f.Name)
		}
	}
}
