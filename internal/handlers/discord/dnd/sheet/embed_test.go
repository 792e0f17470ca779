package sheet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-sheets/internal/domain/character"
	"github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook/dnd5e/calculators"
	"github.com/KirkDiggler/dnd-sheets/internal/testutils"
)

func build(t *testing.T, desc character.Description) *character.Character {
	t.Helper()
	c, err := character.New(desc, testutils.Quiet(), character.WithACCalculator(calculators.NewDnD5eACCalculator()))
	require.NoError(t, err)
	return c
}

func TestBuildSheetEmbed(t *testing.T) {
	sh := testutils.CreateTestSheet("sheet-1", "user-1", "Brom")
	c := build(t, sh.Description)

	embed := BuildEmbed(sh, c, PageMain)

	assert.Equal(t, "Brom - Hill Dwarf Fighter 3 / Wizard 2", embed.Title)
	// chain mail 16, shield 2, Defense style 1, ring of protection 1
	assert.Equal(t, 20, c.ArmorClass())
	assert.Contains(t, embed.Description, "**AC:** 20")
	assert.Equal(t, "Sheet ID: sheet-1", embed.Footer.Text)

	names := make([]string, 0, len(embed.Fields))
	for _, f := range embed.Fields {
		names = append(names, f.Name)
		assert.LessOrEqual(t, len(f.Value), maxFieldLength, f.Name)
	}
	assert.Contains(t, names, "🔮 Spell Slots")
	assert.Contains(t, embed.Fields[0].Value, "**STR:** 16 (+3)")
}

func TestBuildSheetEmbed_NonCasterHasNoSlots(t *testing.T) {
	embed := BuildSheetEmbed(build(t, character.Description{"classes": "Barbarian"}))

	for _, f := range embed.Fields {
		assert.NotEqual(t, "🔮 Spell Slots", f.Name)
	}
	assert.Equal(t, "Unnamed - Barbarian 1", embed.Title)
}

func TestHeading_PlaceholderRace(t *testing.T) {
	c := build(t, character.Description{"name": "Zed", "classes": "Rogue", "race": "Space Elf"})
	assert.Equal(t, "Zed - Space Elf** Rogue 1", Heading(c))
}

func TestBuildSpellsEmbed(t *testing.T) {
	c := build(t, character.Description{
		"classes":         "Wizard",
		"levels":          3,
		"spells":          []string{"Fire Bolt", "Magic Missile", "Shield", "Hocus Pocus"},
		"spells_prepared": []string{"Magic Missile"},
	})

	embed := BuildSpellsEmbed(c)

	require.NotEmpty(t, embed.Fields)
	assert.Equal(t, "Cantrips", embed.Fields[0].Name)
	assert.Contains(t, embed.Description, "Wizard:")

	var first string
	for _, f := range embed.Fields {
		if strings.HasPrefix(f.Name, "1st Level") {
			first = f.Value
			assert.Equal(t, "1st Level (4 slots)", f.Name)
		}
	}
	assert.Contains(t, first, "✅ Magic Missile")
	assert.NotContains(t, first, "✅ Shield")
}

func TestBuildSpellsEmbed_NoSpells(t *testing.T) {
	embed := BuildSpellsEmbed(build(t, character.Description{"classes": "Fighter"}))
	require.Len(t, embed.Fields, 1)
	assert.Equal(t, "*No spells*", embed.Fields[0].Value)
}

func TestBuildFeaturesEmbed_ShowsWarnings(t *testing.T) {
	c := build(t, character.Description{
		"classes":     "Fighter",
		"magic_items": []string{"Vorpal Spork"},
		"feats":       []string{"Tough", "Alert"},
	})
	require.NotEmpty(t, c.Warnings)

	embed := BuildFeaturesEmbed(c)

	var warnings, items, feats string
	for _, f := range embed.Fields {
		switch f.Name {
		case "⚠️ Warnings":
			warnings = f.Value
		case "💍 Magic Items":
			items = f.Value
		case "🎖️ Feats":
			feats = f.Value
		}
	}
	assert.NotEmpty(t, warnings)
	assert.Equal(t, "Vorpal Spork**", items)
	assert.Equal(t, "Alert, Tough", feats)
	assert.Contains(t, embed.Fields[0].Value, "Fighting Style (Select One)")
}

func TestComponentID_RoundTrip(t *testing.T) {
	id, page, ok := ParseComponentID(ComponentID("abc-123", PageSpells))
	require.True(t, ok)
	assert.Equal(t, "abc-123", id)
	assert.Equal(t, PageSpells, page)

	for _, bad := range []string{"", "sheet:page::main", "sheet:page:abc:inventory", "character:sheet:abc:main"} {
		_, _, ok := ParseComponentID(bad)
		assert.False(t, ok, bad)
	}
}

func TestBuildSheetComponents_DisablesCurrentPage(t *testing.T) {
	components := BuildSheetComponents("abc", PageFeatures)
	require.Len(t, components, 1)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "-", truncate(""))

	long := strings.Repeat("a line of text\n", 200)
	out := truncate(long)
	assert.LessOrEqual(t, len(out), maxFieldLength)
	assert.True(t, strings.HasSuffix(out, "\n..."))
}
