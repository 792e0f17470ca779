package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-sheets/internal/errors"
)

func TestAttrs_RoundTrip(t *testing.T) {
	desc := Description{
		"classes":             []string{"Bard"},
		"levels":              []int{2},
		"name":                "Inara Vell",
		"player_name":         "Sam",
		"alignment":           "Chaotic Good",
		"xp":                  900,
		"inspiration":         true,
		"languages":           "Common, Elvish",
		"personality_traits":  "Hums constantly.",
		"ideals":              "Freedom.",
		"bonds":               "My lute.",
		"flaws":               "Owes money everywhere.",
		"features_and_traits": "Knows every tavern song.",
		"appearance":          "Tall, green cloak.",
		"backstory":           "Left the conservatory.",
		"equipment":           "Lute, bedroll",
		"cp":                  3,
		"sp":                  14,
		"ep":                  0,
		"gp":                  27,
		"pp":                  1,
		"strength":            8,
		"dexterity":           14,
		"constitution":        12,
		"intelligence":        10,
		"wisdom":              13,
		"charisma":            17,
		"favorite_song":       "The Bear and the Maiden",
	}

	c := mustBuild(t, desc)

	for key, want := range desc {
		if key == "classes" || key == "levels" {
			continue
		}
		got, ok := c.Attr(key)
		require.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}
	assert.Equal(t, []string{"Setting unknown character attribute favorite_song"}, c.Warnings)
	assert.Equal(t, 3, c.AbilityModifier("charisma"))
}

func TestAttrs_ReadBackDerived(t *testing.T) {
	c := mustBuild(t, Description{"classes": []string{"Monk", "Rogue"}, "levels": []int{2, 3}})

	level, ok := c.Attr("level")
	require.True(t, ok)
	assert.Equal(t, 5, level)

	hp, ok := c.Attr("hp_max")
	require.True(t, ok)
	assert.Equal(t, c.HPMax, hp)

	_, ok = c.Attr("nothing")
	assert.False(t, ok)
}

func TestAttrs_WrongTypeForKnownField(t *testing.T) {
	_, err := New(Description{"strength": "very"}, quiet())
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidType, errors.GetCode(err))

	_, err = New(Description{"xp": []int{1}}, quiet())
	assert.True(t, errors.Is(err, errors.CodeInvalidType))
}

func TestAttrs_IgnoredAndLevelKeys(t *testing.T) {
	c := mustBuild(t, Description{"classes": "Druid", "levels": 1, "dungeonsheets_version": "0.19"})
	assert.Empty(t, c.Warnings)

	require.NoError(t, c.SetAttrs(map[string]any{"level": "4", "race": "Wood Elf"}))
	assert.Equal(t, 4, c.Level())
	assert.Equal(t, "Wood Elf", c.Race().Name)
	assert.Equal(t, 35, c.Speed())
}

func TestAttrs_SetAttrsAddsClasses(t *testing.T) {
	c := mustBuild(t, Description{"classes": "Fighter", "levels": 2})

	require.NoError(t, c.SetAttrs(map[string]any{
		"classes":    []string{"Warlock"},
		"levels":     []int{1},
		"subclasses": []string{"Fiend"},
	}))
	assert.Equal(t, "Fighter 2 / Warlock 1", c.ClassesAndLevels())
	assert.Equal(t, "The Fiend", c.ClassList[1].Subclass.Name)
}

func TestDescription_Normalize(t *testing.T) {
	original := Description{"class": "Rogue", "name": "Vex"}
	normalized := original.Normalize()

	assert.Equal(t, []any{"Rogue"}, normalized[KeyClasses])
	assert.Equal(t, []any{1}, normalized[KeyLevels])
	assert.Equal(t, []any{nil}, normalized[KeySubclasses])
	assert.NotContains(t, normalized, "class")
	assert.Contains(t, original, "class", "the input is not modified")

	listed := Description{"classes": []string{"Bard"}, "level": 3}.Normalize()
	assert.Equal(t, 3, listed["level"], "level stays an attribute when classes are listed")
}

func TestParseDescription(t *testing.T) {
	desc, err := ParseDescription([]byte(`{"classes": ["Wizard"], "levels": [3], "hp_max": 14, "strength": 9}`))
	require.NoError(t, err)

	c, err := New(desc, quiet())
	require.NoError(t, err)
	assert.Equal(t, 14, c.HPMax)
	assert.Equal(t, 3, c.Level())
	assert.Equal(t, 9, c.Score("strength"))

	_, err = ParseDescription([]byte(`{"classes": `))
	assert.True(t, errors.Is(err, errors.CodeInvalidArgument))

	empty, err := ParseDescription([]byte(`null`))
	require.NoError(t, err)
	assert.NotNil(t, empty)
}

func TestAttrs_RoundTripFromJSON(t *testing.T) {
	desc, err := ParseDescription([]byte(`{
		"classes": ["Rogue"],
		"name": "Vex",
		"xp": 900,
		"gp": 27,
		"dexterity": 17,
		"inspiration": true,
		"lucky_number": 7
	}`))
	require.NoError(t, err)
	require.IsType(t, float64(0), desc["xp"])

	c := mustBuild(t, desc)

	for key, want := range map[string]any{
		"name":        "Vex",
		"xp":          900,
		"gp":          27,
		"dexterity":   17,
		"inspiration": true,
	} {
		got, ok := c.Attr(key)
		require.True(t, ok, key)
		assert.Equal(t, want, got, key)
		assert.EqualValues(t, desc[key], got, key)
	}

	extra, ok := c.Attr("lucky_number")
	require.True(t, ok)
	assert.Equal(t, float64(7), extra, "unknown keys keep their decoded type")
}
