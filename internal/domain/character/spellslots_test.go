package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpellSlots_FullPlusHalfCaster(t *testing.T) {
	c := mustBuild(t, Description{
		"classes": []string{"Wizard", "Paladin"},
		"levels":  []int{6, 6},
	})

	assert.Equal(t, 9, EffectiveCasterLevel(c.SpellcastingClasses()))
	assert.Equal(t, 4, c.SpellSlots(1))
	assert.Equal(t, 3, c.SpellSlots(4))
	assert.Equal(t, 1, c.SpellSlots(5))
	assert.Zero(t, c.SpellSlots(6))
	// cantrips are the sum of each class's own count: 4 for wizard 6, none for paladins
	assert.Equal(t, 4, c.SpellSlots(0))
}

func TestSpellSlots_PureWarlockUsesPactMagic(t *testing.T) {
	c := mustBuild(t, Description{"classes": "Warlock", "levels": 3})

	warlock := c.PrimaryClass()
	for lvl := 0; lvl <= 9; lvl++ {
		assert.Equal(t, warlock.SpellSlots(lvl), c.SpellSlots(lvl), "spell level %d", lvl)
	}
	assert.Zero(t, c.SpellSlots(1))
	assert.Equal(t, 2, c.SpellSlots(2))
	assert.Equal(t, 2, c.SpellSlots(0))
}

func TestSpellSlots_SingleCasterPlusWarlock(t *testing.T) {
	c := mustBuild(t, Description{
		"classes": []string{"Warlock", "Wizard"},
		"levels":  []int{3, 2},
	})

	assert.Equal(t, 3, c.SpellSlots(1), "wizard 2 alone")
	assert.Equal(t, 2, c.SpellSlots(2), "pact slots on top")
	assert.Equal(t, 5, c.SpellSlots(0))
}

func TestSpellSlots_MulticlassWithWarlock(t *testing.T) {
	c := mustBuild(t, Description{
		"classes": []string{"Sorcerer", "Cleric", "Warlock"},
		"levels":  []int{2, 1, 2},
	})

	// effective level 3: 4 first level and 2 second level slots, plus 2 first level pact slots
	assert.Equal(t, 6, c.SpellSlots(1))
	assert.Equal(t, 2, c.SpellSlots(2))
	// 4 sorcerer + 3 cleric + 2 warlock cantrips
	assert.Equal(t, 9, c.SpellSlots(0))
}

func TestSpellSlots_ThirdCastersNeedTheirArchetype(t *testing.T) {
	champion := mustBuild(t, Description{
		"classes":    []string{"Fighter", "Wizard"},
		"levels":     []int{6, 3},
		"subclasses": []any{"Champion", nil},
	})
	require.Len(t, champion.SpellcastingClasses(), 1)
	assert.Equal(t, 2, champion.SpellSlots(2), "wizard 3 table")

	knight := mustBuild(t, Description{
		"classes":    []string{"Fighter", "Wizard"},
		"levels":     []int{6, 3},
		"subclasses": []any{"Eldritch Knight", nil},
	})
	require.Len(t, knight.SpellcastingClasses(), 2)
	assert.Equal(t, 5, EffectiveCasterLevel(knight.SpellcastingClasses()))
	assert.Equal(t, 2, knight.SpellSlots(3))
}

func TestSpellSlots_ArtificerRoundsUp(t *testing.T) {
	c := mustBuild(t, Description{
		"classes": []string{"Artificer", "Wizard"},
		"levels":  []int{3, 1},
	})

	assert.Equal(t, 3, EffectiveCasterLevel(c.SpellcastingClasses()))
	assert.Equal(t, 4, c.SpellSlots(1))
	assert.Equal(t, 2, c.SpellSlots(2))
}

func TestSpellSlots_ZeroEffectiveLevel(t *testing.T) {
	c := mustBuild(t, Description{
		"classes": []string{"Paladin", "Ranger", "Warlock"},
		"levels":  []int{1, 1, 1},
	})

	assert.Zero(t, EffectiveCasterLevel(c.SpellcastingClasses()))
	assert.Equal(t, 1, c.SpellSlots(1), "only the pact slot")
}

func TestSpellSlots_EffectiveLevelCapsAtTwenty(t *testing.T) {
	c := mustBuild(t, Description{
		"classes": []string{"Wizard", "Cleric"},
		"levels":  []int{15, 10},
	})

	assert.Equal(t, 25, EffectiveCasterLevel(c.SpellcastingClasses()))
	assert.Equal(t, 1, c.SpellSlots(9))
	assert.Equal(t, 2, c.SpellSlots(7))
}

func TestSpellSlots_NonCasterAndOutOfRange(t *testing.T) {
	c := mustBuild(t, Description{"classes": "Barbarian", "levels": 10})

	assert.False(t, c.IsSpellcaster())
	assert.Zero(t, c.SpellSlots(1))
	assert.Zero(t, c.SpellSlots(-1))
	assert.Zero(t, c.SpellSlots(10))
}

func TestMulticlassTableMatchesSingleFullCaster(t *testing.T) {
	wizard, ok := DefaultLibrary().Classes.Lookup("Wizard")
	require.True(t, ok)

	for level := 1; level <= 20; level++ {
		for spell := 1; spell <= 9; spell++ {
			assert.Equal(t, wizard.SpellSlots.Slots(level, spell), multiclassSpellSlots[level-1][spell], "level %d spell %d", level, spell)
		}
	}
}
