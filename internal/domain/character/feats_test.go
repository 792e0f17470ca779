package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeats_PassiveBonuses(t *testing.T) {
	plain := mustBuild(t, Description{"classes": "Fighter", "levels": 4, "race": "Human", "constitution": 14, "dexterity": 14})
	c := mustBuild(t, Description{
		"classes":      "Fighter",
		"levels":       4,
		"race":         "Human",
		"constitution": 14,
		"dexterity":    14,
		"feats":        []string{"tough", "Alert", "Mobile", "observant", "Alert"},
	})

	assert.Equal(t, []string{"Alert", "Mobile", "Observant", "Tough"}, c.FeatsText())
	assert.Equal(t, plain.HPMax+8, c.HPMax)
	assert.Equal(t, plain.Initiative()+5, c.Initiative())
	assert.Equal(t, plain.Speed()+10, c.Speed())
	assert.Equal(t, plain.PassivePerception()+5, c.PassivePerception())
	assert.False(t, c.HasFeat("great-weapon-master"))
	assert.True(t, c.HasFeat("MOBILE"))
	assert.Empty(t, c.Warnings)
}

func TestFeats_ExplicitHPIsKept(t *testing.T) {
	c := mustBuild(t, Description{"classes": "Wizard", "levels": 3, "hp_max": 14, "feats": "Tough"})
	assert.Equal(t, 14, c.HPMax)
}

func TestFeats_PrerequisitesWarn(t *testing.T) {
	c := mustBuild(t, Description{
		"classes":  "Barbarian",
		"strength": 12,
		"feats":    []string{"War Caster", "Grappler", "Sharpshooter"},
	})

	require.Len(t, c.Feats(), 3)
	assert.Equal(t, []string{
		"Grappler requires strength 13 or higher",
		"War Caster requires the ability to cast at least one spell",
	}, c.Warnings)

	// scores sort after "feats" but are still in place for the check
	strong := mustBuild(t, Description{"classes": "Wizard", "strength": 13, "feats": []string{"War Caster", "Grappler"}})
	assert.Empty(t, strong.Warnings)
}

func TestFeats_UnknownIsPlaceholder(t *testing.T) {
	c := mustBuild(t, Description{"feats": []string{"Dual Wielder"}})

	require.Len(t, c.Feats(), 1)
	assert.True(t, c.Feats()[0].IsUnknown())
	assert.Equal(t, []string{"Dual Wielder**"}, c.FeatsText())
	assert.Len(t, c.Warnings, 1)
}
