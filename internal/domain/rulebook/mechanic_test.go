package rulebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := map[string]string{
		"Mage Hand":                "magehand",
		"mage_hand":                "magehand",
		"Hunter's Mark":            "huntersmark",
		"Fighting Style (Archery)": "fightingstylearchery",
		"  Tiefling ":              "tiefling",
		"":                         "",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeName(in), in)
	}
}

func TestTitleName(t *testing.T) {
	assert.Equal(t, "Hocus Pocus", TitleName("hocus_pocus"))
	assert.Equal(t, "Hocus Pocus", TitleName("hocus-pocus"))
	assert.Equal(t, "Blood Hunter", TitleName("  blood   hunter "))
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "hunters-mark", Slug("Hunter's Mark"))
	assert.Equal(t, "fighting-style-two-weapon-fighting", Slug("Fighting Style (Two-Weapon Fighting)"))
}

func TestUnknown(t *testing.T) {
	m := Unknown("vorpal_spork", CapabilityWeapon)

	assert.Equal(t, "Vorpal Spork", m.Name)
	assert.Equal(t, "vorpal-spork", m.Key)
	assert.Equal(t, "Vorpal Spork not defined. Please add it.", m.Description)
	assert.Equal(t, SourceUnknown, m.Source)
	assert.Equal(t, CapabilityWeapon, m.Capability)
}

func TestModifier(t *testing.T) {
	tests := map[int]int{1: -5, 7: -2, 8: -1, 9: -1, 10: 0, 11: 0, 12: 1, 15: 2, 20: 5}
	for score, want := range tests {
		assert.Equal(t, want, Modifier(score), "score %d", score)
	}
}

func TestParseAbility(t *testing.T) {
	a, ok := ParseAbility("DEX")
	assert.True(t, ok)
	assert.Equal(t, AbilityDexterity, a)
	assert.Equal(t, "Dex", a.Short())

	_, ok = ParseAbility("luck")
	assert.False(t, ok)
}

func TestParseSkill(t *testing.T) {
	s, ok := ParseSkill("Sleight of Hand")
	assert.True(t, ok)
	assert.Equal(t, SkillSleightOfHand, s)
	assert.Equal(t, AbilityDexterity, s.Ability())
	assert.Equal(t, "Sleight of Hand", s.DisplayName())
	assert.Equal(t, "Animal Handling", SkillAnimalHandling.DisplayName())
}

func TestOrdinal(t *testing.T) {
	assert.Equal(t, "1st", Ordinal(1))
	assert.Equal(t, "2nd", Ordinal(2))
	assert.Equal(t, "3rd", Ordinal(3))
	assert.Equal(t, "4th", Ordinal(4))
	assert.Equal(t, "11th", Ordinal(11))
	assert.Equal(t, "21st", Ordinal(21))
}
