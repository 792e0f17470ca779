package calculators

import (
	"github.com/KirkDiggler/dnd-sheets/internal/domain/character"
	"github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"
)

const (
	unarmoredDefenseBarbarian = "Unarmored Defense"
	unarmoredDefenseMonk      = "Unarmored Defense (Monk)"
)

// DnD5eACCalculator implements AC calculation following D&D 5e rules
type DnD5eACCalculator struct{}

// NewDnD5eACCalculator creates a new D&D 5e AC calculator
func NewDnD5eACCalculator() *DnD5eACCalculator {
	return &DnD5eACCalculator{}
}

// Calculate computes AC following D&D 5e rules
func (c *DnD5eACCalculator) Calculate(char *character.Character) int {
	if char == nil {
		return 10
	}

	dexMod := char.AbilityModifier(rulebook.AbilityDexterity)
	armor := char.Armor()
	shield := char.Shield()

	var ac int
	if armor != nil {
		ac = armor.ArmorClassWith(dexMod)
	} else {
		ac = c.unarmoredBase(char, dexMod, shield != nil)
	}

	if shield != nil {
		ac += shield.ArmorBonus
	}

	// Defense only applies while wearing armor
	if armor != nil && char.HasFeature(rulebook.FightingStyleDefense) {
		ac++
	}

	for _, item := range char.MagicItems() {
		ac += item.ACBonus
	}

	return ac
}

// unarmoredBase picks the best unarmored formula the character qualifies for.
// A character with both Unarmored Defense features still only gets one.
func (c *DnD5eACCalculator) unarmoredBase(char *character.Character, dexMod int, hasShield bool) int {
	ac := 10 + dexMod
	if char.HasFeature(unarmoredDefenseBarbarian) {
		ac = max(ac, 10+dexMod+char.AbilityModifier(rulebook.AbilityConstitution))
	}
	// Monks lose it when carrying a shield
	if !hasShield && char.HasFeature(unarmoredDefenseMonk) {
		ac = max(ac, 10+dexMod+char.AbilityModifier(rulebook.AbilityWisdom))
	}
	return ac
}
