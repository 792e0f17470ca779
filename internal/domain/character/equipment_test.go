package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"
)

func weapon(t *testing.T, c *Character, name string) *rulebook.Weapon {
	t.Helper()
	w, ok := c.Library().Weapons.Lookup(name)
	require.True(t, ok, name)
	return w
}

func TestWeaponProficiencies_MulticlassUsesNarrowerList(t *testing.T) {
	wizard := mustBuild(t, Description{"classes": "Wizard"})
	assert.True(t, wizard.IsProficient(weapon(t, wizard, "Dagger")))
	assert.False(t, wizard.IsProficient(weapon(t, wizard, "Longsword")))

	multi := mustBuild(t, Description{"classes": []string{"Wizard", "Fighter"}, "levels": []int{1, 1}})
	assert.True(t, multi.IsProficient(weapon(t, multi, "Longsword")))
	assert.True(t, multi.IsProficient(weapon(t, multi, "Club")))

	rogueFirst := mustBuild(t, Description{"classes": []string{"Wizard", "Rogue"}, "levels": []int{1, 1}})
	assert.False(t, rogueFirst.IsProficient(weapon(t, rogueFirst, "Rapier")), "rogue multiclass grants no weapons")
}

func TestWeaponProficiencies_RaceAndBackgroundAndDedup(t *testing.T) {
	c := mustBuild(t, Description{"classes": "Cleric", "race": "Mountain Dwarf"})

	assert.True(t, c.IsProficient(weapon(t, c, "Warhammer")))
	assert.False(t, c.IsProficient(nil))

	seen := map[string]bool{}
	for _, w := range c.WeaponProficiencies() {
		assert.False(t, seen[w.Name], "duplicate %s", w.Name)
		seen[w.Name] = true
	}
}

func TestSetWeaponProficiencies_KeepsOnlyExtras(t *testing.T) {
	c := mustBuild(t, Description{
		"classes":              "Wizard",
		"weapon_proficiencies": []string{"Dagger", "longsword", "Vorpal Spork"},
	})

	assert.Equal(t, []string{"Longsword", "Vorpal Spork"}, c.OtherWeaponProficienciesText())
	assert.True(t, c.IsProficient(weapon(t, c, "Longsword")))
	require.Len(t, c.Warnings, 1)
}

func TestProficienciesText(t *testing.T) {
	fighter := mustBuild(t, Description{"classes": "Fighter"})
	assert.Equal(t, "All armor, shields.", fighter.ProficienciesText())

	multi := mustBuild(t, Description{
		"classes":            []string{"Wizard", "Fighter"},
		"levels":             []int{1, 1},
		"proficiencies_text": []string{"Thieves' tools"},
	})
	assert.Equal(t, "Thieves' tools, light armor, medium armor, shields.", multi.ProficienciesText())

	wizard := mustBuild(t, Description{"classes": "Wizard"})
	assert.Equal(t, ".", wizard.ProficienciesText())
}

func TestWieldAndWear(t *testing.T) {
	c := mustBuild(t, Description{
		"classes":   "Fighter",
		"dexterity": 16,
		"armor":     "None",
		"shield":    "",
		"weapons":   []string{"Longsword", "shortbow", "Boomerang"},
	})

	assert.Nil(t, c.Armor())
	assert.Nil(t, c.Shield())
	assert.Equal(t, []string{"Longsword", "Shortbow", "Boomerang"}, rulebook.Names(c.Weapons()))
	assert.True(t, c.Weapons()[2].IsUnknown())
	assert.Equal(t, 13, c.ArmorClass())

	c.WearArmor("half plate")
	c.WieldShield("shield")
	assert.Equal(t, "Half Plate", c.Armor().Name)
	assert.Equal(t, 15+2+2, c.ArmorClass())

	c.WearArmor(nil)
	assert.NotNil(t, c.Armor(), "nil leaves the armor on")

	c.WearArmor("Mithral Plate")
	assert.True(t, c.Armor().IsUnknown())
	assert.Equal(t, 10+3+2, c.ArmorClass())
}

func TestWeaponAttackBonus(t *testing.T) {
	c := mustBuild(t, Description{"classes": "Wizard", "strength": 8, "dexterity": 14})

	assert.Equal(t, 4, c.WeaponAttackBonus(weapon(t, c, "Dagger")), "finesse uses dexterity")
	assert.Equal(t, -1, c.WeaponAttackBonus(weapon(t, c, "Greataxe")), "not proficient")
	assert.Equal(t, 4, c.WeaponAttackBonus(weapon(t, c, "Light Crossbow")))
	assert.Equal(t, -1, c.WeaponDamageBonus(weapon(t, c, "Quarterstaff")))
}

func TestWeaponDamage(t *testing.T) {
	c := mustBuild(t, Description{"classes": "Fighter", "strength": 16})

	longsword, ok := c.WeaponDamage(weapon(t, c, "Longsword"))
	require.True(t, ok)
	assert.Equal(t, "1d8+3", longsword.String())
	assert.Equal(t, 7, longsword.Average())

	_, ok = c.WeaponDamage(nil)
	assert.False(t, ok)

	_, ok = c.WeaponDamage(&rulebook.Weapon{Mechanic: rulebook.Mechanic{Name: "Net"}})
	assert.False(t, ok)
}

func TestMagicItems(t *testing.T) {
	c := mustBuild(t, Description{
		"classes":     "Paladin",
		"magic_items": []string{"ring_of_protection", "Vorpal Spork", "Ring of Protection"},
	})

	assert.Equal(t, "Ring of Protection, Vorpal Spork**, ", c.MagicItemsText())
	assert.Equal(t, 11, c.EquipmentArmorClass())
	assert.Equal(t, c.AbilityModifier(rulebook.AbilityWisdom)+c.ProficiencyBonus()+1, c.SavingThrow(rulebook.AbilityWisdom))

	empty := mustBuild(t, Description{})
	assert.Empty(t, empty.MagicItemsText())
}

func TestInfusions_RequireArtificer(t *testing.T) {
	artificer := mustBuild(t, Description{
		"classes":   "Artificer",
		"levels":    2,
		"infusions": []string{"homunculus servant", "Enhanced Defense"},
	})
	assert.Equal(t, []string{"Enhanced Defense", "Homunculus Servant"}, artificer.InfusionsText())

	fighter := mustBuild(t, Description{"classes": "Fighter", "infusions": []string{"Enhanced Defense"}})
	assert.Empty(t, fighter.Infusions())
	require.Len(t, fighter.Warnings, 1)
	assert.Contains(t, fighter.Warnings[0], "no Artificer levels")
}

func TestDruidState(t *testing.T) {
	druid := mustBuild(t, Description{
		"classes":     []string{"Fighter", "Druid"},
		"levels":      []int{1, 2},
		"circle":      "Moon",
		"wild_shapes": []string{"Wolf", "Crocodile"},
	})
	assert.Equal(t, "Moon", druid.Circle())
	assert.Equal(t, []string{"Wolf", "Crocodile"}, druid.WildShapes())
	assert.Empty(t, druid.Warnings)

	wizard := mustBuild(t, Description{"classes": "Wizard", "circle": "Moon", "wild_shapes": "Wolf"})
	assert.Empty(t, wizard.Circle())
	assert.Nil(t, wizard.WildShapes())
	assert.Len(t, wizard.Warnings, 2)
}
