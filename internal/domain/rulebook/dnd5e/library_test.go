package dnd5e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"
)

func TestNewLibrary_Classes(t *testing.T) {
	lib := NewLibrary()

	hitDice := map[string]int{
		"Artificer": 8, "Barbarian": 12, "Bard": 8, "Cleric": 8, "Druid": 8, "Fighter": 10, "Monk": 8,
		"Paladin": 10, "Ranger": 10, "Rogue": 8, "Sorcerer": 6, "Warlock": 8, "Wizard": 6,
	}
	assert.Equal(t, len(hitDice), lib.Classes.Len())

	for name, faces := range hitDice {
		c, ok := lib.Classes.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, faces, c.HitDiceFaces, name)
		assert.Len(t, c.SavingThrows, 2, name)
		assert.Equal(t, rulebook.CapabilityClass, c.Capability, name)
		assert.NotZero(t, c.Subclasses.Len(), name)
	}
}

func TestNewLibrary_Aliases(t *testing.T) {
	lib := NewLibrary()

	sorcerer, ok := lib.Classes.Lookup("sorceror")
	require.True(t, ok)
	assert.Equal(t, "Sorcerer", sorcerer.Name)

	cleric, _ := lib.Classes.Lookup("Cleric")
	life, ok := cleric.Subclasses.Lookup("life")
	require.True(t, ok)
	assert.Equal(t, "Life Domain", life.Name)

	plate, ok := lib.Armor.Lookup("plate")
	require.True(t, ok)
	assert.Equal(t, 18, plate.BaseArmorClass)
}

func TestNewLibrary_IndependentCopies(t *testing.T) {
	a := NewLibrary()
	b := NewLibrary()

	a.Spells.Add(&rulebook.Spell{Mechanic: rulebook.Mechanic{Name: "Hocus Pocus"}})

	_, ok := b.Spells.Lookup("Hocus Pocus")
	assert.False(t, ok)
}

func TestSlotTables(t *testing.T) {
	lib := NewLibrary()
	class := func(name string) *rulebook.Class {
		c, ok := lib.Classes.Lookup(name)
		require.True(t, ok, name)
		return c
	}

	t.Run("full caster", func(t *testing.T) {
		wizard := class("Wizard")
		assert.Equal(t, 3, wizard.SpellSlots.Slots(1, 0))
		assert.Equal(t, 2, wizard.SpellSlots.Slots(1, 1))
		assert.Equal(t, 2, wizard.SpellSlots.Slots(5, 3))
		assert.Equal(t, 5, wizard.SpellSlots.Slots(10, 0))
		assert.Equal(t, 1, wizard.SpellSlots.Slots(20, 9))
	})

	t.Run("half caster has nothing at first level", func(t *testing.T) {
		paladin := class("Paladin")
		assert.Zero(t, paladin.SpellSlots.Slots(1, 1))
		assert.Equal(t, 2, paladin.SpellSlots.Slots(2, 1))
		assert.Equal(t, 2, paladin.SpellSlots.Slots(5, 2))
		assert.Zero(t, paladin.SpellSlots.Slots(20, 0))
	})

	t.Run("artificer casts at first level", func(t *testing.T) {
		artificer := class("Artificer")
		assert.Equal(t, 2, artificer.SpellSlots.Slots(1, 0))
		assert.Equal(t, 2, artificer.SpellSlots.Slots(1, 1))
		assert.Equal(t, 4, artificer.SpellSlots.Slots(14, 0))
	})

	t.Run("pact magic", func(t *testing.T) {
		warlock := class("Warlock")
		assert.Equal(t, 2, warlock.SpellSlots.Slots(3, 2))
		assert.Zero(t, warlock.SpellSlots.Slots(3, 1))
		assert.Equal(t, 3, warlock.SpellSlots.Slots(11, 5))
		assert.Equal(t, 2, warlock.SpellSlots.Slots(3, 0))
	})

	t.Run("third caster subclass", func(t *testing.T) {
		ek, ok := class("Fighter").Subclasses.Lookup("Eldritch Knight")
		require.True(t, ok)
		assert.Equal(t, rulebook.CasterThird, ek.Caster)
		assert.Zero(t, ek.SpellSlots.Slots(2, 1))
		assert.Equal(t, 2, ek.SpellSlots.Slots(3, 1))
		assert.Equal(t, 2, ek.SpellSlots.Slots(3, 0))
		assert.Equal(t, 3, ek.SpellSlots.Slots(10, 0))
	})
}

func TestFightingStyleSelector(t *testing.T) {
	lib := NewLibrary()
	fighter, _ := lib.Classes.Lookup("Fighter")

	var selector *rulebook.Feature
	for _, f := range fighter.FeaturesByLevel[1] {
		if f.IsSelector() {
			selector = f
		}
	}
	require.NotNil(t, selector)
	assert.Len(t, selector.Options, 6)

	assert.Equal(t, rulebook.FightingStyleArchery, selector.Choose([]string{"archery"}).Name)
	assert.Equal(t, "Fighting Style (Select One)", selector.Choose(nil).Name)

	paladin, _ := lib.Classes.Lookup("Paladin")
	for _, f := range paladin.FeaturesByLevel[2] {
		if f.IsSelector() {
			assert.Equal(t, "Fighting Style (Select One)", f.Choose([]string{"Archery"}).Name, "paladins cannot pick archery")
		}
	}
}

func TestFeaturesAreStampedWithLevel(t *testing.T) {
	lib := NewLibrary()
	barbarian, _ := lib.Classes.Lookup("Barbarian")

	for lvl, features := range barbarian.FeaturesByLevel {
		for _, f := range features {
			assert.Equal(t, lvl, f.Level, f.Name)
		}
	}
}

func TestFeats(t *testing.T) {
	lib := NewLibrary()
	assert.Equal(t, 10, lib.Feats.Len())

	tough, ok := lib.Feats.Lookup("tough")
	require.True(t, ok)
	assert.Equal(t, 2, tough.HPPerLevel)
	assert.True(t, tough.Prerequisite.IsZero())

	warCaster, ok := lib.Feats.Lookup("war_caster")
	require.True(t, ok)
	assert.True(t, warCaster.Prerequisite.Spellcasting)
	assert.Equal(t, rulebook.CapabilityFeat, warCaster.Capability)

	grappler, _ := lib.Feats.Lookup("Grappler")
	assert.Equal(t, rulebook.Prerequisite{Ability: rulebook.AbilityStrength, Score: 13}, grappler.Prerequisite)
}
