package rulebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLibrary() *Library {
	lib := NewLibrary()
	lib.Spells.Add(
		&Spell{Mechanic: Mechanic{Key: "mage-hand", Name: "Mage Hand", Source: "PHB"}, Level: 0},
		&Spell{Mechanic: Mechanic{Key: "fireball", Name: "Fireball", Source: "PHB"}, Level: 3},
	)
	lib.Weapons.Add(&Weapon{Mechanic: Mechanic{Name: "Shortsword"}, WeaponCategory: WeaponCategoryMartial})
	return lib
}

func TestResolve_ByName(t *testing.T) {
	lib := testLibrary()

	for _, ref := range []string{"Mage Hand", "mage_hand", "MAGE-HAND", "magehand", "  Mage Hand  "} {
		spell := Resolve(ref, lib.Spells, CapabilitySpell, "", nil)
		require.NotNil(t, spell, ref)
		assert.Equal(t, "Mage Hand", spell.Name, ref)
		assert.False(t, spell.IsUnknown(), ref)
		assert.Equal(t, CapabilitySpell, spell.Capability, ref)
	}
}

func TestResolve_PassThrough(t *testing.T) {
	lib := testLibrary()
	custom := &Spell{Mechanic: Mechanic{Name: "Homebrew Bolt"}, Level: 1}

	got := Resolve(custom, lib.Spells, CapabilitySpell, "unknown spell %q", func(string) {
		t.Fatal("pass-through must not warn")
	})
	assert.Same(t, custom, got)
}

func TestResolve_UnknownSynthesizesPlaceholder(t *testing.T) {
	lib := testLibrary()
	var warnings []string
	warn := func(msg string) { warnings = append(warnings, msg) }

	spell := Resolve("hocus_pocus", lib.Spells, CapabilitySpell, "Unknown spell: %s", warn)

	require.NotNil(t, spell)
	assert.Equal(t, "Hocus Pocus", spell.Name)
	assert.Equal(t, "Hocus Pocus not defined. Please add it.", spell.Description)
	assert.Equal(t, SourceUnknown, spell.Source)
	assert.Equal(t, CapabilitySpell, spell.Capability)
	assert.True(t, spell.IsUnknown())
	assert.Equal(t, "Hocus Pocus**", spell.DisplayName())
	assert.Equal(t, []string{"Unknown spell: hocus_pocus"}, warnings)
}

func TestResolve_UnknownWithoutMessageIsSilent(t *testing.T) {
	lib := testLibrary()

	weapon := Resolve("Vorpal Spork", lib.Weapons, CapabilityWeapon, "", func(string) {
		t.Fatal("no message means no warning")
	})
	assert.True(t, weapon.IsUnknown())
	assert.Equal(t, "Vorpal Spork", weapon.Name)
}

func TestResolve_TwiceYieldsEqualNames(t *testing.T) {
	lib := testLibrary()

	a := Resolve("hocus pocus", lib.Spells, CapabilitySpell, "", nil)
	b := Resolve("hocus pocus", lib.Spells, CapabilitySpell, "", nil)

	assert.NotSame(t, a, b)
	assert.Equal(t, a.Name, b.Name)
	assert.Equal(t, 1, NewSet(a, b).Len())
}

func TestResolve_PlaceholderKeepsCatalogDefaults(t *testing.T) {
	lib := NewLibrary()

	armor := Resolve("Mithral Plate", lib.Armor, CapabilityArmor, "", nil)
	assert.Equal(t, 10, armor.BaseArmorClass)
	assert.True(t, armor.DexBonus)

	shield := Resolve("Tower Shield", lib.Shields, CapabilityShield, "", nil)
	assert.Equal(t, 2, shield.ArmorBonus)
}

func TestReferenceName(t *testing.T) {
	var nilSpell *Spell
	tests := []struct {
		name string
		ref  any
		want string
	}{
		{name: "nil", ref: nil, want: ""},
		{name: "string", ref: "Fireball", want: "Fireball"},
		{name: "entry", ref: &Weapon{Mechanic: Mechanic{Name: "Dagger"}}, want: "Dagger"},
		{name: "typed nil entry", ref: nilSpell, want: ""},
		{name: "number", ref: 42, want: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReferenceName(tt.ref))
		})
	}
}
