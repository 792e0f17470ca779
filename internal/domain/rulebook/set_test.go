package rulebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func feature(name string) *Feature {
	return &Feature{Mechanic: Mechanic{Name: name}}
}

func TestSet_DeduplicatesByName(t *testing.T) {
	first := feature("Darkvision")
	s := NewSet(first, feature("Rage"), feature("Darkvision"), nil)

	assert.Equal(t, 2, s.Len())
	assert.Same(t, first, s.Items()[0])
	assert.True(t, s.Has("Rage"))
	assert.False(t, s.Has("rage"))
}

func TestSet_Remove(t *testing.T) {
	s := NewSet(feature("C"), feature("A"), feature("B"))

	s.Remove("A")
	s.Remove("Missing")
	s.Add(feature("A"))

	assert.Equal(t, []string{"C", "B", "A"}, Names(s.Items()))
	assert.Equal(t, []string{"A", "B", "C"}, Names(s.Sorted()))
}

func TestFeature_Choose(t *testing.T) {
	archery := feature(FightingStyleArchery)
	defense := feature(FightingStyleDefense)
	selector := &Feature{Mechanic: Mechanic{Name: FightingStyle}, Options: []*Feature{archery, defense}}

	assert.Same(t, archery, selector.Choose([]string{"Fighting Style (Archery)"}))
	assert.Same(t, defense, selector.Choose([]string{"unrelated", "defense"}))

	undetermined := selector.Choose([]string{"Dueling"})
	assert.Equal(t, "Fighting Style (Select One)", undetermined.Name)
	assert.Equal(t, FightingStyle, selector.Name, "selector itself is untouched")

	plain := feature("Rage")
	assert.Same(t, plain, plain.Choose([]string{"anything"}))
}

func TestWeapon_CoveredBy(t *testing.T) {
	dagger := &Weapon{Mechanic: Mechanic{Name: "Dagger"}, WeaponCategory: WeaponCategorySimple}
	longsword := &Weapon{Mechanic: Mechanic{Name: "Longsword"}, WeaponCategory: WeaponCategoryMartial}
	simple := &Weapon{Mechanic: Mechanic{Name: SimpleWeapons}, IsCategory: true}

	assert.True(t, dagger.CoveredBy(simple))
	assert.False(t, longsword.CoveredBy(simple))
	assert.True(t, longsword.CoveredBy(longsword))
	assert.False(t, longsword.CoveredBy(nil))
}

func TestArmor_ArmorClassWith(t *testing.T) {
	leather := &Armor{BaseArmorClass: 11, DexBonus: true}
	halfPlate := &Armor{BaseArmorClass: 15, DexBonus: true, MaxDexBonus: 2}
	plate := &Armor{BaseArmorClass: 18}

	assert.Equal(t, 15, leather.ArmorClassWith(4))
	assert.Equal(t, 17, halfPlate.ArmorClassWith(4))
	assert.Equal(t, 14, halfPlate.ArmorClassWith(-1))
	assert.Equal(t, 18, plate.ArmorClassWith(4))
}

func TestSlotTable_OutOfRange(t *testing.T) {
	var table SlotTable
	table[19][9] = 1

	assert.Equal(t, 1, table.Slots(25, 9), "levels past the cap use the last row")
	assert.Zero(t, table.Slots(0, 1))
	assert.Zero(t, table.Slots(5, 10))

	var none *SlotTable
	assert.Zero(t, none.Slots(5, 1))
}
