package dnd5e

import (
	"strings"

	apiEntities "github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"
)

// SourceSRD marks content imported from the API
const SourceSRD = "SRD"

func mechanic(key, name string, capability rulebook.Capability) rulebook.Mechanic {
	if key == "" {
		key = rulebook.Slug(name)
	}
	return rulebook.Mechanic{
		Key:        key,
		Name:       name,
		Source:     SourceSRD,
		Capability: capability,
	}
}

func apiSpellToSpell(input *apiEntities.Spell) *rulebook.Spell {
	if input == nil {
		return nil
	}

	spell := &rulebook.Spell{
		Mechanic:      mechanic(input.Key, input.Name, rulebook.CapabilitySpell),
		Level:         input.SpellLevel,
		CastingTime:   input.CastingTime,
		Range:         input.Range,
		Duration:      input.Duration,
		Ritual:        input.Ritual,
		Concentration: input.Concentration,
		Classes:       referenceNames(input.SpellClasses),
	}
	if input.SpellSchool != nil {
		spell.School = input.SpellSchool.Name
	}

	return spell
}

func apiWeaponToWeapon(input *apiEntities.Weapon) *rulebook.Weapon {
	weapon := &rulebook.Weapon{
		Mechanic:       mechanic(input.Key, input.Name, rulebook.CapabilityWeapon),
		WeaponCategory: titleWord(input.WeaponCategory),
		WeaponRange:    titleWord(input.WeaponRange),
		Properties:     lowerNames(input.Properties),
	}
	if input.Damage != nil {
		weapon.Damage = input.Damage.DamageDice
		if input.Damage.DamageType != nil {
			weapon.DamageType = strings.ToLower(input.Damage.DamageType.Name)
		}
	}

	return weapon
}

func apiArmorToArmor(input *apiEntities.Armor) *rulebook.Armor {
	armor := &rulebook.Armor{
		Mechanic:            mechanic(input.Key, input.Name, rulebook.CapabilityArmor),
		ArmorCategory:       rulebook.ArmorCategory(strings.ToLower(input.ArmorCategory)),
		StrengthMin:         input.StrMinimum,
		StealthDisadvantage: input.StealthDisadvantage,
	}
	if input.ArmorClass != nil {
		armor.BaseArmorClass = input.ArmorClass.Base
		armor.DexBonus = input.ArmorClass.DexBonus
	}
	// the API does not carry the medium armor cap
	if armor.ArmorCategory == rulebook.ArmorCategoryMedium && armor.DexBonus {
		armor.MaxDexBonus = 2
	}

	return armor
}

func apiArmorToShield(input *apiEntities.Armor) *rulebook.Shield {
	shield := &rulebook.Shield{
		Mechanic:   mechanic(input.Key, input.Name, rulebook.CapabilityShield),
		ArmorBonus: 2,
	}
	if input.ArmorClass != nil && input.ArmorClass.Base > 0 {
		shield.ArmorBonus = input.ArmorClass.Base
	}

	return shield
}

func apiReferenceToFeature(input *apiEntities.ReferenceItem, level int) *rulebook.Feature {
	return &rulebook.Feature{
		Mechanic: mechanic(input.Key, input.Name, rulebook.CapabilityFeature),
		Level:    level,
	}
}

func referenceNames(refs []*apiEntities.ReferenceItem) []string {
	var names []string
	for _, ref := range refs {
		if ref != nil && ref.Name != "" {
			names = append(names, ref.Name)
		}
	}
	return names
}

func lowerNames(refs []*apiEntities.ReferenceItem) []string {
	names := referenceNames(refs)
	for i, name := range names {
		names[i] = strings.ToLower(name)
	}
	return names
}

// titleWord turns "martial" or "MELEE" into the catalog's "Martial" and "Melee"
func titleWord(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
