package dnd5e

import "github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"

func weapon(name, category, weaponRange, damage, damageType string, rangeFt int, properties ...string) *rulebook.Weapon {
	return &rulebook.Weapon{
		Mechanic:       mechanic(name, SourcePHB, ""),
		WeaponCategory: category,
		WeaponRange:    weaponRange,
		Damage:         damage,
		DamageType:     damageType,
		Range:          rangeFt,
		Properties:     properties,
	}
}

func (b *builder) addWeapons() {
	const (
		simple  = rulebook.WeaponCategorySimple
		martial = rulebook.WeaponCategoryMartial
		melee   = rulebook.WeaponRangeMelee
		ranged  = rulebook.WeaponRangeRanged
	)

	b.lib.Weapons.Add(
		&rulebook.Weapon{
			Mechanic:       mechanic(rulebook.SimpleWeapons, SourcePHB, "Proficiency with every simple weapon."),
			WeaponCategory: simple,
			IsCategory:     true,
		},
		&rulebook.Weapon{
			Mechanic:       mechanic(rulebook.MartialWeapons, SourcePHB, "Proficiency with every martial weapon."),
			WeaponCategory: martial,
			IsCategory:     true,
		},

		// simple melee
		weapon("Club", simple, melee, "1d4", "bludgeoning", 0, "light"),
		weapon("Dagger", simple, melee, "1d4", "piercing", 20, "finesse", "light", "thrown"),
		weapon("Greatclub", simple, melee, "1d8", "bludgeoning", 0, "two-handed"),
		weapon("Handaxe", simple, melee, "1d6", "slashing", 20, "light", "thrown"),
		weapon("Javelin", simple, melee, "1d6", "piercing", 30, "thrown"),
		weapon("Light Hammer", simple, melee, "1d4", "bludgeoning", 20, "light", "thrown"),
		weapon("Mace", simple, melee, "1d6", "bludgeoning", 0),
		weapon("Quarterstaff", simple, melee, "1d6", "bludgeoning", 0, "versatile"),
		weapon("Sickle", simple, melee, "1d4", "slashing", 0, "light"),
		weapon("Spear", simple, melee, "1d6", "piercing", 20, "thrown", "versatile"),
		weapon("Unarmed Strike", simple, melee, "1", "bludgeoning", 0),

		// simple ranged
		weapon("Light Crossbow", simple, ranged, "1d8", "piercing", 80, "ammunition", "loading", "two-handed"),
		weapon("Dart", simple, ranged, "1d4", "piercing", 20, "finesse", "thrown"),
		weapon("Shortbow", simple, ranged, "1d6", "piercing", 80, "ammunition", "two-handed"),
		weapon("Sling", simple, ranged, "1d4", "bludgeoning", 30, "ammunition"),

		// martial melee
		weapon("Battleaxe", martial, melee, "1d8", "slashing", 0, "versatile"),
		weapon("Flail", martial, melee, "1d8", "bludgeoning", 0),
		weapon("Glaive", martial, melee, "1d10", "slashing", 0, "heavy", "reach", "two-handed"),
		weapon("Greataxe", martial, melee, "1d12", "slashing", 0, "heavy", "two-handed"),
		weapon("Greatsword", martial, melee, "2d6", "slashing", 0, "heavy", "two-handed"),
		weapon("Halberd", martial, melee, "1d10", "slashing", 0, "heavy", "reach", "two-handed"),
		weapon("Lance", martial, melee, "1d12", "piercing", 0, "reach", "special"),
		weapon("Longsword", martial, melee, "1d8", "slashing", 0, "versatile"),
		weapon("Maul", martial, melee, "2d6", "bludgeoning", 0, "heavy", "two-handed"),
		weapon("Morningstar", martial, melee, "1d8", "piercing", 0),
		weapon("Pike", martial, melee, "1d10", "piercing", 0, "heavy", "reach", "two-handed"),
		weapon("Rapier", martial, melee, "1d8", "piercing", 0, "finesse"),
		weapon("Scimitar", martial, melee, "1d6", "slashing", 0, "finesse", "light"),
		weapon("Shortsword", martial, melee, "1d6", "piercing", 0, "finesse", "light"),
		weapon("Trident", martial, melee, "1d6", "piercing", 20, "thrown", "versatile"),
		weapon("War Pick", martial, melee, "1d8", "piercing", 0),
		weapon("Warhammer", martial, melee, "1d8", "bludgeoning", 0, "versatile"),
		weapon("Whip", martial, melee, "1d4", "slashing", 0, "finesse", "reach"),

		// martial ranged
		weapon("Blowgun", martial, ranged, "1", "piercing", 25, "ammunition", "loading"),
		weapon("Hand Crossbow", martial, ranged, "1d6", "piercing", 30, "ammunition", "light", "loading"),
		weapon("Heavy Crossbow", martial, ranged, "1d10", "piercing", 100, "ammunition", "heavy", "loading", "two-handed"),
		weapon("Longbow", martial, ranged, "1d8", "piercing", 150, "ammunition", "heavy", "two-handed"),
		weapon("Net", martial, ranged, "", "", 5, "special", "thrown"),
	)
}
