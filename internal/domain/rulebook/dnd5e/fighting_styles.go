package dnd5e

import "github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"

func (b *builder) addFightingStyles() {
	b.phb(rulebook.FightingStyleArchery, "You gain a +2 bonus to attack rolls you make with ranged weapons.")
	b.phb(rulebook.FightingStyleDefense, "While you are wearing armor, you gain a +1 bonus to AC.")
	b.phb(rulebook.FightingStyleDueling, "+2 damage when wielding a melee weapon in one hand with no other weapons.")
	b.phb(rulebook.FightingStyleGreatWeaponFighting, "Reroll 1-2 on damage dice with two-handed or versatile weapons.")
	b.phb(rulebook.FightingStyleProtection, "Use reaction with shield to impose disadvantage on an attack near you.")
	b.phb(rulebook.FightingStyleTwoWeaponFighting, "Add ability modifier to off-hand weapon damage.")
}

// fightingStyle is the "pick one" selector offered by fighter, paladin and ranger
func (b *builder) fightingStyle(styles ...string) *rulebook.Feature {
	return &rulebook.Feature{
		Mechanic: mechanic(rulebook.FightingStyle, SourcePHB, "You adopt a particular style of fighting as your specialty."),
		Options:  mustGet(b.lib.Features, styles...),
	}
}

func (b *builder) fighterStyles() *rulebook.Feature {
	return b.fightingStyle(rulebook.FightingStyles...)
}

func (b *builder) paladinStyles() *rulebook.Feature {
	return b.fightingStyle(
		rulebook.FightingStyleDefense,
		rulebook.FightingStyleDueling,
		rulebook.FightingStyleGreatWeaponFighting,
		rulebook.FightingStyleProtection,
	)
}

func (b *builder) rangerStyles() *rulebook.Feature {
	return b.fightingStyle(
		rulebook.FightingStyleArchery,
		rulebook.FightingStyleDefense,
		rulebook.FightingStyleDueling,
		rulebook.FightingStyleTwoWeaponFighting,
	)
}
