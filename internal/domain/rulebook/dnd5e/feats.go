package dnd5e

import "github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"

func feat(name, description string) *rulebook.Feat {
	return &rulebook.Feat{Mechanic: mechanic(name, SourcePHB, description)}
}

func (b *builder) addFeats() {
	alert := feat("Alert", "Always on the lookout for danger: +5 to initiative, you can't be surprised while conscious, and unseen creatures gain no advantage on attacks against you.")
	alert.InitiativeBonus = 5

	tough := feat("Tough", "Your hit point maximum increases by an amount equal to twice your level when you gain this feat, and by 2 every level after.")
	tough.HPPerLevel = 2

	mobile := feat("Mobile", "Your speed increases by 10 feet. Dash ignores difficult terrain, and a creature you attack in melee can't make opportunity attacks against you that turn.")
	mobile.SpeedBonus = 10

	observant := feat("Observant", "Increase Intelligence or Wisdom by 1. You can read lips, and you have a +5 bonus to passive Perception and passive Investigation.")
	observant.PassiveBonus = 5

	warCaster := feat("War Caster", "Advantage on Constitution saves to maintain concentration, somatic components with your hands full, and a spell in place of an opportunity attack.")
	warCaster.Prerequisite = rulebook.Prerequisite{Spellcasting: true}

	grappler := feat("Grappler", "Advantage on attack rolls against a creature you are grappling, and you can try to pin it.")
	grappler.Prerequisite = rulebook.Prerequisite{Ability: rulebook.AbilityStrength, Score: 13}

	heavyArmorMaster := feat("Heavy Armor Master", "Increase Strength by 1. While wearing heavy armor, bludgeoning, piercing and slashing damage from nonmagical weapons is reduced by 3.")
	heavyArmorMaster.Prerequisite = rulebook.Prerequisite{Ability: rulebook.AbilityStrength, Score: 13}

	b.lib.Feats.Add(
		alert,
		tough,
		mobile,
		observant,
		warCaster,
		grappler,
		heavyArmorMaster,
		feat("Lucky", "You have 3 luck points. Spend one to roll an additional d20 for an attack, ability check or saving throw, or for an attack against you. Regained on a long rest."),
		feat("Great Weapon Master", "A critical hit or kill with a melee weapon grants a bonus action attack. Before a heavy weapon attack you may take -5 to hit for +10 damage."),
		feat("Sharpshooter", "No disadvantage at long range, ranged attacks ignore half and three-quarters cover, and you may take -5 to hit for +10 damage."),
	)
}
