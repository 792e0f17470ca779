package dnd5e

import "github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"

func (b *builder) darkvision() *rulebook.Feature {
	return b.phb("Darkvision", "You can see in dim light within 60 feet as if it were bright light, and in darkness as if it were dim light.")
}

func (b *builder) addRaces() {
	dwarf := func(name string, bonuses map[rulebook.Ability]int, text []string, extra ...*rulebook.Feature) *rulebook.Race {
		return &rulebook.Race{
			Mechanic:            mechanic(name, SourcePHB, ""),
			Size:                "Medium",
			Speed:               25,
			AbilityBonuses:      bonuses,
			WeaponProficiencies: b.weapons("Battleaxe", "Handaxe", "Light Hammer", "Warhammer"),
			ProficienciesText:   append([]string{"one of smith's tools, brewer's supplies, or mason's tools"}, text...),
			Languages:           "Common, Dwarvish",
			Features: append([]*rulebook.Feature{
				b.darkvision(),
				b.phb("Dwarven Resilience", "Advantage on saving throws against poison and resistance to poison damage."),
				b.phb("Stonecunning", "Double proficiency bonus on History checks related to the origin of stonework."),
			}, extra...),
		}
	}

	elf := func(name string, speed int, bonuses map[rulebook.Ability]int, weapons []*rulebook.Weapon, extra ...*rulebook.Feature) *rulebook.Race {
		return &rulebook.Race{
			Mechanic:            mechanic(name, SourcePHB, ""),
			Size:                "Medium",
			Speed:               speed,
			AbilityBonuses:      bonuses,
			WeaponProficiencies: weapons,
			SkillProficiencies:  []rulebook.Skill{rulebook.SkillPerception},
			Languages:           "Common, Elvish",
			Features: append([]*rulebook.Feature{
				b.darkvision(),
				b.phb("Fey Ancestry", "Advantage on saves against being charmed, and magic can't put you to sleep."),
				b.phb("Trance", "Meditate for 4 hours instead of sleeping."),
				b.phb("Keen Senses", "Proficiency in the Perception skill."),
			}, extra...),
		}
	}

	halfling := func(name string, bonuses map[rulebook.Ability]int, extra ...*rulebook.Feature) *rulebook.Race {
		return &rulebook.Race{
			Mechanic:       mechanic(name, SourcePHB, ""),
			Size:           "Small",
			Speed:          25,
			AbilityBonuses: bonuses,
			Languages:      "Common, Halfling",
			Features: append([]*rulebook.Feature{
				b.phb("Lucky", "Reroll a 1 on an attack roll, ability check, or saving throw."),
				b.phb("Brave", "Advantage on saving throws against being frightened."),
				b.phb("Halfling Nimbleness", "Move through the space of any creature that is larger than you."),
			}, extra...),
		}
	}

	gnome := func(name string, bonuses map[rulebook.Ability]int, spells []*rulebook.Spell, text []string, extra ...*rulebook.Feature) *rulebook.Race {
		return &rulebook.Race{
			Mechanic:          mechanic(name, SourcePHB, ""),
			Size:              "Small",
			Speed:             25,
			AbilityBonuses:    bonuses,
			ProficienciesText: text,
			Languages:         "Common, Gnomish",
			SpellsKnown:       spells,
			Features: append([]*rulebook.Feature{
				b.darkvision(),
				b.phb("Gnome Cunning", "Advantage on Intelligence, Wisdom, and Charisma saves against magic."),
			}, extra...),
		}
	}

	aasimar := func(name string, bonuses map[rulebook.Ability]int, transformation *rulebook.Feature) *rulebook.Race {
		return &rulebook.Race{
			Mechanic:       mechanic(name, SourceVGM, ""),
			Size:           "Medium",
			Speed:          30,
			AbilityBonuses: bonuses,
			Languages:      "Common, Celestial",
			SpellsKnown:    b.spells("Light"),
			Features: []*rulebook.Feature{
				b.darkvision(),
				b.feature("Celestial Resistance", SourceVGM, "Resistance to necrotic damage and radiant damage."),
				b.feature("Healing Hands", SourceVGM, "Touch a creature to restore hit points equal to your level."),
				b.feature("Light Bearer", SourceVGM, "You know the light cantrip."),
			},
			FeaturesByLevel: map[int][]*rulebook.Feature{3: {transformation}},
		}
	}

	const (
		str = rulebook.AbilityStrength
		dex = rulebook.AbilityDexterity
		con = rulebook.AbilityConstitution
		in  = rulebook.AbilityIntelligence
		wis = rulebook.AbilityWisdom
		cha = rulebook.AbilityCharisma
	)

	elfWeapons := b.weapons("Longsword", "Shortsword", "Shortbow", "Longbow")

	b.lib.Races.Add(
		&rulebook.Race{
			Mechanic:       mechanic("Human", SourcePHB, ""),
			Size:           "Medium",
			Speed:          30,
			AbilityBonuses: map[rulebook.Ability]int{str: 1, dex: 1, con: 1, in: 1, wis: 1, cha: 1},
			Languages:      "Common, one extra language of your choice",
		},
		dwarf("Hill Dwarf", map[rulebook.Ability]int{con: 2, wis: 1}, nil,
			b.phb("Dwarven Toughness", "Your hit point maximum increases by 1, and by 1 every time you gain a level."),
		),
		dwarf("Mountain Dwarf", map[rulebook.Ability]int{con: 2, str: 2}, []string{"light armor", "medium armor"},
			b.phb("Dwarven Armor Training", "You have proficiency with light and medium armor."),
		),
		elf("High Elf", 30, map[rulebook.Ability]int{dex: 2, in: 1}, elfWeapons,
			b.phb("Elf Weapon Training", "Proficiency with the longsword, shortsword, shortbow, and longbow."),
			b.phb("Cantrip (High Elf)", "You know one cantrip of your choice from the wizard spell list."),
		),
		elf("Wood Elf", 35, map[rulebook.Ability]int{dex: 2, wis: 1}, elfWeapons,
			b.phb("Elf Weapon Training", "Proficiency with the longsword, shortsword, shortbow, and longbow."),
			b.phb("Fleet of Foot", "Your base walking speed increases to 35 feet."),
			b.phb("Mask of the Wild", "Attempt to hide when only lightly obscured by natural phenomena."),
		),
		func() *rulebook.Race {
			drow := elf("Dark Elf", 30, map[rulebook.Ability]int{dex: 2, cha: 1}, b.weapons("Rapier", "Shortsword", "Hand Crossbow"),
				b.phb("Superior Darkvision", "Your darkvision has a radius of 120 feet."),
				b.phb("Sunlight Sensitivity", "Disadvantage on attack rolls and Perception checks in direct sunlight."),
				b.phb("Drow Magic", "You know the dancing lights cantrip."),
			)
			drow.SpellsKnown = b.spells("Dancing Lights")
			return drow
		}(),
		halfling("Lightfoot Halfling", map[rulebook.Ability]int{dex: 2, cha: 1},
			b.phb("Naturally Stealthy", "Attempt to hide when obscured only by a creature at least one size larger."),
		),
		halfling("Stout Halfling", map[rulebook.Ability]int{dex: 2, con: 1},
			b.phb("Stout Resilience", "Advantage on saving throws against poison and resistance to poison damage."),
		),
		&rulebook.Race{
			Mechanic:       mechanic("Dragonborn", SourcePHB, ""),
			Size:           "Medium",
			Speed:          30,
			AbilityBonuses: map[rulebook.Ability]int{str: 2, cha: 1},
			Languages:      "Common, Draconic",
			Features: []*rulebook.Feature{
				b.phb("Draconic Ancestry", "You have draconic ancestry of a chosen dragon type."),
				b.phb("Breath Weapon", "Exhale destructive energy determined by your draconic ancestry."),
				b.phb("Damage Resistance", "Resistance to the damage type associated with your draconic ancestry."),
			},
		},
		gnome("Forest Gnome", map[rulebook.Ability]int{in: 2, dex: 1}, b.spells("Minor Illusion"), nil,
			b.phb("Natural Illusionist", "You know the minor illusion cantrip."),
			b.phb("Speak with Small Beasts", "Communicate simple ideas with Small or smaller beasts."),
		),
		gnome("Rock Gnome", map[rulebook.Ability]int{in: 2, con: 1}, nil, []string{"tinker's tools"},
			b.phb("Artificer's Lore", "Double proficiency bonus on History checks about magic items and technological devices."),
			b.phb("Tinker", "Construct tiny clockwork devices."),
		),
		&rulebook.Race{
			Mechanic:          mechanic("Half-Elf", SourcePHB, ""),
			Size:              "Medium",
			Speed:             30,
			AbilityBonuses:    map[rulebook.Ability]int{cha: 2},
			ProficienciesText: []string{"two skills of your choice"},
			Languages:         "Common, Elvish, one extra language of your choice",
			Features: []*rulebook.Feature{
				b.darkvision(),
				b.phb("Fey Ancestry", "Advantage on saves against being charmed, and magic can't put you to sleep."),
				b.phb("Skill Versatility", "You gain proficiency in two skills of your choice."),
			},
		},
		&rulebook.Race{
			Mechanic:           mechanic("Half-Orc", SourcePHB, ""),
			Size:               "Medium",
			Speed:              30,
			AbilityBonuses:     map[rulebook.Ability]int{str: 2, con: 1},
			SkillProficiencies: []rulebook.Skill{rulebook.SkillIntimidation},
			Languages:          "Common, Orc",
			Features: []*rulebook.Feature{
				b.darkvision(),
				b.phb("Menacing", "You gain proficiency in the Intimidation skill."),
				b.phb("Relentless Endurance", "Drop to 1 hit point instead of 0 once per long rest."),
				b.phb("Savage Attacks", "Roll one extra weapon damage die on a melee critical hit."),
			},
		},
		&rulebook.Race{
			Mechanic:       mechanic("Tiefling", SourcePHB, ""),
			Size:           "Medium",
			Speed:          30,
			AbilityBonuses: map[rulebook.Ability]int{cha: 2, in: 1},
			Languages:      "Common, Infernal",
			SpellsKnown:    b.spells("Thaumaturgy"),
			Features: []*rulebook.Feature{
				b.darkvision(),
				b.phb("Hellish Resistance", "Resistance to fire damage."),
				b.phb("Infernal Legacy", "You know thaumaturgy, and later hellish rebuke and darkness."),
			},
			FeaturesByLevel: map[int][]*rulebook.Feature{
				3: {b.phb("Infernal Legacy (Hellish Rebuke)", "Cast hellish rebuke as a 2nd-level spell once per long rest.")},
				5: {b.phb("Infernal Legacy (Darkness)", "Cast darkness once per long rest.")},
			},
		},
		aasimar("Protector Aasimar", map[rulebook.Ability]int{cha: 2, wis: 1},
			b.feature("Radiant Soul", SourceVGM, "Unleash divine energy to sprout wings and deal extra radiant damage."),
		),
		aasimar("Scourge Aasimar", map[rulebook.Ability]int{cha: 2, con: 1},
			b.feature("Radiant Consumption", SourceVGM, "Unleash divine energy that sears nearby creatures."),
		),
		aasimar("Fallen Aasimar", map[rulebook.Ability]int{cha: 2, str: 1},
			b.feature("Necrotic Shroud", SourceVGM, "Unleash divine energy that frightens nearby creatures."),
		),
	)

	b.lib.Races.Alias("Drow", "Dark Elf")
	b.lib.Races.Alias("Halfling", "Lightfoot Halfling")
	b.lib.Races.Alias("Dwarf", "Hill Dwarf")
	b.lib.Races.Alias("Elf", "High Elf")
	b.lib.Races.Alias("Gnome", "Rock Gnome")
	b.lib.Races.Alias("Aasimar", "Protector Aasimar")
}
