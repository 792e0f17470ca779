package dnd5e

import "github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"

type levelFeatures = map[int][]*rulebook.Feature

// byLevel stamps each feature with the level it is listed under
func byLevel(m levelFeatures) levelFeatures {
	for lvl, features := range m {
		for _, f := range features {
			if f.Level == 0 {
				f.Level = lvl
			}
		}
	}
	return m
}

func saves(abilities ...rulebook.Ability) []rulebook.Ability {
	return abilities
}

func (b *builder) addClass(c *rulebook.Class, subclasses ...*rulebook.Subclass) {
	if c.Source == "" {
		c.Source = SourcePHB
	}
	c.SubclassCatalog().Add(subclasses...)
	b.lib.Classes.Add(c)
}

func subclass(name, source, description string) rulebook.Mechanic {
	return mechanic(name, source, description)
}

func (b *builder) addClasses() {
	b.addArtificer()
	b.addBarbarian()
	b.addBard()
	b.addCleric()
	b.addDruid()
	b.addFighter()
	b.addMonk()
	b.addPaladin()
	b.addRanger()
	b.addRogue()
	b.addSorcerer()
	b.addWarlock()
	b.addWizard()

	b.lib.Classes.Alias("Sorceror", "Sorcerer")
}

func (b *builder) addArtificer() {
	c := &rulebook.Class{
		Mechanic:                      mechanic("Artificer", SourceTCE, "Masters of invention who see magic as a complex system waiting to be decoded."),
		HitDiceFaces:                  8,
		PrimaryAbility:                "Intelligence",
		SavingThrows:                  saves(rulebook.AbilityConstitution, rulebook.AbilityIntelligence),
		Caster:                        rulebook.CasterHalfRoundedUp,
		SpellcastingAbility:           rulebook.AbilityIntelligence,
		SpellSlots:                    slotTable(&artificerSlots, cantrips(1, 2, 10, 14)),
		WeaponProficiencies:           b.weapons(rulebook.SimpleWeapons),
		ProficienciesText:             []string{"light armor", "medium armor", "shields", "thieves' tools", "tinker's tools"},
		MulticlassProficienciesText:   []string{"light armor", "medium armor", "shields", "thieves' tools", "tinker's tools"},
		MulticlassWeaponProficiencies: nil,
		FeaturesByLevel: byLevel(levelFeatures{
			1: {
				b.feature("Magical Tinkering", SourceTCE, "Imbue a Tiny nonmagical object with a minor magical property."),
				b.feature("Spellcasting", SourcePHB, "You can cast spells using your spellcasting ability."),
			},
			2:  {b.feature("Infuse Item", SourceTCE, "Imbue mundane items with magical infusions.")},
			3:  {b.feature("The Right Tool for the Job", SourceTCE, "Magically create a set of artisan's tools in an hour.")},
			6:  {b.feature("Tool Expertise", SourceTCE, "Double proficiency bonus for ability checks using tools.")},
			7:  {b.feature("Flash of Genius", SourceTCE, "Add your Intelligence modifier to a nearby creature's check or save as a reaction.")},
			10: {b.feature("Magic Item Adept", SourceTCE, "Attune to up to four magic items at once and craft common and uncommon items faster.")},
			11: {b.feature("Spell-Storing Item", SourceTCE, "Store a 1st- or 2nd-level spell in a weapon or spellcasting focus.")},
			14: {b.feature("Magic Item Savant", SourceTCE, "Attune to up to five items and ignore class, race, spell and level requirements.")},
			18: {b.feature("Magic Item Master", SourceTCE, "Attune to up to six magic items at once.")},
			20: {b.feature("Soul of Artifice", SourceTCE, "+1 to all saving throws per attuned magic item; end an infusion to drop to 1 hit point instead of 0.")},
		}),
	}

	b.addClass(c,
		&rulebook.Subclass{
			Mechanic: subclass("Alchemist", SourceTCE, "An expert at combining reagents to produce mystical effects."),
			FeaturesByLevel: byLevel(levelFeatures{
				3:  {b.feature("Experimental Elixir", SourceTCE, "Produce a random magical elixir after a long rest.")},
				5:  {b.feature("Alchemical Savant", SourceTCE, "Add your Intelligence modifier to healing or acid, fire, necrotic and poison damage.")},
				9:  {b.feature("Restorative Reagents", SourceTCE, "Elixirs grant temporary hit points; cast lesser restoration without a slot.")},
				15: {b.feature("Chemical Mastery", SourceTCE, "Resistance to acid and poison damage; cast greater restoration and heal once per long rest.")},
			}),
			SpellsPreparedByLevel: map[int][]*rulebook.Spell{3: b.spells("Healing Word")},
		},
		&rulebook.Subclass{
			Mechanic: subclass("Artillerist", SourceTCE, "An artificer who specializes in using magic to hurl energy, projectiles, and explosions."),
			FeaturesByLevel: byLevel(levelFeatures{
				3:  {b.feature("Eldritch Cannon", SourceTCE, "Create a magical cannon that can blast, protect or flame.")},
				5:  {b.feature("Arcane Firearm", SourceTCE, "Add 1d8 to a spell's damage roll when cast through your arcane firearm.")},
				9:  {b.feature("Explosive Cannon", SourceTCE, "Cannon damage increases by 1d8 and the cannon can detonate.")},
				15: {b.feature("Fortified Position", SourceTCE, "Create two cannons at once; allies near a cannon have half cover.")},
			}),
			SpellsPreparedByLevel: map[int][]*rulebook.Spell{3: b.spells("Shield"), 5: b.spells("Scorching Ray"), 9: b.spells("Fireball")},
		},
		&rulebook.Subclass{
			Mechanic:            subclass("Battle Smith", SourceTCE, "A combination of protector and medic, accompanied by a steel defender."),
			WeaponProficiencies: b.weapons(rulebook.MartialWeapons),
			FeaturesByLevel: byLevel(levelFeatures{
				3: {
					b.feature("Battle Ready", SourceTCE, "Proficiency with martial weapons; use Intelligence for magic weapon attacks."),
					b.feature("Steel Defender", SourceTCE, "A loyal mechanical companion that fights alongside you."),
				},
				5:  {b.feature("Extra Attack", SourcePHB, "You can attack twice, instead of once, whenever you take the Attack action on your turn.")},
				9:  {b.feature("Arcane Jolt", SourceTCE, "Deal an extra 2d6 force damage or heal a creature near the target.")},
				15: {b.feature("Improved Defender", SourceTCE, "Arcane Jolt improves and the steel defender gains a deflecting reaction.")},
			}),
			SpellsPreparedByLevel: map[int][]*rulebook.Spell{3: b.spells("Shield of Faith"), 5: b.spells("Misty Step")},
		},
		&rulebook.Subclass{
			Mechanic: subclass("Armorer", SourceTCE, "An artificer who modifies armor to function almost like a second skin."),
			FeaturesByLevel: byLevel(levelFeatures{
				3:  {b.feature("Arcane Armor", SourceTCE, "Turn a suit of armor into arcane armor that ignores strength requirements.")},
				5:  {b.feature("Extra Attack", SourcePHB, "You can attack twice, instead of once, whenever you take the Attack action on your turn.")},
				9:  {b.feature("Armor Modifications", SourceTCE, "Each part of your arcane armor counts as a separate item for infusions.")},
				15: {b.feature("Perfected Armor", SourceTCE, "Your armor model gains additional benefits.")},
			}),
			SpellsPreparedByLevel: map[int][]*rulebook.Spell{3: b.spells("Magic Missile", "Thunderwave"), 5: b.spells("Invisibility")},
		},
	)
}

func (b *builder) addBarbarian() {
	c := &rulebook.Class{
		Mechanic:                      mechanic("Barbarian", SourcePHB, "A fierce warrior of primitive background who can enter a battle rage."),
		HitDiceFaces:                  12,
		PrimaryAbility:                "Strength",
		SavingThrows:                  saves(rulebook.AbilityStrength, rulebook.AbilityConstitution),
		WeaponProficiencies:           b.weapons(rulebook.SimpleWeapons, rulebook.MartialWeapons),
		MulticlassWeaponProficiencies: b.weapons(rulebook.SimpleWeapons, rulebook.MartialWeapons),
		ProficienciesText:             []string{"light armor", "medium armor", "shields"},
		MulticlassProficienciesText:   []string{"shields"},
		FeaturesByLevel: byLevel(levelFeatures{
			1: {
				b.phb("Rage", "Advantage on Strength checks and saves, bonus melee damage and resistance to bludgeoning, piercing and slashing damage."),
				b.phb("Unarmored Defense", "While not wearing armor, your AC equals 10 + your Dexterity modifier + your Constitution modifier."),
			},
			2: {
				b.phb("Reckless Attack", "Gain advantage on Strength melee attacks this turn; attacks against you have advantage until your next turn."),
				b.phb("Danger Sense", "Advantage on Dexterity saving throws against effects you can see."),
			},
			5: {
				b.phb("Extra Attack", "You can attack twice, instead of once, whenever you take the Attack action on your turn."),
				b.phb("Fast Movement", "Your speed increases by 10 feet while you aren't wearing heavy armor."),
			},
			7:  {b.phb("Feral Instinct", "Advantage on initiative rolls; act normally when surprised if you rage first.")},
			9:  {b.phb("Brutal Critical", "Roll one additional weapon damage die on a melee critical hit.")},
			11: {b.phb("Relentless Rage", "Drop to 1 hit point instead of 0 on a successful Constitution save while raging.")},
			15: {b.phb("Persistent Rage", "Your rage ends early only if you fall unconscious or choose to end it.")},
			18: {b.phb("Indomitable Might", "A Strength check total lower than your Strength score uses the score instead.")},
			20: {b.phb("Primal Champion", "Your Strength and Constitution scores increase by 4, to a maximum of 24.")},
		}),
	}

	b.addClass(c,
		&rulebook.Subclass{
			Mechanic: subclass("Path of the Berserker", SourcePHB, "A path of untrammeled fury, slick with blood."),
			FeaturesByLevel: byLevel(levelFeatures{
				3:  {b.phb("Frenzy", "Make a single melee attack as a bonus action each turn while raging; exhaustion afterwards.")},
				6:  {b.phb("Mindless Rage", "You can't be charmed or frightened while raging.")},
				10: {b.phb("Intimidating Presence", "Use an action to frighten a creature within 30 feet.")},
				14: {b.phb("Retaliation", "Make a melee attack as a reaction against a creature that damages you.")},
			}),
		},
		&rulebook.Subclass{
			Mechanic: subclass("Path of the Totem Warrior", SourcePHB, "A spiritual journey that accepts a spirit animal as guide, protector, and inspiration."),
			FeaturesByLevel: byLevel(levelFeatures{
				3: {
					b.phb("Spirit Seeker", "Cast beast sense and speak with animals as rituals."),
					b.phb("Totem Spirit", "Choose a totem animal that grants a benefit while raging."),
				},
				6:  {b.phb("Aspect of the Beast", "Gain a magical benefit based on a totem animal of your choice.")},
				10: {b.phb("Spirit Walker", "Cast commune with nature as a ritual.")},
				14: {b.phb("Totemic Attunement", "Gain a magical benefit while raging based on a totem animal.")},
			}),
		},
	)
	c.Subclasses.Alias("Berserker", "Path of the Berserker")
	c.Subclasses.Alias("Totem Warrior", "Path of the Totem Warrior")
}

func (b *builder) addBard() {
	c := &rulebook.Class{
		Mechanic:                    mechanic("Bard", SourcePHB, "An inspiring magician whose power echoes the music of creation."),
		HitDiceFaces:                8,
		PrimaryAbility:              "Charisma",
		SavingThrows:                saves(rulebook.AbilityDexterity, rulebook.AbilityCharisma),
		Caster:                      rulebook.CasterFull,
		SpellcastingAbility:         rulebook.AbilityCharisma,
		SpellSlots:                  slotTable(&fullCasterSlots, cantrips(1, 2, 4, 10)),
		WeaponProficiencies:         b.weapons(rulebook.SimpleWeapons, "Hand Crossbow", "Longsword", "Rapier", "Shortsword"),
		ProficienciesText:           []string{"light armor", "three musical instruments of your choice"},
		MulticlassProficienciesText: []string{"light armor", "one skill of your choice", "one musical instrument of your choice"},
		FeaturesByLevel: byLevel(levelFeatures{
			1: {
				b.phb("Bardic Inspiration", "Use a bonus action to give a creature an inspiration die to add to one check, attack or save."),
				b.phb("Spellcasting", "You can cast spells using your spellcasting ability."),
			},
			2: {
				b.phb("Jack of All Trades", "Add half your proficiency bonus to ability checks that don't already include it."),
				b.phb("Song of Rest", "Allies who spend hit dice during a short rest regain extra hit points."),
			},
			3:  {b.phb("Expertise", "Double your proficiency bonus for two chosen skill proficiencies.")},
			5:  {b.phb("Font of Inspiration", "Regain all expended uses of Bardic Inspiration on a short or long rest.")},
			6:  {b.phb("Countercharm", "Allies within 30 feet have advantage on saves against being frightened or charmed.")},
			10: {b.phb("Magical Secrets", "Learn two spells from any class.")},
			20: {b.phb("Superior Inspiration", "Regain one use of Bardic Inspiration when you roll initiative with none left.")},
		}),
	}

	b.addClass(c,
		&rulebook.Subclass{
			Mechanic:          subclass("College of Lore", SourcePHB, "Bards who collect bits of knowledge from every source."),
			ProficienciesText: []string{"three skills of your choice"},
			FeaturesByLevel: byLevel(levelFeatures{
				3: {
					b.phb("Bonus Proficiencies", "Gain proficiency with three skills of your choice."),
					b.phb("Cutting Words", "Use a reaction to subtract a Bardic Inspiration die from a creature's roll."),
				},
				6:  {b.phb("Additional Magical Secrets", "Learn two spells from any class.")},
				14: {b.phb("Peerless Skill", "Add a Bardic Inspiration die to your own ability check.")},
			}),
		},
		&rulebook.Subclass{
			Mechanic:            subclass("College of Valor", SourcePHB, "Daring skalds whose tales keep alive the memory of great heroes."),
			WeaponProficiencies: b.weapons(rulebook.MartialWeapons),
			ProficienciesText:   []string{"medium armor", "shields"},
			FeaturesByLevel: byLevel(levelFeatures{
				3:  {b.phb("Combat Inspiration", "Inspiration dice can add to damage or armor class.")},
				6:  {b.phb("Extra Attack", "You can attack twice, instead of once, whenever you take the Attack action on your turn.")},
				14: {b.phb("Battle Magic", "Make one weapon attack as a bonus action after casting a spell.")},
			}),
		},
	)
	c.Subclasses.Alias("Lore", "College of Lore")
	c.Subclasses.Alias("Valor", "College of Valor")
}

func (b *builder) addCleric() {
	c := &rulebook.Class{
		Mechanic:                    mechanic("Cleric", SourcePHB, "A priestly champion who wields divine magic in service of a higher power."),
		HitDiceFaces:                8,
		PrimaryAbility:              "Wisdom",
		SavingThrows:                saves(rulebook.AbilityWisdom, rulebook.AbilityCharisma),
		Caster:                      rulebook.CasterFull,
		SpellcastingAbility:         rulebook.AbilityWisdom,
		SpellSlots:                  slotTable(&fullCasterSlots, cantrips(1, 3, 4, 10)),
		WeaponProficiencies:         b.weapons(rulebook.SimpleWeapons),
		ProficienciesText:           []string{"light armor", "medium armor", "shields"},
		MulticlassProficienciesText: []string{"light armor", "medium armor", "shields"},
		FeaturesByLevel: byLevel(levelFeatures{
			1: {
				b.phb("Spellcasting", "You can cast spells using your spellcasting ability."),
				b.phb("Divine Domain", "Choose one domain related to your deity."),
			},
			2:  {b.phb("Channel Divinity", "Channel divine energy directly from your deity to fuel magical effects.")},
			5:  {b.phb("Destroy Undead", "Turn Undead destroys low challenge undead outright.")},
			10: {b.phb("Divine Intervention", "Call on your deity to intervene on your behalf.")},
		}),
	}

	b.addClass(c,
		&rulebook.Subclass{
			Mechanic:          subclass("Life Domain", SourcePHB, "The Life domain focuses on the vibrant positive energy that sustains all life."),
			ProficienciesText: []string{"heavy armor"},
			FeaturesByLevel: byLevel(levelFeatures{
				1: {
					b.phb("Disciple of Life", "Healing spells of 1st level or higher restore additional hit points."),
					b.phb("Bonus Proficiency (Heavy Armor)", "You gain proficiency with heavy armor."),
				},
				2:  {b.phb("Channel Divinity: Preserve Life", "Restore hit points divided among creatures within 30 feet.")},
				6:  {b.phb("Blessed Healer", "Healing others also heals you.")},
				8:  {b.phb("Divine Strike (Radiant)", "Weapon attacks deal an extra 1d8 radiant damage once per turn.")},
				17: {b.phb("Supreme Healing", "Use the maximum number for each die when restoring hit points with a spell.")},
			}),
			SpellsPreparedByLevel: map[int][]*rulebook.Spell{
				1: b.spells("Bless", "Cure Wounds"),
				3: b.spells("Lesser Restoration", "Spiritual Weapon"),
				5: b.spells("Beacon of Hope", "Revivify"),
				7: b.spells("Death Ward", "Guardian of Faith"),
				9: b.spells("Mass Cure Wounds", "Raise Dead"),
			},
		},
		&rulebook.Subclass{
			Mechanic: subclass("Light Domain", SourcePHB, "Gods of light promote the ideals of rebirth and renewal, truth, vigilance, and beauty."),
			FeaturesByLevel: byLevel(levelFeatures{
				1: {
					b.phb("Bonus Cantrip (Light)", "You gain the light cantrip if you don't already know it."),
					b.phb("Warding Flare", "Impose disadvantage on an attack against you as a reaction."),
				},
				2:  {b.phb("Channel Divinity: Radiance of the Dawn", "Dispel magical darkness and deal radiant damage to hostile creatures nearby.")},
				6:  {b.phb("Improved Flare", "Warding Flare can protect other creatures.")},
				8:  {b.phb("Potent Spellcasting", "Add your Wisdom modifier to cleric cantrip damage.")},
				17: {b.phb("Corona of Light", "Emit an aura of sunlight that imposes disadvantage on saves against fire and radiant spells.")},
			}),
			SpellsKnownByLevel: map[int][]*rulebook.Spell{1: b.spells("Light")},
			SpellsPreparedByLevel: map[int][]*rulebook.Spell{
				1: b.spells("Burning Hands", "Faerie Fire"),
				3: b.spells("Flaming Sphere", "Scorching Ray"),
				5: b.spells("Daylight", "Fireball"),
				7: b.spells("Guardian of Faith", "Wall of Fire"),
				9: b.spells("Flame Strike", "Scrying"),
			},
		},
	)
	c.Subclasses.Alias("Life", "Life Domain")
	c.Subclasses.Alias("Light", "Light Domain")
}

func (b *builder) addDruid() {
	c := &rulebook.Class{
		Mechanic:                    mechanic("Druid", SourcePHB, "A priest of the Old Faith, wielding the powers of nature and adopting animal forms."),
		HitDiceFaces:                8,
		PrimaryAbility:              "Wisdom",
		SavingThrows:                saves(rulebook.AbilityIntelligence, rulebook.AbilityWisdom),
		Caster:                      rulebook.CasterFull,
		SpellcastingAbility:         rulebook.AbilityWisdom,
		SpellSlots:                  slotTable(&fullCasterSlots, cantrips(1, 2, 4, 10)),
		WeaponProficiencies:         b.weapons("Club", "Dagger", "Dart", "Javelin", "Mace", "Quarterstaff", "Scimitar", "Sickle", "Sling", "Spear"),
		ProficienciesText:           []string{"light armor", "medium armor", "shields (druids will not wear armor or use shields made of metal)", "herbalism kit"},
		MulticlassProficienciesText: []string{"light armor", "medium armor", "shields (druids will not wear armor or use shields made of metal)"},
		FeaturesByLevel: byLevel(levelFeatures{
			1: {
				b.phb("Druidic", "You know Druidic, the secret language of druids."),
				b.phb("Spellcasting", "You can cast spells using your spellcasting ability."),
			},
			2: {
				b.phb("Wild Shape", "Magically assume the shape of a beast that you have seen before."),
				b.phb("Druid Circle", "Choose to identify with a circle of druids."),
			},
			18: {
				b.phb("Timeless Body", "The primal magic you wield causes you to age more slowly."),
				b.phb("Beast Spells", "Cast many of your druid spells in any shape you assume using Wild Shape."),
			},
			20: {b.phb("Archdruid", "Use Wild Shape an unlimited number of times and ignore some spell components.")},
		}),
	}

	b.addClass(c,
		&rulebook.Subclass{
			Mechanic: subclass("Circle of the Land", SourcePHB, "Mystics and sages who safeguard ancient knowledge and rites."),
			FeaturesByLevel: byLevel(levelFeatures{
				2: {
					b.phb("Bonus Cantrip (Druid)", "You learn one additional druid cantrip of your choice."),
					b.phb("Natural Recovery", "Recover expended spell slots during a short rest."),
				},
				6:  {b.phb("Land's Stride", "Moving through nonmagical difficult terrain costs you no extra movement.")},
				10: {b.phb("Nature's Ward", "You can't be charmed or frightened by elementals or fey, and you are immune to poison and disease.")},
				14: {b.phb("Nature's Sanctuary", "Beasts and plants must save before attacking you.")},
			}),
		},
		&rulebook.Subclass{
			Mechanic: subclass("Circle of the Moon", SourcePHB, "Fierce guardians of the wilds who transform into powerful beasts."),
			FeaturesByLevel: byLevel(levelFeatures{
				2: {
					b.phb("Combat Wild Shape", "Use Wild Shape as a bonus action and heal while transformed."),
					b.phb("Circle Forms", "Transform into beasts with a challenge rating as high as 1."),
				},
				6:  {b.phb("Primal Strike", "Your attacks in beast form count as magical.")},
				10: {b.phb("Elemental Wild Shape", "Expend two uses of Wild Shape to transform into an elemental.")},
				14: {b.phb("Thousand Forms", "Cast alter self at will.")},
			}),
		},
	)
	c.Subclasses.Alias("Land", "Circle of the Land")
	c.Subclasses.Alias("Moon", "Circle of the Moon")
}

func (b *builder) addFighter() {
	c := &rulebook.Class{
		Mechanic:                      mechanic("Fighter", SourcePHB, "A master of martial combat, skilled with a variety of weapons and armor."),
		HitDiceFaces:                  10,
		PrimaryAbility:                "Strength or Dexterity",
		SavingThrows:                  saves(rulebook.AbilityStrength, rulebook.AbilityConstitution),
		WeaponProficiencies:           b.weapons(rulebook.SimpleWeapons, rulebook.MartialWeapons),
		MulticlassWeaponProficiencies: b.weapons(rulebook.SimpleWeapons, rulebook.MartialWeapons),
		ProficienciesText:             []string{"all armor", "shields"},
		MulticlassProficienciesText:   []string{"light armor", "medium armor", "shields"},
		FeaturesByLevel: byLevel(levelFeatures{
			1: {
				b.fighterStyles(),
				b.phb("Second Wind", "On your turn, use a bonus action to regain 1d10 + fighter level hit points."),
			},
			2: {b.phb("Action Surge", "Take one additional action on your turn.")},
			5: {b.phb("Extra Attack", "You can attack twice, instead of once, whenever you take the Attack action on your turn.")},
			9: {b.phb("Indomitable", "Reroll a saving throw that you fail.")},
		}),
	}

	b.addClass(c,
		&rulebook.Subclass{
			Mechanic: subclass("Champion", SourcePHB, "The archetypal Champion focuses on the development of raw physical power."),
			FeaturesByLevel: byLevel(levelFeatures{
				3:  {b.phb("Improved Critical", "Your weapon attacks score a critical hit on a roll of 19 or 20.")},
				7:  {b.phb("Remarkable Athlete", "Add half your proficiency bonus to Strength, Dexterity and Constitution checks.")},
				10: {b.phb("Additional Fighting Style", "Choose a second option from the Fighting Style class feature.")},
				15: {b.phb("Superior Critical", "Your weapon attacks score a critical hit on a roll of 18-20.")},
				18: {b.phb("Survivor", "Regain hit points each turn while below half your hit point maximum.")},
			}),
		},
		&rulebook.Subclass{
			Mechanic: subclass("Battle Master", SourcePHB, "Warriors who employ martial techniques passed down through generations."),
			FeaturesByLevel: byLevel(levelFeatures{
				3: {
					b.phb("Combat Superiority", "Learn maneuvers fueled by superiority dice."),
					b.phb("Student of War", "Gain proficiency with one type of artisan's tools."),
				},
				7:  {b.phb("Know Your Enemy", "Learn how a creature compares to you after observing it for a minute.")},
				10: {b.phb("Improved Combat Superiority", "Your superiority dice turn into d10s.")},
				15: {b.phb("Relentless", "Regain one superiority die when you roll initiative with none left.")},
			}),
		},
		&rulebook.Subclass{
			Mechanic:            subclass("Eldritch Knight", SourcePHB, "Fighters who combine martial mastery with careful study of magic."),
			Caster:              rulebook.CasterThird,
			SpellcastingAbility: rulebook.AbilityIntelligence,
			SpellSlots:          slotTable(&thirdCasterSlots, cantrips(3, 2, 10)),
			FeaturesByLevel: byLevel(levelFeatures{
				3: {
					b.phb("Spellcasting", "You can cast spells using your spellcasting ability."),
					b.phb("Weapon Bond", "Bond with up to two weapons that you can summon to your hand."),
				},
				7:  {b.phb("War Magic", "Make one weapon attack as a bonus action after casting a cantrip.")},
				10: {b.phb("Eldritch Strike", "Creatures hit by your weapon attack have disadvantage on the next save against your spell.")},
				15: {b.phb("Arcane Charge", "Teleport up to 30 feet when you use Action Surge.")},
				18: {b.phb("Improved War Magic", "Make one weapon attack as a bonus action after casting a spell.")},
			}),
		},
	)
}

func (b *builder) addMonk() {
	c := &rulebook.Class{
		Mechanic:                      mechanic("Monk", SourcePHB, "A master of martial arts, harnessing the power of the body in pursuit of physical and spiritual perfection."),
		HitDiceFaces:                  8,
		PrimaryAbility:                "Dexterity and Wisdom",
		SavingThrows:                  saves(rulebook.AbilityStrength, rulebook.AbilityDexterity),
		WeaponProficiencies:           b.weapons(rulebook.SimpleWeapons, "Shortsword"),
		MulticlassWeaponProficiencies: b.weapons(rulebook.SimpleWeapons, "Shortsword"),
		ProficienciesText:             []string{"one type of artisan's tools or one musical instrument"},
		FeaturesByLevel: byLevel(levelFeatures{
			1: {
				b.feature("Unarmored Defense (Monk)", SourcePHB, "While wearing no armor and no shield, your AC equals 10 + your Dexterity modifier + your Wisdom modifier."),
				b.phb("Martial Arts", "Use Dexterity for unarmed strikes and monk weapons, and make an unarmed strike as a bonus action."),
			},
			2: {
				b.phb("Ki", "Spend ki points to fuel Flurry of Blows, Patient Defense and Step of the Wind."),
				b.phb("Unarmored Movement", "Your speed increases while you are not wearing armor or wielding a shield."),
			},
			3: {b.phb("Deflect Missiles", "Use your reaction to reduce damage from a ranged weapon attack.")},
			4: {b.phb("Slow Fall", "Reduce falling damage by five times your monk level.")},
			5: {
				b.phb("Extra Attack", "You can attack twice, instead of once, whenever you take the Attack action on your turn."),
				b.phb("Stunning Strike", "Spend 1 ki point to attempt to stun a creature you hit with a melee weapon attack."),
			},
			6: {b.phb("Ki-Empowered Strikes", "Your unarmed strikes count as magical.")},
			7: {
				b.phb("Evasion", "Take no damage on a successful Dexterity save against area effects, half on a failure."),
				b.phb("Stillness of Mind", "End one effect that causes you to be charmed or frightened."),
			},
			10: {b.phb("Purity of Body", "You are immune to disease and poison.")},
			13: {b.phb("Tongue of the Sun and Moon", "You understand all spoken languages.")},
			14: {b.phb("Diamond Soul", "Proficiency in all saving throws.")},
			15: {b.phb("Timeless Body", "The primal magic you wield causes you to age more slowly.")},
			18: {b.phb("Empty Body", "Spend ki points to become invisible.")},
			20: {b.phb("Perfect Self", "Regain 4 ki points when you roll initiative with none left.")},
		}),
	}

	b.addClass(c,
		&rulebook.Subclass{
			Mechanic: subclass("Way of the Open Hand", SourcePHB, "Monks who are the ultimate masters of martial arts combat."),
			FeaturesByLevel: byLevel(levelFeatures{
				3:  {b.phb("Open Hand Technique", "Knock down, push or deny reactions to creatures hit by Flurry of Blows.")},
				6:  {b.phb("Wholeness of Body", "Regain hit points equal to three times your monk level.")},
				11: {b.phb("Tranquility", "Enter a meditation that grants the effect of a sanctuary spell.")},
				17: {b.phb("Quivering Palm", "Set up lethal vibrations in someone's body.")},
			}),
		},
		&rulebook.Subclass{
			Mechanic: subclass("Way of Shadow", SourcePHB, "Monks who follow a tradition that values stealth and subterfuge."),
			FeaturesByLevel: byLevel(levelFeatures{
				3:  {b.phb("Shadow Arts", "Spend ki points to cast darkness, darkvision, pass without trace or silence.")},
				6:  {b.phb("Shadow Step", "Teleport between shadows as a bonus action.")},
				11: {b.phb("Cloak of Shadows", "Become invisible in dim light or darkness.")},
				17: {b.phb("Opportunist", "Attack a creature hit by someone else as a reaction.")},
			}),
		},
	)
	c.Subclasses.Alias("Open Hand", "Way of the Open Hand")
	c.Subclasses.Alias("Shadow", "Way of Shadow")
}

func (b *builder) addPaladin() {
	c := &rulebook.Class{
		Mechanic:                      mechanic("Paladin", SourcePHB, "A holy warrior bound to a sacred oath."),
		HitDiceFaces:                  10,
		PrimaryAbility:                "Strength and Charisma",
		SavingThrows:                  saves(rulebook.AbilityWisdom, rulebook.AbilityCharisma),
		Caster:                        rulebook.CasterHalf,
		SpellcastingAbility:           rulebook.AbilityCharisma,
		SpellSlots:                    slotTable(&halfCasterSlots, cantrips(1, 0)),
		WeaponProficiencies:           b.weapons(rulebook.SimpleWeapons, rulebook.MartialWeapons),
		MulticlassWeaponProficiencies: b.weapons(rulebook.SimpleWeapons, rulebook.MartialWeapons),
		ProficienciesText:             []string{"all armor", "shields"},
		MulticlassProficienciesText:   []string{"light armor", "medium armor", "shields"},
		FeaturesByLevel: byLevel(levelFeatures{
			1: {
				b.phb("Divine Sense", "Detect the presence of strong evil or good."),
				b.phb("Lay on Hands", "A pool of healing power that replenishes on a long rest."),
			},
			2: {
				b.paladinStyles(),
				b.phb("Spellcasting", "You can cast spells using your spellcasting ability."),
				b.phb("Divine Smite", "Expend a spell slot to deal radiant damage with a melee weapon hit."),
			},
			3:  {b.phb("Divine Health", "You are immune to disease.")},
			5:  {b.phb("Extra Attack", "You can attack twice, instead of once, whenever you take the Attack action on your turn.")},
			6:  {b.phb("Aura of Protection", "You and friendly creatures within 10 feet add your Charisma modifier to saving throws.")},
			10: {b.phb("Aura of Courage", "You and friendly creatures within 10 feet can't be frightened.")},
			11: {b.phb("Improved Divine Smite", "Melee weapon hits deal an extra 1d8 radiant damage.")},
			14: {b.phb("Cleansing Touch", "End one spell on yourself or a willing creature you touch.")},
		}),
	}

	b.addClass(c,
		&rulebook.Subclass{
			Mechanic: subclass("Oath of Devotion", SourcePHB, "Paladins who swear to the loftiest ideals of justice, virtue, and order."),
			FeaturesByLevel: byLevel(levelFeatures{
				3: {
					b.phb("Channel Divinity: Sacred Weapon", "Imbue a weapon with positive energy, adding your Charisma modifier to attack rolls."),
					b.phb("Channel Divinity: Turn the Unholy", "Turn fiends and undead."),
				},
				7:  {b.phb("Aura of Devotion", "You and friendly creatures within 10 feet can't be charmed.")},
				15: {b.phb("Purity of Spirit", "You are always under the effects of a protection from evil and good spell.")},
				20: {b.phb("Holy Nimbus", "Emanate an aura of sunlight that damages enemies.")},
			}),
			SpellsPreparedByLevel: map[int][]*rulebook.Spell{
				3: b.spells("Protection from Evil and Good", "Sanctuary"),
				5: b.spells("Lesser Restoration", "Zone of Truth"),
			},
		},
		&rulebook.Subclass{
			Mechanic: subclass("Oath of Vengeance", SourcePHB, "A solemn commitment to punish those who have committed a grievous sin."),
			FeaturesByLevel: byLevel(levelFeatures{
				3: {
					b.phb("Channel Divinity: Abjure Enemy", "Frighten a creature and reduce its speed to 0."),
					b.phb("Channel Divinity: Vow of Enmity", "Gain advantage on attack rolls against one creature for 1 minute."),
				},
				7:  {b.phb("Relentless Avenger", "Move up to half your speed after hitting with an opportunity attack.")},
				15: {b.phb("Soul of Vengeance", "Make a melee attack as a reaction against the target of your Vow of Enmity.")},
				20: {b.phb("Avenging Angel", "Sprout wings and radiate an aura of menace.")},
			}),
			SpellsPreparedByLevel: map[int][]*rulebook.Spell{
				3: b.spells("Bane", "Hunter's Mark"),
				5: b.spells("Hold Person", "Misty Step"),
			},
		},
	)
	c.Subclasses.Alias("Devotion", "Oath of Devotion")
	c.Subclasses.Alias("Vengeance", "Oath of Vengeance")
}

func (b *builder) addRanger() {
	c := &rulebook.Class{
		Mechanic:                      mechanic("Ranger", SourcePHB, "A warrior who uses martial prowess and nature magic to combat threats on the edges of civilization."),
		HitDiceFaces:                  10,
		PrimaryAbility:                "Dexterity and Wisdom",
		SavingThrows:                  saves(rulebook.AbilityStrength, rulebook.AbilityDexterity),
		Caster:                        rulebook.CasterHalf,
		SpellcastingAbility:           rulebook.AbilityWisdom,
		SpellSlots:                    slotTable(&halfCasterSlots, cantrips(1, 0)),
		WeaponProficiencies:           b.weapons(rulebook.SimpleWeapons, rulebook.MartialWeapons),
		MulticlassWeaponProficiencies: b.weapons(rulebook.SimpleWeapons, rulebook.MartialWeapons),
		ProficienciesText:             []string{"light armor", "medium armor", "shields"},
		MulticlassProficienciesText:   []string{"light armor", "medium armor", "shields", "one skill from the class's skill list"},
		FeaturesByLevel: byLevel(levelFeatures{
			1: {
				b.phb("Favored Enemy", "Advantage on checks to track and recall information about your favored enemies."),
				b.phb("Natural Explorer", "You are particularly familiar with one type of natural environment."),
			},
			2: {
				b.rangerStyles(),
				b.phb("Spellcasting", "You can cast spells using your spellcasting ability."),
			},
			3:  {b.phb("Primeval Awareness", "Expend a spell slot to sense certain creature types nearby.")},
			5:  {b.phb("Extra Attack", "You can attack twice, instead of once, whenever you take the Attack action on your turn.")},
			8:  {b.phb("Land's Stride", "Moving through nonmagical difficult terrain costs you no extra movement.")},
			10: {b.phb("Hide in Plain Sight", "Camouflage yourself to gain a bonus to Stealth checks.")},
			14: {b.phb("Vanish", "Hide as a bonus action and can't be tracked by nonmagical means.")},
			18: {b.phb("Feral Senses", "Sense invisible creatures within 30 feet.")},
			20: {b.phb("Foe Slayer", "Add your Wisdom modifier to an attack or damage roll against a favored enemy.")},
		}),
	}

	b.addClass(c,
		&rulebook.Subclass{
			Mechanic: subclass("Hunter", SourcePHB, "Rangers who accept the role of a bulwark between civilization and the terrors of the wilderness."),
			FeaturesByLevel: byLevel(levelFeatures{
				3:  {b.phb("Hunter's Prey", "Choose Colossus Slayer, Giant Killer or Horde Breaker.")},
				7:  {b.phb("Defensive Tactics", "Choose Escape the Horde, Multiattack Defense or Steel Will.")},
				11: {b.phb("Multiattack", "Choose Volley or Whirlwind Attack.")},
				15: {b.phb("Superior Hunter's Defense", "Choose Evasion, Stand Against the Tide or Uncanny Dodge.")},
			}),
		},
		&rulebook.Subclass{
			Mechanic: subclass("Beast Master", SourcePHB, "Rangers who forge a bond with a beast companion."),
			FeaturesByLevel: byLevel(levelFeatures{
				3:  {b.phb("Ranger's Companion", "Gain a beast companion that accompanies you.")},
				7:  {b.phb("Exceptional Training", "Your companion can Dash, Disengage or Help as a bonus action.")},
				11: {b.phb("Bestial Fury", "Your companion can make two attacks.")},
				15: {b.phb("Share Spells", "Spells targeting yourself can also affect your companion.")},
			}),
		},
	)
}

func (b *builder) addRogue() {
	c := &rulebook.Class{
		Mechanic:                    mechanic("Rogue", SourcePHB, "A scoundrel who uses stealth and trickery to overcome obstacles and enemies."),
		HitDiceFaces:                8,
		PrimaryAbility:              "Dexterity",
		SavingThrows:                saves(rulebook.AbilityDexterity, rulebook.AbilityIntelligence),
		WeaponProficiencies:         b.weapons(rulebook.SimpleWeapons, "Hand Crossbow", "Longsword", "Rapier", "Shortsword"),
		ProficienciesText:           []string{"light armor", "thieves' tools"},
		MulticlassProficienciesText: []string{"light armor", "one skill from the class's skill list", "thieves' tools"},
		FeaturesByLevel: byLevel(levelFeatures{
			1: {
				b.phb("Expertise", "Double your proficiency bonus for two chosen skill proficiencies."),
				b.phb("Sneak Attack", "Deal extra damage once per turn to a creature you hit with advantage."),
				b.phb("Thieves' Cant", "A secret mix of dialect, jargon, and code."),
			},
			2:  {b.phb("Cunning Action", "Dash, Disengage or Hide as a bonus action.")},
			5:  {b.phb("Uncanny Dodge", "Halve the damage of an attack from an attacker you can see.")},
			7:  {b.phb("Evasion", "Take no damage on a successful Dexterity save against area effects, half on a failure.")},
			11: {b.phb("Reliable Talent", "Treat a d20 roll of 9 or lower as a 10 on checks using proficiency.")},
			14: {b.phb("Blindsense", "Know the location of hidden or invisible creatures within 10 feet.")},
			15: {b.phb("Slippery Mind", "Proficiency in Wisdom saving throws.")},
			18: {b.phb("Elusive", "No attack roll has advantage against you while you aren't incapacitated.")},
			20: {b.phb("Stroke of Luck", "Turn a miss into a hit or a failed check into a 20.")},
		}),
	}

	b.addClass(c,
		&rulebook.Subclass{
			Mechanic: subclass("Thief", SourcePHB, "Burglars, bandits, cutpurses and other criminals."),
			FeaturesByLevel: byLevel(levelFeatures{
				3: {
					b.phb("Fast Hands", "Use Cunning Action for Sleight of Hand, thieves' tools or Use an Object."),
					b.phb("Second-Story Work", "Climb at full speed and jump farther."),
				},
				9:  {b.phb("Supreme Sneak", "Advantage on Stealth checks if you move no more than half your speed.")},
				13: {b.phb("Use Magic Device", "Ignore class, race and level requirements on the use of magic items.")},
				17: {b.phb("Thief's Reflexes", "Take two turns during the first round of any combat.")},
			}),
		},
		&rulebook.Subclass{
			Mechanic:          subclass("Assassin", SourcePHB, "Rogues who focus their training on the grim art of death."),
			ProficienciesText: []string{"disguise kit", "poisoner's kit"},
			FeaturesByLevel: byLevel(levelFeatures{
				3: {
					b.phb("Assassinate", "Advantage against creatures that haven't acted; hits against surprised creatures are critical."),
					b.phb("Bonus Proficiencies (Assassin)", "Proficiency with the disguise kit and the poisoner's kit."),
				},
				9:  {b.phb("Infiltration Expertise", "Unfailingly create false identities for yourself.")},
				13: {b.phb("Impostor", "Unerringly mimic another person's speech, writing, and behavior.")},
				17: {b.phb("Death Strike", "Surprised creatures you hit must save or take double damage.")},
			}),
		},
		&rulebook.Subclass{
			Mechanic:            subclass("Arcane Trickster", SourcePHB, "Rogues who enhance their fine-honed skills of stealth and agility with magic."),
			Caster:              rulebook.CasterThird,
			SpellcastingAbility: rulebook.AbilityIntelligence,
			SpellSlots:          slotTable(&thirdCasterSlots, cantrips(3, 3, 10)),
			FeaturesByLevel: byLevel(levelFeatures{
				3: {
					b.phb("Spellcasting", "You can cast spells using your spellcasting ability."),
					b.phb("Mage Hand Legerdemain", "Your mage hand is invisible and can perform extra tasks."),
				},
				9:  {b.phb("Magical Ambush", "Creatures have disadvantage on saves against your spells while you are hidden.")},
				13: {b.phb("Versatile Trickster", "Use your mage hand to gain advantage on attacks.")},
				17: {b.phb("Spell Thief", "Steal the knowledge of a spell cast against you.")},
			}),
			SpellsKnownByLevel: map[int][]*rulebook.Spell{3: b.spells("Mage Hand")},
		},
	)
}

func (b *builder) addSorcerer() {
	c := &rulebook.Class{
		Mechanic:            mechanic("Sorcerer", SourcePHB, "A spellcaster who draws on inherent magic from a gift or bloodline."),
		HitDiceFaces:        6,
		PrimaryAbility:      "Charisma",
		SavingThrows:        saves(rulebook.AbilityConstitution, rulebook.AbilityCharisma),
		Caster:              rulebook.CasterFull,
		SpellcastingAbility: rulebook.AbilityCharisma,
		SpellSlots:          slotTable(&fullCasterSlots, cantrips(1, 4, 4, 10)),
		WeaponProficiencies: b.weapons("Dagger", "Dart", "Sling", "Quarterstaff", "Light Crossbow"),
		FeaturesByLevel: byLevel(levelFeatures{
			1: {
				b.phb("Spellcasting", "You can cast spells using your spellcasting ability."),
				b.phb("Sorcerous Origin", "Choose a sorcerous origin, which describes the source of your innate magical power."),
			},
			2:  {b.phb("Font of Magic", "Tap into a wellspring of magic represented by sorcery points.")},
			3:  {b.phb("Metamagic", "Twist your spells to suit your needs.")},
			20: {b.phb("Sorcerous Restoration", "Regain 4 expended sorcery points on a short rest.")},
		}),
	}

	b.addClass(c,
		&rulebook.Subclass{
			Mechanic: subclass("Draconic Bloodline", SourcePHB, "Your innate magic comes from draconic magic that was mingled with your blood."),
			FeaturesByLevel: byLevel(levelFeatures{
				1: {
					b.phb("Dragon Ancestor", "Choose a dragon type; you can speak, read, and write Draconic."),
					b.phb("Draconic Resilience", "Your hit point maximum increases by 1 per sorcerer level; unarmored AC is 13 + Dexterity modifier."),
				},
				6:  {b.phb("Elemental Affinity", "Add your Charisma modifier to damage of your ancestry's type.")},
				14: {b.phb("Dragon Wings", "Sprout dragon wings and gain a flying speed.")},
				18: {b.phb("Draconic Presence", "Exude an aura of awe or fear.")},
			}),
		},
		&rulebook.Subclass{
			Mechanic: subclass("Wild Magic", SourcePHB, "Your innate magic comes from the wild forces of chaos that underlie the order of creation."),
			FeaturesByLevel: byLevel(levelFeatures{
				1: {
					b.phb("Wild Magic Surge", "Your spellcasting can unleash surges of untamed magic."),
					b.phb("Tides of Chaos", "Gain advantage on one attack roll, ability check, or saving throw."),
				},
				6:  {b.phb("Bend Luck", "Spend sorcery points to add or subtract 1d4 from another creature's roll.")},
				14: {b.phb("Controlled Chaos", "Roll twice on the Wild Magic Surge table and choose a result.")},
				18: {b.phb("Spell Bombardment", "Reroll a damage die that rolls its highest number and add it.")},
			}),
		},
	)
	c.Subclasses.Alias("Draconic", "Draconic Bloodline")
}

func (b *builder) addWarlock() {
	c := &rulebook.Class{
		Mechanic:                    mechanic("Warlock", SourcePHB, "A wielder of magic derived from a bargain with an extraplanar entity."),
		HitDiceFaces:                8,
		PrimaryAbility:              "Charisma",
		SavingThrows:                saves(rulebook.AbilityWisdom, rulebook.AbilityCharisma),
		Caster:                      rulebook.CasterPact,
		SpellcastingAbility:         rulebook.AbilityCharisma,
		SpellSlots:                  pactTable(cantrips(1, 2, 4, 10)),
		WeaponProficiencies:         b.weapons(rulebook.SimpleWeapons),
		ProficienciesText:           []string{"light armor"},
		MulticlassProficienciesText: []string{"light armor"},
		FeaturesByLevel: byLevel(levelFeatures{
			1: {
				b.phb("Otherworldly Patron", "Strike a bargain with an otherworldly being of your choice."),
				b.phb("Pact Magic", "Spell slots that all share one level and recover on a short rest."),
			},
			2:  {b.phb("Eldritch Invocations", "Fragments of forbidden knowledge that imbue you with abiding magical ability.")},
			3:  {b.phb("Pact Boon", "Your patron bestows a pact of the chain, blade or tome.")},
			11: {b.phb("Mystic Arcanum", "Cast one 6th-level spell once per long rest without a slot.")},
			20: {b.phb("Eldritch Master", "Regain all expended Pact Magic slots by entreating your patron for a minute.")},
		}),
	}

	b.addClass(c,
		&rulebook.Subclass{
			Mechanic: subclass("The Fiend", SourcePHB, "You have made a pact with a fiend from the lower planes of existence."),
			FeaturesByLevel: byLevel(levelFeatures{
				1:  {b.phb("Dark One's Blessing", "Gain temporary hit points when you reduce a hostile creature to 0 hit points.")},
				6:  {b.phb("Dark One's Own Luck", "Add a d10 to an ability check or saving throw.")},
				10: {b.phb("Fiendish Resilience", "Choose one damage type to be resistant to after each rest.")},
				14: {b.phb("Hurl Through Hell", "Send a creature you hit through the lower planes.")},
			}),
		},
		&rulebook.Subclass{
			Mechanic: subclass("The Archfey", SourcePHB, "Your patron is a lord or lady of the fey."),
			FeaturesByLevel: byLevel(levelFeatures{
				1:  {b.phb("Fey Presence", "Charm or frighten creatures in a 10-foot cube.")},
				6:  {b.phb("Misty Escape", "Turn invisible and teleport when you take damage.")},
				10: {b.phb("Beguiling Defenses", "You are immune to being charmed and can turn charms back on their caster.")},
				14: {b.phb("Dark Delirium", "Plunge a creature into an illusory realm.")},
			}),
		},
		&rulebook.Subclass{
			Mechanic: subclass("The Great Old One", SourcePHB, "Your patron is a mysterious entity whose nature is utterly foreign to the fabric of reality."),
			FeaturesByLevel: byLevel(levelFeatures{
				1:  {b.phb("Awakened Mind", "Speak telepathically to any creature within 30 feet.")},
				6:  {b.phb("Entropic Ward", "Impose disadvantage on an attack against you and gain advantage if it misses.")},
				10: {b.phb("Thought Shield", "Your thoughts can't be read and you resist psychic damage.")},
				14: {b.phb("Create Thrall", "Charm an incapacitated humanoid indefinitely.")},
			}),
		},
	)
	c.Subclasses.Alias("Fiend", "The Fiend")
	c.Subclasses.Alias("Archfey", "The Archfey")
	c.Subclasses.Alias("Great Old One", "The Great Old One")
}

func (b *builder) addWizard() {
	c := &rulebook.Class{
		Mechanic:            mechanic("Wizard", SourcePHB, "A scholarly magic-user capable of manipulating the structures of reality."),
		HitDiceFaces:        6,
		PrimaryAbility:      "Intelligence",
		SavingThrows:        saves(rulebook.AbilityIntelligence, rulebook.AbilityWisdom),
		Caster:              rulebook.CasterFull,
		SpellcastingAbility: rulebook.AbilityIntelligence,
		SpellSlots:          slotTable(&fullCasterSlots, cantrips(1, 3, 4, 10)),
		WeaponProficiencies: b.weapons("Dagger", "Dart", "Sling", "Quarterstaff", "Light Crossbow"),
		FeaturesByLevel: byLevel(levelFeatures{
			1: {
				b.phb("Spellcasting", "You can cast spells using your spellcasting ability."),
				b.phb("Arcane Recovery", "Recover some expended spell slots during a short rest."),
			},
			2:  {b.phb("Arcane Tradition", "Choose an arcane tradition, shaping your practice of magic.")},
			18: {b.phb("Spell Mastery", "Cast a chosen 1st- and 2nd-level spell at their lowest level without expending a slot.")},
			20: {b.phb("Signature Spells", "Two 3rd-level spells are always prepared and can each be cast once per rest without a slot.")},
		}),
	}

	b.addClass(c,
		&rulebook.Subclass{
			Mechanic: subclass("School of Evocation", SourcePHB, "Study magic that creates powerful elemental effects."),
			FeaturesByLevel: byLevel(levelFeatures{
				2: {
					b.phb("Evocation Savant", "Copying evocation spells into your spellbook takes half the time and gold."),
					b.phb("Sculpt Spells", "Create pockets of relative safety within your evocation spells."),
				},
				6:  {b.phb("Potent Cantrip", "Creatures that succeed on saves against your cantrips take half damage.")},
				10: {b.phb("Empowered Evocation", "Add your Intelligence modifier to the damage of wizard evocation spells.")},
				14: {b.phb("Overchannel", "Deal maximum damage with a spell of 5th level or lower.")},
			}),
		},
		&rulebook.Subclass{
			Mechanic: subclass("School of Abjuration", SourcePHB, "Study magic that blocks, banishes, or protects."),
			FeaturesByLevel: byLevel(levelFeatures{
				2: {
					b.phb("Abjuration Savant", "Copying abjuration spells into your spellbook takes half the time and gold."),
					b.phb("Arcane Ward", "Weave magic around yourself for protection."),
				},
				6:  {b.phb("Projected Ward", "Use your Arcane Ward to absorb damage dealt to a creature near you.")},
				10: {b.phb("Improved Abjuration", "Add your proficiency bonus to ability checks made as part of abjuration spells.")},
				14: {b.phb("Spell Resistance", "Advantage on saving throws against spells and resistance to spell damage.")},
			}),
		},
		&rulebook.Subclass{
			Mechanic: subclass("School of Divination", SourcePHB, "Study magic that strives to part the veils of space, the planes, and time."),
			FeaturesByLevel: byLevel(levelFeatures{
				2: {
					b.phb("Divination Savant", "Copying divination spells into your spellbook takes half the time and gold."),
					b.phb("Portent", "Roll two d20s after a long rest and replace rolls with them."),
				},
				6:  {b.phb("Expert Divination", "Regain a lower-level spell slot when casting a divination spell.")},
				10: {b.phb("The Third Eye", "Gain darkvision, ethereal sight, greater comprehension or see invisibility.")},
				14: {b.phb("Greater Portent", "Roll three d20s for your Portent feature.")},
			}),
		},
	)
	c.Subclasses.Alias("Evocation", "School of Evocation")
	c.Subclasses.Alias("Abjuration", "School of Abjuration")
	c.Subclasses.Alias("Divination", "School of Divination")
}
