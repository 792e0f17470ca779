package dnd5e

import "github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"

func armor(name string, category rulebook.ArmorCategory, base int, strMin int, stealthDisadvantage bool) *rulebook.Armor {
	a := &rulebook.Armor{
		Mechanic:            mechanic(name, SourcePHB, ""),
		ArmorCategory:       category,
		BaseArmorClass:      base,
		StrengthMin:         strMin,
		StealthDisadvantage: stealthDisadvantage,
	}
	switch category {
	case rulebook.ArmorCategoryLight:
		a.DexBonus = true
	case rulebook.ArmorCategoryMedium:
		a.DexBonus = true
		a.MaxDexBonus = 2
	}
	return a
}

func (b *builder) addArmor() {
	const (
		light  = rulebook.ArmorCategoryLight
		medium = rulebook.ArmorCategoryMedium
		heavy  = rulebook.ArmorCategoryHeavy
	)

	b.lib.Armor.Add(
		armor("Padded Armor", light, 11, 0, true),
		armor("Leather Armor", light, 11, 0, false),
		armor("Studded Leather Armor", light, 12, 0, false),
		armor("Hide Armor", medium, 12, 0, false),
		armor("Chain Shirt", medium, 13, 0, false),
		armor("Scale Mail", medium, 14, 0, true),
		armor("Breastplate", medium, 14, 0, false),
		armor("Half Plate", medium, 15, 0, true),
		armor("Ring Mail", heavy, 14, 0, true),
		armor("Chain Mail", heavy, 16, 13, true),
		armor("Splint Armor", heavy, 17, 15, true),
		armor("Plate Armor", heavy, 18, 15, true),
	)
	// descriptions written by hand tend to drop the "Armor" suffix
	for _, name := range []string{"Padded", "Leather", "Studded Leather", "Hide", "Splint", "Plate"} {
		b.lib.Armor.Alias(name, name+" Armor")
	}

	b.lib.Shields.Add(&rulebook.Shield{
		Mechanic:   mechanic("Shield", SourcePHB, "A shield is carried in one hand and adds 2 to AC."),
		ArmorBonus: 2,
	})
}

func (b *builder) addItems() {
	item := func(name, source, rarity string, attunement bool, description string) *rulebook.MagicItem {
		return &rulebook.MagicItem{
			Mechanic:           mechanic(name, source, description),
			Rarity:             rarity,
			RequiresAttunement: attunement,
		}
	}

	ringOfProtection := item("Ring of Protection", SourceDMG, "rare", true, "+1 bonus to AC and saving throws while wearing this ring.")
	ringOfProtection.ACBonus, ringOfProtection.SaveBonus = 1, 1
	cloakOfProtection := item("Cloak of Protection", SourceDMG, "uncommon", true, "+1 bonus to AC and saving throws while wearing this cloak.")
	cloakOfProtection.ACBonus, cloakOfProtection.SaveBonus = 1, 1
	luckstone := item("Stone of Good Luck (Luckstone)", SourceDMG, "uncommon", true, "+1 bonus to ability checks and saving throws while this stone is on your person.")
	luckstone.SaveBonus = 1

	b.lib.MagicItems.Add(
		ringOfProtection,
		cloakOfProtection,
		luckstone,
		item("Bag of Holding", SourceDMG, "uncommon", false, "This bag has an interior space considerably larger than its outside dimensions."),
		item("Potion of Healing", SourceDMG, "common", false, "You regain 2d4 + 2 hit points when you drink this potion."),
		item("Boots of Elvenkind", SourceDMG, "uncommon", false, "Your steps make no sound; advantage on Dexterity (Stealth) checks that rely on moving silently."),
		item("Gauntlets of Ogre Power", SourceDMG, "uncommon", true, "Your Strength score is 19 while you wear these gauntlets."),
		item("Headband of Intellect", SourceDMG, "uncommon", true, "Your Intelligence score is 19 while you wear this headband."),
		item("Amulet of Health", SourceDMG, "rare", true, "Your Constitution score is 19 while you wear this amulet."),
		item("Wand of Magic Missiles", SourceDMG, "uncommon", false, "This wand has 7 charges for casting magic missile."),
		item("Immovable Rod", SourceDMG, "uncommon", false, "Pressing the button fixes the rod in place."),
		item("Goggles of Night", SourceDMG, "uncommon", false, "You have darkvision out to 60 feet while wearing these goggles."),
	)
	b.lib.MagicItems.Alias("Luckstone", "Stone of Good Luck (Luckstone)")

	infusion := func(name, requirement string, prerequisite int, description string) *rulebook.Infusion {
		return &rulebook.Infusion{
			Mechanic:        mechanic(name, SourceTCE, description),
			ItemRequirement: requirement,
			Prerequisite:    prerequisite,
		}
	}

	b.lib.Infusions.Add(
		infusion("Enhanced Arcane Focus", "A rod, staff, or wand (requires attunement)", 0, "+1 bonus to spell attack rolls, ignoring half cover."),
		infusion("Enhanced Defense", "A suit of armor or a shield", 0, "+1 bonus to Armor Class; +2 at 10th level."),
		infusion("Enhanced Weapon", "A simple or martial weapon", 0, "+1 bonus to attack and damage rolls; +2 at 10th level."),
		infusion("Homunculus Servant", "A gem or crystal worth at least 100 gp", 0, "You learn intricate methods for magically creating a special homunculus."),
		infusion("Mind Sharpener", "A suit of armor or robes", 0, "The item can send a jolt to refocus the wearer's mind on concentration."),
		infusion("Repeating Shot", "A simple or martial weapon with the ammunition property (requires attunement)", 0, "+1 to attack and damage; ignores loading and produces its own ammunition."),
		infusion("Replicate Magic Item", "", 0, "Replicate one of the magic items on the artificer replication list."),
		infusion("Returning Weapon", "A simple or martial weapon with the thrown property", 0, "+1 to attack and damage; returns to the wielder's hand after being thrown."),
		infusion("Boots of the Winding Path", "A pair of boots (requires attunement)", 6, "Teleport up to 15 feet to an unoccupied space you occupied this turn."),
		infusion("Radiant Weapon", "A simple or martial weapon (requires attunement)", 6, "+1 to attack and damage; sheds bright light and can blind an attacker."),
		infusion("Repulsion Shield", "A shield (requires attunement)", 6, "+1 to AC; can push an attacker 15 feet away."),
		infusion("Resistant Armor", "A suit of armor (requires attunement)", 6, "Resistance to one damage type chosen at infusion."),
		infusion("Spell-Refueling Ring", "A ring (requires attunement)", 6, "Recover one expended spell slot of 3rd level or lower."),
		infusion("Helm of Awareness", "A helmet (requires attunement)", 10, "Advantage on initiative rolls and cannot be surprised."),
		infusion("Arcane Propulsion Armor", "A suit of armor (requires attunement)", 14, "Walking speed increases by 5 feet and gauntlets become magic melee weapons."),
	)
}
