package dnd5e

import (
	"strings"

	"github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"
)

const (
	action      = "1 action"
	bonusAction = "1 bonus action"
	reaction    = "1 reaction"
)

func spell(name string, level int, school, castingTime, spellRange, duration, components string, classes ...string) *rulebook.Spell {
	return &rulebook.Spell{
		Mechanic:      mechanic(name, SourcePHB, ""),
		Level:         level,
		School:        school,
		CastingTime:   castingTime,
		Range:         spellRange,
		Duration:      duration,
		Components:    strings.Fields(components),
		Concentration: strings.HasPrefix(duration, "Concentration"),
		Classes:       classes,
	}
}

func ritual(s *rulebook.Spell) *rulebook.Spell {
	s.Ritual = true
	return s
}

func (b *builder) addSpells() {
	b.lib.Spells.Add(
		// cantrips
		spell("Acid Splash", 0, "Conjuration", action, "60 feet", "Instantaneous", "V S", "Artificer", "Sorcerer", "Wizard"),
		spell("Chill Touch", 0, "Necromancy", action, "120 feet", "1 round", "V S", "Sorcerer", "Warlock", "Wizard"),
		spell("Dancing Lights", 0, "Evocation", action, "120 feet", "Concentration, up to 1 minute", "V S M", "Artificer", "Bard", "Sorcerer", "Wizard"),
		spell("Druidcraft", 0, "Transmutation", action, "30 feet", "Instantaneous", "V S", "Druid"),
		spell("Eldritch Blast", 0, "Evocation", action, "120 feet", "Instantaneous", "V S", "Warlock"),
		spell("Fire Bolt", 0, "Evocation", action, "120 feet", "Instantaneous", "V S", "Artificer", "Sorcerer", "Wizard"),
		spell("Guidance", 0, "Divination", action, "Touch", "Concentration, up to 1 minute", "V S", "Artificer", "Cleric", "Druid"),
		spell("Light", 0, "Evocation", action, "Touch", "1 hour", "V M", "Artificer", "Bard", "Cleric", "Sorcerer", "Wizard"),
		spell("Mage Hand", 0, "Conjuration", action, "30 feet", "1 minute", "V S", "Artificer", "Bard", "Sorcerer", "Warlock", "Wizard"),
		spell("Mending", 0, "Transmutation", "1 minute", "Touch", "Instantaneous", "V S M", "Artificer", "Bard", "Cleric", "Druid", "Sorcerer", "Wizard"),
		spell("Minor Illusion", 0, "Illusion", action, "30 feet", "1 minute", "S M", "Bard", "Sorcerer", "Warlock", "Wizard"),
		spell("Prestidigitation", 0, "Transmutation", action, "10 feet", "Up to 1 hour", "V S", "Artificer", "Bard", "Sorcerer", "Warlock", "Wizard"),
		spell("Produce Flame", 0, "Conjuration", action, "Self", "10 minutes", "V S", "Druid"),
		spell("Ray of Frost", 0, "Evocation", action, "60 feet", "Instantaneous", "V S", "Artificer", "Sorcerer", "Wizard"),
		spell("Sacred Flame", 0, "Evocation", action, "60 feet", "Instantaneous", "V S", "Cleric"),
		spell("Shillelagh", 0, "Transmutation", bonusAction, "Touch", "1 minute", "V S M", "Druid"),
		spell("Spare the Dying", 0, "Necromancy", action, "Touch", "Instantaneous", "V S", "Artificer", "Cleric"),
		spell("Thaumaturgy", 0, "Transmutation", action, "30 feet", "Up to 1 minute", "V", "Cleric"),
		spell("Vicious Mockery", 0, "Enchantment", action, "60 feet", "Instantaneous", "V", "Bard"),

		// 1st level
		spell("Bane", 1, "Enchantment", action, "30 feet", "Concentration, up to 1 minute", "V S M", "Bard", "Cleric"),
		spell("Bless", 1, "Enchantment", action, "30 feet", "Concentration, up to 1 minute", "V S M", "Cleric", "Paladin"),
		spell("Burning Hands", 1, "Evocation", action, "Self (15-foot cone)", "Instantaneous", "V S", "Sorcerer", "Wizard"),
		spell("Charm Person", 1, "Enchantment", action, "30 feet", "1 hour", "V S", "Bard", "Druid", "Sorcerer", "Warlock", "Wizard"),
		spell("Cure Wounds", 1, "Evocation", action, "Touch", "Instantaneous", "V S", "Artificer", "Bard", "Cleric", "Druid", "Paladin", "Ranger"),
		ritual(spell("Detect Magic", 1, "Divination", action, "Self", "Concentration, up to 10 minutes", "V S", "Artificer", "Bard", "Cleric", "Druid", "Paladin", "Ranger", "Sorcerer", "Wizard")),
		spell("Disguise Self", 1, "Illusion", action, "Self", "1 hour", "V S", "Artificer", "Bard", "Sorcerer", "Wizard"),
		spell("Divine Favor", 1, "Evocation", bonusAction, "Self", "Concentration, up to 1 minute", "V S", "Paladin"),
		spell("Faerie Fire", 1, "Evocation", action, "60 feet", "Concentration, up to 1 minute", "V", "Artificer", "Bard", "Druid"),
		spell("Feather Fall", 1, "Transmutation", reaction, "60 feet", "1 minute", "V M", "Artificer", "Bard", "Sorcerer", "Wizard"),
		ritual(spell("Find Familiar", 1, "Conjuration", "1 hour", "10 feet", "Instantaneous", "V S M", "Wizard")),
		spell("Goodberry", 1, "Transmutation", action, "Touch", "Instantaneous", "V S M", "Druid", "Ranger"),
		spell("Guiding Bolt", 1, "Evocation", action, "120 feet", "1 round", "V S", "Cleric"),
		spell("Healing Word", 1, "Evocation", bonusAction, "60 feet", "Instantaneous", "V", "Bard", "Cleric", "Druid"),
		spell("Hellish Rebuke", 1, "Evocation", reaction, "60 feet", "Instantaneous", "V S", "Warlock"),
		spell("Hex", 1, "Enchantment", bonusAction, "90 feet", "Concentration, up to 1 hour", "V S M", "Warlock"),
		spell("Hunter's Mark", 1, "Divination", bonusAction, "90 feet", "Concentration, up to 1 hour", "V", "Paladin", "Ranger"),
		spell("Mage Armor", 1, "Abjuration", action, "Touch", "8 hours", "V S M", "Sorcerer", "Wizard"),
		spell("Magic Missile", 1, "Evocation", action, "120 feet", "Instantaneous", "V S", "Sorcerer", "Wizard"),
		spell("Protection from Evil and Good", 1, "Abjuration", action, "Touch", "Concentration, up to 10 minutes", "V S M", "Cleric", "Paladin", "Warlock", "Wizard"),
		spell("Sanctuary", 1, "Abjuration", bonusAction, "30 feet", "1 minute", "V S M", "Artificer", "Cleric"),
		spell("Shield", 1, "Abjuration", reaction, "Self", "1 round", "V S", "Sorcerer", "Wizard"),
		spell("Shield of Faith", 1, "Abjuration", bonusAction, "60 feet", "Concentration, up to 10 minutes", "V S M", "Cleric", "Paladin"),
		spell("Silent Image", 1, "Illusion", action, "60 feet", "Concentration, up to 10 minutes", "V S M", "Bard", "Sorcerer", "Wizard"),
		spell("Sleep", 1, "Enchantment", action, "90 feet", "1 minute", "V S M", "Bard", "Sorcerer", "Wizard"),
		ritual(spell("Speak with Animals", 1, "Divination", action, "Self", "10 minutes", "V S", "Bard", "Druid", "Ranger")),
		spell("Thunderwave", 1, "Evocation", action, "Self (15-foot cube)", "Instantaneous", "V S", "Bard", "Druid", "Sorcerer", "Wizard"),

		// 2nd level
		spell("Darkness", 2, "Evocation", action, "60 feet", "Concentration, up to 10 minutes", "V M", "Sorcerer", "Warlock", "Wizard"),
		spell("Flaming Sphere", 2, "Conjuration", action, "60 feet", "Concentration, up to 1 minute", "V S M", "Druid", "Wizard"),
		spell("Hold Person", 2, "Enchantment", action, "60 feet", "Concentration, up to 1 minute", "V S M", "Bard", "Cleric", "Druid", "Sorcerer", "Warlock", "Wizard"),
		spell("Invisibility", 2, "Illusion", action, "Touch", "Concentration, up to 1 hour", "V S M", "Artificer", "Bard", "Sorcerer", "Warlock", "Wizard"),
		spell("Lesser Restoration", 2, "Abjuration", action, "Touch", "Instantaneous", "V S", "Artificer", "Bard", "Cleric", "Druid", "Paladin", "Ranger"),
		spell("Misty Step", 2, "Conjuration", bonusAction, "Self", "Instantaneous", "V", "Sorcerer", "Warlock", "Wizard"),
		spell("Scorching Ray", 2, "Evocation", action, "120 feet", "Instantaneous", "V S", "Sorcerer", "Wizard"),
		spell("Spiritual Weapon", 2, "Evocation", bonusAction, "60 feet", "1 minute", "V S", "Cleric"),
		spell("Zone of Truth", 2, "Enchantment", action, "60 feet", "10 minutes", "V S", "Bard", "Cleric", "Paladin"),

		// 3rd level
		spell("Beacon of Hope", 3, "Abjuration", action, "30 feet", "Concentration, up to 1 minute", "V S", "Cleric"),
		spell("Counterspell", 3, "Abjuration", reaction, "60 feet", "Instantaneous", "S", "Sorcerer", "Warlock", "Wizard"),
		spell("Daylight", 3, "Evocation", action, "60 feet", "1 hour", "V S", "Cleric", "Druid", "Paladin", "Ranger", "Sorcerer"),
		spell("Fireball", 3, "Evocation", action, "150 feet", "Instantaneous", "V S M", "Sorcerer", "Wizard"),
		spell("Fly", 3, "Transmutation", action, "Touch", "Concentration, up to 10 minutes", "V S M", "Artificer", "Sorcerer", "Warlock", "Wizard"),
		spell("Revivify", 3, "Necromancy", action, "Touch", "Instantaneous", "V S M", "Artificer", "Cleric", "Paladin"),

		// 4th level
		spell("Death Ward", 4, "Abjuration", action, "Touch", "8 hours", "V S", "Cleric", "Paladin"),
		spell("Guardian of Faith", 4, "Conjuration", action, "30 feet", "8 hours", "V", "Cleric"),
		spell("Wall of Fire", 4, "Evocation", action, "120 feet", "Concentration, up to 1 minute", "V S M", "Druid", "Sorcerer", "Wizard"),

		// 5th level
		spell("Flame Strike", 5, "Evocation", action, "60 feet", "Instantaneous", "V S M", "Cleric"),
		spell("Mass Cure Wounds", 5, "Evocation", action, "60 feet", "Instantaneous", "V S", "Bard", "Cleric", "Druid"),
		spell("Raise Dead", 5, "Necromancy", "1 hour", "Touch", "Instantaneous", "V S M", "Bard", "Cleric", "Paladin"),
		spell("Scrying", 5, "Divination", "10 minutes", "Self", "Concentration, up to 10 minutes", "V S M", "Bard", "Cleric", "Druid", "Warlock", "Wizard"),
	)
}
