package character

import "github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"

// Spells is every spell the character has access to: declared known and
// prepared spells plus what features, casting classes and the race grant.
// One entry per name, sorted by name.
func (c *Character) Spells() []*rulebook.Spell {
	set := rulebook.NewSet(c.spells...)
	set.Add(c.spellsPrepared...)
	for _, f := range c.Features() {
		set.Add(f.SpellsKnown...)
		set.Add(f.SpellsPrepared...)
	}
	for _, e := range c.SpellcastingClasses() {
		set.Add(e.SpellsKnown()...)
		set.Add(e.SpellsPrepared()...)
	}
	set.Add(c.race.SpellsKnown...)
	set.Add(c.race.SpellsPrepared...)
	return set.Sorted()
}

// SpellsPrepared is the same union restricted to prepared sources
func (c *Character) SpellsPrepared() []*rulebook.Spell {
	set := rulebook.NewSet(c.spellsPrepared...)
	for _, f := range c.Features() {
		set.Add(f.SpellsPrepared...)
	}
	for _, e := range c.SpellcastingClasses() {
		set.Add(e.SpellsPrepared()...)
	}
	set.Add(c.race.SpellsPrepared...)
	return set.Sorted()
}

// IsPrepared reports whether a spell of this name is prepared
func (c *Character) IsPrepared(name string) bool {
	want := rulebook.NormalizeName(name)
	for _, s := range c.SpellsPrepared() {
		if rulebook.NormalizeName(s.Name) == want {
			return true
		}
	}
	return false
}

// SetSpells replaces the declared known spells
func (c *Character) SetSpells(refs []any) {
	c.spells = c.resolveSpells(refs)
}

// SetSpellsPrepared replaces the declared prepared spells
func (c *Character) SetSpellsPrepared(refs []any) {
	c.spellsPrepared = c.resolveSpells(refs)
}

func (c *Character) resolveSpells(refs []any) []*rulebook.Spell {
	out := make([]*rulebook.Spell, 0, len(refs))
	for _, ref := range refs {
		out = append(out, rulebook.Resolve(ref, c.lib.Spells, rulebook.CapabilitySpell, "Spell %q not defined. Please add it.", c.addWarning))
	}
	return rulebook.SortByName(out)
}

// SpellSaveDC is 8 + proficiency + the casting ability modifier of entry
func (c *Character) SpellSaveDC(entry *ClassEntry) int {
	return 8 + c.SpellAttackBonus(entry)
}

// SpellAttackBonus is proficiency + the casting ability modifier of entry
func (c *Character) SpellAttackBonus(entry *ClassEntry) int {
	bonus := c.ProficiencyBonus()
	if entry != nil && entry.SpellcastingAbility() != rulebook.AbilityNone {
		bonus += c.AbilityModifier(entry.SpellcastingAbility())
	}
	return bonus
}
