package character

import "github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"

// multiclassSpellSlots is the PHB multiclass spellcaster table. Row i is the
// effective caster level i+1; columns are cantrips (always zero, cantrips are
// never pooled) then spell levels 1 through 9.
var multiclassSpellSlots = [rulebook.MaxLevel][10]int{
	{0, 2, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 3, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 4, 2, 0, 0, 0, 0, 0, 0, 0},
	{0, 4, 3, 0, 0, 0, 0, 0, 0, 0},
	{0, 4, 3, 2, 0, 0, 0, 0, 0, 0},
	{0, 4, 3, 3, 0, 0, 0, 0, 0, 0},
	{0, 4, 3, 3, 1, 0, 0, 0, 0, 0},
	{0, 4, 3, 3, 2, 0, 0, 0, 0, 0},
	{0, 4, 3, 3, 3, 1, 0, 0, 0, 0},
	{0, 4, 3, 3, 3, 2, 0, 0, 0, 0},
	{0, 4, 3, 3, 3, 2, 1, 0, 0, 0},
	{0, 4, 3, 3, 3, 2, 1, 0, 0, 0},
	{0, 4, 3, 3, 3, 2, 1, 1, 0, 0},
	{0, 4, 3, 3, 3, 2, 1, 1, 0, 0},
	{0, 4, 3, 3, 3, 2, 1, 1, 1, 0},
	{0, 4, 3, 3, 3, 2, 1, 1, 1, 0},
	{0, 4, 3, 3, 3, 2, 1, 1, 1, 1},
	{0, 4, 3, 3, 3, 3, 1, 1, 1, 1},
	{0, 4, 3, 3, 3, 3, 2, 1, 1, 1},
	{0, 4, 3, 3, 3, 3, 2, 2, 1, 1},
}

// SpellcastingClasses are the class entries that cast spells, in class order
func (c *Character) SpellcastingClasses() []*ClassEntry {
	var out []*ClassEntry
	for _, e := range c.ClassList {
		if e.IsSpellcaster() {
			out = append(out, e)
		}
	}
	return out
}

func (c *Character) IsSpellcaster() bool {
	return len(c.SpellcastingClasses()) > 0
}

// SpellSlots returns the number of slots of spellLevel (0 for cantrips known).
//
// Pact magic is always counted on its own and added on top. With a single
// other caster its own table applies. With several, cantrips are summed over
// every casting class and leveled slots come from the multiclass table indexed
// by the effective caster level.
func (c *Character) SpellSlots(spellLevel int) int {
	if spellLevel < 0 || spellLevel > 9 {
		return 0
	}

	pact := 0
	var pooled []*ClassEntry
	for _, e := range c.SpellcastingClasses() {
		if e.IsPactCaster() {
			pact += e.SpellSlots(spellLevel)
			continue
		}
		pooled = append(pooled, e)
	}

	switch len(pooled) {
	case 0:
		return pact
	case 1:
		return pooled[0].SpellSlots(spellLevel) + pact
	}

	if spellLevel == 0 {
		cantrips := 0
		for _, e := range c.SpellcastingClasses() {
			cantrips += e.SpellSlots(0)
		}
		return cantrips
	}

	level := EffectiveCasterLevel(pooled)
	if level == 0 {
		return pact
	}
	if level > rulebook.MaxLevel {
		level = rulebook.MaxLevel
	}
	return multiclassSpellSlots[level-1][spellLevel] + pact
}

// EffectiveCasterLevel weights each entry's level by its caster type. Pact
// casters and non-casters contribute nothing.
func EffectiveCasterLevel(entries []*ClassEntry) int {
	level := 0
	for _, e := range entries {
		switch e.CasterType() {
		case rulebook.CasterFull:
			level += e.Level
		case rulebook.CasterHalf:
			level += e.Level / 2
		case rulebook.CasterThird:
			level += e.Level / 3
		case rulebook.CasterHalfRoundedUp:
			level += (e.Level + 1) / 2
		}
	}
	return level
}
