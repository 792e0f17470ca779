package character

import (
	"fmt"

	"github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"
)

// ClassEntry is one class, level and subclass a character has attained
type ClassEntry struct {
	Class    *rulebook.Class
	Level    int
	Subclass *rulebook.Subclass

	// FeatureChoices pick options of selector features such as Fighting Style
	FeatureChoices []string

	// Druid state
	Circle     string
	WildShapes []string
}

// Name is the class name
func (e *ClassEntry) Name() string {
	return e.Class.Name
}

func (e *ClassEntry) String() string {
	return fmt.Sprintf("%s %d", e.Class.Name, e.Level)
}

func (e *ClassEntry) HitDiceFaces() int {
	return e.Class.HitDiceFaces
}

// CasterType is the class's own caster type, or the subclass's for classes
// that only cast through an archetype
func (e *ClassEntry) CasterType() rulebook.CasterType {
	if e.Class.Caster != rulebook.CasterNone {
		return e.Class.Caster
	}
	if e.Subclass != nil {
		return e.Subclass.Caster
	}
	return rulebook.CasterNone
}

func (e *ClassEntry) IsSpellcaster() bool {
	return e.CasterType() != rulebook.CasterNone
}

// IsPactCaster reports Warlock-style pact magic, whose slots never join the multiclass pool
func (e *ClassEntry) IsPactCaster() bool {
	return e.CasterType() == rulebook.CasterPact
}

func (e *ClassEntry) SpellcastingAbility() rulebook.Ability {
	if e.Class.SpellcastingAbility != rulebook.AbilityNone {
		return e.Class.SpellcastingAbility
	}
	if e.Subclass != nil {
		return e.Subclass.SpellcastingAbility
	}
	return rulebook.AbilityNone
}

// SpellSlots looks up this class's own table; index 0 is cantrips known
func (e *ClassEntry) SpellSlots(spellLevel int) int {
	table := e.Class.SpellSlots
	if table == nil && e.Subclass != nil {
		table = e.Subclass.SpellSlots
	}
	return table.Slots(e.Level, spellLevel)
}

// WeaponProficiencies are granted when this is the primary class
func (e *ClassEntry) WeaponProficiencies() []*rulebook.Weapon {
	out := append([]*rulebook.Weapon(nil), e.Class.WeaponProficiencies...)
	if e.Subclass != nil {
		out = append(out, e.Subclass.WeaponProficiencies...)
	}
	return out
}

// MulticlassWeaponProficiencies are the narrower set granted when multiclassing into this class
func (e *ClassEntry) MulticlassWeaponProficiencies() []*rulebook.Weapon {
	out := append([]*rulebook.Weapon(nil), e.Class.MulticlassWeaponProficiencies...)
	if e.Subclass != nil {
		out = append(out, e.Subclass.WeaponProficiencies...)
	}
	return out
}

func (e *ClassEntry) SavingThrowProficiencies() []rulebook.Ability {
	return e.Class.SavingThrows
}

func (e *ClassEntry) proficienciesText(primary bool) []string {
	text := e.Class.MulticlassProficienciesText
	if primary {
		text = e.Class.ProficienciesText
	}
	out := append([]string(nil), text...)
	if e.Subclass != nil {
		out = append(out, e.Subclass.ProficienciesText...)
	}
	return out
}

// Features lists the class and subclass features gained up to the entry's
// level. Selectors are replaced by the option named in FeatureChoices, or by
// their "(Select One)" form when no choice matches.
func (e *ClassEntry) Features() []*rulebook.Feature {
	set := rulebook.NewSet[*rulebook.Feature]()
	for lvl := 1; lvl <= e.Level; lvl++ {
		for _, f := range e.Class.FeaturesByLevel[lvl] {
			set.Add(f.Choose(e.FeatureChoices))
		}
		if e.Subclass == nil {
			continue
		}
		for _, f := range e.Subclass.FeaturesByLevel[lvl] {
			set.Add(f.Choose(e.FeatureChoices))
		}
	}
	return set.Items()
}

// SpellsKnown are spells the subclass grants up to the entry's level
func (e *ClassEntry) SpellsKnown() []*rulebook.Spell {
	if e.Subclass == nil {
		return nil
	}
	return spellsUpTo(e.Subclass.SpellsKnownByLevel, e.Level)
}

// SpellsPrepared are always-prepared subclass spells (domain and oath spells)
func (e *ClassEntry) SpellsPrepared() []*rulebook.Spell {
	if e.Subclass == nil {
		return nil
	}
	return spellsUpTo(e.Subclass.SpellsPreparedByLevel, e.Level)
}

func spellsUpTo(byLevel map[int][]*rulebook.Spell, level int) []*rulebook.Spell {
	var out []*rulebook.Spell
	for lvl := 1; lvl <= level; lvl++ {
		out = append(out, byLevel[lvl]...)
	}
	return out
}
