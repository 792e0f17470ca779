package character

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"
)

// WeaponProficiencies merges the extra proficiencies, the primary class's
// full list, the multiclass list of every other class, race and background.
// Duplicates collapse by name.
func (c *Character) WeaponProficiencies() []*rulebook.Weapon {
	set := rulebook.NewSet(c.otherWeaponProficiencies...)
	for i, e := range c.ClassList {
		if i == 0 {
			set.Add(e.WeaponProficiencies()...)
			continue
		}
		set.Add(e.MulticlassWeaponProficiencies()...)
	}
	set.Add(c.race.WeaponProficiencies...)
	set.Add(c.background.WeaponProficiencies...)
	return set.Items()
}

// SetWeaponProficiencies resolves refs as weapons and keeps the ones that
// class, race and background do not already grant
func (c *Character) SetWeaponProficiencies(refs []any) {
	c.otherWeaponProficiencies = nil
	granted := rulebook.NewSet(c.WeaponProficiencies()...)

	extra := rulebook.NewSet[*rulebook.Weapon]()
	for _, ref := range refs {
		w := rulebook.Resolve(ref, c.lib.Weapons, rulebook.CapabilityWeapon, "Weapon %q not defined. Please add it.", c.addWarning)
		if !granted.Has(w.Name) {
			extra.Add(w)
		}
	}
	c.otherWeaponProficiencies = extra.Items()
}

// OtherWeaponProficiencies are the extra proficiencies not granted by class, race or background
func (c *Character) OtherWeaponProficiencies() []*rulebook.Weapon {
	return c.otherWeaponProficiencies
}

func (c *Character) OtherWeaponProficienciesText() []string {
	return rulebook.Names(c.otherWeaponProficiencies)
}

// IsProficient checks the weapon against every proficiency by name or category
func (c *Character) IsProficient(weapon *rulebook.Weapon) bool {
	if weapon == nil {
		return false
	}
	for _, prof := range c.WeaponProficiencies() {
		if weapon.CoveredBy(prof) {
			return true
		}
	}
	return false
}

// ProficienciesText joins the armor, tool and other proficiencies into one
// sentence: the declared ones, the primary class's, the multiclass text of
// every other class, race and background.
func (c *Character) ProficienciesText() string {
	all := append([]string(nil), c.proficienciesText...)
	for i, e := range c.ClassList {
		all = append(all, e.proficienciesText(i == 0)...)
	}
	all = append(all, c.race.ProficienciesText...)
	all = append(all, c.background.ProficienciesText...)

	var b strings.Builder
	for _, txt := range all {
		if b.Len() == 0 {
			b.WriteString(capitalize(txt))
			continue
		}
		b.WriteString(", ")
		b.WriteString(txt)
	}
	b.WriteString(".")
	return b.String()
}

// capitalize upper-cases the first rune and lower-cases the rest
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
