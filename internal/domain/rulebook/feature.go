package rulebook

import "fmt"

// Feature is a class, subclass, race or background feature
type Feature struct {
	Mechanic

	// Level is the class level the feature is gained at, zero when not level gated
	Level int `json:"level,omitempty"`

	SpellsKnown    []*Spell `json:"-"`
	SpellsPrepared []*Spell `json:"-"`

	// Options turns the feature into a selector: the character picks exactly one of them
	Options []*Feature `json:"-"`
}

// IsSelector reports whether the feature stands for a choice among Options
func (f *Feature) IsSelector() bool {
	return len(f.Options) > 0
}

// Choose returns the option named by one of choices. With no matching choice
// the result is an undetermined "<Name> (Select One)" copy of the selector.
// Features that are not selectors are returned unchanged.
func (f *Feature) Choose(choices []string) *Feature {
	if !f.IsSelector() {
		return f
	}
	for _, choice := range choices {
		norm := NormalizeName(choice)
		if norm == "" {
			continue
		}
		for _, opt := range f.Options {
			if norm == NormalizeName(opt.Name) || norm == NormalizeName(opt.Key) || norm == NormalizeName(optionLabel(f, opt)) {
				return opt
			}
		}
	}

	undetermined := *f
	undetermined.Name = SelectOneName(f.Name)
	undetermined.Key = Slug(undetermined.Name)
	return &undetermined
}

// SelectOneName is the name a selector takes before a choice is made
func SelectOneName(name string) string {
	return fmt.Sprintf("%s (Select One)", name)
}

// optionLabel strips the selector name from an option, so "Archery" picks
// "Fighting Style (Archery)"
func optionLabel(selector, opt *Feature) string {
	prefix := selector.Name + " ("
	if len(opt.Name) > len(prefix) && opt.Name[:len(prefix)] == prefix && opt.Name[len(opt.Name)-1] == ')' {
		return opt.Name[len(prefix) : len(opt.Name)-1]
	}
	return opt.Name
}

// Fighting style feature names
const (
	FightingStyle                    = "Fighting Style"
	FightingStyleArchery             = "Fighting Style (Archery)"
	FightingStyleDefense             = "Fighting Style (Defense)"
	FightingStyleDueling             = "Fighting Style (Dueling)"
	FightingStyleGreatWeaponFighting = "Fighting Style (Great Weapon Fighting)"
	FightingStyleProtection          = "Fighting Style (Protection)"
	FightingStyleTwoWeaponFighting   = "Fighting Style (Two-Weapon Fighting)"
)

// FightingStyles are the six concrete fighting style features
var FightingStyles = []string{
	FightingStyleArchery,
	FightingStyleDefense,
	FightingStyleDueling,
	FightingStyleGreatWeaponFighting,
	FightingStyleProtection,
	FightingStyleTwoWeaponFighting,
}

// IsFightingStyle reports whether name is one of the concrete fighting styles
func IsFightingStyle(name string) bool {
	for _, style := range FightingStyles {
		if name == style {
			return true
		}
	}
	return false
}
