package character

import (
	"strings"

	"github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"
)

// Features merges custom features, every class entry's features, race
// features (with the level-gated ones up to the total level) and background
// features, sorted by name. Once a concrete fighting style is present the
// undetermined "Fighting Style (Select One)" is dropped.
func (c *Character) Features() []*rulebook.Feature {
	set := rulebook.NewSet(c.customFeatures...)
	for _, e := range c.ClassList {
		set.Add(e.Features()...)
	}
	set.Add(c.race.FeaturesAt(c.Level())...)
	set.Add(c.background.Features...)

	for _, style := range rulebook.FightingStyles {
		if set.Has(style) {
			set.Remove(rulebook.SelectOneName(rulebook.FightingStyle))
			break
		}
	}
	return set.Sorted()
}

// HasFeature matches a feature by any spelling of its name
func (c *Character) HasFeature(name string) bool {
	want := rulebook.NormalizeName(name)
	for _, f := range c.Features() {
		if rulebook.NormalizeName(f.Name) == want {
			return true
		}
	}
	return false
}

// CustomFeatures are the features the description adds on its own
func (c *Character) CustomFeatures() []*rulebook.Feature {
	return c.customFeatures
}

// AddCustomFeatures resolves refs as features and adds them
func (c *Character) AddCustomFeatures(refs ...any) {
	for _, ref := range refs {
		f := rulebook.Resolve(ref, c.lib.Features, rulebook.CapabilityFeature, "Feature %q not defined. Please add it.", c.addWarning)
		c.customFeatures = append(c.customFeatures, f)
	}
}

func (c *Character) CustomFeaturesText() []string {
	return rulebook.Names(c.customFeatures)
}

// FeaturesText is the feature summary block of the sheet; placeholders carry "**"
func (c *Character) FeaturesText() string {
	features := c.Features()
	if len(features) == 0 {
		return ""
	}
	names := make([]string, len(features))
	for i, f := range features {
		names[i] = f.DisplayName()
	}
	return "(See Features Page)\n\n--" + strings.Join(names, "\n\n--") + "\n\n=================\n\n"
}
