package character

import "github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"

// SetFeats resolves feat names, dropping repeats
func (c *Character) SetFeats(refs []any) {
	seen := make(map[string]bool, len(refs))
	feats := make([]*rulebook.Feat, 0, len(refs))
	for _, ref := range refs {
		f := rulebook.Resolve(ref, c.lib.Feats, rulebook.CapabilityFeat, "Feat %q not defined. Please add it.", c.addWarning)
		if seen[f.Name] {
			continue
		}
		seen[f.Name] = true
		feats = append(feats, f)
	}
	c.feats = rulebook.SortByName(feats)
}

func (c *Character) Feats() []*rulebook.Feat {
	return c.feats
}

func (c *Character) FeatsText() []string {
	out := make([]string, 0, len(c.feats))
	for _, f := range c.feats {
		out = append(out, f.DisplayName())
	}
	return out
}

// HasFeat matches any spelling of the feat's name or key
func (c *Character) HasFeat(name string) bool {
	want := rulebook.NormalizeName(name)
	for _, f := range c.feats {
		if rulebook.NormalizeName(f.Name) == want || rulebook.NormalizeName(f.Key) == want {
			return true
		}
	}
	return false
}

// checkFeatPrerequisites warns about feats the character does not qualify
// for. It runs once every attribute is applied, since scores may come after
// the feat list.
func (c *Character) checkFeatPrerequisites() {
	for _, f := range c.feats {
		p := f.Prerequisite
		if p.Spellcasting && !c.IsSpellcaster() {
			c.warnf("%s requires the ability to cast at least one spell", f.Name)
		}
		if p.Score > 0 && c.Score(p.Ability) < p.Score {
			c.warnf("%s requires %s %d or higher", f.Name, p.Ability, p.Score)
		}
	}
}

func (c *Character) featBonus(bonus func(f *rulebook.Feat) int) int {
	total := 0
	for _, f := range c.feats {
		total += bonus(f)
	}
	return total
}
