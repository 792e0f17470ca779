package rulebook

type Race struct {
	Mechanic

	Size  string `json:"size,omitempty"`
	Speed int    `json:"speed"`
	// AbilityBonuses are informational; descriptions carry final scores
	AbilityBonuses map[Ability]int `json:"ability_bonuses,omitempty"`

	WeaponProficiencies []*Weapon `json:"-"`
	SkillProficiencies  []Skill   `json:"skill_proficiencies,omitempty"`
	ProficienciesText   []string  `json:"proficiencies_text,omitempty"`
	Languages           string    `json:"languages,omitempty"`

	Features []*Feature `json:"-"`
	// FeaturesByLevel holds features gained at a character level (Aasimar at 3)
	FeaturesByLevel map[int][]*Feature `json:"-"`

	SpellsKnown    []*Spell `json:"-"`
	SpellsPrepared []*Spell `json:"-"`
}

// FeaturesAt returns the race features of a character of the given total level
func (r *Race) FeaturesAt(level int) []*Feature {
	out := append([]*Feature(nil), r.Features...)
	for lvl := 1; lvl <= level; lvl++ {
		out = append(out, r.FeaturesByLevel[lvl]...)
	}
	return out
}

type Background struct {
	Mechanic

	SkillProficiencies  []Skill   `json:"skill_proficiencies,omitempty"`
	WeaponProficiencies []*Weapon `json:"-"`
	ProficienciesText   []string  `json:"proficiencies_text,omitempty"`
	Languages           string    `json:"languages,omitempty"`

	Features []*Feature `json:"-"`
}
