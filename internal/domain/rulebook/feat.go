package rulebook

// Feat is an optional character feat. Only the passive numbers a sheet shows
// are modelled; everything else lives in the description.
type Feat struct {
	Mechanic

	Prerequisite Prerequisite `json:"prerequisite,omitempty"`

	// HPPerLevel is added to maximum hit points for every character level (Tough)
	HPPerLevel      int `json:"hp_per_level,omitempty"`
	InitiativeBonus int `json:"initiative_bonus,omitempty"`
	SpeedBonus      int `json:"speed_bonus,omitempty"`
	// PassiveBonus is added to passive perception (Observant)
	PassiveBonus int `json:"passive_bonus,omitempty"`
}

// Prerequisite is what a character needs before taking a feat
type Prerequisite struct {
	Ability Ability `json:"ability,omitempty"`
	Score   int     `json:"score,omitempty"`
	// Spellcasting requires the ability to cast at least one spell
	Spellcasting bool `json:"spellcasting,omitempty"`
}

// IsZero reports whether the feat can be taken by anyone
func (p Prerequisite) IsZero() bool {
	return p.Score == 0 && !p.Spellcasting
}
