package rulebook

// MagicItem is a wondrous item, magic armor, weapon or similar
type MagicItem struct {
	Mechanic

	Rarity             string `json:"rarity,omitempty"`
	RequiresAttunement bool   `json:"requires_attunement,omitempty"`
	// ACBonus is added to armor class while the item is carried (Ring of Protection)
	ACBonus int `json:"ac_bonus,omitempty"`
	// SaveBonus is added to every saving throw
	SaveBonus int `json:"save_bonus,omitempty"`
}

// Infusion is an Artificer infusion
type Infusion struct {
	Mechanic

	ItemRequirement string `json:"item_requirement,omitempty"`
	// Prerequisite is the artificer level needed, zero when there is none
	Prerequisite int `json:"prerequisite,omitempty"`
}
