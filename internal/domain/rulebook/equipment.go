package rulebook

const (
	WeaponCategorySimple  = "Simple"
	WeaponCategoryMartial = "Martial"

	WeaponRangeMelee  = "Melee"
	WeaponRangeRanged = "Ranged"

	// Category pseudo-weapons granted as a proficiency
	SimpleWeapons  = "Simple Weapons"
	MartialWeapons = "Martial Weapons"
)

type Weapon struct {
	Mechanic

	WeaponCategory string   `json:"weapon_category,omitempty"`
	WeaponRange    string   `json:"weapon_range,omitempty"`
	Damage         string   `json:"damage,omitempty"`
	DamageType     string   `json:"damage_type,omitempty"`
	Properties     []string `json:"properties,omitempty"`
	// Range is the normal range in feet of a ranged or thrown weapon
	Range int `json:"range,omitempty"`
	// IsCategory marks "Simple Weapons" and "Martial Weapons" proficiency entries
	IsCategory bool `json:"is_category,omitempty"`
}

func (w *Weapon) IsRanged() bool {
	return w.WeaponRange == WeaponRangeRanged
}

func (w *Weapon) IsMelee() bool {
	return w.WeaponRange == WeaponRangeMelee
}

func (w *Weapon) IsSimple() bool {
	return w.WeaponCategory == WeaponCategorySimple
}

func (w *Weapon) IsMartial() bool {
	return w.WeaponCategory == WeaponCategoryMartial
}

// HasProperty checks the weapon for a property such as "finesse", ignoring case and spacing
func (w *Weapon) HasProperty(prop string) bool {
	for _, p := range w.Properties {
		if NormalizeName(p) == NormalizeName(prop) {
			return true
		}
	}
	return false
}

// CoveredBy reports whether proficiency in prof includes this weapon, by name or by category
func (w *Weapon) CoveredBy(prof *Weapon) bool {
	if prof == nil {
		return false
	}
	if prof.Name == w.Name {
		return true
	}
	if !prof.IsCategory {
		return false
	}
	return (prof.Name == SimpleWeapons && w.IsSimple()) || (prof.Name == MartialWeapons && w.IsMartial())
}

type ArmorCategory string

const (
	ArmorCategoryLight  ArmorCategory = "light"
	ArmorCategoryMedium ArmorCategory = "medium"
	ArmorCategoryHeavy  ArmorCategory = "heavy"
)

type Armor struct {
	Mechanic

	ArmorCategory  ArmorCategory `json:"armor_category,omitempty"`
	BaseArmorClass int           `json:"base_armor_class"`
	DexBonus       bool          `json:"dex_bonus"`
	// MaxDexBonus caps the dexterity modifier; zero means no cap
	MaxDexBonus         int  `json:"max_dex_bonus,omitempty"`
	StrengthMin         int  `json:"str_minimum,omitempty"`
	StealthDisadvantage bool `json:"stealth_disadvantage,omitempty"`
}

// ArmorClassWith returns the armor's AC for a wearer with the given dexterity modifier
func (a *Armor) ArmorClassWith(dexMod int) int {
	ac := a.BaseArmorClass
	if !a.DexBonus {
		return ac
	}
	if a.MaxDexBonus > 0 && dexMod > a.MaxDexBonus {
		dexMod = a.MaxDexBonus
	}
	return ac + dexMod
}

type Shield struct {
	Mechanic

	ArmorBonus int `json:"armor_bonus"`
}
