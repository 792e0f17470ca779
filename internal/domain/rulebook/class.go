package rulebook

// CasterType groups classes by how their levels count toward multiclass spellcasting
type CasterType string

const (
	CasterNone CasterType = ""
	// CasterFull counts every class level
	CasterFull CasterType = "full"
	// CasterHalf counts half the class level, rounded down
	CasterHalf CasterType = "half"
	// CasterThird counts a third of the class level, rounded down
	CasterThird CasterType = "third"
	// CasterHalfRoundedUp counts half the class level, rounded up (Artificer)
	CasterHalfRoundedUp CasterType = "half_rounded_up"
	// CasterPact keeps its own slot pool outside the multiclass table (Warlock)
	CasterPact CasterType = "pact"
)

// MaxLevel is the highest class or character level the tables cover
const MaxLevel = 20

// SlotTable maps a class level (row 0 is level 1) to cantrips known followed by
// slots for spell levels 1 through 9
type SlotTable [MaxLevel][10]int

// Slots returns the entry for a class level and spell level, zero when either is out of range
func (t *SlotTable) Slots(classLevel, spellLevel int) int {
	if t == nil || classLevel < 1 || spellLevel < 0 || spellLevel > 9 {
		return 0
	}
	if classLevel > MaxLevel {
		classLevel = MaxLevel
	}
	return t[classLevel-1][spellLevel]
}

// Class is the static definition of a character class
type Class struct {
	Mechanic

	HitDiceFaces   int       `json:"hit_dice_faces"`
	PrimaryAbility string    `json:"primary_ability"`
	SavingThrows   []Ability `json:"saving_throws"`

	// Spellcasting; Caster stays CasterNone for classes that only cast through a subclass
	Caster              CasterType `json:"caster,omitempty"`
	SpellcastingAbility Ability    `json:"spellcasting_ability,omitempty"`
	SpellSlots          *SlotTable `json:"-"`

	WeaponProficiencies           []*Weapon `json:"-"`
	MulticlassWeaponProficiencies []*Weapon `json:"-"`
	ProficienciesText             []string  `json:"proficiencies_text"`
	MulticlassProficienciesText   []string  `json:"multiclass_proficiencies_text"`

	// FeaturesByLevel lists the features gained at each class level
	FeaturesByLevel map[int][]*Feature `json:"-"`

	Subclasses *Catalog[*Subclass] `json:"-"`
}

// SubclassCatalog returns the class's subclass catalog, creating an empty one on first use
func (c *Class) SubclassCatalog() *Catalog[*Subclass] {
	if c.Subclasses == nil {
		c.Subclasses = NewSubclassCatalog()
	}
	return c.Subclasses
}

// NewSubclassCatalog creates an empty catalog of subclasses
func NewSubclassCatalog() *Catalog[*Subclass] {
	return NewCatalog(CapabilitySubclass, func(m Mechanic) *Subclass { return &Subclass{Mechanic: m} })
}

// Subclass is the static definition of an archetype, domain, circle, patron and so on
type Subclass struct {
	Mechanic

	// A subclass can turn a non-casting class into a caster (Eldritch Knight, Arcane Trickster)
	Caster              CasterType `json:"caster,omitempty"`
	SpellcastingAbility Ability    `json:"spellcasting_ability,omitempty"`
	SpellSlots          *SlotTable `json:"-"`

	WeaponProficiencies []*Weapon `json:"-"`
	ProficienciesText   []string  `json:"proficiencies_text,omitempty"`

	FeaturesByLevel map[int][]*Feature `json:"-"`
	// Spells granted at a class level; prepared spells are always prepared (domain spells)
	SpellsKnownByLevel    map[int][]*Spell `json:"-"`
	SpellsPreparedByLevel map[int][]*Spell `json:"-"`
}
