package rulebook

import "sort"

// Catalog is a name-keyed collection of canonical definitions of one category.
// Entries are shared and must be treated as read-only; anything a character
// changes lives on the character, never on a catalog entry.
type Catalog[T Entry] struct {
	capability  Capability
	entries     map[string]T
	placeholder func(Mechanic) T
}

// NewCatalog creates an empty catalog. placeholder wraps the header of an
// unknown reference into this catalog's concrete type.
func NewCatalog[T Entry](capability Capability, placeholder func(Mechanic) T) *Catalog[T] {
	return &Catalog[T]{
		capability:  capability,
		entries:     make(map[string]T),
		placeholder: placeholder,
	}
}

// Capability returns the category this catalog resolves
func (c *Catalog[T]) Capability() Capability {
	return c.capability
}

// Add registers entries under their normalized name and key. A later entry
// with the same name replaces the earlier one.
func (c *Catalog[T]) Add(entries ...T) {
	for _, entry := range entries {
		h := entry.Header()
		if h.Capability == "" {
			h.Capability = c.capability
		}
		c.entries[NormalizeName(h.Name)] = entry
		if h.Key != "" {
			if _, taken := c.entries[NormalizeName(h.Key)]; !taken {
				c.entries[NormalizeName(h.Key)] = entry
			}
		}
	}
}

// Alias makes alias resolve to the entry registered as name. It is a no-op when name is unknown.
func (c *Catalog[T]) Alias(alias, name string) {
	if entry, ok := c.entries[NormalizeName(name)]; ok {
		c.entries[NormalizeName(alias)] = entry
	}
}

// Lookup finds an entry by any spelling that normalizes to its name, key or an alias
func (c *Catalog[T]) Lookup(name string) (T, bool) {
	entry, ok := c.entries[NormalizeName(name)]
	return entry, ok
}

// Placeholder synthesizes the unknown variant for raw
func (c *Catalog[T]) Placeholder(raw string) T {
	return c.placeholder(Unknown(raw, c.capability))
}

// All returns each distinct entry once, sorted by name
func (c *Catalog[T]) All() []T {
	seen := make(map[*Mechanic]bool, len(c.entries))
	out := make([]T, 0, len(c.entries))
	for _, entry := range c.entries {
		if seen[entry.Header()] {
			continue
		}
		seen[entry.Header()] = true
		out = append(out, entry)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Header().Name < out[j].Header().Name
	})
	return out
}

// Len returns the number of distinct entries
func (c *Catalog[T]) Len() int {
	return len(c.All())
}

// Library bundles one catalog per content category
type Library struct {
	Classes     *Catalog[*Class]
	Races       *Catalog[*Race]
	Backgrounds *Catalog[*Background]
	Features    *Catalog[*Feature]
	Spells      *Catalog[*Spell]
	Weapons     *Catalog[*Weapon]
	Armor       *Catalog[*Armor]
	Shields     *Catalog[*Shield]
	MagicItems  *Catalog[*MagicItem]
	Infusions   *Catalog[*Infusion]
	Feats       *Catalog[*Feat]
}

// NewLibrary creates a library of empty catalogs
func NewLibrary() *Library {
	return &Library{
		Classes:     NewCatalog(CapabilityClass, func(m Mechanic) *Class { return &Class{Mechanic: m, HitDiceFaces: 8} }),
		Races:       NewCatalog(CapabilityRace, func(m Mechanic) *Race { return &Race{Mechanic: m, Speed: 30} }),
		Backgrounds: NewCatalog(CapabilityBackground, func(m Mechanic) *Background { return &Background{Mechanic: m} }),
		Features:    NewCatalog(CapabilityFeature, func(m Mechanic) *Feature { return &Feature{Mechanic: m} }),
		Spells:      NewCatalog(CapabilitySpell, func(m Mechanic) *Spell { return &Spell{Mechanic: m} }),
		Weapons:     NewCatalog(CapabilityWeapon, func(m Mechanic) *Weapon { return &Weapon{Mechanic: m} }),
		Armor:       NewCatalog(CapabilityArmor, func(m Mechanic) *Armor { return &Armor{Mechanic: m, BaseArmorClass: 10, DexBonus: true} }),
		Shields:     NewCatalog(CapabilityShield, func(m Mechanic) *Shield { return &Shield{Mechanic: m, ArmorBonus: 2} }),
		MagicItems:  NewCatalog(CapabilityMagicItem, func(m Mechanic) *MagicItem { return &MagicItem{Mechanic: m} }),
		Infusions:   NewCatalog(CapabilityInfusion, func(m Mechanic) *Infusion { return &Infusion{Mechanic: m} }),
		Feats:       NewCatalog(CapabilityFeat, func(m Mechanic) *Feat { return &Feat{Mechanic: m} }),
	}
}

// NoRace is the race of a character whose description names none
func NoRace() *Race {
	return &Race{Speed: 30, Mechanic: Mechanic{Capability: CapabilityRace}}
}

// NoBackground is the background of a character whose description names none
func NoBackground() *Background {
	return &Background{Mechanic: Mechanic{Capability: CapabilityBackground}}
}
