// Package rulebook defines the game-rule objects a character sheet is composed of,
// the name-keyed catalogs that hold them and the resolver that turns loose
// references into catalog entries.
package rulebook

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capability names the category a mechanic is resolved as
type Capability string

const (
	CapabilityClass      Capability = "character class"
	CapabilitySubclass   Capability = "subclass"
	CapabilityRace       Capability = "race"
	CapabilityBackground Capability = "background"
	CapabilityFeature    Capability = "feature"
	CapabilitySpell      Capability = "spell"
	CapabilityWeapon     Capability = "weapon"
	CapabilityArmor      Capability = "armor"
	CapabilityShield     Capability = "shield"
	CapabilityMagicItem  Capability = "magic item"
	CapabilityInfusion   Capability = "infusion"
	CapabilityFeat       Capability = "feat"
)

// SourceUnknown marks a placeholder synthesized for a name missing from its catalog
const SourceUnknown = "Unknown"

// Mechanic is the header shared by every rule object. Two mechanics with the
// same Name are the same mechanic as far as aggregation is concerned.
type Mechanic struct {
	Key         string     `json:"key"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Source      string     `json:"source,omitempty"`
	Capability  Capability `json:"capability"`
}

// Header exposes the shared header of any embedding type
func (m *Mechanic) Header() *Mechanic {
	return m
}

// IsUnknown reports whether this is a synthesized placeholder
func (m *Mechanic) IsUnknown() bool {
	return m.Source == SourceUnknown
}

// DisplayName is the name as printed on a sheet; placeholders get a "**" marker
func (m *Mechanic) DisplayName() string {
	if m.IsUnknown() {
		return m.Name + "**"
	}
	return m.Name
}

func (m *Mechanic) String() string {
	return m.Name
}

// Entry is implemented by every catalog type through the embedded Mechanic
type Entry interface {
	Header() *Mechanic
}

// WarnFunc receives non-fatal content warnings
type WarnFunc func(msg string)

// Unknown builds the placeholder header for a reference no catalog knows about
func Unknown(raw string, capability Capability) Mechanic {
	name := TitleName(raw)
	return Mechanic{
		Key:         Slug(name),
		Name:        name,
		Description: fmt.Sprintf("%s not defined. Please add it.", name),
		Source:      SourceUnknown,
		Capability:  capability,
	}
}

// NormalizeName folds a reference to its catalog key: lower case with every
// rune that is not a letter or digit dropped, so "Mage Hand", "mage_hand" and
// "MageHand" are the same name.
func NormalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.TrimSpace(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// TitleName renders a raw reference as a human-readable name: "hocus_pocus" becomes "Hocus Pocus"
func TitleName(raw string) string {
	spaced := strings.Join(strings.Fields(nameSeparators.Replace(raw)), " ")
	// a Caser carries state, so one is made per call
	return cases.Title(language.English).String(spaced)
}

var (
	nameSeparators = strings.NewReplacer("_", " ", "-", " ")
	slugPattern    = regexp.MustCompile(`[^a-z0-9-]+`)
	dashesPattern  = regexp.MustCompile(`-+`)
)

// Slug creates a URL-safe key from a display name, the same shape dnd5eapi.co uses for indexes
func Slug(s string) string {
	slug := strings.ToLower(s)
	slug = strings.ReplaceAll(slug, "'", "")
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = slugPattern.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	return dashesPattern.ReplaceAllString(slug, "-")
}

// SortByName orders mechanics by name in place and returns the slice for chaining
func SortByName[T Entry](items []T) []T {
	sortEntries(items)
	return items
}

// Names lists the names of items in order
func Names[T Entry](items []T) []string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Header().Name
	}
	return names
}
