// Package dnd5e holds the built-in 5th edition content: classes, subclasses,
// races, backgrounds, feats, spells, weapons, armor, magic items and infusions.
package dnd5e

import (
	"fmt"

	"github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"
)

const (
	SourcePHB = "PHB"
	SourceXGE = "XGE"
	SourceTCE = "TCE"
	SourceVGM = "VGM"
	SourceDMG = "DMG"
)

// NewLibrary builds a library filled with the built-in content. Every call
// returns fresh catalogs, so callers may extend the result (for example with
// content imported from dnd5eapi.co) without affecting other libraries.
func NewLibrary() *rulebook.Library {
	b := &builder{lib: rulebook.NewLibrary()}

	// order matters: classes and races reference weapons, spells and features
	b.addWeapons()
	b.addArmor()
	b.addItems()
	b.addSpells()
	b.addFightingStyles()
	b.addClasses()
	b.addRaces()
	b.addBackgrounds()
	b.addFeats()

	return b.lib
}

type builder struct {
	lib *rulebook.Library
}

// mustGet looks up built-in entries that other built-in entries reference.
// A miss is a bug in this package.
func mustGet[T rulebook.Entry](c *rulebook.Catalog[T], names ...string) []T {
	out := make([]T, 0, len(names))
	for _, name := range names {
		entry, ok := c.Lookup(name)
		if !ok {
			panic(fmt.Sprintf("dnd5e: %s %q is not in the built-in catalog", c.Capability(), name))
		}
		out = append(out, entry)
	}
	return out
}

func (b *builder) weapons(names ...string) []*rulebook.Weapon {
	return mustGet(b.lib.Weapons, names...)
}

func (b *builder) spells(names ...string) []*rulebook.Spell {
	return mustGet(b.lib.Spells, names...)
}

func mechanic(name, source, description string) rulebook.Mechanic {
	return rulebook.Mechanic{
		Key:         rulebook.Slug(name),
		Name:        name,
		Description: description,
		Source:      source,
	}
}

// feature creates a feature and registers it by name unless another feature
// already took that name ("Extra Attack" is shared by several classes)
func (b *builder) feature(name, source, description string) *rulebook.Feature {
	f := &rulebook.Feature{Mechanic: mechanic(name, source, description)}
	if _, taken := b.lib.Features.Lookup(name); !taken {
		b.lib.Features.Add(f)
	}
	return f
}

// phb is shorthand for a Player's Handbook feature
func (b *builder) phb(name, description string) *rulebook.Feature {
	return b.feature(name, SourcePHB, description)
}
