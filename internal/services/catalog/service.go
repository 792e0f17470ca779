// Package catalog fills a rulebook library with SRD content from the D&D 5e API.
// Curated entries always win: imported content only adds names the library
// does not know yet.
package catalog

//go:generate mockgen -destination=mock/mock_service.go -package=mockcatalog -source=service.go

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/dnd-sheets/internal/clients/dnd5e"
	"github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"
	dnderr "github.com/KirkDiggler/dnd-sheets/internal/errors"
)

const maxClassLevel = 20

type Service interface {
	// Import adds API content missing from lib and reports what was added
	Import(ctx context.Context, lib *rulebook.Library, input *ImportInput) (*ImportResult, error)
}

type ImportInput struct {
	// Features also pulls class features for every class in the library
	Features bool
}

// ImportResult counts the entries added per catalog
type ImportResult struct {
	Spells   int
	Weapons  int
	Armor    int
	Shields  int
	Features int
	// Skipped counts API entries whose name the library already had
	Skipped int
}

// Total is the number of entries added across every catalog
func (r *ImportResult) Total() int {
	return r.Spells + r.Weapons + r.Armor + r.Shields + r.Features
}

type service struct {
	dndClient dnd5e.Client
}

type ServiceConfig struct {
	DNDClient dnd5e.Client // Required
}

func NewService(cfg *ServiceConfig) Service {
	if cfg.DNDClient == nil {
		panic("DND client is required")
	}

	return &service{dndClient: cfg.DNDClient}
}

func (s *service) Import(ctx context.Context, lib *rulebook.Library, input *ImportInput) (*ImportResult, error) {
	if lib == nil {
		return nil, dnderr.InvalidArgument("library is required")
	}
	if input == nil {
		input = &ImportInput{}
	}

	var (
		spells   []*rulebook.Spell
		weapons  []*rulebook.Weapon
		armor    []*rulebook.Armor
		shields  []*rulebook.Shield
		features [][]*rulebook.Feature
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		spells, err = s.dndClient.ListSpells(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		weapons, err = s.dndClient.ListWeapons(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		armor, shields, err = s.dndClient.ListArmor(ctx)
		return err
	})

	if input.Features {
		classes := lib.Classes.All()
		features = make([][]*rulebook.Feature, len(classes)*maxClassLevel)
		for i, class := range classes {
			for level := 1; level <= maxClassLevel; level++ {
				slot := i*maxClassLevel + level - 1
				g.Go(func() error {
					found, err := s.dndClient.ListClassFeatures(ctx, class.Key, level)
					if err != nil {
						// homebrew classes are not in the API
						log.Printf("Skipping %s level %d features: %v", class.Name, level, err)
						return nil
					}
					features[slot] = found
					return nil
				})
			}
		}
	}

	if err := g.Wait(); err != nil {
		return nil, dnderr.Wrap(err, "failed to import catalog")
	}

	result := &ImportResult{}
	result.Spells = addMissing(lib.Spells, spells, &result.Skipped)
	result.Weapons = addMissing(lib.Weapons, weapons, &result.Skipped)
	result.Armor = addMissing(lib.Armor, armor, &result.Skipped)
	result.Shields = addMissing(lib.Shields, shields, &result.Skipped)
	for _, found := range features {
		result.Features += addMissing(lib.Features, found, &result.Skipped)
	}

	log.Printf("Imported %d catalog entries (%d already known)", result.Total(), result.Skipped)

	return result, nil
}

// addMissing adds the entries whose name the catalog does not resolve yet
func addMissing[T rulebook.Entry](c *rulebook.Catalog[T], entries []T, skipped *int) int {
	added := 0
	for _, entry := range entries {
		h := entry.Header()
		if _, ok := c.Lookup(h.Name); ok {
			*skipped++
			continue
		}
		c.Add(entry)
		added++
	}
	return added
}
