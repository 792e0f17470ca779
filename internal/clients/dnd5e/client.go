package dnd5e

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-sheets/internal/errors"
)

const (
	categoryWeapon = "weapon"
	categoryArmor  = "armor"

	// maxConcurrentFetches bounds detail requests per list call
	maxConcurrentFetches = 8
)

// api is the part of the dnd5e-api client this package uses
type api interface {
	ListSpells(input *dnd5e.ListSpellsInput) ([]*apiEntities.ReferenceItem, error)
	GetSpell(key string) (*apiEntities.Spell, error)
	GetEquipmentCategory(key string) (*apiEntities.EquipmentCategory, error)
	GetEquipment(key string) (dnd5e.EquipmentInterface, error)
	GetClassLevel(key string, level int) (*apiEntities.Level, error)
}

type client struct {
	client api
}

type Config struct {
	HttpClient *http.Client
	// BaseURL defaults to the library's public endpoint when empty
	BaseURL string
	// CacheTTL wraps the API client in a response cache when positive
	CacheTTL time.Duration
}

func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("cfg is required")
	}

	httpClient := cfg.HttpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	base, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create dnd5e api client")
	}

	var apiClient api = base
	if cfg.CacheTTL > 0 {
		apiClient = dnd5e.NewCachedClient(base, cfg.CacheTTL)
	}

	return &client{client: apiClient}, nil
}

func (c *client) ListSpells(ctx context.Context) ([]*rulebook.Spell, error) {
	refs, err := c.client.ListSpells(&dnd5e.ListSpellsInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list spells")
	}

	spells := make([]*rulebook.Spell, len(refs))
	err = fetchAll(ctx, refs, func(i int, ref *apiEntities.ReferenceItem) error {
		spell, err := c.client.GetSpell(ref.Key)
		if err != nil {
			return errors.Wrapf(err, "failed to get spell %s", ref.Key)
		}
		spells[i] = apiSpellToSpell(spell)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return compact(spells), nil
}

func (c *client) ListWeapons(ctx context.Context) ([]*rulebook.Weapon, error) {
	items, err := c.listCategory(ctx, categoryWeapon)
	if err != nil {
		return nil, err
	}

	weapons := make([]*rulebook.Weapon, 0, len(items))
	for _, item := range items {
		if w, ok := item.(*apiEntities.Weapon); ok {
			weapons = append(weapons, apiWeaponToWeapon(w))
		}
	}
	return weapons, nil
}

func (c *client) ListArmor(ctx context.Context) ([]*rulebook.Armor, []*rulebook.Shield, error) {
	items, err := c.listCategory(ctx, categoryArmor)
	if err != nil {
		return nil, nil, err
	}

	var armor []*rulebook.Armor
	var shields []*rulebook.Shield
	for _, item := range items {
		a, ok := item.(*apiEntities.Armor)
		if !ok {
			continue
		}
		if strings.EqualFold(a.ArmorCategory, "shield") {
			shields = append(shields, apiArmorToShield(a))
			continue
		}
		armor = append(armor, apiArmorToArmor(a))
	}
	return armor, shields, nil
}

func (c *client) ListClassFeatures(_ context.Context, classKey string, level int) ([]*rulebook.Feature, error) {
	if classKey == "" {
		return nil, errors.InvalidArgument("classKey is required")
	}
	if level < 1 || level > 20 {
		return nil, errors.InvalidArgumentf("level %d is out of range", level)
	}

	classLevel, err := c.client.GetClassLevel(classKey, level)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get %s level %d", classKey, level)
	}
	if classLevel == nil {
		return nil, nil
	}

	features := make([]*rulebook.Feature, 0, len(classLevel.Features))
	for _, ref := range classLevel.Features {
		if ref == nil || ref.Key == "" {
			continue
		}
		features = append(features, apiReferenceToFeature(ref, level))
	}
	return features, nil
}

// listCategory fetches every item of an equipment category. Items that fail
// to load are logged and skipped so one bad document does not sink an import.
func (c *client) listCategory(ctx context.Context, category string) ([]dnd5e.EquipmentInterface, error) {
	cat, err := c.client.GetEquipmentCategory(category)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get equipment category %s", category)
	}
	if cat == nil {
		return nil, nil
	}

	items := make([]dnd5e.EquipmentInterface, len(cat.Equipment))
	err = fetchAll(ctx, cat.Equipment, func(i int, ref *apiEntities.ReferenceItem) error {
		item, err := c.client.GetEquipment(ref.Key)
		if err != nil {
			log.Printf("Failed to get equipment %s: %v", ref.Key, err)
			return nil
		}
		items[i] = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	return compact(items), nil
}

// fetchAll runs fetch for every non-empty reference with bounded concurrency
func fetchAll(ctx context.Context, refs []*apiEntities.ReferenceItem, fetch func(int, *apiEntities.ReferenceItem) error) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	for i, ref := range refs {
		if ref == nil || ref.Key == "" {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fetch(i, ref)
		})
	}

	return g.Wait()
}

func compact[T comparable](items []T) []T {
	var zero T
	out := items[:0]
	for _, item := range items {
		if item != zero {
			out = append(out, item)
		}
	}
	return out
}
