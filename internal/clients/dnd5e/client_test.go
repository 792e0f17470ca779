package dnd5e

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"
	dnderr "github.com/KirkDiggler/dnd-sheets/internal/errors"
)

// fakeAPI serves canned documents; detail calls may run concurrently
type fakeAPI struct {
	mu         sync.Mutex
	spells     map[string]*apiEntities.Spell
	categories map[string]*apiEntities.EquipmentCategory
	equipment  map[string]dnd5e.EquipmentInterface
	levels     map[string]*apiEntities.Level
	calls      []string
}

func (f *fakeAPI) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeAPI) ListSpells(_ *dnd5e.ListSpellsInput) ([]*apiEntities.ReferenceItem, error) {
	f.record("ListSpells")
	var refs []*apiEntities.ReferenceItem
	for key, spell := range f.spells {
		refs = append(refs, &apiEntities.ReferenceItem{Key: key, Name: spell.Name})
	}
	return refs, nil
}

func (f *fakeAPI) GetSpell(key string) (*apiEntities.Spell, error) {
	f.record("GetSpell " + key)
	spell, ok := f.spells[key]
	if !ok {
		return nil, errors.New("not found")
	}
	return spell, nil
}

func (f *fakeAPI) GetEquipmentCategory(key string) (*apiEntities.EquipmentCategory, error) {
	f.record("GetEquipmentCategory " + key)
	cat, ok := f.categories[key]
	if !ok {
		return nil, errors.New("not found")
	}
	return cat, nil
}

func (f *fakeAPI) GetEquipment(key string) (dnd5e.EquipmentInterface, error) {
	f.record("GetEquipment " + key)
	item, ok := f.equipment[key]
	if !ok {
		return nil, errors.New("not found")
	}
	return item, nil
}

func (f *fakeAPI) GetClassLevel(key string, level int) (*apiEntities.Level, error) {
	f.record("GetClassLevel " + key)
	l, ok := f.levels[key]
	if !ok {
		return nil, errors.New("not found")
	}
	return l, nil
}

func refs(keys ...string) []*apiEntities.ReferenceItem {
	out := make([]*apiEntities.ReferenceItem, len(keys))
	for i, key := range keys {
		out[i] = &apiEntities.ReferenceItem{Key: key, Name: key}
	}
	return out
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		spells: map[string]*apiEntities.Spell{
			"fireball": {
				Key:           "fireball",
				Name:          "Fireball",
				SpellLevel:    3,
				CastingTime:   "1 action",
				Range:         "150 feet",
				Duration:      "Instantaneous",
				SpellSchool:   &apiEntities.ReferenceItem{Key: "evocation", Name: "Evocation"},
				SpellClasses:  []*apiEntities.ReferenceItem{{Key: "sorcerer", Name: "Sorcerer"}, {Key: "wizard", Name: "Wizard"}},
				Concentration: false,
			},
		},
		categories: map[string]*apiEntities.EquipmentCategory{
			"weapon": {Equipment: refs("rapier", "broken-thing")},
			"armor":  {Equipment: refs("breastplate", "shield", "rapier")},
		},
		equipment: map[string]dnd5e.EquipmentInterface{
			"rapier": &apiEntities.Weapon{
				Key:            "rapier",
				Name:           "Rapier",
				WeaponCategory: "Martial",
				WeaponRange:    "Melee",
				Damage:         &apiEntities.Damage{DamageDice: "1d8", DamageType: &apiEntities.ReferenceItem{Name: "Piercing"}},
				Properties:     []*apiEntities.ReferenceItem{{Key: "finesse", Name: "Finesse"}},
			},
			"breastplate": &apiEntities.Armor{
				Key:           "breastplate",
				Name:          "Breastplate",
				ArmorCategory: "Medium",
				ArmorClass:    &apiEntities.ArmorClass{Base: 14, DexBonus: true},
			},
			"shield": &apiEntities.Armor{
				Key:           "shield",
				Name:          "Shield",
				ArmorCategory: "Shield",
				ArmorClass:    &apiEntities.ArmorClass{Base: 2},
			},
		},
		levels: map[string]*apiEntities.Level{
			"fighter": {Features: refs("action-surge-1-use", "")},
		},
	}
}

func TestClient_ListSpells(t *testing.T) {
	c := &client{client: newFakeAPI()}

	spells, err := c.ListSpells(context.Background())
	require.NoError(t, err)
	require.Len(t, spells, 1)

	fireball := spells[0]
	assert.Equal(t, "Fireball", fireball.Name)
	assert.Equal(t, "fireball", fireball.Key)
	assert.Equal(t, 3, fireball.Level)
	assert.Equal(t, "Evocation", fireball.School)
	assert.Equal(t, []string{"Sorcerer", "Wizard"}, fireball.Classes)
	assert.Equal(t, SourceSRD, fireball.Source)
	assert.Equal(t, rulebook.CapabilitySpell, fireball.Capability)
}

func TestClient_ListSpells_DetailErrorFails(t *testing.T) {
	api := newFakeAPI()
	api.spells["ghost"] = &apiEntities.Spell{Name: "Ghost"}
	c := &client{client: &missingSpellAPI{fakeAPI: api, missing: "ghost"}}

	_, err := c.ListSpells(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

type missingSpellAPI struct {
	*fakeAPI
	missing string
}

func (m *missingSpellAPI) GetSpell(key string) (*apiEntities.Spell, error) {
	if key == m.missing {
		return nil, errors.New("boom")
	}
	return m.fakeAPI.GetSpell(key)
}

func TestClient_ListWeapons_SkipsBrokenItems(t *testing.T) {
	c := &client{client: newFakeAPI()}

	weapons, err := c.ListWeapons(context.Background())
	require.NoError(t, err)
	require.Len(t, weapons, 1)

	rapier := weapons[0]
	assert.Equal(t, "Rapier", rapier.Name)
	assert.True(t, rapier.IsMartial())
	assert.True(t, rapier.IsMelee())
	assert.True(t, rapier.HasProperty("finesse"))
	assert.Equal(t, "1d8", rapier.Damage)
	assert.Equal(t, "piercing", rapier.DamageType)
}

func TestClient_ListArmor_SplitsShields(t *testing.T) {
	c := &client{client: newFakeAPI()}

	armor, shields, err := c.ListArmor(context.Background())
	require.NoError(t, err)

	require.Len(t, armor, 1)
	assert.Equal(t, "Breastplate", armor[0].Name)
	assert.Equal(t, rulebook.ArmorCategoryMedium, armor[0].ArmorCategory)
	assert.Equal(t, 16, armor[0].ArmorClassWith(4), "medium armor caps dexterity at 2")

	require.Len(t, shields, 1)
	assert.Equal(t, 2, shields[0].ArmorBonus)
}

func TestClient_ListClassFeatures(t *testing.T) {
	c := &client{client: newFakeAPI()}

	features, err := c.ListClassFeatures(context.Background(), "fighter", 2)
	require.NoError(t, err)
	require.Len(t, features, 1)
	assert.Equal(t, "action-surge-1-use", features[0].Key)
	assert.Equal(t, 2, features[0].Level)

	_, err = c.ListClassFeatures(context.Background(), "", 1)
	assert.True(t, dnderr.IsInvalidArgument(err))

	_, err = c.ListClassFeatures(context.Background(), "fighter", 21)
	assert.True(t, dnderr.IsInvalidArgument(err))

	_, err = c.ListClassFeatures(context.Background(), "artificer", 1)
	assert.Error(t, err)
}

func TestClient_CanceledContext(t *testing.T) {
	c := &client{client: newFakeAPI()}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListSpells(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew_RequiresConfig(t *testing.T) {
	_, err := New(nil)
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestTitleWord(t *testing.T) {
	assert.Equal(t, "Martial", titleWord("MARTIAL"))
	assert.Equal(t, "Ranged", titleWord(" ranged "))
	assert.Equal(t, "", titleWord(""))
}
