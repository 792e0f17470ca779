package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dnd-sheets/internal/clients/dnd5e"
	mockdnd5e "github.com/KirkDiggler/dnd-sheets/internal/clients/dnd5e/mock"
	"github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"
	dnd5elib "github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/dnd-sheets/internal/services/catalog"
)

func srd(name string, capability rulebook.Capability) rulebook.Mechanic {
	return rulebook.Mechanic{Key: rulebook.Slug(name), Name: name, Source: dnd5e.SourceSRD, Capability: capability}
}

func TestImport_AddsOnlyMissingEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockdnd5e.NewMockClient(ctrl)
	svc := catalog.NewService(&catalog.ServiceConfig{DNDClient: client})

	lib := dnd5elib.NewLibrary()
	curatedFireball, ok := lib.Spells.Lookup("Fireball")
	require.True(t, ok)

	client.EXPECT().ListSpells(gomock.Any()).Return([]*rulebook.Spell{
		{Mechanic: srd("Fireball", rulebook.CapabilitySpell), Level: 3},
		{Mechanic: srd("Tasha's Hideous Laughter", rulebook.CapabilitySpell), Level: 1},
	}, nil)
	client.EXPECT().ListWeapons(gomock.Any()).Return([]*rulebook.Weapon{
		{Mechanic: srd("Net", rulebook.CapabilityWeapon), WeaponCategory: rulebook.WeaponCategoryMartial},
	}, nil)
	client.EXPECT().ListArmor(gomock.Any()).Return(
		[]*rulebook.Armor{{Mechanic: srd("Breastplate", rulebook.CapabilityArmor), BaseArmorClass: 14}},
		[]*rulebook.Shield{{Mechanic: srd("Shield", rulebook.CapabilityShield), ArmorBonus: 2}},
		nil,
	)

	result, err := svc.Import(context.Background(), lib, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Spells)
	assert.Equal(t, 4, result.Skipped)
	assert.Equal(t, 1, result.Total())

	fireball, _ := lib.Spells.Lookup("fireball")
	assert.Same(t, curatedFireball, fireball, "curated entries win")

	laughter, ok := lib.Spells.Lookup("tashas_hideous_laughter")
	require.True(t, ok)
	assert.Equal(t, dnd5e.SourceSRD, laughter.Source)
}

func TestImport_ClassFeatures(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockdnd5e.NewMockClient(ctrl)
	svc := catalog.NewService(&catalog.ServiceConfig{DNDClient: client})

	lib := rulebook.NewLibrary()
	lib.Classes.Add(&rulebook.Class{Mechanic: rulebook.Mechanic{Key: "fighter", Name: "Fighter"}, HitDiceFaces: 10})

	client.EXPECT().ListSpells(gomock.Any()).Return(nil, nil)
	client.EXPECT().ListWeapons(gomock.Any()).Return(nil, nil)
	client.EXPECT().ListArmor(gomock.Any()).Return(nil, nil, nil)
	client.EXPECT().ListClassFeatures(gomock.Any(), "fighter", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, level int) ([]*rulebook.Feature, error) {
			switch level {
			case 2:
				return []*rulebook.Feature{{Mechanic: srd("Action Surge (1 use)", rulebook.CapabilityFeature), Level: 2}}, nil
			case 3:
				return nil, errors.New("unavailable")
			}
			return nil, nil
		}).Times(20)

	result, err := svc.Import(context.Background(), lib, &catalog.ImportInput{Features: true})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Features)

	surge, ok := lib.Features.Lookup("Action Surge (1 use)")
	require.True(t, ok)
	assert.Equal(t, 2, surge.Level)
}

func TestImport_ListErrorFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockdnd5e.NewMockClient(ctrl)
	svc := catalog.NewService(&catalog.ServiceConfig{DNDClient: client})

	lib := rulebook.NewLibrary()

	client.EXPECT().ListSpells(gomock.Any()).Return(nil, errors.New("api down"))
	client.EXPECT().ListWeapons(gomock.Any()).Return(nil, nil).AnyTimes()
	client.EXPECT().ListArmor(gomock.Any()).Return(nil, nil, nil).AnyTimes()

	_, err := svc.Import(context.Background(), lib, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api down")
	assert.Zero(t, lib.Spells.Len())
}

func TestImport_RequiresLibrary(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := catalog.NewService(&catalog.ServiceConfig{DNDClient: mockdnd5e.NewMockClient(ctrl)})

	_, err := svc.Import(context.Background(), nil, nil)
	assert.Error(t, err)
}

func TestNewService_PanicsWithoutClient(t *testing.T) {
	assert.Panics(t, func() {
		catalog.NewService(&catalog.ServiceConfig{})
	})
}
