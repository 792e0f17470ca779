package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockdnd5e "github.com/KirkDiggler/dnd-sheets/internal/clients/dnd5e/mock"
	"github.com/KirkDiggler/dnd-sheets/internal/domain/character"
	"github.com/KirkDiggler/dnd-sheets/internal/services"
)

func TestNewProvider_Defaults(t *testing.T) {
	p := services.NewProvider(&services.ProviderConfig{})

	require.NotNil(t, p.SheetService)
	assert.Nil(t, p.CatalogService)
	assert.NotSame(t, character.DefaultLibrary(), p.Library)

	result, err := p.SheetService.Save(context.Background(), "user-1", character.Description{"classes": "Cleric"})
	require.NoError(t, err)
	assert.Equal(t, "Cleric 1", result.Character.ClassesAndLevels())
}

func TestNewProvider_WithClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := services.NewProvider(&services.ProviderConfig{DNDClient: mockdnd5e.NewMockClient(ctrl)})

	assert.NotNil(t, p.CatalogService)
}
