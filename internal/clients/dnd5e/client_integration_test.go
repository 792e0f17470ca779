//go:build integration
// +build integration

package dnd5e_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-sheets/internal/clients/dnd5e"
)

func TestClient_Integration(t *testing.T) {
	// This test requires network access to the D&D 5e API
	client, err := dnd5e.New(&dnd5e.Config{
		HttpClient: http.DefaultClient,
		CacheTTL:   time.Hour,
	})
	require.NoError(t, err)

	ctx := context.Background()

	weapons, err := client.ListWeapons(ctx)
	require.NoError(t, err)
	assert.Greater(t, len(weapons), 30, "API should have every PHB weapon")

	armor, shields, err := client.ListArmor(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, armor)
	assert.Len(t, shields, 1)

	features, err := client.ListClassFeatures(ctx, "fighter", 2)
	require.NoError(t, err)
	assert.NotEmpty(t, features)
}
