//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-sheets/internal/config"
	"github.com/KirkDiggler/dnd-sheets/internal/testutils"
)

func TestNew_WithRedisContainer(t *testing.T) {
	addr := testutils.StartRedisContainerAddr(t)
	ctx := context.Background()

	cfg := &config.Config{Redis: config.RedisConfig{Addr: addr, DB: 14}}
	a, err := New(ctx, cfg, &Options{RequireRedis: true})
	require.NoError(t, err)
	defer func() { assert.NoError(t, a.Close()) }()

	saved, err := a.Provider.SheetService.Save(ctx, "user-1", testutils.CreateTestDescription("Brom"))
	require.NoError(t, err)

	rendered, err := a.Provider.SheetService.Render(ctx, saved.Sheet.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fighter 3 / Wizard 2", rendered.Character.ClassesAndLevels())
}
