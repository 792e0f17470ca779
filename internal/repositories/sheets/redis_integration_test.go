//go:build integration
// +build integration

package sheets_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-sheets/internal/domain/character"
	dnderr "github.com/KirkDiggler/dnd-sheets/internal/errors"
	"github.com/KirkDiggler/dnd-sheets/internal/repositories/sheets"
	"github.com/KirkDiggler/dnd-sheets/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.StartRedisContainer(t)

	repo := sheets.NewRedisRepository(&sheets.RedisRepoConfig{
		Client: client,
	})

	ctx := context.Background()

	t.Run("create and rebuild character", func(t *testing.T) {
		s := testutils.CreateTestSheet("", "user-123", "Brom")
		require.NoError(t, repo.Create(ctx, s))
		require.NotEmpty(t, s.ID)

		retrieved, err := repo.Get(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, "Brom", retrieved.Name)

		// numbers come back from JSON as float64 and still build the same character
		original, err := s.Build(testutils.Quiet())
		require.NoError(t, err)
		rebuilt, err := retrieved.Build(testutils.Quiet())
		require.NoError(t, err)

		assert.Equal(t, original.ClassesAndLevels(), rebuilt.ClassesAndLevels())
		assert.Equal(t, original.HPMax, rebuilt.HPMax)
		assert.Equal(t, original.ArmorClass(), rebuilt.ArmorClass())
		assert.Equal(t, original.FeaturesText(), rebuilt.FeaturesText())
	})

	t.Run("list, update and delete by owner", func(t *testing.T) {
		a := testutils.CreateTestSheet("list-a", "user-456", "Zora")
		b := testutils.CreateTestSheet("list-b", "user-456", "Arlo")
		require.NoError(t, repo.Create(ctx, a))
		require.NoError(t, repo.Create(ctx, b))

		list, err := repo.ListByOwner(ctx, "user-456")
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Arlo", list[0].Name)

		b.Description = character.Description{"name": "Arlo", "classes": "Bard", "levels": 4}
		require.NoError(t, repo.Update(ctx, b))
		updated, err := repo.Get(ctx, "list-b")
		require.NoError(t, err)
		assert.Equal(t, "Bard", updated.Description["classes"])

		require.NoError(t, repo.Delete(ctx, "list-a"))
		_, err = repo.Get(ctx, "list-a")
		assert.True(t, dnderr.IsNotFound(err))

		list, err = repo.ListByOwner(ctx, "user-456")
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}
