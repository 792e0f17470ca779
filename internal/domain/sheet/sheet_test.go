package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-sheets/internal/domain/character"
)

func TestNew_TakesNameFromDescription(t *testing.T) {
	s := New("user-1", character.Description{"name": "Vex", "classes": "Rogue"})
	assert.Equal(t, "Vex", s.Name)
	assert.Equal(t, "user-1", s.OwnerID)

	assert.Equal(t, "Unnamed", New("user-1", character.Description{}).Name)
	assert.Equal(t, "Unnamed", New("user-1", character.Description{"name": 7}).Name)
}

func TestBuild(t *testing.T) {
	s := New("user-1", character.Description{"name": "Vex", "classes": "Rogue", "levels": 3})

	c, err := s.Build(character.WithWarner(func(string) {}))
	require.NoError(t, err)
	assert.Equal(t, "Rogue 3", c.ClassesAndLevels())
	assert.Equal(t, "Vex", c.Name)
}
