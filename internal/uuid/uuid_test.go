package uuid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoogleUUIDGenerator(t *testing.T) {
	gen := NewGoogleUUIDGenerator()

	first := gen.New()
	second := gen.New()

	assert.True(t, IsValid(first))
	assert.True(t, IsValid(second))
	assert.NotEqual(t, first, second)
	assert.False(t, IsValid("not-a-uuid"))
}
