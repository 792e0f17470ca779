package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_PreservesCode(t *testing.T) {
	base := UnknownClassf("class was not recognized: %s", "Pirate").WithMeta("class", "Pirate")

	wrapped := Wrapf(base, "failed to build %s", "Jack")

	assert.Equal(t, CodeUnknownClass, GetCode(wrapped))
	assert.True(t, IsUnknownClass(wrapped))
	assert.True(t, IsStructural(wrapped))
	assert.Equal(t, "Pirate", GetMeta(wrapped)["class"])
	assert.Equal(t, "failed to build Jack: class was not recognized: Pirate", wrapped.Error())
}

func TestWrap_ForeignError(t *testing.T) {
	wrapped := Wrap(fmt.Errorf("boom"), "redis")

	assert.Equal(t, CodeUnknown, GetCode(wrapped))
	assert.False(t, IsStructural(wrapped))
	assert.Nil(t, Wrap(nil, "nothing"))
}

func TestIsStructural(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "length mismatch", err: LengthMismatchf("3 != 2"), want: true},
		{name: "invalid type", err: InvalidTypef("hp_max"), want: true},
		{name: "negative level", err: NegativeLevelf("-1"), want: true},
		{name: "not found", err: NotFoundf("sheet %s", "x"), want: false},
		{name: "plain", err: fmt.Errorf("plain"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStructural(tt.err))
		})
	}
}
