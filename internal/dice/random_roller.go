package dice

import (
	"math/rand/v2"

	dnderr "github.com/KirkDiggler/dnd-sheets/internal/errors"
)

type randomRoller struct{}

// NewRandomRoller creates a new random dice roller
func NewRandomRoller() Roller {
	return &randomRoller{}
}

func (r *randomRoller) Roll(count, sides int) ([]int, error) {
	if count < 1 {
		return nil, dnderr.InvalidArgument("invalid dice count")
	}
	if sides < 1 {
		return nil, dnderr.InvalidArgument("invalid dice size")
	}

	out := make([]int, count)
	for i := range out {
		out[i] = rand.IntN(sides) + 1
	}
	return out, nil
}
