package dice_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dnd-sheets/internal/dice"
	mockdice "github.com/KirkDiggler/dnd-sheets/internal/dice/mock"
	"github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"
	dnderr "github.com/KirkDiggler/dnd-sheets/internal/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    dice.Expression
		average int
		str     string
	}{
		{"1d8", dice.Expression{Count: 1, Sides: 8}, 4, "1d8"},
		{"2d6+3", dice.Expression{Count: 2, Sides: 6, Bonus: 3}, 10, "2d6+3"},
		{"1d4 - 1", dice.Expression{Count: 1, Sides: 4, Bonus: -1}, 1, "1d4-1"},
		{"d12", dice.Expression{Count: 1, Sides: 12}, 6, "1d12"},
		{"1", dice.Expression{Bonus: 1}, 1, "1"},
		{"2D10", dice.Expression{Count: 2, Sides: 10}, 11, "2d10"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := dice.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
			assert.Equal(t, tt.average, got.Average())
			assert.Equal(t, tt.str, got.String())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, input := range []string{"", "abc", "1d", "0d6", "2d0", "1d6+x", "1d6d6"} {
		_, err := dice.Parse(input)
		assert.True(t, dnderr.IsInvalidArgument(err), input)
	}
}

func TestExpression_PlusAndMax(t *testing.T) {
	e, err := dice.Parse("1d8")
	require.NoError(t, err)

	plus := e.Plus(3)
	assert.Equal(t, "1d8+3", plus.String())
	assert.Equal(t, 11, plus.Max())
	assert.Equal(t, "1d8", e.String(), "Plus copies")
}

func TestExpression_Roll(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := mockdice.NewMockRoller(ctrl)

	roller.EXPECT().Roll(2, 6).Return([]int{4, 5}, nil)

	e, err := dice.Parse("2d6+3")
	require.NoError(t, err)

	result, err := e.Roll(roller)
	require.NoError(t, err)
	assert.Equal(t, 12, result.Total)
	assert.Equal(t, "**12** : [4,5]", result.String())

	roller.EXPECT().Roll(2, 6).Return(nil, errors.New("out of dice"))
	_, err = e.Roll(roller)
	assert.Error(t, err)
}

func TestRollAbilityScore_DropsLowest(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := mockdice.NewMockRoller(ctrl)

	roller.EXPECT().Roll(4, 6).Return([]int{3, 6, 1, 5}, nil)

	roll, err := dice.RollAbilityScore(roller)
	require.NoError(t, err)
	assert.Equal(t, 14, roll.Score)
	assert.Equal(t, 1, roll.Dropped)
}

func TestRollAbilityScores(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := mockdice.NewMockRoller(ctrl)

	roller.EXPECT().Roll(4, 6).Return([]int{6, 6, 6, 1}, nil).Times(len(rulebook.Abilities))

	scores, err := dice.RollAbilityScores(roller)
	require.NoError(t, err)
	require.Len(t, scores, 6)
	assert.Equal(t, 18, scores[rulebook.AbilityCharisma].Score)
}

func TestRandomRoller(t *testing.T) {
	r := dice.NewRandomRoller()

	rolls, err := r.Roll(50, 6)
	require.NoError(t, err)
	require.Len(t, rolls, 50)
	for _, v := range rolls {
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 6)
	}

	_, err = r.Roll(0, 6)
	assert.Error(t, err)
	_, err = r.Roll(1, 0)
	assert.Error(t, err)
}

func TestRollResult_String(t *testing.T) {
	assert.Equal(t, "**23** : [12,11]", (&dice.RollResult{Total: 23, Rolls: []int{12, 11}}).String())
	assert.Equal(t, "**7** : [1,1,5]", (&dice.RollResult{Total: 7, Rolls: []int{1, 1, 5}}).String())
	assert.Equal(t, "**3** : []", (&dice.RollResult{Total: 3, Bonus: 3}).String())
}
