package dice

import (
	"slices"

	"github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"
)

// AbilityRoll is one 4d6 drop lowest roll
type AbilityRoll struct {
	Score   int
	Rolls   []int
	Dropped int
}

// RollAbilityScore rolls 4d6 and drops the lowest die
func RollAbilityScore(r Roller) (*AbilityRoll, error) {
	rolls, err := r.Roll(4, 6)
	if err != nil {
		return nil, err
	}

	lowest := slices.Min(rolls)
	total := -lowest
	for _, v := range rolls {
		total += v
	}

	return &AbilityRoll{Score: total, Rolls: rolls, Dropped: lowest}, nil
}

// RollAbilityScores rolls one score per ability, in sheet order
func RollAbilityScores(r Roller) (map[rulebook.Ability]*AbilityRoll, error) {
	scores := make(map[rulebook.Ability]*AbilityRoll, len(rulebook.Abilities))
	for _, ability := range rulebook.Abilities {
		roll, err := RollAbilityScore(r)
		if err != nil {
			return nil, err
		}
		scores[ability] = roll
	}
	return scores, nil
}
