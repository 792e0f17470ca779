package calculators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-sheets/internal/domain/character"
	"github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook/dnd5e/calculators"
)

func TestDnD5eACCalculator_Calculate(t *testing.T) {
	calculator := calculators.NewDnD5eACCalculator()

	tests := []struct {
		name     string
		desc     character.Description
		expected int
	}{
		{
			name:     "base AC with no equipment",
			desc:     character.Description{"classes": "Wizard"},
			expected: 10,
		},
		{
			name:     "base AC with DEX bonus",
			desc:     character.Description{"classes": "Wizard", "dexterity": 16},
			expected: 13,
		},
		{
			name:     "leather armor with DEX bonus",
			desc:     character.Description{"classes": "Rogue", "dexterity": 14, "armor": "Leather"},
			expected: 13, // 11 base + 2 DEX
		},
		{
			name:     "medium armor caps DEX",
			desc:     character.Description{"classes": "Ranger", "dexterity": 18, "armor": "Half Plate"},
			expected: 17,
		},
		{
			name:     "heavy armor ignores DEX",
			desc:     character.Description{"classes": "Paladin", "dexterity": 8, "armor": "Chain Mail"},
			expected: 16,
		},
		{
			name:     "shield adds 2",
			desc:     character.Description{"classes": "Cleric", "armor": "Chain Mail", "shield": "Shield"},
			expected: 18,
		},
		{
			name:     "monk unarmored defense",
			desc:     character.Description{"classes": "Monk", "dexterity": 16, "wisdom": 14},
			expected: 15, // 10 + 3 DEX + 2 WIS
		},
		{
			name:     "monk loses unarmored defense with a shield",
			desc:     character.Description{"classes": "Monk", "dexterity": 16, "wisdom": 14, "shield": "Shield"},
			expected: 15, // 10 + 3 DEX + 2 shield
		},
		{
			name:     "barbarian unarmored defense keeps the shield",
			desc:     character.Description{"classes": "Barbarian", "dexterity": 14, "constitution": 16, "shield": "Shield"},
			expected: 17, // 10 + 2 DEX + 3 CON + 2 shield
		},
		{
			name: "barbarian monk takes the better formula",
			desc: character.Description{
				"classes":      []string{"Barbarian", "Monk"},
				"levels":       []int{1, 1},
				"dexterity":    14,
				"constitution": 12,
				"wisdom":       18,
			},
			expected: 16,
		},
		{
			name:     "armor replaces unarmored defense",
			desc:     character.Description{"classes": "Barbarian", "dexterity": 14, "constitution": 18, "armor": "Hide"},
			expected: 14,
		},
		{
			name: "defense fighting style while armored",
			desc: character.Description{
				"classes":         "Fighter",
				"feature_choices": "Defense",
				"armor":           "Chain Mail",
			},
			expected: 17,
		},
		{
			name:     "defense fighting style needs armor",
			desc:     character.Description{"classes": "Fighter", "feature_choices": "Defense", "dexterity": 12},
			expected: 11,
		},
		{
			name:     "magic items stack",
			desc:     character.Description{"classes": "Sorcerer", "magic_items": []string{"Ring of Protection", "Cloak of Protection"}},
			expected: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			char, err := character.New(tt.desc, character.WithWarner(func(string) {}))
			require.NoError(t, err)

			assert.Equal(t, tt.expected, calculator.Calculate(char))
		})
	}
}

func TestDnD5eACCalculator_NilCharacter(t *testing.T) {
	assert.Equal(t, 10, calculators.NewDnD5eACCalculator().Calculate(nil))
}

func TestDnD5eACCalculator_InjectedIntoCharacter(t *testing.T) {
	char, err := character.New(
		character.Description{"classes": "Monk", "dexterity": 16, "wisdom": 16},
		character.WithACCalculator(calculators.NewDnD5eACCalculator()),
		character.WithWarner(func(string) {}),
	)
	require.NoError(t, err)

	assert.Equal(t, 16, char.ArmorClass())
	assert.Equal(t, 13, char.EquipmentArmorClass())
}
