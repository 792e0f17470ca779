package testutils

import (
	"github.com/KirkDiggler/dnd-sheets/internal/domain/character"
	"github.com/KirkDiggler/dnd-sheets/internal/domain/sheet"
)

// CreateTestDescription returns a multiclass description touching most attributes
func CreateTestDescription(name string) character.Description {
	return character.Description{
		"name":                name,
		"player_name":         "Tester",
		"classes":             []any{"Fighter", "Wizard"},
		"levels":              []any{3, 2},
		"subclasses":          []any{"Champion", nil},
		"feature_choices":     []any{"Defense"},
		"race":                "Hill Dwarf",
		"background":          "Soldier",
		"strength":            16,
		"dexterity":           12,
		"constitution":        14,
		"intelligence":        15,
		"wisdom":              10,
		"charisma":            8,
		"weapons":             []any{"Battleaxe", "Light Crossbow"},
		"armor":               "Chain Mail",
		"shield":              "Shield",
		"spells":              []any{"Magic Missile", "Shield", "Fire Bolt"},
		"magic_items":         []any{"Ring of Protection"},
		"skill_proficiencies": []any{"athletics", "intimidation"},
	}
}

// CreateTestSheet wraps CreateTestDescription for ownerID
func CreateTestSheet(id, ownerID, name string) *sheet.Sheet {
	s := sheet.New(ownerID, CreateTestDescription(name))
	s.ID = id
	return s
}

// Quiet drops character warnings in tests that do not assert on them
func Quiet() character.Option {
	return character.WithWarner(func(string) {})
}
