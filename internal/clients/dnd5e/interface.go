package dnd5e

//go:generate mockgen -destination=mock/mock_client.go -package=mockdnd5e . Client

import (
	"context"

	"github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"
)

// Client reads SRD content from dnd5eapi.co in the catalog's types
type Client interface {
	ListSpells(ctx context.Context) ([]*rulebook.Spell, error)
	ListWeapons(ctx context.Context) ([]*rulebook.Weapon, error)
	// ListArmor returns body armor and shields, which the API files under one category
	ListArmor(ctx context.Context) ([]*rulebook.Armor, []*rulebook.Shield, error)
	ListClassFeatures(ctx context.Context, classKey string, level int) ([]*rulebook.Feature, error)
}
