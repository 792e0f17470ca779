// Package sheet holds a stored character description and who it belongs to.
// Only the raw description is persisted; the character is rebuilt from it on
// every read so catalog changes show up on old sheets.
package sheet

import (
	"time"

	"github.com/KirkDiggler/dnd-sheets/internal/domain/character"
)

type Sheet struct {
	ID      string
	OwnerID string
	// Name is copied from the description for listings
	Name        string
	Description character.Description
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// New wraps a description for ownerID, taking the display name from it
func New(ownerID string, desc character.Description) *Sheet {
	return &Sheet{
		OwnerID:     ownerID,
		Name:        NameOf(desc),
		Description: desc,
	}
}

// Build composes the character the description describes
func (s *Sheet) Build(opts ...character.Option) (*character.Character, error) {
	return character.New(s.Description, opts...)
}

// UnnamedSheet names a sheet whose description has no name
const UnnamedSheet = "Unnamed"

// NameOf reads the character name out of a description
func NameOf(desc character.Description) string {
	if name, ok := desc["name"].(string); ok && name != "" {
		return name
	}
	return UnnamedSheet
}
