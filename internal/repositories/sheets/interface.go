package sheets

//go:generate mockgen -destination=mock/mock.go -package=mocksheets -source=interface.go

import (
	"context"
	"time"

	"github.com/KirkDiggler/dnd-sheets/internal/domain/sheet"
)

// Repository persists character descriptions
type Repository interface {
	// Create assigns an ID when the sheet has none and stores it
	Create(ctx context.Context, s *sheet.Sheet) error

	Get(ctx context.Context, id string) (*sheet.Sheet, error)

	// ListByOwner returns the owner's sheets ordered by name
	ListByOwner(ctx context.Context, ownerID string) ([]*sheet.Sheet, error)

	Update(ctx context.Context, s *sheet.Sheet) error

	Delete(ctx context.Context, id string) error
}

type TimeProvider interface {
	Now() time.Time
}

type realTime struct{}

func (realTime) Now() time.Time {
	return time.Now().UTC()
}
