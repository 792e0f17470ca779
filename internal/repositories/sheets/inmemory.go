package sheets

import (
	"context"
	"sync"

	"github.com/KirkDiggler/dnd-sheets/internal/domain/sheet"
	dnderr "github.com/KirkDiggler/dnd-sheets/internal/errors"
	"github.com/KirkDiggler/dnd-sheets/internal/uuid"
)

// InMemoryRepository keeps sheets in a map. Used by the CLI and in tests.
type InMemoryRepository struct {
	mu            sync.RWMutex
	sheets        map[string]*sheet.Sheet
	uuidGenerator uuid.Generator
	timeProvider  TimeProvider
}

func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		sheets:        make(map[string]*sheet.Sheet),
		uuidGenerator: uuid.NewGoogleUUIDGenerator(),
		timeProvider:  realTime{},
	}
}

func (r *InMemoryRepository) Create(_ context.Context, s *sheet.Sheet) error {
	if s == nil {
		return dnderr.InvalidArgument("sheet cannot be nil")
	}
	if s.OwnerID == "" {
		return dnderr.InvalidArgument("sheet owner ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if s.ID == "" {
		s.ID = r.uuidGenerator.New()
	}
	if _, exists := r.sheets[s.ID]; exists {
		return dnderr.AlreadyExistsf("sheet with ID '%s' already exists", s.ID).
			WithMeta("sheet_id", s.ID)
	}

	now := r.timeProvider.Now()
	s.CreatedAt = now
	s.UpdatedAt = now
	r.sheets[s.ID] = copySheet(s)

	return nil
}

func (r *InMemoryRepository) Get(_ context.Context, id string) (*sheet.Sheet, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("sheet ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	s, exists := r.sheets[id]
	if !exists {
		return nil, dnderr.NotFoundf("sheet with ID '%s' not found", id).
			WithMeta("sheet_id", id)
	}

	return copySheet(s), nil
}

func (r *InMemoryRepository) ListByOwner(_ context.Context, ownerID string) ([]*sheet.Sheet, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*sheet.Sheet
	for _, s := range r.sheets {
		if s.OwnerID == ownerID {
			result = append(result, copySheet(s))
		}
	}

	sortByName(result)
	return result, nil
}

func (r *InMemoryRepository) Update(_ context.Context, s *sheet.Sheet) error {
	if s == nil {
		return dnderr.InvalidArgument("sheet cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.sheets[s.ID]
	if !exists {
		return dnderr.NotFoundf("sheet with ID '%s' not found", s.ID).
			WithMeta("sheet_id", s.ID)
	}
	if existing.OwnerID != s.OwnerID {
		return dnderr.InvalidArgumentf("sheet %s belongs to another owner", s.ID).
			WithMeta("sheet_id", s.ID)
	}

	s.CreatedAt = existing.CreatedAt
	s.UpdatedAt = r.timeProvider.Now()
	r.sheets[s.ID] = copySheet(s)

	return nil
}

func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sheets[id]; !exists {
		return dnderr.NotFoundf("sheet with ID '%s' not found", id).
			WithMeta("sheet_id", id)
	}
	delete(r.sheets, id)

	return nil
}

// copySheet copies the sheet and the top level of its description
func copySheet(s *sheet.Sheet) *sheet.Sheet {
	out := *s
	if s.Description != nil {
		out.Description = s.Description.Clone()
	}
	return &out
}
