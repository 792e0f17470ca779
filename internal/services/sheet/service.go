package sheet

//go:generate mockgen -destination=mock/mock_service.go -package=mocksheet -source=service.go

import (
	"context"
	"log"

	"github.com/KirkDiggler/dnd-sheets/internal/domain/character"
	"github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook/dnd5e/calculators"
	"github.com/KirkDiggler/dnd-sheets/internal/domain/sheet"
	dnderr "github.com/KirkDiggler/dnd-sheets/internal/errors"
	"github.com/KirkDiggler/dnd-sheets/internal/repositories/sheets"
)

// Service stores character descriptions and composes characters from them
type Service interface {
	// Build composes a character without storing anything
	Build(desc character.Description) (*character.Character, error)

	// Save validates desc by building it and stores it for ownerID
	Save(ctx context.Context, ownerID string, desc character.Description) (*SaveResult, error)

	// Replace overwrites the description of a sheet ownerID owns
	Replace(ctx context.Context, ownerID, id string, desc character.Description) (*SaveResult, error)

	// Render loads a stored sheet and composes its character
	Render(ctx context.Context, id string) (*SaveResult, error)

	ListByOwner(ctx context.Context, ownerID string) ([]*sheet.Sheet, error)

	// Delete removes a sheet ownerID owns
	Delete(ctx context.Context, ownerID, id string) error
}

// SaveResult pairs a stored sheet with the character it describes
type SaveResult struct {
	Sheet     *sheet.Sheet
	Character *character.Character
}

type service struct {
	repository   sheets.Repository
	library      *rulebook.Library
	acCalculator character.ACCalculator
}

type ServiceConfig struct {
	Repository sheets.Repository // Required
	// Library defaults to the built-in content
	Library *rulebook.Library
	// ACCalculator defaults to the D&D 5e rules
	ACCalculator character.ACCalculator
}

func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("sheet repository is required")
	}

	svc := &service{
		repository:   cfg.Repository,
		library:      cfg.Library,
		acCalculator: cfg.ACCalculator,
	}
	if svc.library == nil {
		svc.library = character.DefaultLibrary()
	}
	if svc.acCalculator == nil {
		svc.acCalculator = calculators.NewDnD5eACCalculator()
	}

	return svc
}

func (s *service) Build(desc character.Description) (*character.Character, error) {
	return s.build("", desc)
}

func (s *service) build(id string, desc character.Description) (*character.Character, error) {
	if desc == nil {
		return nil, dnderr.InvalidArgument("description is required")
	}

	char, err := character.New(desc,
		character.WithLibrary(s.library),
		character.WithACCalculator(s.acCalculator),
		character.WithWarner(func(msg string) {
			if id != "" {
				log.Printf("WARNING: sheet %s: %s", id, msg)
				return
			}
			log.Printf("WARNING: %s", msg)
		}),
	)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to build character")
	}

	return char, nil
}

func (s *service) Save(ctx context.Context, ownerID string, desc character.Description) (*SaveResult, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	char, err := s.build("", desc)
	if err != nil {
		return nil, err
	}

	sh := sheet.New(ownerID, desc)
	if err := s.repository.Create(ctx, sh); err != nil {
		return nil, dnderr.Wrap(err, "failed to save sheet")
	}

	log.Printf("Saved sheet %s (%s) for %s", sh.ID, char.ClassesAndLevels(), ownerID)

	return &SaveResult{Sheet: sh, Character: char}, nil
}

func (s *service) Replace(ctx context.Context, ownerID, id string, desc character.Description) (*SaveResult, error) {
	existing, err := s.owned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	char, err := s.build(id, desc)
	if err != nil {
		return nil, err
	}

	existing.Description = desc
	existing.Name = sheet.NameOf(desc)
	if err := s.repository.Update(ctx, existing); err != nil {
		return nil, dnderr.Wrap(err, "failed to update sheet")
	}

	return &SaveResult{Sheet: existing, Character: char}, nil
}

func (s *service) Render(ctx context.Context, id string) (*SaveResult, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("sheet ID is required")
	}

	sh, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to get sheet")
	}

	char, err := s.build(id, sh.Description)
	if err != nil {
		return nil, dnderr.Wrapf(err, "stored sheet %s no longer builds", id)
	}

	return &SaveResult{Sheet: sh, Character: char}, nil
}

func (s *service) ListByOwner(ctx context.Context, ownerID string) ([]*sheet.Sheet, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	list, err := s.repository.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list sheets")
	}

	return list, nil
}

func (s *service) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := s.owned(ctx, ownerID, id); err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return dnderr.Wrap(err, "failed to delete sheet")
	}

	return nil
}

// owned loads a sheet and checks it belongs to ownerID. Another owner's
// sheet reports as not found.
func (s *service) owned(ctx context.Context, ownerID, id string) (*sheet.Sheet, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}
	if id == "" {
		return nil, dnderr.InvalidArgument("sheet ID is required")
	}

	sh, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to get sheet")
	}
	if sh.OwnerID != ownerID {
		return nil, dnderr.NotFoundf("sheet with ID '%s' not found", id).
			WithMeta("sheet_id", id)
	}

	return sh, nil
}
