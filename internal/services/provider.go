package services

import (
	"github.com/KirkDiggler/dnd-sheets/internal/clients/dnd5e"
	"github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook"
	content "github.com/KirkDiggler/dnd-sheets/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/dnd-sheets/internal/repositories/sheets"
	catalogService "github.com/KirkDiggler/dnd-sheets/internal/services/catalog"
	sheetService "github.com/KirkDiggler/dnd-sheets/internal/services/sheet"
)

// Provider holds all service instances
type Provider struct {
	SheetService sheetService.Service
	// CatalogService is nil when no DND client was configured
	CatalogService catalogService.Service
	// Library is the content every sheet is built against
	Library *rulebook.Library
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	DNDClient       dnd5e.Client
	SheetRepository sheets.Repository
	// Library defaults to a fresh copy of the built-in content so imports
	// never touch the package default
	Library *rulebook.Library
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	sheetRepo := cfg.SheetRepository
	if sheetRepo == nil {
		sheetRepo = sheets.NewInMemoryRepository()
	}

	lib := cfg.Library
	if lib == nil {
		lib = content.NewLibrary()
	}

	p := &Provider{
		Library: lib,
		SheetService: sheetService.NewService(&sheetService.ServiceConfig{
			Repository: sheetRepo,
			Library:    lib,
		}),
	}

	if cfg.DNDClient != nil {
		p.CatalogService = catalogService.NewService(&catalogService.ServiceConfig{
			DNDClient: cfg.DNDClient,
		})
	}

	return p
}
