// Package app wires configuration into a service provider for the binaries.
package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dnd-sheets/internal/clients/dnd5e"
	"github.com/KirkDiggler/dnd-sheets/internal/config"
	"github.com/KirkDiggler/dnd-sheets/internal/repositories/sheets"
	"github.com/KirkDiggler/dnd-sheets/internal/services"
	catalogService "github.com/KirkDiggler/dnd-sheets/internal/services/catalog"
)

const redisPingTimeout = 5 * time.Second

// App owns the provider and the connections behind it
type App struct {
	Provider *services.Provider
	// ImportResult is nil unless the catalog was imported at startup
	ImportResult *catalogService.ImportResult

	redisClient redis.UniversalClient
}

// Options tweak New beyond what the environment configures
type Options struct {
	// Import overrides cfg.DND5E.Import when set
	Import *bool
	// ImportFeatures also pulls class features, twenty requests per class
	ImportFeatures bool
	// RequireRedis fails instead of falling back to memory
	RequireRedis bool
}

// New connects to Redis when configured, falling back to in-memory storage,
// and imports SRD content when asked to
func New(ctx context.Context, cfg *config.Config, opts *Options) (*App, error) {
	if opts == nil {
		opts = &Options{}
	}

	dndClient, err := dnd5e.New(&dnd5e.Config{
		HttpClient: &http.Client{Timeout: 30 * time.Second},
		BaseURL:    cfg.DND5E.BaseURL,
		CacheTTL:   cfg.DND5E.CacheTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create D&D 5e client: %w", err)
	}

	a := &App{}
	providerConfig := &services.ProviderConfig{DNDClient: dndClient}

	if cfg.Redis.Enabled() {
		client, err := Connect(ctx, cfg.Redis)
		switch {
		case err == nil:
			a.redisClient = client
			providerConfig.SheetRepository = sheets.NewRedisRepository(&sheets.RedisRepoConfig{Client: client})
			log.Println("Using Redis for persistence")
		case opts.RequireRedis:
			return nil, err
		default:
			log.Printf("Failed to connect to Redis: %v", err)
			log.Println("Falling back to in-memory repositories")
		}
	} else {
		if opts.RequireRedis {
			return nil, fmt.Errorf("REDIS_URL or REDIS_ADDR is required")
		}
		log.Println("No Redis configured, using in-memory repositories")
	}

	a.Provider = services.NewProvider(providerConfig)

	doImport := cfg.DND5E.Import
	if opts.Import != nil {
		doImport = *opts.Import
	}
	if doImport {
		result, err := a.Provider.CatalogService.Import(ctx, a.Provider.Library, &catalogService.ImportInput{
			Features: opts.ImportFeatures,
		})
		if err != nil {
			// Built-in content still works without the import
			log.Printf("WARNING: catalog import failed: %v", err)
		} else {
			a.ImportResult = result
			log.Println(ImportSummary(result))
		}
	}

	return a, nil
}

// Connect opens a Redis client from cfg and pings it
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	var opts *redis.Options
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", opts.Addr, err)
	}

	return client, nil
}

// ImportSummary describes an import in one line
func ImportSummary(r *catalogService.ImportResult) string {
	if r == nil {
		return ""
	}
	return fmt.Sprintf("Imported %d SRD entries (%d spells, %d weapons, %d armor, %d shields, %d features), %d already known",
		r.Total(), r.Spells, r.Weapons, r.Armor, r.Shields, r.Features, r.Skipped)
}

// Close releases the Redis connection, if any
func (a *App) Close() error {
	if a.redisClient == nil {
		return nil
	}
	if err := a.redisClient.Close(); err != nil {
		return fmt.Errorf("error closing Redis connection: %w", err)
	}
	log.Println("Closed Redis connection")
	return nil
}
