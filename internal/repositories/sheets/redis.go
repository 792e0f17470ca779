package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/dnd-sheets/internal/domain/character"
	"github.com/KirkDiggler/dnd-sheets/internal/domain/sheet"
	dnderr "github.com/KirkDiggler/dnd-sheets/internal/errors"
	"github.com/KirkDiggler/dnd-sheets/internal/uuid"
)

// Data is the stored form of a sheet
type Data struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"owner_id"`
	Name        string          `json:"name"`
	Description json.RawMessage `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
	timeProvider  TimeProvider
}

type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
	TimeProvider  TimeProvider
}

func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	repo := &redisRepo{
		client:        cfg.Client,
		uuidGenerator: cfg.UUIDGenerator,
		timeProvider:  cfg.TimeProvider,
	}
	if repo.uuidGenerator == nil {
		repo.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if repo.timeProvider == nil {
		repo.timeProvider = realTime{}
	}

	return repo
}

func sheetKey(id string) string {
	return fmt.Sprintf("sheet:%s", id)
}

func ownerSheetsKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:sheets", ownerID)
}

func (r *redisRepo) Create(ctx context.Context, s *sheet.Sheet) error {
	if s == nil {
		return dnderr.InvalidArgument("sheet cannot be nil")
	}
	if s.OwnerID == "" {
		return dnderr.InvalidArgument("sheet owner ID is required")
	}
	if s.ID == "" {
		s.ID = r.uuidGenerator.New()
	}

	exists, err := r.client.Exists(ctx, sheetKey(s.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check sheet existence: %w", err)
	}
	if exists > 0 {
		return dnderr.AlreadyExistsf("sheet with ID '%s' already exists", s.ID).
			WithMeta("sheet_id", s.ID)
	}

	now := r.timeProvider.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	return r.set(ctx, s)
}

func (r *redisRepo) Get(ctx context.Context, id string) (*sheet.Sheet, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("sheet ID is required")
	}

	jsonData, err := r.client.Get(ctx, sheetKey(id)).Bytes()
	if err == redis.Nil {
		return nil, dnderr.NotFoundf("sheet with ID '%s' not found", id).
			WithMeta("sheet_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sheet: %w", err)
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sheet: %w", err)
	}

	return fromData(&data)
}

func (r *redisRepo) ListByOwner(ctx context.Context, ownerID string) ([]*sheet.Sheet, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, ownerSheetsKey(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list sheet IDs: %w", err)
	}

	sheets := make([]*sheet.Sheet, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			s, err := r.Get(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get sheet %s: %w", id, err)
			}
			sheets[i] = s
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortByName(sheets)
	return sheets, nil
}

func (r *redisRepo) Update(ctx context.Context, s *sheet.Sheet) error {
	if s == nil {
		return dnderr.InvalidArgument("sheet cannot be nil")
	}

	existing, err := r.Get(ctx, s.ID)
	if err != nil {
		return err
	}
	if existing.OwnerID != s.OwnerID {
		return dnderr.InvalidArgumentf("sheet %s belongs to another owner", s.ID).
			WithMeta("sheet_id", s.ID)
	}

	s.CreatedAt = existing.CreatedAt
	s.UpdatedAt = r.timeProvider.Now()

	return r.set(ctx, s)
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	s, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, sheetKey(id))
	pipe.SRem(ctx, ownerSheetsKey(s.OwnerID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete sheet: %w", err)
	}

	return nil
}

func (r *redisRepo) set(ctx context.Context, s *sheet.Sheet) error {
	data, err := toData(s)
	if err != nil {
		return err
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal sheet: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, sheetKey(s.ID), string(jsonData), 0)
	pipe.SAdd(ctx, ownerSheetsKey(s.OwnerID), s.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store sheet: %w", err)
	}

	return nil
}

func toData(s *sheet.Sheet) (*Data, error) {
	desc := s.Description
	if desc == nil {
		desc = character.Description{}
	}
	raw, err := json.Marshal(desc)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "sheet description is not serializable")
	}

	return &Data{
		ID:          s.ID,
		OwnerID:     s.OwnerID,
		Name:        s.Name,
		Description: raw,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}, nil
}

func fromData(data *Data) (*sheet.Sheet, error) {
	desc, err := character.ParseDescription(data.Description)
	if err != nil {
		return nil, dnderr.Wrapf(err, "sheet %s", data.ID)
	}

	return &sheet.Sheet{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Description: desc,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}, nil
}

func sortByName(sheets []*sheet.Sheet) {
	sort.SliceStable(sheets, func(i, j int) bool {
		if sheets[i].Name != sheets[j].Name {
			return sheets[i].Name < sheets[j].Name
		}
		return sheets[i].ID < sheets[j].ID
	})
}
