package asset

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=asset
type Repository interface {
	CreateAsset(ctx context.Context, a *Asset) error
	GetAsset(ctx context.Context, id uuid.UUID) (*Asset, error)
	ListAssets(ctx context.Context) ([]*Asset, error)
	UpdateAsset(ctx context.Context, a *Asset) error
	DeleteAsset(ctx context.Context, id uuid.UUID) error

	ListHistory(ctx context.Context) ([]*History, error)
	UpdateHistoryAmount(ctx context.Context, id uuid.UUID, totalAmount int64) (*History, error)
	UpsertHistory(ctx context.Context, date time.Time, totalAmount int64) error

	CreateItemHistory(ctx context.Context, h *ItemHistory) error
	ListItemHistory(ctx context.Context, assetID uuid.UUID) ([]*ItemHistory, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type CreateParams struct {
	Name        string
	Amount      int64
	Category    Category
	Platform    string
	Description string
}

type UpdateParams struct {
	Name        string
	Amount      int64
	Category    Category
	Platform    string
	Description string
}

func (p CreateParams) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrNameRequired
	}

	if !p.Category.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, p.Category)
	}

	return nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Asset, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	a := &Asset{
		Name:        strings.TrimSpace(params.Name),
		Amount:      params.Amount,
		Category:    params.Category,
		Platform:    normalizePlatform(params.Platform),
		Description: params.Description,
	}
	if err := s.repo.CreateAsset(ctx, a); err != nil {
		return nil, err
	}

	if err := s.afterMutation(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

// CreateBatch stores a set of imported assets and refreshes the snapshot once
// at the end.
func (s *Service) CreateBatch(ctx context.Context, params []CreateParams) ([]*Asset, error) {
	if len(params) == 0 {
		return nil, nil
	}

	for i, p := range params {
		if err := p.validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	assets := make([]*Asset, len(params))

	for i, p := range params {
		a := &Asset{
			Name:        strings.TrimSpace(p.Name),
			Amount:      p.Amount,
			Category:    p.Category,
			Platform:    normalizePlatform(p.Platform),
			Description: p.Description,
		}
		if err := s.repo.CreateAsset(ctx, a); err != nil {
			return nil, err
		}

		if err := s.recordItemHistory(ctx, a); err != nil {
			return nil, err
		}

		assets[i] = a
	}

	if err := s.refreshSnapshot(ctx); err != nil {
		return nil, err
	}

	return assets, nil
}

func (s *Service) List(ctx context.Context) ([]*Asset, error) {
	return s.repo.ListAssets(ctx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Asset, error) {
	return s.repo.GetAsset(ctx, id)
}

// Update replaces the editable fields of an asset. When the amount changes,
// the old amount is kept in PreviousAmount for change-rate display.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Asset, error) {
	if err := CreateParams(params).validate(); err != nil {
		return nil, err
	}

	a, err := s.repo.GetAsset(ctx, id)
	if err != nil {
		return nil, err
	}

	if a.Amount != params.Amount {
		a.PreviousAmount = a.Amount
	}

	a.Name = strings.TrimSpace(params.Name)
	a.Amount = params.Amount
	a.Category = params.Category
	a.Platform = normalizePlatform(params.Platform)
	a.Description = params.Description

	if err := s.repo.UpdateAsset(ctx, a); err != nil {
		return nil, err
	}

	if err := s.afterMutation(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetAsset(ctx, id); err != nil {
		return err
	}

	if err := s.repo.DeleteAsset(ctx, id); err != nil {
		return err
	}

	return s.refreshSnapshot(ctx)
}

func (s *Service) ListHistory(ctx context.Context) ([]*History, error) {
	return s.repo.ListHistory(ctx)
}

// UpdateHistory corrects the stored total of a single snapshot. There is no
// delete path for history; corrections are the only exposed mutation.
func (s *Service) UpdateHistory(ctx context.Context, id uuid.UUID, totalAmount int64) (*History, error) {
	return s.repo.UpdateHistoryAmount(ctx, id, totalAmount)
}

func (s *Service) ListItemHistory(ctx context.Context, assetID uuid.UUID) ([]*ItemHistory, error) {
	if _, err := s.repo.GetAsset(ctx, assetID); err != nil {
		return nil, err
	}

	return s.repo.ListItemHistory(ctx, assetID)
}

func (s *Service) afterMutation(ctx context.Context, a *Asset) error {
	if err := s.refreshSnapshot(ctx); err != nil {
		return err
	}

	return s.recordItemHistory(ctx, a)
}

// refreshSnapshot upserts today's net-worth snapshot with the signed sum of
// all current assets.
func (s *Service) refreshSnapshot(ctx context.Context) error {
	assets, err := s.repo.ListAssets(ctx)
	if err != nil {
		return fmt.Errorf("listing assets for snapshot: %w", err)
	}

	var total int64
	for _, a := range assets {
		total += a.Amount
	}

	return s.repo.UpsertHistory(ctx, today(s.now()), total)
}

func (s *Service) recordItemHistory(ctx context.Context, a *Asset) error {
	return s.repo.CreateItemHistory(ctx, &ItemHistory{
		AssetID:      a.ID,
		Amount:       a.Amount,
		RecordedDate: today(s.now()),
	})
}

func normalizePlatform(platform string) string {
	platform = strings.TrimSpace(platform)
	if platform == "" {
		return DefaultPlatform
	}

	return platform
}

func today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
