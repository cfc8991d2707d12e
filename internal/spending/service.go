package spending

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=spending
type Repository interface {
	CreatePlan(ctx context.Context, p *Plan) error
	GetPlan(ctx context.Context, id uuid.UUID) (*Plan, error)

	// ListPlans returns all plans ordered by due date ascending.
	ListPlans(ctx context.Context) ([]*Plan, error)
	UpdatePlan(ctx context.Context, p *Plan) error
	DeletePlan(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type Params struct {
	Title       string
	Amount      int64
	DueDate     time.Time
	Description string
	Paid        bool
}

func (p Params) validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrTitleRequired
	}

	if p.DueDate.IsZero() {
		return ErrDueDateRequired
	}

	return nil
}

func (s *Service) Create(ctx context.Context, params Params) (*Plan, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	p := &Plan{
		Title:       strings.TrimSpace(params.Title),
		Amount:      params.Amount,
		DueDate:     params.DueDate,
		Description: params.Description,
		Paid:        params.Paid,
	}
	if err := s.repo.CreatePlan(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) List(ctx context.Context) ([]*Plan, error) {
	return s.repo.ListPlans(ctx)
}

// Update replaces every editable field, matching the full-payload PUT the
// dashboard sends (the paid toggle goes through here too).
func (s *Service) Update(ctx context.Context, id uuid.UUID, params Params) (*Plan, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.GetPlan(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Title = strings.TrimSpace(params.Title)
	p.Amount = params.Amount
	p.DueDate = params.DueDate
	p.Description = params.Description
	p.Paid = params.Paid

	if err := s.repo.UpdatePlan(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetPlan(ctx, id); err != nil {
		return err
	}

	return s.repo.DeletePlan(ctx, id)
}
