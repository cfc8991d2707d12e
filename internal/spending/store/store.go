package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jihopark/moneydash/internal/spending"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectPlanColumns = `id, title, amount, due_date, description, is_paid, created_at`

func (s *Store) CreatePlan(ctx context.Context, p *spending.Plan) error {
	query := `
		INSERT INTO spending_plans (title, amount, due_date, description, is_paid, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		p.Title,
		p.Amount,
		p.DueDate,
		p.Description,
		p.Paid,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating spending plan: %w", err)
	}

	return nil
}

func (s *Store) GetPlan(ctx context.Context, id uuid.UUID) (*spending.Plan, error) {
	query := `SELECT ` + selectPlanColumns + ` FROM spending_plans WHERE id = $1`

	var p spending.Plan

	var description sql.NullString

	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Title, &p.Amount, &p.DueDate, &description, &p.Paid, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, spending.ErrNotFound
		}

		return nil, fmt.Errorf("getting spending plan: %w", err)
	}

	p.Description = description.String

	return &p, nil
}

func (s *Store) ListPlans(ctx context.Context) ([]*spending.Plan, error) {
	query := `SELECT ` + selectPlanColumns + ` FROM spending_plans ORDER BY due_date ASC, created_at ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing spending plans: %w", err)
	}
	defer rows.Close()

	var plans []*spending.Plan

	for rows.Next() {
		var p spending.Plan

		var description sql.NullString

		if err := rows.Scan(&p.ID, &p.Title, &p.Amount, &p.DueDate, &description, &p.Paid, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning spending plan: %w", err)
		}

		p.Description = description.String
		plans = append(plans, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating spending plan rows: %w", err)
	}

	return plans, nil
}

func (s *Store) UpdatePlan(ctx context.Context, p *spending.Plan) error {
	query := `
		UPDATE spending_plans
		SET title = $1, amount = $2, due_date = $3, description = $4, is_paid = $5
		WHERE id = $6
	`

	_, err := s.db.ExecContext(ctx, query,
		p.Title,
		p.Amount,
		p.DueDate,
		p.Description,
		p.Paid,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating spending plan: %w", err)
	}

	return nil
}

func (s *Store) DeletePlan(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM spending_plans WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting spending plan: %w", err)
	}

	return nil
}
