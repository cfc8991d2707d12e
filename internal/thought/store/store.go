package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jihopark/moneydash/internal/thought"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateThought(ctx context.Context, t *thought.Thought) error {
	query := `
		INSERT INTO thoughts (content, parent_id, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, t.Content, t.ParentID).
		Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating thought: %w", err)
	}

	return nil
}

func (s *Store) GetThought(ctx context.Context, id uuid.UUID) (*thought.Thought, error) {
	query := `SELECT id, content, parent_id, created_at FROM thoughts WHERE id = $1`

	var t thought.Thought

	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&t.ID, &t.Content, &t.ParentID, &t.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, thought.ErrNotFound
		}

		return nil, fmt.Errorf("getting thought: %w", err)
	}

	return &t, nil
}

func (s *Store) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*thought.Thought, error) {
	query := `
		UPDATE thoughts
		SET content = $1
		WHERE id = $2
		RETURNING id, content, parent_id, created_at
	`

	var t thought.Thought

	err := s.db.QueryRowContext(ctx, query, content, id).
		Scan(&t.ID, &t.Content, &t.ParentID, &t.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, thought.ErrNotFound
		}

		return nil, fmt.Errorf("updating thought: %w", err)
	}

	return &t, nil
}

func (s *Store) ListThoughts(ctx context.Context) ([]*thought.Thought, error) {
	query := `SELECT id, content, parent_id, created_at FROM thoughts ORDER BY created_at ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing thoughts: %w", err)
	}
	defer rows.Close()

	var thoughts []*thought.Thought

	for rows.Next() {
		var t thought.Thought
		if err := rows.Scan(&t.ID, &t.Content, &t.ParentID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning thought: %w", err)
		}

		thoughts = append(thoughts, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating thought rows: %w", err)
	}

	return thoughts, nil
}

// DeleteThoughts removes the given ids with a single statement inside a
// transaction, so a concurrent reader sees either the whole subtree or none
// of it.
func (s *Store) DeleteThoughts(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))

	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := `DELETE FROM thoughts WHERE id IN (` + strings.Join(placeholders, ", ") + `)`

	if _, err := dbTx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deleting thoughts: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
