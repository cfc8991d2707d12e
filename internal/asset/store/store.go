package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jihopark/moneydash/internal/asset"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanAsset reads an asset row and returns a populated Asset.
// Expected column order: id, name, amount, previous_amount, category, platform, description, created_at, updated_at
func scanAsset(s scanner) (*asset.Asset, error) {
	var a asset.Asset

	var categoryStr string

	var description sql.NullString

	if err := s.Scan(
		&a.ID, &a.Name, &a.Amount, &a.PreviousAmount, &categoryStr, &a.Platform,
		&description, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}

	a.Category = asset.Category(categoryStr)
	a.Description = description.String

	return &a, nil
}

const selectAssetColumns = `
	id, name, amount, previous_amount, category, platform, description, created_at, updated_at
`

func (s *Store) CreateAsset(ctx context.Context, a *asset.Asset) error {
	query := `
		INSERT INTO assets (name, amount, previous_amount, category, platform, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		a.Name,
		a.Amount,
		a.PreviousAmount,
		a.Category,
		a.Platform,
		a.Description,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating asset: %w", err)
	}

	return nil
}

func (s *Store) GetAsset(ctx context.Context, id uuid.UUID) (*asset.Asset, error) {
	query := `SELECT ` + selectAssetColumns + ` FROM assets WHERE id = $1`

	a, err := scanAsset(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, asset.ErrNotFound
		}

		return nil, fmt.Errorf("getting asset: %w", err)
	}

	return a, nil
}

func (s *Store) ListAssets(ctx context.Context) ([]*asset.Asset, error) {
	query := `SELECT ` + selectAssetColumns + ` FROM assets ORDER BY created_at ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing assets: %w", err)
	}
	defer rows.Close()

	var assets []*asset.Asset

	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning asset: %w", err)
		}

		assets = append(assets, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating asset rows: %w", err)
	}

	return assets, nil
}

func (s *Store) UpdateAsset(ctx context.Context, a *asset.Asset) error {
	query := `
		UPDATE assets
		SET name = $1, amount = $2, previous_amount = $3, category = $4,
			platform = $5, description = $6, updated_at = NOW()
		WHERE id = $7
	`

	_, err := s.db.ExecContext(ctx, query,
		a.Name,
		a.Amount,
		a.PreviousAmount,
		a.Category,
		a.Platform,
		a.Description,
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating asset: %w", err)
	}

	return nil
}

// DeleteAsset removes an asset together with its item-history trail. Both
// deletes run in one database transaction.
func (s *Store) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM asset_item_history WHERE asset_id = $1`, id); err != nil {
		return fmt.Errorf("deleting item history: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM assets WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting asset: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) ListHistory(ctx context.Context) ([]*asset.History, error) {
	query := `
		SELECT id, total_amount, recorded_date
		FROM asset_history
		ORDER BY recorded_date ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	var history []*asset.History

	for rows.Next() {
		var h asset.History
		if err := rows.Scan(&h.ID, &h.TotalAmount, &h.RecordedDate); err != nil {
			return nil, fmt.Errorf("scanning history: %w", err)
		}

		history = append(history, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history rows: %w", err)
	}

	return history, nil
}

func (s *Store) UpdateHistoryAmount(ctx context.Context, id uuid.UUID, totalAmount int64) (*asset.History, error) {
	query := `
		UPDATE asset_history
		SET total_amount = $1
		WHERE id = $2
		RETURNING id, total_amount, recorded_date
	`

	var h asset.History

	err := s.db.QueryRowContext(ctx, query, totalAmount, id).
		Scan(&h.ID, &h.TotalAmount, &h.RecordedDate)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, asset.ErrHistoryNotFound
		}

		return nil, fmt.Errorf("updating history: %w", err)
	}

	return &h, nil
}

// UpsertHistory writes the snapshot for a date, replacing any existing row so
// a day only ever has one snapshot.
func (s *Store) UpsertHistory(ctx context.Context, date time.Time, totalAmount int64) error {
	query := `
		INSERT INTO asset_history (total_amount, recorded_date)
		VALUES ($1, $2)
		ON CONFLICT (recorded_date) DO UPDATE SET total_amount = EXCLUDED.total_amount
	`

	if _, err := s.db.ExecContext(ctx, query, totalAmount, date); err != nil {
		return fmt.Errorf("upserting history: %w", err)
	}

	return nil
}

func (s *Store) CreateItemHistory(ctx context.Context, h *asset.ItemHistory) error {
	query := `
		INSERT INTO asset_item_history (asset_id, amount, recorded_date)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query, h.AssetID, h.Amount, h.RecordedDate).Scan(&h.ID)
	if err != nil {
		return fmt.Errorf("creating item history: %w", err)
	}

	return nil
}

func (s *Store) ListItemHistory(ctx context.Context, assetID uuid.UUID) ([]*asset.ItemHistory, error) {
	query := `
		SELECT id, asset_id, amount, recorded_date
		FROM asset_item_history
		WHERE asset_id = $1
		ORDER BY recorded_date DESC
	`

	rows, err := s.db.QueryContext(ctx, query, assetID)
	if err != nil {
		return nil, fmt.Errorf("listing item history: %w", err)
	}
	defer rows.Close()

	var items []*asset.ItemHistory

	for rows.Next() {
		var h asset.ItemHistory
		if err := rows.Scan(&h.ID, &h.AssetID, &h.Amount, &h.RecordedDate); err != nil {
			return nil, fmt.Errorf("scanning item history: %w", err)
		}

		items = append(items, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating item history rows: %w", err)
	}

	return items, nil
}
