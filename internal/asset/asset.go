package asset

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Category classifies an asset. DEBT entries are expected to carry negative
// amounts so that summation yields net worth directly.
type Category string

const (
	CategorySavings     Category = "SAVINGS"
	CategoryInstallment Category = "INSTALLMENT"
	CategoryStock       Category = "STOCK"
	CategoryCrypto      Category = "CRYPTO"
	CategoryRealEstate  Category = "REAL_ESTATE"
	CategoryDebt        Category = "DEBT"
	CategoryOther       Category = "OTHER"
)

// Categories lists all known categories in display order.
var Categories = []Category{
	CategorySavings,
	CategoryInstallment,
	CategoryStock,
	CategoryCrypto,
	CategoryRealEstate,
	CategoryDebt,
	CategoryOther,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}

	return false
}

// IsLiability reports whether the category represents money owed.
func (c Category) IsLiability() bool {
	return c == CategoryDebt
}

// DefaultPlatform groups assets without an institution name.
const DefaultPlatform = "Other"

var (
	ErrNotFound        = errors.New("asset not found")
	ErrHistoryNotFound = errors.New("history entry not found")
	ErrNameRequired    = errors.New("asset name is required")
	ErrInvalidCategory = errors.New("unknown asset category")
)

// Asset represents a single tracked holding. Amount is in the smallest
// currency unit and keeps its sign as entered.
type Asset struct {
	ID             uuid.UUID
	Name           string
	Amount         int64
	PreviousAmount int64 // amount before the most recent edit
	Category       Category
	Platform       string
	Description    string
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// History is a daily net-worth snapshot; at most one row per recorded date.
type History struct {
	ID           uuid.UUID
	TotalAmount  int64
	RecordedDate time.Time
}

// ItemHistory records the amount of a single asset at a point in time.
type ItemHistory struct {
	ID           uuid.UUID
	AssetID      uuid.UUID
	Amount       int64
	RecordedDate time.Time
}
