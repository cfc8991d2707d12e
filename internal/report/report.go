// Package report computes the derived dashboard views. Every function is a
// pure computation over a freshly loaded snapshot of assets and history.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jihopark/moneydash/internal/asset"
)

// AllCategories selects every category in PlatformBreakdown.
const AllCategories asset.Category = "TOTAL"

// Filter marks categories excluded from a view.
type Filter struct {
	excluded map[asset.Category]bool
}

// ExcludeCategories builds a filter that hides the given categories.
func ExcludeCategories(categories ...asset.Category) Filter {
	if len(categories) == 0 {
		return Filter{}
	}

	excluded := make(map[asset.Category]bool, len(categories))
	for _, c := range categories {
		excluded[c] = true
	}

	return Filter{excluded: excluded}
}

// Includes reports whether assets of the category pass the filter.
func (f Filter) Includes(c asset.Category) bool {
	return !f.excluded[c]
}

// Empty reports whether the filter excludes nothing.
func (f Filter) Empty() bool {
	return len(f.excluded) == 0
}

// NetWorth is the signed sum of amounts over included assets.
func NetWorth(assets []*asset.Asset, filter Filter) int64 {
	var total int64

	for _, a := range assets {
		if filter.Includes(a.Category) {
			total += a.Amount
		}
	}

	return total
}

// ExcludedTotal is the signed sum of amounts the filter hides. It feeds
// AdjustedHistory as the backward-projection amount.
func ExcludedTotal(assets []*asset.Asset, filter Filter) int64 {
	var total int64

	for _, a := range assets {
		if !filter.Includes(a.Category) {
			total += a.Amount
		}
	}

	return total
}

type CategoryTotal struct {
	Category asset.Category
	Total    int64 // absolute value of the category's signed sum
}

// CategoryBreakdown sums included assets per category and takes the absolute
// value, so liabilities contribute magnitude to a share-of-pie view.
// Categories with a zero total are omitted. Order follows asset.Categories.
func CategoryBreakdown(assets []*asset.Asset, filter Filter) []CategoryTotal {
	sums := make(map[asset.Category]int64)

	for _, a := range assets {
		if filter.Includes(a.Category) {
			sums[a.Category] += a.Amount
		}
	}

	var breakdown []CategoryTotal

	for _, c := range asset.Categories {
		total := abs(sums[c])
		if total == 0 {
			continue
		}

		breakdown = append(breakdown, CategoryTotal{Category: c, Total: total})
	}

	return breakdown
}

type PlatformShare struct {
	Platform string
	Amount   int64 // absolute sum for the platform
	Percent  decimal.Decimal
}

// PlatformBreakdown groups the filtered assets by platform, sums absolute
// amounts, and computes each platform's share of the filtered total rounded
// to one decimal place. Results are sorted by amount descending. When
// category is AllCategories every included asset participates; otherwise only
// the named category.
func PlatformBreakdown(assets []*asset.Asset, filter Filter, category asset.Category) []PlatformShare {
	sums := make(map[string]int64)

	var total int64

	for _, a := range assets {
		if !filter.Includes(a.Category) {
			continue
		}

		if category != AllCategories && a.Category != category {
			continue
		}

		platform := a.Platform
		if platform == "" {
			platform = asset.DefaultPlatform
		}

		amount := abs(a.Amount)
		sums[platform] += amount
		total += amount
	}

	shares := make([]PlatformShare, 0, len(sums))

	for platform, amount := range sums {
		shares = append(shares, PlatformShare{
			Platform: platform,
			Amount:   amount,
			Percent:  percentOf(amount, total),
		})
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Amount != shares[j].Amount {
			return shares[i].Amount > shares[j].Amount
		}

		return shares[i].Platform < shares[j].Platform
	})

	return shares
}

// AdjustedHistory projects the current excludedTotal backwards: snapshots
// recorded on or after cutover get it subtracted, earlier snapshots are
// returned unchanged. This is an approximation: it assumes the excluded
// balance was roughly constant over the adjusted window. The input slice is
// never mutated.
func AdjustedHistory(history []*asset.History, filter Filter, cutover time.Time, excludedTotal int64) []*asset.History {
	adjusted := make([]*asset.History, 0, len(history))

	for _, h := range history {
		if filter.Empty() || h.RecordedDate.Before(cutover) {
			adjusted = append(adjusted, h)
			continue
		}

		adjusted = append(adjusted, &asset.History{
			ID:           h.ID,
			TotalAmount:  h.TotalAmount - excludedTotal,
			RecordedDate: h.RecordedDate,
		})
	}

	return adjusted
}

func percentOf(amount, total int64) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}

	return decimal.NewFromInt(amount).
		Div(decimal.NewFromInt(total)).
		Mul(decimal.NewFromInt(100)).
		Round(1)
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}

	return n
}
