package report

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jihopark/moneydash/internal/asset"
	"github.com/jihopark/moneydash/internal/report"
)

type Handler struct {
	assets  *asset.Service
	cutover time.Time
}

func NewHandler(assets *asset.Service, cutover time.Time) *Handler {
	return &Handler{assets: assets, cutover: cutover}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.summary)
}

type categoryTotalResponse struct {
	Category asset.Category `json:"category"`
	Total    int64          `json:"total"`
}

type platformShareResponse struct {
	Platform string          `json:"platform"`
	Amount   int64           `json:"amount"`
	Percent  decimal.Decimal `json:"percent"`
}

type historyResponse struct {
	ID           uuid.UUID `json:"id"`
	TotalAmount  int64     `json:"total_amount"`
	RecordedDate string    `json:"recorded_date"`
}

type summaryResponse struct {
	NetWorth          int64                   `json:"net_worth"`
	CategoryBreakdown []categoryTotalResponse `json:"category_breakdown"`
	PlatformBreakdown []platformShareResponse `json:"platform_breakdown"`
	History           []historyResponse       `json:"history"`
}

// parseFilter reads the exclude query parameter, a comma separated list of
// categories to leave out of the summary.
func parseFilter(r *http.Request) (report.Filter, bool) {
	raw := r.URL.Query().Get("exclude")
	if raw == "" {
		return report.ExcludeCategories(), true
	}

	var excluded []asset.Category

	for _, part := range strings.Split(raw, ",") {
		c := asset.Category(strings.TrimSpace(part))
		if !c.Valid() {
			return report.Filter{}, false
		}

		excluded = append(excluded, c)
	}

	return report.ExcludeCategories(excluded...), true
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseFilter(r)
	if !ok {
		http.Error(w, "unknown category in exclude parameter", http.StatusBadRequest)
		return
	}

	category := report.AllCategories
	if raw := r.URL.Query().Get("category"); raw != "" {
		category = asset.Category(raw)
		if !category.Valid() {
			http.Error(w, "unknown category", http.StatusBadRequest)
			return
		}
	}

	assets, err := h.assets.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	history, err := h.assets.ListHistory(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	excludedTotal := report.ExcludedTotal(assets, filter)
	adjusted := report.AdjustedHistory(history, filter, h.cutover, excludedTotal)

	resp := summaryResponse{
		NetWorth:          report.NetWorth(assets, filter),
		CategoryBreakdown: toCategoryResponse(report.CategoryBreakdown(assets, filter)),
		PlatformBreakdown: toPlatformResponse(report.PlatformBreakdown(assets, filter, category)),
		History:           toHistoryResponse(adjusted),
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toCategoryResponse(totals []report.CategoryTotal) []categoryTotalResponse {
	resp := make([]categoryTotalResponse, len(totals))
	for i, t := range totals {
		resp[i] = categoryTotalResponse{Category: t.Category, Total: t.Total}
	}

	return resp
}

func toPlatformResponse(shares []report.PlatformShare) []platformShareResponse {
	resp := make([]platformShareResponse, len(shares))
	for i, s := range shares {
		resp[i] = platformShareResponse{Platform: s.Platform, Amount: s.Amount, Percent: s.Percent}
	}

	return resp
}

func toHistoryResponse(history []*asset.History) []historyResponse {
	resp := make([]historyResponse, len(history))
	for i, h := range history {
		resp[i] = historyResponse{
			ID:           h.ID,
			TotalAmount:  h.TotalAmount,
			RecordedDate: h.RecordedDate.Format(time.DateOnly),
		}
	}

	return resp
}
