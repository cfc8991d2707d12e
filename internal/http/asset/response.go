package asset

import (
	"time"

	"github.com/google/uuid"

	"github.com/jihopark/moneydash/internal/asset"
)

type assetResponse struct {
	ID             uuid.UUID      `json:"id"`
	Name           string         `json:"name"`
	Amount         int64          `json:"amount"`
	PreviousAmount int64          `json:"previous_amount"`
	Category       asset.Category `json:"category"`
	Platform       string         `json:"platform"`
	Description    string         `json:"description,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      *time.Time     `json:"updated_at,omitempty"`
}

func toResponse(a *asset.Asset) assetResponse {
	return assetResponse{
		ID:             a.ID,
		Name:           a.Name,
		Amount:         a.Amount,
		PreviousAmount: a.PreviousAmount,
		Category:       a.Category,
		Platform:       a.Platform,
		Description:    a.Description,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func toResponseList(assets []*asset.Asset) []assetResponse {
	resp := make([]assetResponse, len(assets))
	for i, a := range assets {
		resp[i] = toResponse(a)
	}

	return resp
}

type historyResponse struct {
	ID           uuid.UUID `json:"id"`
	TotalAmount  int64     `json:"total_amount"`
	RecordedDate string    `json:"recorded_date"`
}

func toHistoryResponse(h *asset.History) historyResponse {
	return historyResponse{
		ID:           h.ID,
		TotalAmount:  h.TotalAmount,
		RecordedDate: h.RecordedDate.Format(time.DateOnly),
	}
}

func toHistoryResponseList(history []*asset.History) []historyResponse {
	resp := make([]historyResponse, len(history))
	for i, h := range history {
		resp[i] = toHistoryResponse(h)
	}

	return resp
}

type itemHistoryResponse struct {
	ID           uuid.UUID `json:"id"`
	AssetID      uuid.UUID `json:"asset_id"`
	Amount       int64     `json:"amount"`
	RecordedDate string    `json:"recorded_date"`
}

func toItemHistoryResponseList(items []*asset.ItemHistory) []itemHistoryResponse {
	resp := make([]itemHistoryResponse, len(items))
	for i, h := range items {
		resp[i] = itemHistoryResponse{
			ID:           h.ID,
			AssetID:      h.AssetID,
			Amount:       h.Amount,
			RecordedDate: h.RecordedDate.Format(time.DateOnly),
		}
	}

	return resp
}
