package asset

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jihopark/moneydash/internal/asset"
)

type Handler struct {
	svc *asset.Service
}

func NewHandler(svc *asset.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/history", h.listHistory)
	r.Put("/history/{id}", h.updateHistory)
	r.Get("/{id}/history", h.listItemHistory)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type assetRequest struct {
	Name        string         `json:"name"`
	Amount      int64          `json:"amount"`
	Category    asset.Category `json:"category"`
	Platform    string         `json:"platform"`
	Description string         `json:"description"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req assetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a, err := h.svc.Create(r.Context(), asset.CreateParams{
		Name:        req.Name,
		Amount:      req.Amount,
		Category:    req.Category,
		Platform:    req.Platform,
		Description: req.Description,
	})
	if err != nil {
		if isValidationErr(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(a)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	assets, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(assets)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req assetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a, err := h.svc.Update(r.Context(), id, asset.UpdateParams{
		Name:        req.Name,
		Amount:      req.Amount,
		Category:    req.Category,
		Platform:    req.Platform,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, asset.ErrNotFound) {
			http.Error(w, "asset not found", http.StatusNotFound)
			return
		}

		if isValidationErr(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(a)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, asset.ErrNotFound) {
			http.Error(w, "asset not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.svc.ListHistory(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toHistoryResponseList(history)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateHistoryRequest struct {
	TotalAmount int64 `json:"total_amount"`
}

func (h *Handler) updateHistory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateHistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	hist, err := h.svc.UpdateHistory(r.Context(), id, req.TotalAmount)
	if err != nil {
		if errors.Is(err, asset.ErrHistoryNotFound) {
			http.Error(w, "history not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toHistoryResponse(hist)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listItemHistory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	items, err := h.svc.ListItemHistory(r.Context(), id)
	if err != nil {
		if errors.Is(err, asset.ErrNotFound) {
			http.Error(w, "asset not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toItemHistoryResponseList(items)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func isValidationErr(err error) bool {
	return errors.Is(err, asset.ErrNameRequired) || errors.Is(err, asset.ErrInvalidCategory)
}
