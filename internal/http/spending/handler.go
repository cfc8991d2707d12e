package spending

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jihopark/moneydash/internal/spending"
)

type Handler struct {
	svc *spending.Service
	now func() time.Time
}

func NewHandler(svc *spending.Service) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type planRequest struct {
	Title       string `json:"title"`
	Amount      int64  `json:"amount"`
	DueDate     string `json:"due_date"`
	Description string `json:"description"`
	Paid        bool   `json:"paid"`
}

func (req planRequest) toParams() (spending.Params, error) {
	if req.DueDate == "" {
		return spending.Params{}, spending.ErrDueDateRequired
	}

	due, err := time.Parse(time.DateOnly, req.DueDate)
	if err != nil {
		return spending.Params{}, err
	}

	return spending.Params{
		Title:       req.Title,
		Amount:      req.Amount,
		DueDate:     due,
		Description: req.Description,
		Paid:        req.Paid,
	}, nil
}

type planResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Amount        int64     `json:"amount"`
	DueDate       string    `json:"due_date"`
	Description   string    `json:"description,omitempty"`
	Paid          bool      `json:"paid"`
	DaysRemaining int       `json:"days_remaining"`
	CreatedAt     time.Time `json:"created_at"`
}

func (h *Handler) toResponse(p *spending.Plan) planResponse {
	return planResponse{
		ID:            p.ID,
		Title:         p.Title,
		Amount:        p.Amount,
		DueDate:       p.DueDate.Format(time.DateOnly),
		Description:   p.Description,
		Paid:          p.Paid,
		DaysRemaining: p.DaysRemaining(h.now()),
		CreatedAt:     p.CreatedAt,
	}
}

func (h *Handler) toResponseList(plans []*spending.Plan) []planResponse {
	resp := make([]planResponse, len(plans))
	for i, p := range plans {
		resp[i] = h.toResponse(p)
	}

	return resp
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	plans, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(h.toResponseList(plans)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params, err := req.toParams()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	plan, err := h.svc.Create(r.Context(), params)
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

	if err := json.NewEncoder(w).Encode(h.toResponse(plan)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params, err := req.toParams()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	plan, err := h.svc.Update(r.Context(), id, params)
	if err != nil {
		if isValidationErr(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if errors.Is(err, spending.ErrNotFound) {
			http.Error(w, "spending plan not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(h.toResponse(plan)); err != nil {
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
		if errors.Is(err, spending.ErrNotFound) {
			http.Error(w, "spending plan not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func isValidationErr(err error) bool {
	return errors.Is(err, spending.ErrTitleRequired) || errors.Is(err, spending.ErrDueDateRequired)
}
