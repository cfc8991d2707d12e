package thought

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jihopark/moneydash/internal/thought"
)

type Handler struct {
	svc *thought.Service
}

func NewHandler(svc *thought.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.listForest)
	r.Post("/", h.create)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type thoughtResponse struct {
	ID          uuid.UUID         `json:"id"`
	Content     string            `json:"content"`
	ParentID    *uuid.UUID        `json:"parent_id,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	SubThoughts []thoughtResponse `json:"sub_thoughts"`
}

// toResponse converts a subtree iteratively; reply chains can be arbitrarily
// deep.
func toResponse(root *thought.Thought) thoughtResponse {
	resp := thoughtResponse{
		ID:          root.ID,
		Content:     root.Content,
		ParentID:    root.ParentID,
		CreatedAt:   root.CreatedAt,
		SubThoughts: []thoughtResponse{},
	}

	type frame struct {
		node *thought.Thought
		dst  *thoughtResponse
	}

	stack := []frame{{node: root, dst: &resp}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		f.dst.SubThoughts = make([]thoughtResponse, len(f.node.SubThoughts))

		for i, child := range f.node.SubThoughts {
			f.dst.SubThoughts[i] = thoughtResponse{
				ID:        child.ID,
				Content:   child.Content,
				ParentID:  child.ParentID,
				CreatedAt: child.CreatedAt,
			}
			stack = append(stack, frame{node: child, dst: &f.dst.SubThoughts[i]})
		}
	}

	return resp
}

func toResponseList(forest []*thought.Thought) []thoughtResponse {
	resp := make([]thoughtResponse, len(forest))
	for i, t := range forest {
		resp[i] = toResponse(t)
	}

	return resp
}

func (h *Handler) listForest(w http.ResponseWriter, r *http.Request) {
	forest, err := h.svc.ListForest(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(forest)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type createThoughtRequest struct {
	Content  string     `json:"content"`
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createThoughtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.svc.Create(r.Context(), req.Content, req.ParentID)
	if err != nil {
		if errors.Is(err, thought.ErrEmptyContent) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if errors.Is(err, thought.ErrNotFound) {
			http.Error(w, "parent thought not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateThoughtRequest struct {
	Content string `json:"content"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateThoughtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.svc.Update(r.Context(), id, req.Content)
	if err != nil {
		if errors.Is(err, thought.ErrEmptyContent) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if errors.Is(err, thought.ErrNotFound) {
			http.Error(w, "thought not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
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
		if errors.Is(err, thought.ErrNotFound) {
			http.Error(w, "thought not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
