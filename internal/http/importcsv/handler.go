package importcsv

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jihopark/moneydash/internal/asset"
	"github.com/jihopark/moneydash/internal/importer"
)

// Bank exports are small, a few hundred rows at most.
const maxUploadBytes = 5 << 20

type Handler struct {
	importSvc *importer.Service
	assetSvc  *asset.Service
}

func NewHandler(importSvc *importer.Service, assetSvc *asset.Service) *Handler {
	return &Handler{importSvc: importSvc, assetSvc: assetSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/assets", h.importAssets)
}

type importResponse struct {
	Imported int         `json:"imported"`
	AssetIDs []uuid.UUID `json:"asset_ids"`
}

func (h *Handler) importAssets(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file upload", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := h.importSvc.Parse(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	assets, err := h.assetSvc.CreateBatch(r.Context(), rows)
	if err != nil {
		if errors.Is(err, asset.ErrNameRequired) || errors.Is(err, asset.ErrInvalidCategory) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	ids := make([]uuid.UUID, len(assets))
	for i, a := range assets {
		ids[i] = a.ID
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(importResponse{Imported: len(assets), AssetIDs: ids}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
