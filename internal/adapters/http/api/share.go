// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/okian/encore/internal/domain/model"
)

// ShareDependencies defines the interface for taste-snapshot sharing.
type ShareDependencies interface {
	CreateShare(ctx context.Context, userID string) (*model.ShareSnapshot, error)
	GetShare(ctx context.Context, shareID string) (*model.ShareSnapshot, error)
}

// ShareHandler handles share requests.
type ShareHandler struct {
	deps ShareDependencies
}

// NewShareHandler creates a new share handler.
func NewShareHandler(deps ShareDependencies) *ShareHandler {
	return &ShareHandler{deps: deps}
}

// HandleCreateShare handles POST /v1/share requests.
func (h *ShareHandler) HandleCreateShare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req createShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	snap, err := h.deps.CreateShare(r.Context(), strings.TrimSpace(req.UserID))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, snap)
}

// HandleGetShare handles GET /v1/share/{share_id} requests.
func (h *ShareHandler) HandleGetShare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	shareID := strings.TrimPrefix(r.URL.Path, "/v1/share/")
	if shareID == "" || strings.Contains(shareID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	snap, err := h.deps.GetShare(r.Context(), shareID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}
