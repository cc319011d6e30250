// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/okian/encore/internal/app"
)

// DiscoverDependencies defines the interface for concert discovery.
type DiscoverDependencies interface {
	Discover(ctx context.Context, req app.DiscoverRequest) (*app.DiscoverResponse, error)
}

// DiscoverHandler handles discovery requests.
type DiscoverHandler struct {
	deps DiscoverDependencies
}

// NewDiscoverHandler creates a new discover handler.
func NewDiscoverHandler(deps DiscoverDependencies) *DiscoverHandler {
	return &DiscoverHandler{deps: deps}
}

// HandleDiscover handles POST /v1/discover requests.
func (h *DiscoverHandler) HandleDiscover(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req discoverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	resp, err := h.deps.Discover(r.Context(), req.toApp())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
