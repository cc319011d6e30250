// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/okian/encore/internal/domain/model"
)

// FavoritesDependencies defines the interface for favorite operations.
type FavoritesDependencies interface {
	AddFavorite(ctx context.Context, userID string, concert model.ScoredConcert) (*model.Favorite, error)
	RemoveFavorite(ctx context.Context, userID, favoriteID string) error
	ListFavorites(ctx context.Context, userID string) ([]*model.Favorite, error)
}

// FavoritesHandler handles favorite requests.
type FavoritesHandler struct {
	deps FavoritesDependencies
}

// NewFavoritesHandler creates a new favorites handler.
func NewFavoritesHandler(deps FavoritesDependencies) *FavoritesHandler {
	return &FavoritesHandler{deps: deps}
}

// HandleFavorites dispatches /v1/favorites requests:
// POST saves a concert, GET lists a user's saved concerts.
func (h *FavoritesHandler) HandleFavorites(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.handleAdd(w, r)
	case http.MethodGet:
		h.handleList(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *FavoritesHandler) handleAdd(w http.ResponseWriter, r *http.Request) {
	var req addFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	fav, err := h.deps.AddFavorite(r.Context(), strings.TrimSpace(req.UserID), req.Concert)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, fav)
}

func (h *FavoritesHandler) handleList(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
	if userID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrMissingUserID)
		return
	}
	favorites, err := h.deps.ListFavorites(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if favorites == nil {
		favorites = []*model.Favorite{}
	}
	writeJSON(w, http.StatusOK, favorites)
}

// HandleDeleteFavorite handles DELETE /v1/favorites/{id}?user_id= requests.
func (h *FavoritesHandler) HandleDeleteFavorite(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.NotFound(w, r)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/v1/favorites/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
	if userID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrMissingUserID)
		return
	}
	if err := h.deps.RemoveFavorite(r.Context(), userID, id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{Status: "deleted"})
}
