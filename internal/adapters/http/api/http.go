// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/okian/encore/internal/adapters/geo"
	"github.com/okian/encore/internal/app"
	"github.com/okian/encore/internal/domain/model"
	"github.com/okian/encore/internal/domain/profile"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Profile operations.
	BuildProfile(ctx context.Context, userID string) (*model.TasteProfile, error)
	Profile(ctx context.Context, userID string) (*model.TasteProfile, error)

	// Discover runs the full pipeline: resolve, fetch, rank.
	Discover(ctx context.Context, req app.DiscoverRequest) (*app.DiscoverResponse, error)

	// Favorites.
	AddFavorite(ctx context.Context, userID string, concert model.ScoredConcert) (*model.Favorite, error)
	RemoveFavorite(ctx context.Context, userID, favoriteID string) error
	ListFavorites(ctx context.Context, userID string) ([]*model.Favorite, error)

	// Shares.
	CreateShare(ctx context.Context, userID string) (*model.ShareSnapshot, error)
	GetShare(ctx context.Context, shareID string) (*model.ShareSnapshot, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	profileHandler   *ProfileHandler
	discoverHandler  *DiscoverHandler
	favoritesHandler *FavoritesHandler
	shareHandler     *ShareHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		profileHandler:   NewProfileHandler(deps),
		discoverHandler:  NewDiscoverHandler(deps),
		favoritesHandler: NewFavoritesHandler(deps),
		shareHandler:     NewShareHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux, deps Dependencies) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/v1/profile/build", MetricsMiddleware(s.profileHandler.HandleBuildProfile, "profile_build"))
	mux.HandleFunc("/v1/profile/", MetricsMiddleware(s.profileHandler.HandleGetProfile, "profile_get"))
	mux.HandleFunc("/v1/discover", MetricsMiddleware(s.discoverHandler.HandleDiscover, "discover"))
	mux.HandleFunc("/v1/favorites", MetricsMiddleware(s.favoritesHandler.HandleFavorites, "favorites"))
	mux.HandleFunc("/v1/favorites/", MetricsMiddleware(s.favoritesHandler.HandleDeleteFavorite, "favorite_delete"))
	mux.HandleFunc("/v1/share", MetricsMiddleware(s.shareHandler.HandleCreateShare, "share_create"))
	mux.HandleFunc("/v1/share/", MetricsMiddleware(s.shareHandler.HandleGetShare, "share_get"))
}

// buildProfileRequest mirrors the JSON body of POST /v1/profile/build.
type buildProfileRequest struct {
	UserID string `json:"user_id"`
}

func (b buildProfileRequest) validate() error {
	if strings.TrimSpace(b.UserID) == "" {
		return errors.New("missing user_id")
	}
	return nil
}

// discoverRequest mirrors the JSON body of POST /v1/discover.
type discoverRequest struct {
	UserID      string `json:"user_id"`
	City        string `json:"city"`
	RadiusMiles int    `json:"radius_miles"`
	DateFrom    string `json:"date_from"`
	DateTo      string `json:"date_to"`
}

func (d discoverRequest) validate() error {
	switch {
	case strings.TrimSpace(d.UserID) == "":
		return errors.New("missing user_id")
	case strings.TrimSpace(d.City) == "":
		return errors.New("missing city")
	case d.RadiusMiles < 0:
		return errors.New("radius_miles must not be negative")
	}
	if _, err := parseDate(d.DateFrom); err != nil {
		return errors.New("invalid date_from; must be RFC3339 or YYYY-MM-DD")
	}
	if _, err := parseDate(d.DateTo); err != nil {
		return errors.New("invalid date_to; must be RFC3339 or YYYY-MM-DD")
	}
	return nil
}

func (d discoverRequest) toApp() app.DiscoverRequest {
	from, _ := parseDate(d.DateFrom)
	to, _ := parseDate(d.DateTo)
	return app.DiscoverRequest{
		UserID:      strings.TrimSpace(d.UserID),
		City:        d.City,
		RadiusMiles: d.RadiusMiles,
		DateFrom:    from,
		DateTo:      to,
	}
}

// parseDate accepts RFC3339 timestamps or bare calendar dates. Empty input
// yields the zero time, which downstream treats as "unbounded".
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// addFavoriteRequest mirrors the JSON body of POST /v1/favorites.
type addFavoriteRequest struct {
	UserID  string              `json:"user_id"`
	Concert model.ScoredConcert `json:"concert"`
}

func (a addFavoriteRequest) validate() error {
	switch {
	case strings.TrimSpace(a.UserID) == "":
		return errors.New("missing user_id")
	case strings.TrimSpace(a.Concert.ArtistName) == "":
		return errors.New("missing concert.artist_name")
	}
	return nil
}

// createShareRequest mirrors the JSON body of POST /v1/share.
type createShareRequest struct {
	UserID string `json:"user_id"`
}

func (c createShareRequest) validate() error {
	if strings.TrimSpace(c.UserID) == "" {
		return errors.New("missing user_id")
	}
	return nil
}

type statusResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError translates service-layer sentinels into HTTP responses so
// every handler reports failures the same way.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	case errors.Is(err, app.ErrProfileMissing):
		writeError(w, http.StatusNotFound, "profile_missing", err)
	case errors.Is(err, app.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, profile.ErrEmptyUserID):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	case errors.Is(err, profile.ErrEmptyHistory):
		writeError(w, http.StatusUnprocessableEntity, "empty_history", err)
	case errors.Is(err, geo.ErrEmptyLocation):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	case errors.Is(err, geo.ErrLocationNotFound):
		writeError(w, http.StatusUnprocessableEntity, "location_not_found", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
