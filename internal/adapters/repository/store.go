// Package repository persists profiles, favorites and share
// snapshots. The interfaces keep the app layer storage-agnostic; the
// in-memory implementation backs single-node deployments and tests.
package repository

import (
	"context"

	"github.com/okian/encore/internal/domain/model"
)

// ProfileStore keeps at most one taste profile per user.
type ProfileStore interface {
	// Replace stores the profile, overwriting any previous one for
	// the same user.
	Replace(ctx context.Context, profile *model.TasteProfile) error

	// Get returns the user's profile or ErrNotFound.
	Get(ctx context.Context, userID string) (*model.TasteProfile, error)
}

// FavoriteStore keeps saved concerts per user.
type FavoriteStore interface {
	// Add stores a favorite. Saving the same concert twice for one
	// user updates the existing favorite instead of duplicating it.
	Add(ctx context.Context, favorite *model.Favorite) error

	// Remove deletes a favorite by id, returning ErrNotFound when the
	// id does not belong to the user.
	Remove(ctx context.Context, userID, favoriteID string) error

	// ListByUser returns the user's favorites, most recently saved
	// first.
	ListByUser(ctx context.Context, userID string) ([]*model.Favorite, error)
}

// ShareStore keeps shareable profile snapshots.
type ShareStore interface {
	// Put stores a snapshot under its id.
	Put(ctx context.Context, snapshot *model.ShareSnapshot) error

	// Get returns a snapshot or ErrNotFound, including for expired
	// snapshots.
	Get(ctx context.Context, shareID string) (*model.ShareSnapshot, error)
}
