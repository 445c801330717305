// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/hare1111/dahood/internal/models"
)

// Well-known collection names. These are the keys the application has always
// stored its data under.
const (
	CollectionUsers       = "users"
	CollectionGroups      = "groups"
	CollectionMarketplace = "marketplace"
	CollectionSlides      = "slides"
	CollectionSession     = "currentUser"
)

// Store is the key/value persistence layer: five named collections and
// nothing else. Each collection is read and written whole, so a write is the
// unit of atomicity: callers mutate in memory and write back, and a failed
// operation never leaves a collection partially updated.
//
// This abstraction allows swapping storage backends without changing the
// service layer.
type Store interface {
	// Users returns the whole users collection. A store with no users
	// collection yet returns an empty slice, not an error.
	Users(ctx context.Context) ([]models.User, error)

	// SaveUsers replaces the users collection.
	SaveUsers(ctx context.Context, users []models.User) error

	// Groups returns the whole groups collection.
	Groups(ctx context.Context) ([]models.Group, error)

	// SaveGroups replaces the groups collection.
	SaveGroups(ctx context.Context, groups []models.Group) error

	// Listings returns the whole marketplace collection in insertion order.
	Listings(ctx context.Context) ([]models.Listing, error)

	// SaveListings replaces the marketplace collection.
	SaveListings(ctx context.Context, listings []models.Listing) error

	// Slides returns the banner image references in append order.
	Slides(ctx context.Context) ([]string, error)

	// SaveSlides replaces the slides collection.
	SaveSlides(ctx context.Context, slides []string) error

	// CurrentUser returns the session snapshot, or nil when logged out.
	CurrentUser(ctx context.Context) (*models.User, error)

	// SetCurrentUser replaces the session snapshot.
	SetCurrentUser(ctx context.Context, user *models.User) error

	// ClearCurrentUser removes the session pointer.
	ClearCurrentUser(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
