package sqlite

import (
	"context"

	"github.com/hare1111/dahood/internal/models"
	"github.com/hare1111/dahood/internal/storage"
)

// Users returns the whole users collection.
func (s *SQLiteStore) Users(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if _, err := s.readDoc(ctx, storage.CollectionUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SaveUsers replaces the users collection.
func (s *SQLiteStore) SaveUsers(ctx context.Context, users []models.User) error {
	return s.writeDoc(ctx, storage.CollectionUsers, users)
}

// Groups returns the whole groups collection.
func (s *SQLiteStore) Groups(ctx context.Context) ([]models.Group, error) {
	groups := []models.Group{}
	if _, err := s.readDoc(ctx, storage.CollectionGroups, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// SaveGroups replaces the groups collection.
func (s *SQLiteStore) SaveGroups(ctx context.Context, groups []models.Group) error {
	return s.writeDoc(ctx, storage.CollectionGroups, groups)
}

// Listings returns the marketplace collection in insertion order.
func (s *SQLiteStore) Listings(ctx context.Context) ([]models.Listing, error) {
	listings := []models.Listing{}
	if _, err := s.readDoc(ctx, storage.CollectionMarketplace, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// SaveListings replaces the marketplace collection.
func (s *SQLiteStore) SaveListings(ctx context.Context, listings []models.Listing) error {
	return s.writeDoc(ctx, storage.CollectionMarketplace, listings)
}

// Slides returns the banner image references in append order.
func (s *SQLiteStore) Slides(ctx context.Context) ([]string, error) {
	slides := []string{}
	if _, err := s.readDoc(ctx, storage.CollectionSlides, &slides); err != nil {
		return nil, err
	}
	return slides, nil
}

// SaveSlides replaces the slides collection.
func (s *SQLiteStore) SaveSlides(ctx context.Context, slides []string) error {
	return s.writeDoc(ctx, storage.CollectionSlides, slides)
}

// CurrentUser returns the session snapshot, or nil when logged out.
func (s *SQLiteStore) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	found, err := s.readDoc(ctx, storage.CollectionSession, &user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &user, nil
}

// SetCurrentUser replaces the session snapshot.
func (s *SQLiteStore) SetCurrentUser(ctx context.Context, user *models.User) error {
	return s.writeDoc(ctx, storage.CollectionSession, user)
}

// ClearCurrentUser removes the session pointer.
func (s *SQLiteStore) ClearCurrentUser(ctx context.Context) error {
	return s.deleteDoc(ctx, storage.CollectionSession)
}
