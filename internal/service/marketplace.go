package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/hare1111/dahood/internal/models"
	"github.com/hare1111/dahood/internal/storage"
)

// MarketplaceService handles listings: creation, search, and trade
// completion. Listings are addressed by their generated ID everywhere, so a
// caller holding an ID from an earlier read can never complete the wrong
// listing after the collection has changed underneath them.
type MarketplaceService struct {
	store storage.Store
}

// NewMarketplaceService creates a marketplace service with the given
// storage backend.
func NewMarketplaceService(store storage.Store) *MarketplaceService {
	return &MarketplaceService{store: store}
}

// AddListing appends a listing posted by username and returns it with its
// assigned ID. Titles are not unique; every add succeeds.
func (s *MarketplaceService) AddListing(ctx context.Context, username, title, description, contact, image string) (*models.Listing, error) {
	listings, err := s.store.Listings(ctx)
	if err != nil {
		return nil, err
	}

	listing := models.Listing{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Contact:     contact,
		Image:       image,
		User:        username,
	}
	listings = append(listings, listing)
	if err := s.store.SaveListings(ctx, listings); err != nil {
		return nil, err
	}

	slog.Info("Listing added", "listing_id", listing.ID, "user", username, "title", title)
	return &listing, nil
}

// Search returns listings whose title or description contains term,
// case-insensitively, preserving collection order. An empty term matches
// everything.
func (s *MarketplaceService) Search(ctx context.Context, term string) ([]models.Listing, error) {
	listings, err := s.store.Listings(ctx)
	if err != nil {
		return nil, err
	}
	if term == "" {
		return listings, nil
	}

	term = strings.ToLower(term)
	matched := []models.Listing{}
	for _, l := range listings {
		if strings.Contains(strings.ToLower(l.Title), term) ||
			strings.Contains(strings.ToLower(l.Description), term) {
			matched = append(matched, l)
		}
	}
	return matched, nil
}

// Complete marks the listing with the given ID as a successful trade: the
// listing is removed and the poster's trade count goes up by one. The
// collection is re-read here, so an ID that no longer resolves fails with
// ErrListingNotFound instead of acting on whatever took its place. If the
// poster's account no longer exists the listing is still removed and no
// trade count changes.
func (s *MarketplaceService) Complete(ctx context.Context, listingID string) (*models.Listing, error) {
	listings, err := s.store.Listings(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range listings {
		if listings[i].ID == listingID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrListingNotFound
	}

	removed := listings[idx]
	listings = append(listings[:idx], listings[idx+1:]...)
	if err := s.store.SaveListings(ctx, listings); err != nil {
		return nil, err
	}

	users, err := s.store.Users(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username != removed.User {
			continue
		}
		users[i].TradeCount++
		if err := s.store.SaveUsers(ctx, users); err != nil {
			return nil, err
		}
		if err := syncSession(ctx, s.store, users[i]); err != nil {
			return nil, err
		}
		slog.Info("Trade completed",
			"listing_id", removed.ID,
			"user", removed.User,
			"trade_count", users[i].TradeCount,
		)
		return &removed, nil
	}

	// Poster no longer exists; the removal stands.
	slog.Warn("Trade completed for unknown poster", "listing_id", removed.ID, "user", removed.User)
	return &removed, nil
}
