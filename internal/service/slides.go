package service

import (
	"context"
	"log/slog"

	"github.com/hare1111/dahood/internal/storage"
)

// SlideService manages the promotional banner images shown above the
// marketplace. Slides are encoded image references, append-only.
type SlideService struct {
	store         storage.Store
	adminUsername string
}

// NewSlideService creates a slide service. Only the admin uploads slides.
func NewSlideService(store storage.Store, adminUsername string) *SlideService {
	return &SlideService{store: store, adminUsername: adminUsername}
}

// Append adds a slide. Only the admin account may upload.
func (s *SlideService) Append(ctx context.Context, actor, image string) error {
	if actor != s.adminUsername {
		return ErrNotAuthorized
	}
	if image == "" {
		return ErrInvalidInput
	}

	slides, err := s.store.Slides(ctx)
	if err != nil {
		return err
	}
	slides = append(slides, image)
	if err := s.store.SaveSlides(ctx, slides); err != nil {
		return err
	}
	slog.Info("Slide uploaded", "count", len(slides))
	return nil
}

// List returns all slides in upload order.
func (s *SlideService) List(ctx context.Context) ([]string, error) {
	return s.store.Slides(ctx)
}
