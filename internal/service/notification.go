package service

import (
	"context"
	"log/slog"

	"github.com/hare1111/dahood/internal/models"
	"github.com/hare1111/dahood/internal/storage"
)

// NotificationService manages per-user inboxes. The social and group
// services produce notifications through it; the owning user consumes them
// by draining the inbox.
type NotificationService struct {
	store         storage.Store
	adminUsername string
}

// NewNotificationService creates a notification service. adminUsername is
// the only account allowed to broadcast.
func NewNotificationService(store storage.Store, adminUsername string) *NotificationService {
	return &NotificationService{store: store, adminUsername: adminUsername}
}

// Deliver appends a notification to the named user's inbox.
func (s *NotificationService) Deliver(ctx context.Context, username string, n models.Notification) error {
	users, err := s.store.Users(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].Username != username {
			continue
		}
		users[i].Notifications = append(users[i].Notifications, n)
		if err := s.store.SaveUsers(ctx, users); err != nil {
			return err
		}
		slog.Debug("Notification delivered", "username", username, "type", n.Type)
		return syncSession(ctx, s.store, users[i])
	}
	return ErrUserNotFound
}

// Broadcast appends an admin notification to every user's inbox. Only the
// admin account may broadcast.
func (s *NotificationService) Broadcast(ctx context.Context, actor, message string) error {
	if actor != s.adminUsername {
		return ErrNotAuthorized
	}

	users, err := s.store.Users(ctx)
	if err != nil {
		return err
	}
	n := models.NewAdminMessage(message)
	for i := range users {
		users[i].Notifications = append(users[i].Notifications, n)
	}
	if err := s.store.SaveUsers(ctx, users); err != nil {
		return err
	}

	for i := range users {
		if users[i].Username == actor {
			if err := syncSession(ctx, s.store, users[i]); err != nil {
				return err
			}
			break
		}
	}

	slog.Info("Broadcast sent", "recipients", len(users))
	return nil
}

// Drain returns the named user's inbox in delivery order and empties it as
// a single step. There is no partial read: a second drain returns empty
// until something new is delivered.
func (s *NotificationService) Drain(ctx context.Context, username string) ([]models.Notification, error) {
	users, err := s.store.Users(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username != username {
			continue
		}
		inbox := users[i].Notifications
		if inbox == nil {
			inbox = []models.Notification{}
		}
		users[i].Notifications = []models.Notification{}
		if err := s.store.SaveUsers(ctx, users); err != nil {
			return nil, err
		}
		if err := syncSession(ctx, s.store, users[i]); err != nil {
			return nil, err
		}
		slog.Debug("Inbox drained", "username", username, "count", len(inbox))
		return inbox, nil
	}
	return nil, ErrUserNotFound
}
