package service

import (
	"context"
	"log/slog"

	"github.com/hare1111/dahood/internal/models"
	"github.com/hare1111/dahood/internal/storage"
)

// SocialService handles friendships. A friend request only notifies the
// target; there is no accept step, so friendship stays one-directional
// pending until the recipient independently adds the sender back.
type SocialService struct {
	store         storage.Store
	notifications *NotificationService
}

// NewSocialService creates a social service that delivers friend requests
// through the given notification service.
func NewSocialService(store storage.Store, notifications *NotificationService) *SocialService {
	return &SocialService{store: store, notifications: notifications}
}

// SendFriendRequest notifies toUsername of a friend request from
// fromUsername. It does not mutate the sender's friends list.
func (s *SocialService) SendFriendRequest(ctx context.Context, fromUsername, toUsername string) error {
	users, err := s.store.Users(ctx)
	if err != nil {
		return err
	}

	target := false
	for i := range users {
		if users[i].Username == toUsername {
			target = true
		}
		if users[i].Username == fromUsername && users[i].HasFriend(toUsername) {
			return ErrAlreadyFriends
		}
	}
	if !target {
		return ErrUserNotFound
	}

	if err := s.notifications.Deliver(ctx, toUsername, models.NewFriendRequest(fromUsername)); err != nil {
		return err
	}
	slog.Info("Friend request sent", "from", fromUsername, "to", toUsername)
	return nil
}

// ListFriends returns the user's friends in stored order. A user with no
// friends gets an empty list, not an error.
func (s *SocialService) ListFriends(ctx context.Context, username string) ([]string, error) {
	users, err := s.store.Users(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			if users[i].Friends == nil {
				return []string{}, nil
			}
			return users[i].Friends, nil
		}
	}
	return nil, ErrUserNotFound
}
