package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/hare1111/dahood/internal/models"
	"github.com/hare1111/dahood/internal/storage"
)

// ChatService appends to and reads per-group message logs.
type ChatService struct {
	store storage.Store
}

// NewChatService creates a chat service with the given storage backend.
func NewChatService(store storage.Store) *ChatService {
	return &ChatService{store: store}
}

// PostMessage appends a timestamped message from username to the named
// group's chat. Only members may post.
func (s *ChatService) PostMessage(ctx context.Context, groupName, username, text string) (*models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrInvalidInput
	}

	groups, err := s.store.Groups(ctx)
	if err != nil {
		return nil, err
	}
	for i := range groups {
		if groups[i].Name != groupName {
			continue
		}
		if !groups[i].HasMember(username) {
			return nil, ErrNotAMember
		}
		msg := models.ChatMessage{
			User:    username,
			Message: text,
			Time:    time.Now().UTC(),
		}
		groups[i].Chat = append(groups[i].Chat, msg)
		if err := s.store.SaveGroups(ctx, groups); err != nil {
			return nil, err
		}
		slog.Debug("Chat message posted", "group", groupName, "user", username)
		return &msg, nil
	}
	return nil, ErrGroupNotFound
}

// History returns the group's full message log in append order.
func (s *ChatService) History(ctx context.Context, groupName string) ([]models.ChatMessage, error) {
	groups, err := s.store.Groups(ctx)
	if err != nil {
		return nil, err
	}
	for i := range groups {
		if groups[i].Name == groupName {
			if groups[i].Chat == nil {
				return []models.ChatMessage{}, nil
			}
			return groups[i].Chat, nil
		}
	}
	return nil, ErrGroupNotFound
}
