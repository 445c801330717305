package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/hare1111/dahood/internal/models"
	"github.com/hare1111/dahood/internal/storage"
)

// minTradesForGroup is how many completed trades a non-admin user needs
// before they may create a group.
const minTradesForGroup = 15

// GroupService handles group creation, membership, and invitations, keeping
// a user's Groups list and a group's Members list in agreement.
type GroupService struct {
	store         storage.Store
	notifications *NotificationService
	adminUsername string
}

// NewGroupService creates a group service. The admin account is exempt from
// the trade-count gate on creation.
func NewGroupService(store storage.Store, notifications *NotificationService, adminUsername string) *GroupService {
	return &GroupService{
		store:         store,
		notifications: notifications,
		adminUsername: adminUsername,
	}
}

// CreateGroup creates a group with the creator as admin and first member.
// password may be empty for an open group. Invitees are added to the member
// list and notified; usernames that do not resolve to a user are skipped
// silently rather than failing the whole creation.
func (s *GroupService) CreateGroup(ctx context.Context, creator, name, password string, invites []string) (*models.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	users, err := s.store.Users(ctx)
	if err != nil {
		return nil, err
	}
	creatorIdx := -1
	for i := range users {
		if users[i].Username == creator {
			creatorIdx = i
			break
		}
	}
	if creatorIdx == -1 {
		return nil, ErrUserNotFound
	}
	if creator != s.adminUsername && users[creatorIdx].TradeCount < minTradesForGroup {
		return nil, ErrInsufficientTrades
	}

	groups, err := s.store.Groups(ctx)
	if err != nil {
		return nil, err
	}
	for i := range groups {
		if groups[i].Name == name {
			return nil, ErrDuplicateGroup
		}
	}

	members := []string{creator}
	for _, invite := range invites {
		invite = strings.TrimSpace(invite)
		if invite == "" || invite == creator || contains(members, invite) {
			continue
		}
		members = append(members, invite)
	}

	group := models.Group{
		Name:     name,
		Admin:    creator,
		Password: password,
		Members:  members,
		Chat:     []models.ChatMessage{},
	}
	groups = append(groups, group)
	if err := s.store.SaveGroups(ctx, groups); err != nil {
		return nil, err
	}

	// The creator's membership is accepted immediately; invitees only hold
	// an invitation until they join themselves.
	if !users[creatorIdx].InGroup(name) {
		users[creatorIdx].Groups = append(users[creatorIdx].Groups, name)
		if err := s.store.SaveUsers(ctx, users); err != nil {
			return nil, err
		}
		if err := syncSession(ctx, s.store, users[creatorIdx]); err != nil {
			return nil, err
		}
	}

	invite := models.NewGroupInvite(name, creator)
	for _, member := range members[1:] {
		if err := s.notifications.Deliver(ctx, member, invite); err != nil {
			if err == ErrUserNotFound {
				continue
			}
			return nil, err
		}
	}

	slog.Info("Group created", "name", name, "admin", creator, "members", len(members))
	return &group, nil
}

// JoinGroup adds the user to the named group, checking the group password
// when one is set. Joining a group the user is already in is a no-op.
func (s *GroupService) JoinGroup(ctx context.Context, username, name, password string) (*models.Group, error) {
	groups, err := s.store.Groups(ctx)
	if err != nil {
		return nil, err
	}
	groupIdx := -1
	for i := range groups {
		if groups[i].Name == name {
			groupIdx = i
			break
		}
	}
	if groupIdx == -1 {
		return nil, ErrGroupNotFound
	}
	if groups[groupIdx].Password != "" && groups[groupIdx].Password != password {
		return nil, ErrWrongPassword
	}

	users, err := s.store.Users(ctx)
	if err != nil {
		return nil, err
	}
	userIdx := -1
	for i := range users {
		if users[i].Username == username {
			userIdx = i
			break
		}
	}
	if userIdx == -1 {
		return nil, ErrUserNotFound
	}

	if !groups[groupIdx].HasMember(username) {
		groups[groupIdx].Members = append(groups[groupIdx].Members, username)
		if err := s.store.SaveGroups(ctx, groups); err != nil {
			return nil, err
		}
	}
	if !users[userIdx].InGroup(name) {
		users[userIdx].Groups = append(users[userIdx].Groups, name)
		if err := s.store.SaveUsers(ctx, users); err != nil {
			return nil, err
		}
		if err := syncSession(ctx, s.store, users[userIdx]); err != nil {
			return nil, err
		}
	}

	slog.Info("User joined group", "username", username, "group", name)
	group := groups[groupIdx]
	return &group, nil
}

// ListGroups returns the names of the groups the user belongs to.
func (s *GroupService) ListGroups(ctx context.Context, username string) ([]string, error) {
	users, err := s.store.Users(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			if users[i].Groups == nil {
				return []string{}, nil
			}
			return users[i].Groups, nil
		}
	}
	return nil, ErrUserNotFound
}

// Get returns the named group.
func (s *GroupService) Get(ctx context.Context, name string) (*models.Group, error) {
	groups, err := s.store.Groups(ctx)
	if err != nil {
		return nil, err
	}
	for i := range groups {
		if groups[i].Name == name {
			group := groups[i]
			return &group, nil
		}
	}
	return nil, ErrGroupNotFound
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
