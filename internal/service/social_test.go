package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hare1111/dahood/internal/models"
)

func TestSendFriendRequestNotifiesTarget(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	ts.mustSignup(t, "alice")
	ts.mustSignup(t, "bob")

	require.NoError(t, ts.social.SendFriendRequest(ctx, "alice", "bob"))

	bob := ts.findUser(t, "bob")
	require.Len(t, bob.Notifications, 1)
	assert.Equal(t, models.NotifFriendRequest, bob.Notifications[0].Type)
	assert.Equal(t, "alice", bob.Notifications[0].From)

	// The sender's friends list is untouched: a request is pending until
	// the recipient adds the sender back.
	alice := ts.findUser(t, "alice")
	assert.Empty(t, alice.Friends)
}

func TestSendFriendRequestUnknownTarget(t *testing.T) {
	ts := newTestServices(t)
	ts.mustSignup(t, "alice")

	err := ts.social.SendFriendRequest(context.Background(), "alice", "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSendFriendRequestAlreadyFriends(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	ts.mustSignup(t, "alice")
	ts.mustSignup(t, "bob")

	users, err := ts.store.Users(ctx)
	require.NoError(t, err)
	for i := range users {
		if users[i].Username == "alice" {
			users[i].Friends = []string{"bob"}
		}
	}
	require.NoError(t, ts.store.SaveUsers(ctx, users))

	err = ts.social.SendFriendRequest(ctx, "alice", "bob")
	assert.ErrorIs(t, err, ErrAlreadyFriends)

	// Nothing was delivered.
	bob := ts.findUser(t, "bob")
	assert.Empty(t, bob.Notifications)
}

func TestListFriends(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	ts.mustSignup(t, "alice")

	friends, err := ts.social.ListFriends(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, friends)

	users, err := ts.store.Users(ctx)
	require.NoError(t, err)
	users[0].Friends = []string{"bob", "carol"}
	require.NoError(t, ts.store.SaveUsers(ctx, users))

	friends, err = ts.social.ListFriends(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob", "carol"}, friends)

	_, err = ts.social.ListFriends(ctx, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
