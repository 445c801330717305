package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hare1111/dahood/internal/models"
)

func TestDeliverAppendsInOrder(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	ts.mustSignup(t, "alice")

	require.NoError(t, ts.notifications.Deliver(ctx, "alice", models.NewFriendRequest("bob")))
	require.NoError(t, ts.notifications.Deliver(ctx, "alice", models.NewGroupInvite("G", "carol")))

	alice := ts.findUser(t, "alice")
	require.Len(t, alice.Notifications, 2)
	assert.Equal(t, models.NotifFriendRequest, alice.Notifications[0].Type)
	assert.Equal(t, models.NotifGroupInvite, alice.Notifications[1].Type)

	err := ts.notifications.Deliver(ctx, "ghost", models.NewFriendRequest("bob"))
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestBroadcastReachesEveryUser(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	ts.mustSignup(t, "alice")
	ts.mustSignup(t, "bob")
	_, err := ts.sessions.Login(ctx, testAdminUser, testAdminPass)
	require.NoError(t, err)

	require.NoError(t, ts.notifications.Broadcast(ctx, testAdminUser, "hello"))

	for _, name := range []string{"alice", "bob", testAdminUser} {
		u := ts.findUser(t, name)
		require.Len(t, u.Notifications, 1, "user %s", name)
		assert.Equal(t, models.NotifAdmin, u.Notifications[0].Type)
		assert.Equal(t, "hello", u.Notifications[0].Message)
	}
}

func TestBroadcastRequiresAdmin(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	ts.mustSignup(t, "alice")

	err := ts.notifications.Broadcast(ctx, "alice", "pwned")
	assert.ErrorIs(t, err, ErrNotAuthorized)

	alice := ts.findUser(t, "alice")
	assert.Empty(t, alice.Notifications)
}

func TestDrainEmptiesInboxAtomically(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	ts.mustSignup(t, "alice")
	_, err := ts.sessions.Login(ctx, testAdminUser, testAdminPass)
	require.NoError(t, err)
	require.NoError(t, ts.notifications.Broadcast(ctx, testAdminUser, "hello"))

	inbox, err := ts.notifications.Drain(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, models.NotifAdmin, inbox[0].Type)
	assert.Equal(t, "hello", inbox[0].Message)

	// A second drain is empty: the first read cleared the stored inbox,
	// not just a session copy.
	inbox, err = ts.notifications.Drain(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, inbox)

	_, err = ts.notifications.Drain(ctx, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDrainRefreshesActiveSession(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	_, err := ts.sessions.Signup(ctx, "alice", "alice@example.com", "pw")
	require.NoError(t, err)
	require.NoError(t, ts.notifications.Deliver(ctx, "alice", models.NewFriendRequest("bob")))

	_, err = ts.notifications.Drain(ctx, "alice")
	require.NoError(t, err)

	current, err := ts.sessions.Current(ctx)
	require.NoError(t, err)
	assert.Empty(t, current.Notifications)
}
