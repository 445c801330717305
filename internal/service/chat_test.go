package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostMessageAndHistory(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	ts.mustSignup(t, "alice")
	ts.setTradeCount(t, "alice", 15)
	_, err := ts.groups.CreateGroup(ctx, "alice", "G", "", nil)
	require.NoError(t, err)

	before := time.Now().UTC()
	msg, err := ts.chat.PostMessage(ctx, "G", "alice", "hello there")
	require.NoError(t, err)
	assert.Equal(t, "alice", msg.User)
	assert.Equal(t, "hello there", msg.Message)
	assert.False(t, msg.Time.Before(before))

	_, err = ts.chat.PostMessage(ctx, "G", "alice", "second")
	require.NoError(t, err)

	history, err := ts.chat.History(ctx, "G")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "hello there", history[0].Message)
	assert.Equal(t, "second", history[1].Message)
}

func TestPostMessageRequiresMembership(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	ts.mustSignup(t, "alice")
	ts.mustSignup(t, "mallory")
	ts.setTradeCount(t, "alice", 15)
	_, err := ts.groups.CreateGroup(ctx, "alice", "G", "", nil)
	require.NoError(t, err)

	_, err = ts.chat.PostMessage(ctx, "G", "mallory", "let me in")
	assert.ErrorIs(t, err, ErrNotAMember)

	history, err := ts.chat.History(ctx, "G")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestPostMessageValidation(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	ts.mustSignup(t, "alice")
	ts.setTradeCount(t, "alice", 15)
	_, err := ts.groups.CreateGroup(ctx, "alice", "G", "", nil)
	require.NoError(t, err)

	_, err = ts.chat.PostMessage(ctx, "G", "alice", "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ts.chat.PostMessage(ctx, "missing", "alice", "hi")
	assert.ErrorIs(t, err, ErrGroupNotFound)

	_, err = ts.chat.History(ctx, "missing")
	assert.ErrorIs(t, err, ErrGroupNotFound)
}
