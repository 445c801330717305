package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hare1111/dahood/internal/models"
	"github.com/hare1111/dahood/internal/storage"
	"github.com/hare1111/dahood/internal/storage/sqlite"
)

const (
	testAdminUser = "hare1111"
	testAdminPass = "himgjo@123"
)

// testServices bundles all services over one temp store.
type testServices struct {
	store         storage.Store
	sessions      *SessionService
	social        *SocialService
	groups        *GroupService
	market        *MarketplaceService
	notifications *NotificationService
	chat          *ChatService
	slides        *SlideService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "dahood-service-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	notifications := NewNotificationService(store, testAdminUser)
	return &testServices{
		store:         store,
		sessions:      NewSessionService(store, testAdminUser, testAdminPass),
		social:        NewSocialService(store, notifications),
		groups:        NewGroupService(store, notifications, testAdminUser),
		market:        NewMarketplaceService(store),
		notifications: notifications,
		chat:          NewChatService(store),
		slides:        NewSlideService(store, testAdminUser),
	}
}

// mustSignup creates an account and logs out, leaving no session behind.
func (ts *testServices) mustSignup(t *testing.T, username string) {
	t.Helper()
	ctx := context.Background()
	_, err := ts.sessions.Signup(ctx, username, username+"@example.com", "pw-"+username)
	require.NoError(t, err)
	require.NoError(t, ts.sessions.Logout(ctx))
}

// setTradeCount rewrites a user's trade count directly in the store.
func (ts *testServices) setTradeCount(t *testing.T, username string, count int) {
	t.Helper()
	ctx := context.Background()
	users, err := ts.store.Users(ctx)
	require.NoError(t, err)
	for i := range users {
		if users[i].Username == username {
			users[i].TradeCount = count
			require.NoError(t, ts.store.SaveUsers(ctx, users))
			return
		}
	}
	t.Fatalf("no such user: %s", username)
}

// findUser reads a user's current persisted record.
func (ts *testServices) findUser(t *testing.T, username string) models.User {
	t.Helper()
	users, err := ts.store.Users(context.Background())
	require.NoError(t, err)
	for _, u := range users {
		if u.Username == username {
			return u
		}
	}
	t.Fatalf("no such user: %s", username)
	return models.User{}
}
