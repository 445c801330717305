package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/hare1111/dahood/internal/models"
	"github.com/hare1111/dahood/internal/storage"
)

// SessionService owns the single local session: it authenticates users,
// creates accounts, and keeps the persisted session pointer in step with the
// users collection.
type SessionService struct {
	store         storage.Store
	adminUsername string
	adminPassword string
}

// NewSessionService creates a session service. The admin credential pair is
// the distinguished login that bypasses normal lookup.
func NewSessionService(store storage.Store, adminUsername, adminPassword string) *SessionService {
	return &SessionService{
		store:         store,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
	}
}

// Signup creates a new account and logs it in.
func (s *SessionService) Signup(ctx context.Context, username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	if username == "" || email == "" || password == "" {
		return nil, ErrInvalidInput
	}

	users, err := s.store.Users(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Username == username {
			return nil, ErrDuplicateUser
		}
	}

	user := models.NewUser(username, email, password)
	users = append(users, user)
	if err := s.store.SaveUsers(ctx, users); err != nil {
		return nil, err
	}
	if err := s.store.SetCurrentUser(ctx, &user); err != nil {
		return nil, err
	}

	slog.Info("User signed up", "username", username)
	return &user, nil
}

// Login authenticates username/password and sets the session to the user's
// current persisted state. The admin pair authenticates unconditionally and
// bootstraps the admin record on first use.
func (s *SessionService) Login(ctx context.Context, username, password string) (*models.User, error) {
	users, err := s.store.Users(ctx)
	if err != nil {
		return nil, err
	}

	if username == s.adminUsername && password == s.adminPassword {
		return s.loginAdmin(ctx, users)
	}

	for i := range users {
		if users[i].Username != username {
			continue
		}
		// Plaintext comparison is the preserved contract for existing
		// stored records.
		if users[i].Password != password {
			return nil, ErrWrongPassword
		}
		user := users[i]
		if err := s.store.SetCurrentUser(ctx, &user); err != nil {
			return nil, err
		}
		slog.Info("User logged in", "username", username)
		return &user, nil
	}

	return nil, ErrUserNotFound
}

// loginAdmin creates the admin record if it is absent, then logs it in.
func (s *SessionService) loginAdmin(ctx context.Context, users []models.User) (*models.User, error) {
	var admin *models.User
	for i := range users {
		if users[i].Username == s.adminUsername {
			admin = &users[i]
			break
		}
	}
	if admin == nil {
		user := models.NewUser(s.adminUsername, "admin@dahood", s.adminPassword)
		users = append(users, user)
		if err := s.store.SaveUsers(ctx, users); err != nil {
			return nil, err
		}
		admin = &users[len(users)-1]
		slog.Info("Admin account bootstrapped", "username", s.adminUsername)
	}

	if err := s.store.SetCurrentUser(ctx, admin); err != nil {
		return nil, err
	}
	slog.Info("Admin logged in", "username", s.adminUsername)
	return admin, nil
}

// Logout clears the session. Logging out with no session is a no-op.
func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.store.ClearCurrentUser(ctx); err != nil {
		return err
	}
	slog.Info("User logged out")
	return nil
}

// Current returns the session snapshot, or nil when logged out.
func (s *SessionService) Current(ctx context.Context) (*models.User, error) {
	return s.store.CurrentUser(ctx)
}

// Refresh re-reads the active user's record from the users collection into
// the session. The session is a snapshot, not a live reference, so any
// mutation of the underlying record (trade count, group membership, inbox)
// must be followed by a refresh or the session drifts.
func (s *SessionService) Refresh(ctx context.Context) (*models.User, error) {
	current, err := s.store.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}

	users, err := s.store.Users(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == current.Username {
			user := users[i]
			if err := s.store.SetCurrentUser(ctx, &user); err != nil {
				return nil, err
			}
			return &user, nil
		}
	}
	return current, nil
}

// syncSession updates the session snapshot if it points at the given user.
// Services call this after persisting a mutation to a user record, so a
// logged-in user immediately sees their own changes.
func syncSession(ctx context.Context, store storage.Store, user models.User) error {
	current, err := store.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if current == nil || current.Username != user.Username {
		return nil
	}
	return store.SetCurrentUser(ctx, &user)
}
