// Package server exposes the core services as a JSON HTTP surface for the
// local browser UI. Each endpoint calls exactly one service operation and
// maps its sentinel errors to HTTP status codes.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hare1111/dahood/internal/metrics"
	"github.com/hare1111/dahood/internal/models"
	"github.com/hare1111/dahood/internal/service"
)

// Server holds the core services behind the HTTP surface.
type Server struct {
	sessions      *service.SessionService
	social        *service.SocialService
	groups        *service.GroupService
	market        *service.MarketplaceService
	notifications *service.NotificationService
	chat          *service.ChatService
	slides        *service.SlideService
}

// New creates a server over the given services.
func New(
	sessions *service.SessionService,
	social *service.SocialService,
	groups *service.GroupService,
	market *service.MarketplaceService,
	notifications *service.NotificationService,
	chat *service.ChatService,
	slides *service.SlideService,
) *Server {
	return &Server{
		sessions:      sessions,
		social:        social,
		groups:        groups,
		market:        market,
		notifications: notifications,
		chat:          chat,
		slides:        slides,
	}
}

// Register mounts all API routes and the metrics endpoint on mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/signup", s.handle("signup", s.handleSignup))
	mux.HandleFunc("POST /api/login", s.handle("login", s.handleLogin))
	mux.HandleFunc("POST /api/logout", s.handle("logout", s.handleLogout))
	mux.HandleFunc("GET /api/session", s.handle("session", s.handleSession))

	mux.HandleFunc("POST /api/friends/request", s.handle("friend_request", s.handleFriendRequest))
	mux.HandleFunc("GET /api/friends", s.handle("list_friends", s.handleListFriends))

	mux.HandleFunc("POST /api/groups", s.handle("create_group", s.handleCreateGroup))
	mux.HandleFunc("POST /api/groups/join", s.handle("join_group", s.handleJoinGroup))
	mux.HandleFunc("GET /api/groups", s.handle("list_groups", s.handleListGroups))
	mux.HandleFunc("GET /api/groups/{name}/chat", s.handle("chat_history", s.handleChatHistory))
	mux.HandleFunc("POST /api/groups/{name}/chat", s.handle("chat_post", s.handleChatPost))

	mux.HandleFunc("GET /api/listings", s.handle("search_listings", s.handleSearchListings))
	mux.HandleFunc("POST /api/listings", s.handle("add_listing", s.handleAddListing))
	mux.HandleFunc("POST /api/listings/{id}/complete", s.handle("complete_listing", s.handleCompleteListing))

	mux.HandleFunc("GET /api/notifications", s.handle("drain_notifications", s.handleDrainNotifications))
	mux.HandleFunc("POST /api/broadcast", s.handle("broadcast", s.handleBroadcast))

	mux.HandleFunc("GET /api/slides", s.handle("list_slides", s.handleListSlides))
	mux.HandleFunc("POST /api/slides", s.handle("add_slide", s.handleAddSlide))

	mux.Handle("GET /metrics", promhttp.Handler())
}

// apiFunc is a handler that reports its outcome so the wrapper can record
// metrics and render the error uniformly.
type apiFunc func(w http.ResponseWriter, r *http.Request) error

func (s *Server) handle(op string, fn apiFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		metrics.Record(op, err)
		if err != nil {
			writeError(w, op, err)
		}
	}
}

// currentUser resolves the acting user from the persisted session pointer.
func (s *Server) currentUser(r *http.Request) (*models.User, error) {
	user, err := s.sessions.Current(r.Context())
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, service.ErrNotLoggedIn
	}
	return user, nil
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return service.ErrInvalidInput
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, op string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		slog.Error("Request failed", "op", op, "error", err)
	} else {
		slog.Debug("Request rejected", "op", op, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrGroupNotFound),
		errors.Is(err, service.ErrListingNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrDuplicateUser),
		errors.Is(err, service.ErrDuplicateGroup),
		errors.Is(err, service.ErrAlreadyFriends):
		return http.StatusConflict
	case errors.Is(err, service.ErrNotLoggedIn):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrWrongPassword),
		errors.Is(err, service.ErrInsufficientTrades),
		errors.Is(err, service.ErrNotAuthorized),
		errors.Is(err, service.ErrNotAMember):
		return http.StatusForbidden
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
