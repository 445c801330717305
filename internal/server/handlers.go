package server

import (
	"net/http"

	"github.com/hare1111/dahood/internal/models"
)

// userView is the user shape returned to the UI. The stored record keeps
// the plaintext password; it has no business in responses.
type userView struct {
	Username   string   `json:"username"`
	Email      string   `json:"email"`
	Friends    []string `json:"friends"`
	Groups     []string `json:"groups"`
	TradeCount int      `json:"tradeCount"`
}

func viewOf(u *models.User) userView {
	return userView{
		Username:   u.Username,
		Email:      u.Email,
		Friends:    u.Friends,
		Groups:     u.Groups,
		TradeCount: u.TradeCount,
	}
}

// groupView strips the group password from responses.
type groupView struct {
	Name    string   `json:"name"`
	Admin   string   `json:"admin"`
	Members []string `json:"members"`
}

func groupViewOf(g *models.Group) groupView {
	return groupView{Name: g.Name, Admin: g.Admin, Members: g.Members}
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) error {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decode(r, &req); err != nil {
		return err
	}
	user, err := s.sessions.Signup(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusCreated, viewOf(user))
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decode(r, &req); err != nil {
		return err
	}
	user, err := s.sessions.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, viewOf(user))
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) error {
	if err := s.sessions.Logout(r.Context()); err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) error {
	user, err := s.currentUser(r)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, viewOf(user))
}

func (s *Server) handleFriendRequest(w http.ResponseWriter, r *http.Request) error {
	user, err := s.currentUser(r)
	if err != nil {
		return err
	}
	var req struct {
		Username string `json:"username"`
	}
	if err := decode(r, &req); err != nil {
		return err
	}
	if err := s.social.SendFriendRequest(r.Context(), user.Username, req.Username); err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleListFriends(w http.ResponseWriter, r *http.Request) error {
	user, err := s.currentUser(r)
	if err != nil {
		return err
	}
	friends, err := s.social.ListFriends(r.Context(), user.Username)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, friends)
}

func (s *Server) handleCreateGroup(w http.ResponseWriter, r *http.Request) error {
	user, err := s.currentUser(r)
	if err != nil {
		return err
	}
	var req struct {
		Name     string   `json:"name"`
		Password string   `json:"password"`
		Invites  []string `json:"invites"`
	}
	if err := decode(r, &req); err != nil {
		return err
	}
	group, err := s.groups.CreateGroup(r.Context(), user.Username, req.Name, req.Password, req.Invites)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusCreated, groupViewOf(group))
}

func (s *Server) handleJoinGroup(w http.ResponseWriter, r *http.Request) error {
	user, err := s.currentUser(r)
	if err != nil {
		return err
	}
	var req struct {
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := decode(r, &req); err != nil {
		return err
	}
	group, err := s.groups.JoinGroup(r.Context(), user.Username, req.Name, req.Password)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, groupViewOf(group))
}

func (s *Server) handleListGroups(w http.ResponseWriter, r *http.Request) error {
	user, err := s.currentUser(r)
	if err != nil {
		return err
	}
	groups, err := s.groups.ListGroups(r.Context(), user.Username)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, groups)
}

func (s *Server) handleChatHistory(w http.ResponseWriter, r *http.Request) error {
	if _, err := s.currentUser(r); err != nil {
		return err
	}
	history, err := s.chat.History(r.Context(), r.PathValue("name"))
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, history)
}

func (s *Server) handleChatPost(w http.ResponseWriter, r *http.Request) error {
	user, err := s.currentUser(r)
	if err != nil {
		return err
	}
	var req struct {
		Message string `json:"message"`
	}
	if err := decode(r, &req); err != nil {
		return err
	}
	msg, err := s.chat.PostMessage(r.Context(), r.PathValue("name"), user.Username, req.Message)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusCreated, msg)
}

func (s *Server) handleSearchListings(w http.ResponseWriter, r *http.Request) error {
	listings, err := s.market.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, listings)
}

func (s *Server) handleAddListing(w http.ResponseWriter, r *http.Request) error {
	user, err := s.currentUser(r)
	if err != nil {
		return err
	}
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Contact     string `json:"contact"`
		Image       string `json:"image"`
	}
	if err := decode(r, &req); err != nil {
		return err
	}
	listing, err := s.market.AddListing(r.Context(), user.Username, req.Title, req.Description, req.Contact, req.Image)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusCreated, listing)
}

func (s *Server) handleCompleteListing(w http.ResponseWriter, r *http.Request) error {
	if _, err := s.currentUser(r); err != nil {
		return err
	}
	listing, err := s.market.Complete(r.Context(), r.PathValue("id"))
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, listing)
}

func (s *Server) handleDrainNotifications(w http.ResponseWriter, r *http.Request) error {
	user, err := s.currentUser(r)
	if err != nil {
		return err
	}
	inbox, err := s.notifications.Drain(r.Context(), user.Username)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, inbox)
}

func (s *Server) handleBroadcast(w http.ResponseWriter, r *http.Request) error {
	user, err := s.currentUser(r)
	if err != nil {
		return err
	}
	var req struct {
		Message string `json:"message"`
	}
	if err := decode(r, &req); err != nil {
		return err
	}
	if err := s.notifications.Broadcast(r.Context(), user.Username, req.Message); err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleListSlides(w http.ResponseWriter, r *http.Request) error {
	slides, err := s.slides.List(r.Context())
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, slides)
}

func (s *Server) handleAddSlide(w http.ResponseWriter, r *http.Request) error {
	user, err := s.currentUser(r)
	if err != nil {
		return err
	}
	var req struct {
		Image string `json:"image"`
	}
	if err := decode(r, &req); err != nil {
		return err
	}
	if err := s.slides.Append(r.Context(), user.Username, req.Image); err != nil {
		return err
	}
	return writeJSON(w, http.StatusCreated, map[string]bool{"ok": true})
}
