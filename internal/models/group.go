package models

import "time"

// Group represents a named group of users with an optional password gate
// and its own chat log. Group names are globally unique.
type Group struct {
	// Name uniquely identifies the group.
	Name string `json:"name"`

	// Admin is the username of the creator. Always present in Members.
	Admin string `json:"admin"`

	// Password gates joining when non-empty. Empty means open join.
	Password string `json:"password,omitempty"`

	// Members holds the usernames in the group, creator first.
	Members []string `json:"members"`

	// Chat is the group's message log in append order.
	Chat []ChatMessage `json:"chat"`
}

// HasMember reports whether username is in the group.
func (g *Group) HasMember(username string) bool {
	for _, m := range g.Members {
		if m == username {
			return true
		}
	}
	return false
}

// ChatMessage is a single entry in a group's chat log.
type ChatMessage struct {
	User    string    `json:"user"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}
