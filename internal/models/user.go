package models

// User represents a registered account.
//
// The username is the primary key: it is globally unique and every other
// collection references users by username, never by a surrogate ID. Records
// are never deleted in the current scope.
type User struct {
	// Username uniquely identifies the user.
	Username string `json:"username"`

	// Email is the address given at signup. Informational only.
	Email string `json:"email"`

	// Password is stored and compared as plaintext. This is the contract
	// existing stored data was written with; do not hash here without a
	// migration for old records.
	Password string `json:"password"`

	// Friends holds usernames this user has added. It never contains the
	// user's own username.
	Friends []string `json:"friends"`

	// Groups holds the names of groups the user belongs to. Must agree
	// with Group.Members for every accepted membership.
	Groups []string `json:"groups"`

	// TradeCount is the number of completed trades for listings this user
	// posted. Only ever incremented.
	TradeCount int `json:"tradeCount"`

	// Notifications is the user's inbox, in delivery order. Drained (read
	// and cleared) as a single step when the user views it.
	Notifications []Notification `json:"notifications"`
}

// NewUser creates a user with empty social state and a zero trade count.
func NewUser(username, email, password string) User {
	return User{
		Username:      username,
		Email:         email,
		Password:      password,
		Friends:       []string{},
		Groups:        []string{},
		Notifications: []Notification{},
	}
}

// HasFriend reports whether name is already in the user's friends list.
func (u *User) HasFriend(name string) bool {
	for _, f := range u.Friends {
		if f == name {
			return true
		}
	}
	return false
}

// InGroup reports whether the user belongs to the named group.
func (u *User) InGroup(name string) bool {
	for _, g := range u.Groups {
		if g == name {
			return true
		}
	}
	return false
}
