package service

import "errors"

// Sentinel errors returned by the service layer. Callers check them with
// errors.Is; the HTTP layer maps them to status codes.
var (
	// Not found
	ErrUserNotFound    = errors.New("user not found")
	ErrGroupNotFound   = errors.New("group not found")
	ErrListingNotFound = errors.New("listing not found")

	// Conflict
	ErrDuplicateUser  = errors.New("username already taken")
	ErrDuplicateGroup = errors.New("group already exists")
	ErrAlreadyFriends = errors.New("already friends")

	// Unauthorized
	ErrWrongPassword      = errors.New("wrong password")
	ErrInsufficientTrades = errors.New("not enough completed trades")
	ErrNotAuthorized      = errors.New("admin only")
	ErrNotAMember         = errors.New("not a member of this group")
	ErrNotLoggedIn        = errors.New("no active session")

	// Invalid input
	ErrInvalidInput = errors.New("missing required field")
)
