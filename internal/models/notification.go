package models

// NotificationType tags the variant of a Notification.
type NotificationType string

const (
	// NotifFriendRequest is sent to the target of a friend request.
	NotifFriendRequest NotificationType = "friend_request"

	// NotifGroupInvite is sent to users invited at group creation.
	NotifGroupInvite NotificationType = "group_invite"

	// NotifAdmin is an administrative broadcast to every user.
	NotifAdmin NotificationType = "admin"
)

// Notification is one entry in a user's inbox. Only the fields for its type
// are set; the rest are omitted from the stored document.
type Notification struct {
	Type NotificationType `json:"type"`

	// From is the sending username (friend_request, group_invite).
	From string `json:"from,omitempty"`

	// Group is the group name for group_invite.
	Group string `json:"group,omitempty"`

	// Message is the broadcast text for admin.
	Message string `json:"message,omitempty"`
}

// NewFriendRequest builds a friend-request notification from the given user.
func NewFriendRequest(from string) Notification {
	return Notification{Type: NotifFriendRequest, From: from}
}

// NewGroupInvite builds an invitation to the named group.
func NewGroupInvite(group, from string) Notification {
	return Notification{Type: NotifGroupInvite, Group: group, From: from}
}

// NewAdminMessage builds an administrative broadcast notification.
func NewAdminMessage(message string) Notification {
	return Notification{Type: NotifAdmin, Message: message}
}
