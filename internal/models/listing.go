package models

// Listing is a marketplace post. Listings carry a generated ID so that
// completing one is always addressed by identity, never by position in the
// collection: removals shift positions, and a cached position could
// otherwise point at a different listing by the time it is acted on.
type Listing struct {
	// ID is a UUID assigned when the listing is created.
	ID string `json:"id"`

	// Title and Description are free text, matched by search.
	Title       string `json:"title"`
	Description string `json:"description"`

	// Contact is how interested users reach the poster.
	Contact string `json:"contact"`

	// Image is an optional encoded image reference (data URL). The view
	// layer encodes uploads before the listing reaches the core.
	Image string `json:"image,omitempty"`

	// User is the username of the poster. Completing the listing credits
	// this user's trade count.
	User string `json:"user"`
}
