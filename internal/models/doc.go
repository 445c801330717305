// Package models defines the domain types persisted in the local store.
//
// All entities use natural keys: users are identified by username, groups by
// name. Listings are the one exception and carry a generated UUID, because
// they are the only entity that gets removed and positional identity does
// not survive removals.
//
// The JSON tags match the documents an earlier version of the application
// wrote, so an existing store keeps working:
//   - users:       []User
//   - groups:      []Group
//   - marketplace: []Listing
//   - slides:      []string (encoded banner images, append-only)
//   - currentUser: User or null
//
// Cross-entity consistency rules live in the service layer, not here: a
// group's Members always contains its Admin, a user's Groups agrees with
// the Members of every group they accepted, and TradeCount is incremented
// only when a listing by that user is completed.
package models
