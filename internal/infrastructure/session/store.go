// Package session stores per-browser state: the bearer token for the
// platform API plus the volunteer-flow flags that must reset on logout.
//
// A Store replaces the browser's shared localStorage. Watch replaces the
// storage-event listener: clearing a session in one browsing context is
// observed by any other context currently on the volunteer page.
package session

import "context"

// Session is the state kept for one browsing context.
type Session struct {
	Token               string `json:"token,omitempty"`
	VolunteerRegistered bool   `json:"volunteerRegistered,omitempty"`
	VolunteerName       string `json:"volunteerName,omitempty"`
}

// Authenticated reports whether a bearer token is present.
func (s Session) Authenticated() bool { return s.Token != "" }

// Store persists sessions keyed by an opaque session ID.
type Store interface {
	// Get returns the session for id. A missing session is not an error;
	// the zero Session is returned.
	Get(ctx context.Context, id string) (Session, error)

	// Put stores the session for id, replacing any previous value, and
	// notifies watchers.
	Put(ctx context.Context, id string, sess Session) error

	// Clear removes the session for id and notifies watchers with the
	// zero Session. Logout must always succeed locally, so Clear on a
	// missing session is a no-op.
	Clear(ctx context.Context, id string) error

	// Watch returns a channel receiving the session value after every
	// Put/Clear for id, and a cancel func releasing the watcher.
	Watch(id string) (<-chan Session, func())

	// Close releases store resources.
	Close() error
}
