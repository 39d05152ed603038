// Package session persists the authenticated identity context: the access
// token and the student id the backend issued at login. These are the only
// two values the client keeps on disk.
package session

import "context"

// Storage keys. They mirror the names the backend uses in its login payload.
const (
	keyAccessToken = "accessToken"
	keyStudentID   = "studentId"
)

// Session is the identity context for the active user. Exactly one session
// is active at a time; it lives until logout or a confirmed 401/403.
type Session struct {
	AccessToken string
	StudentID   string
}

// Valid reports whether the session can gate an authenticated call: both
// values must be present. Token freshness is checked separately, the server
// stays the authority.
func (s Session) Valid() bool {
	return s.AccessToken != "" && s.StudentID != ""
}

// Store reads and writes the persisted session. Components that need auth
// take a Store explicitly instead of reaching into ambient storage.
type Store interface {
	// Load returns the stored session, or a zero Session when none exists.
	Load(ctx context.Context) (Session, error)

	// Save persists both values atomically, replacing any previous session.
	Save(ctx context.Context, s Session) error

	// Clear removes the stored session (logout, confirmed auth failure).
	Clear(ctx context.Context) error
}
