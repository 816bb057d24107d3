package models

import "time"

// Session is a server-side session record identified by an opaque key
// carried in a cookie. Sessions may be anonymous (UserID == 0) and expire
// after a configured lifetime; expired sessions are swept by a background
// worker.
type Session struct {
	// Key is the opaque session identifier stored in the session cookie.
	Key string `json:"-"`

	// UserID is the owning account, or zero for anonymous sessions.
	UserID int64 `json:"-"`

	// CreatedAt is the timestamp when the session was created.
	CreatedAt time.Time `json:"created_at"`

	// ExpiresAt is the moment after which the session is no longer valid.
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is no longer valid at the given time.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}
