package models

import "time"

// User represents an account entity used for authentication and
// authorization. A zero UserID marks the user as anonymous: such users are
// never persisted and hold no permissions.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Name is the display name of the user. Non-sensitive, may be shown in
	// rendered templates.
	Name string `json:"name"`

	// Password carries the plaintext password on inbound register/login
	// requests only. It is never persisted and never serialized back out.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored for the account.
	// Never exposed via JSON.
	PasswordHash string `json:"-"`

	// IsActive reports whether the account may authenticate and hold
	// permissions. Inactive users fail every permission check.
	IsActive bool `json:"-"`

	// IsSuperuser grants every permission implicitly without consulting
	// the permission tables.
	IsSuperuser bool `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// AnonymousUser returns the user value attached to requests that carry no
// authenticated identity. It is inactive, holds no permissions, and has a
// zero UserID.
func AnonymousUser() User {
	return User{}
}

// IsAnonymous reports whether u represents an unauthenticated request user.
func (u User) IsAnonymous() bool {
	return u.UserID == 0
}

// IsAuthenticated reports whether u belongs to a persisted account.
func (u User) IsAuthenticated() bool {
	return !u.IsAnonymous()
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
