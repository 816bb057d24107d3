package models

import "time"

// Message source markers. A message belongs either to a persisted user
// account or to an (possibly anonymous) session.
const (
	MessageSourceUser    = "user"
	MessageSourceSession = "session"
)

// Message is a one-shot notification queued for a user or a session.
// Messages follow a get-and-delete protocol: reading the queue consumes it.
type Message struct {
	// MessageID is the storage-assigned identifier, used only to keep
	// delivery ordered.
	MessageID int64 `json:"-"`

	// Text is the message body shown to the user.
	Text string `json:"text"`

	// Source records which queue the message came from,
	// [MessageSourceUser] or [MessageSourceSession].
	Source string `json:"source"`

	// CreatedAt is the timestamp when the message was queued.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Message model.
func (m Message) TableName() string {
	return "user_messages"
}
