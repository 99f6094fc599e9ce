package model

import (
	"time"
)

// Conversation is a two-party chat thread. Participants are stored in
// canonical order (UserA < UserB lexicographically) so a pair of users maps
// to exactly one conversation.
type Conversation struct {
	ID        string    `json:"id"`
	UserA     string    `json:"user_a"`
	UserB     string    `json:"user_b"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OtherParticipant returns the participant that is not userID, or an empty
// string if userID is not part of the conversation.
func (c *Conversation) OtherParticipant(userID string) string {
	switch userID {
	case c.UserA:
		return c.UserB
	case c.UserB:
		return c.UserA
	default:
		return ""
	}
}

// HasParticipant reports whether userID is part of the conversation.
func (c *Conversation) HasParticipant(userID string) bool {
	return userID == c.UserA || userID == c.UserB
}
