package model

import (
	"time"
)

// Message is a single direct message between two users. A message carries a
// text body, an attachment, or both.
type Message struct {
	ID             string      `json:"id"`
	ConversationID string      `json:"conversation_id"`
	SenderID       string      `json:"sender_id"`
	ReceiverID     string      `json:"receiver_id"`
	Body           *string     `json:"body,omitempty"`
	Attachment     *Attachment `json:"attachment,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}

// Attachment describes a file stored in the object store alongside a message.
type Attachment struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	ObjectName  string `json:"-"`
	Size        int64  `json:"size"`
}

// HasAttachment reports whether the message carries a file.
func (m *Message) HasAttachment() bool {
	return m.Attachment != nil
}
