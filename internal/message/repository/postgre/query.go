package postgres

import (
	"github.com/aarondl/null/v8"

	"chat-api/internal/model"
)

const conversationColumns = `id, user_a, user_b, created_at, updated_at`

const messageColumns = `id, conversation_id, sender_id, receiver_id, body, attachment_name, attachment_type, attachment_object, attachment_size, created_at`

// conversationRow is the scan target for conversation queries.
type conversationRow struct {
	ID        string    `boil:"id"`
	UserA     string    `boil:"user_a"`
	UserB     string    `boil:"user_b"`
	CreatedAt null.Time `boil:"created_at"`
	UpdatedAt null.Time `boil:"updated_at"`
}

func (row *conversationRow) toModel() model.Conversation {
	return model.Conversation{
		ID:        row.ID,
		UserA:     row.UserA,
		UserB:     row.UserB,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}

// messageRow is the scan target for message queries.
type messageRow struct {
	ID               string      `boil:"id"`
	ConversationID   string      `boil:"conversation_id"`
	SenderID         string      `boil:"sender_id"`
	ReceiverID       string      `boil:"receiver_id"`
	Body             null.String `boil:"body"`
	AttachmentName   null.String `boil:"attachment_name"`
	AttachmentType   null.String `boil:"attachment_type"`
	AttachmentObject null.String `boil:"attachment_object"`
	AttachmentSize   null.Int64  `boil:"attachment_size"`
	CreatedAt        null.Time   `boil:"created_at"`
}

type countRow struct {
	Count int64 `boil:"count"`
}

func (row *messageRow) toModel() model.Message {
	msg := model.Message{
		ID:             row.ID,
		ConversationID: row.ConversationID,
		SenderID:       row.SenderID,
		ReceiverID:     row.ReceiverID,
		CreatedAt:      row.CreatedAt.Time,
	}

	if row.Body.Valid {
		msg.Body = &row.Body.String
	}
	if row.AttachmentObject.Valid {
		msg.Attachment = &model.Attachment{
			Name:        row.AttachmentName.String,
			ContentType: row.AttachmentType.String,
			ObjectName:  row.AttachmentObject.String,
			Size:        row.AttachmentSize.Int64,
		}
	}

	return msg
}

// canonicalPair orders two participant ids so a pair of users always maps to
// the same (user_a, user_b) columns.
func canonicalPair(a, b string) (string, string) {
	if a < b {
		return a, b
	}
	return b, a
}
