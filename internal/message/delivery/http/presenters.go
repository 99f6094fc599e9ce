package http

import (
	"mime/multipart"

	"chat-api/internal/message"
	"chat-api/internal/model"
	"chat-api/pkg/paginator"
	"chat-api/pkg/response"
)

// --- Request DTOs ---

type sendReq struct {
	Body string                `form:"body"`
	File *multipart.FileHeader `form:"file"`
}

type historyReq struct {
	paginator.PaginateQuery
}

// --- Response DTOs ---

type attachmentItem struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

type messageItem struct {
	ID             string            `json:"id"`
	ConversationID string            `json:"conversation_id"`
	SenderID       string            `json:"sender_id"`
	ReceiverID     string            `json:"receiver_id"`
	Body           *string           `json:"body,omitempty"`
	Attachment     *attachmentItem   `json:"attachment,omitempty"`
	CreatedAt      response.DateTime `json:"created_at"`
}

func newMessageItem(m model.Message) messageItem {
	item := messageItem{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		ReceiverID:     m.ReceiverID,
		Body:           m.Body,
		CreatedAt:      response.DateTime(m.CreatedAt),
	}
	if m.Attachment != nil {
		item.Attachment = &attachmentItem{
			Name:        m.Attachment.Name,
			ContentType: m.Attachment.ContentType,
			Size:        m.Attachment.Size,
		}
	}
	return item
}

type historyResp struct {
	ConversationID string                      `json:"conversation_id"`
	Messages       []messageItem               `json:"messages"`
	Paginator      paginator.PaginatorResponse `json:"paginator"`
}

func newHistoryResp(o message.HistoryOutput) historyResp {
	items := make([]messageItem, len(o.Messages))
	for i, m := range o.Messages {
		items[i] = newMessageItem(m)
	}
	return historyResp{
		ConversationID: o.Conversation.ID,
		Messages:       items,
		Paginator:      o.Paginator.ToResponse(),
	}
}

type conversationPeer struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	FullName  *string `json:"full_name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

type conversationItem struct {
	ID          string            `json:"id"`
	Peer        conversationPeer  `json:"peer"`
	LastMessage *messageItem      `json:"last_message,omitempty"`
	UpdatedAt   response.DateTime `json:"updated_at"`
}

func newConversationsResp(o message.ConversationsOutput) []conversationItem {
	items := make([]conversationItem, len(o.Conversations))
	for i, conv := range o.Conversations {
		item := conversationItem{
			ID: conv.Conversation.ID,
			Peer: conversationPeer{
				ID:        conv.Peer.ID,
				Username:  conv.Peer.Username,
				FullName:  conv.Peer.FullName,
				AvatarURL: conv.Peer.AvatarURL,
			},
			UpdatedAt: response.DateTime(conv.Conversation.UpdatedAt),
		}
		if conv.LastMessage != nil {
			m := newMessageItem(*conv.LastMessage)
			item.LastMessage = &m
		}
		items[i] = item
	}
	return items
}
