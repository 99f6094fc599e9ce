package message

import (
	"io"

	"chat-api/internal/model"
	"chat-api/pkg/minio"
	"chat-api/pkg/paginator"
)

// MaxAttachmentSize caps uploads at 5 MiB.
const MaxAttachmentSize = 5 << 20

type SendInput struct {
	ReceiverID string
	Body       string
	Attachment *AttachmentInput
}

type AttachmentInput struct {
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

type HistoryInput struct {
	PeerID        string
	PaginateQuery paginator.PaginateQuery
}

type MessageOutput struct {
	Message model.Message
}

type HistoryOutput struct {
	Conversation model.Conversation
	Messages     []model.Message
	Paginator    paginator.Paginator
}

type ConversationItem struct {
	Conversation model.Conversation
	Peer         model.User
	LastMessage  *model.Message
}

type ConversationsOutput struct {
	Conversations []ConversationItem
}

type AttachmentOutput struct {
	Attachment model.Attachment
	Reader     io.ReadCloser
	Headers    minio.DownloadHeaders
}
