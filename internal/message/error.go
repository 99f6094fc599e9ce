package message

import "errors"

var (
	ErrReceiverNotFound     = errors.New("receiver not found")
	ErrSelfMessage          = errors.New("cannot message yourself")
	ErrEmptyMessage         = errors.New("message has no body and no attachment")
	ErrAttachmentTooLarge   = errors.New("attachment too large")
	ErrMessageNotFound      = errors.New("message not found")
	ErrAttachmentNotFound   = errors.New("message has no attachment")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrNotParticipant       = errors.New("not a participant of this conversation")
)
