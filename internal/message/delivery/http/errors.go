package http

import (
	"net/http"

	"chat-api/internal/message"
	pkgErrors "chat-api/pkg/errors"
	"chat-api/pkg/response"
)

var errBadRequest = pkgErrors.NewHTTPError(30000, "invalid request", http.StatusBadRequest)

var errorMapping = response.ErrorMapping{
	errBadRequest:                   errBadRequest,
	message.ErrReceiverNotFound:     pkgErrors.NewHTTPError(30001, "receiver not found", http.StatusNotFound),
	message.ErrSelfMessage:          pkgErrors.NewHTTPError(30002, "cannot message yourself", http.StatusBadRequest),
	message.ErrEmptyMessage:         pkgErrors.NewHTTPError(30003, "message has no body and no attachment", http.StatusBadRequest),
	message.ErrAttachmentTooLarge:   pkgErrors.NewHTTPError(30004, "attachment exceeds the 5MB limit", http.StatusRequestEntityTooLarge),
	message.ErrMessageNotFound:      pkgErrors.NewHTTPError(30005, "message not found", http.StatusNotFound),
	message.ErrAttachmentNotFound:   pkgErrors.NewHTTPError(30006, "attachment not found", http.StatusNotFound),
	message.ErrConversationNotFound: pkgErrors.NewHTTPError(30007, "conversation not found", http.StatusNotFound),
	message.ErrNotParticipant:       pkgErrors.NewHTTPError(30008, "not a participant of this conversation", http.StatusForbidden),
}
