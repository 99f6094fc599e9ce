package http

import (
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"chat-api/internal/message"
	"chat-api/pkg/response"
	"chat-api/pkg/scope"
)

// Send persists a message to the user in the path and pushes it to both
// parties' live connections. Accepts multipart form with an optional file.
func (h *Handler) Send(c *gin.Context) {
	var req sendReq
	if err := c.ShouldBind(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.message.delivery.http.Send.ShouldBind: %v", err)
		response.ErrorWithMap(c, errBadRequest, errorMapping)
		return
	}

	ip := message.SendInput{
		ReceiverID: c.Param("id"),
		Body:       req.Body,
	}

	if req.File != nil {
		file, err := req.File.Open()
		if err != nil {
			h.l.Warnf(c.Request.Context(), "internal.message.delivery.http.Send.Open: %v", err)
			response.ErrorWithMap(c, errBadRequest, errorMapping)
			return
		}
		defer file.Close()

		ip.Attachment = &message.AttachmentInput{
			FileName:    req.File.Filename,
			ContentType: req.File.Header.Get("Content-Type"),
			Size:        req.File.Size,
			Reader:      file,
		}
	}

	sc := scope.GetScopeFromContext(c.Request.Context())

	out, err := h.uc.Send(c.Request.Context(), sc, ip)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.Created(c, newMessageItem(out.Message))
}

// History returns the paginated message history with the user in the path.
func (h *Handler) History(c *gin.Context) {
	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.message.delivery.http.History.ShouldBindQuery: %v", err)
		response.ErrorWithMap(c, errBadRequest, errorMapping)
		return
	}

	sc := scope.GetScopeFromContext(c.Request.Context())

	out, err := h.uc.History(c.Request.Context(), sc, message.HistoryInput{
		PeerID:        c.Param("id"),
		PaginateQuery: req.PaginateQuery,
	})
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newHistoryResp(out))
}

// Conversations lists the caller's conversations.
func (h *Handler) Conversations(c *gin.Context) {
	sc := scope.GetScopeFromContext(c.Request.Context())

	out, err := h.uc.Conversations(c.Request.Context(), sc)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newConversationsResp(out))
}

// DownloadAttachment streams a message's attachment to the client.
func (h *Handler) DownloadAttachment(c *gin.Context) {
	sc := scope.GetScopeFromContext(c.Request.Context())

	out, err := h.uc.DownloadAttachment(c.Request.Context(), sc, c.Param("id"))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}
	defer out.Reader.Close()

	c.Header("Content-Type", out.Headers.ContentType)
	c.Header("Content-Disposition", out.Headers.ContentDisposition)
	c.Header("Content-Length", strconv.FormatInt(out.Headers.ContentLength, 10))
	if out.Headers.ETag != "" {
		c.Header("ETag", out.Headers.ETag)
	}

	c.Status(200)
	if _, err := io.Copy(c.Writer, out.Reader); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.message.delivery.http.DownloadAttachment.Copy: %v", err)
	}
}
