package usecase

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"chat-api/internal/message"
	"chat-api/internal/message/repository"
	"chat-api/internal/model"
	userRepo "chat-api/internal/user/repository"
	pkgMinio "chat-api/pkg/minio"
)

func (uc *usecase) Send(ctx context.Context, sc model.Scope, ip message.SendInput) (message.MessageOutput, error) {
	if ip.ReceiverID == sc.UserID {
		return message.MessageOutput{}, message.ErrSelfMessage
	}
	if strings.TrimSpace(ip.Body) == "" && ip.Attachment == nil {
		return message.MessageOutput{}, message.ErrEmptyMessage
	}

	if _, err := uc.userRepo.Detail(ctx, sc, ip.ReceiverID); err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return message.MessageOutput{}, message.ErrReceiverNotFound
		}
		uc.l.Errorf(ctx, "internal.message.usecase.Send.Detail: %v", err)
		return message.MessageOutput{}, err
	}

	conv, err := uc.repo.GetOrCreateConversation(ctx, sc, sc.UserID, ip.ReceiverID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.message.usecase.Send.GetOrCreateConversation: %v", err)
		return message.MessageOutput{}, err
	}

	msg := model.Message{
		ConversationID: conv.ID,
		SenderID:       sc.UserID,
		ReceiverID:     ip.ReceiverID,
	}
	if body := strings.TrimSpace(ip.Body); body != "" {
		msg.Body = &body
	}

	if ip.Attachment != nil {
		attachment, err := uc.uploadAttachment(ctx, conv.ID, ip.Attachment)
		if err != nil {
			return message.MessageOutput{}, err
		}
		msg.Attachment = attachment
	}

	stored, err := uc.repo.CreateMessage(ctx, sc, repository.CreateMessageOptions{Message: msg})
	if err != nil {
		uc.l.Errorf(ctx, "internal.message.usecase.Send.CreateMessage: %v", err)
		return message.MessageOutput{}, err
	}

	// Push delivery is best effort and happens only after the durable write.
	if err := uc.notifier.NotifyMessage(ctx, &stored, []string{stored.SenderID, stored.ReceiverID}); err != nil {
		uc.l.Warnf(ctx, "internal.message.usecase.Send.NotifyMessage: %v", err)
	}

	return message.MessageOutput{Message: stored}, nil
}

func (uc *usecase) uploadAttachment(ctx context.Context, conversationID string, ip *message.AttachmentInput) (*model.Attachment, error) {
	if ip.Size > message.MaxAttachmentSize {
		return nil, message.ErrAttachmentTooLarge
	}

	objectName := fmt.Sprintf("%s/%s%s", conversationID, uuid.NewString(), path.Ext(ip.FileName))

	contentType := ip.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	info, err := uc.storage.UploadFile(ctx, &pkgMinio.UploadRequest{
		BucketName:   uc.bucket,
		ObjectName:   objectName,
		OriginalName: ip.FileName,
		Reader:       ip.Reader,
		Size:         ip.Size,
		ContentType:  contentType,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.message.usecase.uploadAttachment.UploadFile: %v", err)
		return nil, err
	}

	return &model.Attachment{
		Name:        ip.FileName,
		ContentType: contentType,
		ObjectName:  info.ObjectName,
		Size:        info.Size,
	}, nil
}

func (uc *usecase) History(ctx context.Context, sc model.Scope, ip message.HistoryInput) (message.HistoryOutput, error) {
	conv, err := uc.repo.GetConversation(ctx, sc, sc.UserID, ip.PeerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return message.HistoryOutput{}, message.ErrConversationNotFound
		}
		uc.l.Errorf(ctx, "internal.message.usecase.History.GetConversation: %v", err)
		return message.HistoryOutput{}, err
	}

	msgs, pag, err := uc.repo.ListMessages(ctx, sc, repository.ListMessagesOptions{
		ConversationID: conv.ID,
		PaginateQuery:  ip.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.message.usecase.History.ListMessages: %v", err)
		return message.HistoryOutput{}, err
	}

	return message.HistoryOutput{
		Conversation: conv,
		Messages:     msgs,
		Paginator:    pag,
	}, nil
}

func (uc *usecase) Conversations(ctx context.Context, sc model.Scope) (message.ConversationsOutput, error) {
	convs, err := uc.repo.ListConversations(ctx, sc, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.message.usecase.Conversations.ListConversations: %v", err)
		return message.ConversationsOutput{}, err
	}
	if len(convs) == 0 {
		return message.ConversationsOutput{Conversations: []message.ConversationItem{}}, nil
	}

	convIDs := make([]string, len(convs))
	peerIDs := make([]string, len(convs))
	for i, conv := range convs {
		convIDs[i] = conv.ID
		peerIDs[i] = conv.OtherParticipant(sc.UserID)
	}

	last, err := uc.repo.LastMessages(ctx, sc, convIDs)
	if err != nil {
		uc.l.Errorf(ctx, "internal.message.usecase.Conversations.LastMessages: %v", err)
		return message.ConversationsOutput{}, err
	}

	peers, err := uc.userRepo.List(ctx, sc, userRepo.ListOptions{
		Filter: userRepo.Filter{IDs: peerIDs},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.message.usecase.Conversations.List: %v", err)
		return message.ConversationsOutput{}, err
	}

	peerByID := make(map[string]model.User, len(peers))
	for _, p := range peers {
		p.PasswordHash = nil
		peerByID[p.ID] = p
	}

	items := make([]message.ConversationItem, 0, len(convs))
	for _, conv := range convs {
		item := message.ConversationItem{
			Conversation: conv,
			Peer:         peerByID[conv.OtherParticipant(sc.UserID)],
		}
		if msg, ok := last[conv.ID]; ok {
			m := msg
			item.LastMessage = &m
		}
		items = append(items, item)
	}

	return message.ConversationsOutput{Conversations: items}, nil
}
