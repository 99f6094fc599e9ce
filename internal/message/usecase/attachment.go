package usecase

import (
	"context"
	"errors"
	"fmt"

	"chat-api/internal/message"
	"chat-api/internal/message/repository"
	"chat-api/internal/model"
	pkgMinio "chat-api/pkg/minio"
)

func (uc *usecase) DownloadAttachment(ctx context.Context, sc model.Scope, messageID string) (message.AttachmentOutput, error) {
	msg, err := uc.repo.GetMessage(ctx, sc, messageID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return message.AttachmentOutput{}, message.ErrMessageNotFound
		}
		uc.l.Errorf(ctx, "internal.message.usecase.DownloadAttachment.GetMessage: %v", err)
		return message.AttachmentOutput{}, err
	}

	if msg.SenderID != sc.UserID && msg.ReceiverID != sc.UserID {
		return message.AttachmentOutput{}, message.ErrNotParticipant
	}
	if msg.Attachment == nil {
		return message.AttachmentOutput{}, message.ErrAttachmentNotFound
	}

	reader, headers, err := uc.storage.DownloadFile(ctx, &pkgMinio.DownloadRequest{
		BucketName: uc.bucket,
		ObjectName: msg.Attachment.ObjectName,
	})
	if err != nil {
		if errors.Is(err, pkgMinio.ErrObjectNotFound) {
			return message.AttachmentOutput{}, message.ErrAttachmentNotFound
		}
		uc.l.Errorf(ctx, "internal.message.usecase.DownloadAttachment.DownloadFile: %v", err)
		return message.AttachmentOutput{}, err
	}

	headers.ContentDisposition = fmt.Sprintf("attachment; filename=%q", msg.Attachment.Name)

	return message.AttachmentOutput{
		Attachment: *msg.Attachment,
		Reader:     reader,
		Headers:    *headers,
	}, nil
}
