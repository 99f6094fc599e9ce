package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/google/uuid"

	"chat-api/internal/message/repository"
	"chat-api/internal/model"
	"chat-api/pkg/paginator"
	postgresPkg "chat-api/pkg/postgre"
)

func (r *implRepository) CreateMessage(ctx context.Context, sc model.Scope, opts repository.CreateMessageOptions) (model.Message, error) {
	msg := opts.Message
	if err := postgresPkg.ValidateUUIDs([]string{msg.ConversationID, msg.SenderID, msg.ReceiverID}); err != nil {
		r.l.Errorf(ctx, "internal.message.repository.postgres.CreateMessage.ValidateUUIDs: %v", err)
		return model.Message{}, err
	}

	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	msg.CreatedAt = r.clock()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "internal.message.repository.postgres.CreateMessage.BeginTx: %v", err)
		return model.Message{}, err
	}
	defer tx.Rollback()

	var (
		attName, attType, attObject interface{}
		attSize                     interface{}
	)
	if msg.Attachment != nil {
		attName = msg.Attachment.Name
		attType = msg.Attachment.ContentType
		attObject = msg.Attachment.ObjectName
		attSize = msg.Attachment.Size
	}

	query := fmt.Sprintf(`
		INSERT INTO messages (id, conversation_id, sender_id, receiver_id, body, attachment_name, attachment_type, attachment_object, attachment_size, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s`, messageColumns)

	var row messageRow
	err = queries.Raw(query,
		msg.ID,
		msg.ConversationID,
		msg.SenderID,
		msg.ReceiverID,
		msg.Body,
		attName,
		attType,
		attObject,
		attSize,
		msg.CreatedAt,
	).Bind(ctx, tx, &row)
	if err != nil {
		r.l.Errorf(ctx, "internal.message.repository.postgres.CreateMessage.Bind: %v", err)
		return model.Message{}, err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE conversations SET updated_at = $1 WHERE id = $2`,
		msg.CreatedAt, msg.ConversationID,
	); err != nil {
		r.l.Errorf(ctx, "internal.message.repository.postgres.CreateMessage.Touch: %v", err)
		return model.Message{}, err
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "internal.message.repository.postgres.CreateMessage.Commit: %v", err)
		return model.Message{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) GetMessage(ctx context.Context, sc model.Scope, id string) (model.Message, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.message.repository.postgres.GetMessage.IsUUID: %v", err)
		return model.Message{}, err
	}

	query := fmt.Sprintf(`SELECT %s FROM messages WHERE id = $1`, messageColumns)

	var row messageRow
	if err := queries.Raw(query, id).Bind(ctx, r.db, &row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Message{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.message.repository.postgres.GetMessage.Bind: %v", err)
		return model.Message{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) ListMessages(ctx context.Context, sc model.Scope, opts repository.ListMessagesOptions) ([]model.Message, paginator.Paginator, error) {
	if err := postgresPkg.IsUUID(opts.ConversationID); err != nil {
		r.l.Errorf(ctx, "internal.message.repository.postgres.ListMessages.IsUUID: %v", err)
		return nil, paginator.Paginator{}, err
	}

	var total countRow
	if err := queries.Raw(
		`SELECT COUNT(*) AS count FROM messages WHERE conversation_id = $1`,
		opts.ConversationID,
	).Bind(ctx, r.db, &total); err != nil {
		r.l.Errorf(ctx, "internal.message.repository.postgres.ListMessages.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	pq := opts.PaginateQuery
	pq.Adjust()

	query := fmt.Sprintf(`
		SELECT %s FROM messages
		WHERE conversation_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, messageColumns)

	var rows []*messageRow
	if err := queries.Raw(query, opts.ConversationID, pq.Limit, pq.Offset()).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.message.repository.postgres.ListMessages.Bind: %v", err)
		return nil, paginator.Paginator{}, err
	}

	msgs := make([]model.Message, len(rows))
	for i, row := range rows {
		msgs[i] = row.toModel()
	}

	return msgs, paginator.Paginator{
		Total:       total.Count,
		Count:       int64(len(msgs)),
		PerPage:     pq.Limit,
		CurrentPage: pq.Page,
	}, nil
}

func (r *implRepository) LastMessages(ctx context.Context, sc model.Scope, conversationIDs []string) (map[string]model.Message, error) {
	if len(conversationIDs) == 0 {
		return map[string]model.Message{}, nil
	}
	if err := postgresPkg.ValidateUUIDs(conversationIDs); err != nil {
		r.l.Errorf(ctx, "internal.message.repository.postgres.LastMessages.ValidateUUIDs: %v", err)
		return nil, err
	}

	placeholders := make([]string, len(conversationIDs))
	args := make([]interface{}, len(conversationIDs))
	for i, id := range conversationIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := fmt.Sprintf(`
		SELECT DISTINCT ON (conversation_id) %s
		FROM messages
		WHERE conversation_id IN (%s)
		ORDER BY conversation_id, created_at DESC`, messageColumns, strings.Join(placeholders, ", "))

	var rows []*messageRow
	if err := queries.Raw(query, args...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.message.repository.postgres.LastMessages.Bind: %v", err)
		return nil, err
	}

	last := make(map[string]model.Message, len(rows))
	for _, row := range rows {
		last[row.ConversationID] = row.toModel()
	}

	return last, nil
}
