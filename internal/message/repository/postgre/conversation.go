package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/google/uuid"

	"chat-api/internal/message/repository"
	"chat-api/internal/model"
	postgresPkg "chat-api/pkg/postgre"
)

func (r *implRepository) GetOrCreateConversation(ctx context.Context, sc model.Scope, userA, userB string) (model.Conversation, error) {
	if err := postgresPkg.ValidateUUIDs([]string{userA, userB}); err != nil {
		r.l.Errorf(ctx, "internal.message.repository.postgres.GetOrCreateConversation.ValidateUUIDs: %v", err)
		return model.Conversation{}, err
	}

	a, b := canonicalPair(userA, userB)
	now := r.clock()

	// The no-op DO UPDATE makes the statement return the existing row on
	// conflict instead of nothing.
	query := fmt.Sprintf(`
		INSERT INTO conversations (id, user_a, user_b, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (user_a, user_b) DO UPDATE SET user_a = EXCLUDED.user_a
		RETURNING %s`, conversationColumns)

	var row conversationRow
	if err := queries.Raw(query, uuid.NewString(), a, b, now).Bind(ctx, r.db, &row); err != nil {
		r.l.Errorf(ctx, "internal.message.repository.postgres.GetOrCreateConversation.Bind: %v", err)
		return model.Conversation{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) GetConversation(ctx context.Context, sc model.Scope, userA, userB string) (model.Conversation, error) {
	if err := postgresPkg.ValidateUUIDs([]string{userA, userB}); err != nil {
		r.l.Errorf(ctx, "internal.message.repository.postgres.GetConversation.ValidateUUIDs: %v", err)
		return model.Conversation{}, err
	}

	a, b := canonicalPair(userA, userB)

	query := fmt.Sprintf(`SELECT %s FROM conversations WHERE user_a = $1 AND user_b = $2`, conversationColumns)

	var row conversationRow
	if err := queries.Raw(query, a, b).Bind(ctx, r.db, &row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Conversation{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.message.repository.postgres.GetConversation.Bind: %v", err)
		return model.Conversation{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) ListConversations(ctx context.Context, sc model.Scope, userID string) ([]model.Conversation, error) {
	if err := postgresPkg.IsUUID(userID); err != nil {
		r.l.Errorf(ctx, "internal.message.repository.postgres.ListConversations.IsUUID: %v", err)
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s FROM conversations
		WHERE user_a = $1 OR user_b = $1
		ORDER BY updated_at DESC`, conversationColumns)

	var rows []*conversationRow
	if err := queries.Raw(query, userID).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.message.repository.postgres.ListConversations.Bind: %v", err)
		return nil, err
	}

	convs := make([]model.Conversation, len(rows))
	for i, row := range rows {
		convs[i] = row.toModel()
	}

	return convs, nil
}
