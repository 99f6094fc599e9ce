package postgres

import (
	"fmt"
	"strings"

	"github.com/aarondl/null/v8"

	"chat-api/internal/model"
	"chat-api/internal/user/repository"
	postgresPkg "chat-api/pkg/postgre"
)

const userColumns = `id, username, email, full_name, gender, avatar_url, password_hash, created_at, updated_at, deleted_at`

// userRow is the scan target for user queries.
type userRow struct {
	ID           string      `boil:"id"`
	Username     string      `boil:"username"`
	Email        string      `boil:"email"`
	FullName     null.String `boil:"full_name"`
	Gender       null.String `boil:"gender"`
	AvatarURL    null.String `boil:"avatar_url"`
	PasswordHash null.String `boil:"password_hash"`
	CreatedAt    null.Time   `boil:"created_at"`
	UpdatedAt    null.Time   `boil:"updated_at"`
	DeletedAt    null.Time   `boil:"deleted_at"`
}

type countRow struct {
	Count int64 `boil:"count"`
}

func (row *userRow) toModel() model.User {
	usr := model.User{
		ID:        row.ID,
		Username:  row.Username,
		Email:     row.Email,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}

	if row.FullName.Valid {
		usr.FullName = &row.FullName.String
	}
	if row.Gender.Valid {
		usr.Gender = &row.Gender.String
	}
	if row.AvatarURL.Valid {
		usr.AvatarURL = &row.AvatarURL.String
	}
	if row.PasswordHash.Valid {
		usr.PasswordHash = &row.PasswordHash.String
	}
	if row.DeletedAt.Valid {
		usr.DeletedAt = &row.DeletedAt.Time
	}

	return usr
}

// buildFilterClause translates a repository filter into a WHERE fragment.
// The returned clause always includes the soft-delete guard.
func buildFilterClause(filter repository.Filter) (string, []interface{}, error) {
	conds := []string{"deleted_at IS NULL"}
	args := []interface{}{}

	if len(filter.IDs) > 0 {
		if err := postgresPkg.ValidateUUIDs(filter.IDs); err != nil {
			return "", nil, err
		}
		placeholders := make([]string, len(filter.IDs))
		for i, id := range filter.IDs {
			args = append(args, id)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		conds = append(conds, fmt.Sprintf("id IN (%s)", strings.Join(placeholders, ", ")))
	}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(username ILIKE $%d OR full_name ILIKE $%d)", n, n))
	}

	if filter.ExcludeID != "" {
		if err := postgresPkg.IsUUID(filter.ExcludeID); err != nil {
			return "", nil, err
		}
		args = append(args, filter.ExcludeID)
		conds = append(conds, fmt.Sprintf("id <> $%d", len(args)))
	}

	return strings.Join(conds, " AND "), args, nil
}
