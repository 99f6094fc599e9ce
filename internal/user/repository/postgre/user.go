package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/google/uuid"

	"chat-api/internal/model"
	"chat-api/internal/user/repository"
	"chat-api/pkg/paginator"
	postgresPkg "chat-api/pkg/postgre"
)

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.User, error) {
	usr := opts.User
	if usr.ID == "" {
		usr.ID = uuid.NewString()
	} else if err := postgresPkg.IsUUID(usr.ID); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Create.IsUUID: %v", err)
		return model.User{}, err
	}

	now := r.clock()
	usr.CreatedAt = now
	usr.UpdatedAt = now

	query := fmt.Sprintf(`
		INSERT INTO users (id, username, email, full_name, gender, avatar_url, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s`, userColumns)

	var row userRow
	err := queries.Raw(query,
		usr.ID,
		usr.Username,
		usr.Email,
		usr.FullName,
		usr.Gender,
		usr.AvatarURL,
		usr.PasswordHash,
		usr.CreatedAt,
		usr.UpdatedAt,
	).Bind(ctx, r.db, &row)
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Create.Bind: %v", err)
		return model.User{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.User, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Detail.IsUUID: %v", err)
		return model.User{}, err
	}

	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1 AND deleted_at IS NULL`, userColumns)

	var row userRow
	if err := queries.Raw(query, id).Bind(ctx, r.db, &row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.postgres.Detail.Bind: %v", err)
		return model.User{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) GetOne(ctx context.Context, sc model.Scope, opts repository.GetOneOptions) (model.User, error) {
	var (
		cond string
		arg  interface{}
	)

	switch {
	case opts.ID != "":
		if err := postgresPkg.IsUUID(opts.ID); err != nil {
			r.l.Errorf(ctx, "internal.user.repository.postgres.GetOne.IsUUID: %v", err)
			return model.User{}, err
		}
		cond, arg = "id = $1", opts.ID
	case opts.Username != "":
		cond, arg = "username = $1", opts.Username
	case opts.Email != "":
		cond, arg = "email = $1", opts.Email
	default:
		return model.User{}, repository.ErrNotFound
	}

	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s AND deleted_at IS NULL`, userColumns, cond)

	var row userRow
	if err := queries.Raw(query, arg).Bind(ctx, r.db, &row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.postgres.GetOne.Bind: %v", err)
		return model.User{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.User, paginator.Paginator, error) {
	where, args, err := buildFilterClause(opts.Filter)
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Get.buildFilterClause: %v", err)
		return nil, paginator.Paginator{}, err
	}

	var total countRow
	countQuery := fmt.Sprintf(`SELECT COUNT(*) AS count FROM users WHERE %s`, where)
	if err := queries.Raw(countQuery, args...).Bind(ctx, r.db, &total); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Get.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	pq := opts.PaginateQuery
	pq.Adjust()

	query := fmt.Sprintf(`
		SELECT %s FROM users
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, userColumns, where, len(args)+1, len(args)+2)
	args = append(args, pq.Limit, pq.Offset())

	var rows []*userRow
	if err := queries.Raw(query, args...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Get.Bind: %v", err)
		return nil, paginator.Paginator{}, err
	}

	usrs := make([]model.User, len(rows))
	for i, row := range rows {
		usrs[i] = row.toModel()
	}

	return usrs, paginator.Paginator{
		Total:       total.Count,
		Count:       int64(len(usrs)),
		PerPage:     pq.Limit,
		CurrentPage: pq.Page,
	}, nil
}

func (r *implRepository) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.User, error) {
	where, args, err := buildFilterClause(opts.Filter)
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.List.buildFilterClause: %v", err)
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s ORDER BY username ASC`, userColumns, where)

	var rows []*userRow
	if err := queries.Raw(query, args...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.List.Bind: %v", err)
		return nil, err
	}

	usrs := make([]model.User, len(rows))
	for i, row := range rows {
		usrs[i] = row.toModel()
	}

	return usrs, nil
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.User, error) {
	usr := opts.User
	if err := postgresPkg.IsUUID(usr.ID); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Update.IsUUID: %v", err)
		return model.User{}, err
	}

	query := fmt.Sprintf(`
		UPDATE users
		SET full_name = $1, email = $2, gender = $3, avatar_url = $4, updated_at = $5
		WHERE id = $6 AND deleted_at IS NULL
		RETURNING %s`, userColumns)

	var row userRow
	err := queries.Raw(query,
		usr.FullName,
		usr.Email,
		usr.Gender,
		usr.AvatarURL,
		r.clock(),
		usr.ID,
	).Bind(ctx, r.db, &row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.postgres.Update.Bind: %v", err)
		return model.User{}, err
	}

	return row.toModel(), nil
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Delete.IsUUID: %v", err)
		return err
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`,
		r.clock(), id,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Delete.Exec: %v", err)
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.Delete.RowsAffected: %v", err)
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}
