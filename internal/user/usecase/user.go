package usecase

import (
	"context"
	"errors"

	"chat-api/internal/model"
	"chat-api/internal/user"
	"chat-api/internal/user/repository"
)

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (user.UserOutput, error) {
	usr, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.UserOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Detail: %v", err)
		return user.UserOutput{}, err
	}

	usr.PasswordHash = nil
	return user.UserOutput{User: usr}, nil
}

func (uc *usecase) DetailMe(ctx context.Context, sc model.Scope) (user.UserOutput, error) {
	usr, err := uc.repo.Detail(ctx, sc, sc.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.UserOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.DetailMe: %v", err)
		return user.UserOutput{}, err
	}

	usr.PasswordHash = nil
	return user.UserOutput{User: usr}, nil
}

func (uc *usecase) UpdateProfile(ctx context.Context, sc model.Scope, ip user.UpdateProfileInput) (user.UserOutput, error) {
	usr, err := uc.repo.Detail(ctx, sc, sc.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.UserOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.UpdateProfile.Detail: %v", err)
		return user.UserOutput{}, err
	}

	if ip.FullName != nil {
		usr.FullName = ip.FullName
	}
	if ip.Email != nil && *ip.Email != usr.Email {
		if _, err := uc.repo.GetOne(ctx, sc, repository.GetOneOptions{Email: *ip.Email}); err == nil {
			return user.UserOutput{}, user.ErrEmailTaken
		} else if !errors.Is(err, repository.ErrNotFound) {
			uc.l.Errorf(ctx, "internal.user.usecase.UpdateProfile.GetOne: %v", err)
			return user.UserOutput{}, err
		}
		usr.Email = *ip.Email
	}
	if ip.Gender != nil {
		usr.Gender = ip.Gender
	}
	if ip.AvatarURL != nil {
		usr.AvatarURL = ip.AvatarURL
	}

	updated, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{User: usr})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.UserOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.UpdateProfile.Update: %v", err)
		return user.UserOutput{}, err
	}

	updated.PasswordHash = nil
	return user.UserOutput{User: updated}, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope) error {
	if err := uc.repo.Delete(ctx, sc, sc.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Delete: %v", err)
		return err
	}
	return nil
}

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip user.GetInput) (user.GetUserOutput, error) {
	opts := repository.GetOptions{
		Filter: repository.Filter{
			IDs:    ip.Filter.IDs,
			Search: ip.Filter.Search,
			// The directory lists peers, not the caller.
			ExcludeID: sc.UserID,
		},
		PaginateQuery: ip.PaginateQuery,
	}

	usrs, pag, err := uc.repo.Get(ctx, sc, opts)
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Get: %v", err)
		return user.GetUserOutput{}, err
	}

	for i := range usrs {
		usrs[i].PasswordHash = nil
	}

	return user.GetUserOutput{
		Users:     usrs,
		Paginator: pag,
	}, nil
}

func (uc *usecase) GetOne(ctx context.Context, sc model.Scope, ip user.GetOneInput) (model.User, error) {
	usr, err := uc.repo.GetOne(ctx, sc, repository.GetOneOptions{
		ID:       ip.ID,
		Username: ip.Username,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.User{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.GetOne: %v", err)
		return model.User{}, err
	}

	usr.PasswordHash = nil
	return usr, nil
}
