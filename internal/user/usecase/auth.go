package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"chat-api/internal/model"
	"chat-api/internal/user"
	"chat-api/internal/user/repository"
	"chat-api/pkg/encrypter"
	"chat-api/pkg/scope"
)

// defaultAvatarURL builds an initials avatar for accounts registered without
// a picture.
func defaultAvatarURL(fullName, username string) string {
	name := fullName
	if name == "" {
		name = username
	}
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", strings.ReplaceAll(name, " ", "+"))
}

func (uc *usecase) Register(ctx context.Context, ip user.RegisterInput) (user.AuthOutput, error) {
	if ip.Username == "" || ip.Email == "" || ip.Password == "" || ip.ConfirmPassword == "" {
		return user.AuthOutput{}, user.ErrFieldRequired
	}
	if ip.Password != ip.ConfirmPassword {
		return user.AuthOutput{}, user.ErrPasswordMismatch
	}

	sc := model.Scope{}

	if _, err := uc.repo.GetOne(ctx, sc, repository.GetOneOptions{Username: ip.Username}); err == nil {
		return user.AuthOutput{}, user.ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		uc.l.Errorf(ctx, "internal.user.usecase.Register.GetOne: %v", err)
		return user.AuthOutput{}, err
	}

	if _, err := uc.repo.GetOne(ctx, sc, repository.GetOneOptions{Email: ip.Email}); err == nil {
		return user.AuthOutput{}, user.ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		uc.l.Errorf(ctx, "internal.user.usecase.Register.GetOne: %v", err)
		return user.AuthOutput{}, err
	}

	hash, err := encrypter.HashPassword(ip.Password)
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Register.HashPassword: %v", err)
		return user.AuthOutput{}, err
	}

	newUser := model.User{
		Username:     ip.Username,
		Email:        ip.Email,
		PasswordHash: &hash,
	}
	if ip.FullName != "" {
		newUser.FullName = &ip.FullName
	}
	if ip.Gender != "" {
		newUser.Gender = &ip.Gender
	}

	avatarURL := defaultAvatarURL(ip.FullName, ip.Username)
	newUser.AvatarURL = &avatarURL

	created, err := uc.repo.Create(ctx, sc, repository.CreateOptions{User: newUser})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Register.Create: %v", err)
		return user.AuthOutput{}, err
	}

	token, err := uc.jwtMgr.CreateToken(scope.Payload{
		UserID:   created.ID,
		Username: created.Username,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Register.CreateToken: %v", err)
		return user.AuthOutput{}, err
	}

	created.PasswordHash = nil
	return user.AuthOutput{Token: token, User: created}, nil
}

func (uc *usecase) Login(ctx context.Context, ip user.LoginInput) (user.AuthOutput, error) {
	if ip.Login == "" || ip.Password == "" {
		return user.AuthOutput{}, user.ErrFieldRequired
	}

	sc := model.Scope{}

	usr, err := uc.repo.GetOne(ctx, sc, repository.GetOneOptions{Username: ip.Login})
	if errors.Is(err, repository.ErrNotFound) {
		usr, err = uc.repo.GetOne(ctx, sc, repository.GetOneOptions{Email: ip.Login})
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.AuthOutput{}, user.ErrWrongCredentials
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Login.GetOne: %v", err)
		return user.AuthOutput{}, err
	}

	if usr.PasswordHash == nil || !encrypter.CheckPasswordHash(ip.Password, *usr.PasswordHash) {
		return user.AuthOutput{}, user.ErrWrongCredentials
	}

	token, err := uc.jwtMgr.CreateToken(scope.Payload{
		UserID:   usr.ID,
		Username: usr.Username,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Login.CreateToken: %v", err)
		return user.AuthOutput{}, err
	}

	usr.PasswordHash = nil
	return user.AuthOutput{Token: token, User: usr}, nil
}
