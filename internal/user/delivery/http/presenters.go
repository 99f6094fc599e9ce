package http

import (
	"chat-api/internal/model"
	"chat-api/internal/user"
	"chat-api/pkg/paginator"
	"chat-api/pkg/response"
)

// --- Request DTOs ---

type registerReq struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	FullName        string `json:"full_name"`
	Gender          string `json:"gender"`
}

func (r registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{
		Username:        r.Username,
		Email:           r.Email,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
		FullName:        r.FullName,
		Gender:          r.Gender,
	}
}

type loginReq struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{
		Login:    r.Login,
		Password: r.Password,
	}
}

type updateProfileReq struct {
	FullName  *string `json:"full_name"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Gender    *string `json:"gender"`
	AvatarURL *string `json:"avatar_url"`
}

func (r updateProfileReq) toInput() user.UpdateProfileInput {
	return user.UpdateProfileInput{
		FullName:  r.FullName,
		Email:     r.Email,
		Gender:    r.Gender,
		AvatarURL: r.AvatarURL,
	}
}

type listReq struct {
	Search string `form:"search"`
	paginator.PaginateQuery
}

func (r listReq) toInput() user.GetInput {
	return user.GetInput{
		Filter:        user.Filter{Search: r.Search},
		PaginateQuery: r.PaginateQuery,
	}
}

// --- Response DTOs ---

type userItem struct {
	ID        string            `json:"id"`
	Username  string            `json:"username"`
	Email     string            `json:"email"`
	FullName  *string           `json:"full_name,omitempty"`
	Gender    *string           `json:"gender,omitempty"`
	AvatarURL *string           `json:"avatar_url,omitempty"`
	CreatedAt response.DateTime `json:"created_at"`
}

func newUserItem(u model.User) userItem {
	return userItem{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Gender:    u.Gender,
		AvatarURL: u.AvatarURL,
		CreatedAt: response.DateTime(u.CreatedAt),
	}
}

type authResp struct {
	Token string   `json:"token"`
	User  userItem `json:"user"`
}

func newAuthResp(o user.AuthOutput) authResp {
	return authResp{
		Token: o.Token,
		User:  newUserItem(o.User),
	}
}

type listResp struct {
	Users     []userItem                  `json:"users"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newListResp(o user.GetUserOutput) listResp {
	items := make([]userItem, len(o.Users))
	for i, u := range o.Users {
		items[i] = newUserItem(u)
	}
	return listResp{
		Users:     items,
		Paginator: o.Paginator.ToResponse(),
	}
}
