package api

import (
	"time"

	"github.com/phrazzld/mesto-api/internal/domain"
)

// SignupRequest is the body of POST /signup. Profile fields are optional and
// default server-side when omitted.
type SignupRequest struct {
	Name     string `json:"name"     validate:"omitempty,min=2,max=30"`
	About    string `json:"about"    validate:"omitempty,min=2,max=30"`
	Avatar   string `json:"avatar"   validate:"omitempty,url"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// SigninRequest is the body of POST /signin.
type SigninRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest is the body of PATCH /users/me.
type UpdateProfileRequest struct {
	Name  string `json:"name"  validate:"required,min=2,max=30"`
	About string `json:"about" validate:"required,min=2,max=30"`
}

// UpdateAvatarRequest is the body of PATCH /users/me/avatar.
type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" validate:"required,url"`
}

// CreateCardRequest is the body of POST /cards. The owner never comes from
// the client; it is always the authenticated caller.
type CreateCardRequest struct {
	Name string `json:"name" validate:"required,min=2,max=30"`
	Link string `json:"link" validate:"required,url"`
}

// TokenResponse is the body of a successful POST /signin.
type TokenResponse struct {
	Token string `json:"token"`
}

// UserResponse represents the response data for a user.
// There is deliberately no password field of any kind.
type UserResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	About  string `json:"about"`
	Avatar string `json:"avatar"`
	Email  string `json:"email"`
}

// CardResponse represents the response data for a card.
type CardResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Link      string    `json:"link"`
	Owner     string    `json:"owner"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:     u.ID.Hex(),
		Name:   u.Name,
		About:  u.About,
		Avatar: u.Avatar,
		Email:  u.Email,
	}
}

func usersToResponse(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, userToResponse(&users[i]))
	}
	return out
}

func cardToResponse(c *domain.Card) CardResponse {
	likes := make([]string, 0, len(c.Likes))
	for _, id := range c.Likes {
		likes = append(likes, id.Hex())
	}
	return CardResponse{
		ID:        c.ID.Hex(),
		Name:      c.Name,
		Link:      c.Link,
		Owner:     c.Owner.Hex(),
		Likes:     likes,
		CreatedAt: c.CreatedAt,
	}
}

func cardsToResponse(cards []domain.Card) []CardResponse {
	out := make([]CardResponse, 0, len(cards))
	for i := range cards {
		out = append(out, cardToResponse(&cards[i]))
	}
	return out
}
