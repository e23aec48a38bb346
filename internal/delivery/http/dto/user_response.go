package dto

import (
	"time"

	"jobmatch/internal/domain/user"
	"jobmatch/internal/usecase"
)

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromUser(u user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func FromUsers(list []user.User) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, FromUser(u))
	}
	return out
}

type SessionResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"tokenType"`
	ExpiresIn int          `json:"expiresIn"`
	User      UserResponse `json:"user"`
}

func FromSession(s usecase.Session) SessionResponse {
	return SessionResponse{
		Token:     s.Token,
		TokenType: s.TokenType,
		ExpiresIn: s.ExpiresIn,
		User:      FromUser(s.User),
	}
}
