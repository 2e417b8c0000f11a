package dto

import (
	"time"

	"crowdfund/internal/domain/user"
)

type UserDTO struct {
	ID          uint      `json:"id"`
	UUID        string    `json:"uuid"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	Role        string    `json:"role"`
	Enabled     bool      `json:"enabled"`
	CreatedAt   time.Time `json:"created_at"`
}

func UserToDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:          u.ID(),
		UUID:        u.UUID(),
		Email:       u.Email(),
		FirstName:   u.FirstName(),
		LastName:    u.LastName(),
		PhoneNumber: u.PhoneNumber(),
		Role:        string(u.Role()),
		Enabled:     u.Enabled(),
		CreatedAt:   u.CreatedAt(),
	}
}

func UsersToDTO(users []*user.User) []UserDTO {
	out := make([]UserDTO, len(users))
	for i, u := range users {
		out[i] = UserToDTO(u)
	}
	return out
}

type LoginResultDTO struct {
	AccessToken string  `json:"access_token"`
	ExpiresAt   int64   `json:"expires_at"`
	User        UserDTO `json:"user"`
}
