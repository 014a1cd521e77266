package dto

import (
	"time"

	"helpdesk/internal/domain/user"
)

// UserDTO is the wire shape for accounts. Role travels as the legacy
// is_admin/is_staff flag pair.
type UserDTO struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"is_admin"`
	IsStaff   bool      `json:"is_staff"`
	CreatedAt time.Time `json:"created_at"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	isAdmin, isStaff := u.Role().Flags()
	return &UserDTO{
		ID:        u.ID(),
		Username:  u.Username(),
		IsAdmin:   isAdmin,
		IsStaff:   isStaff,
		CreatedAt: u.CreatedAt(),
	}
}
