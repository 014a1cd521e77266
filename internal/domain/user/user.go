// Package user holds the user aggregate. Accounts are created by an admin
// action and never deleted; only the role may change after creation.
package user

import (
	"fmt"
	"time"

	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
)

const maxUsernameLength = 64

type User struct {
	id           uint
	username     string
	passwordHash string
	role         authorization.Role
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username, passwordHash string, role authorization.Role) (*User, error) {
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if len(username) > maxUsernameLength {
		return nil, fmt.Errorf("username exceeds maximum length of %d characters", maxUsernameLength)
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := biztime.NowUTC()
	return &User{
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	username string,
	passwordHash string,
	role authorization.Role,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() authorization.Role {
	return u.role
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// ChangeRole is the only mutation allowed after creation.
func (u *User) ChangeRole(role authorization.Role) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.role = role
	u.updatedAt = biztime.NowUTC()
	return nil
}
