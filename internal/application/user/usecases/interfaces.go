package usecases

import (
	"context"

	"helpdesk/internal/application/user/dto"
)

// PasswordHasher abstracts password hashing so use cases stay independent
// of the bcrypt implementation.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*dto.UserDTO, error)
}

type CreateUserExecutor interface {
	Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error)
}
