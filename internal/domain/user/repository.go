package user

import "context"

type UserRepository interface {
	Save(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID uint) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
