package usecases

import (
	"context"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

const minPasswordLength = 8

type CreateUserCommand struct {
	Username string
	Password string
	IsAdmin  bool
	IsStaff  bool
}

type CreateUserUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(userRepo user.UserRepository, hasher PasswordHasher, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing create user use case", "username", cmd.Username)

	if len(cmd.Password) < minPasswordLength {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to check username", "error", err)
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("username already taken")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to hash password")
	}

	newUser, err := user.NewUser(cmd.Username, hash, authorization.RoleFromFlags(cmd.IsAdmin, cmd.IsStaff))
	if err != nil {
		uc.logger.Warnw("invalid create user command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, err
	}

	uc.logger.Infow("user created", "user_id", newUser.ID(), "username", newUser.Username(), "role", newUser.Role().String())

	return dto.ToUserDTO(newUser), nil
}
