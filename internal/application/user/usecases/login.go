package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/ratelimit"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type LoginCommand struct {
	Username  string
	Password  string
	IPAddress string
}

type LoginUseCase struct {
	userRepo    user.UserRepository
	hasher      PasswordHasher
	rateLimiter ratelimit.RateLimiter
	logger      logger.Interface
}

func NewLoginUseCase(
	userRepo user.UserRepository,
	hasher PasswordHasher,
	rateLimiter ratelimit.RateLimiter,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:    userRepo,
		hasher:      hasher,
		rateLimiter: rateLimiter,
		logger:      logger,
	}
}

// Execute checks credentials. Failures are reported with one generic
// message so the response never reveals whether the username exists.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.UserDTO, error) {
	if cmd.Username == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("username and password are required")
	}

	limitKey := fmt.Sprintf("login:%s:%s", cmd.Username, cmd.IPAddress)
	allowed, err := uc.rateLimiter.Allow(ctx, limitKey, ratelimit.LoginLimits)
	if err != nil {
		uc.logger.Warnw("rate limiter unavailable, allowing request", "error", err)
	} else if !allowed {
		uc.logger.Warnw("login rate limit exceeded", "username", cmd.Username, "ip", cmd.IPAddress)
		return nil, errors.NewUnauthorizedError("too many login attempts, try again later")
	}

	existing, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("invalid username or password")
		}
		uc.logger.Errorw("failed to get user by username", "error", err)
		return nil, err
	}

	if err := uc.hasher.Verify(cmd.Password, existing.PasswordHash()); err != nil {
		uc.logger.Warnw("password verification failed", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	if err := uc.rateLimiter.Reset(ctx, limitKey); err != nil {
		uc.logger.Debugw("failed to reset rate limit", "error", err)
	}

	uc.logger.Infow("user logged in", "user_id", existing.ID(), "username", existing.Username())

	return dto.ToUserDTO(existing), nil
}
