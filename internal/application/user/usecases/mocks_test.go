package usecases

import (
	"context"
	"errors"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/ratelimit"
	"helpdesk/internal/shared/logger"
)

type mockUserRepository struct {
	SaveFunc             func(ctx context.Context, u *user.User) error
	GetByIDFunc          func(ctx context.Context, userID uint) (*user.User, error)
	GetByUsernameFunc    func(ctx context.Context, username string) (*user.User, error)
	ExistsByUsernameFunc func(ctx context.Context, username string) (bool, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.ExistsByUsernameFunc != nil {
		return m.ExistsByUsernameFunc(ctx, username)
	}
	return false, nil
}

type mockHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	if hash == "hashed:"+password {
		return nil
	}
	return errors.New("hash mismatch")
}

type mockRateLimiter struct {
	AllowFunc func(ctx context.Context, key string, config ratelimit.RateLimitConfig) (bool, error)
	ResetFunc func(ctx context.Context, key string) error

	AllowKeys []string
	ResetKeys []string
}

func (m *mockRateLimiter) Allow(ctx context.Context, key string, config ratelimit.RateLimitConfig) (bool, error) {
	m.AllowKeys = append(m.AllowKeys, key)
	if m.AllowFunc != nil {
		return m.AllowFunc(ctx, key, config)
	}
	return true, nil
}

func (m *mockRateLimiter) Reset(ctx context.Context, key string) error {
	m.ResetKeys = append(m.ResetKeys, key)
	if m.ResetFunc != nil {
		return m.ResetFunc(ctx, key)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
