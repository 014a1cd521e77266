package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/user"
	apperrors "helpdesk/internal/shared/errors"
)

func TestCreateUserUseCase_Execute_Success(t *testing.T) {
	tests := []struct {
		name      string
		cmd       CreateUserCommand
		wantAdmin bool
		wantStaff bool
	}{
		{
			name:      "member",
			cmd:       CreateUserCommand{Username: "alice", Password: "longenough"},
			wantAdmin: false,
			wantStaff: false,
		},
		{
			name:      "staff",
			cmd:       CreateUserCommand{Username: "bob", Password: "longenough", IsStaff: true},
			wantAdmin: false,
			wantStaff: true,
		},
		{
			name:      "admin flag wins over staff flag",
			cmd:       CreateUserCommand{Username: "carol", Password: "longenough", IsAdmin: true, IsStaff: true},
			wantAdmin: true,
			wantStaff: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var saved *user.User
			mockRepo := &mockUserRepository{
				SaveFunc: func(ctx context.Context, u *user.User) error {
					require.NoError(t, u.SetID(10))
					saved = u
					return nil
				},
			}

			useCase := NewCreateUserUseCase(mockRepo, &mockHasher{}, &mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.cmd)

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, uint(10), result.ID)
			assert.Equal(t, tt.cmd.Username, result.Username)
			assert.Equal(t, tt.wantAdmin, result.IsAdmin)
			assert.Equal(t, tt.wantStaff, result.IsStaff)
			require.NotNil(t, saved)
			assert.Equal(t, "hashed:"+tt.cmd.Password, saved.PasswordHash())
		})
	}
}

func TestCreateUserUseCase_Execute_DuplicateUsername(t *testing.T) {
	mockRepo := &mockUserRepository{
		ExistsByUsernameFunc: func(ctx context.Context, username string) (bool, error) {
			return true, nil
		},
	}

	useCase := NewCreateUserUseCase(mockRepo, &mockHasher{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateUserCommand{Username: "alice", Password: "longenough"})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestCreateUserUseCase_Execute_ShortPassword(t *testing.T) {
	saveCalled := false
	mockRepo := &mockUserRepository{
		SaveFunc: func(ctx context.Context, u *user.User) error {
			saveCalled = true
			return nil
		},
	}

	useCase := NewCreateUserUseCase(mockRepo, &mockHasher{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateUserCommand{Username: "alice", Password: "short"})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
	assert.False(t, saveCalled)
}

func TestCreateUserUseCase_Execute_EmptyUsername(t *testing.T) {
	useCase := NewCreateUserUseCase(&mockUserRepository{}, &mockHasher{}, &mockLogger{})
	_, err := useCase.Execute(context.Background(), CreateUserCommand{Username: "", Password: "longenough"})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}
