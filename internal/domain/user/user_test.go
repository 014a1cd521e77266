package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/shared/authorization"
)

func TestNewUser(t *testing.T) {
	tests := []struct {
		name     string
		username string
		hash     string
		role     authorization.Role
		wantErr  bool
	}{
		{"valid member", "alice", "$2a$12$hash", authorization.RoleMember, false},
		{"valid admin", "root", "$2a$12$hash", authorization.RoleAdmin, false},
		{"empty username", "", "$2a$12$hash", authorization.RoleMember, true},
		{"username too long", strings.Repeat("a", 65), "$2a$12$hash", authorization.RoleMember, true},
		{"empty hash", "alice", "", authorization.RoleMember, true},
		{"bad role", "alice", "$2a$12$hash", authorization.Role("root"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUser(tt.username, tt.hash, tt.role)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.username, u.Username())
			assert.Equal(t, tt.role, u.Role())
		})
	}
}

func TestUser_ChangeRole(t *testing.T) {
	u, err := NewUser("alice", "$2a$12$hash", authorization.RoleMember)
	require.NoError(t, err)

	require.NoError(t, u.ChangeRole(authorization.RoleStaff))
	assert.Equal(t, authorization.RoleStaff, u.Role())

	assert.Error(t, u.ChangeRole(authorization.Role("superuser")))
	assert.Equal(t, authorization.RoleStaff, u.Role())
}
