package auth

import (
	"helpdesk/internal/application/user/usecases"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required,max=64"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToCommand(ip string) usecases.LoginCommand {
	return usecases.LoginCommand{
		Username:  r.Username,
		Password:  r.Password,
		IPAddress: ip,
	}
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required,max=64"`
	Password string `json:"password" binding:"required,min=8"`
	IsAdmin  bool   `json:"is_admin"`
	IsStaff  bool   `json:"is_staff"`
}

func (r *CreateUserRequest) ToCommand() usecases.CreateUserCommand {
	return usecases.CreateUserCommand{
		Username: r.Username,
		Password: r.Password,
		IsAdmin:  r.IsAdmin,
		IsStaff:  r.IsStaff,
	}
}
