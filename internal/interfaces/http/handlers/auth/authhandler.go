package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/user/usecases"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type AuthHandler struct {
	loginUC      usecases.LoginExecutor
	createUserUC usecases.CreateUserExecutor
	logger       logger.Interface
}

func NewAuthHandler(loginUC usecases.LoginExecutor, createUserUC usecases.CreateUserExecutor) *AuthHandler {
	return &AuthHandler{
		loginUC:      loginUC,
		createUserUC: createUserUC,
		logger:       logger.NewLogger(),
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), req.ToCommand(c.ClientIP()))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateUser handles POST /auth/users
func (h *AuthHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.createUserUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
