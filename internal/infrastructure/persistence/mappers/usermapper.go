package mappers

import (
	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/authorization"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type userMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &userMapperImpl{}
}

func (m *userMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Username:     u.Username(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (m *userMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Username,
		model.PasswordHash,
		authorization.ParseRole(model.Role),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
