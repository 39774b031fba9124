package mapper

import (
	"files-manager/internal/application/common"
	"files-manager/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	return &common.UserResult{
		ID:    user.ID.Hex(),
		Email: user.Email,
	}
}
