package command

import "files-manager/internal/application/common"

type RegisterUserCommand struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterUserCommandResult struct {
	Result *common.UserResult
}
