package interfaces

import (
	"context"

	"files-manager/internal/application/command"
	"files-manager/internal/application/query"
)

// AuthService issues and revokes bearer tokens.
type AuthService interface {
	Login(ctx context.Context, loginCommand *command.LoginCommand) (*command.LoginCommandResult, error)
	Logout(ctx context.Context, token string) error
}

// UserService registers accounts and resolves tokens to their owner.
type UserService interface {
	Register(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error)
	Me(ctx context.Context, token string) (*query.UserQueryResult, error)
}

// FileService validates and persists uploaded files and folders.
type FileService interface {
	Upload(ctx context.Context, token string, uploadCommand *command.UploadFileCommand) (*command.UploadFileCommandResult, error)
}

// AppService backs the unauthenticated monitoring endpoints.
type AppService interface {
	Status(ctx context.Context) query.StatusQueryResult
	Stats(ctx context.Context) (*query.StatsQueryResult, error)
}
