package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"files-manager/internal/application/apperrors"
	"files-manager/internal/application/command"
	"files-manager/internal/application/interfaces"
	"files-manager/internal/application/mapper"
	"files-manager/internal/application/query"
	"files-manager/internal/domain/entities"
	"files-manager/internal/domain/repositories"
)

type UserService struct {
	users    repositories.UserRepository
	sessions repositories.SessionStore
}

func NewUserService(users repositories.UserRepository, sessions repositories.SessionStore) interfaces.UserService {
	return &UserService{
		users:    users,
		sessions: sessions,
	}
}

// Register creates an account with a bcrypt digest of the password.
// Emails are unique under exact-string comparison; no case folding.
func (s *UserService) Register(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error) {
	if registerCommand.Email == "" {
		return nil, apperrors.ErrMissingEmail
	}
	if registerCommand.Password == "" {
		return nil, apperrors.ErrMissingPassword
	}

	existing, err := s.users.FindByEmail(ctx, registerCommand.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrAlreadyExists
	}

	user := entities.NewUser(registerCommand.Email, registerCommand.Password)
	if err := user.HashPassword(); err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	return &command.RegisterUserCommandResult{
		Result: mapper.NewUserResultFromEntity(created),
	}, nil
}

// Me resolves a bearer token to the session's user. Every absence — no
// token, expired session, dangling user id — collapses to Unauthorized.
func (s *UserService) Me(ctx context.Context, token string) (*query.UserQueryResult, error) {
	if token == "" {
		return nil, apperrors.ErrUnauthorized
	}

	userID, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUnauthorized
	}

	return &query.UserQueryResult{
		Result: mapper.NewUserResultFromEntity(user),
	}, nil
}
