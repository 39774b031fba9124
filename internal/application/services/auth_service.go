package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"files-manager/internal/application/apperrors"
	"files-manager/internal/application/command"
	"files-manager/internal/application/interfaces"
	"files-manager/internal/domain/repositories"
	"files-manager/internal/infrastructure"
)

// AuthService moves a token through its lifecycle: minted on login,
// resolvable until its TTL runs out, gone after logout. Expiry is lazy —
// the session store simply stops returning the mapping.
type AuthService struct {
	users       repositories.UserRepository
	sessions    repositories.SessionStore
	sessionTTL  time.Duration
	rateLimiter *infrastructure.RateLimiter
}

func NewAuthService(
	users repositories.UserRepository,
	sessions repositories.SessionStore,
	sessionTTL time.Duration,
	rateLimiter *infrastructure.RateLimiter,
) interfaces.AuthService {
	return &AuthService{
		users:       users,
		sessions:    sessions,
		sessionTTL:  sessionTTL,
		rateLimiter: rateLimiter,
	}
}

// Login checks the credential pair and mints a fresh opaque token. No
// session is written on any failure path, and the caller never learns
// whether the email or the password was wrong.
func (s *AuthService) Login(ctx context.Context, loginCommand *command.LoginCommand) (*command.LoginCommandResult, error) {
	if loginCommand.Email == "" || loginCommand.Password == "" {
		return nil, apperrors.ErrUnauthorized
	}

	if !s.rateLimiter.Allow(loginCommand.Email) {
		return nil, apperrors.ErrTooManyRequests
	}

	user, err := s.users.FindByEmail(ctx, loginCommand.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if err := user.CheckPassword(loginCommand.Password); err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	token := uuid.NewString()
	if err := s.sessions.Put(ctx, token, user.ID.Hex(), s.sessionTTL); err != nil {
		return nil, err
	}

	return &command.LoginCommandResult{Token: token}, nil
}

// Logout revokes a token. A token that is absent — never issued, expired,
// or already logged out — reports Unauthorized, so a second logout of the
// same token fails the same way as any other invalid token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return apperrors.ErrUnauthorized
	}

	userID, err := s.sessions.Get(ctx, token)
	if err != nil {
		return err
	}
	if userID == "" {
		return apperrors.ErrUnauthorized
	}

	if _, err := s.sessions.Delete(ctx, token); err != nil {
		return err
	}
	return nil
}
