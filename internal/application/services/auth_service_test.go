package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"files-manager/internal/application/apperrors"
	"files-manager/internal/application/command"
	"files-manager/internal/domain/entities"
	"files-manager/internal/infrastructure"
)

func seedUser(t *testing.T, repo *fakeUserRepo, email, password string) *entities.User {
	t.Helper()
	user := entities.NewUser(email, password)
	require.NoError(t, user.HashPassword())
	created, err := repo.Create(context.Background(), user)
	require.NoError(t, err)
	return created
}

func newTestAuthService(users *fakeUserRepo, sessions *fakeSessionStore) *AuthService {
	return NewAuthService(users, sessions, 24*time.Hour, infrastructure.NewRateLimiter(1000, 1000)).(*AuthService)
}

func TestLoginIssuesResolvableToken(t *testing.T) {
	users := newFakeUserRepo()
	sessions := newFakeSessionStore()
	user := seedUser(t, users, "a@b.com", "pw")
	svc := newTestAuthService(users, sessions)

	result, err := svc.Login(context.Background(), &command.LoginCommand{Email: "a@b.com", Password: "pw"})
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)

	userID, err := sessions.Get(context.Background(), result.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), userID)
}

func TestLoginMintsDistinctTokensPerCall(t *testing.T) {
	users := newFakeUserRepo()
	sessions := newFakeSessionStore()
	seedUser(t, users, "a@b.com", "pw")
	svc := newTestAuthService(users, sessions)

	first, err := svc.Login(context.Background(), &command.LoginCommand{Email: "a@b.com", Password: "pw"})
	require.NoError(t, err)
	second, err := svc.Login(context.Background(), &command.LoginCommand{Email: "a@b.com", Password: "pw"})
	require.NoError(t, err)

	// concurrent sessions per user are allowed, both stay valid
	assert.NotEqual(t, first.Token, second.Token)
	assert.Len(t, sessions.sessions, 2)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	users := newFakeUserRepo()
	sessions := newFakeSessionStore()
	seedUser(t, users, "a@b.com", "pw")
	svc := newTestAuthService(users, sessions)

	tests := []struct {
		name string
		cmd  command.LoginCommand
	}{
		{"wrong password", command.LoginCommand{Email: "a@b.com", Password: "nope"}},
		{"unknown email", command.LoginCommand{Email: "x@y.com", Password: "pw"}},
		{"case sensitive email", command.LoginCommand{Email: "A@B.COM", Password: "pw"}},
		{"empty email", command.LoginCommand{Password: "pw"}},
		{"empty password", command.LoginCommand{Email: "a@b.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), &tt.cmd)
			assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		})
	}

	// no failure path leaves a session behind
	assert.Empty(t, sessions.sessions)
}

func TestLoginRateLimited(t *testing.T) {
	users := newFakeUserRepo()
	sessions := newFakeSessionStore()
	seedUser(t, users, "a@b.com", "pw")
	// one request per hour, burst of 2
	svc := NewAuthService(users, sessions, 24*time.Hour, infrastructure.NewRateLimiter(1.0/3600, 2))

	for i := 0; i < 2; i++ {
		_, err := svc.Login(context.Background(), &command.LoginCommand{Email: "a@b.com", Password: "pw"})
		require.NoError(t, err)
	}
	_, err := svc.Login(context.Background(), &command.LoginCommand{Email: "a@b.com", Password: "pw"})
	assert.ErrorIs(t, err, apperrors.ErrTooManyRequests)

	// other identities are unaffected
	seedUser(t, users, "c@d.com", "pw")
	_, err = svc.Login(context.Background(), &command.LoginCommand{Email: "c@d.com", Password: "pw"})
	assert.NoError(t, err)
}

func TestLogoutRevokesToken(t *testing.T) {
	users := newFakeUserRepo()
	sessions := newFakeSessionStore()
	seedUser(t, users, "a@b.com", "pw")
	svc := newTestAuthService(users, sessions)

	result, err := svc.Login(context.Background(), &command.LoginCommand{Email: "a@b.com", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), result.Token))

	userID, err := sessions.Get(context.Background(), result.Token)
	require.NoError(t, err)
	assert.Empty(t, userID)

	// second logout of the same token reports Unauthorized
	assert.ErrorIs(t, svc.Logout(context.Background(), result.Token), apperrors.ErrUnauthorized)
}

func TestLogoutUnknownToken(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo(), newFakeSessionStore())

	assert.ErrorIs(t, svc.Logout(context.Background(), "never-issued"), apperrors.ErrUnauthorized)
	assert.ErrorIs(t, svc.Logout(context.Background(), ""), apperrors.ErrUnauthorized)
}

func TestExpiredSessionIsInvalid(t *testing.T) {
	users := newFakeUserRepo()
	sessions := newFakeSessionStore()
	seedUser(t, users, "a@b.com", "pw")
	svc := NewAuthService(users, sessions, -time.Second, infrastructure.NewRateLimiter(1000, 1000))

	result, err := svc.Login(context.Background(), &command.LoginCommand{Email: "a@b.com", Password: "pw"})
	require.NoError(t, err)

	// already past its TTL: reads and logout both see an absent token
	assert.ErrorIs(t, svc.Logout(context.Background(), result.Token), apperrors.ErrUnauthorized)
}
