package services

import (
	"context"

	"files-manager/internal/application/interfaces"
	"files-manager/internal/application/query"
	"files-manager/internal/domain/repositories"
)

// Pinger is what AppService needs from the metadata store connection.
type Pinger interface {
	IsAlive(ctx context.Context) bool
}

// AppService backs /status and /stats.
type AppService struct {
	sessions repositories.SessionStore
	db       Pinger
	users    repositories.UserRepository
	files    repositories.FileRepository
}

func NewAppService(
	sessions repositories.SessionStore,
	db Pinger,
	users repositories.UserRepository,
	files repositories.FileRepository,
) interfaces.AppService {
	return &AppService{
		sessions: sessions,
		db:       db,
		users:    users,
		files:    files,
	}
}

// Status never errors; a dead dependency degrades to a false flag.
func (s *AppService) Status(ctx context.Context) query.StatusQueryResult {
	return query.StatusQueryResult{
		Redis: s.sessions.IsAlive(ctx),
		DB:    s.db.IsAlive(ctx),
	}
}

func (s *AppService) Stats(ctx context.Context) (*query.StatsQueryResult, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	files, err := s.files.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &query.StatsQueryResult{
		Users: users,
		Files: files,
	}, nil
}
