package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"files-manager/internal/domain/entities"
)

// In-memory doubles for the store interfaces. Nothing here is safe for
// concurrent use; the tests are single-goroutine.

type fakeUserRepo struct {
	users  map[primitive.ObjectID]*entities.User
	broken bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*entities.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entities.User) (*entities.User, error) {
	if r.broken {
		return nil, errors.New("users store down")
	}
	user.ID = primitive.NewObjectID()
	r.users[user.ID] = user
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	if r.broken {
		return nil, errors.New("users store down")
	}
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entities.User, error) {
	if r.broken {
		return nil, errors.New("users store down")
	}
	return r.users[id], nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	if r.broken {
		return 0, errors.New("users store down")
	}
	return int64(len(r.users)), nil
}

type fakeFileRepo struct {
	files   map[primitive.ObjectID]*entities.File
	broken  bool
	findErr error
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{files: make(map[primitive.ObjectID]*entities.File)}
}

func (r *fakeFileRepo) Insert(_ context.Context, file *entities.File) (*entities.File, error) {
	if r.broken {
		return nil, errors.New("files store down")
	}
	file.ID = primitive.NewObjectID()
	r.files[file.ID] = file
	return file, nil
}

func (r *fakeFileRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entities.File, error) {
	if r.broken {
		return nil, errors.New("files store down")
	}
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.files[id], nil
}

func (r *fakeFileRepo) Count(_ context.Context) (int64, error) {
	if r.broken {
		return 0, errors.New("files store down")
	}
	return int64(len(r.files)), nil
}

type fakeSessionStore struct {
	sessions map[string]string
	expires  map[string]time.Time
	alive    bool
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{
		sessions: make(map[string]string),
		expires:  make(map[string]time.Time),
		alive:    true,
	}
}

func (s *fakeSessionStore) Put(_ context.Context, token, userID string, ttl time.Duration) error {
	s.sessions[token] = userID
	s.expires[token] = time.Now().Add(ttl)
	return nil
}

func (s *fakeSessionStore) Get(_ context.Context, token string) (string, error) {
	if time.Now().After(s.expires[token]) {
		delete(s.sessions, token)
		delete(s.expires, token)
		return "", nil
	}
	return s.sessions[token], nil
}

func (s *fakeSessionStore) Delete(_ context.Context, token string) (bool, error) {
	_, ok := s.sessions[token]
	delete(s.sessions, token)
	delete(s.expires, token)
	return ok, nil
}

func (s *fakeSessionStore) IsAlive(_ context.Context) bool {
	return s.alive
}

type fakeBlobStore struct {
	stored [][]byte
	err    error
}

func (b *fakeBlobStore) Store(content []byte) (string, error) {
	if b.err != nil {
		return "", b.err
	}
	b.stored = append(b.stored, content)
	return "/tmp/files_manager/blob-" + primitive.NewObjectID().Hex(), nil
}

type fakePinger struct {
	alive bool
}

func (p *fakePinger) IsAlive(_ context.Context) bool {
	return p.alive
}
