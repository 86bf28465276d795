package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"eventboard/internal/auth"
	"eventboard/internal/domain"
	"eventboard/internal/repository"
)

type fakeUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (r *fakeUserRepo) Init(ctx context.Context) error { return nil }

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) (int64, error) {
	if _, ok := r.users[user.Username]; ok {
		return 0, repository.ErrDuplicate
	}
	r.nextID++
	user.ID = r.nextID
	copied := *user
	r.users[user.Username] = &copied
	return user.ID, nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func newTestAuthService(repo repository.UserRepository) AuthService {
	return NewAuthService(repo, auth.NewBcryptHasher(bcrypt.MinCost))
}

func TestRegisterSuccess(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), "alice", "secret1", "secret1")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.Equal(t, "alice", user.Username)
	assert.NotZero(t, user.ID)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "secret1", user.PasswordHash)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), "alice", "secret1", "secret1")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "alice", "other12", "other12")
	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.Len(t, repo.users, 1)
}

// racyUserRepo misses the lookup but still rejects the insert, like a
// concurrent registration landing between the two.
type racyUserRepo struct {
	*fakeUserRepo
}

func (r *racyUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return nil, repository.ErrNotFound
}

func TestRegisterStoreLevelDuplicateMapsToUsernameTaken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(&racyUserRepo{repo})

	_, err := repo.Create(context.Background(), &domain.User{Username: "bob", PasswordHash: "x"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "bob", "secret1", "secret1")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegisterPasswordMismatchCreatesNothing(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), "bob", "x12345", "y12345")
	assert.ErrorIs(t, err, ErrPasswordMismatch)
	assert.Nil(t, user)

	_, err = repo.GetByUsername(context.Background(), "bob")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	registered, err := svc.Register(context.Background(), "alice", "secret1", "secret1")
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestLoginUnknownUsername(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, ErrUnknownUsername)
}

func TestLoginInvalidPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), "alice", "secret1", "secret1")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "alice", "wrong11")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestHashesDifferAcrossUsersWithSamePassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	first, err := svc.Register(context.Background(), "alice", "shared1", "shared1")
	require.NoError(t, err)
	second, err := svc.Register(context.Background(), "bob", "shared1", "shared1")
	require.NoError(t, err)

	assert.NotEqual(t, first.PasswordHash, second.PasswordHash)

	_, err = svc.Login(context.Background(), "alice", "shared1")
	assert.NoError(t, err)
	_, err = svc.Login(context.Background(), "bob", "shared1")
	assert.NoError(t, err)
}
