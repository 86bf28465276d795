package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"eventboard/internal/auth"
	"eventboard/internal/domain"
	"eventboard/internal/repository"
)

var (
	// ErrUsernameTaken is returned when registering with an existing username.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrPasswordMismatch is returned when password and verifyPassword differ.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrUnknownUsername is returned when logging in with a username that has no record.
	ErrUnknownUsername = errors.New("username does not exist")
	// ErrInvalidPassword is returned when the password does not match the stored hash.
	ErrInvalidPassword = errors.New("invalid password")
)

// AuthService owns the credential lifecycle: registration, login.
// Logout needs no store access and lives with the session layer.
type AuthService interface {
	Register(ctx context.Context, username, password, verifyPassword string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.User, error)
}

type authService struct {
	users  repository.UserRepository
	hasher auth.PasswordHasher
}

func NewAuthService(users repository.UserRepository, hasher auth.PasswordHasher) AuthService {
	return &authService{users: users, hasher: hasher}
}

// Register checks username uniqueness and password confirmation, then
// persists a new user with a hashed password. The store's uniqueness
// constraint backstops the lookup, so a concurrent duplicate surfaces as
// ErrUsernameTaken either way.
func (s *authService) Register(ctx context.Context, username, password, verifyPassword string) (*domain.User, error) {
	username = strings.TrimSpace(username)

	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("look up username: %w", err)
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	if password != verifyPassword {
		return nil, ErrPasswordMismatch
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
	}
	if _, err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return user, nil
}

// Login verifies the supplied credentials against the stored record.
// An unknown username and a wrong password produce distinct errors; the
// user-facing messages differ on purpose, matching the application's
// long-standing behavior.
func (s *authService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownUsername
		}
		return nil, fmt.Errorf("look up username: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidPassword
	}

	return user, nil
}
