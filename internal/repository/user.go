package repository

import (
	"context"

	"eventboard/internal/domain"
)

// UserRepository defines persistence operations for User entities.
// Implementations must enforce username uniqueness at the storage layer
// so concurrent registrations cannot slip past the lookup in the service.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
