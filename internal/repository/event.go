package repository

import (
	"context"

	"eventboard/internal/domain"
)

// EventRepository defines persistence operations for Event entities.
type EventRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, event *domain.Event) (int64, error)
	List(ctx context.Context) ([]domain.Event, error)
}
