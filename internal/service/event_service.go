package service

import (
	"context"
	"strings"

	"eventboard/internal/domain"
	"eventboard/internal/repository"
)

// EventService describes the board operations available to authenticated users.
type EventService interface {
	CreateEvent(ctx context.Context, name, description, contactEmail string, createdBy int64) (*domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
}

type eventService struct {
	events repository.EventRepository
}

func NewEventService(events repository.EventRepository) EventService {
	return &eventService{events: events}
}

func (s *eventService) CreateEvent(ctx context.Context, name, description, contactEmail string, createdBy int64) (*domain.Event, error) {
	event := &domain.Event{
		Name:         strings.TrimSpace(name),
		Description:  strings.TrimSpace(description),
		ContactEmail: strings.TrimSpace(contactEmail),
		CreatedBy:    createdBy,
	}
	if _, err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return s.events.List(ctx)
}
