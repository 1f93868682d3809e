// Package usecase implements event management and event registration.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/allisson/campus/internal/event/domain"
)

// EventRepository persists events and registrations.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Lock takes a row lock on the event for the rest of the transaction.
	Lock(ctx context.Context, id uuid.UUID) error

	CreateRegistration(ctx context.Context, registration *domain.Registration) error
	ListRegistrations(ctx context.Context, eventID uuid.UUID) ([]*domain.Registration, error)
	ListUserRegistrations(ctx context.Context, userID uuid.UUID) ([]*domain.Registration, error)
}

// UseCase defines event operations.
type UseCase interface {
	Create(ctx context.Context, organizerID uuid.UUID, input *domain.CreateEventInput) (*domain.Event, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Event, error)

	// List returns events ordered by start date.
	List(ctx context.Context) ([]*domain.Event, error)

	Update(ctx context.Context, id uuid.UUID, input *domain.UpdateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Register adds userID to the roster. It fails with ErrEventFull when the
	// limit is reached and ErrAlreadyRegistered on a second registration.
	Register(ctx context.Context, eventID, userID uuid.UUID) (*domain.Registration, error)

	ListRegistrations(ctx context.Context, eventID uuid.UUID) ([]*domain.Registration, error)
	ListUserRegistrations(ctx context.Context, userID uuid.UUID) ([]*domain.Registration, error)
}
