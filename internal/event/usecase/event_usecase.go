package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/campus/internal/database"
	"github.com/allisson/campus/internal/event/domain"
)

type eventUseCase struct {
	txManager database.TxManager
	eventRepo EventRepository
}

func (e *eventUseCase) Create(
	ctx context.Context,
	organizerID uuid.UUID,
	input *domain.CreateEventInput,
) (*domain.Event, error) {
	category := input.Category
	if category == "" {
		category = domain.DefaultCategory
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:           uuid.Must(uuid.NewV7()),
		Title:        input.Title,
		Description:  input.Description,
		StartDate:    input.StartDate.UTC(),
		EndDate:      input.EndDate,
		Location:     input.Location,
		Category:     category,
		MaxAttendees: input.MaxAttendees,
		OrganizerID:  organizerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := event.ValidateDates(); err != nil {
		return nil, err
	}

	if err := e.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (e *eventUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	return e.eventRepo.Get(ctx, id)
}

func (e *eventUseCase) List(ctx context.Context) ([]*domain.Event, error) {
	return e.eventRepo.List(ctx)
}

func (e *eventUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input *domain.UpdateEventInput,
) (*domain.Event, error) {
	event, err := e.eventRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	input.Apply(event)
	if err := event.ValidateDates(); err != nil {
		return nil, err
	}
	event.UpdatedAt = time.Now().UTC()

	if err := e.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (e *eventUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return e.eventRepo.Delete(ctx, id)
}

// Register runs under a row lock on the event so concurrent registrations
// cannot overshoot max_attendees.
func (e *eventUseCase) Register(ctx context.Context, eventID, userID uuid.UUID) (*domain.Registration, error) {
	var registration *domain.Registration

	err := e.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := e.eventRepo.Lock(ctx, eventID); err != nil {
			return err
		}

		event, err := e.eventRepo.Get(ctx, eventID)
		if err != nil {
			return err
		}
		if event.Full() {
			return domain.ErrEventFull
		}

		registration = &domain.Registration{
			ID:             uuid.Must(uuid.NewV7()),
			EventID:        event.ID,
			EventTitle:     event.Title,
			EventStartDate: event.StartDate,
			EventLocation:  event.Location,
			UserID:         userID,
			RegisteredAt:   time.Now().UTC(),
		}
		return e.eventRepo.CreateRegistration(ctx, registration)
	})
	if err != nil {
		return nil, err
	}
	return registration, nil
}

func (e *eventUseCase) ListRegistrations(ctx context.Context, eventID uuid.UUID) ([]*domain.Registration, error) {
	if _, err := e.eventRepo.Get(ctx, eventID); err != nil {
		return nil, err
	}
	return e.eventRepo.ListRegistrations(ctx, eventID)
}

func (e *eventUseCase) ListUserRegistrations(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Registration, error) {
	return e.eventRepo.ListUserRegistrations(ctx, userID)
}

// NewEventUseCase creates a new UseCase with the provided dependencies.
func NewEventUseCase(txManager database.TxManager, eventRepo EventRepository) UseCase {
	return &eventUseCase{txManager: txManager, eventRepo: eventRepo}
}
