package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-event-booking/internal/logger"
	"github.com/sbilibin2017/gw-event-booking/internal/models"
	"github.com/sbilibin2017/gw-event-booking/internal/repositories"
)

// Error variables
var (
	ErrEventNotFound = errors.New("event not found")
	ErrForbidden     = errors.New("caller does not own this event")
)

// EventReader defines read-only operations for events.
type EventReader interface {
	GetByID(ctx context.Context, eventID uuid.UUID) (*models.EventDB, error)
	List(ctx context.Context, viewerID uuid.UUID, q models.EventListQuery) ([]models.EventListRow, error)
}

// EventWriter defines write operations for events.
type EventWriter interface {
	Save(ctx context.Context, userID uuid.UUID, params models.CreateEventParams) (*models.EventDB, error)
	Update(ctx context.Context, eventID uuid.UUID, params models.UpdateEventParams) (*models.EventDB, error)
	Delete(ctx context.Context, eventID uuid.UUID) error
}

// EventCache caches event rows.
type EventCache interface {
	GetByID(ctx context.Context, eventID uuid.UUID) (*models.EventDB, error)
	Set(ctx context.Context, event *models.EventDB) error
	Delete(ctx context.Context, eventID uuid.UUID) error
}

// ReservationStatsReader reads reservation stats for event resources.
type ReservationStatsReader interface {
	CountByEventID(ctx context.Context, eventID uuid.UUID) (int, error)
	Exists(ctx context.Context, userID, eventID uuid.UUID) (bool, error)
}

// EventService handles event CRUD with ownership checks.
type EventService struct {
	readRepo  EventReader
	writeRepo EventWriter
	cacheRepo EventCache
	userRepo  UserReader
	statsRepo ReservationStatsReader
}

// NewEventService creates a new EventService.
func NewEventService(
	readRepo EventReader,
	writeRepo EventWriter,
	cacheRepo EventCache,
	userRepo UserReader,
	statsRepo ReservationStatsReader,
) *EventService {
	return &EventService{
		readRepo:  readRepo,
		writeRepo: writeRepo,
		cacheRepo: cacheRepo,
		userRepo:  userRepo,
		statsRepo: statsRepo,
	}
}

// Create stores a new event owned by userID.
func (s *EventService) Create(ctx context.Context, userID uuid.UUID, params models.CreateEventParams) (*models.EventDB, error) {
	event, err := s.writeRepo.Save(ctx, userID, params)
	if err != nil {
		logger.Log.Errorw("failed to create event", "userID", userID, "error", err)
		return nil, err
	}
	return event, nil
}

// List returns events matching the query with viewer-specific stats.
func (s *EventService) List(ctx context.Context, viewerID uuid.UUID, q models.EventListQuery) ([]models.EventListRow, error) {
	rows, err := s.readRepo.List(ctx, viewerID, q)
	if err != nil {
		logger.Log.Errorw("failed to list events", "error", err)
		return nil, err
	}
	return rows, nil
}

// GetByID returns a single event with its owner and viewer-specific stats.
// The event row is read through the cache; reservation stats are always
// read fresh because the count changes with every registration.
func (s *EventService) GetByID(ctx context.Context, viewerID, eventID uuid.UUID) (*models.EventResource, error) {
	event, err := s.cacheRepo.GetByID(ctx, eventID)
	if err != nil {
		event, err = s.readRepo.GetByID(ctx, eventID)
		if err != nil {
			logger.Log.Errorw("failed to get event", "eventID", eventID, "error", err)
			return nil, err
		}
		if event == nil {
			return nil, ErrEventNotFound
		}

		if err := s.cacheRepo.Set(ctx, event); err != nil {
			logger.Log.Errorw("failed to cache event", "eventID", eventID, "error", err)
		}
	}

	count, err := s.statsRepo.CountByEventID(ctx, eventID)
	if err != nil {
		logger.Log.Errorw("failed to count reservations", "eventID", eventID, "error", err)
		return nil, err
	}

	isRegistered, err := s.statsRepo.Exists(ctx, viewerID, eventID)
	if err != nil {
		logger.Log.Errorw("failed to check registration", "eventID", eventID, "error", err)
		return nil, err
	}

	owner, err := s.userRepo.GetByID(ctx, event.UserID)
	if err != nil {
		logger.Log.Errorw("failed to get event owner", "eventID", eventID, "error", err)
		return nil, err
	}

	return models.NewEventResource(event, count, isRegistered, owner), nil
}

// Update applies a partial update to an event owned by userID. Capacity
// changes take effect for future registrations only; existing reservations
// are never touched, even when the new capacity is below the live count.
func (s *EventService) Update(ctx context.Context, userID, eventID uuid.UUID, params models.UpdateEventParams) (*models.EventDB, error) {
	existing, err := s.readRepo.GetByID(ctx, eventID)
	if err != nil {
		logger.Log.Errorw("failed to get event", "eventID", eventID, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrEventNotFound
	}
	if existing.UserID != userID {
		logger.Log.Errorw("event update forbidden", "eventID", eventID, "userID", userID)
		return nil, ErrForbidden
	}

	event, err := s.writeRepo.Update(ctx, eventID, params)
	if err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		logger.Log.Errorw("failed to update event", "eventID", eventID, "error", err)
		return nil, err
	}

	if err := s.cacheRepo.Delete(ctx, eventID); err != nil {
		logger.Log.Errorw("failed to evict event from cache", "eventID", eventID, "error", err)
	}

	return event, nil
}

// Delete removes an event owned by userID.
func (s *EventService) Delete(ctx context.Context, userID, eventID uuid.UUID) error {
	existing, err := s.readRepo.GetByID(ctx, eventID)
	if err != nil {
		logger.Log.Errorw("failed to get event", "eventID", eventID, "error", err)
		return err
	}
	if existing == nil {
		return ErrEventNotFound
	}
	if existing.UserID != userID {
		logger.Log.Errorw("event delete forbidden", "eventID", eventID, "userID", userID)
		return ErrForbidden
	}

	if err := s.writeRepo.Delete(ctx, eventID); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return ErrEventNotFound
		}
		logger.Log.Errorw("failed to delete event", "eventID", eventID, "error", err)
		return err
	}

	if err := s.cacheRepo.Delete(ctx, eventID); err != nil {
		logger.Log.Errorw("failed to evict event from cache", "eventID", eventID, "error", err)
	}

	return nil
}
