package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-event-booking/internal/logger"
	"github.com/sbilibin2017/gw-event-booking/internal/models"
	"github.com/sbilibin2017/gw-event-booking/internal/repositories"
	"github.com/segmentio/kafka-go"
)

// Error variables
var (
	ErrAlreadyRegistered   = errors.New("already registered for this event")
	ErrEventFull           = errors.New("event is fully booked")
	ErrReservationNotFound = errors.New("no registration found")
)

// ReservationWriter defines the atomic register/unregister operations
// provided by the datastore layer.
type ReservationWriter interface {
	Register(ctx context.Context, userID, eventID uuid.UUID) (*models.ReservationDB, error)
	Unregister(ctx context.Context, userID, eventID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ReservationService handles event registration and Kafka publishing.
type ReservationService struct {
	writeRepo   ReservationWriter
	kafkaWriter KafkaWriter
}

// NewReservationService creates a new ReservationService.
func NewReservationService(writeRepo ReservationWriter, kafkaWriter KafkaWriter) *ReservationService {
	return &ReservationService{
		writeRepo:   writeRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishActivity publishes a reservation change to Kafka. Publishing is
// best effort: a broker failure is logged and never fails the request.
func (s *ReservationService) publishActivity(ctx context.Context, activity models.ReservationActivity) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "activity_id", activity.ActivityID)
		return
	}

	data, err := json.Marshal(activity)
	if err != nil {
		logger.Log.Errorw("Failed to marshal activity for Kafka", "activity_id", activity.ActivityID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(activity.ActivityID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish activity to Kafka", "activity_id", activity.ActivityID, "error", err)
	} else {
		logger.Log.Infow("Activity published to Kafka", "activity_id", activity.ActivityID, "operation", activity.Operation)
	}
}

// Register creates a reservation for the user on the event. The datastore
// layer evaluates the capacity check and the insert as one atomic unit, so
// concurrent registrations never overshoot capacity. The service performs
// no retries of its own.
func (s *ReservationService) Register(ctx context.Context, userID, eventID uuid.UUID) (*models.ReservationDB, error) {
	reservation, err := s.writeRepo.Register(ctx, userID, eventID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrEventNotFound):
			return nil, ErrEventNotFound
		case errors.Is(err, repositories.ErrAlreadyRegistered):
			return nil, ErrAlreadyRegistered
		case errors.Is(err, repositories.ErrEventFull):
			return nil, ErrEventFull
		}
		logger.Log.Errorw("failed to register", "userID", userID, "eventID", eventID, "error", err)
		return nil, err
	}

	activity := models.ReservationActivity{
		ActivityID: uuid.NewString(),
		Timestamp:  time.Now().Unix(),
		UserID:     userID.String(),
		EventID:    eventID.String(),
		Operation:  "register",
	}
	s.publishActivity(ctx, activity)

	return reservation, nil
}

// Unregister removes the user's reservation for the event. A second call
// after success returns ErrReservationNotFound, never a silent success.
func (s *ReservationService) Unregister(ctx context.Context, userID, eventID uuid.UUID) error {
	if err := s.writeRepo.Unregister(ctx, userID, eventID); err != nil {
		if errors.Is(err, repositories.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		logger.Log.Errorw("failed to unregister", "userID", userID, "eventID", eventID, "error", err)
		return err
	}

	activity := models.ReservationActivity{
		ActivityID: uuid.NewString(),
		Timestamp:  time.Now().Unix(),
		UserID:     userID.String(),
		EventID:    eventID.String(),
		Operation:  "unregister",
	}
	s.publishActivity(ctx, activity)

	return nil
}
