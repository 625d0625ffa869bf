package models

import (
	"time"

	"github.com/google/uuid"
)

// ReservationDB represents a reservation record linking a user to an event.
// At most one row exists per (user, event) pair.
type ReservationDB struct {
	ReservationID uuid.UUID `json:"id" db:"reservation_id"`     // Primary key
	UserID        uuid.UUID `json:"user_id" db:"user_id"`       // Reserving user
	EventID       uuid.UUID `json:"event_id" db:"event_id"`     // Reserved event
	CreatedAt     time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// ReservationResource is the public representation of a reservation.
// swagger:model ReservationResource
type ReservationResource struct {
	// Reservation ID
	ID uuid.UUID `json:"id"`

	// Reserving user ID
	UserID uuid.UUID `json:"userId"`

	// Reserved event ID
	EventID uuid.UUID `json:"eventId"`

	// Creation timestamp
	CreatedAt time.Time `json:"createdAt"`
}

// NewReservationResource maps a reservation row to its public representation.
func NewReservationResource(r *ReservationDB) *ReservationResource {
	if r == nil {
		return nil
	}
	return &ReservationResource{
		ID:        r.ReservationID,
		UserID:    r.UserID,
		EventID:   r.EventID,
		CreatedAt: r.CreatedAt,
	}
}

// ReservationActivity represents a reservation change published to Kafka,
// including the affected user and event and the operation type.
type ReservationActivity struct {
	ActivityID string `json:"activity_id"` // ActivityID is a unique identifier for the activity record.
	Timestamp  int64  `json:"timestamp"`   // Timestamp is the Unix timestamp (in seconds) when the change occurred.
	UserID     string `json:"user_id"`     // UserID is the identifier of the user who registered or unregistered.
	EventID    string `json:"event_id"`    // EventID is the identifier of the affected event.
	Operation  string `json:"operation"`   // Operation is either "register" or "unregister".
}
