package models

import (
	"time"

	"github.com/google/uuid"
)

// Sort columns accepted by the event list query.
const (
	SortByDate     = "date"
	SortByCapacity = "capacity"

	SortOrderAsc  = "ASC"
	SortOrderDesc = "DESC"
)

// EventListLimit is the fixed page size for event listings.
const EventListLimit = 20

// EventDB represents an event record in the database
type EventDB struct {
	EventID     uuid.UUID `json:"id" db:"event_id"`           // Primary key
	UserID      uuid.UUID `json:"user_id" db:"user_id"`       // Owning user
	Title       string    `json:"title" db:"title"`           // Event title
	Description string    `json:"description" db:"description"`
	Date        time.Time `json:"date" db:"date"`             // Scheduled date
	Capacity    int       `json:"capacity" db:"capacity"`     // Maximum live reservations
	Address     *string   `json:"address" db:"address"`       // Optional venue address
	ImageURL    *string   `json:"image_url" db:"image_url"`   // Optional image reference
	CreatedAt   time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// CreateEventParams carries the fields needed to create an event.
type CreateEventParams struct {
	Title       string
	Description string
	Date        time.Time
	Capacity    int
	Address     *string
	ImageURL    *string
}

// UpdateEventParams carries an optional value per updatable event field.
// A nil pointer means "leave the column unchanged"; this is how a partial
// update distinguishes an absent field from an explicit empty value.
type UpdateEventParams struct {
	Title       *string
	Description *string
	Date        *time.Time
	Capacity    *int
	Address     *string
	ImageURL    *string
}

// EventListQuery holds the filtering and ordering options for event listings.
type EventListQuery struct {
	Search    string // case-insensitive substring over title and description
	SortBy    string // SortByDate or SortByCapacity
	SortOrder string // SortOrderAsc or SortOrderDesc
}

// EventListRow is an event row joined with its reservation stats for a
// particular viewer.
type EventListRow struct {
	EventDB
	ReservationsCount int  `db:"reservations_count"`
	IsRegistered      bool `db:"is_registered"`
}

// EventResource is the public representation of an event returned by the API.
// swagger:model EventResource
type EventResource struct {
	// Event ID
	ID uuid.UUID `json:"id"`

	// Owning user ID
	UserID uuid.UUID `json:"userId"`

	// Event title
	// default: Go meetup
	Title string `json:"title"`

	// Event description
	Description string `json:"description"`

	// Scheduled date
	Date time.Time `json:"date"`

	// Maximum number of live reservations
	// default: 100
	Capacity int `json:"capacity"`

	// Optional venue address
	Address *string `json:"address"`

	// Optional image URL
	ImageURL *string `json:"imageUrl"`

	// Creation timestamp
	CreatedAt time.Time `json:"createdAt"`

	// Last update timestamp
	UpdatedAt time.Time `json:"updatedAt"`

	// Number of live reservations
	ReservationsCount int `json:"reservationsCount"`

	// Whether the requesting user holds a reservation
	IsRegistered bool `json:"isRegistered"`

	// Owning user, present on detail responses only
	User *UserResource `json:"user,omitempty"`
}

// NewEventResource maps an event row plus its stats to the public shape.
func NewEventResource(e *EventDB, reservationsCount int, isRegistered bool, owner *UserDB) *EventResource {
	if e == nil {
		return nil
	}
	return &EventResource{
		ID:                e.EventID,
		UserID:            e.UserID,
		Title:             e.Title,
		Description:       e.Description,
		Date:              e.Date,
		Capacity:          e.Capacity,
		Address:           e.Address,
		ImageURL:          e.ImageURL,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
		ReservationsCount: reservationsCount,
		IsRegistered:      isRegistered,
		User:              NewUserResource(owner),
	}
}

// NewEventListResource maps listing rows to their public shape.
func NewEventListResource(rows []EventListRow) []*EventResource {
	resources := make([]*EventResource, 0, len(rows))
	for i := range rows {
		resources = append(resources, NewEventResource(&rows[i].EventDB, rows[i].ReservationsCount, rows[i].IsRegistered, nil))
	}
	return resources
}
