package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-event-booking/internal/jwt"
	"github.com/sbilibin2017/gw-event-booking/internal/logger"
	"github.com/sbilibin2017/gw-event-booking/internal/models"
	"github.com/sbilibin2017/gw-event-booking/internal/validation"
)

// EventCreateTokener defines only the token methods needed by this handler.
type EventCreateTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// EventCreator defines the interface that the service must implement.
type EventCreator interface {
	Create(ctx context.Context, userID uuid.UUID, params models.CreateEventParams) (*models.EventDB, error)
}

// CreateEventRequest represents the JSON body for creating an event
// swagger:model CreateEventRequest
type CreateEventRequest struct {
	// Event title
	// required: true
	// default: Go meetup
	Title string `json:"title" validate:"required"`

	// Event description
	// required: true
	Description string `json:"description" validate:"required"`

	// Scheduled date, RFC 3339
	// required: true
	// default: 2026-10-01T18:00:00Z
	Date string `json:"date" validate:"required"`

	// Maximum number of live reservations
	// required: true
	// default: 100
	Capacity int `json:"capacity" validate:"required,min=1"`

	// Optional venue address
	Address *string `json:"address"`

	// Optional image URL
	ImageURL *string `json:"imageUrl"`
}

// CreateEventResponse represents a successful event creation response
// swagger:model CreateEventResponse
type CreateEventResponse struct {
	// Success message
	// default: Event created successfully
	Message string `json:"message"`

	// Created event
	Event *models.EventResource `json:"event"`
}

// EventErrorResponse represents an error response for event endpoints
// swagger:model EventErrorResponse
type EventErrorResponse struct {
	// Error message
	Error string `json:"error"`

	// Field-level validation errors
	Errors map[string]string `json:"errors,omitempty"`
}

// NewCreateEventHandler returns an HTTP handler for creating events.
// @Summary Create an event
// @Description Creates an event owned by the authenticated user
// @Tags events
// @Accept json
// @Produce json
// @Param createEventRequest body handlers.CreateEventRequest true "Event creation request"
// @Success 201 {object} handlers.CreateEventResponse "Event created"
// @Failure 401 {object} handlers.EventErrorResponse "Unauthorized"
// @Failure 422 {object} handlers.EventErrorResponse "Invalid data"
// @Router /events [post]
// @Security BearerAuth
func NewCreateEventHandler(svc EventCreator, tokener EventCreateTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := claimsFromRequest(w, r, tokener)
		if !ok {
			return
		}

		var req CreateEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(EventErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		if fields := validation.Validate(req); fields != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(EventErrorResponse{
				Error:  "Invalid data",
				Errors: fields,
			})
			return
		}

		date, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(EventErrorResponse{
				Error:  "Invalid data",
				Errors: map[string]string{"date": "Date must be a valid date string"},
			})
			return
		}

		event, err := svc.Create(ctx, claims.UserID, models.CreateEventParams{
			Title:       req.Title,
			Description: req.Description,
			Date:        date,
			Capacity:    req.Capacity,
			Address:     req.Address,
			ImageURL:    req.ImageURL,
		})
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(EventErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateEventResponse{
			Message: "Event created successfully",
			Event:   models.NewEventResource(event, 0, false, nil),
		})
	}
}
