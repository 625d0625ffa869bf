package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-event-booking/internal/jwt"
	"github.com/sbilibin2017/gw-event-booking/internal/logger"
	"github.com/sbilibin2017/gw-event-booking/internal/models"
	"github.com/sbilibin2017/gw-event-booking/internal/services"
	"github.com/sbilibin2017/gw-event-booking/internal/validation"
)

// EventUpdateTokener defines only the token methods needed by this handler.
type EventUpdateTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// EventUpdater defines the interface that the service must implement.
type EventUpdater interface {
	Update(ctx context.Context, userID, eventID uuid.UUID, params models.UpdateEventParams) (*models.EventDB, error)
}

// UpdateEventRequest represents the JSON body for a partial event update.
// Absent fields leave the stored values untouched.
// swagger:model UpdateEventRequest
type UpdateEventRequest struct {
	// Event title
	Title *string `json:"title" validate:"omitempty,min=1"`

	// Event description
	Description *string `json:"description" validate:"omitempty,min=1"`

	// Scheduled date, RFC 3339
	Date *string `json:"date"`

	// Maximum number of live reservations
	Capacity *int `json:"capacity" validate:"omitempty,min=1"`

	// Venue address
	Address *string `json:"address"`

	// Image URL
	ImageURL *string `json:"imageUrl"`
}

// UpdateEventResponse represents a successful event update response
// swagger:model UpdateEventResponse
type UpdateEventResponse struct {
	// Success message
	// default: Event updated successfully
	Message string `json:"message"`

	// Updated event
	Event *models.EventResource `json:"event"`
}

// NewUpdateEventHandler returns an HTTP handler for updating events.
// Capacity changes apply to future registrations only; existing reservations
// survive even when the new capacity is below the live count.
// @Summary Update an event
// @Description Applies a partial update to an event owned by the authenticated user
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param updateEventRequest body handlers.UpdateEventRequest true "Event update request"
// @Success 200 {object} handlers.UpdateEventResponse "Event updated"
// @Failure 401 {object} handlers.EventErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.EventErrorResponse "Caller does not own this event"
// @Failure 404 {object} handlers.EventErrorResponse "Event not found"
// @Failure 422 {object} handlers.EventErrorResponse "Invalid data"
// @Router /events/{id} [put]
// @Security BearerAuth
func NewUpdateEventHandler(svc EventUpdater, tokener EventUpdateTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := claimsFromRequest(w, r, tokener)
		if !ok {
			return
		}

		eventID, ok := eventIDFromRequest(w, r)
		if !ok {
			return
		}

		var req UpdateEventRequest
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

		var date *time.Time
		if req.Date != nil {
			parsed, err := time.Parse(time.RFC3339, *req.Date)
			if err != nil {
				w.WriteHeader(http.StatusUnprocessableEntity)
				json.NewEncoder(w).Encode(EventErrorResponse{
					Error:  "Invalid data",
					Errors: map[string]string{"date": "Date must be a valid date string"},
				})
				return
			}
			date = &parsed
		}

		event, err := svc.Update(ctx, claims.UserID, eventID, models.UpdateEventParams{
			Title:       req.Title,
			Description: req.Description,
			Date:        date,
			Capacity:    req.Capacity,
			Address:     req.Address,
			ImageURL:    req.ImageURL,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEventNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(EventErrorResponse{
					Error: "Event not found",
				})
			case errors.Is(err, services.ErrForbidden):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(EventErrorResponse{
					Error: "Forbidden",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(EventErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateEventResponse{
			Message: "Event updated successfully",
			Event:   models.NewEventResource(event, 0, false, nil),
		})
	}
}
