package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-event-booking/internal/jwt"
	"github.com/sbilibin2017/gw-event-booking/internal/logger"
	"github.com/sbilibin2017/gw-event-booking/internal/models"
	"github.com/sbilibin2017/gw-event-booking/internal/services"
)

// EventGetTokener defines only the token methods needed by this handler.
type EventGetTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// EventGetter defines the interface that the service must implement.
type EventGetter interface {
	GetByID(ctx context.Context, viewerID, eventID uuid.UUID) (*models.EventResource, error)
}

// GetEventResponse represents a successful event detail response
// swagger:model GetEventResponse
type GetEventResponse struct {
	// Event with owner and reservation stats
	Event *models.EventResource `json:"event"`
}

// NewGetEventHandler returns an HTTP handler for fetching a single event.
// @Summary Get an event
// @Description Returns the event with its owner, live reservation count, and whether the caller is registered
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} handlers.GetEventResponse "Event detail"
// @Failure 401 {object} handlers.EventErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.EventErrorResponse "Event not found"
// @Router /events/{id} [get]
// @Security BearerAuth
func NewGetEventHandler(svc EventGetter, tokener EventGetTokener) http.HandlerFunc {
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

		event, err := svc.GetByID(ctx, claims.UserID, eventID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEventNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(EventErrorResponse{
					Error: "Event not found",
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
		json.NewEncoder(w).Encode(GetEventResponse{Event: event})
	}
}
