package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-event-booking/internal/jwt"
	"github.com/sbilibin2017/gw-event-booking/internal/logger"
	"github.com/sbilibin2017/gw-event-booking/internal/services"
)

// EventDeleteTokener defines only the token methods needed by this handler.
type EventDeleteTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// EventDeleter defines the interface that the service must implement.
type EventDeleter interface {
	Delete(ctx context.Context, userID, eventID uuid.UUID) error
}

// DeleteEventResponse represents a successful event deletion response
// swagger:model DeleteEventResponse
type DeleteEventResponse struct {
	// Success message
	// default: Event deleted successfully
	Message string `json:"message"`
}

// NewDeleteEventHandler returns an HTTP handler for deleting events.
// @Summary Delete an event
// @Description Deletes an event owned by the authenticated user along with its reservations
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} handlers.DeleteEventResponse "Event deleted"
// @Failure 401 {object} handlers.EventErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.EventErrorResponse "Caller does not own this event"
// @Failure 404 {object} handlers.EventErrorResponse "Event not found"
// @Router /events/{id} [delete]
// @Security BearerAuth
func NewDeleteEventHandler(svc EventDeleter, tokener EventDeleteTokener) http.HandlerFunc {
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

		if err := svc.Delete(ctx, claims.UserID, eventID); err != nil {
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
		json.NewEncoder(w).Encode(DeleteEventResponse{
			Message: "Event deleted successfully",
		})
	}
}
