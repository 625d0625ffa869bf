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

// UnregisterTokener defines only the token methods needed by this handler.
type UnregisterTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Unregisterer defines the interface that the service must implement.
type Unregisterer interface {
	Unregister(ctx context.Context, userID, eventID uuid.UUID) error
}

// UnregisterResponse represents a successful unregistration response
// swagger:model UnregisterResponse
type UnregisterResponse struct {
	// Success message
	// default: Unregistered successfully
	Message string `json:"message"`
}

// NewUnregisterHandler returns an HTTP handler for cancelling a registration.
// @Summary Unregister from an event
// @Description Removes the authenticated user's reservation, freeing the spot for others
// @Tags reservations
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} handlers.UnregisterResponse "Reservation removed"
// @Failure 401 {object} handlers.EventErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.EventErrorResponse "No registration found"
// @Router /events/{id}/register [delete]
// @Security BearerAuth
func NewUnregisterHandler(svc Unregisterer, tokener UnregisterTokener) http.HandlerFunc {
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

		if err := svc.Unregister(ctx, claims.UserID, eventID); err != nil {
			switch {
			case errors.Is(err, services.ErrReservationNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(EventErrorResponse{
					Error: "No registration found",
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
		json.NewEncoder(w).Encode(UnregisterResponse{
			Message: "Unregistered successfully",
		})
	}
}
