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

// RegisterTokener defines only the token methods needed by this handler.
type RegisterTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, userID, eventID uuid.UUID) (*models.ReservationDB, error)
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: Registered successfully
	Message string `json:"message"`

	// Created reservation
	Reservation *models.ReservationResource `json:"reservation"`
}

// NewRegisterHandler returns an HTTP handler for registering for an event.
// @Summary Register for an event
// @Description Reserves a spot on the event for the authenticated user, subject to capacity
// @Tags reservations
// @Produce json
// @Param id path string true "Event ID"
// @Success 201 {object} handlers.RegisterResponse "Reservation created"
// @Failure 401 {object} handlers.EventErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.EventErrorResponse "Event not found"
// @Failure 409 {object} handlers.EventErrorResponse "Already registered or event fully booked"
// @Router /events/{id}/register [post]
// @Security BearerAuth
func NewRegisterHandler(svc Registerer, tokener RegisterTokener) http.HandlerFunc {
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

		reservation, err := svc.Register(ctx, claims.UserID, eventID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEventNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(EventErrorResponse{
					Error: "Event not found",
				})
			case errors.Is(err, services.ErrAlreadyRegistered):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(EventErrorResponse{
					Error: "Already registered for this event",
				})
			case errors.Is(err, services.ErrEventFull):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(EventErrorResponse{
					Error: "Event is fully booked",
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
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterResponse{
			Message:     "Registered successfully",
			Reservation: models.NewReservationResource(reservation),
		})
	}
}
