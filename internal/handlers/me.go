package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-event-booking/internal/jwt"
	"github.com/sbilibin2017/gw-event-booking/internal/logger"
	"github.com/sbilibin2017/gw-event-booking/internal/models"
)

// MeTokener defines only the token methods needed by this handler.
type MeTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// MeUserGetter defines the interface that the service must implement.
type MeUserGetter interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// MeResponse represents the current-user response
// swagger:model MeResponse
type MeResponse struct {
	// Authenticated user
	User *models.UserResource `json:"user"`
}

// MeErrorResponse represents an error response for the current-user endpoint
// swagger:model MeErrorResponse
type MeErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewMeHandler returns an HTTP handler for fetching the authenticated user.
// @Summary Get current user
// @Description Returns the user identified by the bearer token
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MeResponse "Current user"
// @Failure 401 {object} handlers.MeErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.MeErrorResponse "Internal server error"
// @Router /auth/me [get]
// @Security BearerAuth
func NewMeHandler(svc MeUserGetter, tokener MeTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized me request: missing or invalid token")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MeErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokener.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to parse token claims", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MeErrorResponse{Error: "Unauthorized"})
			return
		}

		user, err := svc.GetUser(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get current user", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MeErrorResponse{Error: "Unauthorized"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MeResponse{User: models.NewUserResource(user)})
	}
}
