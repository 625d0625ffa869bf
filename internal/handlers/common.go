package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-event-booking/internal/jwt"
	"github.com/sbilibin2017/gw-event-booking/internal/logger"
)

// tokener is the common shape of the per-handler token interfaces.
type tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// claimsFromRequest extracts and parses the bearer token. On failure it
// writes a 401 response and returns ok=false.
func claimsFromRequest(w http.ResponseWriter, r *http.Request, t tokener) (*jwt.Claims, bool) {
	ctx := r.Context()

	tokenStr, err := t.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Error("unauthorized request: missing or invalid token")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(EventErrorResponse{Error: "Unauthorized"})
		return nil, false
	}

	claims, err := t.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to parse token claims", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(EventErrorResponse{Error: "Unauthorized"})
		return nil, false
	}

	return claims, true
}

// eventIDFromRequest parses the {id} route parameter. A malformed id can
// never name an existing event, so it is reported as 404. Writes the
// response and returns ok=false on failure.
func eventIDFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	eventID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(EventErrorResponse{Error: "Event not found"})
		return uuid.Nil, false
	}
	return eventID, true
}
