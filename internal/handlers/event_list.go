package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-event-booking/internal/jwt"
	"github.com/sbilibin2017/gw-event-booking/internal/logger"
	"github.com/sbilibin2017/gw-event-booking/internal/models"
	"github.com/sbilibin2017/gw-event-booking/internal/validation"
)

// EventListTokener defines only the token methods needed by this handler.
type EventListTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// EventLister defines the interface that the service must implement.
type EventLister interface {
	List(ctx context.Context, viewerID uuid.UUID, q models.EventListQuery) ([]models.EventListRow, error)
}

// ListEventsQuery represents the accepted query parameters for listing events
// swagger:model ListEventsQuery
type ListEventsQuery struct {
	// Free-text search over title and description
	Search string `json:"search"`

	// Sort column
	// default: date
	SortBy string `json:"sortBy" validate:"omitempty,oneof=date capacity"`

	// Sort direction
	// default: DESC
	SortOrder string `json:"sortOrder" validate:"omitempty,oneof=ASC DESC"`
}

// ListEventsResponse represents a successful event listing response
// swagger:model ListEventsResponse
type ListEventsResponse struct {
	// Matching events, newest first by default, at most 20
	Events []*models.EventResource `json:"events"`
}

// NewListEventsHandler returns an HTTP handler for listing events.
// @Summary List events
// @Description Returns up to 20 events, optionally filtered by free-text search over title and description and sorted by date or capacity
// @Tags events
// @Produce json
// @Param search query string false "Free-text search"
// @Param sortBy query string false "Sort column: date or capacity"
// @Param sortOrder query string false "Sort direction: ASC or DESC"
// @Success 200 {object} handlers.ListEventsResponse "Matching events"
// @Failure 401 {object} handlers.EventErrorResponse "Unauthorized"
// @Failure 422 {object} handlers.EventErrorResponse "Invalid query parameters"
// @Router /events [get]
// @Security BearerAuth
func NewListEventsHandler(svc EventLister, tokener EventListTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := claimsFromRequest(w, r, tokener)
		if !ok {
			return
		}

		query := ListEventsQuery{
			Search:    r.URL.Query().Get("search"),
			SortBy:    r.URL.Query().Get("sortBy"),
			SortOrder: r.URL.Query().Get("sortOrder"),
		}

		if fields := validation.Validate(query); fields != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(EventErrorResponse{
				Error:  "Invalid query parameters",
				Errors: fields,
			})
			return
		}

		if query.SortBy == "" {
			query.SortBy = models.SortByDate
		}
		if query.SortOrder == "" {
			query.SortOrder = models.SortOrderDesc
		}

		rows, err := svc.List(ctx, claims.UserID, models.EventListQuery{
			Search:    query.Search,
			SortBy:    query.SortBy,
			SortOrder: query.SortOrder,
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
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListEventsResponse{
			Events: models.NewEventListResource(rows),
		})
	}
}
