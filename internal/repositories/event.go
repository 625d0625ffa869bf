package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-event-booking/internal/logger"
	"github.com/sbilibin2017/gw-event-booking/internal/models"
)

// EventReadRepository handles event read operations
type EventReadRepository struct {
	db *sqlx.DB
}

func NewEventReadRepository(db *sqlx.DB) *EventReadRepository {
	return &EventReadRepository{db: db}
}

// GetByID returns the event with the given id, or nil when no such event exists.
func (r *EventReadRepository) GetByID(ctx context.Context, eventID uuid.UUID) (*models.EventDB, error) {
	const query = `
		SELECT event_id, user_id, title, description, date, capacity, address, image_url, created_at, updated_at
		FROM events
		WHERE event_id = $1
	`

	var event models.EventDB
	err := r.db.GetContext(ctx, &event, query, eventID)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{eventID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &event, nil
}

// List returns up to models.EventListLimit events matching the query, each
// joined with its live reservation count and whether the viewer holds a
// reservation. Sort column and direction are whitelisted before being
// interpolated into the statement.
func (r *EventReadRepository) List(ctx context.Context, viewerID uuid.UUID, q models.EventListQuery) ([]models.EventListRow, error) {
	sortColumns := map[string]string{
		models.SortByDate:     "e.date",
		models.SortByCapacity: "e.capacity",
	}
	sortColumn, ok := sortColumns[q.SortBy]
	if !ok {
		sortColumn = "e.date"
	}

	sortOrder := "DESC"
	if strings.EqualFold(q.SortOrder, models.SortOrderAsc) {
		sortOrder = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT e.event_id, e.user_id, e.title, e.description, e.date, e.capacity,
		       e.address, e.image_url, e.created_at, e.updated_at,
		       (SELECT COUNT(*) FROM reservations r WHERE r.event_id = e.event_id) AS reservations_count,
		       EXISTS (SELECT 1 FROM reservations r WHERE r.event_id = e.event_id AND r.user_id = $1) AS is_registered
		FROM events e
		WHERE $2 = '' OR e.title ILIKE '%%' || $2 || '%%' OR e.description ILIKE '%%' || $2 || '%%'
		ORDER BY %s %s
		LIMIT %d
	`, sortColumn, sortOrder, models.EventListLimit)

	var rows []models.EventListRow
	err := r.db.SelectContext(ctx, &rows, query, viewerID, q.Search)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{viewerID, q.Search},
		"result", len(rows),
		"error", err,
	)

	return rows, err
}

// EventWriteRepository handles event write operations
type EventWriteRepository struct {
	db *sqlx.DB
}

func NewEventWriteRepository(db *sqlx.DB) *EventWriteRepository {
	return &EventWriteRepository{db: db}
}

// Save inserts a new event owned by userID and returns the created row.
func (r *EventWriteRepository) Save(ctx context.Context, userID uuid.UUID, params models.CreateEventParams) (*models.EventDB, error) {
	const query = `
		INSERT INTO events (event_id, user_id, title, description, date, capacity, address, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING event_id, user_id, title, description, date, capacity, address, image_url, created_at, updated_at
	`
	args := []any{uuid.New(), userID, params.Title, params.Description, params.Date, params.Capacity, params.Address, params.ImageURL}

	var event models.EventDB
	err := r.db.GetContext(ctx, &event, query, args...)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, params.Title, params.Capacity},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &event, nil
}

// Update applies the non-nil fields of params to the event and returns the
// updated row. COALESCE keeps columns whose parameter is NULL untouched, so
// absent fields in a partial update never overwrite stored values.
// Returns ErrEventNotFound when the event does not exist.
func (r *EventWriteRepository) Update(ctx context.Context, eventID uuid.UUID, params models.UpdateEventParams) (*models.EventDB, error) {
	const query = `
		UPDATE events
		SET title       = COALESCE($2, title),
		    description = COALESCE($3, description),
		    date        = COALESCE($4, date),
		    capacity    = COALESCE($5, capacity),
		    address     = COALESCE($6, address),
		    image_url   = COALESCE($7, image_url),
		    updated_at  = NOW()
		WHERE event_id = $1
		RETURNING event_id, user_id, title, description, date, capacity, address, image_url, created_at, updated_at
	`
	args := []any{eventID, params.Title, params.Description, params.Date, params.Capacity, params.Address, params.ImageURL}

	var event models.EventDB
	err := r.db.GetContext(ctx, &event, query, args...)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{eventID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	return &event, nil
}

// Delete removes the event and, through ON DELETE CASCADE, its reservations.
// Returns ErrEventNotFound when the event does not exist.
func (r *EventWriteRepository) Delete(ctx context.Context, eventID uuid.UUID) error {
	const query = `
		DELETE FROM events
		WHERE event_id = $1
	`

	res, err := r.db.ExecContext(ctx, query, eventID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{eventID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}
