package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-event-booking/internal/logger"
	"github.com/sbilibin2017/gw-event-booking/internal/models"
)

// ReservationWriteRepository mediates creation and removal of reservation
// rows. It is the sole mutator of the reservations table.
type ReservationWriteRepository struct {
	db *sqlx.DB
}

func NewReservationWriteRepository(db *sqlx.DB) *ReservationWriteRepository {
	return &ReservationWriteRepository{db: db}
}

// Register creates a reservation for (userID, eventID) inside a single
// transaction.
//
// A plain "count then insert" lets two concurrent registrations both read
// the same count and jointly overshoot capacity. SELECT ... FOR UPDATE on
// the event row serializes registrations per event: the second transaction
// blocks on the row lock until the first commits, then re-reads. Registrations
// for different events lock different rows and do not block each other.
// The composite unique index on (user_id, event_id) backstops the duplicate
// check; a violation maps to ErrAlreadyRegistered.
//
// Returns ErrEventNotFound, ErrAlreadyRegistered, or ErrEventFull for the
// expected conflict conditions.
func (r *ReservationWriteRepository) Register(ctx context.Context, userID, eventID uuid.UUID) (*models.ReservationDB, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	const lockQuery = `
		SELECT capacity
		FROM events
		WHERE event_id = $1
		FOR UPDATE
	`
	var capacity int
	if err := tx.GetContext(ctx, &capacity, lockQuery, eventID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	const existsQuery = `
		SELECT EXISTS (
			SELECT 1 FROM reservations WHERE user_id = $1 AND event_id = $2
		)
	`
	var exists bool
	if err := tx.GetContext(ctx, &exists, existsQuery, userID, eventID); err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyRegistered
	}

	const countQuery = `
		SELECT COUNT(*) FROM reservations WHERE event_id = $1
	`
	var count int
	if err := tx.GetContext(ctx, &count, countQuery, eventID); err != nil {
		return nil, err
	}
	if count >= capacity {
		return nil, ErrEventFull
	}

	const insertQuery = `
		INSERT INTO reservations (reservation_id, user_id, event_id, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING reservation_id, user_id, event_id, created_at
	`
	var reservation models.ReservationDB
	err = tx.GetContext(ctx, &reservation, insertQuery, uuid.New(), userID, eventID)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(insertQuery), " "),
		"args", []any{userID, eventID},
		"result", map[string]any{"capacity": capacity, "count": count},
		"error", err,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyRegistered
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &reservation, nil
}

// Unregister deletes the reservation for (userID, eventID). Returns
// ErrReservationNotFound when no live reservation exists, so a repeated
// call after success fails deterministically instead of silently passing.
func (r *ReservationWriteRepository) Unregister(ctx context.Context, userID, eventID uuid.UUID) error {
	const query = `
		DELETE FROM reservations
		WHERE user_id = $1 AND event_id = $2
		RETURNING reservation_id
	`

	var reservationID uuid.UUID
	err := r.db.GetContext(ctx, &reservationID, query, userID, eventID)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, eventID},
		"result", reservationID,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrReservationNotFound
		}
		return err
	}
	return nil
}

// ReservationReadRepository handles reservation read operations
type ReservationReadRepository struct {
	db *sqlx.DB
}

func NewReservationReadRepository(db *sqlx.DB) *ReservationReadRepository {
	return &ReservationReadRepository{db: db}
}

// CountByEventID returns the number of live reservations for the event.
func (r *ReservationReadRepository) CountByEventID(ctx context.Context, eventID uuid.UUID) (int, error) {
	const query = `
		SELECT COUNT(*) FROM reservations WHERE event_id = $1
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, eventID)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{eventID},
		"result", count,
		"error", err,
	)

	return count, err
}

// Exists reports whether the user holds a live reservation for the event.
func (r *ReservationReadRepository) Exists(ctx context.Context, userID, eventID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM reservations WHERE user_id = $1 AND event_id = $2
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, userID, eventID)

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, eventID},
		"result", exists,
		"error", err,
	)

	return exists, err
}
