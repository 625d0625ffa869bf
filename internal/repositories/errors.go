package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors surfaced by repositories so services can translate them
// into client-visible conditions.
var (
	ErrEventNotFound       = errors.New("event not found")
	ErrEventFull           = errors.New("event is fully booked")
	ErrAlreadyRegistered   = errors.New("already registered for this event")
	ErrReservationNotFound = errors.New("reservation not found")
)

// uniqueViolationCode is the PostgreSQL error code for unique constraint violations.
const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
