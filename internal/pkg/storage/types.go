package storage

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var ErrConstraintViolation error = errors.New("constraint violation")

const (
	measurementColumns string = "id, device_eui, measurand, unit, datatype, sensor, location, value, time_method, recorded_at, created_at"
	logEntryColumns    string = "id, device_eui, message, created_at"
)

// isIntegrityViolation reports SQLSTATE class 23 (integrity constraint violation) errors.
func isIntegrityViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return len(pgErr.Code) == 5 && pgErr.Code[:2] == "23"
	}
	return false
}
