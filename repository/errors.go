package repository

import (
	"errors"
	"fmt"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrNotFound is returned when the requested user or budget id does not
	// exist. Callers map it to a 404-equivalent response.
	ErrNotFound = errors.New("record not found")

	// ErrConstraintViolation is returned when storage rejects a write for a
	// uniqueness or foreign-key violation (e.g. duplicate email).
	ErrConstraintViolation = errors.New("constraint violation")
)

// mapError folds sqlite constraint failures into ErrConstraintViolation so
// callers never have to inspect driver error codes.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	var se *sqlite.Error
	if errors.As(err, &se) {
		// Extended result codes keep the primary code in the low byte.
		if se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
			return fmt.Errorf("%w: %v", ErrConstraintViolation, err)
		}
	}
	return err
}
