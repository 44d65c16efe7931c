package service

import (
	"context"
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// storeError classifies a storage failure into the service error taxonomy.
// Context expiry and transient driver conditions (busy, locked, I/O) map to
// ErrStoreUnavailable; uniqueness violations map to ErrConstraintViolation.
// Anything else is wrapped as-is.
func storeError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		// Extended result codes carry their base code in the low byte,
		// e.g. 2067 (SQLITE_CONSTRAINT_UNIQUE) -> 19 (SQLITE_CONSTRAINT).
		switch sqliteErr.Code() & 0xff {
		case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED, sqlite3.SQLITE_NOMEM,
			sqlite3.SQLITE_INTERRUPT, sqlite3.SQLITE_IOERR, sqlite3.SQLITE_FULL,
			sqlite3.SQLITE_CANTOPEN, sqlite3.SQLITE_PROTOCOL:
			return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
		case sqlite3.SQLITE_CONSTRAINT:
			return fmt.Errorf("%s: %w: %w", op, ErrConstraintViolation, err)
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}
