package errors

import (
	"context"
	"database/sql"
	"errors"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// MapStoreError maps local profile store errors to AppError instances.
//   - context deadline / cancellation → Timeout / Canceled
//   - sql.ErrNoRows → NotFound
//   - SQLite busy/locked → Unavailable
//   - SQLite constraint failures → Conflict
//   - any other SQLite error → Internal
//
// Unrecognized errors are returned unchanged.
func MapStoreError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return Wrap(err, ErrCodeTimeout, "Request timed out. Please try again.")
	}
	if errors.Is(err, context.Canceled) {
		return Wrap(err, ErrCodeCanceled, "Request was canceled.")
	}
	if errors.Is(err, sql.ErrNoRows) {
		return Wrap(err, ErrCodeNotFound, "Resource not found")
	}

	var sqErr *sqlite.Error
	if errors.As(err, &sqErr) {
		return mapSQLiteError(sqErr)
	}
	return err
}

func mapSQLiteError(sqErr *sqlite.Error) error {
	// Extended result codes keep the primary code in the low byte.
	switch sqErr.Code() & 0xff {
	case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
		return Wrap(sqErr, ErrCodeUnavailable, "The local profile is busy. Please try again.")
	case sqlite3.SQLITE_CONSTRAINT:
		return Wrap(sqErr, ErrCodeConflict, "This value already exists.")
	case sqlite3.SQLITE_READONLY, sqlite3.SQLITE_CANTOPEN:
		return Wrap(sqErr, ErrCodeUnavailable, "The local profile cannot be written.")
	default:
		return Wrap(sqErr, ErrCodeInternal, "A local storage error occurred.")
	}
}
