package apperror

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var unavailableSignatures = []string{
	"connection refused",
	"no such host",
	"connection reset by peer",
	"failed to connect",
	"server closed the connection",
	"i/o timeout",
	"too many clients",
}

// IsUnavailable reports whether err looks like the backing store (or another
// upstream) could not be reached, as opposed to a query that failed.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, sig := range unavailableSignatures {
		if strings.Contains(msg, sig) {
			return true
		}
	}
	return false
}

// FromStore maps persistence errors to the shared taxonomy. notFound is
// returned for gorm.ErrRecordNotFound so each domain can keep its own message.
func FromStore(err error, notFound *AppError) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if notFound == nil {
			notFound = ErrNotFound
		}
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return Wrap(err, ErrConflict)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return Wrap(err, ErrConflict)
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "unique constraint failed") {
		return Wrap(err, ErrConflict)
	}

	if IsUnavailable(err) {
		return Wrap(err, ErrUnavailable)
	}

	return err
}
