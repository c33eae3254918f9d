package apperror_test

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestFromStore(t *testing.T) {
	notFound := apperror.New(apperror.CodeNotFound, "Brand not found", http.StatusNotFound)

	t.Run("record not found uses domain error", func(t *testing.T) {
		err := apperror.FromStore(gorm.ErrRecordNotFound, notFound)
		assert.ErrorIs(t, err, notFound)
		assert.Equal(t, http.StatusNotFound, apperror.ToHTTP(err).Status)
	})

	t.Run("unique violation becomes conflict", func(t *testing.T) {
		err := apperror.FromStore(&pgconn.PgError{Code: "23505"}, notFound)
		assert.Equal(t, http.StatusConflict, apperror.ToHTTP(err).Status)
	})

	t.Run("connection refused becomes unavailable", func(t *testing.T) {
		opErr := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connect: connection refused")}
		err := apperror.FromStore(fmt.Errorf("query brands: %w", opErr), notFound)
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusServiceUnavailable, httpErr.Status)
		assert.Equal(t, apperror.CodeServiceUnavailable, httpErr.Code)
	})

	t.Run("deadline exceeded becomes unavailable", func(t *testing.T) {
		err := apperror.FromStore(context.DeadlineExceeded, notFound)
		assert.Equal(t, http.StatusServiceUnavailable, apperror.ToHTTP(err).Status)
	})

	t.Run("unknown error stays internal", func(t *testing.T) {
		err := apperror.FromStore(errors.New("syntax error at or near"), notFound)
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, "Internal server error", httpErr.Message)
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, apperror.FromStore(nil, notFound))
	})
}

func TestFieldErrors(t *testing.T) {
	fields := apperror.FieldErrors{}
	assert.NoError(t, fields.Err())

	fields.Add("email", "Email is required")
	fields.Add("email", "Email must be a valid email address")

	httpErr := apperror.ToHTTP(fields.Err())
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, apperror.CodeValidation, httpErr.Code)

	details, ok := httpErr.Details.(map[string]any)
	assert.True(t, ok)
	assert.Len(t, details["errors"].(apperror.FieldErrors)["email"], 2)
}
