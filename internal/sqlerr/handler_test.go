package sqlerr

import (
	"net/http"
	"testing"

	"github.com/deppfellow/microblog/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapCode(t *testing.T) {
	tests := []struct {
		sqlstate string
		want     Code
	}{
		{"23505", UniqueViolation},
		{"23503", ForeignKeyViolation},
		{"23502", NotNullViolation},
		{"23514", CheckViolation},
		{"08006", ConnectionException},
		{"08001", ConnectionException},
		{"42P01", Other},
		{"", Other},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MapCode(tt.sqlstate), "sqlstate %q", tt.sqlstate)
	}
}

func TestConvertPgError(t *testing.T) {
	src := &pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		Message:        "duplicate key value violates unique constraint",
		TableName:      "users",
		ConstraintName: "users_username_key",
	}

	converted := ConvertPgError(src)

	assert.Equal(t, UniqueViolation, converted.Code)
	assert.Equal(t, SeverityError, converted.Severity)
	assert.Equal(t, "23505", converted.DatabaseCode)
	assert.Equal(t, "users", converted.TableName)

	// The driver error stays reachable through Unwrap.
	var pgerr *pgconn.PgError
	require.ErrorAs(t, converted, &pgerr)
	assert.Same(t, src, pgerr)
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		TableName:      "users",
		ConstraintName: "users_username_key",
	})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "USER_ALREADY_EXISTS", httpErr.Code)
	assert.Equal(t, "A User with this Username already exists", httpErr.Message)
}

func TestHandleErrorForeignKeyViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:       "23503",
		Severity:   "ERROR",
		TableName:  "tweets",
		ColumnName: "author_id",
	})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "TWEET_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "The referenced Author does not exist", httpErr.Message)
}

func TestHandleErrorConnectionException(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:     "08006",
		Severity: "FATAL",
	})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.Status)
}

func TestHandleErrorNoRows(t *testing.T) {
	err := HandleError(pgx.ErrNoRows)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestHandleErrorPassthrough(t *testing.T) {
	original := errs.NewNotFoundError("User not found", false, nil)

	assert.Same(t, original, HandleError(original))
}

func TestHandleErrorUnknown(t *testing.T) {
	err := HandleError(errors.New("something odd"))

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestErrCode(t *testing.T) {
	wrapped := errors.Wrap(ConvertPgError(&pgconn.PgError{Code: "23503"}), "inserting tweet")

	assert.Equal(t, ForeignKeyViolation, ErrCode(wrapped))
	assert.Equal(t, Other, ErrCode(errors.New("plain")))
}
