package errs

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores("Not Found"))
	assert.Equal(t, "SERVICE_UNAVAILABLE", MakeUpperCaseWithUnderscores("Service Unavailable"))
	assert.Equal(t, "OK", MakeUpperCaseWithUnderscores("OK"))
}

func TestConstructors(t *testing.T) {
	notFound := NewNotFoundError("User not found", false, nil)
	assert.Equal(t, http.StatusNotFound, notFound.Status)
	assert.Equal(t, "NOT_FOUND", notFound.Code)
	assert.Equal(t, "User not found", notFound.Error())

	custom := "USER_MISSING"
	withCode := NewNotFoundError("User not found", false, &custom)
	assert.Equal(t, "USER_MISSING", withCode.Code)

	unavailable := NewServiceUnavailableError("The service is temporarily unavailable")
	assert.Equal(t, http.StatusServiceUnavailable, unavailable.Status)
	assert.Equal(t, "SERVICE_UNAVAILABLE", unavailable.Code)

	internal := NewInternalServerError()
	assert.Equal(t, http.StatusInternalServerError, internal.Status)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), internal.Message)
}

func TestHTTPErrorIs(t *testing.T) {
	err := NewNotFoundError("User not found", false, nil)

	// Any *HTTPError matches any other regardless of code or status.
	assert.True(t, errors.Is(err, NewInternalServerError()))
	assert.False(t, errors.Is(err, errors.New("plain")))
}

func TestWithMessage(t *testing.T) {
	base := NewBadRequestError("original", true, nil, []FieldError{{Field: "id", Error: "required"}}, nil)

	copied := base.WithMessage("replaced")
	require.NotSame(t, base, copied)

	assert.Equal(t, "replaced", copied.Message)
	assert.Equal(t, "original", base.Message)
	assert.Equal(t, base.Code, copied.Code)
	assert.Equal(t, base.Status, copied.Status)
	assert.Equal(t, base.Errors, copied.Errors)
}
