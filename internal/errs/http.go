package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "id", "error": "must be at least 1" }
type FieldError struct {
	// Field is the field name/key the error relates to.
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// ActionType is a string-based enum describing what the client should do.
type ActionType string

const (
	// ActionTypeRedirect tells the client it should redirect somewhere.
	// Value holds the URL or route.
	ActionTypeRedirect ActionType = "redirect"
)

// Action describes an optional "what the client should do next" instruction.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is the main custom error type for API responses.
//
// It implements the `error` interface via Error() and is designed to be
// serialized directly to JSON.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "NOT_FOUND").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: lets middleware decide whether to replace the message.
//   - Errors: list of per-field errors (validation).
//   - Action: optional client instruction.
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	Errors []FieldError `json:"errors"`
	Action *Action      `json:"action"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is customizes how errors.Is treats HTTPError: any *HTTPError matches
// any other, regardless of code or status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced,
// leaving the original template untouched.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
		Action:   e.Action,
	}
}

// MakeUpperCaseWithUnderscores converts a string into
// UPPER_CASE_WITH_UNDERSCORES format:
//
//	"Bad Request" -> "BAD_REQUEST"
//
// Used to create stable machine-readable error codes from HTTP status text.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
