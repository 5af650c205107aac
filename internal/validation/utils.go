package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/deppfellow/microblog/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Typical pattern:
//   - Define a request struct with validator tags (`validate:"required,min=1"`)
//   - Implement Validate() error that runs validator.Struct(req)
//   - Return validator.ValidationErrors (or CustomValidationErrors)
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue for a
// specific field, for rules that cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that
// satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. c.Bind(payload) populates the request struct from path/query/body.
//  2. payload.Validate() applies validation rules.
//  3. Returns *errs.HTTPError (400) with field-level errors on failure.
//
// payload must be a pointer type so c.Bind can mutate it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError("Malformed request payload", false, nil, nil, nil)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors, nil)
	}

	return nil
}

// validateStruct calls v.Validate() and extracts field errors if
// validation fails.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Custom validation errors: convert directly. validationErrors
		// stays nil, so the loop below won't run.
		if customValidationErrors, ok := err.(CustomValidationErrors); ok {
			for _, err := range customValidationErrors {
				fieldErrors = append(fieldErrors, errs.FieldError{
					Field: err.Field,
					Error: err.Message,
				})
			}
		} else {
			return "Validation failed", []errs.FieldError{{Field: "", Error: err.Error()}}
		}
	}

	// Convert validator.ValidationErrors into user-friendly messages.
	for _, err := range validationErrors {
		field := strings.ToLower(err.Field())
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case "min":
			// min means minimum length for strings, minimum value otherwise.
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max":
			if err.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", err.Param())

		case "uuid":
			msg = "must be a valid UUID"

		case "dive":
			msg = "some items are invalid"

		default:
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: strings.ToLower(err.Field()),
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}
