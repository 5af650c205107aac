package sqlerr

import (
	"fmt"
	"strings"
)

// Code classifies a database failure into the small set of categories
// the application actually reacts to. Everything else is Other.
type Code int

const (
	Other Code = iota
	UniqueViolation
	ForeignKeyViolation
	NotNullViolation
	CheckViolation
	ConnectionException
)

func (c Code) String() string {
	switch c {
	case UniqueViolation:
		return "unique_violation"
	case ForeignKeyViolation:
		return "foreign_key_violation"
	case NotNullViolation:
		return "not_null_violation"
	case CheckViolation:
		return "check_violation"
	case ConnectionException:
		return "connection_exception"
	default:
		return "other"
	}
}

// Severity mirrors the severity field Postgres attaches to errors.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityError
	SeverityFatal
	SeverityPanic
)

// MapCode converts a SQLSTATE string into a Code.
//
// SQLSTATE is a five-character code; the first two characters identify
// the class. Class 08 covers connection failures; the constraint
// violations each have a fixed full code in class 23.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "23505":
		return UniqueViolation
	case "23503":
		return ForeignKeyViolation
	case "23502":
		return NotNullViolation
	case "23514":
		return CheckViolation
	}
	if strings.HasPrefix(sqlstate, "08") {
		return ConnectionException
	}
	return Other
}

// MapSeverity converts the driver's severity string into a Severity.
func MapSeverity(severity string) Severity {
	switch strings.ToUpper(severity) {
	case "ERROR":
		return SeverityError
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	default:
		return SeverityUnknown
	}
}

// Error is the structured form of a Postgres server error.
//
// It keeps the original SQLSTATE and the schema metadata the driver
// reports (table, column, constraint) so callers can build precise
// error codes and messages without string-matching the raw text.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr error
}

func (e *Error) Error() string {
	return fmt.Sprintf("sqlerr: %s (SQLSTATE %s): %s", e.Code, e.DatabaseCode, e.Message)
}

// Unwrap exposes the original driver error so errors.As/Is keep working
// on the untranslated value.
func (e *Error) Unwrap() error {
	return e.driverErr
}
