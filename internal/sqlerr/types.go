package sqlerr

import "github.com/jackc/pgx/v5/pgconn"

// Code categorizes Postgres SQLSTATE error classes we care about.
type Code int

const (
	// Other is the catch-all for SQLSTATEs without a dedicated mapping.
	Other Code = iota

	// UniqueViolation is SQLSTATE 23505: a UNIQUE constraint failed.
	UniqueViolation

	// ForeignKeyViolation is SQLSTATE 23503: a referenced row does not exist
	// (or a referencing row blocks a delete).
	ForeignKeyViolation

	// NotNullViolation is SQLSTATE 23502: a NOT NULL column received NULL.
	NotNullViolation

	// CheckViolation is SQLSTATE 23514: a CHECK constraint failed.
	CheckViolation
)

// Severity categorizes the severity field of a Postgres error.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityError
	SeverityFatal
	SeverityPanic
)

// Error is the structured representation of a Postgres driver error.
//
// It keeps the original SQLSTATE and constraint metadata so callers can
// build precise error codes and messages, and wraps the driver error for
// errors.Is/As chains.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string // original SQLSTATE
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr *pgconn.PgError
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the original driver error to errors.Is/As.
func (e *Error) Unwrap() error {
	if e.driverErr == nil {
		return nil
	}
	return e.driverErr
}

// MapCode maps a Postgres SQLSTATE string to a sqlerr.Code.
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
	default:
		return Other
	}
}

// MapSeverity maps the Postgres severity string to a sqlerr.Severity.
func MapSeverity(severity string) Severity {
	switch severity {
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
