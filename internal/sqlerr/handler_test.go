package sqlerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/deppfellow/barbershop-api/internal/errs"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("error = %v, want *errs.HTTPError", err)
	}
	return httpErr
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		TableName:      "customers",
		ConstraintName: "customers_email_key",
	})

	httpErr := asHTTPError(t, err)
	if httpErr.Status != 409 {
		t.Errorf("Status = %d, want 409", httpErr.Status)
	}
	if httpErr.Code != "CUSTOMER_ALREADY_EXISTS" {
		t.Errorf("Code = %q, want CUSTOMER_ALREADY_EXISTS", httpErr.Code)
	}
	if httpErr.Message != "A Customer with this Email already exists" {
		t.Errorf("Message = %q, want column substituted in message", httpErr.Message)
	}
}

func TestHandleErrorForeignKeyViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:       "23503",
		Severity:   "ERROR",
		TableName:  "appointments",
		ColumnName: "employee_id",
	})

	httpErr := asHTTPError(t, err)
	if httpErr.Status != 422 {
		t.Errorf("Status = %d, want 422", httpErr.Status)
	}
	if httpErr.Code != "APPOINTMENT_NOT_FOUND" {
		t.Errorf("Code = %q, want APPOINTMENT_NOT_FOUND", httpErr.Code)
	}
	if httpErr.Message != "The referenced Employee does not exist" {
		t.Errorf("Message = %q, want entity inferred from column", httpErr.Message)
	}
}

func TestHandleErrorNotNullViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:       "23502",
		Severity:   "ERROR",
		TableName:  "customers",
		ColumnName: "phone_number",
	})

	httpErr := asHTTPError(t, err)
	if httpErr.Status != 400 {
		t.Errorf("Status = %d, want 400", httpErr.Status)
	}
	if len(httpErr.Errors) != 1 || httpErr.Errors[0].Field != "phone_number" {
		t.Errorf("field errors = %+v, want one error on phone_number", httpErr.Errors)
	}
}

func TestHandleErrorCheckViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Code:      "23514",
		Severity:  "ERROR",
		TableName: "services",
	})

	httpErr := asHTTPError(t, err)
	if httpErr.Status != 400 {
		t.Errorf("Status = %d, want 400", httpErr.Status)
	}
	if httpErr.Code != "SERVICE_INVALID" {
		t.Errorf("Code = %q, want SERVICE_INVALID", httpErr.Code)
	}
}

func TestHandleErrorNoRowsWithTableAnnotation(t *testing.T) {
	err := HandleError(fmt.Errorf("table:customers: %w", pgx.ErrNoRows))

	httpErr := asHTTPError(t, err)
	if httpErr.Status != 404 {
		t.Errorf("Status = %d, want 404", httpErr.Status)
	}
	if httpErr.Message != "Customer not found" {
		t.Errorf("Message = %q, want %q", httpErr.Message, "Customer not found")
	}
}

func TestHandleErrorNoRowsWithoutAnnotation(t *testing.T) {
	err := HandleError(pgx.ErrNoRows)

	httpErr := asHTTPError(t, err)
	if httpErr.Status != 404 {
		t.Errorf("Status = %d, want 404", httpErr.Status)
	}
	if httpErr.Message != "Resource not found" {
		t.Errorf("Message = %q, want %q", httpErr.Message, "Resource not found")
	}
}

func TestHandleErrorPassesThroughHTTPError(t *testing.T) {
	original := errs.NewConflictError("already booked", nil, nil)

	if err := HandleError(original); err != original {
		t.Errorf("HandleError rewrapped an existing HTTPError: %v", err)
	}
}

func TestHandleErrorUnknown(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("connection reset")))
	if httpErr.Status != 500 {
		t.Errorf("Status = %d, want 500", httpErr.Status)
	}
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	tests := []struct {
		constraint string
		want       string
	}{
		{"customers_email_key", "email"},
		{"employees_phone_number_ukey", "number"},
		{"unique_customers_email", "email"},
		{"customers_pkey", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := extractColumnForUniqueViolation(tt.constraint); got != tt.want {
			t.Errorf("extractColumnForUniqueViolation(%q) = %q, want %q", tt.constraint, got, tt.want)
		}
	}
}
