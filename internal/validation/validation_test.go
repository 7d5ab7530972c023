package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/barbershop-api/internal/errs"
)

var validate = validator.New()

type signupRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number" validate:"required,min=8,max=20"`
	Role        string `json:"role" validate:"omitempty,oneof=barber receptionist"`
}

func (r *signupRequest) Validate() error {
	return validate.Struct(r)
}

type priceRequest struct {
	negative bool
}

func (r *priceRequest) Validate() error {
	if r.negative {
		return CustomValidationErrors{{Field: "price", Message: "must not be negative"}}
	}
	return nil
}

func newJSONContext(t *testing.T, body string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func fieldErrorsByField(httpErr *errs.HTTPError) map[string]string {
	out := map[string]string{}
	for _, fe := range httpErr.Errors {
		out[fe.Field] = fe.Error
	}
	return out
}

func TestBindAndValidateSuccess(t *testing.T) {
	c := newJSONContext(t, `{"name":"Joao","email":"joao@example.com","phone_number":"11987654321"}`)

	var payload signupRequest
	if err := BindAndValidate(c, &payload); err != nil {
		t.Fatalf("BindAndValidate returned error: %v", err)
	}
	if payload.Name != "Joao" {
		t.Errorf("Name = %q, want %q", payload.Name, "Joao")
	}
}

func TestBindAndValidateMalformedBody(t *testing.T) {
	c := newJSONContext(t, `{"name":`)

	var payload signupRequest
	err := BindAndValidate(c, &payload)

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("error = %v, want *errs.HTTPError", err)
	}
	if httpErr.Status != http.StatusBadRequest {
		t.Errorf("Status = %d, want 400", httpErr.Status)
	}
	if httpErr.Message != "Request body could not be parsed" {
		t.Errorf("Message = %q", httpErr.Message)
	}
}

func TestBindAndValidateFieldMessages(t *testing.T) {
	c := newJSONContext(t, `{"name":"J","email":"not-an-email","role":"manager"}`)

	var payload signupRequest
	err := BindAndValidate(c, &payload)

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("error = %v, want *errs.HTTPError", err)
	}

	got := fieldErrorsByField(httpErr)
	want := map[string]string{
		"name":         "must be at least 2 characters",
		"email":        "must be a valid email address",
		"phone_number": "is required",
		"role":         "must be one of: barber receptionist",
	}
	for field, msg := range want {
		if got[field] != msg {
			t.Errorf("error for %q = %q, want %q", field, got[field], msg)
		}
	}
}

func TestBindAndValidateCustomErrors(t *testing.T) {
	c := newJSONContext(t, `{}`)

	err := BindAndValidate(c, &priceRequest{negative: true})

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("error = %v, want *errs.HTTPError", err)
	}
	if len(httpErr.Errors) != 1 || httpErr.Errors[0].Field != "price" {
		t.Fatalf("field errors = %+v, want one error on price", httpErr.Errors)
	}
	if httpErr.Errors[0].Error != "must not be negative" {
		t.Errorf("error = %q, want %q", httpErr.Errors[0].Error, "must not be negative")
	}
}
