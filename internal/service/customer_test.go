package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/deppfellow/barbershop-api/internal/errs"
	"github.com/deppfellow/barbershop-api/internal/lib/phone"
	"github.com/deppfellow/barbershop-api/internal/model"
	"github.com/deppfellow/barbershop-api/internal/repository"
)

// fakeCustomerRepo is an in-memory CustomerRepository.
type fakeCustomerRepo struct {
	customers map[int64]*model.Customer
	nextID    int64
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{
		customers: map[int64]*model.Customer{},
		nextID:    1,
	}
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *model.Customer) (*model.Customer, error) {
	created := *c
	created.ID = f.nextID
	f.nextID++
	f.customers[created.ID] = &created
	return &created, nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*model.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, fmt.Errorf("table:customers: %w", pgx.ErrNoRows)
	}
	return c, nil
}

func (f *fakeCustomerRepo) List(_ context.Context, limit, offset int) ([]model.Customer, error) {
	out := []model.Customer{}
	for _, c := range f.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, id int64, params repository.UpdateCustomerParams) (*model.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, fmt.Errorf("table:customers: %w", pgx.ErrNoRows)
	}
	if params.Name != nil {
		c.Name = *params.Name
	}
	if params.Email != nil {
		c.Email = *params.Email
	}
	if params.PhoneNumber != nil {
		c.PhoneNumber = *params.PhoneNumber
	}
	return c, nil
}

func (f *fakeCustomerRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.customers[id]; !ok {
		return fmt.Errorf("table:customers: %w", pgx.ErrNoRows)
	}
	delete(f.customers, id)
	return nil
}

func (f *fakeCustomerRepo) ExistsByEmail(_ context.Context, email string, excludeID int64) (bool, error) {
	for _, c := range f.customers {
		if c.Email == email && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCustomerRepo) ExistsByPhone(_ context.Context, phoneNumber string, excludeID int64) (bool, error) {
	for _, c := range f.customers {
		if c.PhoneNumber == phoneNumber && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCustomerRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := f.customers[id]
	return ok, nil
}

func (f *fakeCustomerRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.customers)), nil
}

// fakeVerifier returns a fixed outcome.
type fakeVerifier struct {
	outcome phone.Outcome
	calls   int
}

func (f *fakeVerifier) Verify(_ context.Context, _ string) (phone.Result, error) {
	f.calls++
	return phone.Result{Outcome: f.outcome}, nil
}

func newCustomerService(repo repository.CustomerRepository, verifier PhoneVerifier) *CustomerService {
	logger := zerolog.Nop()
	return NewCustomerService(repo, verifier, &logger)
}

func assertHTTPError(t *testing.T, err error, wantStatus int, wantCode string) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("error = %v, want *errs.HTTPError", err)
	}
	if httpErr.Status != wantStatus {
		t.Errorf("Status = %d, want %d", httpErr.Status, wantStatus)
	}
	if wantCode != "" && httpErr.Code != wantCode {
		t.Errorf("Code = %q, want %q", httpErr.Code, wantCode)
	}
	return httpErr
}

func TestCustomerCreate(t *testing.T) {
	repo := newFakeCustomerRepo()
	verifier := &fakeVerifier{outcome: phone.OutcomeValid}
	svc := newCustomerService(repo, verifier)

	created, err := svc.Create(context.Background(), CreateCustomerInput{
		Name:        "Joao Silva",
		Email:       "joao@example.com",
		PhoneNumber: "11987654321",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == 0 {
		t.Error("created customer has zero ID")
	}
	if verifier.calls != 1 {
		t.Errorf("verifier calls = %d, want 1", verifier.calls)
	}
}

func TestCustomerCreateDuplicateEmail(t *testing.T) {
	repo := newFakeCustomerRepo()
	verifier := &fakeVerifier{outcome: phone.OutcomeValid}
	svc := newCustomerService(repo, verifier)

	_, err := svc.Create(context.Background(), CreateCustomerInput{
		Name: "Joao", Email: "joao@example.com", PhoneNumber: "11911111111",
	})
	if err != nil {
		t.Fatalf("first Create returned error: %v", err)
	}

	_, err = svc.Create(context.Background(), CreateCustomerInput{
		Name: "Other Joao", Email: "joao@example.com", PhoneNumber: "11922222222",
	})
	httpErr := assertHTTPError(t, err, 409, "CUSTOMER_ALREADY_EXISTS")
	if len(httpErr.Errors) != 1 || httpErr.Errors[0].Field != "email" {
		t.Errorf("field errors = %+v, want one error on email", httpErr.Errors)
	}
}

func TestCustomerCreateDuplicatePhone(t *testing.T) {
	repo := newFakeCustomerRepo()
	verifier := &fakeVerifier{outcome: phone.OutcomeValid}
	svc := newCustomerService(repo, verifier)

	_, err := svc.Create(context.Background(), CreateCustomerInput{
		Name: "Joao", Email: "joao@example.com", PhoneNumber: "11911111111",
	})
	if err != nil {
		t.Fatalf("first Create returned error: %v", err)
	}

	_, err = svc.Create(context.Background(), CreateCustomerInput{
		Name: "Maria", Email: "maria@example.com", PhoneNumber: "11911111111",
	})
	httpErr := assertHTTPError(t, err, 409, "CUSTOMER_ALREADY_EXISTS")
	if len(httpErr.Errors) != 1 || httpErr.Errors[0].Field != "phone_number" {
		t.Errorf("field errors = %+v, want one error on phone_number", httpErr.Errors)
	}
}

func TestCustomerCreateInvalidPhone(t *testing.T) {
	repo := newFakeCustomerRepo()
	verifier := &fakeVerifier{outcome: phone.OutcomeInvalid}
	svc := newCustomerService(repo, verifier)

	_, err := svc.Create(context.Background(), CreateCustomerInput{
		Name: "Joao", Email: "joao@example.com", PhoneNumber: "123",
	})
	assertHTTPError(t, err, 422, "PHONE_INVALID")

	if len(repo.customers) != 0 {
		t.Error("customer was persisted despite invalid phone")
	}
}

func TestCustomerCreateVerifierUnreachable(t *testing.T) {
	// Validator outages must not block registration.
	repo := newFakeCustomerRepo()
	verifier := &fakeVerifier{outcome: phone.OutcomeUnreachable}
	svc := newCustomerService(repo, verifier)

	created, err := svc.Create(context.Background(), CreateCustomerInput{
		Name: "Joao", Email: "joao@example.com", PhoneNumber: "11987654321",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created == nil || created.ID == 0 {
		t.Fatal("customer was not persisted")
	}
}

func TestCustomerUpdateKeepsOwnEmail(t *testing.T) {
	repo := newFakeCustomerRepo()
	verifier := &fakeVerifier{outcome: phone.OutcomeValid}
	svc := newCustomerService(repo, verifier)

	created, err := svc.Create(context.Background(), CreateCustomerInput{
		Name: "Joao", Email: "joao@example.com", PhoneNumber: "11911111111",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// Re-sending the current email must not trip the uniqueness check.
	email := "joao@example.com"
	name := "Joao S."
	updated, err := svc.Update(context.Background(), created.ID, UpdateCustomerInput{
		Name:  &name,
		Email: &email,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Name != "Joao S." {
		t.Errorf("Name = %q, want %q", updated.Name, "Joao S.")
	}

	// The phone number was not touched, so no verification call was made
	// beyond the one at creation.
	if verifier.calls != 1 {
		t.Errorf("verifier calls = %d, want 1", verifier.calls)
	}
}

func TestCustomerUpdatePhoneReverifies(t *testing.T) {
	repo := newFakeCustomerRepo()
	verifier := &fakeVerifier{outcome: phone.OutcomeValid}
	svc := newCustomerService(repo, verifier)

	created, err := svc.Create(context.Background(), CreateCustomerInput{
		Name: "Joao", Email: "joao@example.com", PhoneNumber: "11911111111",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	verifier.outcome = phone.OutcomeInvalid
	newPhone := "11922222222"
	_, err = svc.Update(context.Background(), created.ID, UpdateCustomerInput{
		PhoneNumber: &newPhone,
	})
	assertHTTPError(t, err, 422, "PHONE_INVALID")

	if repo.customers[created.ID].PhoneNumber != "11911111111" {
		t.Error("phone number changed despite failed verification")
	}
}

func TestCustomerUpdateNotFound(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := newCustomerService(repo, &fakeVerifier{outcome: phone.OutcomeValid})

	name := "Ghost"
	_, err := svc.Update(context.Background(), 99, UpdateCustomerInput{Name: &name})
	if !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("error = %v, want wrapped pgx.ErrNoRows", err)
	}
}

func TestCustomerDeleteNotFound(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := newCustomerService(repo, &fakeVerifier{outcome: phone.OutcomeValid})

	err := svc.Delete(context.Background(), 42)
	if !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("error = %v, want wrapped pgx.ErrNoRows", err)
	}
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", 0, 0, 50, 0},
		{"explicit", 20, 40, 20, 40},
		{"capped", 500, 0, 100, 0},
		{"negative offset", 10, -5, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := normalizePage(tt.limit, tt.offset)
			if limit != tt.wantLimit || offset != tt.wantOffset {
				t.Errorf("normalizePage(%d, %d) = (%d, %d), want (%d, %d)",
					tt.limit, tt.offset, limit, offset, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}
