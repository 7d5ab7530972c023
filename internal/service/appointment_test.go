package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/deppfellow/barbershop-api/internal/lib/job"
	"github.com/deppfellow/barbershop-api/internal/model"
	"github.com/deppfellow/barbershop-api/internal/repository"
)

type fakeEmployeeRepo struct {
	employees map[int64]*model.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e *model.Employee) (*model.Employee, error) {
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (*model.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return nil, fmt.Errorf("table:employees: %w", pgx.ErrNoRows)
	}
	return e, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context, limit, offset int) ([]model.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, id int64, _ repository.UpdateEmployeeParams) (*model.Employee, error) {
	return f.GetByID(context.Background(), id)
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id int64) error {
	return nil
}

func (f *fakeEmployeeRepo) ExistsByEmail(_ context.Context, _ string, _ int64) (bool, error) {
	return false, nil
}

func (f *fakeEmployeeRepo) ExistsByPhone(_ context.Context, _ string, _ int64) (bool, error) {
	return false, nil
}

func (f *fakeEmployeeRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := f.employees[id]
	return ok, nil
}

func (f *fakeEmployeeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.employees)), nil
}

type fakeServiceRepo struct {
	services map[int64]*model.Service
}

func (f *fakeServiceRepo) Create(_ context.Context, s *model.Service) (*model.Service, error) {
	return s, nil
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (*model.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, fmt.Errorf("table:services: %w", pgx.ErrNoRows)
	}
	return s, nil
}

func (f *fakeServiceRepo) List(_ context.Context, limit, offset int) ([]model.Service, error) {
	return nil, nil
}

func (f *fakeServiceRepo) Update(_ context.Context, id int64, _ repository.UpdateServiceParams) (*model.Service, error) {
	return f.GetByID(context.Background(), id)
}

func (f *fakeServiceRepo) Delete(_ context.Context, id int64) error {
	return nil
}

func (f *fakeServiceRepo) ExistsByName(_ context.Context, _ string, _ int64) (bool, error) {
	return false, nil
}

func (f *fakeServiceRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := f.services[id]
	return ok, nil
}

func (f *fakeServiceRepo) CountByStatus(_ context.Context, status model.ServiceStatus) (int64, error) {
	var count int64
	for _, s := range f.services {
		if s.Status == status {
			count++
		}
	}
	return count, nil
}

type fakeAppointmentRepo struct {
	appointments map[int64]*model.Appointment
	nextID       int64
}

func (f *fakeAppointmentRepo) Create(_ context.Context, a *model.Appointment) (*model.Appointment, error) {
	created := *a
	created.ID = f.nextID
	f.nextID++
	f.appointments[created.ID] = &created
	return &created, nil
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*model.Appointment, error) {
	a, ok := f.appointments[id]
	if !ok {
		return nil, fmt.Errorf("table:appointments: %w", pgx.ErrNoRows)
	}
	return a, nil
}

func (f *fakeAppointmentRepo) List(_ context.Context, _ repository.ListAppointmentsFilter, limit, offset int) ([]model.Appointment, error) {
	out := []model.Appointment{}
	for _, a := range f.appointments {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) Update(_ context.Context, id int64, params repository.UpdateAppointmentParams) (*model.Appointment, error) {
	a, ok := f.appointments[id]
	if !ok {
		return nil, fmt.Errorf("table:appointments: %w", pgx.ErrNoRows)
	}
	if params.AppointmentDate != nil {
		a.AppointmentDate = *params.AppointmentDate
	}
	if params.Status != nil {
		a.Status = *params.Status
	}
	return a, nil
}

func (f *fakeAppointmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.appointments[id]; !ok {
		return fmt.Errorf("table:appointments: %w", pgx.ErrNoRows)
	}
	delete(f.appointments, id)
	return nil
}

func (f *fakeAppointmentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.appointments)), nil
}

func (f *fakeAppointmentRepo) CountBefore(_ context.Context, t time.Time) (int64, error) {
	var count int64
	for _, a := range f.appointments {
		if a.AppointmentDate.Before(t) {
			count++
		}
	}
	return count, nil
}

func (f *fakeAppointmentRepo) CountSince(_ context.Context, t time.Time) (int64, error) {
	var count int64
	for _, a := range f.appointments {
		if !a.AppointmentDate.Before(t) {
			count++
		}
	}
	return count, nil
}

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) Enqueue(task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{}, nil
}

// bookingBase is a Monday at noon, so base+1h etc. stay inside opening
// hours without crossing midnight.
var bookingBase = time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local)

func newAppointmentFixture() (*AppointmentService, *fakeAppointmentRepo, *fakeEnqueuer) {
	customers := newFakeCustomerRepo()
	customers.customers[1] = &model.Customer{
		ID: 1, Name: "Joao", Email: "joao@example.com", PhoneNumber: "11911111111",
	}

	employees := &fakeEmployeeRepo{employees: map[int64]*model.Employee{
		2: {ID: 2, Name: "Carlos", Role: "barber", Status: model.EmployeeStatusAvailable},
	}}

	services := &fakeServiceRepo{services: map[int64]*model.Service{
		3: {ID: 3, Name: "Haircut", Price: decimal.RequireFromString("45.00"), DurationMinutes: 30},
	}}

	appointments := &fakeAppointmentRepo{
		appointments: map[int64]*model.Appointment{},
		nextID:       1,
	}

	enqueuer := &fakeEnqueuer{}
	logger := zerolog.Nop()

	svc := NewAppointmentService(&repository.Repositories{
		Customers:    customers,
		Employees:    employees,
		Services:     services,
		Appointments: appointments,
	}, enqueuer, &logger)
	svc.now = func() time.Time { return bookingBase }

	return svc, appointments, enqueuer
}

func TestAppointmentCreate(t *testing.T) {
	svc, repo, enqueuer := newAppointmentFixture()

	date := bookingBase.Add(2 * time.Hour)
	created, err := svc.Create(context.Background(), CreateAppointmentInput{
		CustomerID:      1,
		EmployeeID:      2,
		ServiceID:       3,
		AppointmentDate: date,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Status != model.AppointmentStatusScheduled {
		t.Errorf("Status = %q, want %q", created.Status, model.AppointmentStatusScheduled)
	}
	if len(repo.appointments) != 1 {
		t.Fatalf("persisted appointments = %d, want 1", len(repo.appointments))
	}

	if len(enqueuer.tasks) != 1 {
		t.Fatalf("enqueued tasks = %d, want 1", len(enqueuer.tasks))
	}
	task := enqueuer.tasks[0]
	if task.Type() != job.TaskAppointmentConfirmation {
		t.Errorf("task type = %q, want %q", task.Type(), job.TaskAppointmentConfirmation)
	}

	var payload job.AppointmentConfirmationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		t.Fatalf("failed to unmarshal task payload: %v", err)
	}
	if payload.To != "joao@example.com" {
		t.Errorf("payload.To = %q, want %q", payload.To, "joao@example.com")
	}
	if payload.ServiceName != "Haircut" {
		t.Errorf("payload.ServiceName = %q, want %q", payload.ServiceName, "Haircut")
	}
	if payload.Price != "R$ 45.00" {
		t.Errorf("payload.Price = %q, want %q", payload.Price, "R$ 45.00")
	}
}

func TestAppointmentCreateReferentialChecks(t *testing.T) {
	tests := []struct {
		name     string
		input    CreateAppointmentInput
		wantCode string
	}{
		{
			name:     "unknown customer",
			input:    CreateAppointmentInput{CustomerID: 99, EmployeeID: 2, ServiceID: 3},
			wantCode: "CUSTOMER_NOT_FOUND",
		},
		{
			name:     "unknown employee",
			input:    CreateAppointmentInput{CustomerID: 1, EmployeeID: 99, ServiceID: 3},
			wantCode: "EMPLOYEE_NOT_FOUND",
		},
		{
			name:     "unknown service",
			input:    CreateAppointmentInput{CustomerID: 1, EmployeeID: 2, ServiceID: 99},
			wantCode: "SERVICE_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newAppointmentFixture()

			tt.input.AppointmentDate = bookingBase.Add(2 * time.Hour)
			_, err := svc.Create(context.Background(), tt.input)
			assertHTTPError(t, err, 422, tt.wantCode)

			if len(repo.appointments) != 0 {
				t.Error("appointment was persisted despite failed reference check")
			}
		})
	}
}

func TestAppointmentCreateBookingWindow(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		wantCode string
	}{
		{
			name:     "in the past",
			date:     bookingBase.Add(-time.Hour),
			wantCode: "APPOINTMENT_DATE_OUT_OF_RANGE",
		},
		{
			name:     "beyond a week ahead",
			date:     bookingBase.AddDate(0, 0, 8),
			wantCode: "APPOINTMENT_DATE_OUT_OF_RANGE",
		},
		{
			name:     "before opening",
			date:     time.Date(2026, 3, 3, 8, 0, 0, 0, time.Local),
			wantCode: "APPOINTMENT_OUTSIDE_BUSINESS_HOURS",
		},
		{
			name:     "at closing",
			date:     time.Date(2026, 3, 3, 18, 0, 0, 0, time.Local),
			wantCode: "APPOINTMENT_OUTSIDE_BUSINESS_HOURS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newAppointmentFixture()

			_, err := svc.Create(context.Background(), CreateAppointmentInput{
				CustomerID:      1,
				EmployeeID:      2,
				ServiceID:       3,
				AppointmentDate: tt.date,
			})
			assertHTTPError(t, err, 400, tt.wantCode)
		})
	}
}

func TestAppointmentCreateEnqueueFailureDoesNotFailBooking(t *testing.T) {
	svc, repo, enqueuer := newAppointmentFixture()
	enqueuer.err = errors.New("redis down")

	_, err := svc.Create(context.Background(), CreateAppointmentInput{
		CustomerID:      1,
		EmployeeID:      2,
		ServiceID:       3,
		AppointmentDate: bookingBase.Add(2 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if len(repo.appointments) != 1 {
		t.Error("appointment was not persisted")
	}
}

func TestAppointmentUpdateDateRevalidated(t *testing.T) {
	svc, repo, _ := newAppointmentFixture()

	created, err := svc.Create(context.Background(), CreateAppointmentInput{
		CustomerID:      1,
		EmployeeID:      2,
		ServiceID:       3,
		AppointmentDate: bookingBase.Add(2 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	badDate := bookingBase.AddDate(0, 0, 30)
	_, err = svc.Update(context.Background(), created.ID, UpdateAppointmentInput{
		AppointmentDate: &badDate,
	})
	assertHTTPError(t, err, 400, "APPOINTMENT_DATE_OUT_OF_RANGE")

	if !repo.appointments[created.ID].AppointmentDate.Equal(bookingBase.Add(2 * time.Hour)) {
		t.Error("appointment date changed despite failed validation")
	}
}

func TestAppointmentUpdateStatus(t *testing.T) {
	svc, _, _ := newAppointmentFixture()

	created, err := svc.Create(context.Background(), CreateAppointmentInput{
		CustomerID:      1,
		EmployeeID:      2,
		ServiceID:       3,
		AppointmentDate: bookingBase.Add(2 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	status := model.AppointmentStatusCancelled
	updated, err := svc.Update(context.Background(), created.ID, UpdateAppointmentInput{
		Status: &status,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Status != model.AppointmentStatusCancelled {
		t.Errorf("Status = %q, want %q", updated.Status, model.AppointmentStatusCancelled)
	}
}

func TestAppointmentUpdateUnknownReference(t *testing.T) {
	svc, _, _ := newAppointmentFixture()

	created, err := svc.Create(context.Background(), CreateAppointmentInput{
		CustomerID:      1,
		EmployeeID:      2,
		ServiceID:       3,
		AppointmentDate: bookingBase.Add(2 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	unknown := int64(99)
	_, err = svc.Update(context.Background(), created.ID, UpdateAppointmentInput{
		EmployeeID: &unknown,
	})
	assertHTTPError(t, err, 422, "EMPLOYEE_NOT_FOUND")
}

func TestAppointmentDelete(t *testing.T) {
	svc, repo, _ := newAppointmentFixture()

	created, err := svc.Create(context.Background(), CreateAppointmentInput{
		CustomerID:      1,
		EmployeeID:      2,
		ServiceID:       3,
		AppointmentDate: bookingBase.Add(2 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if len(repo.appointments) != 0 {
		t.Error("appointment still present after delete")
	}

	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("second Delete error = %v, want wrapped pgx.ErrNoRows", err)
	}
}
