package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/deppfellow/barbershop-api/internal/errs"
	"github.com/deppfellow/barbershop-api/internal/lib/job"
	"github.com/deppfellow/barbershop-api/internal/model"
	"github.com/deppfellow/barbershop-api/internal/repository"
)

// Booking window rules: appointments are taken from now up to
// maxAdvanceDays ahead, and must start inside opening hours.
const (
	maxAdvanceDays = 7
	openingHour    = 9
	closingHour    = 18
)

// CreateAppointmentInput carries the validated payload for booking an
// appointment.
type CreateAppointmentInput struct {
	CustomerID      int64
	EmployeeID      int64
	ServiceID       int64
	AppointmentDate time.Time
}

// UpdateAppointmentInput carries the optional fields of a partial update.
type UpdateAppointmentInput struct {
	CustomerID      *int64
	EmployeeID      *int64
	ServiceID       *int64
	AppointmentDate *time.Time
	Status          *model.AppointmentStatus
}

// AppointmentService implements the booking rules: all referenced entities
// must exist, the date must fall inside the booking window, and a
// confirmation email is queued after a successful booking.
type AppointmentService struct {
	appointments repository.AppointmentRepository
	customers    repository.CustomerRepository
	employees    repository.EmployeeRepository
	services     repository.ServiceRepository
	enqueuer     TaskEnqueuer
	logger       *zerolog.Logger

	// now is swappable so the booking window is testable.
	now func() time.Time
}

// NewAppointmentService constructs an AppointmentService.
func NewAppointmentService(repos *repository.Repositories, enqueuer TaskEnqueuer, logger *zerolog.Logger) *AppointmentService {
	return &AppointmentService{
		appointments: repos.Appointments,
		customers:    repos.Customers,
		employees:    repos.Employees,
		services:     repos.Services,
		enqueuer:     enqueuer,
		logger:       logger,
		now:          time.Now,
	}
}

// referencedNotFound converts a repository not-found error into the 422 the
// appointment endpoints return for dangling references. Payload problems
// are the client's fault, but not a missing route (404) nor a malformed
// body (400).
func referencedNotFound(err error, entity, code, field string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NewUnprocessableError(
			fmt.Sprintf("The referenced %s does not exist", entity),
			errs.Ptr(code),
			errs.Ptr(field),
		)
	}
	return err
}

// validateBookingWindow checks the advance-booking range and opening hours.
func (s *AppointmentService) validateBookingWindow(date time.Time) error {
	now := s.now()
	maxDate := now.AddDate(0, 0, maxAdvanceDays)

	if date.Before(now) || date.After(maxDate) {
		return errs.NewBadRequestError(
			fmt.Sprintf("Appointment date must be between now and %d days in advance", maxAdvanceDays),
			true,
			errs.Ptr("APPOINTMENT_DATE_OUT_OF_RANGE"),
			[]errs.FieldError{{Field: "appointment_date", Error: "is outside the booking window"}},
			nil,
		)
	}

	hour := date.Local().Hour()
	if hour < openingHour || hour >= closingHour {
		return errs.NewBadRequestError(
			fmt.Sprintf("Appointments must start between %02d:00 and %02d:00", openingHour, closingHour),
			true,
			errs.Ptr("APPOINTMENT_OUTSIDE_BUSINESS_HOURS"),
			[]errs.FieldError{{Field: "appointment_date", Error: "is outside business hours"}},
			nil,
		)
	}

	return nil
}

// Create books an appointment.
//
// The referenced customer, employee, and service are loaded up front; the
// loaded rows also feed the confirmation email, so the worker never needs
// database access.
func (s *AppointmentService) Create(ctx context.Context, input CreateAppointmentInput) (*model.Appointment, error) {
	customer, err := s.customers.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, referencedNotFound(err, "customer", "CUSTOMER_NOT_FOUND", "customer_id")
	}

	employee, err := s.employees.GetByID(ctx, input.EmployeeID)
	if err != nil {
		return nil, referencedNotFound(err, "employee", "EMPLOYEE_NOT_FOUND", "employee_id")
	}

	catalogService, err := s.services.GetByID(ctx, input.ServiceID)
	if err != nil {
		return nil, referencedNotFound(err, "service", "SERVICE_NOT_FOUND", "service_id")
	}

	if err := s.validateBookingWindow(input.AppointmentDate); err != nil {
		return nil, err
	}

	appointment, err := s.appointments.Create(ctx, &model.Appointment{
		CustomerID:      input.CustomerID,
		EmployeeID:      input.EmployeeID,
		ServiceID:       input.ServiceID,
		AppointmentDate: input.AppointmentDate,
		Status:          model.AppointmentStatusScheduled,
	})
	if err != nil {
		return nil, err
	}

	s.enqueueConfirmation(appointment, customer, employee, catalogService)

	return appointment, nil
}

// enqueueConfirmation queues the confirmation email. A failed enqueue is
// logged but never fails the booking; the appointment is already committed.
func (s *AppointmentService) enqueueConfirmation(appointment *model.Appointment, customer *model.Customer, employee *model.Employee, catalogService *model.Service) {
	if s.enqueuer == nil {
		return
	}

	task, err := job.NewAppointmentConfirmationTask(job.AppointmentConfirmationPayload{
		To:              customer.Email,
		CustomerName:    customer.Name,
		ServiceName:     catalogService.Name,
		EmployeeName:    employee.Name,
		AppointmentDate: appointment.AppointmentDate.Local().Format("Monday, 02 Jan 2006 at 15:04"),
		Price:           "R$ " + catalogService.Price.StringFixed(2),
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("appointment_id", appointment.ID).
			Msg("failed to build confirmation email task")
		return
	}

	if _, err := s.enqueuer.Enqueue(task); err != nil {
		s.logger.Error().
			Err(err).
			Int64("appointment_id", appointment.ID).
			Msg("failed to enqueue confirmation email")
	}
}

// GetByID fetches one appointment.
func (s *AppointmentService) GetByID(ctx context.Context, id int64) (*model.Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

// List returns a page of appointments, optionally filtered by customer or
// employee.
func (s *AppointmentService) List(ctx context.Context, filter repository.ListAppointmentsFilter, limit, offset int) ([]model.Appointment, error) {
	limit, offset = normalizePage(limit, offset)
	return s.appointments.List(ctx, filter, limit, offset)
}

// Update applies a partial update. Changed references are re-checked the
// same way Create checks them; a changed date re-runs the booking window
// validation.
func (s *AppointmentService) Update(ctx context.Context, id int64, input UpdateAppointmentInput) (*model.Appointment, error) {
	if input.CustomerID != nil {
		if _, err := s.customers.GetByID(ctx, *input.CustomerID); err != nil {
			return nil, referencedNotFound(err, "customer", "CUSTOMER_NOT_FOUND", "customer_id")
		}
	}

	if input.EmployeeID != nil {
		if _, err := s.employees.GetByID(ctx, *input.EmployeeID); err != nil {
			return nil, referencedNotFound(err, "employee", "EMPLOYEE_NOT_FOUND", "employee_id")
		}
	}

	if input.ServiceID != nil {
		if _, err := s.services.GetByID(ctx, *input.ServiceID); err != nil {
			return nil, referencedNotFound(err, "service", "SERVICE_NOT_FOUND", "service_id")
		}
	}

	if input.AppointmentDate != nil {
		if err := s.validateBookingWindow(*input.AppointmentDate); err != nil {
			return nil, err
		}
	}

	return s.appointments.Update(ctx, id, repository.UpdateAppointmentParams{
		CustomerID:      input.CustomerID,
		EmployeeID:      input.EmployeeID,
		ServiceID:       input.ServiceID,
		AppointmentDate: input.AppointmentDate,
		Status:          input.Status,
	})
}

// Delete removes an appointment.
func (s *AppointmentService) Delete(ctx context.Context, id int64) error {
	return s.appointments.Delete(ctx, id)
}
