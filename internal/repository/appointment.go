package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deppfellow/barbershop-api/internal/model"
)

const appointmentColumns = "id, customer_id, employee_id, service_id, appointment_date, status, created_at, updated_at"

// UpdateAppointmentParams carries the optional fields of a partial
// appointment update. Nil fields are left untouched.
type UpdateAppointmentParams struct {
	CustomerID      *int64
	EmployeeID      *int64
	ServiceID       *int64
	AppointmentDate *time.Time
	Status          *model.AppointmentStatus
}

// ListAppointmentsFilter narrows List results. Zero values mean no filter.
type ListAppointmentsFilter struct {
	CustomerID int64
	EmployeeID int64
}

// AppointmentRepository persists appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) (*model.Appointment, error)
	GetByID(ctx context.Context, id int64) (*model.Appointment, error)
	List(ctx context.Context, filter ListAppointmentsFilter, limit, offset int) ([]model.Appointment, error)
	Update(ctx context.Context, id int64, params UpdateAppointmentParams) (*model.Appointment, error)
	Delete(ctx context.Context, id int64) error

	// Count, CountBefore, and CountSince back the dashboard's
	// total/past/upcoming breakdown.
	Count(ctx context.Context) (int64, error)
	CountBefore(ctx context.Context, t time.Time) (int64, error)
	CountSince(ctx context.Context, t time.Time) (int64, error)
}

type appointmentRepository struct {
	pool *pgxpool.Pool
}

// NewAppointmentRepository constructs the pgx-backed AppointmentRepository.
func NewAppointmentRepository(pool *pgxpool.Pool) AppointmentRepository {
	return &appointmentRepository{pool: pool}
}

func scanAppointment(row pgx.Row) (*model.Appointment, error) {
	var appointment model.Appointment
	err := row.Scan(
		&appointment.ID,
		&appointment.CustomerID,
		&appointment.EmployeeID,
		&appointment.ServiceID,
		&appointment.AppointmentDate,
		&appointment.Status,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) (*model.Appointment, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO appointments (customer_id, employee_id, service_id, appointment_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+appointmentColumns+`
	`, appointment.CustomerID, appointment.EmployeeID, appointment.ServiceID,
		appointment.AppointmentDate, appointment.Status)
	return scanAppointment(row)
}

func (r *appointmentRepository) GetByID(ctx context.Context, id int64) (*model.Appointment, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments
		WHERE id = $1
	`, id)

	appointment, err := scanAppointment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("table:appointments: %w", pgx.ErrNoRows)
		}
		return nil, err
	}
	return appointment, nil
}

func (r *appointmentRepository) List(ctx context.Context, filter ListAppointmentsFilter, limit, offset int) ([]model.Appointment, error) {
	whereClauses := []string{"true"}
	args := []any{}

	if filter.CustomerID != 0 {
		args = append(args, filter.CustomerID)
		whereClauses = append(whereClauses, fmt.Sprintf("customer_id = $%d", len(args)))
	}
	if filter.EmployeeID != 0 {
		args = append(args, filter.EmployeeID)
		whereClauses = append(whereClauses, fmt.Sprintf("employee_id = $%d", len(args)))
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`
		SELECT %s
		FROM appointments
		WHERE %s
		ORDER BY appointment_date
		LIMIT $%d OFFSET $%d
	`, appointmentColumns, strings.Join(whereClauses, " AND "), len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appointments := []model.Appointment{}
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, *appointment)
	}
	return appointments, rows.Err()
}

func (r *appointmentRepository) Update(ctx context.Context, id int64, params UpdateAppointmentParams) (*model.Appointment, error) {
	setClauses := []string{}
	args := []any{id}

	appendSet := func(column string, value any) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if params.CustomerID != nil {
		appendSet("customer_id", *params.CustomerID)
	}
	if params.EmployeeID != nil {
		appendSet("employee_id", *params.EmployeeID)
	}
	if params.ServiceID != nil {
		appendSet("service_id", *params.ServiceID)
	}
	if params.AppointmentDate != nil {
		appendSet("appointment_date", *params.AppointmentDate)
	}
	if params.Status != nil {
		appendSet("status", *params.Status)
	}

	setClauses = append(setClauses, "updated_at = now()")

	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		UPDATE appointments
		SET %s
		WHERE id = $1
		RETURNING %s
	`, strings.Join(setClauses, ", "), appointmentColumns), args...)

	appointment, err := scanAppointment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("table:appointments: %w", pgx.ErrNoRows)
		}
		return nil, err
	}
	return appointment, nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("table:appointments: %w", pgx.ErrNoRows)
	}
	return nil
}

func (r *appointmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM appointments`).Scan(&count)
	return count, err
}

func (r *appointmentRepository) CountBefore(ctx context.Context, t time.Time) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM appointments WHERE appointment_date < $1
	`, t).Scan(&count)
	return count, err
}

func (r *appointmentRepository) CountSince(ctx context.Context, t time.Time) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM appointments WHERE appointment_date >= $1
	`, t).Scan(&count)
	return count, err
}
