package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deppfellow/barbershop-api/internal/model"
)

const employeeColumns = "id, name, email, phone_number, role, status, created_at, updated_at"

// UpdateEmployeeParams carries the optional fields of a partial employee
// update. Nil fields are left untouched.
type UpdateEmployeeParams struct {
	Name        *string
	Email       *string
	PhoneNumber *string
	Role        *string
	Status      *model.EmployeeStatus
}

// EmployeeRepository persists employees.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *model.Employee) (*model.Employee, error)
	GetByID(ctx context.Context, id int64) (*model.Employee, error)
	List(ctx context.Context, limit, offset int) ([]model.Employee, error)
	Update(ctx context.Context, id int64, params UpdateEmployeeParams) (*model.Employee, error)
	Delete(ctx context.Context, id int64) error

	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
	ExistsByPhone(ctx context.Context, phoneNumber string, excludeID int64) (bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// Count backs the dashboard counters.
	Count(ctx context.Context) (int64, error)
}

type employeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository constructs the pgx-backed EmployeeRepository.
func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

func (r *employeeRepository) Create(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	var created model.Employee
	err := r.pool.QueryRow(ctx, `
		INSERT INTO employees (name, email, phone_number, role, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+employeeColumns+`
	`, employee.Name, employee.Email, employee.PhoneNumber, employee.Role, employee.Status).Scan(
		&created.ID,
		&created.Name,
		&created.Email,
		&created.PhoneNumber,
		&created.Role,
		&created.Status,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*model.Employee, error) {
	var employee model.Employee
	err := r.pool.QueryRow(ctx, `
		SELECT `+employeeColumns+`
		FROM employees
		WHERE id = $1
	`, id).Scan(
		&employee.ID,
		&employee.Name,
		&employee.Email,
		&employee.PhoneNumber,
		&employee.Role,
		&employee.Status,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("table:employees: %w", pgx.ErrNoRows)
		}
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) List(ctx context.Context, limit, offset int) ([]model.Employee, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+employeeColumns+`
		FROM employees
		ORDER BY id
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []model.Employee{}
	for rows.Next() {
		var employee model.Employee
		if err := rows.Scan(
			&employee.ID,
			&employee.Name,
			&employee.Email,
			&employee.PhoneNumber,
			&employee.Role,
			&employee.Status,
			&employee.CreatedAt,
			&employee.UpdatedAt,
		); err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}
	return employees, rows.Err()
}

func (r *employeeRepository) Update(ctx context.Context, id int64, params UpdateEmployeeParams) (*model.Employee, error) {
	setClauses := []string{}
	args := []any{id}

	appendSet := func(column string, value any) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if params.Name != nil {
		appendSet("name", *params.Name)
	}
	if params.Email != nil {
		appendSet("email", *params.Email)
	}
	if params.PhoneNumber != nil {
		appendSet("phone_number", *params.PhoneNumber)
	}
	if params.Role != nil {
		appendSet("role", *params.Role)
	}
	if params.Status != nil {
		appendSet("status", *params.Status)
	}

	setClauses = append(setClauses, "updated_at = now()")

	var employee model.Employee
	err := r.pool.QueryRow(ctx, fmt.Sprintf(`
		UPDATE employees
		SET %s
		WHERE id = $1
		RETURNING %s
	`, strings.Join(setClauses, ", "), employeeColumns), args...).Scan(
		&employee.ID,
		&employee.Name,
		&employee.Email,
		&employee.PhoneNumber,
		&employee.Role,
		&employee.Status,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("table:employees: %w", pgx.ErrNoRows)
		}
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("table:employees: %w", pgx.ErrNoRows)
	}
	return nil
}

func (r *employeeRepository) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM employees WHERE email = $1 AND id <> $2
		)
	`, email, excludeID).Scan(&exists)
	return exists, err
}

func (r *employeeRepository) ExistsByPhone(ctx context.Context, phoneNumber string, excludeID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM employees WHERE phone_number = $1 AND id <> $2
		)
	`, phoneNumber, excludeID).Scan(&exists)
	return exists, err
}

func (r *employeeRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM employees WHERE id = $1)
	`, id).Scan(&exists)
	return exists, err
}

func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM employees`).Scan(&count)
	return count, err
}
