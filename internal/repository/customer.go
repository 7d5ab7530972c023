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

// customerColumns is the canonical column list scanned into model.Customer.
const customerColumns = "id, name, email, phone_number, created_at, updated_at"

// UpdateCustomerParams carries the optional fields of a partial customer
// update. Nil fields are left untouched.
type UpdateCustomerParams struct {
	Name        *string
	Email       *string
	PhoneNumber *string
}

// CustomerRepository persists customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) (*model.Customer, error)
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
	List(ctx context.Context, limit, offset int) ([]model.Customer, error)
	Update(ctx context.Context, id int64, params UpdateCustomerParams) (*model.Customer, error)
	Delete(ctx context.Context, id int64) error

	// ExistsByEmail and ExistsByPhone back the uniqueness pre-checks.
	// excludeID skips one row, so updates don't collide with themselves;
	// pass 0 on create.
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)
	ExistsByPhone(ctx context.Context, phoneNumber string, excludeID int64) (bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// Count backs the dashboard counters.
	Count(ctx context.Context) (int64, error)
}

type customerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository constructs the pgx-backed CustomerRepository.
func NewCustomerRepository(pool *pgxpool.Pool) CustomerRepository {
	return &customerRepository{pool: pool}
}

func (r *customerRepository) Create(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	var created model.Customer
	err := r.pool.QueryRow(ctx, `
		INSERT INTO customers (name, email, phone_number)
		VALUES ($1, $2, $3)
		RETURNING `+customerColumns+`
	`, customer.Name, customer.Email, customer.PhoneNumber).Scan(
		&created.ID,
		&created.Name,
		&created.Email,
		&created.PhoneNumber,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	var customer model.Customer
	err := r.pool.QueryRow(ctx, `
		SELECT `+customerColumns+`
		FROM customers
		WHERE id = $1
	`, id).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.PhoneNumber,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("table:customers: %w", pgx.ErrNoRows)
		}
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) List(ctx context.Context, limit, offset int) ([]model.Customer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+customerColumns+`
		FROM customers
		ORDER BY id
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []model.Customer{}
	for rows.Next() {
		var customer model.Customer
		if err := rows.Scan(
			&customer.ID,
			&customer.Name,
			&customer.Email,
			&customer.PhoneNumber,
			&customer.CreatedAt,
			&customer.UpdatedAt,
		); err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, rows.Err()
}

func (r *customerRepository) Update(ctx context.Context, id int64, params UpdateCustomerParams) (*model.Customer, error) {
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

	// updated_at always moves, even for no-op payloads.
	setClauses = append(setClauses, "updated_at = now()")

	var customer model.Customer
	err := r.pool.QueryRow(ctx, fmt.Sprintf(`
		UPDATE customers
		SET %s
		WHERE id = $1
		RETURNING %s
	`, strings.Join(setClauses, ", "), customerColumns), args...).Scan(
		&customer.ID,
		&customer.Name,
		&customer.Email,
		&customer.PhoneNumber,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("table:customers: %w", pgx.ErrNoRows)
		}
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("table:customers: %w", pgx.ErrNoRows)
	}
	return nil
}

func (r *customerRepository) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM customers WHERE email = $1 AND id <> $2
		)
	`, email, excludeID).Scan(&exists)
	return exists, err
}

func (r *customerRepository) ExistsByPhone(ctx context.Context, phoneNumber string, excludeID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM customers WHERE phone_number = $1 AND id <> $2
		)
	`, phoneNumber, excludeID).Scan(&exists)
	return exists, err
}

func (r *customerRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1)
	`, id).Scan(&exists)
	return exists, err
}

func (r *customerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM customers`).Scan(&count)
	return count, err
}
