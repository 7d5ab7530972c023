package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/deppfellow/barbershop-api/internal/model"
)

const serviceColumns = "id, name, price, duration_minutes, status, created_at, updated_at"

// UpdateServiceParams carries the optional fields of a partial service
// update. Nil fields are left untouched.
type UpdateServiceParams struct {
	Name            *string
	Price           *decimal.Decimal
	DurationMinutes *int
	Status          *model.ServiceStatus
}

// ServiceRepository persists the service catalog.
type ServiceRepository interface {
	Create(ctx context.Context, service *model.Service) (*model.Service, error)
	GetByID(ctx context.Context, id int64) (*model.Service, error)
	List(ctx context.Context, limit, offset int) ([]model.Service, error)
	Update(ctx context.Context, id int64, params UpdateServiceParams) (*model.Service, error)
	Delete(ctx context.Context, id int64) error

	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// CountByStatus backs the dashboard counters; the dashboard only counts
	// services customers can currently book.
	CountByStatus(ctx context.Context, status model.ServiceStatus) (int64, error)
}

type serviceRepository struct {
	pool *pgxpool.Pool
}

// NewServiceRepository constructs the pgx-backed ServiceRepository.
func NewServiceRepository(pool *pgxpool.Pool) ServiceRepository {
	return &serviceRepository{pool: pool}
}

// scanService scans one row in serviceColumns order. Price travels as text
// so decimal.Decimal keeps exact NUMERIC values.
func scanService(row pgx.Row) (*model.Service, error) {
	var service model.Service
	var price string
	err := row.Scan(
		&service.ID,
		&service.Name,
		&price,
		&service.DurationMinutes,
		&service.Status,
		&service.CreatedAt,
		&service.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	service.Price, err = decimal.NewFromString(price)
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) Create(ctx context.Context, service *model.Service) (*model.Service, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO services (name, price, duration_minutes, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, price::text, duration_minutes, status, created_at, updated_at
	`, service.Name, service.Price.String(), service.DurationMinutes, service.Status)
	return scanService(row)
}

func (r *serviceRepository) GetByID(ctx context.Context, id int64) (*model.Service, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, price::text, duration_minutes, status, created_at, updated_at
		FROM services
		WHERE id = $1
	`, id)

	service, err := scanService(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("table:services: %w", pgx.ErrNoRows)
		}
		return nil, err
	}
	return service, nil
}

func (r *serviceRepository) List(ctx context.Context, limit, offset int) ([]model.Service, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, price::text, duration_minutes, status, created_at, updated_at
		FROM services
		ORDER BY id
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := []model.Service{}
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, *service)
	}
	return services, rows.Err()
}

func (r *serviceRepository) Update(ctx context.Context, id int64, params UpdateServiceParams) (*model.Service, error) {
	setClauses := []string{}
	args := []any{id}

	appendSet := func(column string, value any) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if params.Name != nil {
		appendSet("name", *params.Name)
	}
	if params.Price != nil {
		appendSet("price", params.Price.String())
	}
	if params.DurationMinutes != nil {
		appendSet("duration_minutes", *params.DurationMinutes)
	}
	if params.Status != nil {
		appendSet("status", *params.Status)
	}

	setClauses = append(setClauses, "updated_at = now()")

	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		UPDATE services
		SET %s
		WHERE id = $1
		RETURNING id, name, price::text, duration_minutes, status, created_at, updated_at
	`, strings.Join(setClauses, ", ")), args...)

	service, err := scanService(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("table:services: %w", pgx.ErrNoRows)
		}
		return nil, err
	}
	return service, nil
}

func (r *serviceRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("table:services: %w", pgx.ErrNoRows)
	}
	return nil
}

func (r *serviceRepository) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM services WHERE name = $1 AND id <> $2
		)
	`, name, excludeID).Scan(&exists)
	return exists, err
}

func (r *serviceRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM services WHERE id = $1)
	`, id).Scan(&exists)
	return exists, err
}

func (r *serviceRepository) CountByStatus(ctx context.Context, status model.ServiceStatus) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM services WHERE status = $1`, status).Scan(&count)
	return count, err
}
