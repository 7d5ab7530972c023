package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/deppfellow/barbershop-api/internal/errs"
	"github.com/deppfellow/barbershop-api/internal/model"
	"github.com/deppfellow/barbershop-api/internal/repository"
)

// CreateServiceInput carries the validated payload for adding a catalog
// entry.
type CreateServiceInput struct {
	Name            string
	Price           decimal.Decimal
	DurationMinutes int
	Status          model.ServiceStatus
}

// UpdateServiceInput carries the optional fields of a partial update.
type UpdateServiceInput struct {
	Name            *string
	Price           *decimal.Decimal
	DurationMinutes *int
	Status          *model.ServiceStatus
}

// CatalogService manages the bookable service catalog. Names are unique
// across the catalog.
type CatalogService struct {
	repo repository.ServiceRepository
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(repo repository.ServiceRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// Create adds a service to the catalog.
func (s *CatalogService) Create(ctx context.Context, input CreateServiceInput) (*model.Service, error) {
	taken, err := s.repo.ExistsByName(ctx, input.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewConflictError(
			"A service with this name already exists",
			errs.Ptr("SERVICE_ALREADY_EXISTS"),
			errs.Ptr("name"),
		)
	}

	status := input.Status
	if status == "" {
		status = model.ServiceStatusAvailable
	}

	return s.repo.Create(ctx, &model.Service{
		Name:            input.Name,
		Price:           input.Price,
		DurationMinutes: input.DurationMinutes,
		Status:          status,
	})
}

// GetByID fetches one service.
func (s *CatalogService) GetByID(ctx context.Context, id int64) (*model.Service, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a page of services.
func (s *CatalogService) List(ctx context.Context, limit, offset int) ([]model.Service, error) {
	limit, offset = normalizePage(limit, offset)
	return s.repo.List(ctx, limit, offset)
}

// Update applies a partial update, re-checking name uniqueness when the
// name changes.
func (s *CatalogService) Update(ctx context.Context, id int64, input UpdateServiceInput) (*model.Service, error) {
	if input.Name != nil {
		taken, err := s.repo.ExistsByName(ctx, *input.Name, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errs.NewConflictError(
				"A service with this name already exists",
				errs.Ptr("SERVICE_ALREADY_EXISTS"),
				errs.Ptr("name"),
			)
		}
	}

	return s.repo.Update(ctx, id, repository.UpdateServiceParams{
		Name:            input.Name,
		Price:           input.Price,
		DurationMinutes: input.DurationMinutes,
		Status:          input.Status,
	})
}

// Delete removes a service and, through the schema's cascade, its
// appointments.
func (s *CatalogService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
