package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deppfellow/barbershop-api/internal/errs"
	"github.com/deppfellow/barbershop-api/internal/model"
	"github.com/deppfellow/barbershop-api/internal/repository"
)

// CreateEmployeeInput carries the validated payload for registering an
// employee. Status is already checked against the allowed values by the
// handler layer.
type CreateEmployeeInput struct {
	Name        string
	Email       string
	PhoneNumber string
	Role        string
	Status      model.EmployeeStatus
}

// UpdateEmployeeInput carries the optional fields of a partial update.
type UpdateEmployeeInput struct {
	Name        *string
	Email       *string
	PhoneNumber *string
	Role        *string
	Status      *model.EmployeeStatus
}

// EmployeeService implements the employee business rules. Employees share
// the customer rules for email/phone uniqueness and phone verification.
type EmployeeService struct {
	repo     repository.EmployeeRepository
	verifier PhoneVerifier
	logger   *zerolog.Logger
}

// NewEmployeeService constructs an EmployeeService.
func NewEmployeeService(repo repository.EmployeeRepository, verifier PhoneVerifier, logger *zerolog.Logger) *EmployeeService {
	return &EmployeeService{
		repo:     repo,
		verifier: verifier,
		logger:   logger,
	}
}

// Create registers a new employee.
func (s *EmployeeService) Create(ctx context.Context, input CreateEmployeeInput) (*model.Employee, error) {
	taken, err := s.repo.ExistsByEmail(ctx, input.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewConflictError(
			"An employee with this email already exists",
			errs.Ptr("EMPLOYEE_ALREADY_EXISTS"),
			errs.Ptr("email"),
		)
	}

	taken, err = s.repo.ExistsByPhone(ctx, input.PhoneNumber, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewConflictError(
			"An employee with this phone number already exists",
			errs.Ptr("EMPLOYEE_ALREADY_EXISTS"),
			errs.Ptr("phone_number"),
		)
	}

	if err := checkPhoneNumber(ctx, s.verifier, s.logger, input.PhoneNumber); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = model.EmployeeStatusAvailable
	}

	return s.repo.Create(ctx, &model.Employee{
		Name:        input.Name,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Role:        input.Role,
		Status:      status,
	})
}

// GetByID fetches one employee.
func (s *EmployeeService) GetByID(ctx context.Context, id int64) (*model.Employee, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a page of employees.
func (s *EmployeeService) List(ctx context.Context, limit, offset int) ([]model.Employee, error) {
	limit, offset = normalizePage(limit, offset)
	return s.repo.List(ctx, limit, offset)
}

// Update applies a partial update with the same uniqueness and phone
// verification rules as Create, scoped to the fields that change.
func (s *EmployeeService) Update(ctx context.Context, id int64, input UpdateEmployeeInput) (*model.Employee, error) {
	if input.Email != nil {
		taken, err := s.repo.ExistsByEmail(ctx, *input.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errs.NewConflictError(
				"An employee with this email already exists",
				errs.Ptr("EMPLOYEE_ALREADY_EXISTS"),
				errs.Ptr("email"),
			)
		}
	}

	if input.PhoneNumber != nil {
		taken, err := s.repo.ExistsByPhone(ctx, *input.PhoneNumber, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errs.NewConflictError(
				"An employee with this phone number already exists",
				errs.Ptr("EMPLOYEE_ALREADY_EXISTS"),
				errs.Ptr("phone_number"),
			)
		}

		if err := checkPhoneNumber(ctx, s.verifier, s.logger, *input.PhoneNumber); err != nil {
			return nil, err
		}
	}

	return s.repo.Update(ctx, id, repository.UpdateEmployeeParams{
		Name:        input.Name,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Role:        input.Role,
		Status:      input.Status,
	})
}

// Delete removes an employee and, through the schema's cascade, their
// appointments.
func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
