package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deppfellow/barbershop-api/internal/errs"
	"github.com/deppfellow/barbershop-api/internal/lib/phone"
	"github.com/deppfellow/barbershop-api/internal/model"
	"github.com/deppfellow/barbershop-api/internal/repository"
)

// CreateCustomerInput carries the validated payload for registering a
// customer.
type CreateCustomerInput struct {
	Name        string
	Email       string
	PhoneNumber string
}

// UpdateCustomerInput carries the optional fields of a partial update.
type UpdateCustomerInput struct {
	Name        *string
	Email       *string
	PhoneNumber *string
}

// CustomerService implements the customer business rules: uniqueness of
// email and phone number, and phone verification against the external API.
type CustomerService struct {
	repo     repository.CustomerRepository
	verifier PhoneVerifier
	logger   *zerolog.Logger
}

// NewCustomerService constructs a CustomerService.
func NewCustomerService(repo repository.CustomerRepository, verifier PhoneVerifier, logger *zerolog.Logger) *CustomerService {
	return &CustomerService{
		repo:     repo,
		verifier: verifier,
		logger:   logger,
	}
}

// checkPhoneNumber applies the verification policy shared by customers and
// employees:
//   - confirmed invalid numbers are rejected with 422 PHONE_INVALID
//   - unverifiable numbers (validator down, credentials rejected) are
//     accepted with a warning, so a third-party outage never blocks writes
func checkPhoneNumber(ctx context.Context, verifier PhoneVerifier, logger *zerolog.Logger, phoneNumber string) error {
	result, err := verifier.Verify(ctx, phoneNumber)
	if err != nil {
		return err
	}

	switch result.Outcome {
	case phone.OutcomeInvalid:
		return errs.NewUnprocessableError(
			"The phone number could not be verified as a valid number",
			errs.Ptr("PHONE_INVALID"),
			errs.Ptr("phone_number"),
		)
	case phone.OutcomeUnreachable:
		logger.Warn().
			Msg("phone validation unavailable, accepting number unverified")
	default:
		logger.Debug().
			Str("carrier", result.Carrier).
			Str("line_type", result.LineType).
			Msg("phone number verified")
	}

	return nil
}

// Create registers a new customer.
func (s *CustomerService) Create(ctx context.Context, input CreateCustomerInput) (*model.Customer, error) {
	taken, err := s.repo.ExistsByEmail(ctx, input.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewConflictError(
			"A customer with this email already exists",
			errs.Ptr("CUSTOMER_ALREADY_EXISTS"),
			errs.Ptr("email"),
		)
	}

	taken, err = s.repo.ExistsByPhone(ctx, input.PhoneNumber, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewConflictError(
			"A customer with this phone number already exists",
			errs.Ptr("CUSTOMER_ALREADY_EXISTS"),
			errs.Ptr("phone_number"),
		)
	}

	if err := checkPhoneNumber(ctx, s.verifier, s.logger, input.PhoneNumber); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &model.Customer{
		Name:        input.Name,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
	})
}

// GetByID fetches one customer.
func (s *CustomerService) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a page of customers.
func (s *CustomerService) List(ctx context.Context, limit, offset int) ([]model.Customer, error) {
	limit, offset = normalizePage(limit, offset)
	return s.repo.List(ctx, limit, offset)
}

// Update applies a partial update. Uniqueness is re-checked for fields that
// change, excluding the customer's own row; a changed phone number is
// re-verified.
func (s *CustomerService) Update(ctx context.Context, id int64, input UpdateCustomerInput) (*model.Customer, error) {
	if input.Email != nil {
		taken, err := s.repo.ExistsByEmail(ctx, *input.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errs.NewConflictError(
				"A customer with this email already exists",
				errs.Ptr("CUSTOMER_ALREADY_EXISTS"),
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
				"A customer with this phone number already exists",
				errs.Ptr("CUSTOMER_ALREADY_EXISTS"),
				errs.Ptr("phone_number"),
			)
		}

		if err := checkPhoneNumber(ctx, s.verifier, s.logger, *input.PhoneNumber); err != nil {
			return nil, err
		}
	}

	return s.repo.Update(ctx, id, repository.UpdateCustomerParams{
		Name:        input.Name,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
	})
}

// Delete removes a customer and, through the schema's cascade, their
// appointments.
func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// normalizePage applies list pagination defaults: limit 50 when the client
// sends nothing, capped at 100.
func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
