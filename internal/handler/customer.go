package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/barbershop-api/internal/model"
	"github.com/deppfellow/barbershop-api/internal/server"
	"github.com/deppfellow/barbershop-api/internal/service"
)

// CreateCustomerRequest is the payload for registering a customer.
type CreateCustomerRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email,max=120"`
	PhoneNumber string `json:"phone_number" validate:"required,min=8,max=20"`
}

func (r *CreateCustomerRequest) Validate() error {
	return validate.Struct(r)
}

// GetCustomerRequest binds the path parameter of single-customer routes.
type GetCustomerRequest struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

func (r *GetCustomerRequest) Validate() error {
	return validate.Struct(r)
}

// ListCustomersRequest binds pagination query parameters.
type ListCustomersRequest struct {
	Limit  int `query:"limit" validate:"omitempty,gte=0,max=100"`
	Offset int `query:"offset" validate:"omitempty,gte=0"`
}

func (r *ListCustomersRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateCustomerRequest is the payload for a partial update. Absent fields
// stay nil and are left untouched.
type UpdateCustomerRequest struct {
	ID          int64   `param:"id" validate:"required,gt=0"`
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Email       *string `json:"email" validate:"omitempty,email,max=120"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,min=8,max=20"`
}

func (r *UpdateCustomerRequest) Validate() error {
	return validate.Struct(r)
}

// DeleteCustomerRequest binds the path parameter of the delete route.
type DeleteCustomerRequest struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

func (r *DeleteCustomerRequest) Validate() error {
	return validate.Struct(r)
}

// CustomerHandler exposes the customer CRUD endpoints.
type CustomerHandler struct {
	Handler
	customers *service.CustomerService
}

// NewCustomerHandler constructs a CustomerHandler.
func NewCustomerHandler(s *server.Server, customers *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		Handler:   NewHandler(s),
		customers: customers,
	}
}

func (h *CustomerHandler) Create(c echo.Context, req *CreateCustomerRequest) (*model.Customer, error) {
	return h.customers.Create(c.Request().Context(), service.CreateCustomerInput{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
}

func (h *CustomerHandler) Get(c echo.Context, req *GetCustomerRequest) (*model.Customer, error) {
	return h.customers.GetByID(c.Request().Context(), req.ID)
}

func (h *CustomerHandler) List(c echo.Context, req *ListCustomersRequest) ([]model.Customer, error) {
	return h.customers.List(c.Request().Context(), req.Limit, req.Offset)
}

func (h *CustomerHandler) Update(c echo.Context, req *UpdateCustomerRequest) (*model.Customer, error) {
	return h.customers.Update(c.Request().Context(), req.ID, service.UpdateCustomerInput{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
}

func (h *CustomerHandler) Delete(c echo.Context, req *DeleteCustomerRequest) error {
	return h.customers.Delete(c.Request().Context(), req.ID)
}
