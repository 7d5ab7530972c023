package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/barbershop-api/internal/model"
	"github.com/deppfellow/barbershop-api/internal/server"
	"github.com/deppfellow/barbershop-api/internal/service"
)

// CreateEmployeeRequest is the payload for registering an employee.
// Status defaults to "available" when omitted.
type CreateEmployeeRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email,max=120"`
	PhoneNumber string `json:"phone_number" validate:"required,min=8,max=20"`
	Role        string `json:"role" validate:"required,min=2,max=50"`
	Status      string `json:"status" validate:"omitempty,oneof=available vacation sick_leave unavailable"`
}

func (r *CreateEmployeeRequest) Validate() error {
	return validate.Struct(r)
}

// GetEmployeeRequest binds the path parameter of single-employee routes.
type GetEmployeeRequest struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

func (r *GetEmployeeRequest) Validate() error {
	return validate.Struct(r)
}

// ListEmployeesRequest binds pagination query parameters.
type ListEmployeesRequest struct {
	Limit  int `query:"limit" validate:"omitempty,gte=0,max=100"`
	Offset int `query:"offset" validate:"omitempty,gte=0"`
}

func (r *ListEmployeesRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateEmployeeRequest is the payload for a partial update.
type UpdateEmployeeRequest struct {
	ID          int64   `param:"id" validate:"required,gt=0"`
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Email       *string `json:"email" validate:"omitempty,email,max=120"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,min=8,max=20"`
	Role        *string `json:"role" validate:"omitempty,min=2,max=50"`
	Status      *string `json:"status" validate:"omitempty,oneof=available vacation sick_leave unavailable"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	return validate.Struct(r)
}

// DeleteEmployeeRequest binds the path parameter of the delete route.
type DeleteEmployeeRequest struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

func (r *DeleteEmployeeRequest) Validate() error {
	return validate.Struct(r)
}

// EmployeeHandler exposes the employee CRUD endpoints.
type EmployeeHandler struct {
	Handler
	employees *service.EmployeeService
}

// NewEmployeeHandler constructs an EmployeeHandler.
func NewEmployeeHandler(s *server.Server, employees *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		Handler:   NewHandler(s),
		employees: employees,
	}
}

func (h *EmployeeHandler) Create(c echo.Context, req *CreateEmployeeRequest) (*model.Employee, error) {
	return h.employees.Create(c.Request().Context(), service.CreateEmployeeInput{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Role:        req.Role,
		Status:      model.EmployeeStatus(req.Status),
	})
}

func (h *EmployeeHandler) Get(c echo.Context, req *GetEmployeeRequest) (*model.Employee, error) {
	return h.employees.GetByID(c.Request().Context(), req.ID)
}

func (h *EmployeeHandler) List(c echo.Context, req *ListEmployeesRequest) ([]model.Employee, error) {
	return h.employees.List(c.Request().Context(), req.Limit, req.Offset)
}

func (h *EmployeeHandler) Update(c echo.Context, req *UpdateEmployeeRequest) (*model.Employee, error) {
	var status *model.EmployeeStatus
	if req.Status != nil {
		converted := model.EmployeeStatus(*req.Status)
		status = &converted
	}

	return h.employees.Update(c.Request().Context(), req.ID, service.UpdateEmployeeInput{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Role:        req.Role,
		Status:      status,
	})
}

func (h *EmployeeHandler) Delete(c echo.Context, req *DeleteEmployeeRequest) error {
	return h.employees.Delete(c.Request().Context(), req.ID)
}
