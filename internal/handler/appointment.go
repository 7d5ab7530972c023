package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/barbershop-api/internal/model"
	"github.com/deppfellow/barbershop-api/internal/repository"
	"github.com/deppfellow/barbershop-api/internal/server"
	"github.com/deppfellow/barbershop-api/internal/service"
)

// CreateAppointmentRequest is the payload for booking an appointment.
// AppointmentDate is RFC 3339 in the request body.
type CreateAppointmentRequest struct {
	CustomerID      int64     `json:"customer_id" validate:"required,gt=0"`
	EmployeeID      int64     `json:"employee_id" validate:"required,gt=0"`
	ServiceID       int64     `json:"service_id" validate:"required,gt=0"`
	AppointmentDate time.Time `json:"appointment_date" validate:"required"`
}

func (r *CreateAppointmentRequest) Validate() error {
	return validate.Struct(r)
}

// GetAppointmentRequest binds the path parameter of single-appointment routes.
type GetAppointmentRequest struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

func (r *GetAppointmentRequest) Validate() error {
	return validate.Struct(r)
}

// ListAppointmentsRequest binds pagination and the optional customer or
// employee filters.
type ListAppointmentsRequest struct {
	CustomerID int64 `query:"customer_id" validate:"omitempty,gt=0"`
	EmployeeID int64 `query:"employee_id" validate:"omitempty,gt=0"`
	Limit      int   `query:"limit" validate:"omitempty,gte=0,max=100"`
	Offset     int   `query:"offset" validate:"omitempty,gte=0"`
}

func (r *ListAppointmentsRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateAppointmentRequest is the payload for a partial update.
type UpdateAppointmentRequest struct {
	ID              int64      `param:"id" validate:"required,gt=0"`
	CustomerID      *int64     `json:"customer_id" validate:"omitempty,gt=0"`
	EmployeeID      *int64     `json:"employee_id" validate:"omitempty,gt=0"`
	ServiceID       *int64     `json:"service_id" validate:"omitempty,gt=0"`
	AppointmentDate *time.Time `json:"appointment_date"`
	Status          *string    `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
}

func (r *UpdateAppointmentRequest) Validate() error {
	return validate.Struct(r)
}

// DeleteAppointmentRequest binds the path parameter of the delete route.
type DeleteAppointmentRequest struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

func (r *DeleteAppointmentRequest) Validate() error {
	return validate.Struct(r)
}

// AppointmentHandler exposes the appointment CRUD endpoints.
type AppointmentHandler struct {
	Handler
	appointments *service.AppointmentService
}

// NewAppointmentHandler constructs an AppointmentHandler.
func NewAppointmentHandler(s *server.Server, appointments *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		Handler:      NewHandler(s),
		appointments: appointments,
	}
}

func (h *AppointmentHandler) Create(c echo.Context, req *CreateAppointmentRequest) (*model.Appointment, error) {
	return h.appointments.Create(c.Request().Context(), service.CreateAppointmentInput{
		CustomerID:      req.CustomerID,
		EmployeeID:      req.EmployeeID,
		ServiceID:       req.ServiceID,
		AppointmentDate: req.AppointmentDate,
	})
}

func (h *AppointmentHandler) Get(c echo.Context, req *GetAppointmentRequest) (*model.Appointment, error) {
	return h.appointments.GetByID(c.Request().Context(), req.ID)
}

func (h *AppointmentHandler) List(c echo.Context, req *ListAppointmentsRequest) ([]model.Appointment, error) {
	filter := repository.ListAppointmentsFilter{
		CustomerID: req.CustomerID,
		EmployeeID: req.EmployeeID,
	}
	return h.appointments.List(c.Request().Context(), filter, req.Limit, req.Offset)
}

func (h *AppointmentHandler) Update(c echo.Context, req *UpdateAppointmentRequest) (*model.Appointment, error) {
	var status *model.AppointmentStatus
	if req.Status != nil {
		converted := model.AppointmentStatus(*req.Status)
		status = &converted
	}

	return h.appointments.Update(c.Request().Context(), req.ID, service.UpdateAppointmentInput{
		CustomerID:      req.CustomerID,
		EmployeeID:      req.EmployeeID,
		ServiceID:       req.ServiceID,
		AppointmentDate: req.AppointmentDate,
		Status:          status,
	})
}

func (h *AppointmentHandler) Delete(c echo.Context, req *DeleteAppointmentRequest) error {
	return h.appointments.Delete(c.Request().Context(), req.ID)
}
