package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/deppfellow/barbershop-api/internal/model"
	"github.com/deppfellow/barbershop-api/internal/server"
	"github.com/deppfellow/barbershop-api/internal/service"
	"github.com/deppfellow/barbershop-api/internal/validation"
)

// CreateServiceRequest is the payload for adding a catalog service.
//
// Price rides on decimal.Decimal, which unmarshals from both JSON numbers
// and strings, so validator tags cannot express the non-negative rule;
// Validate checks it by hand.
type CreateServiceRequest struct {
	Name            string          `json:"name" validate:"required,min=2,max=100"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes" validate:"required,gt=0"`
	Status          string          `json:"status" validate:"omitempty,oneof=available unavailable"`
}

func (r *CreateServiceRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.Price.IsNegative() {
		return validation.CustomValidationErrors{
			{Field: "price", Message: "must not be negative"},
		}
	}
	return nil
}

// GetServiceRequest binds the path parameter of single-service routes.
type GetServiceRequest struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

func (r *GetServiceRequest) Validate() error {
	return validate.Struct(r)
}

// ListServicesRequest binds pagination query parameters.
type ListServicesRequest struct {
	Limit  int `query:"limit" validate:"omitempty,gte=0,max=100"`
	Offset int `query:"offset" validate:"omitempty,gte=0"`
}

func (r *ListServicesRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateServiceRequest is the payload for a partial update.
type UpdateServiceRequest struct {
	ID              int64            `param:"id" validate:"required,gt=0"`
	Name            *string          `json:"name" validate:"omitempty,min=2,max=100"`
	Price           *decimal.Decimal `json:"price"`
	DurationMinutes *int             `json:"duration_minutes" validate:"omitempty,gt=0"`
	Status          *string          `json:"status" validate:"omitempty,oneof=available unavailable"`
}

func (r *UpdateServiceRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.Price != nil && r.Price.IsNegative() {
		return validation.CustomValidationErrors{
			{Field: "price", Message: "must not be negative"},
		}
	}
	return nil
}

// DeleteServiceRequest binds the path parameter of the delete route.
type DeleteServiceRequest struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

func (r *DeleteServiceRequest) Validate() error {
	return validate.Struct(r)
}

// CatalogHandler exposes the service catalog CRUD endpoints.
type CatalogHandler struct {
	Handler
	catalog *service.CatalogService
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(s *server.Server, catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		Handler: NewHandler(s),
		catalog: catalog,
	}
}

func (h *CatalogHandler) Create(c echo.Context, req *CreateServiceRequest) (*model.Service, error) {
	return h.catalog.Create(c.Request().Context(), service.CreateServiceInput{
		Name:            req.Name,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Status:          model.ServiceStatus(req.Status),
	})
}

func (h *CatalogHandler) Get(c echo.Context, req *GetServiceRequest) (*model.Service, error) {
	return h.catalog.GetByID(c.Request().Context(), req.ID)
}

func (h *CatalogHandler) List(c echo.Context, req *ListServicesRequest) ([]model.Service, error) {
	return h.catalog.List(c.Request().Context(), req.Limit, req.Offset)
}

func (h *CatalogHandler) Update(c echo.Context, req *UpdateServiceRequest) (*model.Service, error) {
	var status *model.ServiceStatus
	if req.Status != nil {
		converted := model.ServiceStatus(*req.Status)
		status = &converted
	}

	return h.catalog.Update(c.Request().Context(), req.ID, service.UpdateServiceInput{
		Name:            req.Name,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		Status:          status,
	})
}

func (h *CatalogHandler) Delete(c echo.Context, req *DeleteServiceRequest) error {
	return h.catalog.Delete(c.Request().Context(), req.ID)
}
