package handler

import (
	"github.com/deppfellow/barbershop-api/internal/server"
	"github.com/deppfellow/barbershop-api/internal/service"
)

// Handlers is a container that groups all HTTP handlers. Router setup
// receives this one object instead of many.
type Handlers struct {
	Health      *HealthHandler
	OpenAPI     *OpenAPIHandler
	Customer    *CustomerHandler
	Employee    *EmployeeHandler
	Catalog     *CatalogHandler
	Appointment *AppointmentHandler
	Dashboard   *DashboardHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:      NewHealthHandler(s),
		OpenAPI:     NewOpenAPIHandler(s),
		Customer:    NewCustomerHandler(s, services.Customer),
		Employee:    NewEmployeeHandler(s, services.Employee),
		Catalog:     NewCatalogHandler(s, services.Catalog),
		Appointment: NewAppointmentHandler(s, services.Appointment),
		Dashboard:   NewDashboardHandler(s, services.Dashboard),
	}
}
