package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/barbershop-api/internal/handler"
)

// Each resource lists on the plural path and takes writes on the singular
// one ("GET /customers", "POST /customer"). Clients depend on this layout.

// registerCustomerRoutes maps the customer CRUD surface.
func registerCustomerRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/customers", handler.Handle(h.Customer.Handler, h.Customer.List, http.StatusOK, &handler.ListCustomersRequest{}))

	r.POST("/customer", handler.Handle(h.Customer.Handler, h.Customer.Create, http.StatusCreated, &handler.CreateCustomerRequest{}))
	r.GET("/customer/:id", handler.Handle(h.Customer.Handler, h.Customer.Get, http.StatusOK, &handler.GetCustomerRequest{}))
	r.PATCH("/customer/:id", handler.Handle(h.Customer.Handler, h.Customer.Update, http.StatusOK, &handler.UpdateCustomerRequest{}))
	r.DELETE("/customer/:id", handler.HandleNoContent(h.Customer.Handler, h.Customer.Delete, http.StatusNoContent, &handler.DeleteCustomerRequest{}))
}

// registerEmployeeRoutes maps the employee CRUD surface.
func registerEmployeeRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/employees", handler.Handle(h.Employee.Handler, h.Employee.List, http.StatusOK, &handler.ListEmployeesRequest{}))

	r.POST("/employee", handler.Handle(h.Employee.Handler, h.Employee.Create, http.StatusCreated, &handler.CreateEmployeeRequest{}))
	r.GET("/employee/:id", handler.Handle(h.Employee.Handler, h.Employee.Get, http.StatusOK, &handler.GetEmployeeRequest{}))
	r.PATCH("/employee/:id", handler.Handle(h.Employee.Handler, h.Employee.Update, http.StatusOK, &handler.UpdateEmployeeRequest{}))
	r.DELETE("/employee/:id", handler.HandleNoContent(h.Employee.Handler, h.Employee.Delete, http.StatusNoContent, &handler.DeleteEmployeeRequest{}))
}

// registerServiceRoutes maps the catalog CRUD surface.
func registerServiceRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/services", handler.Handle(h.Catalog.Handler, h.Catalog.List, http.StatusOK, &handler.ListServicesRequest{}))

	r.POST("/service", handler.Handle(h.Catalog.Handler, h.Catalog.Create, http.StatusCreated, &handler.CreateServiceRequest{}))
	r.GET("/service/:id", handler.Handle(h.Catalog.Handler, h.Catalog.Get, http.StatusOK, &handler.GetServiceRequest{}))
	r.PATCH("/service/:id", handler.Handle(h.Catalog.Handler, h.Catalog.Update, http.StatusOK, &handler.UpdateServiceRequest{}))
	r.DELETE("/service/:id", handler.HandleNoContent(h.Catalog.Handler, h.Catalog.Delete, http.StatusNoContent, &handler.DeleteServiceRequest{}))
}

// registerDashboardRoutes maps the consolidated counters endpoint.
func registerDashboardRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/dashboard/stats", handler.Handle(h.Dashboard.Handler, h.Dashboard.Stats, http.StatusOK, &handler.GetDashboardStatsRequest{}))
}

// registerAppointmentRoutes maps the appointment CRUD surface.
func registerAppointmentRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/appointments", handler.Handle(h.Appointment.Handler, h.Appointment.List, http.StatusOK, &handler.ListAppointmentsRequest{}))

	r.POST("/appointment", handler.Handle(h.Appointment.Handler, h.Appointment.Create, http.StatusCreated, &handler.CreateAppointmentRequest{}))
	r.GET("/appointment/:id", handler.Handle(h.Appointment.Handler, h.Appointment.Get, http.StatusOK, &handler.GetAppointmentRequest{}))
	r.PATCH("/appointment/:id", handler.Handle(h.Appointment.Handler, h.Appointment.Update, http.StatusOK, &handler.UpdateAppointmentRequest{}))
	r.DELETE("/appointment/:id", handler.HandleNoContent(h.Appointment.Handler, h.Appointment.Delete, http.StatusNoContent, &handler.DeleteAppointmentRequest{}))
}
