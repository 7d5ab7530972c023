// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/barbershop-api/internal/handler"
	"github.com/deppfellow/barbershop-api/internal/middleware"
	"github.com/deppfellow/barbershop-api/internal/server"
)

// New builds the Echo instance with the full middleware stack and all
// routes registered.
//
// Middleware order matters:
//  1. Recover, so panics anywhere below become 500s
//  2. RequestID, so every later layer can correlate
//  3. New Relic transaction start (before anything that reads the txn)
//  4. ContextEnhancer, which builds the request-scoped logger
//  5. Tracing attributes, request logging, CORS, secure headers
func New(s *server.Server, h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	r := echo.New()
	r.HideBanner = true
	r.HidePort = true

	r.HTTPErrorHandler = m.Global.GlobalErrorHandler

	r.Use(m.Global.Recover())
	r.Use(middleware.RequestID())
	r.Use(m.Tracing.NewRelicMiddleware())
	r.Use(m.ContextEnhancer.EnhanceContext())
	r.Use(m.Tracing.EnhanceTracing())
	r.Use(m.Global.RequestLogger())
	r.Use(m.Global.CORS())
	r.Use(m.Global.Secure())

	registerSystemRoutes(r, h)
	registerCustomerRoutes(r, h)
	registerEmployeeRoutes(r, h)
	registerServiceRoutes(r, h)
	registerAppointmentRoutes(r, h)
	registerDashboardRoutes(r, h)

	return r
}
