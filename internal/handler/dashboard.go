package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/barbershop-api/internal/model"
	"github.com/deppfellow/barbershop-api/internal/server"
	"github.com/deppfellow/barbershop-api/internal/service"
)

// GetDashboardStatsRequest is empty; the stats route takes no parameters.
// It still goes through the shared pipeline so the endpoint gets the same
// logging and tracing as the rest of the API.
type GetDashboardStatsRequest struct{}

func (r *GetDashboardStatsRequest) Validate() error {
	return nil
}

// DashboardHandler exposes the consolidated counters endpoint.
type DashboardHandler struct {
	Handler
	dashboard *service.DashboardService
}

// NewDashboardHandler constructs a DashboardHandler.
func NewDashboardHandler(s *server.Server, dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		Handler:   NewHandler(s),
		dashboard: dashboard,
	}
}

func (h *DashboardHandler) Stats(c echo.Context, req *GetDashboardStatsRequest) (*model.DashboardStats, error) {
	return h.dashboard.Stats(c.Request().Context())
}
