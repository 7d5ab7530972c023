package service

import (
	"context"
	"time"

	"github.com/deppfellow/barbershop-api/internal/model"
	"github.com/deppfellow/barbershop-api/internal/repository"
)

// DashboardService aggregates the counters behind the operations dashboard.
type DashboardService struct {
	customers    repository.CustomerRepository
	employees    repository.EmployeeRepository
	services     repository.ServiceRepository
	appointments repository.AppointmentRepository

	now func() time.Time
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(repos *repository.Repositories) *DashboardService {
	return &DashboardService{
		customers:    repos.Customers,
		employees:    repos.Employees,
		services:     repos.Services,
		appointments: repos.Appointments,
		now:          time.Now,
	}
}

// Stats collects the dashboard counters: customer and employee totals,
// bookable services, and appointments split into past and upcoming around
// the current time.
func (s *DashboardService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	customers, err := s.customers.Count(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := s.employees.Count(ctx)
	if err != nil {
		return nil, err
	}

	services, err := s.services.CountByStatus(ctx, model.ServiceStatusAvailable)
	if err != nil {
		return nil, err
	}

	now := s.now()

	total, err := s.appointments.Count(ctx)
	if err != nil {
		return nil, err
	}
	past, err := s.appointments.CountBefore(ctx, now)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.appointments.CountSince(ctx, now)
	if err != nil {
		return nil, err
	}

	return &model.DashboardStats{
		Customers: customers,
		Employees: employees,
		Services:  services,
		Appointments: model.AppointmentCounts{
			Total:    total,
			Past:     past,
			Upcoming: upcoming,
		},
	}, nil
}
