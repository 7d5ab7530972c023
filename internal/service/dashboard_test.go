package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/deppfellow/barbershop-api/internal/model"
	"github.com/deppfellow/barbershop-api/internal/repository"
)

func TestDashboardStats(t *testing.T) {
	customers := newFakeCustomerRepo()
	customers.customers[1] = &model.Customer{ID: 1, Name: "Joao"}
	customers.customers[2] = &model.Customer{ID: 2, Name: "Maria"}

	employees := &fakeEmployeeRepo{employees: map[int64]*model.Employee{
		1: {ID: 1, Name: "Carlos", Status: model.EmployeeStatusAvailable},
	}}

	services := &fakeServiceRepo{services: map[int64]*model.Service{
		1: {ID: 1, Name: "Haircut", Price: decimal.RequireFromString("45.00"), Status: model.ServiceStatusAvailable},
		2: {ID: 2, Name: "Beard Trim", Price: decimal.RequireFromString("25.00"), Status: model.ServiceStatusAvailable},
		3: {ID: 3, Name: "Perm", Price: decimal.RequireFromString("120.00"), Status: model.ServiceStatusUnavailable},
	}}

	appointments := &fakeAppointmentRepo{
		appointments: map[int64]*model.Appointment{
			1: {ID: 1, AppointmentDate: bookingBase.Add(-24 * time.Hour)},
			2: {ID: 2, AppointmentDate: bookingBase.Add(-time.Hour)},
			3: {ID: 3, AppointmentDate: bookingBase.Add(2 * time.Hour)},
		},
		nextID: 4,
	}

	svc := NewDashboardService(&repository.Repositories{
		Customers:    customers,
		Employees:    employees,
		Services:     services,
		Appointments: appointments,
	})
	svc.now = func() time.Time { return bookingBase }

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}

	if stats.Customers != 2 {
		t.Errorf("Customers = %d, want 2", stats.Customers)
	}
	if stats.Employees != 1 {
		t.Errorf("Employees = %d, want 1", stats.Employees)
	}

	// Only bookable services count; the unavailable one is excluded.
	if stats.Services != 2 {
		t.Errorf("Services = %d, want 2", stats.Services)
	}

	if stats.Appointments.Total != 3 {
		t.Errorf("Appointments.Total = %d, want 3", stats.Appointments.Total)
	}
	if stats.Appointments.Past != 2 {
		t.Errorf("Appointments.Past = %d, want 2", stats.Appointments.Past)
	}
	if stats.Appointments.Upcoming != 1 {
		t.Errorf("Appointments.Upcoming = %d, want 1", stats.Appointments.Upcoming)
	}
	if stats.Appointments.Past+stats.Appointments.Upcoming != stats.Appointments.Total {
		t.Error("past and upcoming do not partition the total")
	}
}
