package repository

import (
	"github.com/deppfellow/barbershop-api/internal/server"
)

// Repositories is a container for all repository instances.
//
// Services receive this container and pick the repositories they need;
// router/bootstrap code builds it exactly once.
type Repositories struct {
	Customers    CustomerRepository
	Employees    EmployeeRepository
	Services     ServiceRepository
	Appointments AppointmentRepository
}

// NewRepositories constructs the repository container using the shared
// database pool from the application container.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Customers:    NewCustomerRepository(s.DB.Pool),
		Employees:    NewEmployeeRepository(s.DB.Pool),
		Services:     NewServiceRepository(s.DB.Pool),
		Appointments: NewAppointmentRepository(s.DB.Pool),
	}
}
