package service

import (
	"context"

	"github.com/hibiken/asynq"

	"github.com/deppfellow/barbershop-api/internal/lib/job"
	"github.com/deppfellow/barbershop-api/internal/lib/phone"
	"github.com/deppfellow/barbershop-api/internal/repository"
	"github.com/deppfellow/barbershop-api/internal/server"
)

// PhoneVerifier is the narrow interface services use to verify phone
// numbers. Satisfied by *phone.Client; tests swap in a stub.
type PhoneVerifier interface {
	Verify(ctx context.Context, phoneNumber string) (phone.Result, error)
}

// TaskEnqueuer enqueues background tasks. Satisfied by *asynq.Client.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Services is a container for all business logic services.
type Services struct {
	Customer    *CustomerService
	Employee    *EmployeeService
	Catalog     *CatalogService
	Appointment *AppointmentService
	Dashboard   *DashboardService
	Job         *job.JobService
}

// NewService wires the business services with their repositories and the
// shared phone verification client.
func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	phoneClient := phone.NewClient(s.Config, s.Logger)

	return &Services{
		Customer:    NewCustomerService(repos.Customers, phoneClient, s.Logger),
		Employee:    NewEmployeeService(repos.Employees, phoneClient, s.Logger),
		Catalog:     NewCatalogService(repos.Services),
		Appointment: NewAppointmentService(repos, s.Job.Client, s.Logger),
		Dashboard:   NewDashboardService(repos),
		Job:         s.Job,
	}, nil
}
