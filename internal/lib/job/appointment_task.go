package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskAppointmentConfirmation is the job type name stored in Redis.
	// Asynq uses task type strings to route to handlers.
	TaskAppointmentConfirmation = "email:appointment_confirmation"
)

// AppointmentConfirmationPayload is the JSON payload for the confirmation
// email task. All display strings are pre-formatted by the enqueueing
// service so the worker does not need database access.
type AppointmentConfirmationPayload struct {
	To              string `json:"to"`
	CustomerName    string `json:"customer_name"`
	ServiceName     string `json:"service_name"`
	EmployeeName    string `json:"employee_name"`
	AppointmentDate string `json:"appointment_date"`
	Price           string `json:"price"`
}

// NewAppointmentConfirmationTask constructs an Asynq task for sending an
// appointment confirmation email.
//
// Options:
//   - MaxRetry(3): retry up to 3 times on failure
//   - Queue("default"): confirmations are not time-critical
//   - Timeout(30s): kill the task if the handler runs longer
func NewAppointmentConfirmationTask(p AppointmentConfirmationPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskAppointmentConfirmation,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
