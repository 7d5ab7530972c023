package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/barbershop-api/internal/config"
	"github.com/deppfellow/barbershop-api/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// emailClient is a package-level singleton used by job handlers.
// InitHandlers must run before the worker server starts.
var emailClient *email.Client

// InitHandlers initializes dependencies required by job handlers.
func (j *JobService) InitHandlers(config *config.Config, logger *zerolog.Logger) {
	emailClient = email.NewClient(config, logger)
}

// handleAppointmentConfirmationTask processes the confirmation email task.
//
// Returning an error makes Asynq mark the task failed and schedule a retry.
func (j *JobService) handleAppointmentConfirmationTask(ctx context.Context, t *asynq.Task) error {
	var p AppointmentConfirmationPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal appointment confirmation payload: %w", err)
	}

	j.logger.Info().
		Str("type", "appointment_confirmation").
		Str("to", p.To).
		Msg("Processing appointment confirmation task")

	err := emailClient.SendAppointmentConfirmation(
		p.To, p.CustomerName, p.ServiceName, p.EmployeeName, p.AppointmentDate, p.Price,
	)
	if err != nil {
		j.logger.Error().
			Str("type", "appointment_confirmation").
			Str("to", p.To).
			Err(err).
			Msg("Failed to send appointment confirmation email")
		return err
	}

	j.logger.Info().
		Str("type", "appointment_confirmation").
		Str("to", p.To).
		Msg("Successfully sent appointment confirmation email")

	return nil
}
