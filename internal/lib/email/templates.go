package email

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplateAppointmentConfirmation corresponds to
	// templates/emails/appointment_confirmation.html
	TemplateAppointmentConfirmation Template = "appointment_confirmation"
)
