package model

import "time"

// AppointmentStatus enumerates an appointment's lifecycle state.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// AppointmentStatuses lists the accepted status values.
var AppointmentStatuses = []AppointmentStatus{
	AppointmentStatusScheduled,
	AppointmentStatusCompleted,
	AppointmentStatusCancelled,
}

// Appointment links a customer, an employee, and a service at a point in
// time. All three references must exist when the appointment is created.
type Appointment struct {
	ID              int64             `json:"id"`
	CustomerID      int64             `json:"customer_id"`
	EmployeeID      int64             `json:"employee_id"`
	ServiceID       int64             `json:"service_id"`
	AppointmentDate time.Time         `json:"appointment_date"`
	Status          AppointmentStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
