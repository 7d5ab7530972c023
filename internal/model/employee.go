package model

import "time"

// EmployeeStatus enumerates an employee's availability state.
type EmployeeStatus string

const (
	EmployeeStatusAvailable   EmployeeStatus = "available"
	EmployeeStatusVacation    EmployeeStatus = "vacation"
	EmployeeStatusSickLeave   EmployeeStatus = "sick_leave"
	EmployeeStatusUnavailable EmployeeStatus = "unavailable"
)

// EmployeeStatuses lists the accepted status values, in the order they are
// reported in validation messages.
var EmployeeStatuses = []EmployeeStatus{
	EmployeeStatusAvailable,
	EmployeeStatusVacation,
	EmployeeStatusSickLeave,
	EmployeeStatusUnavailable,
}

// Employee is a barber or other staff member that appointments are booked
// against. Role is the specialty ("barber", "colorist", ...).
type Employee struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	PhoneNumber string         `json:"phone_number"`
	Role        string         `json:"role"`
	Status      EmployeeStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
