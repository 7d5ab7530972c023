package model

// AppointmentCounts breaks appointment totals down relative to a reference
// time: Past and Upcoming partition Total.
type AppointmentCounts struct {
	Total    int64 `json:"total"`
	Past     int64 `json:"past"`
	Upcoming int64 `json:"upcoming"`
}

// DashboardStats is the consolidated set of counters shown on the
// operations dashboard. Services counts bookable services only.
type DashboardStats struct {
	Customers    int64             `json:"customers"`
	Employees    int64             `json:"employees"`
	Services     int64             `json:"services"`
	Appointments AppointmentCounts `json:"appointments"`
}
