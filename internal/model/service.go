package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceStatus enumerates whether a service can currently be booked.
type ServiceStatus string

const (
	ServiceStatusAvailable   ServiceStatus = "available"
	ServiceStatusUnavailable ServiceStatus = "unavailable"
)

// Service is a bookable offering (haircut, beard trim, ...).
//
// Price is a non-negative decimal in the shop's currency;
// DurationMinutes is the slot length the service occupies.
type Service struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes"`
	Status          ServiceStatus   `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
