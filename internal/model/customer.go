package model

import "time"

// Customer is a registered client of the barbershop.
//
// Email and PhoneNumber are unique across customers; the phone number is
// verified against the external validator at registration time.
type Customer struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
