// Package model defines the typed entities the application stores and
// serves: customers, employees, services, and appointments.
//
// The structs double as JSON response shapes; repositories scan rows into
// them directly.
package model
