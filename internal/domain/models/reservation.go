package models

import "time"

// Reservation is a trial-booking lead captured for sales follow-up,
// distinct from a trip booking.
type Reservation struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	FleetSize string    `json:"fleetSize,omitempty"`
	Message   string    `json:"message,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationStats backs the admin dashboard header.
type ReservationStats struct {
	Total     int           `json:"total"`
	Pending   int           `json:"pending"`
	Contacted int           `json:"contacted"`
	Completed int           `json:"completed"`
	Recent    []Reservation `json:"recent"`
}
