package models

import "time"

// Driver is created at registration and verified by operations before
// becoming dispatchable.
type Driver struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	LicenseNumber string    `json:"licenseNumber"`
	LicenseExpiry string    `json:"licenseExpiry"`
	Address       string    `json:"address"`
	Experience    int       `json:"experience"`
	ProfilePhoto  string    `json:"profilePhoto,omitempty"`
	Rating        float64   `json:"rating"`
	TotalTrips    int       `json:"totalTrips"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
