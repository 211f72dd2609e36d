package models

import "time"

// TruckLocation is the latest telemetry push for a truck.
type TruckLocation struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Heading   *float64 `json:"heading,omitempty"`
	Speed     *float64 `json:"speed,omitempty"`
	UpdatedAt string   `json:"updatedAt"`
}

// Truck is a fleet vehicle registered by an owner. Registration numbers
// are unique across the fleet.
type Truck struct {
	ID                 string         `json:"id"`
	VehicleType        string         `json:"vehicleType"`
	VehicleName        string         `json:"vehicleName"`
	RegistrationNumber string         `json:"registrationNumber"`
	Model              string         `json:"model"`
	Year               int            `json:"year"`
	Color              string         `json:"color"`
	InsuranceNumber    string         `json:"insuranceNumber"`
	InsuranceExpiry    string         `json:"insuranceExpiry"`
	FitnessExpiry      string         `json:"fitnessExpiry"`
	DriverID           string         `json:"driverId,omitempty"`
	DriverName         string         `json:"driverName,omitempty"`
	OwnerID            string         `json:"ownerId"`
	OwnerName          string         `json:"ownerName"`
	OwnerPhone         string         `json:"ownerPhone"`
	Status             string         `json:"status"`
	CurrentLocation    *TruckLocation `json:"currentLocation,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}
