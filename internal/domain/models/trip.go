package models

import "time"

// Trip types.
const (
	TripTypeDrop  = "drop_trip"
	TripTypeRound = "round_trip"
)

// Trip is a single customer transport booking from pickup to drop city.
// Vehicle name and rate are denormalized from the catalog at creation time
// so later catalog edits never change an existing booking.
type Trip struct {
	ID                string    `json:"id"`
	TripType          string    `json:"tripType"`
	PickupCity        string    `json:"pickupCity"`
	DropCity          string    `json:"dropCity"`
	PickupDate        string    `json:"pickupDate"`
	PickupTime        string    `json:"pickupTime"`
	LuggageCount      int       `json:"luggageCount"`
	VehicleType       string    `json:"vehicleType"`
	VehicleName       string    `json:"vehicleName"`
	PricePerKm        float64   `json:"pricePerKm"`
	EstimatedDistance *float64  `json:"estimatedDistance,omitempty"`
	EstimatedFare     *float64  `json:"estimatedFare,omitempty"`
	ActualDistance    *float64  `json:"actualDistance,omitempty"`
	ActualFare        *float64  `json:"actualFare,omitempty"`
	CustomerName      string    `json:"customerName"`
	CustomerPhone     string    `json:"customerPhone"`
	CustomerEmail     string    `json:"customerEmail"`
	Notes             string    `json:"notes,omitempty"`
	Status            string    `json:"status"`
	AssignedDriverID  string    `json:"assignedDriverId,omitempty"`
	AssignedTruckID   string    `json:"assignedTruckId,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// BillableDistance prefers the measured distance over the estimate.
func (t Trip) BillableDistance() float64 {
	if t.ActualDistance != nil {
		return *t.ActualDistance
	}
	if t.EstimatedDistance != nil {
		return *t.EstimatedDistance
	}
	return 0
}

// TripUpdate supports PUT-style updates via key presence.
type TripUpdate struct {
	Status           *string  `json:"status"`
	AssignedDriverID *string  `json:"assignedDriverId"`
	AssignedTruckID  *string  `json:"assignedTruckId"`
	ActualDistance   *float64 `json:"actualDistance"`
	ActualFare       *float64 `json:"actualFare"`
	Notes            *string  `json:"notes"`
}
