package models

import "time"

// Billing is the invoice generated exactly once when a trip completes.
// Amounts are immutable after creation; only the payment fields change,
// and only via the pending -> paid transition.
type Billing struct {
	ID            string     `json:"id"`
	TripID        string     `json:"tripId"`
	CustomerID    string     `json:"customerId"`
	CustomerName  string     `json:"customerName"`
	VehicleName   string     `json:"vehicleName"`
	Distance      float64    `json:"distance"`
	Basefare      float64    `json:"basefare"`
	LuggageCharge float64    `json:"luggageCharge"`
	Taxes         float64    `json:"taxes"`
	TotalAmount   float64    `json:"totalAmount"`
	PaymentStatus string     `json:"paymentStatus"`
	PaymentMethod string     `json:"paymentMethod,omitempty"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}
