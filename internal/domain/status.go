package domain

// Reservation statuses.
const (
	ReservationPending   = "pending"
	ReservationContacted = "contacted"
	ReservationCompleted = "completed"
	ReservationCancelled = "cancelled"
)

// Trip statuses.
const (
	TripPending    = "pending"
	TripConfirmed  = "confirmed"
	TripAssigned   = "assigned"
	TripInProgress = "in_progress"
	TripCompleted  = "completed"
	TripCancelled  = "cancelled"
)

// Billing payment statuses.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

// Driver operational flags.
const (
	DriverPendingVerification = "pending-verification"
	DriverActive              = "active"
	DriverSuspended           = "suspended"
)

// Truck operational flags.
const (
	TruckAvailable   = "available"
	TruckOnTrip      = "on_trip"
	TruckMaintenance = "maintenance"
)

type transition struct {
	from string
	to   string
}

// Transition tables are explicit data, checked at call time.
var reservationTransitions = []transition{
	{ReservationPending, ReservationContacted},
	{ReservationPending, ReservationCancelled},
	{ReservationContacted, ReservationCompleted},
	{ReservationContacted, ReservationCancelled},
}

var tripTransitions = []transition{
	{TripPending, TripConfirmed},
	{TripConfirmed, TripAssigned},
	{TripAssigned, TripInProgress},
	{TripInProgress, TripCompleted},
	{TripPending, TripCancelled},
	{TripConfirmed, TripCancelled},
	{TripAssigned, TripCancelled},
	{TripInProgress, TripCancelled},
}

var paymentTransitions = []transition{
	{PaymentPending, PaymentPaid},
}

func allowed(table []transition, from, to string) bool {
	for _, t := range table {
		if t.from == from && t.to == to {
			return true
		}
	}
	return false
}

// CheckReservationTransition validates an administrator-initiated status change.
func CheckReservationTransition(from, to string) error {
	if allowed(reservationTransitions, from, to) {
		return nil
	}
	return StateTransitionError{Entity: "reservation", From: from, To: to}
}

func CheckTripTransition(from, to string) error {
	if allowed(tripTransitions, from, to) {
		return nil
	}
	return StateTransitionError{Entity: "trip", From: from, To: to}
}

// CheckPaymentTransition enforces the one-way pending -> paid machine.
// Re-paying a paid billing is rejected, not a no-op.
func CheckPaymentTransition(from, to string) error {
	if allowed(paymentTransitions, from, to) {
		return nil
	}
	return StateTransitionError{Entity: "billing", From: from, To: to}
}

// TripAssignable reports whether driver/truck assignment is permitted
// in the trip's current status.
func TripAssignable(status string) bool {
	return status == TripConfirmed || status == TripAssigned
}

// TripActive reports whether a trip counts as the customer's active trip
// on the dashboard.
func TripActive(status string) bool {
	switch status {
	case TripConfirmed, TripAssigned, TripInProgress:
		return true
	default:
		return false
	}
}

func ValidTripStatus(s string) bool {
	switch s {
	case TripPending, TripConfirmed, TripAssigned, TripInProgress, TripCompleted, TripCancelled:
		return true
	default:
		return false
	}
}

func ValidReservationStatus(s string) bool {
	switch s {
	case ReservationPending, ReservationContacted, ReservationCompleted, ReservationCancelled:
		return true
	default:
		return false
	}
}

func ValidDriverStatus(s string) bool {
	switch s {
	case DriverPendingVerification, DriverActive, DriverSuspended:
		return true
	default:
		return false
	}
}

func ValidTruckStatus(s string) bool {
	switch s {
	case TruckAvailable, TruckOnTrip, TruckMaintenance:
		return true
	default:
		return false
	}
}
