package utils

import "math"

// Round2 rounds to two decimal places, the precision every money field
// in the API is stored and displayed at.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// EstimateFare returns the quoted fare for a trip before dispatch.
func EstimateFare(distanceKm, pricePerKm float64) float64 {
	return Round2(distanceKm * pricePerKm)
}

// BillingRates are collaborator-supplied configuration, not literals.
type BillingRates struct {
	TaxRate            float64
	LuggageRatePerUnit float64
}

// BillingBreakdown is the invoice math for a completed trip.
// totalAmount is always the exact sum of the three components.
type BillingBreakdown struct {
	Basefare      float64
	LuggageCharge float64
	Taxes         float64
	TotalAmount   float64
}

// ComputeBilling derives the invoice amounts from distance, the rate
// frozen on the trip, and the luggage count.
func ComputeBilling(distanceKm, pricePerKm float64, luggageCount int, rates BillingRates) BillingBreakdown {
	basefare := Round2(distanceKm * pricePerKm)
	luggage := Round2(float64(luggageCount) * rates.LuggageRatePerUnit)
	taxes := Round2(rates.TaxRate * (basefare + luggage))
	return BillingBreakdown{
		Basefare:      basefare,
		LuggageCharge: luggage,
		Taxes:         taxes,
		TotalAmount:   Round2(basefare + luggage + taxes),
	}
}
