package services

import (
	"fmt"

	"echohorn/internal/domain"
	"echohorn/internal/domain/models"
	"echohorn/internal/repositories"
	"echohorn/internal/utils"
)

// DashboardService composes the customer home screen from the trip and
// billing stores in one call.
type DashboardService struct {
	TripRepo    repositories.TripRepository
	BillingRepo repositories.BillingRepository
	DriverRepo  repositories.DriverRepository
	TruckRepo   repositories.TruckRepository
	RequestID   string
}

type DashboardSummary struct {
	TotalTrips      int     `json:"totalTrips"`
	CompletedTrips  int     `json:"completedTrips"`
	TotalSpent      float64 `json:"totalSpent"`
	PendingPayments int     `json:"pendingPayments"`
}

// Dashboard is the wire shape the customer home screen consumes.
// truckDetails and driverDetails are top-level siblings of activeTrip
// and are emitted as null when nothing is assigned.
type Dashboard struct {
	Summary        DashboardSummary `json:"summary"`
	ActiveTrip     *models.Trip     `json:"activeTrip"`
	TruckDetails   *models.Truck    `json:"truckDetails"`
	DriverDetails  *models.Driver   `json:"driverDetails"`
	RecentTrips    []models.Trip    `json:"recentTrips"`
	RecentBillings []models.Billing `json:"recentBillings"`
}

func (s DashboardService) Get(customerEmail string) (Dashboard, error) {
	if customerEmail == "" {
		return Dashboard{}, domain.ValidationError{Field: "customerEmail", Msg: "customer email is required"}
	}

	total, completed, err := s.TripRepo.CountByCustomer(customerEmail)
	if err != nil {
		return Dashboard{}, err
	}
	totalSpent, pendingPayments, err := s.BillingRepo.PaymentTotals(customerEmail)
	if err != nil {
		return Dashboard{}, err
	}

	recentTrips, err := s.TripRepo.List(
		repositories.TripFilter{CustomerEmail: customerEmail},
		domain.Pagination{Limit: 10},
	)
	if err != nil {
		return Dashboard{}, err
	}
	recentBillings, err := s.BillingRepo.ListByCustomer(customerEmail, domain.Pagination{Limit: 10})
	if err != nil {
		return Dashboard{}, err
	}

	active, driverDetails, truckDetails, err := s.activeTrip(customerEmail)
	if err != nil {
		return Dashboard{}, err
	}

	return Dashboard{
		Summary: DashboardSummary{
			TotalTrips:      total,
			CompletedTrips:  completed,
			TotalSpent:      utils.Round2(totalSpent),
			PendingPayments: pendingPayments,
		},
		ActiveTrip:     active,
		TruckDetails:   truckDetails,
		DriverDetails:  driverDetails,
		RecentTrips:    recentTrips,
		RecentBillings: recentBillings,
	}, nil
}

// activeTrip picks the customer's current booking and resolves its
// assigned crew. A customer is meant to have at most one non-terminal
// trip; if the data disagrees we log the anomaly and show the most
// recently updated one.
func (s DashboardService) activeTrip(customerEmail string) (*models.Trip, *models.Driver, *models.Truck, error) {
	trips, err := s.TripRepo.ActiveByCustomer(customerEmail)
	if err != nil {
		return nil, nil, nil, err
	}
	if len(trips) == 0 {
		return nil, nil, nil, nil
	}
	if len(trips) > 1 {
		utils.LogEvent(s.RequestID, "dashboard", "anomaly",
			fmt.Sprintf("customer=%s has %d active trips, showing the latest", customerEmail, len(trips)))
	}

	active := trips[0]
	var driverDetails *models.Driver
	var truckDetails *models.Truck
	if active.AssignedDriverID != "" {
		d, err := s.DriverRepo.GetByID(active.AssignedDriverID)
		if err == nil {
			driverDetails = &d
		} else if !domain.IsNotFound(err) {
			return nil, nil, nil, err
		}
	}
	if active.AssignedTruckID != "" {
		t, err := s.TruckRepo.GetByID(active.AssignedTruckID)
		if err == nil {
			truckDetails = &t
		} else if !domain.IsNotFound(err) {
			return nil, nil, nil, err
		}
	}
	return &active, driverDetails, truckDetails, nil
}
