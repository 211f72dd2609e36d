package services

import (
	"fmt"
	"strings"

	"echohorn/internal/domain"
	"echohorn/internal/domain/models"
	"echohorn/internal/repositories"
	"echohorn/internal/utils"
	"echohorn/internal/validation"

	"github.com/google/uuid"
)

// TripService owns the booking lifecycle: creation with fare estimation,
// the status state machine, assignment rules, and invoice creation on
// completion.
type TripService struct {
	Repo        repositories.TripRepository
	BillingRepo repositories.BillingRepository
	DriverRepo  repositories.DriverRepository
	TruckRepo   repositories.TruckRepository
	Rates       utils.BillingRates
	RequestID   string
}

type TripInput struct {
	TripType          string   `json:"tripType"`
	PickupCity        string   `json:"pickupCity"`
	DropCity          string   `json:"dropCity"`
	PickupDate        string   `json:"pickupDate"`
	PickupTime        string   `json:"pickupTime"`
	LuggageCount      int      `json:"luggageCount"`
	VehicleType       string   `json:"vehicleType"`
	EstimatedDistance *float64 `json:"estimatedDistance"`
	CustomerName      string   `json:"customerName"`
	CustomerPhone     string   `json:"customerPhone"`
	CustomerEmail     string   `json:"customerEmail"`
	Notes             string   `json:"notes"`
}

func (s TripService) Create(in TripInput) (models.Trip, error) {
	errs := validation.ValidateTrip(validation.TripForm{
		TripType:          in.TripType,
		PickupCity:        in.PickupCity,
		DropCity:          in.DropCity,
		PickupDate:        in.PickupDate,
		PickupTime:        in.PickupTime,
		LuggageCount:      in.LuggageCount,
		VehicleType:       in.VehicleType,
		CustomerName:      in.CustomerName,
		CustomerPhone:     in.CustomerPhone,
		CustomerEmail:     in.CustomerEmail,
		EstimatedDistance: in.EstimatedDistance,
	})
	if len(errs) > 0 {
		return models.Trip{}, domain.ValidationError{Fields: errs, Msg: "invalid trip"}
	}

	if _, err := utils.ParseDate(in.PickupDate); err != nil {
		return models.Trip{}, domain.ValidationError{Field: "pickupDate", Msg: "pickup date must be YYYY-MM-DD"}
	}

	vt, ok := domain.LookupVehicleType(in.VehicleType)
	if !ok {
		return models.Trip{}, domain.ValidationError{Field: "vehicleType", Msg: "unknown vehicle type"}
	}
	if in.LuggageCount > vt.AllowedLuggage {
		return models.Trip{}, domain.ValidationError{
			Field: "luggageCount",
			Msg:   fmt.Sprintf("luggage count exceeds the %d allowed for %s", vt.AllowedLuggage, vt.Name),
		}
	}

	now := utils.NowUTC()
	t := models.Trip{
		ID:            uuid.New().String(),
		TripType:      in.TripType,
		PickupCity:    utils.TrimOrEmpty(in.PickupCity),
		DropCity:      utils.TrimOrEmpty(in.DropCity),
		PickupDate:    utils.TrimOrEmpty(in.PickupDate),
		PickupTime:    utils.TrimOrEmpty(in.PickupTime),
		LuggageCount:  in.LuggageCount,
		VehicleType:   vt.Key,
		VehicleName:   vt.Name,
		PricePerKm:    vt.PricePerKm,
		CustomerName:  utils.NormalizeSpace(in.CustomerName),
		CustomerPhone: utils.TrimOrEmpty(in.CustomerPhone),
		CustomerEmail: strings.ToLower(utils.TrimOrEmpty(in.CustomerEmail)),
		Notes:         utils.TrimOrEmpty(in.Notes),
		Status:        domain.TripPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if in.EstimatedDistance != nil {
		dist := utils.Round2(*in.EstimatedDistance)
		fare := utils.EstimateFare(dist, vt.PricePerKm)
		t.EstimatedDistance = &dist
		t.EstimatedFare = &fare
	}

	if err := s.Repo.Create(t); err != nil {
		return models.Trip{}, err
	}

	utils.LogEvent(s.RequestID, "trip", "create", "id="+t.ID+" vehicle="+t.VehicleType)
	return t, nil
}

func (s TripService) Get(id string) (models.Trip, error) {
	return s.Repo.GetByID(id)
}

func (s TripService) List(f repositories.TripFilter, p domain.Pagination) ([]models.Trip, error) {
	if f.Status != "" && !domain.ValidTripStatus(f.Status) {
		return nil, domain.ValidationError{Field: "status", Msg: "unknown trip status"}
	}
	return s.Repo.List(f, p)
}

// Update applies a dispatcher edit. Status changes run through the trip
// state machine; assignments are only accepted while the trip is in an
// assignable status; the completed transition creates the invoice.
func (s TripService) Update(id string, in models.TripUpdate) (models.Trip, error) {
	t, err := s.Repo.GetByID(id)
	if err != nil {
		return models.Trip{}, err
	}
	fromStatus := t.Status

	completing := false
	if in.Status != nil {
		next := utils.TrimOrEmpty(*in.Status)
		if !domain.ValidTripStatus(next) {
			return models.Trip{}, domain.ValidationError{Field: "status", Msg: "unknown trip status"}
		}
		if next != t.Status {
			if err := domain.CheckTripTransition(t.Status, next); err != nil {
				return models.Trip{}, err
			}
			completing = next == domain.TripCompleted
			t.Status = next
		}
	}

	if in.AssignedDriverID != nil || in.AssignedTruckID != nil {
		if !domain.TripAssignable(t.Status) {
			return models.Trip{}, domain.ValidationError{
				Field: "status",
				Msg:   "driver and truck can only be assigned to a confirmed or assigned trip",
			}
		}
		if in.AssignedDriverID != nil {
			driverID := utils.TrimOrEmpty(*in.AssignedDriverID)
			if driverID != "" {
				if _, err := s.DriverRepo.GetByID(driverID); err != nil {
					return models.Trip{}, err
				}
			}
			t.AssignedDriverID = driverID
		}
		if in.AssignedTruckID != nil {
			truckID := utils.TrimOrEmpty(*in.AssignedTruckID)
			if truckID != "" {
				if _, err := s.TruckRepo.GetByID(truckID); err != nil {
					return models.Trip{}, err
				}
			}
			t.AssignedTruckID = truckID
		}
	}

	if in.ActualDistance != nil {
		if *in.ActualDistance < 0 {
			return models.Trip{}, domain.ValidationError{Field: "actualDistance", Msg: "actual distance cannot be negative"}
		}
		dist := utils.Round2(*in.ActualDistance)
		fare := utils.EstimateFare(dist, t.PricePerKm)
		t.ActualDistance = &dist
		t.ActualFare = &fare
	}
	if in.ActualFare != nil {
		if *in.ActualFare < 0 {
			return models.Trip{}, domain.ValidationError{Field: "actualFare", Msg: "actual fare cannot be negative"}
		}
		fare := utils.Round2(*in.ActualFare)
		t.ActualFare = &fare
	}
	if in.Notes != nil {
		t.Notes = utils.TrimOrEmpty(*in.Notes)
	}

	t.UpdatedAt = utils.NowUTC()
	if err := s.Repo.Update(t, fromStatus); err != nil {
		return models.Trip{}, err
	}

	if completing {
		if err := s.createBilling(t); err != nil {
			// A conflict here means a concurrent completion already
			// invoiced the trip; surface it so the caller retries a read.
			return models.Trip{}, err
		}
	}

	utils.LogEvent(s.RequestID, "trip", "update", "id="+t.ID+" status="+t.Status)
	return t, nil
}

// createBilling freezes the invoice amounts at the moment the trip
// completes. The unique key on trip_id guarantees at most one invoice
// per trip even under concurrent completions.
func (s TripService) createBilling(t models.Trip) error {
	breakdown := utils.ComputeBilling(t.BillableDistance(), t.PricePerKm, t.LuggageCount, s.Rates)
	b := models.Billing{
		ID:            uuid.New().String(),
		TripID:        t.ID,
		CustomerID:    t.CustomerEmail,
		CustomerName:  t.CustomerName,
		VehicleName:   t.VehicleName,
		Distance:      utils.Round2(t.BillableDistance()),
		Basefare:      breakdown.Basefare,
		LuggageCharge: breakdown.LuggageCharge,
		Taxes:         breakdown.Taxes,
		TotalAmount:   breakdown.TotalAmount,
		PaymentStatus: domain.PaymentPending,
		CreatedAt:     utils.NowUTC(),
	}
	if err := s.BillingRepo.Create(b); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "billing", "create", "id="+b.ID+" trip="+t.ID+" total="+utils.FormatMoney(b.TotalAmount))
	return nil
}
