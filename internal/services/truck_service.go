package services

import (
	"echohorn/internal/domain"
	"echohorn/internal/domain/models"
	"echohorn/internal/repositories"
	"echohorn/internal/utils"
	"echohorn/internal/validation"

	"github.com/google/uuid"
)

type TruckService struct {
	Repo       repositories.TruckRepository
	DriverRepo repositories.DriverRepository
	RequestID  string
}

type TruckInput struct {
	VehicleType        string `json:"vehicleType"`
	VehicleName        string `json:"vehicleName"`
	RegistrationNumber string `json:"registrationNumber"`
	Model              string `json:"model"`
	Year               int    `json:"year"`
	Color              string `json:"color"`
	InsuranceNumber    string `json:"insuranceNumber"`
	InsuranceExpiry    string `json:"insuranceExpiry"`
	FitnessExpiry      string `json:"fitnessExpiry"`
	DriverID           string `json:"driverId"`
	OwnerID            string `json:"ownerId"`
	OwnerName          string `json:"ownerName"`
	OwnerPhone         string `json:"ownerPhone"`
}

func (s TruckService) Create(in TruckInput) (models.Truck, error) {
	errs := validation.ValidateTruck(validation.TruckForm{
		VehicleType:        in.VehicleType,
		RegistrationNumber: in.RegistrationNumber,
		Model:              in.Model,
		Year:               in.Year,
		Color:              in.Color,
		InsuranceNumber:    in.InsuranceNumber,
		InsuranceExpiry:    in.InsuranceExpiry,
		FitnessExpiry:      in.FitnessExpiry,
		OwnerID:            in.OwnerID,
		OwnerName:          in.OwnerName,
		OwnerPhone:         in.OwnerPhone,
	})
	if len(errs) > 0 {
		return models.Truck{}, domain.ValidationError{Fields: errs, Msg: "invalid truck"}
	}

	vehicleName := utils.TrimOrEmpty(in.VehicleName)
	if vehicleName == "" {
		if vt, ok := domain.LookupVehicleType(in.VehicleType); ok {
			vehicleName = vt.Name
		} else {
			vehicleName = utils.TrimOrEmpty(in.VehicleType)
		}
	}

	driverID := utils.TrimOrEmpty(in.DriverID)
	driverName := ""
	if driverID != "" {
		d, err := s.DriverRepo.GetByID(driverID)
		if err != nil {
			return models.Truck{}, err
		}
		driverName = d.Name
	}

	now := utils.NowUTC()
	t := models.Truck{
		ID:                 uuid.New().String(),
		VehicleType:        utils.TrimOrEmpty(in.VehicleType),
		VehicleName:        vehicleName,
		RegistrationNumber: utils.TrimOrEmpty(in.RegistrationNumber),
		Model:              utils.TrimOrEmpty(in.Model),
		Year:               in.Year,
		Color:              utils.TrimOrEmpty(in.Color),
		InsuranceNumber:    utils.TrimOrEmpty(in.InsuranceNumber),
		InsuranceExpiry:    utils.TrimOrEmpty(in.InsuranceExpiry),
		FitnessExpiry:      utils.TrimOrEmpty(in.FitnessExpiry),
		DriverID:           driverID,
		DriverName:         driverName,
		OwnerID:            utils.TrimOrEmpty(in.OwnerID),
		OwnerName:          utils.TrimOrEmpty(in.OwnerName),
		OwnerPhone:         utils.TrimOrEmpty(in.OwnerPhone),
		Status:             domain.TruckAvailable,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.Repo.Create(t); err != nil {
		return models.Truck{}, err
	}

	utils.LogEvent(s.RequestID, "truck", "create", "id="+t.ID+" reg="+t.RegistrationNumber)
	return t, nil
}

func (s TruckService) Get(id string) (models.Truck, error) {
	return s.Repo.GetByID(id)
}

func (s TruckService) List(f repositories.TruckFilter, p domain.Pagination) ([]models.Truck, error) {
	if f.Status != "" && !domain.ValidTruckStatus(f.Status) {
		return nil, domain.ValidationError{Field: "status", Msg: "unknown truck status"}
	}
	return s.Repo.List(f, p)
}

type LocationInput struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Heading   *float64 `json:"heading"`
	Speed     *float64 `json:"speed"`
}

// UpdateLocation records a telemetry push from the vehicle tracker.
func (s TruckService) UpdateLocation(id string, in LocationInput) (models.Truck, error) {
	errs := validation.ValidateLocation(validation.LocationForm{
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		Heading:   in.Heading,
		Speed:     in.Speed,
	})
	if len(errs) > 0 {
		return models.Truck{}, domain.ValidationError{Fields: errs, Msg: "invalid location"}
	}

	if _, err := s.Repo.GetByID(id); err != nil {
		return models.Truck{}, err
	}

	now := utils.NowUTC()
	loc := models.TruckLocation{
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		Heading:   in.Heading,
		Speed:     in.Speed,
		UpdatedAt: utils.FormatDateTime(now),
	}
	if err := s.Repo.UpdateLocation(id, loc, now); err != nil {
		return models.Truck{}, err
	}

	utils.LogEvent(s.RequestID, "truck", "update_location", "id="+id)
	return s.Repo.GetByID(id)
}
