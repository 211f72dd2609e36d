package services

import (
	"strings"

	"echohorn/internal/domain"
	"echohorn/internal/domain/models"
	"echohorn/internal/repositories"
	"echohorn/internal/utils"
	"echohorn/internal/validation"

	"github.com/google/uuid"
)

type DriverService struct {
	Repo      repositories.DriverRepository
	RequestID string
}

type DriverInput struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	LicenseNumber string `json:"licenseNumber"`
	LicenseExpiry string `json:"licenseExpiry"`
	Address       string `json:"address"`
	Experience    int    `json:"experience"`
	ProfilePhoto  string `json:"profilePhoto"`
}

// Create registers a driver. New drivers always start unverified; an
// operator flips them to active after the document check.
func (s DriverService) Create(in DriverInput) (models.Driver, error) {
	errs := validation.ValidateDriver(validation.DriverForm{
		Name:          in.Name,
		Phone:         in.Phone,
		Email:         in.Email,
		LicenseNumber: in.LicenseNumber,
		LicenseExpiry: in.LicenseExpiry,
		Address:       in.Address,
		Experience:    in.Experience,
	})
	if len(errs) > 0 {
		return models.Driver{}, domain.ValidationError{Fields: errs, Msg: "invalid driver"}
	}

	now := utils.NowUTC()
	d := models.Driver{
		ID:            uuid.New().String(),
		Name:          utils.TrimOrEmpty(in.Name),
		Phone:         utils.TrimOrEmpty(in.Phone),
		Email:         strings.ToLower(utils.TrimOrEmpty(in.Email)),
		LicenseNumber: utils.TrimOrEmpty(in.LicenseNumber),
		LicenseExpiry: utils.TrimOrEmpty(in.LicenseExpiry),
		Address:       utils.TrimOrEmpty(in.Address),
		Experience:    in.Experience,
		ProfilePhoto:  utils.TrimOrEmpty(in.ProfilePhoto),
		Rating:        5.0,
		TotalTrips:    0,
		Status:        domain.DriverPendingVerification,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Repo.Create(d); err != nil {
		return models.Driver{}, err
	}

	utils.LogEvent(s.RequestID, "driver", "create", "id="+d.ID)
	return d, nil
}

func (s DriverService) Get(id string) (models.Driver, error) {
	return s.Repo.GetByID(id)
}

func (s DriverService) List(status string, p domain.Pagination) ([]models.Driver, error) {
	if status != "" && !domain.ValidDriverStatus(status) {
		return nil, domain.ValidationError{Field: "status", Msg: "unknown driver status"}
	}
	return s.Repo.List(status, p)
}
