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

// ReservationService handles trial-booking leads for the sales funnel.
type ReservationService struct {
	Repo      repositories.ReservationRepository
	Notifier  *Notifier
	RequestID string
}

type ReservationInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	FleetSize string `json:"fleetSize"`
	Message   string `json:"message"`
}

func (s ReservationService) Create(in ReservationInput) (models.Reservation, error) {
	errs := validation.ValidateReservation(validation.ReservationForm{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   in.Company,
		FleetSize: in.FleetSize,
		Message:   in.Message,
	})
	if len(errs) > 0 {
		return models.Reservation{}, domain.ValidationError{Fields: errs, Msg: "invalid reservation"}
	}

	now := utils.NowUTC()
	res := models.Reservation{
		ID:        uuid.New().String(),
		Name:      utils.NormalizeSpace(in.Name),
		Email:     strings.ToLower(utils.TrimOrEmpty(in.Email)),
		Phone:     utils.TrimOrEmpty(in.Phone),
		Company:   utils.TrimOrEmpty(in.Company),
		FleetSize: utils.TrimOrEmpty(in.FleetSize),
		Message:   utils.TrimOrEmpty(in.Message),
		Status:    domain.ReservationPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repo.Create(res); err != nil {
		return models.Reservation{}, err
	}

	utils.LogEvent(s.RequestID, "reservation", "create", "id="+res.ID)

	// Confirmation mail is best effort and must never fail the request.
	if s.Notifier != nil {
		go s.Notifier.SendReservationConfirmation(res)
	}

	return res, nil
}

func (s ReservationService) Get(id string) (models.Reservation, error) {
	return s.Repo.GetByID(id)
}

func (s ReservationService) List(status string, p domain.Pagination) ([]models.Reservation, error) {
	if status != "" && !domain.ValidReservationStatus(status) {
		return nil, domain.ValidationError{Field: "status", Msg: "unknown reservation status"}
	}
	return s.Repo.List(status, p)
}

func (s ReservationService) Stats() (models.ReservationStats, error) {
	return s.Repo.Stats()
}

type ReservationUpdateInput struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// Update applies an administrator edit. Status changes run through the
// reservation state machine; completed and cancelled are terminal.
func (s ReservationService) Update(id string, in ReservationUpdateInput) (models.Reservation, error) {
	res, err := s.Repo.GetByID(id)
	if err != nil {
		return models.Reservation{}, err
	}

	if in.Status != nil {
		next := utils.TrimOrEmpty(*in.Status)
		if !domain.ValidReservationStatus(next) {
			return models.Reservation{}, domain.ValidationError{Field: "status", Msg: "unknown reservation status"}
		}
		if next != res.Status {
			if err := domain.CheckReservationTransition(res.Status, next); err != nil {
				return models.Reservation{}, err
			}
			res.Status = next
		}
	}
	if in.Notes != nil {
		res.Notes = utils.TrimOrEmpty(*in.Notes)
	}

	res.UpdatedAt = utils.NowUTC()
	if err := s.Repo.UpdateStatusNotes(res); err != nil {
		return models.Reservation{}, err
	}

	utils.LogEvent(s.RequestID, "reservation", "update", "id="+res.ID+" status="+res.Status)
	return res, nil
}

func (s ReservationService) Delete(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "reservation", "delete", "id="+id)
	return nil
}
