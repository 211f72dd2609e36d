package services

import (
	"echohorn/internal/domain"
	"echohorn/internal/domain/models"
	"echohorn/internal/repositories"
	"echohorn/internal/utils"
)

// BillingService reads invoices and records payments. Invoice creation
// belongs to the trip lifecycle, not here.
type BillingService struct {
	Repo      repositories.BillingRepository
	RequestID string
}

func (s BillingService) Get(id string) (models.Billing, error) {
	return s.Repo.GetByID(id)
}

func (s BillingService) GetByTrip(tripID string) (models.Billing, error) {
	return s.Repo.GetByTripID(tripID)
}

func (s BillingService) ListByCustomer(email string, p domain.Pagination) ([]models.Billing, error) {
	if email == "" {
		return nil, domain.ValidationError{Field: "customerEmail", Msg: "customer email is required"}
	}
	return s.Repo.ListByCustomer(email, p)
}

// Pay records the pending -> paid transition. Paying an already-paid
// billing is a state machine violation, not a silent no-op.
func (s BillingService) Pay(id, method string) (models.Billing, error) {
	method = utils.TrimOrEmpty(method)
	if method == "" {
		return models.Billing{}, domain.ValidationError{Field: "paymentMethod", Msg: "payment method is required"}
	}

	if err := s.Repo.MarkPaid(id, method, utils.NowUTC()); err != nil {
		return models.Billing{}, err
	}

	utils.LogEvent(s.RequestID, "billing", "pay", "id="+id+" method="+method)
	return s.Repo.GetByID(id)
}
