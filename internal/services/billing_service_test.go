package services

import (
	"database/sql/driver"
	"testing"
	"time"

	intconfig "echohorn/internal/config"
	"echohorn/internal/domain"
	"echohorn/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

var billingCols = []string{
	"id", "trip_id", "customer_id", "customer_name", "vehicle_name", "distance",
	"basefare", "luggage_charge", "taxes", "total_amount", "payment_status",
	"payment_method", "paid_at", "created_at",
}

func billingRow(status, method string) []driver.Value {
	now := time.Now().UTC()
	var paidAt driver.Value
	if status == domain.PaymentPaid {
		paidAt = now
	}
	return []driver.Value{
		"bill-1", "trip-1", "asha@example.com", "Asha", "Sedan (4+1)", 150.0,
		2100.0, 10.0, 379.8, 2489.8, status,
		method, paidAt, now,
	}
}

func newBillingService(t *testing.T) (BillingService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	intconfig.DB = db
	return BillingService{Repo: repositories.BillingRepository{DB: db}}, mock, func() { db.Close() }
}

func TestBillingPayMarksPaid(t *testing.T) {
	svc, mock, done := newBillingService(t)
	defer done()

	mock.ExpectExec("UPDATE billings").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM billings").
		WillReturnRows(sqlmock.NewRows(billingCols).AddRow(billingRow(domain.PaymentPaid, "upi")...))

	b, err := svc.Pay("bill-1", "upi")
	if err != nil {
		t.Fatalf("Pay returned error: %v", err)
	}
	if b.PaymentStatus != domain.PaymentPaid || b.PaymentMethod != "upi" {
		t.Fatalf("unexpected billing after pay: %+v", b)
	}
	if b.PaidAt == nil {
		t.Fatalf("paidAt not recorded")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBillingPayTwiceRejected(t *testing.T) {
	svc, mock, done := newBillingService(t)
	defer done()

	// Guarded update matches no rows; the follow-up read shows it is
	// already paid, so the state machine rejects the second payment.
	mock.ExpectExec("UPDATE billings").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT (.+) FROM billings").
		WillReturnRows(sqlmock.NewRows(billingCols).AddRow(billingRow(domain.PaymentPaid, "upi")...))

	_, err := svc.Pay("bill-1", "card")
	if !domain.IsStateTransition(err) {
		t.Fatalf("expected state transition error, got %v", err)
	}
}

func TestBillingPayRequiresMethod(t *testing.T) {
	svc, _, done := newBillingService(t)
	defer done()

	_, err := svc.Pay("bill-1", "  ")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestBillingListRequiresCustomer(t *testing.T) {
	svc, _, done := newBillingService(t)
	defer done()

	_, err := svc.ListByCustomer("", domain.Pagination{})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
