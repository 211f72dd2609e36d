package services

import (
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	intconfig "echohorn/internal/config"
	"echohorn/internal/domain"
	"echohorn/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

var reservationCols = []string{
	"id", "name", "email", "phone", "company", "fleet_size", "message",
	"notes", "status", "created_at", "updated_at",
}

func reservationRow(status string) []driver.Value {
	now := time.Now().UTC()
	return []driver.Value{
		"res-1", "Asha", "asha@example.com", "9876543210", "Acme Movers",
		"10-50", "Need weekly intercity runs", "", status, now, now,
	}
}

func newReservationService(t *testing.T) (ReservationService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	intconfig.DB = db
	return ReservationService{Repo: repositories.ReservationRepository{DB: db}}, mock, func() { db.Close() }
}

func TestReservationCreate(t *testing.T) {
	svc, mock, done := newReservationService(t)
	defer done()

	mock.ExpectExec("INSERT INTO reservations").
		WillReturnResult(sqlmock.NewResult(0, 1))

	res, err := svc.Create(ReservationInput{
		Name:      "Asha",
		Email:     "Asha@Example.com",
		Phone:     "9876543210",
		Company:   "Acme Movers",
		FleetSize: "10-50",
		Message:   "Need weekly intercity runs",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if res.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if res.Status != domain.ReservationPending {
		t.Fatalf("new reservation must start pending, got %q", res.Status)
	}
	if res.Email != "asha@example.com" {
		t.Fatalf("email not normalized: %q", res.Email)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReservationCreateInvalid(t *testing.T) {
	svc, _, done := newReservationService(t)
	defer done()

	_, err := svc.Create(ReservationInput{Name: "Asha", Email: "not-an-email", Phone: "123"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	var verr domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected a ValidationError value")
	}
	for _, field := range []string{"email", "phone", "company"} {
		if _, ok := verr.Fields[field]; !ok {
			t.Fatalf("expected a message for %q, got %v", field, verr.Fields)
		}
	}
}

func TestReservationUpdateIllegalTransition(t *testing.T) {
	svc, mock, done := newReservationService(t)
	defer done()

	mock.ExpectQuery("SELECT (.+) FROM reservations").
		WillReturnRows(sqlmock.NewRows(reservationCols).AddRow(reservationRow(domain.ReservationCompleted)...))

	status := domain.ReservationPending
	_, err := svc.Update("res-1", ReservationUpdateInput{Status: &status})
	if !domain.IsStateTransition(err) {
		t.Fatalf("expected state transition error, got %v", err)
	}
}
