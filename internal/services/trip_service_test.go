package services

import (
	"database/sql/driver"
	"testing"
	"time"

	intconfig "echohorn/internal/config"
	"echohorn/internal/domain"
	"echohorn/internal/domain/models"
	"echohorn/internal/repositories"
	"echohorn/internal/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

var tripCols = []string{
	"id", "trip_type", "pickup_city", "drop_city", "pickup_date", "pickup_time",
	"luggage_count", "vehicle_type", "vehicle_name", "price_per_km",
	"estimated_distance", "estimated_fare", "actual_distance", "actual_fare",
	"customer_name", "customer_phone", "customer_email", "notes", "status",
	"assigned_driver_id", "assigned_truck_id", "created_at", "updated_at",
}

func tripRow(status string) []driver.Value {
	now := time.Now().UTC()
	return []driver.Value{
		"trip-1", "drop_trip", "Mumbai", "Pune", "2026-09-01", "09:00",
		2, "sedan", "Sedan (4+1)", 14.0,
		150.0, 2100.0, nil, nil,
		"Asha", "9876543210", "asha@example.com", "", status,
		"", "", now, now,
	}
}

func newTripService(t *testing.T) (TripService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	intconfig.DB = db
	svc := TripService{
		Repo:        repositories.TripRepository{DB: db},
		BillingRepo: repositories.BillingRepository{DB: db},
		DriverRepo:  repositories.DriverRepository{DB: db},
		TruckRepo:   repositories.TruckRepository{DB: db},
		Rates:       utils.BillingRates{TaxRate: 0.18, LuggageRatePerUnit: 5},
	}
	return svc, mock, func() { db.Close() }
}

func TestTripCreateEstimatesFare(t *testing.T) {
	svc, mock, done := newTripService(t)
	defer done()

	mock.ExpectExec("INSERT INTO trips").
		WillReturnResult(sqlmock.NewResult(0, 1))

	dist := 150.0
	trip, err := svc.Create(TripInput{
		TripType:          "drop_trip",
		PickupCity:        "Mumbai",
		DropCity:          "Pune",
		PickupDate:        "2026-09-01",
		PickupTime:        "09:00",
		LuggageCount:      2,
		VehicleType:       "sedan",
		EstimatedDistance: &dist,
		CustomerName:      "Asha",
		CustomerPhone:     "9876543210",
		CustomerEmail:     "Asha@Example.com",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if trip.EstimatedFare == nil || *trip.EstimatedFare != 2100.00 {
		t.Fatalf("expected estimated fare 2100.00, got %v", trip.EstimatedFare)
	}
	if trip.VehicleName != "Sedan (4+1)" || trip.PricePerKm != 14.00 {
		t.Fatalf("catalog values not frozen on trip: %+v", trip)
	}
	if trip.CustomerEmail != "asha@example.com" {
		t.Fatalf("email not normalized: %q", trip.CustomerEmail)
	}
	if trip.Status != domain.TripPending {
		t.Fatalf("new trip must start pending, got %q", trip.Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTripCreateRejectsSameCity(t *testing.T) {
	svc, _, done := newTripService(t)
	defer done()

	_, err := svc.Create(TripInput{
		TripType:      "drop_trip",
		PickupCity:    "Mumbai",
		DropCity:      "mumbai",
		PickupDate:    "2026-09-01",
		PickupTime:    "09:00",
		VehicleType:   "sedan",
		CustomerName:  "Asha",
		CustomerPhone: "9876543210",
		CustomerEmail: "asha@example.com",
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTripCreateRejectsExcessLuggage(t *testing.T) {
	svc, _, done := newTripService(t)
	defer done()

	_, err := svc.Create(TripInput{
		TripType:      "drop_trip",
		PickupCity:    "Mumbai",
		DropCity:      "Pune",
		PickupDate:    "2026-09-01",
		PickupTime:    "09:00",
		LuggageCount:  31,
		VehicleType:   "sedan",
		CustomerName:  "Asha",
		CustomerPhone: "9876543210",
		CustomerEmail: "asha@example.com",
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error for luggage over sedan limit, got %v", err)
	}
}

func TestTripCompletionCreatesBilling(t *testing.T) {
	svc, mock, done := newTripService(t)
	defer done()

	mock.ExpectQuery("SELECT (.+) FROM trips").
		WillReturnRows(sqlmock.NewRows(tripCols).AddRow(tripRow(domain.TripInProgress)...))
	mock.ExpectExec("UPDATE trips").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO billings").
		WillReturnResult(sqlmock.NewResult(0, 1))

	status := domain.TripCompleted
	trip, err := svc.Update("trip-1", models.TripUpdate{Status: &status})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if trip.Status != domain.TripCompleted {
		t.Fatalf("expected completed, got %q", trip.Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTripCompletionBillingConflictSurfaces(t *testing.T) {
	svc, mock, done := newTripService(t)
	defer done()

	mock.ExpectQuery("SELECT (.+) FROM trips").
		WillReturnRows(sqlmock.NewRows(tripCols).AddRow(tripRow(domain.TripInProgress)...))
	mock.ExpectExec("UPDATE trips").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO billings").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	status := domain.TripCompleted
	_, err := svc.Update("trip-1", models.TripUpdate{Status: &status})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict when trip is already invoiced, got %v", err)
	}
}

func TestTripUpdateConflictsWhenStatusMovedUnderneath(t *testing.T) {
	svc, mock, done := newTripService(t)
	defer done()

	// The guarded UPDATE matches zero rows when another request changed
	// the status between our read and our write.
	mock.ExpectQuery("SELECT (.+) FROM trips").
		WillReturnRows(sqlmock.NewRows(tripCols).AddRow(tripRow(domain.TripConfirmed)...))
	mock.ExpectExec("UPDATE trips").
		WillReturnResult(sqlmock.NewResult(0, 0))

	status := domain.TripAssigned
	_, err := svc.Update("trip-1", models.TripUpdate{Status: &status})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict when the trip was modified concurrently, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTripUpdateRejectsIllegalTransition(t *testing.T) {
	svc, mock, done := newTripService(t)
	defer done()

	mock.ExpectQuery("SELECT (.+) FROM trips").
		WillReturnRows(sqlmock.NewRows(tripCols).AddRow(tripRow(domain.TripCompleted)...))

	status := domain.TripInProgress
	_, err := svc.Update("trip-1", models.TripUpdate{Status: &status})
	if !domain.IsStateTransition(err) {
		t.Fatalf("expected state transition error, got %v", err)
	}
}

func TestTripUpdateRejectsAssignmentWhenPending(t *testing.T) {
	svc, mock, done := newTripService(t)
	defer done()

	mock.ExpectQuery("SELECT (.+) FROM trips").
		WillReturnRows(sqlmock.NewRows(tripCols).AddRow(tripRow(domain.TripPending)...))

	driverID := "driver-1"
	_, err := svc.Update("trip-1", models.TripUpdate{AssignedDriverID: &driverID})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error for assignment on pending trip, got %v", err)
	}
}
