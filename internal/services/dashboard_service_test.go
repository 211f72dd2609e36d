package services

import (
	"database/sql/driver"
	"encoding/json"
	"testing"
	"time"

	intconfig "echohorn/internal/config"
	"echohorn/internal/domain"
	"echohorn/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

var driverCols = []string{
	"id", "name", "phone", "email", "license_number", "license_expiry",
	"address", "experience", "profile_photo", "rating", "total_trips",
	"status", "created_at", "updated_at",
}

func driverRow() []driver.Value {
	now := time.Now().UTC()
	return []driver.Value{
		"driver-1", "Kumar", "9876543211", "kumar@example.com", "DL-123456",
		"2027-01-01", "12 MG Road, Pune", 8, "", 5.0, 12,
		domain.DriverActive, now, now,
	}
}

var truckCols = []string{
	"id", "vehicle_type", "vehicle_name", "registration_number", "model",
	"year", "color", "insurance_number", "insurance_expiry", "fitness_expiry",
	"driver_id", "driver_name", "owner_id", "owner_name", "owner_phone",
	"status", "loc_latitude", "loc_longitude", "loc_heading", "loc_speed",
	"loc_updated_at", "created_at", "updated_at",
}

func truckRow() []driver.Value {
	now := time.Now().UTC()
	return []driver.Value{
		"truck-1", "sedan", "Sedan (4+1)", "MH12AB1234", "Dzire",
		2022, "white", "INS-98765", "2027-01-01", "2027-01-01",
		"driver-1", "Kumar", "owner-1", "Owner", "9876543212",
		domain.TruckOnTrip, nil, nil, nil, nil,
		"", now, now,
	}
}

func newDashboardService(t *testing.T) (DashboardService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	intconfig.DB = db
	mock.MatchExpectationsInOrder(false)
	svc := DashboardService{
		TripRepo:    repositories.TripRepository{DB: db},
		BillingRepo: repositories.BillingRepository{DB: db},
		DriverRepo:  repositories.DriverRepository{DB: db},
		TruckRepo:   repositories.TruckRepository{DB: db},
	}
	return svc, mock, func() { db.Close() }
}

func TestDashboardComposesSummary(t *testing.T) {
	svc, mock, done := newDashboardService(t)
	defer done()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\), (.+) FROM trips").
		WillReturnRows(sqlmock.NewRows([]string{"total", "completed"}).AddRow(7, 4))
	mock.ExpectQuery("SELECT (.+) FROM billings\\s+WHERE customer_id").
		WillReturnRows(sqlmock.NewRows([]string{"spent", "pending"}).AddRow(5230.50, 2))
	mock.ExpectQuery("SELECT (.+) FROM trips WHERE customer_email = \\? ORDER BY created_at").
		WillReturnRows(sqlmock.NewRows(tripCols))
	mock.ExpectQuery("SELECT (.+) FROM billings\\s+WHERE customer_id = \\?\\s+ORDER BY").
		WillReturnRows(sqlmock.NewRows(billingCols))
	mock.ExpectQuery("status IN").
		WillReturnRows(sqlmock.NewRows(tripCols))

	d, err := svc.Get("asha@example.com")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if d.Summary.TotalTrips != 7 || d.Summary.CompletedTrips != 4 {
		t.Fatalf("unexpected trip counts: %+v", d.Summary)
	}
	if d.Summary.TotalSpent != 5230.50 || d.Summary.PendingPayments != 2 {
		t.Fatalf("unexpected payment summary: %+v", d.Summary)
	}
	if d.ActiveTrip != nil {
		t.Fatalf("expected no active trip")
	}
	if d.RecentTrips == nil || d.RecentBillings == nil {
		t.Fatalf("recent lists must be non-nil even when empty")
	}
}

func TestDashboardPicksLatestActiveTrip(t *testing.T) {
	svc, mock, done := newDashboardService(t)
	defer done()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\), (.+) FROM trips").
		WillReturnRows(sqlmock.NewRows([]string{"total", "completed"}).AddRow(2, 0))
	mock.ExpectQuery("SELECT (.+) FROM billings\\s+WHERE customer_id").
		WillReturnRows(sqlmock.NewRows([]string{"spent", "pending"}).AddRow(0.0, 0))
	mock.ExpectQuery("SELECT (.+) FROM trips WHERE customer_email = \\? ORDER BY created_at").
		WillReturnRows(sqlmock.NewRows(tripCols))
	mock.ExpectQuery("SELECT (.+) FROM billings\\s+WHERE customer_id = \\?\\s+ORDER BY").
		WillReturnRows(sqlmock.NewRows(billingCols))

	// Two active trips is a data anomaly; the repo orders by updated_at
	// DESC so the first row is the one shown.
	first := tripRow(domain.TripInProgress)
	second := tripRow(domain.TripConfirmed)
	second[0] = "trip-2"
	mock.ExpectQuery("status IN").
		WillReturnRows(sqlmock.NewRows(tripCols).AddRow(first...).AddRow(second...))

	d, err := svc.Get("asha@example.com")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if d.ActiveTrip == nil {
		t.Fatalf("expected an active trip")
	}
	if d.ActiveTrip.ID != "trip-1" {
		t.Fatalf("expected the most recently updated trip, got %q", d.ActiveTrip.ID)
	}
}

func TestDashboardResolvesAssignmentDetails(t *testing.T) {
	svc, mock, done := newDashboardService(t)
	defer done()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\), (.+) FROM trips").
		WillReturnRows(sqlmock.NewRows([]string{"total", "completed"}).AddRow(1, 0))
	mock.ExpectQuery("SELECT (.+) FROM billings\\s+WHERE customer_id").
		WillReturnRows(sqlmock.NewRows([]string{"spent", "pending"}).AddRow(0.0, 0))
	mock.ExpectQuery("SELECT (.+) FROM trips WHERE customer_email = \\? ORDER BY created_at").
		WillReturnRows(sqlmock.NewRows(tripCols))
	mock.ExpectQuery("SELECT (.+) FROM billings\\s+WHERE customer_id = \\?\\s+ORDER BY").
		WillReturnRows(sqlmock.NewRows(billingCols))

	active := tripRow(domain.TripAssigned)
	active[19] = "driver-1"
	active[20] = "truck-1"
	mock.ExpectQuery("status IN").
		WillReturnRows(sqlmock.NewRows(tripCols).AddRow(active...))
	mock.ExpectQuery("SELECT (.+) FROM drivers").
		WillReturnRows(sqlmock.NewRows(driverCols).AddRow(driverRow()...))
	mock.ExpectQuery("SELECT (.+) FROM trucks").
		WillReturnRows(sqlmock.NewRows(truckCols).AddRow(truckRow()...))

	d, err := svc.Get("asha@example.com")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if d.DriverDetails == nil || d.DriverDetails.ID != "driver-1" {
		t.Fatalf("expected driver details, got %+v", d.DriverDetails)
	}
	if d.TruckDetails == nil || d.TruckDetails.ID != "truck-1" {
		t.Fatalf("expected truck details, got %+v", d.TruckDetails)
	}
}

func TestDashboardWireShape(t *testing.T) {
	svc, mock, done := newDashboardService(t)
	defer done()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\), (.+) FROM trips").
		WillReturnRows(sqlmock.NewRows([]string{"total", "completed"}).AddRow(0, 0))
	mock.ExpectQuery("SELECT (.+) FROM billings\\s+WHERE customer_id").
		WillReturnRows(sqlmock.NewRows([]string{"spent", "pending"}).AddRow(0.0, 0))
	mock.ExpectQuery("SELECT (.+) FROM trips WHERE customer_email = \\? ORDER BY created_at").
		WillReturnRows(sqlmock.NewRows(tripCols))
	mock.ExpectQuery("SELECT (.+) FROM billings\\s+WHERE customer_id = \\?\\s+ORDER BY").
		WillReturnRows(sqlmock.NewRows(billingCols))
	mock.ExpectQuery("status IN").
		WillReturnRows(sqlmock.NewRows(tripCols))

	d, err := svc.Get("asha@example.com")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}

	// truckDetails and driverDetails are top-level keys, present as
	// null even when nothing is assigned.
	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	for _, key := range []string{"summary", "activeTrip", "truckDetails", "driverDetails", "recentTrips", "recentBillings"} {
		if _, ok := payload[key]; !ok {
			t.Errorf("dashboard payload missing %q", key)
		}
	}
	if string(payload["truckDetails"]) != "null" || string(payload["driverDetails"]) != "null" {
		t.Fatalf("unassigned details must be null, got %s / %s", payload["truckDetails"], payload["driverDetails"])
	}
}

func TestDashboardRequiresEmail(t *testing.T) {
	svc, _, done := newDashboardService(t)
	defer done()

	_, err := svc.Get("")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
