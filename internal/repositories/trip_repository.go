package repositories

import (
	"database/sql"
	"errors"

	intconfig "echohorn/internal/config"
	"echohorn/internal/domain"
	"echohorn/internal/domain/models"
)

type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const tripColumns = `
	id,
	trip_type,
	pickup_city,
	drop_city,
	pickup_date,
	pickup_time,
	luggage_count,
	vehicle_type,
	vehicle_name,
	price_per_km,
	estimated_distance,
	estimated_fare,
	actual_distance,
	actual_fare,
	customer_name,
	customer_phone,
	customer_email,
	COALESCE(notes,''),
	status,
	COALESCE(assigned_driver_id,''),
	COALESCE(assigned_truck_id,''),
	created_at,
	updated_at`

func scanTrip(row interface{ Scan(...any) error }) (models.Trip, error) {
	var t models.Trip
	var estDist, estFare, actDist, actFare sql.NullFloat64
	err := row.Scan(
		&t.ID,
		&t.TripType,
		&t.PickupCity,
		&t.DropCity,
		&t.PickupDate,
		&t.PickupTime,
		&t.LuggageCount,
		&t.VehicleType,
		&t.VehicleName,
		&t.PricePerKm,
		&estDist,
		&estFare,
		&actDist,
		&actFare,
		&t.CustomerName,
		&t.CustomerPhone,
		&t.CustomerEmail,
		&t.Notes,
		&t.Status,
		&t.AssignedDriverID,
		&t.AssignedTruckID,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return t, err
	}
	t.EstimatedDistance = nullFloatPtr(estDist)
	t.EstimatedFare = nullFloatPtr(estFare)
	t.ActualDistance = nullFloatPtr(actDist)
	t.ActualFare = nullFloatPtr(actFare)
	return t, nil
}

func (r TripRepository) Create(t models.Trip) error {
	_, err := r.db().Exec(`
		INSERT INTO trips (
		  id, trip_type, pickup_city, drop_city, pickup_date, pickup_time,
		  luggage_count, vehicle_type, vehicle_name, price_per_km,
		  estimated_distance, estimated_fare, customer_name, customer_phone,
		  customer_email, notes, status, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		t.ID, t.TripType, t.PickupCity, t.DropCity, t.PickupDate, t.PickupTime,
		t.LuggageCount, t.VehicleType, t.VehicleName, t.PricePerKm,
		floatPtrValue(t.EstimatedDistance), floatPtrValue(t.EstimatedFare),
		t.CustomerName, t.CustomerPhone, t.CustomerEmail,
		nullIfEmpty(t.Notes), t.Status, t.CreatedAt, t.UpdatedAt,
	)
	return err
}

func (r TripRepository) GetByID(id string) (models.Trip, error) {
	t, err := scanTrip(r.db().QueryRow(`
		SELECT `+tripColumns+`
		FROM trips
		WHERE id = ?
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Trip{}, domain.NotFoundError{Resource: "trip"}
	}
	return t, err
}

type TripFilter struct {
	Status        string
	CustomerEmail string
}

func (r TripRepository) List(f TripFilter, p domain.Pagination) ([]models.Trip, error) {
	p = p.Clamp()

	query := `SELECT ` + tripColumns + ` FROM trips`
	where := ""
	args := []any{}
	if f.Status != "" {
		where = ` WHERE status = ?`
		args = append(args, f.Status)
	}
	if f.CustomerEmail != "" {
		if where == "" {
			where = ` WHERE customer_email = ?`
		} else {
			where += ` AND customer_email = ?`
		}
		args = append(args, f.CustomerEmail)
	}
	query += where + ` ORDER BY created_at DESC LIMIT ? OFFSET ?`
	args = append(args, p.Limit, p.Skip)

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Update persists the mutable trip fields after the service has run the
// state machine and assignment checks. fromStatus is the status the
// caller read before mutating; the guard makes the write a no-op when a
// concurrent request moved the trip first, and that surfaces as a
// conflict.
func (r TripRepository) Update(t models.Trip, fromStatus string) error {
	res, err := r.db().Exec(`
		UPDATE trips
		SET status = ?,
		    assigned_driver_id = ?,
		    assigned_truck_id = ?,
		    actual_distance = ?,
		    actual_fare = ?,
		    notes = ?,
		    updated_at = ?
		WHERE id = ? AND status = ?
	`,
		t.Status,
		nullIfEmpty(t.AssignedDriverID),
		nullIfEmpty(t.AssignedTruckID),
		floatPtrValue(t.ActualDistance),
		floatPtrValue(t.ActualFare),
		nullIfEmpty(t.Notes),
		t.UpdatedAt,
		t.ID,
		fromStatus,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ConflictError{Resource: "trip", Msg: "trip was modified by another request"}
	}
	return nil
}

func (r TripRepository) CountByCustomer(email string) (total, completed int, err error) {
	err = r.db().QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(status = 'completed'), 0)
		FROM trips
		WHERE customer_email = ?
	`, email).Scan(&total, &completed)
	return total, completed, err
}

// ActiveByCustomer returns all non-terminal trips for a customer, most
// recently updated first. The caller treats more than one row as a data
// anomaly.
func (r TripRepository) ActiveByCustomer(email string) ([]models.Trip, error) {
	rows, err := r.db().Query(`
		SELECT `+tripColumns+`
		FROM trips
		WHERE customer_email = ?
		  AND status IN ('confirmed', 'assigned', 'in_progress')
		ORDER BY updated_at DESC
	`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func nullFloatPtr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

func floatPtrValue(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}
