package repositories

import (
	"database/sql"
	"errors"
	"time"

	intconfig "echohorn/internal/config"
	"echohorn/internal/domain"
	"echohorn/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

type TruckRepository struct {
	DB *sql.DB
}

func (r TruckRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const truckColumns = `
	id,
	vehicle_type,
	vehicle_name,
	registration_number,
	model,
	year,
	color,
	insurance_number,
	insurance_expiry,
	fitness_expiry,
	COALESCE(driver_id,''),
	COALESCE(driver_name,''),
	owner_id,
	owner_name,
	owner_phone,
	status,
	loc_latitude,
	loc_longitude,
	loc_heading,
	loc_speed,
	COALESCE(loc_updated_at,''),
	created_at,
	updated_at`

func scanTruck(row interface{ Scan(...any) error }) (models.Truck, error) {
	var t models.Truck
	var lat, lon, heading, speed sql.NullFloat64
	var locUpdated string
	err := row.Scan(
		&t.ID,
		&t.VehicleType,
		&t.VehicleName,
		&t.RegistrationNumber,
		&t.Model,
		&t.Year,
		&t.Color,
		&t.InsuranceNumber,
		&t.InsuranceExpiry,
		&t.FitnessExpiry,
		&t.DriverID,
		&t.DriverName,
		&t.OwnerID,
		&t.OwnerName,
		&t.OwnerPhone,
		&t.Status,
		&lat,
		&lon,
		&heading,
		&speed,
		&locUpdated,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return t, err
	}
	if lat.Valid && lon.Valid {
		t.CurrentLocation = &models.TruckLocation{
			Latitude:  lat.Float64,
			Longitude: lon.Float64,
			Heading:   nullFloatPtr(heading),
			Speed:     nullFloatPtr(speed),
			UpdatedAt: locUpdated,
		}
	}
	return t, nil
}

func (r TruckRepository) Create(t models.Truck) error {
	_, err := r.db().Exec(`
		INSERT INTO trucks (
		  id, vehicle_type, vehicle_name, registration_number, model, year, color,
		  insurance_number, insurance_expiry, fitness_expiry, driver_id, driver_name,
		  owner_id, owner_name, owner_phone, status, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		t.ID, t.VehicleType, t.VehicleName, t.RegistrationNumber, t.Model, t.Year, t.Color,
		t.InsuranceNumber, t.InsuranceExpiry, t.FitnessExpiry,
		nullIfEmpty(t.DriverID), nullIfEmpty(t.DriverName),
		t.OwnerID, t.OwnerName, t.OwnerPhone, t.Status, t.CreatedAt, t.UpdatedAt,
	)
	if me := (*mysql.MySQLError)(nil); errors.As(err, &me) && me.Number == mysqlDuplicateEntry {
		return domain.ConflictError{Resource: "truck", Msg: "registration number already registered", Err: err}
	}
	return err
}

func (r TruckRepository) GetByID(id string) (models.Truck, error) {
	t, err := scanTruck(r.db().QueryRow(`
		SELECT `+truckColumns+`
		FROM trucks
		WHERE id = ?
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Truck{}, domain.NotFoundError{Resource: "truck"}
	}
	return t, err
}

type TruckFilter struct {
	Status  string
	OwnerID string
}

func (r TruckRepository) List(f TruckFilter, p domain.Pagination) ([]models.Truck, error) {
	p = p.Clamp()

	query := `SELECT ` + truckColumns + ` FROM trucks`
	where := ""
	args := []any{}
	if f.Status != "" {
		where = ` WHERE status = ?`
		args = append(args, f.Status)
	}
	if f.OwnerID != "" {
		if where == "" {
			where = ` WHERE owner_id = ?`
		} else {
			where += ` AND owner_id = ?`
		}
		args = append(args, f.OwnerID)
	}
	query += where + ` ORDER BY created_at DESC LIMIT ? OFFSET ?`
	args = append(args, p.Limit, p.Skip)

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Truck{}
	for rows.Next() {
		t, err := scanTruck(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// UpdateLocation stores a telemetry push and bumps updated_at.
func (r TruckRepository) UpdateLocation(id string, loc models.TruckLocation, updatedAt time.Time) error {
	result, err := r.db().Exec(`
		UPDATE trucks
		SET loc_latitude = ?,
		    loc_longitude = ?,
		    loc_heading = ?,
		    loc_speed = ?,
		    loc_updated_at = ?,
		    updated_at = ?
		WHERE id = ?
	`,
		loc.Latitude,
		loc.Longitude,
		floatPtrValue(loc.Heading),
		floatPtrValue(loc.Speed),
		loc.UpdatedAt,
		updatedAt,
		id,
	)
	if err != nil {
		return err
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		if _, err := r.GetByID(id); err != nil {
			return err
		}
	}
	return nil
}
