package repositories

import (
	"database/sql"
	"errors"

	intconfig "echohorn/internal/config"
	"echohorn/internal/domain"
	"echohorn/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

const mysqlDuplicateEntry = 1062

type DriverRepository struct {
	DB *sql.DB
}

func (r DriverRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const driverColumns = `
	id,
	name,
	phone,
	email,
	license_number,
	license_expiry,
	address,
	experience,
	COALESCE(profile_photo,''),
	rating,
	total_trips,
	status,
	created_at,
	updated_at`

func scanDriver(row interface{ Scan(...any) error }) (models.Driver, error) {
	var d models.Driver
	err := row.Scan(
		&d.ID,
		&d.Name,
		&d.Phone,
		&d.Email,
		&d.LicenseNumber,
		&d.LicenseExpiry,
		&d.Address,
		&d.Experience,
		&d.ProfilePhoto,
		&d.Rating,
		&d.TotalTrips,
		&d.Status,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	return d, err
}

func (r DriverRepository) Create(d models.Driver) error {
	_, err := r.db().Exec(`
		INSERT INTO drivers (
		  id, name, phone, email, license_number, license_expiry, address,
		  experience, profile_photo, rating, total_trips, status, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		d.ID, d.Name, d.Phone, d.Email, d.LicenseNumber, d.LicenseExpiry, d.Address,
		d.Experience, nullIfEmpty(d.ProfilePhoto), d.Rating, d.TotalTrips, d.Status,
		d.CreatedAt, d.UpdatedAt,
	)
	if me := (*mysql.MySQLError)(nil); errors.As(err, &me) && me.Number == mysqlDuplicateEntry {
		return domain.ConflictError{Resource: "driver", Msg: "email already registered", Err: err}
	}
	return err
}

func (r DriverRepository) GetByID(id string) (models.Driver, error) {
	d, err := scanDriver(r.db().QueryRow(`
		SELECT `+driverColumns+`
		FROM drivers
		WHERE id = ?
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Driver{}, domain.NotFoundError{Resource: "driver"}
	}
	return d, err
}

func (r DriverRepository) List(status string, p domain.Pagination) ([]models.Driver, error) {
	p = p.Clamp()

	query := `SELECT ` + driverColumns + ` FROM drivers`
	args := []any{}
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC LIMIT ? OFFSET ?`
	args = append(args, p.Limit, p.Skip)

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Driver{}
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
