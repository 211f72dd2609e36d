package repositories

import (
	"database/sql"
	"errors"

	intconfig "echohorn/internal/config"
	"echohorn/internal/domain"
	"echohorn/internal/domain/models"
)

type ReservationRepository struct {
	DB *sql.DB
}

func (r ReservationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const reservationColumns = `
	id,
	name,
	email,
	phone,
	company,
	COALESCE(fleet_size,''),
	COALESCE(message,''),
	COALESCE(notes,''),
	status,
	created_at,
	updated_at`

func scanReservation(row interface{ Scan(...any) error }) (models.Reservation, error) {
	var res models.Reservation
	err := row.Scan(
		&res.ID,
		&res.Name,
		&res.Email,
		&res.Phone,
		&res.Company,
		&res.FleetSize,
		&res.Message,
		&res.Notes,
		&res.Status,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	return res, err
}

func (r ReservationRepository) Create(res models.Reservation) error {
	_, err := r.db().Exec(`
		INSERT INTO reservations (id, name, email, phone, company, fleet_size, message, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		res.ID,
		res.Name,
		res.Email,
		res.Phone,
		res.Company,
		nullIfEmpty(res.FleetSize),
		nullIfEmpty(res.Message),
		res.Status,
		res.CreatedAt,
		res.UpdatedAt,
	)
	return err
}

func (r ReservationRepository) GetByID(id string) (models.Reservation, error) {
	res, err := scanReservation(r.db().QueryRow(`
		SELECT `+reservationColumns+`
		FROM reservations
		WHERE id = ?
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Reservation{}, domain.NotFoundError{Resource: "reservation"}
	}
	return res, err
}

func (r ReservationRepository) List(status string, p domain.Pagination) ([]models.Reservation, error) {
	p = p.Clamp()

	query := `SELECT ` + reservationColumns + ` FROM reservations`
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

	list := []models.Reservation{}
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, res)
	}
	return list, rows.Err()
}

// UpdateStatusNotes persists an administrator edit. The state machine is
// checked by the service before this is called.
func (r ReservationRepository) UpdateStatusNotes(res models.Reservation) error {
	result, err := r.db().Exec(`
		UPDATE reservations
		SET status = ?, notes = ?, updated_at = ?
		WHERE id = ?
	`, res.Status, nullIfEmpty(res.Notes), res.UpdatedAt, res.ID)
	if err != nil {
		return err
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		// Row may exist with identical values; distinguish via lookup.
		if _, err := r.GetByID(res.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r ReservationRepository) Delete(id string) error {
	result, err := r.db().Exec(`DELETE FROM reservations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: "reservation"}
	}
	return nil
}

// Stats aggregates counts by status plus the five most recent leads.
func (r ReservationRepository) Stats() (models.ReservationStats, error) {
	var stats models.ReservationStats

	err := r.db().QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(status = 'pending'), 0),
		       COALESCE(SUM(status = 'contacted'), 0),
		       COALESCE(SUM(status = 'completed'), 0)
		FROM reservations
	`).Scan(&stats.Total, &stats.Pending, &stats.Contacted, &stats.Completed)
	if err != nil {
		return stats, err
	}

	rows, err := r.db().Query(`
		SELECT ` + reservationColumns + `
		FROM reservations
		ORDER BY created_at DESC
		LIMIT 5
	`)
	if err != nil {
		return stats, err
	}
	defer rows.Close()

	stats.Recent = []models.Reservation{}
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return stats, err
		}
		stats.Recent = append(stats.Recent, res)
	}
	return stats, rows.Err()
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
