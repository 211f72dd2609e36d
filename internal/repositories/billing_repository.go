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

type BillingRepository struct {
	DB *sql.DB
}

func (r BillingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const billingColumns = `
	id,
	trip_id,
	customer_id,
	customer_name,
	vehicle_name,
	distance,
	basefare,
	luggage_charge,
	taxes,
	total_amount,
	payment_status,
	COALESCE(payment_method,''),
	paid_at,
	created_at`

func scanBilling(row interface{ Scan(...any) error }) (models.Billing, error) {
	var b models.Billing
	var paidAt sql.NullTime
	err := row.Scan(
		&b.ID,
		&b.TripID,
		&b.CustomerID,
		&b.CustomerName,
		&b.VehicleName,
		&b.Distance,
		&b.Basefare,
		&b.LuggageCharge,
		&b.Taxes,
		&b.TotalAmount,
		&b.PaymentStatus,
		&b.PaymentMethod,
		&paidAt,
		&b.CreatedAt,
	)
	if err != nil {
		return b, err
	}
	if paidAt.Valid {
		t := paidAt.Time
		b.PaidAt = &t
	}
	return b, nil
}

// Create inserts the invoice row. The unique key on trip_id makes this
// an atomic check-and-insert: a concurrent duplicate surfaces as a
// ConflictError, never as a second invoice.
func (r BillingRepository) Create(b models.Billing) error {
	_, err := r.db().Exec(`
		INSERT INTO billings (
		  id, trip_id, customer_id, customer_name, vehicle_name, distance,
		  basefare, luggage_charge, taxes, total_amount, payment_status, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		b.ID, b.TripID, b.CustomerID, b.CustomerName, b.VehicleName, b.Distance,
		b.Basefare, b.LuggageCharge, b.Taxes, b.TotalAmount, b.PaymentStatus, b.CreatedAt,
	)
	if me := (*mysql.MySQLError)(nil); errors.As(err, &me) && me.Number == mysqlDuplicateEntry {
		return domain.ConflictError{Resource: "billing", Msg: "billing already exists for trip", Err: err}
	}
	return err
}

func (r BillingRepository) GetByID(id string) (models.Billing, error) {
	b, err := scanBilling(r.db().QueryRow(`
		SELECT `+billingColumns+`
		FROM billings
		WHERE id = ?
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Billing{}, domain.NotFoundError{Resource: "billing"}
	}
	return b, err
}

func (r BillingRepository) GetByTripID(tripID string) (models.Billing, error) {
	b, err := scanBilling(r.db().QueryRow(`
		SELECT `+billingColumns+`
		FROM billings
		WHERE trip_id = ?
	`, tripID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Billing{}, domain.NotFoundError{Resource: "billing"}
	}
	return b, err
}

func (r BillingRepository) ListByCustomer(email string, p domain.Pagination) ([]models.Billing, error) {
	p = p.Clamp()

	rows, err := r.db().Query(`
		SELECT `+billingColumns+`
		FROM billings
		WHERE customer_id = ?
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, email, p.Limit, p.Skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Billing{}
	for rows.Next() {
		b, err := scanBilling(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// PaymentTotals returns the paid sum and pending count for a customer.
func (r BillingRepository) PaymentTotals(email string) (totalSpent float64, pendingCount int, err error) {
	err = r.db().QueryRow(`
		SELECT COALESCE(SUM(CASE WHEN payment_status = 'paid' THEN total_amount ELSE 0 END), 0),
		       COALESCE(SUM(payment_status = 'pending'), 0)
		FROM billings
		WHERE customer_id = ?
	`, email).Scan(&totalSpent, &pendingCount)
	return totalSpent, pendingCount, err
}

// MarkPaid records the one-way pending -> paid transition. The status
// guard in the WHERE clause keeps a concurrent second payment from
// overwriting paid_at.
func (r BillingRepository) MarkPaid(id, method string, paidAt time.Time) error {
	result, err := r.db().Exec(`
		UPDATE billings
		SET payment_status = 'paid', payment_method = ?, paid_at = ?
		WHERE id = ? AND payment_status = 'pending'
	`, method, paidAt, id)
	if err != nil {
		return err
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		b, err := r.GetByID(id)
		if err != nil {
			return err
		}
		return domain.CheckPaymentTransition(b.PaymentStatus, domain.PaymentPaid)
	}
	return nil
}
