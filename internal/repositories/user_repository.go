package repositories

import (
	"database/sql"
	"errors"

	intconfig "echohorn/internal/config"
	"echohorn/internal/domain"
	"echohorn/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// UserRecord pairs the public user with its stored credential hash.
// The hash never leaves the repository/service boundary.
type UserRecord struct {
	models.User
	PasswordHash string
}

func (r UserRepository) Create(u models.User, passwordHash string) error {
	_, err := r.db().Exec(`
		INSERT INTO users (id, name, email, phone, password_hash, role, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, u.ID, u.Name, u.Email, u.Phone, passwordHash, u.Role, u.CreatedAt)
	if me := (*mysql.MySQLError)(nil); errors.As(err, &me) && me.Number == mysqlDuplicateEntry {
		return domain.ConflictError{Resource: "user", Msg: "email already registered", Err: err}
	}
	return err
}

func (r UserRepository) GetByEmail(email string) (UserRecord, error) {
	var rec UserRecord
	err := r.db().QueryRow(`
		SELECT id, name, email, phone, password_hash, role, created_at
		FROM users
		WHERE email = ?
	`, email).Scan(
		&rec.ID,
		&rec.Name,
		&rec.Email,
		&rec.Phone,
		&rec.PasswordHash,
		&rec.Role,
		&rec.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return UserRecord{}, domain.NotFoundError{Resource: "user"}
	}
	return rec, err
}

func (r UserRepository) GetByID(id string) (models.User, error) {
	var u models.User
	err := r.db().QueryRow(`
		SELECT id, name, email, phone, role, created_at
		FROM users
		WHERE id = ?
	`, id).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Phone,
		&u.Role,
		&u.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, domain.NotFoundError{Resource: "user"}
	}
	return u, err
}
