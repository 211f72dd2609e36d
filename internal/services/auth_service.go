package services

import (
	"strings"
	"time"

	"echohorn/internal/domain"
	"echohorn/internal/domain/models"
	"echohorn/internal/repositories"
	"echohorn/internal/utils"
	"echohorn/internal/validation"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues and honors bearer tokens for the customer and
// driver portals.
type AuthService struct {
	Repo      repositories.UserRepository
	JWTSecret []byte
	JWTTTL    time.Duration
	RequestID string
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	UserType string `json:"userType"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is the token plus the public user payload.
type AuthResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (s AuthService) Register(in RegisterInput) (AuthResult, error) {
	errs := validation.ValidateRegister(validation.RegisterForm{
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Password: in.Password,
		UserType: in.UserType,
	})
	if len(errs) > 0 {
		return AuthResult{}, domain.ValidationError{Fields: errs, Msg: "invalid registration"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, domain.InternalError{Msg: "failed to hash password", Err: err}
	}

	u := models.User{
		ID:        uuid.New().String(),
		Name:      utils.TrimOrEmpty(in.Name),
		Email:     strings.ToLower(utils.TrimOrEmpty(in.Email)),
		Phone:     utils.TrimOrEmpty(in.Phone),
		Role:      in.UserType,
		CreatedAt: utils.NowUTC(),
	}
	if err := s.Repo.Create(u, string(hash)); err != nil {
		return AuthResult{}, err
	}

	token, err := s.issueToken(u)
	if err != nil {
		return AuthResult{}, err
	}

	utils.LogEvent(s.RequestID, "auth", "register", "id="+u.ID+" role="+u.Role)
	return AuthResult{Token: token, User: u}, nil
}

// Login never reveals whether the email or the password was wrong.
func (s AuthService) Login(in LoginInput) (AuthResult, error) {
	email := strings.ToLower(utils.TrimOrEmpty(in.Email))
	if email == "" || in.Password == "" {
		return AuthResult{}, domain.AuthenticationError{}
	}

	rec, err := s.Repo.GetByEmail(email)
	if err != nil {
		if domain.IsNotFound(err) {
			return AuthResult{}, domain.AuthenticationError{Err: err}
		}
		return AuthResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(in.Password)); err != nil {
		return AuthResult{}, domain.AuthenticationError{Err: err}
	}

	token, err := s.issueToken(rec.User)
	if err != nil {
		return AuthResult{}, err
	}

	utils.LogEvent(s.RequestID, "auth", "login", "id="+rec.ID)
	return AuthResult{Token: token, User: rec.User}, nil
}

// Me resolves the authenticated session back to the stored account.
func (s AuthService) Me(sess domain.Session) (models.User, error) {
	return s.Repo.GetByID(sess.UserID)
}

func (s AuthService) issueToken(u models.User) (string, error) {
	ttl := s.JWTTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": u.ID,
		"email":   u.Email,
		"role":    u.Role,
		"exp":     time.Now().Add(ttl).Unix(),
	})
	signed, err := token.SignedString(s.JWTSecret)
	if err != nil {
		return "", domain.InternalError{Msg: "failed to sign token", Err: err}
	}
	return signed, nil
}
