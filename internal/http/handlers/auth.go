package handlers

import (
	"net/http"

	"echohorn/internal/http/middleware"
	"echohorn/internal/repositories"
	"echohorn/internal/services"

	"github.com/gin-gonic/gin"
)

func authService(c *gin.Context) services.AuthService {
	return services.AuthService{
		Repo:      repositories.UserRepository{},
		JWTSecret: jwtSecret,
		JWTTTL:    jwtTTL,
		RequestID: middleware.GetRequestID(c),
	}
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req services.RegisterInput
	if !BindJSONOrError(c, &req) {
		return
	}

	out, err := authService(c).Register(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req services.LoginInput
	if !BindJSONOrError(c, &req) {
		return
	}

	out, err := authService(c).Login(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/auth/me
func Me(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "authentication_error", "missing session", nil)
		return
	}

	user, err := authService(c).Me(sess)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
