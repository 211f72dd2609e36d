package handlers

import (
	"net/http"
	"strconv"
	"time"

	intconfig "echohorn/internal/config"
	"echohorn/internal/domain"
	"echohorn/internal/http/middleware"
	"echohorn/internal/services"
	"echohorn/internal/utils"

	"github.com/gin-gonic/gin"
)

// Shared handler configuration, set once by the router at startup.
var (
	jwtSecret []byte
	jwtTTL    time.Duration
	rates     utils.BillingRates
	notifier  *services.Notifier
)

// Configure wires the environment into the handler package.
func Configure(env intconfig.Env) {
	jwtSecret = []byte(env.JWTSecret)
	jwtTTL = env.JWTTTL
	rates = utils.BillingRates{
		TaxRate:            env.TaxRate,
		LuggageRatePerUnit: env.LuggageRatePerUnit,
	}
	notifier = &services.Notifier{
		Host:       env.SMTPHost,
		Port:       env.SMTPPort,
		User:       env.SMTPUser,
		Pass:       env.SMTPPass,
		AdminEmail: env.AdminEmail,
	}
}

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}

// pagination reads ?limit and ?skip, leaving clamping to the repository.
func pagination(c *gin.Context) domain.Pagination {
	limit, _ := strconv.Atoi(c.Query("limit"))
	skip, _ := strconv.Atoi(c.Query("skip"))
	return domain.Pagination{Limit: limit, Skip: skip}
}
