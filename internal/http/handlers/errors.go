package handlers

import (
	"errors"
	"net/http"

	"echohorn/internal/domain"
	"echohorn/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, gin.H{
		"error":      message,
		"code":       code,
		"details":    details,
		"request_id": middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses. Validation
// details carry the per-field messages for the form to display.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		var verr domain.ValidationError
		errors.As(err, &verr)
		var details any
		if len(verr.Fields) > 0 {
			details = verr.Fields
		}
		respondError(c, http.StatusBadRequest, "validation_error", verr.Error(), details)
	case domain.IsStateTransition(err):
		respondError(c, http.StatusBadRequest, "invalid_transition", err.Error(), nil)
	case domain.IsAuthentication(err):
		respondError(c, http.StatusUnauthorized, "authentication_error", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error(), nil)
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong", nil)
	}
}
