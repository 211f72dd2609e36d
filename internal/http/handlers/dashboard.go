package handlers

import (
	"net/http"

	"echohorn/internal/http/middleware"
	"echohorn/internal/repositories"
	"echohorn/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/dashboard/:email
func GetDashboard(c *gin.Context) {
	svc := services.DashboardService{
		TripRepo:    repositories.TripRepository{},
		BillingRepo: repositories.BillingRepository{},
		DriverRepo:  repositories.DriverRepository{},
		TruckRepo:   repositories.TruckRepository{},
		RequestID:   middleware.GetRequestID(c),
	}

	d, err := svc.Get(c.Param("email"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
