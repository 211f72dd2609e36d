package handlers

import (
	"net/http"

	"echohorn/internal/domain/models"
	"echohorn/internal/http/middleware"
	"echohorn/internal/repositories"
	"echohorn/internal/services"

	"github.com/gin-gonic/gin"
)

func tripService(c *gin.Context) services.TripService {
	return services.TripService{
		Repo:        repositories.TripRepository{},
		BillingRepo: repositories.BillingRepository{},
		DriverRepo:  repositories.DriverRepository{},
		TruckRepo:   repositories.TruckRepository{},
		Rates:       rates,
		RequestID:   middleware.GetRequestID(c),
	}
}

// POST /api/trips
func CreateTrip(c *gin.Context) {
	var req services.TripInput
	if !BindJSONOrError(c, &req) {
		return
	}

	trip, err := tripService(c).Create(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

// GET /api/trips
func GetTrips(c *gin.Context) {
	filter := repositories.TripFilter{
		Status:        c.Query("status"),
		CustomerEmail: c.Query("customer_email"),
	}
	list, err := tripService(c).List(filter, pagination(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/trips/:id
func GetTripByID(c *gin.Context) {
	trip, err := tripService(c).Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// PUT /api/trips/:id
func UpdateTrip(c *gin.Context) {
	var req models.TripUpdate
	if !BindJSONOrError(c, &req) {
		return
	}

	trip, err := tripService(c).Update(c.Param("id"), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}
