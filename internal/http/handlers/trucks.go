package handlers

import (
	"net/http"

	"echohorn/internal/http/middleware"
	"echohorn/internal/repositories"
	"echohorn/internal/services"

	"github.com/gin-gonic/gin"
)

func truckService(c *gin.Context) services.TruckService {
	return services.TruckService{
		Repo:       repositories.TruckRepository{},
		DriverRepo: repositories.DriverRepository{},
		RequestID:  middleware.GetRequestID(c),
	}
}

// POST /api/trucks
func CreateTruck(c *gin.Context) {
	var req services.TruckInput
	if !BindJSONOrError(c, &req) {
		return
	}

	t, err := truckService(c).Create(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// GET /api/trucks
func GetTrucks(c *gin.Context) {
	filter := repositories.TruckFilter{
		Status:  c.Query("status"),
		OwnerID: c.Query("owner_id"),
	}
	list, err := truckService(c).List(filter, pagination(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/trucks/:id
func GetTruckByID(c *gin.Context) {
	t, err := truckService(c).Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// PUT /api/trucks/:id/location
func UpdateTruckLocation(c *gin.Context) {
	var req services.LocationInput
	if !BindJSONOrError(c, &req) {
		return
	}

	t, err := truckService(c).UpdateLocation(c.Param("id"), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}
