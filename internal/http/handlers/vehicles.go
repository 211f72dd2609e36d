package handlers

import (
	"net/http"

	"echohorn/internal/domain"

	"github.com/gin-gonic/gin"
)

// GET /api/vehicles
func GetVehicleTypes(c *gin.Context) {
	c.JSON(http.StatusOK, domain.VehicleTypes())
}

// GET /api/vehicles/:key
func GetVehicleTypeByKey(c *gin.Context) {
	vt, ok := domain.LookupVehicleType(c.Param("key"))
	if !ok {
		RespondDomainError(c, domain.NotFoundError{Resource: "vehicle type"})
		return
	}
	c.JSON(http.StatusOK, vt)
}

// GET /api/cities
func GetCities(c *gin.Context) {
	c.JSON(http.StatusOK, domain.Cities())
}
