package handlers

import (
	"net/http"

	"echohorn/internal/http/middleware"
	"echohorn/internal/repositories"
	"echohorn/internal/services"

	"github.com/gin-gonic/gin"
)

func driverService(c *gin.Context) services.DriverService {
	return services.DriverService{
		Repo:      repositories.DriverRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

// POST /api/drivers
func CreateDriver(c *gin.Context) {
	var req services.DriverInput
	if !BindJSONOrError(c, &req) {
		return
	}

	d, err := driverService(c).Create(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

// GET /api/drivers
func GetDrivers(c *gin.Context) {
	list, err := driverService(c).List(c.Query("status"), pagination(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/drivers/:id
func GetDriverByID(c *gin.Context) {
	d, err := driverService(c).Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
