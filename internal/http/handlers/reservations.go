package handlers

import (
	"net/http"

	"echohorn/internal/http/middleware"
	"echohorn/internal/repositories"
	"echohorn/internal/services"

	"github.com/gin-gonic/gin"
)

func reservationService(c *gin.Context) services.ReservationService {
	return services.ReservationService{
		Repo:      repositories.ReservationRepository{},
		Notifier:  notifier,
		RequestID: middleware.GetRequestID(c),
	}
}

// POST /api/reservations
func CreateReservation(c *gin.Context) {
	var req services.ReservationInput
	if !BindJSONOrError(c, &req) {
		return
	}

	res, err := reservationService(c).Create(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// GET /api/reservations
func GetReservations(c *gin.Context) {
	list, err := reservationService(c).List(c.Query("status"), pagination(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/reservations/stats
func GetReservationStats(c *gin.Context) {
	stats, err := reservationService(c).Stats()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /api/reservations/:id
func GetReservationByID(c *gin.Context) {
	res, err := reservationService(c).Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// PUT /api/reservations/:id
func UpdateReservation(c *gin.Context) {
	var req services.ReservationUpdateInput
	if !BindJSONOrError(c, &req) {
		return
	}

	res, err := reservationService(c).Update(c.Param("id"), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DELETE /api/reservations/:id
func DeleteReservation(c *gin.Context) {
	if err := reservationService(c).Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reservation deleted"})
}
