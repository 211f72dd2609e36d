package api

import (
	"log"
	stdhttp "net/http"

	intconfig "echohorn/internal/config"
	h "echohorn/internal/http/handlers"
	"echohorn/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.Configure(env)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/routes", h.Routes)

		// Reference data
		api.GET("/vehicles", h.GetVehicleTypes)
		api.GET("/vehicles/:key", h.GetVehicleTypeByKey)
		api.GET("/cities", h.GetCities)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/me", middleware.RequireAuth([]byte(env.JWTSecret)), h.Me)

		// Reservations (trial-booking leads)
		reservations := api.Group("/reservations")
		reservations.POST("", h.CreateReservation)
		reservations.GET("", h.GetReservations)
		reservations.GET("/stats", h.GetReservationStats)
		reservations.GET("/:id", h.GetReservationByID)
		reservations.PUT("/:id", h.UpdateReservation)
		reservations.DELETE("/:id", h.DeleteReservation)

		// Trips
		trips := api.Group("/trips")
		trips.POST("", h.CreateTrip)
		trips.GET("", h.GetTrips)
		trips.GET("/:id", h.GetTripByID)
		trips.PUT("/:id", h.UpdateTrip)

		// Drivers
		drivers := api.Group("/drivers")
		drivers.POST("", h.CreateDriver)
		drivers.GET("", h.GetDrivers)
		drivers.GET("/:id", h.GetDriverByID)

		// Trucks
		trucks := api.Group("/trucks")
		trucks.POST("", h.CreateTruck)
		trucks.GET("", h.GetTrucks)
		trucks.GET("/:id", h.GetTruckByID)
		trucks.PUT("/:id/location", h.UpdateTruckLocation)

		// Billing
		billing := api.Group("/billing")
		billing.GET("/customer/:email", h.GetBillingsByCustomer)
		billing.GET("/:id", h.GetBillingByTrip)
		billing.PUT("/:id/pay", h.PayBilling)
		billing.GET("/:id/invoice", h.GetBillingInvoicePDF)

		// Dashboard
		api.GET("/dashboard/:email", h.GetDashboard)
	}

	h.SetRouter(r)
	return r
}
