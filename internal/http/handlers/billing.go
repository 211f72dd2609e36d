package handlers

import (
	"net/http"

	"echohorn/internal/http/middleware"
	"echohorn/internal/repositories"
	"echohorn/internal/services"

	"github.com/gin-gonic/gin"
)

func billingService(c *gin.Context) services.BillingService {
	return services.BillingService{
		Repo:      repositories.BillingRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/billing/:id (the id is the trip id, matching the client)
func GetBillingByTrip(c *gin.Context) {
	b, err := billingService(c).GetByTrip(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// GET /api/billing/customer/:email
func GetBillingsByCustomer(c *gin.Context) {
	list, err := billingService(c).ListByCustomer(c.Param("email"), pagination(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// PUT /api/billing/:id/pay?payment_method=
func PayBilling(c *gin.Context) {
	method := c.Query("payment_method")
	if method == "" {
		// also accept the method in a JSON body
		var req struct {
			PaymentMethod string `json:"paymentMethod"`
		}
		if c.Request.Body != nil {
			_ = c.ShouldBindJSON(&req)
		}
		method = req.PaymentMethod
	}

	b, err := billingService(c).Pay(c.Param("id"), method)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// GET /api/billing/:id/invoice
func GetBillingInvoicePDF(c *gin.Context) {
	svc := services.DocsService{
		BillingRepo: repositories.BillingRepository{},
		TripRepo:    repositories.TripRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateInvoice(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
