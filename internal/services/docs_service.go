package services

import (
	"bytes"
	"fmt"

	"echohorn/internal/domain/models"
	"echohorn/internal/repositories"
	"echohorn/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders invoice PDFs for completed trips.
type DocsService struct {
	BillingRepo repositories.BillingRepository
	TripRepo    repositories.TripRepository
	RequestID   string
}

// GenerateInvoice renders the invoice for a billing as a PDF.
func (s DocsService) GenerateInvoice(billingID string) ([]byte, string, error) {
	b, err := s.BillingRepo.GetByID(billingID)
	if err != nil {
		return nil, "", err
	}
	trip, err := s.TripRepo.GetByID(b.TripID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_invoice", "billing_id="+billingID)
	return buildInvoicePDF(b, trip)
}

func buildInvoicePDF(b models.Billing, trip models.Trip) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "ECHOHORN INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice No : INV-"+utils.SafeFilenamePart(b.ID))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Date       : "+utils.FormatDateTime(b.CreatedAt))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Name  : "+b.CustomerName)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Email : "+b.CustomerID)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Trip:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("%s -> %s (%s %s)", trip.PickupCity, trip.DropCity, trip.PickupDate, trip.PickupTime))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Vehicle: %s, Distance: %.2f km", b.VehicleName, b.Distance))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Charges:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		"Base fare      : " + utils.FormatINR(b.Basefare),
		"Luggage charge : " + utils.FormatINR(b.LuggageCharge),
		"GST            : " + utils.FormatINR(b.Taxes),
	}
	for _, line := range lines {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatINR(b.TotalAmount))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 10)
	status := "Payment status: " + b.PaymentStatus
	if b.PaymentMethod != "" {
		status += " (" + b.PaymentMethod + ")"
	}
	pdf.MultiCell(0, 6, status, "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("INVOICE_%s.pdf", utils.SafeFilenamePart(b.CustomerName+"_"+b.ID))
	return buf.Bytes(), filename, nil
}
