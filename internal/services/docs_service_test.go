package services

import (
	"testing"

	intconfig "echohorn/internal/config"
	"echohorn/internal/domain"
	"echohorn/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestGenerateInvoicePDF(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	mock.ExpectQuery("SELECT (.+) FROM billings").
		WillReturnRows(sqlmock.NewRows(billingCols).AddRow(billingRow(domain.PaymentPending, "")...))
	mock.ExpectQuery("SELECT (.+) FROM trips").
		WillReturnRows(sqlmock.NewRows(tripCols).AddRow(tripRow(domain.TripCompleted)...))

	svc := DocsService{
		BillingRepo: repositories.BillingRepository{DB: db},
		TripRepo:    repositories.TripRepository{DB: db},
	}

	pdf, filename, err := svc.GenerateInvoice("bill-1")
	if err != nil {
		t.Fatalf("GenerateInvoice returned error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatalf("GenerateInvoice returned empty data")
	}
}
