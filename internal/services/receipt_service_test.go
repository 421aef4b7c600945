package services

import (
	"bytes"
	"strings"
	"testing"

	"travelstore/internal/domain/models"
)

func TestReceiptServiceGeneratePDF(t *testing.T) {
	sum := models.BookingSummary{
		BookingID: "XYZ1700000000000AB12C",
		Trip: models.Trip{
			ID:          1,
			Destination: "Bali",
			Country:     "Indonesia",
			Category:    models.CategoryBeach,
			Duration:    "7 days",
			Price:       899,
		},
		Traveler: models.PersonalInfo{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Phone:     "+44123456",
		},
		Travelers:       2,
		SpecialRequests: "vegetarian meals",
		TotalCost:       1798,
	}

	svc := ReceiptService{}
	pdf, filename, err := svc.GeneratePDF(sum)
	if err != nil {
		t.Fatalf("GeneratePDF returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GeneratePDF returned empty data")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
	if !strings.HasPrefix(filename, "RECEIPT_") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestSafeFilenamePart(t *testing.T) {
	if got := safeFilenamePart(`XYZ/17:00*ab`); got != "XYZ_17_00_ab" {
		t.Fatalf("unexpected sanitized name %q", got)
	}
}
