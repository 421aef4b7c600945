package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"travelstore/internal/domain/models"
	"travelstore/internal/utils"
)

// ReceiptService renders the confirmed-booking receipt. The core only supplies
// the BookingSummary; everything here is presentation.
type ReceiptService struct {
	RequestID string
}

// GeneratePDF builds the downloadable receipt PDF and its filename.
func (s ReceiptService) GeneratePDF(sum models.BookingSummary) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "receipt", "generate_pdf", "booking_id="+sum.BookingID)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking ID   : %s", sum.BookingID),
		fmt.Sprintf("Destination  : %s, %s", safe(sum.Trip.Destination, "-"), safe(sum.Trip.Country, "-")),
		fmt.Sprintf("Category     : %s", safe(sum.Trip.Category, "-")),
		fmt.Sprintf("Duration     : %s", safe(sum.Trip.Duration, "-")),
		fmt.Sprintf("Travelers    : %d", sum.Travelers),
		fmt.Sprintf("Traveler     : %s %s", safe(sum.Traveler.FirstName, "-"), safe(sum.Traveler.LastName, "")),
		fmt.Sprintf("Email        : %s", safe(sum.Traveler.Email, "-")),
		fmt.Sprintf("Phone        : %s", safe(sum.Traveler.Phone, "-")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	if strings.TrimSpace(sum.SpecialRequests) != "" {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "I", 11)
		pdf.MultiCell(0, 6, "Special requests: "+sum.SpecialRequests, "", "", false)
		pdf.SetFont("Helvetica", "", 12)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "Total: "+utils.FormatUSD(sum.TotalCost))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Keep this receipt for your records. Present your booking ID at check-in.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RECEIPT_%s.pdf", safeFilenamePart(sum.BookingID))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	var out strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out.WriteRune(r)
		default:
			out.WriteRune('_')
		}
	}
	return out.String()
}
