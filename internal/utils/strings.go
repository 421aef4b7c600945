package utils

import (
	"strings"
)

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// DigitsOnly strips everything but ASCII digits. Card numbers are stored in
// this normalized form.
func DigitsOnly(s string) string {
	var out strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out.WriteRune(r)
		}
	}
	return out.String()
}

// FormatCardNumber groups a normalized card number into 4-digit blocks for
// display. Non-digits are dropped first.
func FormatCardNumber(raw string) string {
	digits := DigitsOnly(raw)
	if digits == "" {
		return ""
	}
	var parts []string
	for i := 0; i < len(digits); i += 4 {
		end := i + 4
		if end > len(digits) {
			end = len(digits)
		}
		parts = append(parts, digits[i:end])
	}
	return strings.Join(parts, " ")
}

// MaskCardNumber keeps only the last four digits for responses and receipts.
func MaskCardNumber(raw string) string {
	digits := DigitsOnly(raw)
	if len(digits) <= 4 {
		return digits
	}
	return "**** **** **** " + digits[len(digits)-4:]
}
