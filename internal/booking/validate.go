package booking

import (
	"regexp"

	"travelstore/internal/domain/models"
	"travelstore/internal/utils"
)

// Matches a "local@domain" shape anywhere in the string, same check the
// checkout form applies.
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// ValidateStep is a pure function from form data to field-level errors for one
// checkout step. An empty map means the step is valid. Step 3 (review) has no
// field validation; the terms checkbox is a UI concern.
func ValidateStep(step int, form models.BookingFormData) map[string]string {
	errs := map[string]string{}

	switch step {
	case StepPersonal:
		p := form.PersonalInfo
		if p.FirstName == "" {
			errs["firstName"] = "First name is required"
		}
		if p.LastName == "" {
			errs["lastName"] = "Last name is required"
		}
		if p.Email == "" {
			errs["email"] = "Email is required"
		} else if !emailPattern.MatchString(p.Email) {
			errs["email"] = "Please enter a valid email address"
		}
		if p.Phone == "" {
			errs["phone"] = "Phone number is required"
		}
		if p.DateOfBirth == "" {
			errs["dateOfBirth"] = "Date of birth is required"
		}

	case StepPayment:
		pay := form.PaymentInfo
		if pay.CardNumber == "" {
			errs["cardNumber"] = "Card number is required"
		} else if len(utils.DigitsOnly(pay.CardNumber)) != 16 {
			errs["cardNumber"] = "Please enter a valid 16-digit card number"
		}
		if pay.ExpiryDate == "" {
			errs["expiryDate"] = "Expiry date is required"
		}
		if pay.CVV == "" {
			errs["cvv"] = "CVV is required"
		} else if len(utils.DigitsOnly(pay.CVV)) != 3 {
			errs["cvv"] = "CVV must be 3 digits"
		}
		if pay.CardholderName == "" {
			errs["cardholderName"] = "Cardholder name is required"
		}
	}

	return errs
}
