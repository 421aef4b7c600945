package booking

import (
	"testing"

	"travelstore/internal/domain/models"
)

func TestValidateStepOneRequiresAllFields(t *testing.T) {
	errs := ValidateStep(StepPersonal, models.BookingFormData{})

	for _, field := range []string{"firstName", "lastName", "email", "phone", "dateOfBirth"} {
		if errs[field] == "" {
			t.Fatalf("expected error for %s, got %v", field, errs)
		}
	}
}

func TestValidateStepOneEmailShapes(t *testing.T) {
	form := models.BookingFormData{
		PersonalInfo: models.PersonalInfo{
			FirstName: "Ada", LastName: "Lovelace",
			Phone: "+44123456", DateOfBirth: "1990-12-10",
		},
	}

	cases := map[string]bool{
		"ada@example.com":  true,
		"a@b.co":           true,
		"no-at-sign":       false,
		"missing@domain":   false,
		"@example.com":     false,
		"spaced @name.com": false,
	}
	for email, valid := range cases {
		form.PersonalInfo.Email = email
		errs := ValidateStep(StepPersonal, form)
		if valid && len(errs) != 0 {
			t.Fatalf("email %q should be valid, got %v", email, errs)
		}
		if !valid && errs["email"] == "" {
			t.Fatalf("email %q should be rejected", email)
		}
	}
}

func TestValidateStepTwo(t *testing.T) {
	form := models.BookingFormData{
		PaymentInfo: models.PaymentInfo{
			CardNumber:     "4111111111111111",
			ExpiryDate:     "12/27",
			CVV:            "123",
			CardholderName: "Ada Lovelace",
		},
	}
	if errs := ValidateStep(StepPayment, form); len(errs) != 0 {
		t.Fatalf("valid payment rejected: %v", errs)
	}

	form.PaymentInfo.CardNumber = "411111111111111" // 15 digits
	if errs := ValidateStep(StepPayment, form); errs["cardNumber"] == "" {
		t.Fatalf("15-digit card accepted")
	}

	form.PaymentInfo.CardNumber = "4111111111111111"
	form.PaymentInfo.CVV = "12"
	if errs := ValidateStep(StepPayment, form); errs["cvv"] == "" {
		t.Fatalf("2-digit cvv accepted")
	}

	form.PaymentInfo.CVV = ""
	if errs := ValidateStep(StepPayment, form); errs["cvv"] != "CVV is required" {
		t.Fatalf("empty cvv should report required, got %v", errs)
	}
}

func TestValidateStepThreeHasNoFieldValidation(t *testing.T) {
	if errs := ValidateStep(StepReview, models.BookingFormData{}); len(errs) != 0 {
		t.Fatalf("step 3 should not validate fields, got %v", errs)
	}
}
