package models

// PersonalInfo is the step-1 form data. All fields are required.
type PersonalInfo struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"dateOfBirth"`
}

// PaymentInfo is the step-2 form data. CardNumber is stored normalized
// (digits only); grouping into 4-digit blocks is a presentation concern.
// None of these fields may ever be logged or persisted.
type PaymentInfo struct {
	CardNumber     string `json:"cardNumber"`
	ExpiryDate     string `json:"expiryDate"`
	CVV            string `json:"cvv"`
	CardholderName string `json:"cardholderName"`
}

// BookingFormData is everything the checkout form stages for one session.
type BookingFormData struct {
	PersonalInfo    PersonalInfo `json:"personalInfo"`
	PaymentInfo     PaymentInfo  `json:"paymentInfo"`
	Travelers       int          `json:"travelers"`
	SpecialRequests string       `json:"specialRequests"`
}

// BookingState is the full state of one booking session. TotalCost must always
// equal Trip.Price * FormData.Travelers whenever Trip is set.
type BookingState struct {
	Trip        *Trip           `json:"trip"`
	FormData    BookingFormData `json:"formData"`
	CurrentStep int             `json:"currentStep"`
	TotalCost   float64         `json:"totalCost"`
	BookingID   string          `json:"bookingId"`
}

// PersonalInfoPatch updates individual personal fields via key presence.
type PersonalInfoPatch struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	DateOfBirth *string `json:"dateOfBirth"`
}

// PaymentInfoPatch updates individual payment fields via key presence.
type PaymentInfoPatch struct {
	CardNumber     *string `json:"cardNumber"`
	ExpiryDate     *string `json:"expiryDate"`
	CVV            *string `json:"cvv"`
	CardholderName *string `json:"cardholderName"`
}

// FormPatch is a partial form update; nil sub-patches leave their section
// untouched. Travelers and cost are updated through their own action, never
// through a form patch.
type FormPatch struct {
	PersonalInfo    *PersonalInfoPatch `json:"personalInfo"`
	PaymentInfo     *PaymentInfoPatch  `json:"paymentInfo"`
	SpecialRequests *string            `json:"specialRequests"`
}

// BookingSummary is the confirmed-booking payload handed to receipt
// generation. It deliberately carries no payment data.
type BookingSummary struct {
	BookingID       string       `json:"bookingId"`
	Trip            Trip         `json:"trip"`
	Traveler        PersonalInfo `json:"traveler"`
	Travelers       int          `json:"travelers"`
	SpecialRequests string       `json:"specialRequests,omitempty"`
	TotalCost       float64      `json:"totalCost"`
}
