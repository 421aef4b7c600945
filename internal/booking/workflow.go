package booking

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"travelstore/internal/domain"
	"travelstore/internal/domain/models"
	"travelstore/internal/utils"
)

// Checkout steps. Transitions only move one step at a time: forward through
// Advance (validated), backward through Retreat (unconditional).
const (
	StepPersonal = 1
	StepPayment  = 2
	StepReview   = 3
)

const bookingIDPrefix = "XYZ"

const idSuffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func initialState() models.BookingState {
	return models.BookingState{
		FormData: models.BookingFormData{
			Travelers: 1,
		},
		CurrentStep: StepPersonal,
	}
}

// Workflow owns the state of one booking session. An instance is constructed
// per session and passed explicitly; there is no ambient shared state. The
// Workflow itself is not goroutine-safe — concurrent callers must serialize
// access (the session service does) so totalCost never diverges from
// trip.price * travelers.
type Workflow struct {
	state models.BookingState
}

func NewWorkflow() *Workflow {
	return &Workflow{state: initialState()}
}

// State returns a snapshot of the session state. The Trip pointer is shared
// but catalog records are read-only.
func (w *Workflow) State() models.BookingState {
	return w.state
}

// SetTrip selects the trip for this session and recomputes the total. Calling
// it again simply replaces the trip and recomputes; it never corrupts state.
func (w *Workflow) SetTrip(trip models.Trip) {
	t := trip
	w.state.Trip = &t
	w.recomputeTotal()
}

// UpdateForm merges a partial update into the form data. Only fields present
// in the patch change; travelers and cost are never touched here. Card
// numbers are normalized to their digit string on the way in.
func (w *Workflow) UpdateForm(patch models.FormPatch) {
	if patch.PersonalInfo != nil {
		p := patch.PersonalInfo
		dst := &w.state.FormData.PersonalInfo
		if p.FirstName != nil {
			dst.FirstName = strings.TrimSpace(*p.FirstName)
		}
		if p.LastName != nil {
			dst.LastName = strings.TrimSpace(*p.LastName)
		}
		if p.Email != nil {
			dst.Email = strings.TrimSpace(*p.Email)
		}
		if p.Phone != nil {
			dst.Phone = strings.TrimSpace(*p.Phone)
		}
		if p.DateOfBirth != nil {
			dst.DateOfBirth = strings.TrimSpace(*p.DateOfBirth)
		}
	}
	if patch.PaymentInfo != nil {
		p := patch.PaymentInfo
		dst := &w.state.FormData.PaymentInfo
		if p.CardNumber != nil {
			dst.CardNumber = utils.DigitsOnly(*p.CardNumber)
		}
		if p.ExpiryDate != nil {
			dst.ExpiryDate = strings.TrimSpace(*p.ExpiryDate)
		}
		if p.CVV != nil {
			dst.CVV = utils.DigitsOnly(*p.CVV)
		}
		if p.CardholderName != nil {
			dst.CardholderName = strings.TrimSpace(*p.CardholderName)
		}
	}
	if patch.SpecialRequests != nil {
		w.state.FormData.SpecialRequests = *patch.SpecialRequests
	}
}

// SetTravelers updates the traveler count, clamping to at least 1, and
// recomputes the total. Non-numeric input is rejected at the transport
// boundary and never reaches this method.
func (w *Workflow) SetTravelers(count int) {
	if count < 1 {
		count = 1
	}
	w.state.FormData.Travelers = count
	w.recomputeTotal()
}

func (w *Workflow) recomputeTotal() {
	if w.state.Trip == nil {
		w.state.TotalCost = 0
		return
	}
	w.state.TotalCost = w.state.Trip.Price * float64(w.state.FormData.Travelers)
}

// ValidateStep validates the current step's form data.
func (w *Workflow) ValidateStep() map[string]string {
	return ValidateStep(w.state.CurrentStep, w.state.FormData)
}

// Advance validates the current step and moves forward. On validation failure
// it returns the field errors and mutates nothing. Advancing from the review
// step confirms the booking and reports completion.
func (w *Workflow) Advance() (fieldErrs map[string]string, completed bool, err error) {
	errs := w.ValidateStep()
	if len(errs) > 0 {
		return errs, false, nil
	}
	if w.state.CurrentStep < StepReview {
		w.state.CurrentStep++
		return nil, false, nil
	}
	if _, err := w.Confirm(); err != nil {
		return nil, false, err
	}
	return nil, true, nil
}

// Retreat moves one step back. From step 1 it reports false, which the caller
// treats as a leave-workflow signal rather than a state transition.
func (w *Workflow) Retreat() bool {
	if w.state.CurrentStep > StepPersonal {
		w.state.CurrentStep--
		return true
	}
	return false
}

// Confirm assigns the booking id. It is idempotent: once assigned the same id
// is returned on every later call, and a fresh id requires an explicit Reset.
// Confirming with no trip selected is a caller bug and fails loudly.
func (w *Workflow) Confirm() (string, error) {
	if w.state.Trip == nil {
		return "", domain.StateError{Op: "confirm", Msg: "no trip selected"}
	}
	if w.state.BookingID != "" {
		return w.state.BookingID, nil
	}
	w.state.BookingID = newBookingID()
	return w.state.BookingID, nil
}

// Reset discards everything and returns the session to the initial empty state.
func (w *Workflow) Reset() {
	w.state = initialState()
}

// Summary builds the receipt payload for a confirmed booking. Payment data is
// deliberately excluded.
func (w *Workflow) Summary() (models.BookingSummary, error) {
	if w.state.Trip == nil || w.state.BookingID == "" {
		return models.BookingSummary{}, domain.StateError{Op: "summary", Msg: "booking not confirmed"}
	}
	return models.BookingSummary{
		BookingID:       w.state.BookingID,
		Trip:            *w.state.Trip,
		Traveler:        w.state.FormData.PersonalInfo,
		Travelers:       w.state.FormData.Travelers,
		SpecialRequests: w.state.FormData.SpecialRequests,
		TotalCost:       w.state.TotalCost,
	}, nil
}

// newBookingID builds an id unique for the process lifetime: fixed prefix,
// millisecond timestamp, short random suffix. Always distinguishable from the
// unconfirmed empty string.
func newBookingID() string {
	var suffix strings.Builder
	for i := 0; i < 5; i++ {
		suffix.WriteByte(idSuffixAlphabet[rand.Intn(len(idSuffixAlphabet))])
	}
	return bookingIDPrefix + strconv.FormatInt(time.Now().UnixMilli(), 10) + suffix.String()
}
