package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelstore/internal/booking"
	"travelstore/internal/catalog"
	"travelstore/internal/domain"
	"travelstore/internal/domain/models"
	"travelstore/internal/http/middleware"
	"travelstore/internal/services"
	"travelstore/internal/utils"
)

// BookingHandlers wires the booking workflow to the HTTP boundary. Every
// workflow mutation runs inside Session.Do so concurrent requests on one
// session apply atomically.
type BookingHandlers struct {
	Catalog  *catalog.Catalog
	Sessions *services.SessionService
}

// paymentView never exposes the raw card number or CVV.
type paymentView struct {
	CardNumber     string `json:"cardNumber"`
	ExpiryDate     string `json:"expiryDate"`
	CardholderName string `json:"cardholderName"`
}

type formView struct {
	PersonalInfo    models.PersonalInfo `json:"personalInfo"`
	PaymentInfo     paymentView         `json:"paymentInfo"`
	Travelers       int                 `json:"travelers"`
	SpecialRequests string              `json:"specialRequests"`
}

type stateView struct {
	SessionID   string       `json:"sessionId"`
	Trip        *models.Trip `json:"trip"`
	FormData    formView     `json:"formData"`
	CurrentStep int          `json:"currentStep"`
	TotalCost   float64      `json:"totalCost"`
	BookingID   string       `json:"bookingId"`
}

func viewOf(sessionID string, st models.BookingState) stateView {
	return stateView{
		SessionID: sessionID,
		Trip:      st.Trip,
		FormData: formView{
			PersonalInfo: st.FormData.PersonalInfo,
			PaymentInfo: paymentView{
				CardNumber:     utils.MaskCardNumber(st.FormData.PaymentInfo.CardNumber),
				ExpiryDate:     st.FormData.PaymentInfo.ExpiryDate,
				CardholderName: st.FormData.PaymentInfo.CardholderName,
			},
			Travelers:       st.FormData.Travelers,
			SpecialRequests: st.FormData.SpecialRequests,
		},
		CurrentStep: st.CurrentStep,
		TotalCost:   st.TotalCost,
		BookingID:   st.BookingID,
	}
}

func (h BookingHandlers) session(c *gin.Context) (*services.Session, bool) {
	sess, err := h.Sessions.Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return nil, false
	}
	return sess, true
}

// CreateSession starts a new booking session.
// POST /api/bookings
func (h BookingHandlers) CreateSession(c *gin.Context) {
	sess := h.Sessions.Create()
	utils.LogEvent(middleware.GetRequestID(c), "booking", "create_session", "session_id="+sess.ID)
	c.JSON(http.StatusCreated, gin.H{"session_id": sess.ID})
}

// GetSession returns the session state with payment fields masked.
// GET /api/bookings/:id
func (h BookingHandlers) GetSession(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	var view stateView
	_ = sess.Do(func(wf *booking.Workflow) error {
		view = viewOf(sess.ID, wf.State())
		return nil
	})
	c.JSON(http.StatusOK, view)
}

type setTripRequest struct {
	TripID int64 `json:"trip_id"`
}

// SetTrip selects the trip for the session and recomputes the total.
// POST /api/bookings/:id/trip
func (h BookingHandlers) SetTrip(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var req setTripRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.TripID <= 0 {
		RespondDomainError(c, domain.ValidationError{Field: "trip_id", Msg: "must be a positive integer"})
		return
	}

	trip, err := h.Catalog.FindByID(req.TripID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	var view stateView
	_ = sess.Do(func(wf *booking.Workflow) error {
		wf.SetTrip(trip)
		view = viewOf(sess.ID, wf.State())
		return nil
	})

	utils.LogEvent(middleware.GetRequestID(c), "booking", "set_trip", "session_id="+sess.ID)
	c.JSON(http.StatusOK, view)
}

// PatchForm merges a partial form update into the session.
// PATCH /api/bookings/:id/form
func (h BookingHandlers) PatchForm(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var patch models.FormPatch
	if !BindJSONOrError(c, &patch) {
		return
	}

	var view stateView
	_ = sess.Do(func(wf *booking.Workflow) error {
		wf.UpdateForm(patch)
		view = viewOf(sess.ID, wf.State())
		return nil
	})
	c.JSON(http.StatusOK, view)
}

type setTravelersRequest struct {
	Travelers *int `json:"travelers"`
}

// SetTravelers updates the traveler count. Non-numeric input fails JSON
// binding here and never reaches the workflow; values below 1 clamp to 1.
// PUT /api/bookings/:id/travelers
func (h BookingHandlers) SetTravelers(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var req setTravelersRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Travelers == nil {
		RespondError(c, http.StatusBadRequest, "travelers is required", nil)
		return
	}

	var view stateView
	_ = sess.Do(func(wf *booking.Workflow) error {
		wf.SetTravelers(*req.Travelers)
		view = viewOf(sess.ID, wf.State())
		return nil
	})
	c.JSON(http.StatusOK, view)
}

// Advance validates the current step and moves forward; from the review step
// it confirms the booking.
// POST /api/bookings/:id/advance
func (h BookingHandlers) Advance(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var (
		fieldErrs map[string]string
		completed bool
		state     models.BookingState
		actionErr error
	)
	_ = sess.Do(func(wf *booking.Workflow) error {
		fieldErrs, completed, actionErr = wf.Advance()
		state = wf.State()
		return nil
	})

	if actionErr != nil {
		RespondDomainError(c, actionErr)
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
		return
	}
	if completed {
		utils.LogEvent(middleware.GetRequestID(c), "booking", "confirmed", "session_id="+sess.ID)
		c.JSON(http.StatusOK, gin.H{
			"completed":  true,
			"booking_id": state.BookingID,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"step": state.CurrentStep})
}

// Retreat moves one step back; from step 1 it signals workflow exit instead.
// POST /api/bookings/:id/retreat
func (h BookingHandlers) Retreat(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var (
		moved bool
		step  int
	)
	_ = sess.Do(func(wf *booking.Workflow) error {
		moved = wf.Retreat()
		step = wf.State().CurrentStep
		return nil
	})

	c.JSON(http.StatusOK, gin.H{"step": step, "exited": !moved})
}

// Confirm assigns the booking id (idempotent; repeat calls return the same id).
// POST /api/bookings/:id/confirm
func (h BookingHandlers) Confirm(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var (
		bookingID string
		err       error
	)
	_ = sess.Do(func(wf *booking.Workflow) error {
		bookingID, err = wf.Confirm()
		return nil
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "booking", "confirm", "session_id="+sess.ID)
	c.JSON(http.StatusOK, gin.H{"booking_id": bookingID})
}

// Receipt returns the confirmed-booking summary for receipt generation.
// GET /api/bookings/:id/receipt
func (h BookingHandlers) Receipt(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var (
		sum models.BookingSummary
		err error
	)
	_ = sess.Do(func(wf *booking.Workflow) error {
		sum, err = wf.Summary()
		return nil
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// ReceiptPDF streams the downloadable PDF receipt.
// GET /api/bookings/:id/receipt.pdf
func (h BookingHandlers) ReceiptPDF(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var (
		sum models.BookingSummary
		err error
	)
	_ = sess.Do(func(wf *booking.Workflow) error {
		sum, err = wf.Summary()
		return nil
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	svc := services.ReceiptService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GeneratePDF(sum)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to generate receipt", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// DropSession resets the workflow and removes the session.
// DELETE /api/bookings/:id
func (h BookingHandlers) DropSession(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	_ = sess.Do(func(wf *booking.Workflow) error {
		wf.Reset()
		return nil
	})
	h.Sessions.Drop(sess.ID)

	utils.LogEvent(middleware.GetRequestID(c), "booking", "drop_session", "session_id="+sess.ID)
	c.Status(http.StatusNoContent)
}
