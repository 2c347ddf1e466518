package httperr

import (
	"net/http"

	"clinic-booking/internal/domain/appointment"
	"clinic-booking/internal/domain/picker"
	"clinic-booking/internal/domain/plan"
	"clinic-booking/internal/infra"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/usecase/commands"
	"clinic-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		// Retryable tells the client that repeating the same request may succeed.
		Retryable bool `json:"retryable,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Retryable = status == http.StatusServiceUnavailable
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps a command or query failure onto its public status and message.
func Abort(c *gin.Context, err error) {
	status, msg := Classify(err)
	AbortWithError(c, status, err, msg, nil)
}

type rule struct {
	targets []error
	status  int
	msg     string
}

// Order matters: a lost race is reported as a conflict even though the
// picker also records it as a failed submit.
var rules = []rule{
	{[]error{commands.ErrSlotTaken}, http.StatusConflict, "Slot was just taken, please pick another time"},
	{[]error{appointment.ErrSlotOccupied}, http.StatusConflict, "Slot is already occupied"},
	{[]error{queries.ErrAvailabilityUnavailable, picker.ErrAvailabilityFailed}, http.StatusServiceUnavailable, "Availability is temporarily unavailable, please try again"},
	{[]error{commands.ErrReservationWriteFailed}, http.StatusServiceUnavailable, "Reservation could not be saved, please try again"},
	{[]error{commands.ErrSettingsUnavailable}, http.StatusServiceUnavailable, "Notification settings are temporarily unavailable"},
	{[]error{commands.ErrAppointmentNotFound}, http.StatusNotFound, "Appointment not found"},
	{[]error{commands.ErrPlanNotFound}, http.StatusNotFound, "Session plan not found"},
	{[]error{commands.ErrForbidden, plan.ErrPlanBelongsToAnotherOwner}, http.StatusForbidden, "Operation not allowed"},
	{[]error{appointment.ErrPastDate}, http.StatusUnprocessableEntity, "Date is in the past"},
	{[]error{appointment.ErrBeyondHorizon}, http.StatusUnprocessableEntity, "Date is beyond the booking horizon"},
	{[]error{appointment.ErrClosedDay}, http.StatusUnprocessableEntity, "The clinic is closed on this day"},
	{[]error{appointment.ErrSlotElapsed}, http.StatusUnprocessableEntity, "Slot has already started"},
	{[]error{appointment.ErrUnknownSlot}, http.StatusUnprocessableEntity, "Time is not one of the clinic slots"},
	{[]error{appointment.ErrInvalidDate}, http.StatusUnprocessableEntity, "Invalid calendar date"},
	{[]error{picker.ErrNotSelectable}, http.StatusUnprocessableEntity, "Slot is not selectable"},
	{[]error{appointment.ErrInvalidTransition}, http.StatusUnprocessableEntity, "Appointment status does not allow this action"},
	{[]error{plan.ErrPlanCompleted}, http.StatusUnprocessableEntity, "Plan has no remaining sessions"},
	{[]error{plan.ErrSessionNumberOutOfRange}, http.StatusUnprocessableEntity, "Session number is outside the plan"},
	{[]error{plan.ErrSessionNumberWithoutPlan, appointment.ErrPlanMismatch}, http.StatusUnprocessableEntity, "Session details do not match a plan"},
	{[]error{appointment.ErrMissingService, appointment.ErrMissingClient}, http.StatusUnprocessableEntity, "Appointment is incomplete"},
}

func Classify(err error) (int, string) {
	for _, r := range rules {
		for _, target := range r.targets {
			if errs.Is(err, target) {
				return r.status, r.msg
			}
		}
	}
	if infra.IsKind(err, infra.KindTimeout) {
		return http.StatusServiceUnavailable, "Store did not answer in time, please try again"
	}
	return http.StatusInternalServerError, "Internal server error"
}
