package response

import (
	"clinic-booking/internal/usecase/commands"
	"clinic-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID            uuid.UUID  `json:"id"`
	ServiceTitle  string     `json:"service_title"`
	Date          string     `json:"date"`
	Time          string     `json:"time"`
	Status        string     `json:"status"`
	PlanID        *uuid.UUID `json:"plan_id,omitempty"`
	SessionNumber *int       `json:"session_number,omitempty"`
}

func FromBookingResult(r *commands.BookingResult) *BookingResponse {
	return &BookingResponse{
		ID:            r.AppointmentID,
		ServiceTitle:  r.ServiceTitle,
		Date:          r.Date.String(),
		Time:          r.Slot.String(),
		Status:        r.Status.String(),
		PlanID:        r.PlanID,
		SessionNumber: r.SessionNumber,
	}
}

type StatusChangeResponse struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

func FromStatusChange(r *commands.StatusChangeResult) *StatusChangeResponse {
	return &StatusChangeResponse{ID: r.AppointmentID, Status: r.Status.String()}
}

type AppointmentListResponse struct {
	Items []*queries.AppointmentView `json:"items"`
	Count int                        `json:"count"`
}

func FromAppointmentViews(views []*queries.AppointmentView) *AppointmentListResponse {
	if views == nil {
		views = []*queries.AppointmentView{}
	}
	return &AppointmentListResponse{Items: views, Count: len(views)}
}

type DayViewResponse struct {
	Date  string                        `json:"date"`
	Items []*queries.DayAppointmentView `json:"items"`
	Count int                           `json:"count"`
}

func FromDayViews(date string, views []*queries.DayAppointmentView) *DayViewResponse {
	if views == nil {
		views = []*queries.DayAppointmentView{}
	}
	return &DayViewResponse{Date: date, Items: views, Count: len(views)}
}
