package request

import (
	"strings"

	"clinic-booking/internal/domain/appointment"
	"clinic-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookAppointmentRequest struct {
	ServiceID     string     `json:"service_id" binding:"required,max=64"`
	ServiceTitle  string     `json:"service_title" binding:"required,max=120"`
	PartnerID     *uuid.UUID `json:"partner_id,omitempty"`
	Date          string     `json:"date" binding:"required,clinic_date"`
	Time          string     `json:"time" binding:"required,clinic_slot"`
	PlanID        *uuid.UUID `json:"plan_id,omitempty"`
	SessionNumber *int       `json:"session_number,omitempty" binding:"omitempty,min=1"`
}

// ToInput converts the bound request. The binding tags have already checked
// the date and time formats, so parse errors here are unexpected.
func (r BookAppointmentRequest) ToInput() (commands.BookingInput, error) {
	d, err := appointment.ParseDate(r.Date)
	if err != nil {
		return commands.BookingInput{}, err
	}
	slot, err := appointment.ParseSlot(r.Time)
	if err != nil {
		return commands.BookingInput{}, err
	}
	return commands.BookingInput{
		ServiceID:     strings.TrimSpace(r.ServiceID),
		ServiceTitle:  strings.TrimSpace(r.ServiceTitle),
		PartnerID:     r.PartnerID,
		Date:          d,
		Slot:          slot,
		PlanID:        r.PlanID,
		SessionNumber: r.SessionNumber,
	}, nil
}

type DateQuery struct {
	Date string `form:"date" binding:"required,clinic_date"`
}

func (q DateQuery) ToDate() (appointment.Date, error) {
	return appointment.ParseDate(q.Date)
}

type ListQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=200"`
}
