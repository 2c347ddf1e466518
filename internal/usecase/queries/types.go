package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type SlotView struct {
	Time       string `json:"time"`
	State      string `json:"state"`
	Selectable bool   `json:"selectable"`
}

type AvailabilityView struct {
	Date      string     `json:"date"`
	Occupied  []string   `json:"occupied"`
	Available []string   `json:"available"`
	Slots     []SlotView `json:"slots"`
}

type DatesView struct {
	Today   string   `json:"today"`
	LastDay string   `json:"last_day"`
	Dates   []string `json:"dates"`
}

type AppointmentView struct {
	ID            uuid.UUID  `json:"id"`
	ClientID      uuid.UUID  `json:"client_id"`
	PartnerID     *uuid.UUID `json:"partner_id,omitempty"`
	PartnerName   *string    `json:"partner_name,omitempty"`
	ServiceID     string     `json:"service_id"`
	ServiceTitle  string     `json:"service_title"`
	Date          string     `json:"date"`
	Time          string     `json:"time"`
	Status        string     `json:"status"`
	PlanID        *uuid.UUID `json:"plan_id,omitempty"`
	SessionNumber *int       `json:"session_number,omitempty"`
	ReminderSent  bool       `json:"reminder_sent"`
	CreatedAt     time.Time  `json:"created_at"`
}

type DayAppointmentView struct {
	AppointmentView
	ClientName  string  `json:"client_name"`
	ClientPhone *string `json:"client_phone,omitempty"`
}

type PlanView struct {
	ID                uuid.UUID `json:"id"`
	ServiceID         string    `json:"service_id"`
	ServiceTitle      string    `json:"service_title"`
	Name              string    `json:"name"`
	TotalSessions     int       `json:"total_sessions"`
	CompletedSessions int       `json:"completed_sessions"`
	RemainingSessions int       `json:"remaining_sessions"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}
