package appointment

import (
	"errors"
	"time"
)

var (
	ErrPastDate      = errors.New("date is in the past")
	ErrBeyondHorizon = errors.New("date is beyond the booking horizon")
	ErrClosedDay     = errors.New("the clinic does not open on this day")
	ErrSlotElapsed   = errors.New("slot has already started")
	ErrSlotOccupied  = errors.New("slot is already occupied")
)

const DefaultHorizonDays = 60

// Calendar holds the business rules deciding which dates and slots may be
// offered, evaluated in the clinic's fixed location.
type Calendar struct {
	loc         *time.Location
	horizonDays int
}

func NewCalendar(loc *time.Location, horizonDays int) Calendar {
	if loc == nil {
		loc = time.UTC
	}
	if horizonDays < 0 {
		horizonDays = DefaultHorizonDays
	}
	return Calendar{loc: loc, horizonDays: horizonDays}
}

func (c Calendar) Location() *time.Location {
	return c.loc
}

func (c Calendar) HorizonDays() int {
	return c.horizonDays
}

func (c Calendar) Today(now time.Time) Date {
	return DateOf(now.In(c.loc))
}

// CheckDate rejects past days, days more than the horizon ahead and Sundays.
func (c Calendar) CheckDate(now time.Time, d Date) error {
	today := c.Today(now)
	switch {
	case d.IsZero():
		return ErrInvalidDate
	case d.Before(today):
		return ErrPastDate
	case today.DaysUntil(d) > c.horizonDays:
		return ErrBeyondHorizon
	case d.Weekday() == time.Sunday:
		return ErrClosedDay
	}
	return nil
}

func (c Calendar) IsSelectable(now time.Time, d Date) bool {
	return c.CheckDate(now, d) == nil
}

// SelectableDates lists every offerable day from today to the horizon inclusive.
func (c Calendar) SelectableDates(now time.Time) []Date {
	today := c.Today(now)
	out := make([]Date, 0, c.horizonDays+1)
	for i := 0; i <= c.horizonDays; i++ {
		d := today.AddDays(i)
		if d.Weekday() == time.Sunday {
			continue
		}
		out = append(out, d)
	}
	return out
}

// SlotStart is the instant slot begins on d in clinic time.
func (c Calendar) SlotStart(d Date, slot Slot) time.Time {
	return d.At(slot, c.loc)
}

// SlotElapsed reports whether slot on d starts at or before now.
func (c Calendar) SlotElapsed(now time.Time, d Date, slot Slot) bool {
	return !c.SlotStart(d, slot).After(now)
}

// CheckSlot validates a concrete date/time pair against the date rules, the
// enumeration and the elapsed rule. Occupancy is checked separately.
func (c Calendar) CheckSlot(now time.Time, d Date, slot Slot) error {
	if err := c.CheckDate(now, d); err != nil {
		return err
	}
	if !slot.IsValid() {
		return ErrUnknownSlot
	}
	if c.SlotElapsed(now, d, slot) {
		return ErrSlotElapsed
	}
	return nil
}

// SlotState is the picker-facing state of one slot.
type SlotState string

const (
	SlotAvailable SlotState = "available"
	SlotOccupied  SlotState = "occupied"
	SlotElapsed   SlotState = "elapsed"
	SlotClosed    SlotState = "closed"
)

type SlotOption struct {
	Slot  Slot
	State SlotState
}

func (o SlotOption) Selectable() bool {
	return o.State == SlotAvailable
}

// Options lays the occupied set over the enumeration for day d.
func (c Calendar) Options(now time.Time, d Date, occupied []Slot) []SlotOption {
	out := make([]SlotOption, len(Slots))
	if c.CheckDate(now, d) != nil {
		for i, s := range Slots {
			out[i] = SlotOption{Slot: s, State: SlotClosed}
		}
		return out
	}

	taken := make(map[Slot]bool, len(occupied))
	for _, s := range occupied {
		taken[s] = true
	}
	for i, s := range Slots {
		state := SlotAvailable
		switch {
		case taken[s]:
			state = SlotOccupied
		case c.SlotElapsed(now, d, s):
			state = SlotElapsed
		}
		out[i] = SlotOption{Slot: s, State: state}
	}
	return out
}
