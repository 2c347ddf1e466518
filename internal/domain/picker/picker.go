// Package picker models the two-step date/time selection flow:
// SelectingDate → SelectingTime → Confirming. Back is the only backward move
// and discards the chosen time.
package picker

import (
	"context"
	"errors"
	"fmt"

	"clinic-booking/internal/domain/appointment"
	"clinic-booking/internal/pkg/clock"
)

type State int

const (
	SelectingDate State = iota
	SelectingTime
	Confirming
)

func (s State) String() string {
	switch s {
	case SelectingDate:
		return "selecting_date"
	case SelectingTime:
		return "selecting_time"
	case Confirming:
		return "confirming"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	ErrInvalidState       = errors.New("action not allowed in the current picker state")
	ErrClosed             = errors.New("picker already handed off its selection")
	ErrSubmitInFlight     = errors.New("a confirmation is already in flight")
	ErrAvailabilityFailed = errors.New("occupied slots could not be loaded")
	ErrNotSelectable      = errors.New("slot is not selectable")
)

// OccupiedLoader returns the occupied slots of a day. It is the picker's
// only view of the store.
type OccupiedLoader func(ctx context.Context, d appointment.Date) ([]appointment.Slot, error)

// Selection is what Confirm hands to the reservation writer.
type Selection struct {
	Date appointment.Date
	Slot appointment.Slot
}

type Picker struct {
	calendar appointment.Calendar
	clock    clock.Clock
	load     OccupiedLoader

	state      State
	date       *appointment.Date
	slot       *appointment.Slot
	options    []appointment.SlotOption
	submitting bool
	closed     bool
}

func New(calendar appointment.Calendar, clk clock.Clock, load OccupiedLoader) *Picker {
	return &Picker{
		calendar: calendar,
		clock:    clk,
		load:     load,
		state:    SelectingDate,
	}
}

func (p *Picker) State() State { return p.state }

func (p *Picker) Date() (appointment.Date, bool) {
	if p.date == nil {
		return appointment.Date{}, false
	}
	return *p.date, true
}

func (p *Picker) Slot() (appointment.Slot, bool) {
	if p.slot == nil {
		return "", false
	}
	return *p.slot, true
}

func (p *Picker) Submitting() bool { return p.submitting }
func (p *Picker) Closed() bool     { return p.closed }

// Options is the per-slot view of the chosen date, nil before a date is chosen.
func (p *Picker) Options() []appointment.SlotOption {
	return p.options
}

// SelectableDates are the dates the first step offers.
func (p *Picker) SelectableDates() []appointment.Date {
	return p.calendar.SelectableDates(p.clock.Now())
}

// SelectDate chooses a day and loads its occupancy. Any chosen time is
// cleared. A load failure leaves the picker in SelectingDate with no date so
// the caller must retry rather than assume the day is open.
func (p *Picker) SelectDate(ctx context.Context, d appointment.Date) error {
	if err := p.guard(); err != nil {
		return err
	}
	if p.state == Confirming {
		return ErrInvalidState
	}
	if err := p.calendar.CheckDate(p.clock.Now(), d); err != nil {
		return err
	}

	p.slot = nil
	occupied, err := p.load(ctx, d)
	if err != nil {
		p.reset()
		return errors.Join(ErrAvailabilityFailed, err)
	}

	p.date = &d
	p.options = p.calendar.Options(p.clock.Now(), d, occupied)
	p.state = SelectingTime
	return nil
}

// SelectTime picks a slot of the chosen date; re-picking while Confirming is allowed.
func (p *Picker) SelectTime(slot appointment.Slot) error {
	if err := p.guard(); err != nil {
		return err
	}
	if p.state == SelectingDate || p.date == nil {
		return ErrInvalidState
	}
	if !p.isSelectable(slot) {
		return errors.Join(ErrNotSelectable, p.slotReason(slot))
	}

	p.slot = &slot
	p.state = Confirming
	return nil
}

// Back returns to SelectingDate, discarding the chosen time.
func (p *Picker) Back() error {
	if err := p.guard(); err != nil {
		return err
	}
	if p.state == SelectingDate {
		return ErrInvalidState
	}
	p.slot = nil
	p.options = nil
	p.state = SelectingDate
	return nil
}

// CanConfirm is true only with a date and an unoccupied, non-elapsed time
// chosen and no submission in flight.
func (p *Picker) CanConfirm() bool {
	if p.closed || p.submitting || p.state != Confirming || p.date == nil || p.slot == nil {
		return false
	}
	return p.isSelectable(*p.slot)
}

// Submit disables confirmation and returns the selection to write.
func (p *Picker) Submit() (Selection, error) {
	if err := p.guard(); err != nil {
		return Selection{}, err
	}
	if !p.CanConfirm() {
		if p.state == Confirming && p.slot != nil && !p.isSelectable(*p.slot) {
			return Selection{}, errors.Join(ErrNotSelectable, p.slotReason(*p.slot))
		}
		return Selection{}, ErrInvalidState
	}
	p.submitting = true
	return Selection{Date: *p.date, Slot: *p.slot}, nil
}

// Complete closes the picker after the write succeeded.
func (p *Picker) Complete() {
	p.submitting = false
	p.closed = true
}

// Fail re-enables confirmation after a failed write. When the slot was lost
// to another booking it is marked occupied and the time must be chosen again.
func (p *Picker) Fail(slotTaken bool) {
	p.submitting = false
	if !slotTaken || p.slot == nil {
		return
	}
	taken := *p.slot
	for i := range p.options {
		if p.options[i].Slot == taken {
			p.options[i].State = appointment.SlotOccupied
		}
	}
	p.slot = nil
	p.state = SelectingTime
}

func (p *Picker) guard() error {
	if p.closed {
		return ErrClosed
	}
	if p.submitting {
		return ErrSubmitInFlight
	}
	return nil
}

func (p *Picker) reset() {
	p.date = nil
	p.slot = nil
	p.options = nil
	p.state = SelectingDate
}

// isSelectable re-evaluates elapsed time on every call, so a slot can expire
// while the picker sits open.
func (p *Picker) isSelectable(slot appointment.Slot) bool {
	return p.slotReason(slot) == nil
}

func (p *Picker) slotReason(slot appointment.Slot) error {
	if !slot.IsValid() {
		return appointment.ErrUnknownSlot
	}
	for _, o := range p.options {
		if o.Slot != slot {
			continue
		}
		switch o.State {
		case appointment.SlotOccupied:
			return appointment.ErrSlotOccupied
		case appointment.SlotClosed:
			return appointment.ErrClosedDay
		case appointment.SlotElapsed:
			return appointment.ErrSlotElapsed
		}
	}
	if p.date != nil && p.calendar.SlotElapsed(p.clock.Now(), *p.date, slot) {
		return appointment.ErrSlotElapsed
	}
	return nil
}
