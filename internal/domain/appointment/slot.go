package appointment

import (
	"errors"
	"time"
)

var (
	ErrUnknownSlot = errors.New("time is not one of the clinic slots")
	ErrInvalidDate = errors.New("invalid calendar date")
)

const (
	dateLayout       = "2006-01-02"
	slotLayout       = "15:04"
	slotLabelLength  = len(slotLayout)
	storedSlotSuffix = ":00"
)

// Slot is one of the fixed hourly labels an appointment may occupy.
type Slot string

// Slots is the ordered daily enumeration. Business hours end with a slot at
// exactly 18:00, so the list is kept literal rather than generated.
var Slots = []Slot{
	"08:00", "09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00", "18:00",
}

var slotIndex = func() map[Slot]int {
	m := make(map[Slot]int, len(Slots))
	for i, s := range Slots {
		m[s] = i
	}
	return m
}()

// ParseSlot accepts exactly one of the "HH:MM" labels in Slots.
func ParseSlot(s string) (Slot, error) {
	slot := Slot(s)
	if _, ok := slotIndex[slot]; !ok {
		return "", ErrUnknownSlot
	}
	return slot, nil
}

// ParseStoredSlot also accepts the "HH:MM:SS" form a time column returns,
// as long as the seconds are zero.
func ParseStoredSlot(s string) (Slot, error) {
	if len(s) == slotLabelLength+len(storedSlotSuffix) {
		if s[slotLabelLength:] != storedSlotSuffix {
			return "", ErrUnknownSlot
		}
		s = s[:slotLabelLength]
	}
	return ParseSlot(s)
}

func (s Slot) String() string {
	return string(s)
}

func (s Slot) IsValid() bool {
	_, ok := slotIndex[s]
	return ok
}

// Index is the position in Slots, or -1 for a label outside the enumeration.
func (s Slot) Index() int {
	if i, ok := slotIndex[s]; ok {
		return i
	}
	return -1
}

// Offset is the time of day as a duration since midnight.
func (s Slot) Offset() time.Duration {
	t, err := time.Parse(slotLayout, string(s))
	if err != nil {
		return 0
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
}

// SortSlots returns the distinct valid labels of in, in enumeration order.
func SortSlots(in []Slot) []Slot {
	seen := make([]bool, len(Slots))
	for _, s := range in {
		if i := s.Index(); i >= 0 {
			seen[i] = true
		}
	}
	out := make([]Slot, 0, len(in))
	for i, ok := range seen {
		if ok {
			out = append(out, Slots[i])
		}
	}
	return out
}

// Date is a calendar day with no time-of-day or zone attached.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf takes the calendar day of t as seen in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return d.t.Format(dateLayout)
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Time returns midnight UTC of the day, the representation the store uses.
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) Weekday() time.Weekday {
	return d.t.Weekday()
}

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }

// DaysUntil counts whole days from d to o (negative when o is earlier).
func (d Date) DaysUntil(o Date) int {
	return int(o.t.Sub(d.t).Hours() / 24)
}

// At returns the instant the slot starts on this day in loc.
func (d Date) At(slot Slot, loc *time.Location) time.Time {
	y, m, day := d.t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, loc).Add(slot.Offset())
}
