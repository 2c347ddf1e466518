package reminder

import (
	"errors"
	"time"
)

var ErrInvalidWindow = errors.New("reminder window bounds are invalid")

// Window is the lead-time band [Min, Max] before an appointment in which a
// dispatcher run sends its reminder. Its width must be at least the
// scheduler's invocation interval for every appointment to be seen once.
type Window struct {
	Min time.Duration
	Max time.Duration
}

func DefaultWindow() Window {
	return Window{Min: 45 * time.Minute, Max: 75 * time.Minute}
}

func NewWindow(min, max time.Duration) (Window, error) {
	if min <= 0 || max < min {
		return Window{}, ErrInvalidWindow
	}
	return Window{Min: min, Max: max}, nil
}

// Contains reports whether start lies in [now+Min, now+Max].
func (w Window) Contains(now, start time.Time) bool {
	lead := start.Sub(now)
	return lead >= w.Min && lead <= w.Max
}

func (w Window) Width() time.Duration {
	return w.Max - w.Min
}
