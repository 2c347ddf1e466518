package appointment

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// OccupyingStatuses are the statuses that hold a slot.
var OccupyingStatuses = []Status{StatusConfirmed, StatusPending}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) OccupiesSlot() bool {
	return s == StatusPending || s == StatusConfirmed
}

// CanTransitionTo encodes pending→confirmed, pending→cancelled and
// confirmed→cancelled. cancelled is terminal.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCancelled
	default:
		return false
	}
}
