package plan

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTotal              = errors.New("total sessions must be positive")
	ErrInvalidProgress           = errors.New("completed sessions out of range")
	ErrPlanCompleted             = errors.New("plan has no remaining sessions")
	ErrSessionNumberOutOfRange   = errors.New("session number outside the plan")
	ErrSessionNumberWithoutPlan  = errors.New("session number given without a plan")
	ErrPlanBelongsToAnotherOwner = errors.New("plan belongs to another client")
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusCompleted
}

// SessionPlan is a purchased bundle of sessions of one service.
type SessionPlan struct {
	id                uuid.UUID
	clientID          uuid.UUID
	serviceID         string
	serviceTitle      string
	name              string
	totalSessions     int
	completedSessions int
	status            Status
	createdAt         time.Time
}

func NewSessionPlan(clientID uuid.UUID, serviceID, serviceTitle, name string, totalSessions int, now time.Time) (*SessionPlan, error) {
	if totalSessions < 1 {
		return nil, ErrInvalidTotal
	}
	return &SessionPlan{
		id:            uuid.New(),
		clientID:      clientID,
		serviceID:     serviceID,
		serviceTitle:  serviceTitle,
		name:          name,
		totalSessions: totalSessions,
		status:        StatusActive,
		createdAt:     now,
	}, nil
}

// ReconstructSessionPlan rebuilds a stored plan; status is derived from the
// counters so a stale column can never contradict them.
func ReconstructSessionPlan(
	id, clientID uuid.UUID,
	serviceID, serviceTitle, name string,
	totalSessions, completedSessions int,
	createdAt time.Time,
) (*SessionPlan, error) {
	if totalSessions < 1 {
		return nil, ErrInvalidTotal
	}
	if completedSessions < 0 || completedSessions > totalSessions {
		return nil, ErrInvalidProgress
	}
	p := &SessionPlan{
		id:                id,
		clientID:          clientID,
		serviceID:         serviceID,
		serviceTitle:      serviceTitle,
		name:              name,
		totalSessions:     totalSessions,
		completedSessions: completedSessions,
		createdAt:         createdAt,
	}
	p.status = p.deriveStatus()
	return p, nil
}

func (p *SessionPlan) deriveStatus() Status {
	if p.completedSessions == p.totalSessions {
		return StatusCompleted
	}
	return StatusActive
}

// ValidateSessionNumber checks a booking's session_number against the plan.
func (p *SessionPlan) ValidateSessionNumber(n int) error {
	if n < 1 || n > p.totalSessions {
		return ErrSessionNumberOutOfRange
	}
	if p.status == StatusCompleted {
		return ErrPlanCompleted
	}
	return nil
}

// RecordCompletedSession advances progress and completes the plan when the
// last session is done.
func (p *SessionPlan) RecordCompletedSession() error {
	if p.completedSessions >= p.totalSessions {
		return ErrPlanCompleted
	}
	p.completedSessions++
	p.status = p.deriveStatus()
	return nil
}

func (p *SessionPlan) RemainingSessions() int {
	return p.totalSessions - p.completedSessions
}

func (p *SessionPlan) BelongsTo(clientID uuid.UUID) bool {
	return p.clientID == clientID
}

func (p *SessionPlan) ID() uuid.UUID          { return p.id }
func (p *SessionPlan) ClientID() uuid.UUID    { return p.clientID }
func (p *SessionPlan) ServiceID() string      { return p.serviceID }
func (p *SessionPlan) ServiceTitle() string   { return p.serviceTitle }
func (p *SessionPlan) Name() string           { return p.name }
func (p *SessionPlan) TotalSessions() int     { return p.totalSessions }
func (p *SessionPlan) CompletedSessions() int { return p.completedSessions }
func (p *SessionPlan) Status() Status         { return p.status }
func (p *SessionPlan) CreatedAt() time.Time   { return p.createdAt }
