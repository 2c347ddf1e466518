package commands

import (
	"clinic-booking/internal/pkg/errs"
)

var (
	// ErrSlotTaken means another booking won the slot between the
	// availability read and the insert. The client should pick again.
	ErrSlotTaken = errs.New("slot was taken by another booking")
	// ErrReservationWriteFailed is a retryable store failure on insert.
	ErrReservationWriteFailed = errs.New("reservation could not be saved")
	ErrAppointmentNotFound    = errs.New("appointment not found")
	ErrPlanNotFound           = errs.New("session plan not found")
	ErrForbidden              = errs.New("operation not allowed for this caller")
	ErrSettingsUnavailable    = errs.New("notification settings could not be loaded")
)
