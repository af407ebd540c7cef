package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrPaymentNotFound = errors.New("payment not found")
)

var (
	ErrValidation   = errors.New("validation error")
	ErrInvalidUnit  = fmt.Errorf("%w: unknown room", ErrValidation)
	ErrInvalidRange = fmt.Errorf("%w: check-out must be at least one night after check-in", ErrValidation)
	ErrPastCheckIn  = fmt.Errorf("%w: check-in date is in the past", ErrValidation)
	ErrStayTooLong  = fmt.Errorf("%w: stay is longer than %d nights", ErrValidation, MaxStayNights)
)

var (
	ErrSlotUnavailable     = errors.New("room is already booked for these dates")
	ErrStaleTransition     = errors.New("booking status changed concurrently")
	ErrAlreadyResolved     = errors.New("booking already resolved")
	ErrAmountMismatch      = errors.New("paid amount does not match booking total")
	ErrPaymentNotCompleted = errors.New("payment is not completed")
	ErrLookupCodeTaken     = errors.New("lookup code already used for this contact")
	ErrDuplicatePayment    = errors.New("booking already has a successful payment")
)

var (
	ErrExternalProvider = errors.New("payment provider unavailable")
	ErrRateLimited      = errors.New("too many requests")
)

// AlreadyResolvedError carries the terminal status a duplicate callback ran into.
type AlreadyResolvedError struct {
	Status BookingStatus
}

func (e *AlreadyResolvedError) Error() string {
	return fmt.Sprintf("%s: status %s", ErrAlreadyResolved.Error(), e.Status)
}

func (e *AlreadyResolvedError) Is(target error) bool {
	return target == ErrAlreadyResolved
}
