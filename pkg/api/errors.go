package api

import (
	"errors"
)

var (
	// ErrInvalidRange is returned when an operation names an interval which
	// is empty, reversed, or extends past the shares minted so far.
	ErrInvalidRange = errors.New("invalid range")

	// ErrOwnershipViolation is returned when a transfer names a sender which
	// does not own every share in the interval.
	ErrOwnershipViolation = errors.New("ownership violation")

	// ErrInvalidAmount is returned when a mint is given a zero amount, or an
	// amount so large that share IDs would overflow.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNotFound is returned when a query names a share which has not been
	// minted, or an owner holding no shares.
	ErrNotFound = errors.New("not found")
)
