package domain

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidStatus is returned when a schedule status label is not recognized
	ErrInvalidStatus = errors.New("invalid schedule status")

	// ErrCurrencyUnknown is returned when a currency code has no configured rate
	ErrCurrencyUnknown = errors.New("unknown currency code")
)
