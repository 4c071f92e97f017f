package domain

import "errors"

// Domain errors (no external dependencies). Every one maps to a 4xx at the
// HTTP layer; none is fatal to the process.
var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidQuantity      = errors.New("quantity must be a positive integer")
	ErrInsufficientQuantity = errors.New("insufficient quantity at source location")
	ErrUnknownLocation      = errors.New("unknown location")
	ErrUnknownItem          = errors.New("unknown item")
	ErrNotFound             = errors.New("resource not found")
	ErrDuplicate            = errors.New("duplicate resource")
)
