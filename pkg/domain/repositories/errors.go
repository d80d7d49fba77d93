package repositories

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist
	ErrNotFound = errors.New("not found")

	// ErrInsufficientStock is returned when a sale asks for more units than are on hand
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrDuplicate is returned when a unique field is already taken
	ErrDuplicate = errors.New("duplicate")
)
