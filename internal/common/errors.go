// Package common defines sentinel errors and small helpers shared across
// peoplekeeper packages. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Input parsing errors.
	ErrInvalidFormat = errors.New("invalid format")

	// Record store errors.
	ErrorNotFound  = errors.New("not found")
	ErrDuplicateID = errors.New("duplicate id")

	// Storage errors.
	ErrIO = errors.New("storage i/o error")
)
