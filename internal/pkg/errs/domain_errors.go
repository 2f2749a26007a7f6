package errs

import "errors"

// Sentinel errors shared by the command and query sides
var (
	// Lookup errors
	ErrSessionNotFound = errors.New("session not found")
	ErrRequestNotFound = errors.New("appointment request not found")
	ErrSlotNotFound    = errors.New("appointment slot not found")

	// Input errors
	ErrInvalidInput = errors.New("invalid input")
)
