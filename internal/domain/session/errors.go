package session

import (
	"strings"

	"petsitter-booking/internal/pkg/errs"
)

var ErrIncomplete = errs.New("submission is incomplete")

// FieldSlots is reported when the draft holds no slots.
const FieldSlots = "slots"

// ValidationError lists every missing field of a rejected submission.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return ErrIncomplete.Error() + ": missing " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrIncomplete
}
