package appointment

import "petsitter-booking/internal/pkg/errs"

var (
	ErrInvalidStatus       = errs.New("invalid appointment status")
	ErrInvalidTimeCategory = errs.New("invalid time category")
	ErrNoSlots             = errs.New("request must contain at least one slot")
	ErrSlotNotFound        = errs.New("slot not found")
)
