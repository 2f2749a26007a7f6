package commands

import (
	"petsitter-booking/internal/domain/appointment"
	"petsitter-booking/internal/infra"
	"petsitter-booking/internal/pkg/errs"
)

func mapSessionErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrSessionNotFound)
	}
	return err
}

func mapRequestErr(err error) error {
	if !infra.IsKind(err, infra.KindNotFound) {
		return err
	}
	if errs.Is(err, appointment.ErrSlotNotFound) {
		return errs.Mark(err, errs.ErrSlotNotFound)
	}
	return errs.Mark(err, errs.ErrRequestNotFound)
}
