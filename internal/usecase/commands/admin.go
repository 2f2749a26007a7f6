package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"

	"petsitter-booking/internal/domain/appointment"
	"petsitter-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type AdminCommands interface {
	SetSlotStatus(ctx context.Context, requestID, slotID uuid.UUID, status string) error
	SetAllSlotStatuses(ctx context.Context, requestID uuid.UUID, status string) error
}

type adminCommandsImpl struct {
	requests shared.RequestRepository
}

func NewAdminCommands(requests shared.RequestRepository) AdminCommands {
	return &adminCommandsImpl{requests: requests}
}

func (uc *adminCommandsImpl) SetSlotStatus(ctx context.Context, requestID, slotID uuid.UUID, status string) error {
	st, err := appointment.NewStatus(status)
	if err != nil {
		return err
	}
	_, err = uc.requests.SetSlotStatus(ctx, requestID, slotID, st)
	return mapRequestErr(err)
}

// SetAllSlotStatuses overrides every slot of the request, including ones already decided.
func (uc *adminCommandsImpl) SetAllSlotStatuses(ctx context.Context, requestID uuid.UUID, status string) error {
	st, err := appointment.NewStatus(status)
	if err != nil {
		return err
	}
	_, err = uc.requests.SetAllSlotStatuses(ctx, requestID, st)
	return mapRequestErr(err)
}
