//go:build unit

package commands_test

import (
	"context"
	"testing"

	"petsitter-booking/internal/domain/appointment"
	"petsitter-booking/internal/infra"
	"petsitter-booking/internal/pkg/errs"
	"petsitter-booking/internal/usecase/commands"
	sharedmock "petsitter-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAdminCommands_SetSlotStatus(t *testing.T) {
	ctx := context.Background()
	requestID, slotID := uuid.New(), uuid.New()

	tests := []struct {
		name     string
		status   string
		setup    func(m *sharedmock.MockRequestRepository)
		sentinel error
	}{
		{
			name:   "accepted",
			status: "accepted",
			setup: func(m *sharedmock.MockRequestRepository) {
				m.EXPECT().SetSlotStatus(ctx, requestID, slotID, appointment.StatusAccepted).Return(nil, nil)
			},
		},
		{
			name:     "invalid status never reaches the store",
			status:   "maybe",
			setup:    func(*sharedmock.MockRequestRepository) {},
			sentinel: appointment.ErrInvalidStatus,
		},
		{
			name:   "unknown request",
			status: "denied",
			setup: func(m *sharedmock.MockRequestRepository) {
				m.EXPECT().SetSlotStatus(ctx, requestID, slotID, appointment.StatusDenied).
					Return(nil, infra.WrapRepoErr("request not found", nil, infra.KindNotFound))
			},
			sentinel: errs.ErrRequestNotFound,
		},
		{
			name:   "unknown slot",
			status: "denied",
			setup: func(m *sharedmock.MockRequestRepository) {
				m.EXPECT().SetSlotStatus(ctx, requestID, slotID, appointment.StatusDenied).
					Return(nil, infra.WrapRepoErr("slot not found", appointment.ErrSlotNotFound, infra.KindNotFound))
			},
			sentinel: errs.ErrSlotNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := sharedmock.NewMockRequestRepository(ctrl)
			tt.setup(repo)

			err := commands.NewAdminCommands(repo).SetSlotStatus(ctx, requestID, slotID, tt.status)
			if tt.sentinel == nil {
				require.NoError(t, err)
				return
			}
			assert.True(t, errs.Is(err, tt.sentinel), "got %v", err)
		})
	}
}

func TestAdminCommands_SetAllSlotStatuses(t *testing.T) {
	ctx := context.Background()
	requestID := uuid.New()

	t.Run("bulk accept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := sharedmock.NewMockRequestRepository(ctrl)
		repo.EXPECT().SetAllSlotStatuses(ctx, requestID, appointment.StatusAccepted).Return(nil, nil).Times(1)

		require.NoError(t, commands.NewAdminCommands(repo).SetAllSlotStatuses(ctx, requestID, "accepted"))
	})

	t.Run("unknown request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := sharedmock.NewMockRequestRepository(ctrl)
		repo.EXPECT().SetAllSlotStatuses(ctx, requestID, appointment.StatusDenied).
			Return(nil, infra.WrapRepoErr("request not found", nil, infra.KindNotFound))

		err := commands.NewAdminCommands(repo).SetAllSlotStatuses(ctx, requestID, "denied")
		assert.True(t, errs.Is(err, errs.ErrRequestNotFound))
	})
}
