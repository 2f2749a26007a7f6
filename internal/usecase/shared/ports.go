package shared

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/shared/$GOFILE -package=sharedmock

import (
	"context"

	"petsitter-booking/internal/domain/appointment"
	"petsitter-booking/internal/domain/session"

	"github.com/google/uuid"
)

type RequestRepository interface {
	Append(ctx context.Context, req *appointment.Request) error
	SetSlotStatus(ctx context.Context, requestID, slotID uuid.UUID, status appointment.Status) (*appointment.Request, error)
	SetAllSlotStatuses(ctx context.Context, requestID uuid.UUID, status appointment.Status) (*appointment.Request, error)
}

type SessionRepository interface {
	Create(ctx context.Context, s *session.Session) error
	// Update: fn runs on a working copy under the store lock; the copy is kept only when fn returns nil
	Update(ctx context.Context, id uuid.UUID, fn func(ctx context.Context, s *session.Session) error) (*session.Session, error)
}

// Notifier delivers a stored request to the sitter. Failures never undo the store write.
type Notifier interface {
	Notify(ctx context.Context, req *appointment.Request) error
}
