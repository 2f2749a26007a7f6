package notifier

import (
	"context"
	"time"

	"petsitter-booking/internal/domain/appointment"
)

type Notifier interface {
	Notify(ctx context.Context, req *appointment.Request) error
}

type timeoutNotifier struct {
	next    Notifier
	timeout time.Duration
}

// WithTimeout bounds every delivery by d. A non-positive d leaves next as is.
func WithTimeout(next Notifier, d time.Duration) Notifier {
	if d <= 0 {
		return next
	}
	return &timeoutNotifier{next: next, timeout: d}
}

func (n *timeoutNotifier) Notify(ctx context.Context, req *appointment.Request) error {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()
	return n.next.Notify(ctx, req)
}
