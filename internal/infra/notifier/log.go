package notifier

import (
	"context"
	"log/slog"

	"petsitter-booking/internal/domain/appointment"
)

// LogNotifier writes each request as a single structured record.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, req *appointment.Request) error {
	n.logger.InfoContext(ctx, "New appointment request",
		slog.String("event", EventAppointmentRequested),
		slog.Any("request", NewPayload(req)),
	)
	return nil
}
