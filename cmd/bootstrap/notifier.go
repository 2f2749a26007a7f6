package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"petsitter-booking/internal/infra/notifier"
	"petsitter-booking/internal/pkg/config"
	"petsitter-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewNotifier,
	),
)

// NewNotifier picks the delivery channel from NOTIFIER_KIND and closes its client on stop.
func NewNotifier(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.Notifier, error) {
	nc := cfg.Notifier
	var n notifier.Notifier

	switch nc.Kind {
	case "", config.NotifierLog:
		n = notifier.NewLogNotifier(logger)
	case config.NotifierRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     nc.RedisAddr,
			Password: nc.RedisPassword,
			DB:       nc.RedisDB,
		})
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := client.Ping(ctx).Err(); err != nil {
					logger.Warn("Redis notifier is unreachable", "addr", nc.RedisAddr, "error", err)
				}
				return nil
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		n = notifier.NewRedisNotifier(client, nc.RedisChannel)
	case config.NotifierKafka:
		writer := notifier.NewKafkaWriter(nc.KafkaBrokers, nc.KafkaTopic)
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return writer.Close()
			},
		})
		n = notifier.NewKafkaNotifier(writer)
	default:
		return nil, fmt.Errorf("unknown NOTIFIER_KIND %q", nc.Kind)
	}

	logger.Info("Notifier configured", "kind", nc.Kind, "timeout", nc.Timeout)
	return notifier.WithTimeout(n, nc.Timeout), nil
}
