package notifier

import (
	"context"

	"petsitter-booking/internal/domain/appointment"
	"petsitter-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// Publisher is the subset of *redis.Client the notifier needs.
type Publisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

type RedisNotifier struct {
	client  Publisher
	channel string
}

func NewRedisNotifier(client Publisher, channel string) *RedisNotifier {
	return &RedisNotifier{client: client, channel: channel}
}

func (n *RedisNotifier) Notify(ctx context.Context, req *appointment.Request) error {
	data, err := encode(req)
	if err != nil {
		return errs.Wrap(err, "encode appointment request")
	}
	if err := n.client.Publish(ctx, n.channel, data).Err(); err != nil {
		return errs.Wrap(err, "publish appointment request to redis")
	}
	return nil
}
