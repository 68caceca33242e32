package notify

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/jayadityagandham/Scholar-Nexus/log"
)

// RedisNotifier publishes notifications on a redis channel, where the
// presentation layer subscribes.
type RedisNotifier struct {
	client  *redis.Client
	channel string
	logger  log.Logger
}

func NewRedisNotifier(addr, channel string, logger log.Logger) *RedisNotifier {
	return &RedisNotifier{
		client:  redis.NewClient(&redis.Options{Addr: addr}),
		channel: channel,
		logger:  logger,
	}
}

func (n *RedisNotifier) Notify(notification Notification) {
	data, err := json.Marshal(notification)
	if err != nil {
		n.logger.Errorf("could not marshal notification %s: %v", notification.Event, err)
		return
	}

	if err := n.client.Publish(context.Background(), n.channel, data).Err(); err != nil {
		n.logger.Errorf("could not publish notification %s: %v", notification.Event, err)
	}
}

func (n *RedisNotifier) Close() error {
	return n.client.Close()
}
