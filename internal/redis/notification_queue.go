package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"wasteCollect/internal/domain"
	"wasteCollect/pkg/e"

	"github.com/redis/go-redis/v9"
)

// NotificationQueue is a FIFO of collection events backed by a Redis list:
// LPUSH on enqueue, BRPOP on dequeue.
type NotificationQueue struct {
	client *redis.Client
	key    string
}

func NewNotificationQueue(client *redis.Client, key string) *NotificationQueue {
	if key == "" {
		key = NotificationsKey
	}
	return &NotificationQueue{client: client, key: key}
}

func (q *NotificationQueue) Enqueue(ctx context.Context, event domain.CollectionEvent) error {
	b, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

// Dequeue blocks up to timeout and returns e.ErrQueueEmpty when nothing came.
func (q *NotificationQueue) Dequeue(ctx context.Context, timeout time.Duration) (domain.CollectionEvent, error) {
	var ev domain.CollectionEvent

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ev, e.ErrQueueEmpty
		}
		return ev, err
	}
	if len(res) < 2 {
		return ev, e.ErrQueueEmpty
	}
	if err := json.Unmarshal([]byte(res[1]), &ev); err != nil {
		return ev, err
	}
	return ev, nil
}

func (q *NotificationQueue) Len(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.key).Result()
}
