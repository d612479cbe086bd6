package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const popTimeout = 5 * time.Second

// NewRedisClient creates a redis client and verifies connectivity.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// RedisPublisher publishes messages onto a redis list.
type RedisPublisher struct {
	client    *redis.Client
	queueName string
}

// NewRedisPublisher creates a publisher for the given queue.
func NewRedisPublisher(client *redis.Client, queueName string) *RedisPublisher {
	return &RedisPublisher{client: client, queueName: queueName}
}

// Publish pushes a single message.
func (p *RedisPublisher) Publish(ctx context.Context, payload []byte) error {
	if err := p.client.LPush(ctx, p.queueName, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", p.queueName, err)
	}
	return nil
}

// PublishBatch pushes all payloads in one pipelined round trip.
func (p *RedisPublisher) PublishBatch(ctx context.Context, payloads [][]byte) error {
	if len(payloads) == 0 {
		return nil
	}
	pipe := p.client.Pipeline()
	for _, payload := range payloads {
		pipe.LPush(ctx, p.queueName, payload)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to publish batch of %d to %s: %w", len(payloads), p.queueName, err)
	}
	return nil
}

// Close is a no-op; the redis client is shared and closed by the owner.
func (p *RedisPublisher) Close() error {
	return nil
}

// RedisConsumer pops messages from a redis list and dispatches them.
type RedisConsumer struct {
	client    *redis.Client
	queueName string
	log       logrus.FieldLogger
}

// NewRedisConsumer creates a consumer for the given queue.
func NewRedisConsumer(client *redis.Client, queueName string, log logrus.FieldLogger) *RedisConsumer {
	return &RedisConsumer{client: client, queueName: queueName, log: log}
}

// Consume blocks, popping messages and invoking handler per message until
// ctx is cancelled. Handler errors are logged; the message is dropped, not
// redelivered.
func (c *RedisConsumer) Consume(ctx context.Context, handler Handler) error {
	for {
		result, err := c.client.BRPop(ctx, popTimeout, c.queueName).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.WithError(err).Errorf("failed to pop from %s", c.queueName)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Second):
			}
			continue
		}

		// BRPop returns [queueName, value].
		if len(result) != 2 {
			continue
		}
		if err := handler(ctx, []byte(result[1])); err != nil {
			c.log.WithError(err).Errorf("handler failed for message from %s", c.queueName)
		}
	}
}

// Close is a no-op; the redis client is shared and closed by the owner.
func (c *RedisConsumer) Close() error {
	return nil
}
