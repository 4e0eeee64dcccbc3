package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
)

// RedisPublisher publishes change events to a per-user Redis channel
type RedisPublisher struct {
	rdb           *redis.Client
	channelPrefix string
}

// NewRedisPublisher connects to Redis and verifies the connection
func NewRedisPublisher(redisURL, channelPrefix string) (*RedisPublisher, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisPublisher{rdb: rdb, channelPrefix: channelPrefix}, nil
}

// Publish sends the event to the owning user's channel. Errors are logged,
// never returned: a dropped notification must not fail the write behind it.
func (p *RedisPublisher) Publish(ctx context.Context, event ChangeEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("events: failed to marshal change event: %v", err)
		return
	}

	channel := fmt.Sprintf("%s:%s", p.channelPrefix, event.UserID)
	if err := p.rdb.Publish(ctx, channel, payload).Err(); err != nil {
		log.Printf("events: failed to publish to %s: %v", channel, err)
	}
}

func (p *RedisPublisher) Close() error {
	return p.rdb.Close()
}
