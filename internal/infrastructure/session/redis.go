package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "bb:session:"
const redisChannelPrefix = "bb:session-events:"

// RedisStore keeps sessions in Redis so multiple console replicas share
// them. Watch is backed by pub/sub, which also carries logout events
// across replicas.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a RedisStore with the given connection options.
func NewRedisStore(opts *redis.Options, ttl time.Duration) *RedisStore {
	return &RedisStore{client: redis.NewClient(opts), ttl: ttl}
}

// Ping verifies connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context, id string) (Session, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return Session{}, nil
	}
	if err != nil {
		return Session{}, fmt.Errorf("session get: %w", err)
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return Session{}, fmt.Errorf("session decode: %w", err)
	}
	return sess, nil
}

// Put implements Store.
func (s *RedisStore) Put(ctx context.Context, id string, sess Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+id, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("session put: %w", err)
	}
	return s.publish(ctx, id, data)
}

// Clear implements Store.
func (s *RedisStore) Clear(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+id).Err(); err != nil && err != redis.Nil {
		return fmt.Errorf("session clear: %w", err)
	}
	data, _ := json.Marshal(Session{})
	return s.publish(ctx, id, data)
}

func (s *RedisStore) publish(ctx context.Context, id string, data []byte) error {
	if err := s.client.Publish(ctx, redisChannelPrefix+id, data).Err(); err != nil {
		return fmt.Errorf("session publish: %w", err)
	}
	return nil
}

// Watch implements Store.
func (s *RedisStore) Watch(id string) (<-chan Session, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	pubsub := s.client.Subscribe(ctx, redisChannelPrefix+id)

	out := make(chan Session, 4)
	go func() {
		defer close(out)
		for msg := range pubsub.Channel() {
			var sess Session
			if err := json.Unmarshal([]byte(msg.Payload), &sess); err != nil {
				continue
			}
			select {
			case out <- sess:
			default:
			}
		}
	}()

	return out, func() {
		cancel()
		_ = pubsub.Close()
	}
}

// Close implements Store.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
