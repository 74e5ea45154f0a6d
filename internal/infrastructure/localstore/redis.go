// Package localstore provides the terminal-local persistence implementations
// backing the domain store interfaces: a Redis store for production and an
// in-memory store for tests and single-binary setups.
package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/opticore/optipos/internal/domain/entity"
	"github.com/opticore/optipos/internal/domain/store"
)

const keyPrefix = "optipos"

// NewRedisClient connects to Redis and verifies the connection with a ping.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("localstore: redis ping: %w", err)
	}
	return client, nil
}

func holdKey(terminalID string) string {
	return fmt.Sprintf("%s:held:%s", keyPrefix, terminalID)
}

func sessionKey(id string) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

func idemKey(key string) string {
	return fmt.Sprintf("%s:idem:%s", keyPrefix, key)
}

// RedisHoldStore keeps held transactions in a per-terminal Redis hash.
type RedisHoldStore struct {
	client *redis.Client
}

var _ store.HoldStore = (*RedisHoldStore)(nil)

func NewRedisHoldStore(client *redis.Client) *RedisHoldStore {
	return &RedisHoldStore{client: client}
}

func (s *RedisHoldStore) Put(ctx context.Context, terminalID string, h *entity.HeldTransaction) error {
	raw, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("localstore: encode held transaction: %w", err)
	}
	return s.client.HSet(ctx, holdKey(terminalID), fmt.Sprint(h.ID), raw).Err()
}

func (s *RedisHoldStore) List(ctx context.Context, terminalID string) ([]entity.HeldTransaction, error) {
	values, err := s.client.HGetAll(ctx, holdKey(terminalID)).Result()
	if err != nil {
		return nil, fmt.Errorf("localstore: list held: %w", err)
	}
	held := make([]entity.HeldTransaction, 0, len(values))
	for _, raw := range values {
		var h entity.HeldTransaction
		if err := json.Unmarshal([]byte(raw), &h); err != nil {
			continue
		}
		held = append(held, h)
	}
	return held, nil
}

func (s *RedisHoldStore) Take(ctx context.Context, terminalID string, id int64) (*entity.HeldTransaction, error) {
	field := fmt.Sprint(id)
	raw, err := s.client.HGet(ctx, holdKey(terminalID), field).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("localstore: take held: %w", err)
	}
	var h entity.HeldTransaction
	if err := json.Unmarshal([]byte(raw), &h); err != nil {
		return nil, fmt.Errorf("localstore: decode held transaction: %w", err)
	}
	if err := s.client.HDel(ctx, holdKey(terminalID), field).Err(); err != nil {
		return nil, fmt.Errorf("localstore: remove held: %w", err)
	}
	return &h, nil
}

func (s *RedisHoldStore) Delete(ctx context.Context, terminalID string, id int64) error {
	return s.client.HDel(ctx, holdKey(terminalID), fmt.Sprint(id)).Err()
}

// RedisSessionStore keeps terminal sessions as TTL-bound Redis strings.
type RedisSessionStore struct {
	client *redis.Client
}

var _ store.SessionStore = (*RedisSessionStore)(nil)

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) Save(ctx context.Context, sess *entity.Session, ttl time.Duration) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("localstore: encode session: %w", err)
	}
	return s.client.Set(ctx, sessionKey(sess.ID), raw, ttl).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*entity.Session, error) {
	raw, err := s.client.Get(ctx, sessionKey(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("localstore: get session: %w", err)
	}
	var sess entity.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, fmt.Errorf("localstore: decode session: %w", err)
	}
	return &sess, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}

// RedisIdempotencyStore records checkout idempotency keys with SetNX. A
// pending claim is an empty value; StoreResponse requires a non-empty body.
type RedisIdempotencyStore struct {
	client *redis.Client
}

var _ store.IdempotencyStore = (*RedisIdempotencyStore)(nil)

func NewRedisIdempotencyStore(client *redis.Client) *RedisIdempotencyStore {
	return &RedisIdempotencyStore{client: client}
}

func (s *RedisIdempotencyStore) Claim(ctx context.Context, key string, ttl time.Duration) (store.ClaimState, []byte, error) {
	ok, err := s.client.SetNX(ctx, idemKey(key), "", ttl).Result()
	if err != nil {
		return store.ClaimPending, nil, fmt.Errorf("localstore: claim idempotency key: %w", err)
	}
	if ok {
		return store.ClaimFresh, nil, nil
	}
	raw, err := s.client.Get(ctx, idemKey(key)).Result()
	if err == redis.Nil {
		// Released between SetNX and Get; the caller retries shortly.
		return store.ClaimPending, nil, nil
	}
	if err != nil {
		return store.ClaimPending, nil, fmt.Errorf("localstore: read idempotent response: %w", err)
	}
	if raw == "" {
		return store.ClaimPending, nil, nil
	}
	return store.ClaimReplay, []byte(raw), nil
}

func (s *RedisIdempotencyStore) StoreResponse(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return s.client.Set(ctx, idemKey(key), response, ttl).Err()
}

func (s *RedisIdempotencyStore) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, idemKey(key)).Err()
}
