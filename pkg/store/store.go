// Package store wraps the shared Redis instance that coordinates routing
// state across webhook workers: strategy rotation pointers, rolling call
// windows, idempotency keys, the session-state cache, distributed locks, and
// the tenant pub/sub channels.
//
// Redis is a cache and a coordination surface; PostgreSQL remains the
// authority. Callers treat any error from this package as StoreUnavailable
// and fall back to their degraded path.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when a key does not exist.
var ErrNotFound = errors.New("store: key not found")

// defaultOpTimeout bounds individual store operations so a stalled Redis
// never eats the webhook's 10s budget.
const defaultOpTimeout = 1 * time.Second

// Config holds Redis connection settings.
type Config struct {
	Addr     string
	Password string
	DB       int
	// OpTimeout is the per-operation deadline applied when the caller's
	// context has none (or a longer one). Zero means defaultOpTimeout.
	OpTimeout time.Duration
}

// Store is a thin, typed adapter over go-redis exposing exactly the
// operations the engine's key patterns need.
type Store struct {
	rdb       *redis.Client
	opTimeout time.Duration
}

// New creates a Store connected to the given Redis instance.
func New(cfg Config) *Store {
	timeout := cfg.OpTimeout
	if timeout == 0 {
		timeout = defaultOpTimeout
	}
	return &Store{
		rdb: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		opTimeout: timeout,
	}
}

// NewFromClient wraps an existing Redis client (useful for testing).
func NewFromClient(rdb *redis.Client) *Store {
	return &Store{rdb: rdb, opTimeout: defaultOpTimeout}
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	return s.rdb.Ping(ctx).Err()
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.rdb.Close()
}

func (s *Store) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) <= s.opTimeout {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.opTimeout)
}

// --- Strings ---

// Get returns the string value of key, or ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	val, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	return val, err
}

// Set stores a string value with the given TTL (0 = no expiry).
func (s *Store) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	return s.rdb.Set(ctx, key, value, ttl).Err()
}

// SetNX stores a value only if the key does not exist. Returns true if set.
func (s *Store) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	return s.rdb.SetNX(ctx, key, value, ttl).Result()
}

// Del removes keys.
func (s *Store) Del(ctx context.Context, keys ...string) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	return s.rdb.Del(ctx, keys...).Err()
}

// Exists reports whether the key exists.
func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	n, err := s.rdb.Exists(ctx, key).Result()
	return n > 0, err
}

// Incr atomically increments a counter and returns the new value.
// Used for round-robin pointers: fetch-and-increment, never GET then SET.
func (s *Store) Incr(ctx context.Context, key string) (int64, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	return s.rdb.Incr(ctx, key).Result()
}

// casScript swaps the value only when it still equals old. An empty old
// matches a missing key, so the first writer wins.
var casScript = redis.NewScript(`
local cur = redis.call("GET", KEYS[1])
if cur == false then cur = "" end
if cur == ARGV[1] then
  redis.call("SET", KEYS[1], ARGV[2])
  return 1
end
return 0
`)

// CompareAndSwap sets key to new iff its current value equals old
// (missing key counts as ""). Returns true when the swap happened.
func (s *Store) CompareAndSwap(ctx context.Context, key, old, new string) (bool, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	res, err := casScript.Run(ctx, s.rdb, []string{key}, old, new).Int()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}

// --- Sorted sets (load-balanced rolling windows) ---

// ZAdd adds a member with the given score.
func (s *Store) ZAdd(ctx context.Context, key string, score float64, member string) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	return s.rdb.ZAdd(ctx, key, redis.Z{Score: score, Member: member}).Err()
}

// ZCount counts members with score in [min, max] (unix-second bounds).
func (s *Store) ZCount(ctx context.Context, key string, min, max float64) (int64, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	return s.rdb.ZCount(ctx, key,
		fmt.Sprintf("%f", min), fmt.Sprintf("%f", max)).Result()
}

// ZRemRangeByScore trims members with score in [min, max].
func (s *Store) ZRemRangeByScore(ctx context.Context, key string, min, max float64) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	return s.rdb.ZRemRangeByScore(ctx, key,
		fmt.Sprintf("%f", min), fmt.Sprintf("%f", max)).Err()
}

// Expire sets a TTL on an existing key.
func (s *Store) Expire(ctx context.Context, key string, ttl time.Duration) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	return s.rdb.Expire(ctx, key, ttl).Err()
}

// --- Hashes (session-state cache) ---

// HSet stores field/value pairs in a hash and refreshes its TTL.
func (s *Store) HSet(ctx context.Context, key string, fields map[string]string, ttl time.Duration) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	pipe := s.rdb.TxPipeline()
	flat := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		flat = append(flat, k, v)
	}
	pipe.HSet(ctx, key, flat...)
	if ttl > 0 {
		pipe.Expire(ctx, key, ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// HGetAll returns all fields of a hash; ErrNotFound when the key is absent.
func (s *Store) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	fields, err := s.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, ErrNotFound
	}
	return fields, nil
}

// --- Distributed locks ---

// unlockScript releases a lock only when the caller still owns it; an
// expired-and-reacquired lock is left for its new owner.
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`)

// AcquireLock takes a TTL'd lock and returns the owner token, or "" when the
// lock is already held.
func (s *Store) AcquireLock(ctx context.Context, key string, ttl time.Duration) (string, error) {
	owner := uuid.New().String()
	ok, err := s.SetNX(ctx, key, owner, ttl)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return owner, nil
}

// ReleaseLock deletes the lock iff owner still holds it; otherwise the lock
// is left to expire.
func (s *Store) ReleaseLock(ctx context.Context, key, owner string) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	return unlockScript.Run(ctx, s.rdb, []string{key}, owner).Err()
}

// --- Pub/sub ---

// Publish broadcasts a message on a named channel.
func (s *Store) Publish(ctx context.Context, channel string, payload []byte) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	return s.rdb.Publish(ctx, channel, payload).Err()
}

// Subscribe subscribes to one or more channels. The returned PubSub must be
// closed by the caller.
func (s *Store) Subscribe(ctx context.Context, channels ...string) *redis.PubSub {
	return s.rdb.Subscribe(ctx, channels...)
}
