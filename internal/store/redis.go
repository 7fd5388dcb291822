package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient creates and pings a Redis client with optional password auth.
func NewRedisClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}

// ErrLockBusy is returned when a key lock cannot be acquired in time.
var ErrLockBusy = errors.New("lock busy")

const (
	lockTTL       = 10 * time.Second
	lockRetryWait = 50 * time.Millisecond
	lockAttempts  = 40
)

// unlockScript deletes the lock only if we still own it.
var unlockScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// KeyLock is a Redis SET-NX mutex keyed by an arbitrary string. It
// serializes the journal post read-modify-write across requests.
type KeyLock struct {
	rdb *redis.Client
}

func NewKeyLock(rdb *redis.Client) *KeyLock {
	return &KeyLock{rdb: rdb}
}

// Acquire blocks until the lock for key is held, the retry budget runs
// out (ErrLockBusy), or ctx is done. The returned func releases the lock.
func (l *KeyLock) Acquire(ctx context.Context, key string) (func(), error) {
	token := uuid.New().String()
	redisKey := "lock:" + key

	for i := 0; i < lockAttempts; i++ {
		ok, err := l.rdb.SetNX(ctx, redisKey, token, lockTTL).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			release := func() {
				relCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				unlockScript.Run(relCtx, l.rdb, []string{redisKey}, token)
			}
			return release, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetryWait):
		}
	}
	return nil, ErrLockBusy
}
