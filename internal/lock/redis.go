package lock

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/ManosLatam/marketplace-api/internal/httperr"
	"github.com/ManosLatam/marketplace-api/internal/logger"
)

// releaseScript deletes the key only if it still holds our token, so an
// expired lock re-acquired by someone else is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
    return redis.call("del", KEYS[1])
end
return 0
`)

// Locker serializes payment attempts. One lock per user guards the credit
// reservation against a concurrent second attempt racing the same rows.
type Locker struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Locker {
	return &Locker{rdb: rdb}
}

// Acquire returns a release func, or a "payment_in_progress" business error
// when the key is already held.
func (l *Locker) Acquire(
	ctx context.Context,
	key string,
	ttl time.Duration,
) (func(), error) {

	token := uuid.NewString()

	ok, err := l.rdb.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("payment_in_progress")
	}

	release := func() {
		if err := releaseScript.Run(context.Background(), l.rdb, []string{key}, token).Err(); err != nil && err != redis.Nil {
			logger.ErrorLogger.Errorf("lock release failed key=%s: %v", key, err)
		}
	}
	return release, nil
}
