package locker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultRedisTTL   = 10 * time.Second
	DefaultRetryDelay = 25 * time.Millisecond
)

// unlockScript удаляет ключ только если значение совпадает с нашим токеном
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis распределенная блокировка на SET NX PX.
// TTL ограничивает время жизни блокировки, если процесс-владелец упал.
type Redis struct {
	client     redis.Cmdable
	prefix     string
	ttl        time.Duration
	retryDelay time.Duration
}

// RedisOption настройка Redis-блокировки
type RedisOption func(*Redis)

func WithTTL(ttl time.Duration) RedisOption {
	return func(r *Redis) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

func WithRetryDelay(d time.Duration) RedisOption {
	return func(r *Redis) {
		if d > 0 {
			r.retryDelay = d
		}
	}
}

func WithPrefix(prefix string) RedisOption {
	return func(r *Redis) {
		r.prefix = prefix
	}
}

// NewRedis создает распределенный locker
func NewRedis(client redis.Cmdable, opts ...RedisOption) *Redis {
	r := &Redis{
		client:     client,
		prefix:     "lock:",
		ttl:        DefaultRedisTTL,
		retryDelay: DefaultRetryDelay,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Redis) Lock(ctx context.Context, key string) (Release, error) {
	fullKey := r.prefix + key
	token := uuid.NewString()

	ticker := time.NewTicker(r.retryDelay)
	defer ticker.Stop()

	for {
		acquired, err := r.client.SetNX(ctx, fullKey, token, r.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%w: key=%s: %v", ErrLockTimeout, key, ctx.Err())
			}
			return nil, fmt.Errorf("%w: SETNX key=%s: %v", ErrBackend, fullKey, err)
		}
		if acquired {
			return r.release(fullKey, token), nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: key=%s: %v", ErrLockTimeout, key, ctx.Err())
		case <-ticker.C:
		}
	}
}

func (r *Redis) release(fullKey, token string) Release {
	return func() error {
		// Контекст запроса мог уже истечь, освобождаем независимо от него
		ctx, cancel := context.WithTimeout(context.Background(), r.ttl)
		defer cancel()

		deleted, err := unlockScript.Run(ctx, r.client, []string{fullKey}, token).Int()
		if err != nil {
			return fmt.Errorf("%w: unlock key=%s: %v", ErrBackend, fullKey, err)
		}
		if deleted == 0 {
			return fmt.Errorf("%w: key=%s", ErrNotOwner, fullKey)
		}
		return nil
	}
}
