package infra_redis_ratelimit

import (
	"fmt"
	"time"

	"github.com/go-redis/redis"
)

// Driver is a fixed-window counter: first hit in a window sets the key with
// the window TTL, later hits increment it. A deny is terminal for the caller,
// no retry.
type Driver struct {
	client *redis.Client
	key    string
}

func New(client *redis.Client, key string) *Driver {
	return &Driver{
		client: client,
		key:    key,
	}
}

func (d *Driver) Allow(identifier string, limit int, window time.Duration) (bool, error) {
	key := d.getFullKey(identifier, window)

	count, err := d.client.Incr(key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := d.client.Expire(key, window).Err(); err != nil {
			return false, err
		}
	}

	return count <= int64(limit), nil
}

func (d *Driver) getFullKey(identifier string, window time.Duration) string {
	bucket := time.Now().Unix() / int64(window.Seconds())
	return fmt.Sprintf("%s:%s:%d", d.key, identifier, bucket)
}
