package infra_redis_codeindex

import (
	"time"

	"github.com/go-redis/redis"
	"github.com/google/uuid"
)

// Driver keeps the live roomCode -> roomID index. Entries expire with the
// room's practical lifetime; Postgres stays authoritative.
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

func (d *Driver) RoomID(code string) (uuid.UUID, bool, error) {
	val, err := d.client.Get(d.getFullKey(code)).Result()
	if err != nil {
		if err == redis.Nil {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, err
	}

	id, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, false, err
	}
	return id, true, nil
}

func (d *Driver) Set(code string, roomID uuid.UUID, ttl time.Duration) error {
	return d.client.Set(d.getFullKey(code), roomID.String(), ttl).Err()
}

func (d *Driver) Delete(code string) error {
	return d.client.Del(d.getFullKey(code)).Err()
}

func (d *Driver) getFullKey(code string) string {
	if d.key != "" {
		return d.key + ":" + code
	}
	return code
}
