// Package slot keeps small durable values outside the embedded store: the
// persistence mode flag and the latest backup.
package slot

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"Storefront/config"
)

// Store is a durable string key-value slot. Get reports ok=false for a key
// that was never set.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// New picks the slot driver named in the configuration. rdb is only used by
// the redis driver and may be nil otherwise.
func New(conf *config.Config, rdb *redis.Client) (Store, error) {
	switch conf.Slot.Driver {
	case "", "file":
		return NewFile(conf.Slot.Dir)
	case "redis":
		if rdb == nil {
			return nil, fmt.Errorf("slot: redis driver selected without a redis client")
		}
		return NewRedis(rdb, conf.Slot.Prefix), nil
	default:
		return nil, fmt.Errorf("slot: unknown driver %q", conf.Slot.Driver)
	}
}
