package client

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"Storefront/config"
	"Storefront/pkg/log"
)

// NewRedisClient returns nil unless the slot driver is redis; nothing else
// in the process talks to redis.
func NewRedisClient(conf *config.Config) (*redis.Client, error) {
	if conf.Slot.Driver != "redis" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:        conf.Redis.Addr(),
		Password:    conf.Redis.Password,
		Username:    conf.Redis.Username,
		DB:          conf.Redis.Database,
		DialTimeout: conf.Redis.Dial(),
	})
	ctx, cancel := context.WithTimeout(context.Background(), conf.Redis.Dial())
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.L.Error("connect redis error", zap.String("addr", conf.Redis.Addr()), zap.Error(err))
		return nil, err
	}
	log.L.Info("redis client success", zap.String("addr", conf.Redis.Addr()))
	return client, nil
}
