package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Domenick1991/turfbooking/config"
	"github.com/Domenick1991/turfbooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client   *redis.Client
	turfsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, turfsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:   redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		turfsTTL: turfsTTL,
	}
}

func (c *RedisCache) GetVisibleTurfs(ctx context.Context) ([]domain.Turf, error) {
	data, err := c.client.Get(ctx, visibleTurfsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var turfs []domain.Turf
	if err := json.Unmarshal(data, &turfs); err != nil {
		return nil, err
	}
	return turfs, nil
}

func (c *RedisCache) SetVisibleTurfs(ctx context.Context, turfs []domain.Turf) error {
	payload, err := json.Marshal(turfs)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, visibleTurfsKey(), payload, c.turfsTTL).Err()
}

func (c *RedisCache) InvalidateVisibleTurfs(ctx context.Context) error {
	return c.client.Del(ctx, visibleTurfsKey()).Err()
}

func visibleTurfsKey() string {
	return "cache:turfs:visible"
}
