package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs. Listing pages churn with every new car and counter update, so
// they get the shortest TTL; aggregate stats can lag a little longer.
const (
	TTLListing = 30 * time.Second
	TTLCar     = 1 * time.Minute
	TTLStats   = 5 * time.Minute
	TTLDefault = 5 * time.Minute
)

// Cache key prefixes
const (
	PrefixListing = "cars:list:"
	PrefixCar     = "cars:detail:"
	PrefixStats   = "cars:stats"
)

// ErrMiss is returned when a key is absent
var ErrMiss = redis.Nil

// Service Redis cache operations used by the listing services
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error

	GetListing(ctx context.Context, key string, dest interface{}) error
	SetListing(ctx context.Context, key string, value interface{}) error

	GetCar(ctx context.Context, carID string, dest interface{}) error
	SetCar(ctx context.Context, carID string, value interface{}) error
	InvalidateCar(ctx context.Context, carID string) error

	IsAvailable() bool
}

type redisCache struct {
	client *redis.Client
}

// NewService creates a Redis-backed cache service
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil || len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *redisCache) GetListing(ctx context.Context, key string, dest interface{}) error {
	return c.Get(ctx, PrefixListing+key, dest)
}

func (c *redisCache) SetListing(ctx context.Context, key string, value interface{}) error {
	return c.Set(ctx, PrefixListing+key, value, TTLListing)
}

func (c *redisCache) GetCar(ctx context.Context, carID string, dest interface{}) error {
	return c.Get(ctx, PrefixCar+carID, dest)
}

func (c *redisCache) SetCar(ctx context.Context, carID string, value interface{}) error {
	return c.Set(ctx, PrefixCar+carID, value, TTLCar)
}

func (c *redisCache) InvalidateCar(ctx context.Context, carID string) error {
	return c.Delete(ctx, PrefixCar+carID)
}
