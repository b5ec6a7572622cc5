package routecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fasterpost/internal/entities"
	goredis "github.com/redis/go-redis/v9"
)

const currentRouteKeyPrefix = "route:current:"

// Cache хранит сериализованный текущий маршрут курьера.
// Промах (включая протухший TTL) возвращается как (nil, nil),
// решение об обращении в БД принимает вызывающий.
type Cache struct {
	client *goredis.Client
	ttl    time.Duration
}

func New(client *goredis.Client, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

func (c *Cache) GetCurrent(ctx context.Context, courierID string) (*entities.Route, error) {
	payload, err := c.client.Get(ctx, currentRouteKey(courierID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("route cache get: %w", err)
	}

	var route entities.Route
	if err := json.Unmarshal(payload, &route); err != nil {
		return nil, fmt.Errorf("route cache decode: %w", err)
	}

	return &route, nil
}

func (c *Cache) SetCurrent(ctx context.Context, courierID string, route *entities.Route) error {
	if route == nil {
		return nil
	}

	payload, err := json.Marshal(route)
	if err != nil {
		return fmt.Errorf("route cache encode: %w", err)
	}

	err = c.client.Set(ctx, currentRouteKey(courierID), payload, c.ttl).Err()
	if err != nil {
		return fmt.Errorf("route cache set: %w", err)
	}

	return nil
}

func (c *Cache) InvalidateCurrent(ctx context.Context, courierID string) error {
	err := c.client.Del(ctx, currentRouteKey(courierID)).Err()
	if err != nil {
		return fmt.Errorf("route cache invalidate: %w", err)
	}

	return nil
}

func currentRouteKey(courierID string) string {
	return currentRouteKeyPrefix + courierID
}
