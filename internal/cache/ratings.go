package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RatingAggregate is the advisory rating summary cached per restaurant.
type RatingAggregate struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

// RatingsCache keeps restaurant rating aggregates in redis so listings don't
// re-run the AVG query on every read. A nil cache (no redis configured) is a
// valid no-op implementation.
type RatingsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRatingsCache connects to redis and verifies the connection.
func NewRatingsCache(addr, password string, ttl time.Duration) (*RatingsCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RatingsCache{client: rdb, ttl: ttl}, nil
}

func ratingKey(restaurantID uint) string {
	return fmt.Sprintf("ratings:restaurant:%d", restaurantID)
}

// Set stores the aggregate for a restaurant.
func (c *RatingsCache) Set(ctx context.Context, restaurantID uint, agg RatingAggregate) error {
	if c == nil || c.client == nil {
		return nil
	}
	key := ratingKey(restaurantID)

	fields := map[string]any{
		"average": agg.Average,
		"count":   agg.Count,
	}
	if err := c.client.HSet(ctx, key, fields).Err(); err != nil {
		return fmt.Errorf("failed to cache rating aggregate: %w", err)
	}
	return c.client.Expire(ctx, key, c.ttl).Err()
}

// Get returns the cached aggregate, or ok=false on a miss.
func (c *RatingsCache) Get(ctx context.Context, restaurantID uint) (RatingAggregate, bool, error) {
	if c == nil || c.client == nil {
		return RatingAggregate{}, false, nil
	}

	values, err := c.client.HGetAll(ctx, ratingKey(restaurantID)).Result()
	if err != nil {
		return RatingAggregate{}, false, err
	}
	if len(values) == 0 {
		return RatingAggregate{}, false, nil
	}

	avg, err := strconv.ParseFloat(values["average"], 64)
	if err != nil {
		return RatingAggregate{}, false, nil
	}
	count, err := strconv.ParseInt(values["count"], 10, 64)
	if err != nil {
		return RatingAggregate{}, false, nil
	}

	return RatingAggregate{Average: avg, Count: count}, true, nil
}

// Invalidate drops the cached aggregate after a review write.
func (c *RatingsCache) Invalidate(ctx context.Context, restaurantID uint) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, ratingKey(restaurantID)).Err()
}

// Close releases the redis connection.
func (c *RatingsCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
