// Package redisclient keeps per-entity sync bookkeeping in Redis: when the
// last poll ran and how its batch split. Purely observational — losing it
// never fails a sync.
package redisclient

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
}

// NewClient connects to Redis and pings it.
func NewClient(addr, password string, db int) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// GetClient returns the underlying Redis client.
func (c *Client) GetClient() *redis.Client {
	return c.rdb
}

// Close closes the Redis connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// RecordSyncRun stores the outcome of the latest poll for an entity.
func (c *Client) RecordSyncRun(ctx context.Context, entity string, fetched, inserted, rejected int) error {
	key := fmt.Sprintf("sync:%s", entity)

	pipe := c.rdb.Pipeline()
	pipe.HSet(ctx, key, "last_run_at", time.Now().UTC().Format(time.RFC3339))
	pipe.HSet(ctx, key, "fetched", fetched)
	pipe.HSet(ctx, key, "inserted", inserted)
	pipe.HSet(ctx, key, "rejected", rejected)

	_, err := pipe.Exec(ctx)
	return err
}

// LastSyncRun returns the stored bookkeeping fields for an entity, or an
// empty map if the entity has never synced.
func (c *Client) LastSyncRun(ctx context.Context, entity string) (map[string]string, error) {
	key := fmt.Sprintf("sync:%s", entity)
	return c.rdb.HGetAll(ctx, key).Result()
}
