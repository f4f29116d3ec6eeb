// Package cache implements the snapshot cache on Redis. Cached raw tables let
// a restart or forced reload within the TTL skip the remote download.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/simrs-budget/backend/internal/application/adapter"
)

const keyPrefix = "simrs-budget:snapshot:"

// SnapshotCache implements adapter.SnapshotCache on a Redis client.
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSnapshotCache creates a new SnapshotCache instance. A zero TTL means
// entries live until explicitly invalidated.
func NewSnapshotCache(client *redis.Client, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached raw table for a source, ok=false on miss.
func (c *SnapshotCache) Get(ctx context.Context, id adapter.SourceID) (adapter.RawTable, bool, error) {
	data, err := c.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read snapshot cache: %w", err)
	}

	var table adapter.RawTable
	if err := json.Unmarshal(data, &table); err != nil {
		// A corrupt entry behaves as a miss; the next Set replaces it.
		return nil, false, nil
	}
	return table, true, nil
}

// Set stores the raw table for a source.
func (c *SnapshotCache) Set(ctx context.Context, id adapter.SourceID, table adapter.RawTable) error {
	data, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := c.client.Set(ctx, key(id), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write snapshot cache: %w", err)
	}
	return nil
}

// Invalidate drops any cached tables.
func (c *SnapshotCache) Invalidate(ctx context.Context) error {
	keys := []string{key(adapter.SourceAllocations), key(adapter.SourceTransactions)}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate snapshot cache: %w", err)
	}
	return nil
}

func key(id adapter.SourceID) string {
	return keyPrefix + string(id)
}

var _ adapter.SnapshotCache = (*SnapshotCache)(nil)
