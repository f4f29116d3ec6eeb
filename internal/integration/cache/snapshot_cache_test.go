package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/simrs-budget/backend/internal/application/adapter"
)

func newTestCache(t *testing.T) (*SnapshotCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewSnapshotCache(client, time.Hour), mr
}

func TestSnapshotCache(t *testing.T) {
	ctx := context.Background()

	table := adapter.RawTable{
		{"NO", "KODE", "PAGU"},
		{"1", "051100.2.03", "1.000.000,00"},
	}

	t.Run("miss before any set", func(t *testing.T) {
		c, _ := newTestCache(t)
		_, ok, err := c.Get(ctx, adapter.SourceAllocations)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if ok {
			t.Error("ok = true on an empty cache")
		}
	})

	t.Run("set then get round-trips the table", func(t *testing.T) {
		c, _ := newTestCache(t)
		if err := c.Set(ctx, adapter.SourceAllocations, table); err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		got, ok, err := c.Get(ctx, adapter.SourceAllocations)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if !ok {
			t.Fatal("ok = false after Set")
		}
		if len(got) != 2 || got[1][1] != "051100.2.03" {
			t.Errorf("got %v", got)
		}
	})

	t.Run("sources are cached independently", func(t *testing.T) {
		c, _ := newTestCache(t)
		if err := c.Set(ctx, adapter.SourceAllocations, table); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		_, ok, err := c.Get(ctx, adapter.SourceTransactions)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if ok {
			t.Error("transactions key hit from allocations entry")
		}
	})

	t.Run("invalidate drops both entries", func(t *testing.T) {
		c, _ := newTestCache(t)
		if err := c.Set(ctx, adapter.SourceAllocations, table); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		if err := c.Set(ctx, adapter.SourceTransactions, table); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		if err := c.Invalidate(ctx); err != nil {
			t.Fatalf("Invalidate() error = %v", err)
		}

		for _, id := range []adapter.SourceID{adapter.SourceAllocations, adapter.SourceTransactions} {
			if _, ok, _ := c.Get(ctx, id); ok {
				t.Errorf("%s still cached after Invalidate", id)
			}
		}
	})

	t.Run("entries expire after the TTL", func(t *testing.T) {
		c, mr := newTestCache(t)
		if err := c.Set(ctx, adapter.SourceAllocations, table); err != nil {
			t.Fatalf("Set() error = %v", err)
		}

		mr.FastForward(2 * time.Hour)

		if _, ok, _ := c.Get(ctx, adapter.SourceAllocations); ok {
			t.Error("entry survived past its TTL")
		}
	})

	t.Run("corrupt entry behaves as a miss", func(t *testing.T) {
		c, mr := newTestCache(t)
		mr.Set(keyPrefix+string(adapter.SourceAllocations), "{not json")

		_, ok, err := c.Get(ctx, adapter.SourceAllocations)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if ok {
			t.Error("corrupt entry returned ok = true")
		}
	})
}
