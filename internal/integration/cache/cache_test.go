package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/gateway/internal/application/adapter"
	"github.com/expense-tracker/gateway/internal/domain/entity"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	server, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(server.Close)

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return server, client
}

func TestRedisSnapshotCache(t *testing.T) {
	ctx := context.Background()
	server, client := newTestRedis(t)
	cache := NewRedisSnapshotCache(client, time.Minute)

	category := "food"
	snapshot := &entity.Snapshot{
		Expenses: []entity.Expense{{
			ID:          "e1",
			Amount:      decimal.RequireFromString("12.34"),
			Description: "Lunch",
			CategoryID:  "food",
			Date:        time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		}},
		Budgets: []entity.Budget{{
			ID:         "b1",
			Amount:     decimal.NewFromInt(300),
			Month:      "2024-03",
			CategoryID: &category,
		}},
		FetchedAt: time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC),
	}

	t.Run("miss returns nil", func(t *testing.T) {
		got, err := cache.Get(ctx, "u1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Error("expected nil snapshot on a miss")
		}
	})

	t.Run("set then get keeps amounts exact", func(t *testing.T) {
		if err := cache.Set(ctx, "u1", snapshot); err != nil {
			t.Fatalf("set failed: %v", err)
		}
		got, err := cache.Get(ctx, "u1")
		if err != nil || got == nil {
			t.Fatalf("expected a hit, got %v, %v", got, err)
		}
		if !got.Expenses[0].Amount.Equal(decimal.RequireFromString("12.34")) {
			t.Errorf("amount changed: %s", got.Expenses[0].Amount)
		}
		if got.Budgets[0].CategoryID == nil || *got.Budgets[0].CategoryID != "food" {
			t.Error("budget category lost")
		}
		if ttl := server.TTL(snapshotKey("u1")); ttl != time.Minute {
			t.Errorf("expected 1m ttl, got %v", ttl)
		}
	})

	t.Run("entries expire", func(t *testing.T) {
		server.FastForward(2 * time.Minute)
		got, _ := cache.Get(ctx, "u1")
		if got != nil {
			t.Error("expected expired snapshot to be gone")
		}
	})

	t.Run("invalidate drops the entry", func(t *testing.T) {
		_ = cache.Set(ctx, "u2", snapshot)
		if err := cache.Invalidate(ctx, "u2"); err != nil {
			t.Fatalf("invalidate failed: %v", err)
		}
		if server.Exists(snapshotKey("u2")) {
			t.Error("expected key to be deleted")
		}
	})

	t.Run("corrupt entry is a miss", func(t *testing.T) {
		_ = server.Set(snapshotKey("u3"), "{not json")
		got, err := cache.Get(ctx, "u3")
		if err != nil || got != nil {
			t.Errorf("expected silent miss, got %v, %v", got, err)
		}
	})

	t.Run("server errors surface", func(t *testing.T) {
		server.SetError("LOADING")
		defer server.SetError("")
		if _, err := cache.Get(ctx, "u1"); err == nil {
			t.Error("expected an error while redis fails")
		}
	})
}

func TestAlertLedgers(t *testing.T) {
	ctx := context.Background()
	_, client := newTestRedis(t)

	ledgers := map[string]func() adapter.AlertLedger{
		"redis":  func() adapter.AlertLedger { return NewRedisAlertLedger(client) },
		"memory": NewMemoryAlertLedger,
	}

	for name, newLedger := range ledgers {
		t.Run(name, func(t *testing.T) {
			ledger := newLedger()
			key := "budget-alert:" + name + ":b1:2024-03"

			first, err := ledger.Claim(ctx, key)
			if err != nil || !first {
				t.Fatalf("expected first claim to win, got %v, %v", first, err)
			}
			second, err := ledger.Claim(ctx, key)
			if err != nil || second {
				t.Errorf("expected second claim to lose, got %v, %v", second, err)
			}
			other, _ := ledger.Claim(ctx, key+"-other")
			if !other {
				t.Error("expected a different key to be claimable")
			}
		})
	}
}

func TestMemoryAlertLedger_ConcurrentClaims(t *testing.T) {
	ledger := NewMemoryAlertLedger()

	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, _ := ledger.Claim(context.Background(), "same")
			if ok {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if wins != 1 {
		t.Errorf("expected exactly one winner, got %d", wins)
	}
}

func TestMemoryAlertLedger_Expiry(t *testing.T) {
	ledger := NewMemoryAlertLedger().(*memoryAlertLedger)
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	ledger.now = func() time.Time { return now }

	if ok, _ := ledger.Claim(context.Background(), "k"); !ok {
		t.Fatal("expected first claim to win")
	}
	now = now.Add(AlertRetention + time.Hour)
	if ok, _ := ledger.Claim(context.Background(), "k"); !ok {
		t.Error("expected claim to be available again after retention")
	}
}
