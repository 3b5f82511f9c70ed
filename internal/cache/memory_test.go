package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestMemoryCacheSetGet(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	got, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("expected hit, got %v", err)
	}
	if string(got) != "v" {
		t.Fatalf("expected v, got %q", got)
	}
}

func TestMemoryCacheMiss(t *testing.T) {
	c := NewMemoryCache()
	if _, err := c.Get(context.Background(), "absent"); !errors.Is(err, ErrMiss) {
		t.Fatalf("expected ErrMiss, got %v", err)
	}
}

func TestMemoryCacheExpires(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)}
	c := NewMemoryCacheWithClock(clock.Now)
	ctx := context.Background()

	_ = c.Set(ctx, "k", []byte("v"), time.Minute)
	clock.Advance(59 * time.Second)
	if _, err := c.Get(ctx, "k"); err != nil {
		t.Fatalf("expected hit before expiry, got %v", err)
	}

	clock.Advance(time.Second)
	if _, err := c.Get(ctx, "k"); !errors.Is(err, ErrMiss) {
		t.Fatalf("expected ErrMiss at expiry, got %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("expected expired entry evicted, got %d entries", c.Len())
	}
}

func TestMemoryCacheZeroTTLNeverExpires(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	c := NewMemoryCacheWithClock(clock.Now)
	ctx := context.Background()

	_ = c.Set(ctx, "k", []byte("v"), 0)
	clock.Advance(365 * 24 * time.Hour)
	if _, err := c.Get(ctx, "k"); err != nil {
		t.Fatalf("expected hit, got %v", err)
	}
}

func TestMemoryCacheDelete(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	_ = c.Set(ctx, "k", []byte("v"), time.Minute)
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := c.Get(ctx, "k"); !errors.Is(err, ErrMiss) {
		t.Fatalf("expected ErrMiss after delete, got %v", err)
	}
}

func TestMemoryCacheCopiesValues(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()
	value := []byte("abc")

	_ = c.Set(ctx, "k", value, 0)
	value[0] = 'z'

	got, _ := c.Get(ctx, "k")
	got[1] = 'z'

	again, _ := c.Get(ctx, "k")
	if string(again) != "abc" {
		t.Fatalf("expected stored value to be isolated, got %q", again)
	}
}

func TestMemoryCacheConcurrentAccess(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.Set(ctx, "k", []byte("v"), time.Minute)
			_, _ = c.Get(ctx, "k")
		}()
	}
	wg.Wait()
}
