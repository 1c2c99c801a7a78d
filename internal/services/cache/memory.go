package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryCache is the default single-process cache. Expired entries are
// dropped lazily on read and swept by a background janitor.
type MemoryCache struct {
	mu     sync.RWMutex
	items  map[string]memoryItem
	stopCh chan struct{}
	wg     sync.WaitGroup
}

type memoryItem struct {
	value  []byte
	expiry time.Time
}

var _ Cache = (*MemoryCache)(nil)

// NewMemoryCache creates a memory cache and starts its janitor.
func NewMemoryCache() *MemoryCache {
	mc := &MemoryCache{
		items:  make(map[string]memoryItem),
		stopCh: make(chan struct{}),
	}
	mc.wg.Add(1)
	go mc.sweep()
	return mc
}

func (mc *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	mc.mu.RLock()
	item, ok := mc.items[key]
	mc.mu.RUnlock()

	if !ok || time.Now().After(item.expiry) {
		return nil, false
	}
	return item.value, true
}

func (mc *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Minute
	}
	mc.mu.Lock()
	mc.items[key] = memoryItem{value: value, expiry: time.Now().Add(ttl)}
	mc.mu.Unlock()
	return nil
}

func (mc *MemoryCache) Delete(_ context.Context, key string) error {
	mc.mu.Lock()
	delete(mc.items, key)
	mc.mu.Unlock()
	return nil
}

func (mc *MemoryCache) Clear(_ context.Context) error {
	mc.mu.Lock()
	mc.items = make(map[string]memoryItem)
	mc.mu.Unlock()
	return nil
}

// Stop shuts down the janitor.
func (mc *MemoryCache) Stop() {
	close(mc.stopCh)
	mc.wg.Wait()
}

func (mc *MemoryCache) sweep() {
	defer mc.wg.Done()
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			mc.mu.Lock()
			for key, item := range mc.items {
				if now.After(item.expiry) {
					delete(mc.items, key)
				}
			}
			mc.mu.Unlock()
		case <-mc.stopCh:
			return
		}
	}
}
