package cache

import (
	"context"
	"sync"
)

// MemoryUsageCounter используется, когда Redis не настроен. Статистика теряется при перезапуске.
type MemoryUsageCounter struct {
	mu     sync.RWMutex
	counts map[string]int64
}

func NewMemoryUsageCounter() *MemoryUsageCounter {
	return &MemoryUsageCounter{
		counts: make(map[string]int64),
	}
}

func (c *MemoryUsageCounter) Increment(_ context.Context, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.counts[name]++

	return nil
}

func (c *MemoryUsageCounter) Usage(_ context.Context) (map[string]int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	usage := make(map[string]int64, len(c.counts))
	for name, count := range c.counts {
		usage[name] = count
	}

	return usage, nil
}

func (c *MemoryUsageCounter) Reset(_ context.Context, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.counts, name)

	return nil
}
