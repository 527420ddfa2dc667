package core

import (
	"container/list"
	"fmt"
	"strings"
	"sync"
	"time"
)

// DefaultCacheSize is the number of clean baselines kept when none is configured.
const DefaultCacheSize = 16

// Baseline is the clean, uncorrupted output of one generation call.
// Records must be treated as read-only; views copy before corrupting.
type Baseline struct {
	Seed        int64
	Count       int
	Regions     []Region
	Records     []Record
	GeneratedAt time.Time
}

// baselineKey identifies a generation call.
type baselineKey struct {
	seed    int64
	count   int
	regions string
}

func newBaselineKey(seed int64, count int, regions []Region) baselineKey {
	names := make([]string, len(regions))
	for i, r := range regions {
		names[i] = string(r)
	}
	return baselineKey{seed: seed, count: count, regions: strings.Join(names, ",")}
}

func (k baselineKey) String() string {
	return fmt.Sprintf("seed=%d count=%d regions=%s", k.seed, k.count, k.regions)
}

// baselineCache is a bounded least-recently-used map of clean baselines.
type baselineCache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List // front = most recently used
	entries  map[baselineKey]*list.Element
}

type cacheEntry struct {
	key      baselineKey
	baseline *Baseline
}

func newBaselineCache(capacity int) *baselineCache {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	return &baselineCache{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[baselineKey]*list.Element),
	}
}

func (c *baselineCache) get(key baselineKey) (*Baseline, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).baseline, true
}

// put stores b unless another caller stored one for key first; the stored
// baseline is returned either way so concurrent callers agree on ids.
func (c *baselineCache) put(key baselineKey, b *Baseline) *Baseline {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		c.order.MoveToFront(el)
		return el.Value.(*cacheEntry).baseline
	}

	c.entries[key] = c.order.PushFront(&cacheEntry{key: key, baseline: b})
	for c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key)
	}
	return b
}

// dropSeed removes every baseline generated from seed and reports how many were removed.
func (c *baselineCache) dropSeed(seed int64) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, el := range c.entries {
		if key.seed != seed {
			continue
		}
		c.order.Remove(el)
		delete(c.entries, key)
		removed++
	}
	return removed
}

func (c *baselineCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
