// Package cache provides a bounded in-memory LRU with per-entry expiry.
package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

type Cache interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{})
	Delete(key string)
	Clear()
}

type Item struct {
	Key        string
	Value      interface{}
	Expiration time.Time
}

type LRUCache struct {
	capacity  int
	items     map[string]*list.Element
	evictList *list.List
	mu        sync.Mutex
	ttl       time.Duration
	sliding   bool
	onEvict   func(key string, value interface{})
	now       func() time.Time
}

func New(capacity int, ttl time.Duration) *LRUCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCache{
		capacity:  capacity,
		items:     make(map[string]*list.Element),
		evictList: list.New(),
		ttl:       ttl,
		now:       time.Now,
	}
}

// SetSliding makes every successful Get push the entry's expiry forward by
// the TTL, which is what an idle-timeout store wants.
func (c *LRUCache) SetSliding(sliding bool) {
	c.mu.Lock()
	c.sliding = sliding
	c.mu.Unlock()
}

// OnEvict registers fn to be called, outside the lock, for entries dropped
// because of capacity or expiry. Delete and Clear do not trigger it.
func (c *LRUCache) OnEvict(fn func(key string, value interface{})) {
	c.mu.Lock()
	c.onEvict = fn
	c.mu.Unlock()
}

func (c *LRUCache) Get(key string) (interface{}, bool) {
	c.mu.Lock()

	elem, ok := c.items[key]
	if !ok {
		c.mu.Unlock()
		return nil, false
	}

	item := elem.Value.(*Item)
	now := c.now()
	if now.After(item.Expiration) {
		c.removeElement(elem)
		fn := c.onEvict
		c.mu.Unlock()
		if fn != nil {
			fn(item.Key, item.Value)
		}
		return nil, false
	}

	if c.sliding {
		item.Expiration = now.Add(c.ttl)
	}
	c.evictList.MoveToFront(elem)
	c.mu.Unlock()
	return item.Value, true
}

func (c *LRUCache) Set(key string, value interface{}) {
	c.mu.Lock()

	expiration := c.now().Add(c.ttl)

	if elem, ok := c.items[key]; ok {
		item := elem.Value.(*Item)
		item.Value = value
		item.Expiration = expiration
		c.evictList.MoveToFront(elem)
		c.mu.Unlock()
		return
	}

	elem := c.evictList.PushFront(&Item{
		Key:        key,
		Value:      value,
		Expiration: expiration,
	})
	c.items[key] = elem

	var evicted *Item
	if c.evictList.Len() > c.capacity {
		evicted = c.removeOldest()
	}
	fn := c.onEvict
	c.mu.Unlock()

	if evicted != nil && fn != nil {
		fn(evicted.Key, evicted.Value)
	}
}

func (c *LRUCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.removeElement(elem)
	}
}

func (c *LRUCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.evictList.Init()
}

func (c *LRUCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evictList.Len()
}

func (c *LRUCache) removeOldest() *Item {
	elem := c.evictList.Back()
	if elem == nil {
		return nil
	}
	c.removeElement(elem)
	return elem.Value.(*Item)
}

func (c *LRUCache) removeElement(elem *list.Element) {
	c.evictList.Remove(elem)
	item := elem.Value.(*Item)
	delete(c.items, item.Key)
}

// CleanExpired drops every expired entry and returns how many were removed.
func (c *LRUCache) CleanExpired() int {
	c.mu.Lock()

	now := c.now()
	var removed []*Item
	for elem := c.evictList.Back(); elem != nil; {
		prev := elem.Prev()
		item := elem.Value.(*Item)
		if now.After(item.Expiration) {
			c.removeElement(elem)
			removed = append(removed, item)
		}
		elem = prev
	}
	fn := c.onEvict
	c.mu.Unlock()

	if fn != nil {
		for _, item := range removed {
			fn(item.Key, item.Value)
		}
	}
	return len(removed)
}

// StartCleanup runs CleanExpired every interval until ctx is done.
func (c *LRUCache) StartCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.CleanExpired()
			case <-ctx.Done():
				return
			}
		}
	}()
}
