package service

import (
	"sync"

	"github.com/couchcryptid/weekend-getaway-ranker/internal/domain"
)

// reportCache is a simple thread-safe LRU cache of assembled reports keyed
// by (normalized source city, topN). Rankings are deterministic over the
// immutable dataset snapshot, so entries never go stale within a process.
type reportCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value domain.Report
	prev  *entry
	next  *entry
}

func newReportCache(maxEntries int) *reportCache {
	return &reportCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *reportCache) get(key string) (domain.Report, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return domain.Report{}, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *reportCache) put(key string, value domain.Report) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *reportCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *reportCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *reportCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *reportCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
