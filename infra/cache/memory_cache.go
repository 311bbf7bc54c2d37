// Package cache provides the response-cache backends: an in-process map
// for single-node deployments and tests, and a Redis store for anything
// shared.
package cache

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Forgos-ynov/Vault-API/pkg/cache"
)

type memoryEntry struct {
	value string
	tag   string
}

// MemoryTagCache implements cache.TagCache with a mutex-guarded map.
// Entries live until their tag is invalidated; there is no TTL and no
// capacity eviction.
type MemoryTagCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	tags    map[string]map[string]struct{}
	logger  *slog.Logger
}

// NewMemoryTagCache creates an empty in-process tag cache.
func NewMemoryTagCache(logger *slog.Logger) *MemoryTagCache {
	return &MemoryTagCache{
		entries: make(map[string]memoryEntry),
		tags:    make(map[string]map[string]struct{}),
		logger:  logger,
	}
}

// GetOrPopulate implements cache.TagCache. The producer runs outside the
// lock; concurrent misses on the same key are last-write-wins.
func (m *MemoryTagCache) GetOrPopulate(
	ctx context.Context,
	key, tag string,
	produce cache.Producer,
) (string, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if ok {
		m.logger.Debug("cache hit", "key", key)
		return entry.value, nil
	}

	m.logger.Debug("cache miss", "key", key, "tag", tag)
	value, err := produce(ctx)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	m.entries[key] = memoryEntry{value: value, tag: tag}
	if m.tags[tag] == nil {
		m.tags[tag] = make(map[string]struct{})
	}
	m.tags[tag][key] = struct{}{}
	m.mu.Unlock()

	return value, nil
}

// InvalidateTag implements cache.TagCache: every key ever stored under tag
// is dropped.
func (m *MemoryTagCache) InvalidateTag(ctx context.Context, tag string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key := range m.tags[tag] {
		delete(m.entries, key)
	}
	delete(m.tags, tag)
	m.logger.Debug("cache tag invalidated", "tag", tag)
	return nil
}
