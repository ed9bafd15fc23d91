package cache

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/ecofinds/marketplace/internal/domain"
)

const DefaultTTL = 5 * time.Minute

type entry struct {
	products  []domain.Product
	fetchedAt time.Time
}

// MemoryCache is a FeedCache for running without redis
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) ([]domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[key]
	if !ok || time.Since(e.fetchedAt) >= m.ttl {
		return nil, ErrCacheMiss
	}
	return slices.Clone(e.products), nil
}

func (m *MemoryCache) Set(_ context.Context, key string, products []domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// expired entries go on write so the map stays bounded by live keys
	for k, e := range m.entries {
		if time.Since(e.fetchedAt) >= m.ttl {
			delete(m.entries, k)
		}
	}
	m.entries[key] = entry{products: slices.Clone(products), fetchedAt: time.Now()}
	return nil
}

func (m *MemoryCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
	return nil
}
