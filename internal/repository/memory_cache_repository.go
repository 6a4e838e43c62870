package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sync"
	"time"

	appErrors "github.com/noah-isme/contract-capacity-api/pkg/errors"
)

type memoryEntry struct {
	payload   []byte
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryCacheRepository keeps JSON payloads in process memory with a TTL.
// It backs import sessions when Redis is disabled; entries are not shared
// between replicas.
type MemoryCacheRepository struct {
	mu    sync.RWMutex
	items map[string]memoryEntry
	now   func() time.Time
}

// NewMemoryCacheRepository constructs an empty in-memory store.
func NewMemoryCacheRepository() *MemoryCacheRepository {
	return &MemoryCacheRepository{items: make(map[string]memoryEntry), now: time.Now}
}

// Get unmarshals the live entry for key into dest.
func (r *MemoryCacheRepository) Get(_ context.Context, key string, dest interface{}) error {
	r.mu.RLock()
	entry, ok := r.items[key]
	r.mu.RUnlock()
	if !ok {
		return appErrors.ErrCacheMiss
	}
	if now := r.now(); entry.expired(now) {
		// A Set may have replaced the entry since the read lock was released.
		r.mu.Lock()
		entry, ok = r.items[key]
		if ok && entry.expired(now) {
			delete(r.items, key)
			ok = false
		}
		r.mu.Unlock()
		if !ok {
			return appErrors.ErrCacheMiss
		}
	}
	if err := json.Unmarshal(entry.payload, dest); err != nil {
		return fmt.Errorf("unmarshal cache value for %s: %w", key, err)
	}
	return nil
}

// Set stores value under key. A non-positive ttl never expires.
func (r *MemoryCacheRepository) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value for %s: %w", key, err)
	}
	entry := memoryEntry{payload: payload}
	if ttl > 0 {
		entry.expiresAt = r.now().Add(ttl)
	}
	r.mu.Lock()
	r.evictExpiredLocked()
	r.items[key] = entry
	r.mu.Unlock()
	return nil
}

// Delete removes key.
func (r *MemoryCacheRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	delete(r.items, key)
	r.mu.Unlock()
	return nil
}

// DeleteByPattern removes keys matching a glob pattern.
func (r *MemoryCacheRepository) DeleteByPattern(_ context.Context, pattern string) error {
	if _, err := path.Match(pattern, ""); err != nil {
		return fmt.Errorf("invalid pattern %s: %w", pattern, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for key := range r.items {
		if ok, _ := path.Match(pattern, key); ok {
			delete(r.items, key)
		}
	}
	return nil
}

func (r *MemoryCacheRepository) evictExpiredLocked() {
	now := r.now()
	for key, entry := range r.items {
		if entry.expired(now) {
			delete(r.items, key)
		}
	}
}
