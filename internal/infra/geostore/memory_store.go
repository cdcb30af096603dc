// Package geostore caches resolved geocoding results.
package geostore

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/minthura/astrologic/internal/domain/synthesis"
)

type cachedLocation struct {
	payload   synthesis.Location
	expiresAt time.Time
}

// MemoryStore is an in-memory implementation of the geo cache for tests/dev.
type MemoryStore struct {
	mu        sync.RWMutex
	locations map[string]cachedLocation
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		locations: make(map[string]cachedLocation),
	}
}

// Get implements synthesis.GeoStore.
func (s *MemoryStore) Get(_ context.Context, city string) (synthesis.Location, bool, error) {
	key := normalizeKey(city)
	if key == "" {
		return synthesis.Location{}, false, nil
	}
	s.mu.RLock()
	record, ok := s.locations[key]
	s.mu.RUnlock()
	if !ok {
		return synthesis.Location{}, false, nil
	}
	if hasExpired(record.expiresAt) {
		s.mu.Lock()
		delete(s.locations, key)
		s.mu.Unlock()
		return synthesis.Location{}, false, nil
	}
	return record.payload, true, nil
}

// Save caches the location with optional TTL.
func (s *MemoryStore) Save(_ context.Context, city string, loc synthesis.Location, ttl time.Duration) error {
	key := normalizeKey(city)
	if key == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	exp := time.Time{}
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	s.locations[key] = cachedLocation{
		payload:   loc,
		expiresAt: exp,
	}
	return nil
}

func normalizeKey(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

func hasExpired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(time.Now())
}

var _ synthesis.GeoStore = (*MemoryStore)(nil)
