// Package readingrepo archives generated readings.
package readingrepo

import (
	"context"
	"sync"
	"time"

	"github.com/minthura/astrologic/internal/domain/synthesis"
)

// MemoryRepository is an in-memory ReadingRepository used for tests/dev.
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64

	records []synthesis.StoredReading
}

// NewMemoryRepository constructs a repo backed by memory.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

// Insert implements synthesis.ReadingRepository.
func (r *MemoryRepository) Insert(_ context.Context, record synthesis.StoredReading) (synthesis.StoredReading, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record.ID = r.nextID
	r.nextID++
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	r.records = append(r.records, record)
	return record, nil
}

// Recent implements synthesis.ReadingRepository, newest first.
func (r *MemoryRepository) Recent(_ context.Context, limit int) ([]synthesis.StoredReading, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if limit <= 0 {
		limit = len(r.records)
	}
	out := make([]synthesis.StoredReading, 0, limit)
	for i := len(r.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.records[i])
	}
	return out, nil
}

var _ synthesis.ReadingRepository = (*MemoryRepository)(nil)
