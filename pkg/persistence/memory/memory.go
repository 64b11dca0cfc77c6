package memory

import (
	"fmt"
	"sync"

	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/persistence"
	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/types"
)

// MemoryLog is an in-memory implementation of ITransactionLog.
// This implementation is intended for TESTING ONLY.
//
// All records are stored in memory and will be lost when the process exits.
// Thread-safe using sync.RWMutex for concurrent access. Records are copied
// on the way in and out to prevent external mutation.
type MemoryLog struct {
	mu      sync.RWMutex
	records []*types.TransactionRecord
	closed  bool
}

// NewMemoryLog creates a new in-memory transaction log.
// Prints a loud warning since this should only be used for testing.
func NewMemoryLog() *MemoryLog {
	fmt.Println("⚠️  WARNING: Using in-memory transaction log - ALL RECORDS WILL BE LOST ON RESTART")
	fmt.Println("⚠️  This should ONLY be used for testing. Set RELAY_PERSISTENCE_TYPE=badger for production")

	return &MemoryLog{}
}

// Append stores one record in insertion order.
func (m *MemoryLog) Append(record *types.TransactionRecord) error {
	if record == nil {
		return fmt.Errorf("cannot append nil TransactionRecord")
	}
	if !record.Kind.Valid() {
		return fmt.Errorf("cannot append TransactionRecord with unknown kind %q", record.Kind)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return fmt.Errorf("transaction log is closed")
	}

	copied := *record
	m.records = append(m.records, &copied)

	return nil
}

// ListRecent returns up to limit records, most recently appended first.
func (m *MemoryLog) ListRecent(limit int) ([]*types.TransactionRecord, error) {
	if limit <= 0 {
		limit = persistence.DefaultListLimit
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, fmt.Errorf("transaction log is closed")
	}

	count := len(m.records)
	if count > limit {
		count = limit
	}

	out := make([]*types.TransactionRecord, 0, count)
	for i := len(m.records) - 1; i >= 0 && len(out) < count; i-- {
		copied := *m.records[i]
		out = append(out, &copied)
	}

	return out, nil
}

// Close shuts down the log. Idempotent.
func (m *MemoryLog) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	return nil
}

// HealthCheck reports whether the log is usable.
func (m *MemoryLog) HealthCheck() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return fmt.Errorf("transaction log is closed")
	}
	return nil
}
