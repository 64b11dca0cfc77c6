package persistence

import "github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/types"

// DefaultListLimit bounds the page size of the read API.
const DefaultListLimit = 100

// ITransactionLog defines the durable, append-only transaction log.
// All implementations must be thread-safe; relays are handled concurrently.
//
// The log is a display index over on-chain writes, not a ledger of record:
// the chain is authoritative. A failed append never rolls back the on-chain
// effect it describes. Records are immutable once appended; nothing in this
// server mutates or deletes them (retention is the backing store's policy).
type ITransactionLog interface {
	// Append durably stores one record. CreatedAt is assigned by the caller
	// and insertion order is preserved for ListRecent.
	// Returns an error only on storage failure.
	Append(record *types.TransactionRecord) error

	// ListRecent returns up to limit records, most recently appended first.
	// A limit <= 0 falls back to DefaultListLimit. Returns an empty slice
	// when the log is empty, error only on storage failure.
	ListRecent(limit int) ([]*types.TransactionRecord, error)

	// Close cleanly shuts down the log. Idempotent - safe to call multiple
	// times. After Close(), all other operations return errors.
	Close() error

	// HealthCheck verifies the backing store is reachable. Returns nil if
	// healthy. Should be called during startup to fail fast.
	HealthCheck() error
}
