package badger

import (
	"context"
	"encoding/binary"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/persistence"
	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/types"
	badgerdb "github.com/dgraph-io/badger/v3"
	"go.uber.org/zap"
)

// Key prefixes for namespacing
const (
	keyPrefixRecord      = "txlog:record:"
	keySchemaVersion     = "txlog:metadata:schema_version"
	currentSchemaVersion = "v1"
)

// BadgerLog is a production-ready transaction log using Badger.
// Provides durable, disk-based storage with ACID guarantees. Records are
// keyed by a monotonically increasing sequence number so iteration order
// matches insertion order.
type BadgerLog struct {
	db       *badgerdb.DB
	logger   *zap.Logger
	gcCancel context.CancelFunc
	gcWg     sync.WaitGroup
	mu       sync.Mutex
	nextSeq  uint64
	closed   bool
}

// NewBadgerLog creates a new Badger-backed transaction log.
// The database is opened at the specified path with SyncWrites enabled for
// durability. A background goroutine is started for garbage collection.
func NewBadgerLog(dataPath string, logger *zap.Logger) (*BadgerLog, error) {
	absPath, err := filepath.Abs(dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	opts := badgerdb.DefaultOptions(absPath)
	opts.Logger = &badgerLoggerAdapter{logger: logger}
	opts.SyncWrites = true // fsync on every append; a lost record is a lost index entry
	opts.CompactL0OnClose = true
	opts.NumVersionsToKeep = 1 // records are immutable, no versioning needed

	db, err := badgerdb.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger database at %s: %w", absPath, err)
	}

	bl := &BadgerLog{
		db:     db,
		logger: logger,
	}

	if err := bl.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	if err := bl.loadNextSeq(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to load sequence counter: %w", err)
	}

	// Start background GC
	ctx, cancel := context.WithCancel(context.Background())
	bl.gcCancel = cancel
	bl.gcWg.Add(1)
	go bl.runGC(ctx)

	logger.Sugar().Infow("Badger transaction log initialized", "path", absPath, "records", bl.nextSeq)

	return bl, nil
}

// initSchema initializes or validates the schema version
func (b *BadgerLog) initSchema() error {
	return b.db.Update(func(txn *badgerdb.Txn) error {
		item, err := txn.Get([]byte(keySchemaVersion))
		if err == badgerdb.ErrKeyNotFound {
			// First time setup - set schema version
			return txn.Set([]byte(keySchemaVersion), []byte(currentSchemaVersion))
		}
		if err != nil {
			return fmt.Errorf("failed to read schema version: %w", err)
		}

		var existingVersion string
		err = item.Value(func(val []byte) error {
			existingVersion = string(val)
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to read schema version value: %w", err)
		}

		if existingVersion != currentSchemaVersion {
			return fmt.Errorf("unsupported schema version %s (expected %s)", existingVersion, currentSchemaVersion)
		}
		return nil
	})
}

// loadNextSeq restores the sequence counter from the highest stored key.
func (b *BadgerLog) loadNextSeq() error {
	return b.db.View(func(txn *badgerdb.Txn) error {
		opts := badgerdb.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(keyPrefixRecord)
		// Reverse iteration starts at the largest key under the prefix.
		seek := append(append([]byte{}, prefix...), 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF)
		for it.Seek(seek); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().Key()
			seq := binary.BigEndian.Uint64(key[len(prefix):])
			b.nextSeq = seq + 1
			return nil
		}
		b.nextSeq = 0
		return nil
	})
}

// runGC runs periodic garbage collection in the background
func (b *BadgerLog) runGC(ctx context.Context) {
	defer b.gcWg.Done()

	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			// Run value log GC with 0.5 discard ratio
			err := b.db.RunValueLogGC(0.5)
			if err != nil && err != badgerdb.ErrNoRewrite {
				b.logger.Sugar().Warnw("Badger GC error", "error", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

func recordKey(seq uint64) []byte {
	key := make([]byte, len(keyPrefixRecord)+8)
	copy(key, keyPrefixRecord)
	binary.BigEndian.PutUint64(key[len(keyPrefixRecord):], seq)
	return key
}

// Append durably stores one record under the next sequence number.
func (b *BadgerLog) Append(record *types.TransactionRecord) error {
	data, err := persistence.MarshalTransactionRecord(record)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return fmt.Errorf("transaction log is closed")
	}

	seq := b.nextSeq
	err = b.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Set(recordKey(seq), data)
	})
	if err != nil {
		return fmt.Errorf("failed to append TransactionRecord: %w", err)
	}

	b.nextSeq = seq + 1
	return nil
}

// ListRecent returns up to limit records, most recently appended first.
func (b *BadgerLog) ListRecent(limit int) ([]*types.TransactionRecord, error) {
	if limit <= 0 {
		limit = persistence.DefaultListLimit
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, fmt.Errorf("transaction log is closed")
	}
	b.mu.Unlock()

	records := make([]*types.TransactionRecord, 0, limit)
	err := b.db.View(func(txn *badgerdb.Txn) error {
		opts := badgerdb.DefaultIteratorOptions
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(keyPrefixRecord)
		seek := append(append([]byte{}, prefix...), 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF)
		for it.Seek(seek); it.ValidForPrefix(prefix) && len(records) < limit; it.Next() {
			err := it.Item().Value(func(val []byte) error {
				record, err := persistence.UnmarshalTransactionRecord(val)
				if err != nil {
					return err
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return fmt.Errorf("failed to read record value: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list TransactionRecords: %w", err)
	}

	return records, nil
}

// Close cleanly shuts down the log. Idempotent.
func (b *BadgerLog) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil // Already closed, idempotent
	}
	b.closed = true
	b.mu.Unlock()

	// Stop GC goroutine
	if b.gcCancel != nil {
		b.gcCancel()
	}
	b.gcWg.Wait()

	if err := b.db.Close(); err != nil {
		return fmt.Errorf("failed to close badger database: %w", err)
	}

	b.logger.Sugar().Info("Badger transaction log closed")
	return nil
}

// HealthCheck verifies the log is operational.
func (b *BadgerLog) HealthCheck() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return fmt.Errorf("transaction log is closed")
	}

	// Try a simple read operation to verify database is accessible
	return b.db.View(func(txn *badgerdb.Txn) error {
		_, err := txn.Get([]byte(keySchemaVersion))
		if err == badgerdb.ErrKeyNotFound {
			return fmt.Errorf("schema version not found - database may be corrupted")
		}
		return err
	})
}

// badgerLoggerAdapter routes Badger's internal logging through zap.
type badgerLoggerAdapter struct {
	logger *zap.Logger
}

func (a *badgerLoggerAdapter) Errorf(format string, args ...interface{}) {
	a.logger.Sugar().Errorf(format, args...)
}

func (a *badgerLoggerAdapter) Warningf(format string, args ...interface{}) {
	a.logger.Sugar().Warnf(format, args...)
}

func (a *badgerLoggerAdapter) Infof(format string, args ...interface{}) {
	a.logger.Sugar().Debugf(format, args...)
}

func (a *badgerLoggerAdapter) Debugf(format string, args ...interface{}) {
	a.logger.Sugar().Debugf(format, args...)
}
