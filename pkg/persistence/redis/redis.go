package redis

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/persistence"
	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/types"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	// keyRecordList is a Redis list holding JSON records, most recent first
	// (records are LPUSHed).
	keyRecordList = "txlog:records"

	operationTimeout = 5 * time.Second
)

// RedisLog is a transaction log backed by Redis. Suitable for deployments
// where several relay instances share one display index.
type RedisLog struct {
	client    *redis.Client
	logger    *zap.Logger
	keyPrefix string
	mu        sync.RWMutex
	closed    bool
}

// RedisConfig holds the configuration for connecting to Redis
type RedisConfig struct {
	// Address is the Redis server address (host:port)
	Address string
	// Password is the optional Redis password
	Password string
	// DB is the Redis database number (0-15)
	DB int
	// KeyPrefix is an optional custom prefix for all keys (for multi-tenant
	// setups), e.g. "myapp:" yields "myapp:txlog:records".
	KeyPrefix string
}

// NewRedisLog creates a new Redis-backed transaction log and verifies the
// connection with a ping.
func NewRedisLog(cfg *RedisConfig, logger *zap.Logger) (*RedisLog, error) {
	if cfg == nil {
		return nil, fmt.Errorf("redis config cannot be nil")
	}
	if cfg.Address == "" {
		return nil, fmt.Errorf("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Address, err)
	}

	logger.Sugar().Infow("Redis transaction log initialized", "address", cfg.Address, "db", cfg.DB)

	return &RedisLog{
		client:    client,
		logger:    logger,
		keyPrefix: cfg.KeyPrefix,
	}, nil
}

func (r *RedisLog) listKey() string {
	return r.keyPrefix + keyRecordList
}

// Append durably stores one record at the head of the list.
func (r *RedisLog) Append(record *types.TransactionRecord) error {
	data, err := persistence.MarshalTransactionRecord(record)
	if err != nil {
		return err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return fmt.Errorf("transaction log is closed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()

	if err := r.client.LPush(ctx, r.listKey(), data).Err(); err != nil {
		return fmt.Errorf("failed to append TransactionRecord: %w", err)
	}
	return nil
}

// ListRecent returns up to limit records, most recently appended first.
func (r *RedisLog) ListRecent(limit int) ([]*types.TransactionRecord, error) {
	if limit <= 0 {
		limit = persistence.DefaultListLimit
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil, fmt.Errorf("transaction log is closed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()

	values, err := r.client.LRange(ctx, r.listKey(), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list TransactionRecords: %w", err)
	}

	records := make([]*types.TransactionRecord, 0, len(values))
	for _, val := range values {
		record, err := persistence.UnmarshalTransactionRecord([]byte(val))
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// Close cleanly shuts down the log. Idempotent.
func (r *RedisLog) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true

	if err := r.client.Close(); err != nil {
		return fmt.Errorf("failed to close redis client: %w", err)
	}

	r.logger.Sugar().Info("Redis transaction log closed")
	return nil
}

// HealthCheck verifies Redis is reachable.
func (r *RedisLog) HealthCheck() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return fmt.Errorf("transaction log is closed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), operationTimeout)
	defer cancel()

	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis unreachable: %w", err)
	}
	return nil
}
