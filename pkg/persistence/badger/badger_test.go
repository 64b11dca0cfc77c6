package badger

import (
	"fmt"
	"testing"
	"time"

	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/logger"
	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLog(t *testing.T, path string) *BadgerLog {
	t.Helper()

	testLogger, err := logger.NewLogger(&logger.LoggerConfig{Debug: false})
	require.NoError(t, err)

	log, err := NewBadgerLog(path, testLogger)
	require.NoError(t, err)
	return log
}

func testRecord(i int) *types.TransactionRecord {
	return &types.TransactionRecord{
		Kind:      types.RecordKindAddTransaction,
		TxHash:    fmt.Sprintf("0xhash%d", i),
		Amount:    fmt.Sprintf("%d", i*100),
		Currency:  "PHP",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestBadgerLog_AppendAndList(t *testing.T) {
	log := newTestLog(t, t.TempDir())
	defer func() { _ = log.Close() }()

	for i := 0; i < 5; i++ {
		require.NoError(t, log.Append(testRecord(i)))
	}

	records, err := log.ListRecent(10)
	require.NoError(t, err)
	require.Len(t, records, 5)

	// Most recent first.
	assert.Equal(t, "0xhash4", records[0].TxHash)
	assert.Equal(t, "0xhash0", records[4].TxHash)
}

func TestBadgerLog_ListRespectsLimit(t *testing.T) {
	log := newTestLog(t, t.TempDir())
	defer func() { _ = log.Close() }()

	for i := 0; i < 10; i++ {
		require.NoError(t, log.Append(testRecord(i)))
	}

	records, err := log.ListRecent(3)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "0xhash9", records[0].TxHash)
}

func TestBadgerLog_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	log := newTestLog(t, dir)
	for i := 0; i < 3; i++ {
		require.NoError(t, log.Append(testRecord(i)))
	}
	require.NoError(t, log.Close())

	// Reopen: records and the sequence counter must be restored.
	log = newTestLog(t, dir)
	defer func() { _ = log.Close() }()

	require.NoError(t, log.Append(testRecord(3)))

	records, err := log.ListRecent(10)
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "0xhash3", records[0].TxHash)
	assert.Equal(t, "0xhash0", records[3].TxHash)
}

func TestBadgerLog_RejectsInvalidRecords(t *testing.T) {
	log := newTestLog(t, t.TempDir())
	defer func() { _ = log.Close() }()

	assert.Error(t, log.Append(nil))
	assert.Error(t, log.Append(&types.TransactionRecord{Kind: "bogus", TxHash: "0x1"}))
}

func TestBadgerLog_CloseIdempotent(t *testing.T) {
	log := newTestLog(t, t.TempDir())

	require.NoError(t, log.Close())
	require.NoError(t, log.Close())

	assert.Error(t, log.Append(testRecord(0)))
	assert.Error(t, log.HealthCheck())
}

func TestBadgerLog_HealthCheck(t *testing.T) {
	log := newTestLog(t, t.TempDir())
	defer func() { _ = log.Close() }()

	assert.NoError(t, log.HealthCheck())
}
