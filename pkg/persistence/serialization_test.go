package persistence

import (
	"testing"
	"time"

	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalTransactionRecord_RoundTrip(t *testing.T) {
	record := &types.TransactionRecord{
		Kind:      types.RecordKindAddTransaction,
		TxHash:    "0xabc123",
		Amount:    "123456789012345678901234567890",
		Currency:  "PHP",
		From:      "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		To:        "0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := MarshalTransactionRecord(record)
	require.NoError(t, err)

	restored, err := UnmarshalTransactionRecord(data)
	require.NoError(t, err)
	assert.Equal(t, record, restored)
}

func TestMarshalTransactionRecord_OptionalFieldsOmitted(t *testing.T) {
	// Approval records carry no amount or currency; the JSON must not
	// invent empty strings for them.
	record := &types.TransactionRecord{
		Kind:      types.RecordKindApproveSender,
		TxHash:    "0xdef456",
		To:        "0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
		CreatedAt: time.Now().UTC(),
	}

	data, err := MarshalTransactionRecord(record)
	require.NoError(t, err)

	assert.NotContains(t, string(data), `"amount"`)
	assert.NotContains(t, string(data), `"currency"`)
	assert.NotContains(t, string(data), `"from"`)
	assert.Contains(t, string(data), `"type":"approveSender"`)
}

func TestMarshalTransactionRecord_Invalid(t *testing.T) {
	_, err := MarshalTransactionRecord(nil)
	assert.Error(t, err)

	_, err = MarshalTransactionRecord(&types.TransactionRecord{Kind: "bogus"})
	assert.Error(t, err)
}

func TestUnmarshalTransactionRecord_Invalid(t *testing.T) {
	_, err := UnmarshalTransactionRecord(nil)
	assert.Error(t, err)

	_, err = UnmarshalTransactionRecord([]byte("{not json"))
	assert.Error(t, err)
}
