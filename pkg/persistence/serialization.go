package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/types"
)

// MarshalTransactionRecord serializes a TransactionRecord to JSON bytes.
func MarshalTransactionRecord(record *types.TransactionRecord) ([]byte, error) {
	if record == nil {
		return nil, fmt.Errorf("cannot marshal nil TransactionRecord")
	}
	if !record.Kind.Valid() {
		return nil, fmt.Errorf("cannot marshal TransactionRecord with unknown kind %q", record.Kind)
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal TransactionRecord to JSON: %w", err)
	}

	return data, nil
}

// UnmarshalTransactionRecord deserializes a TransactionRecord from JSON bytes.
func UnmarshalTransactionRecord(data []byte) (*types.TransactionRecord, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("cannot unmarshal empty data")
	}

	var record types.TransactionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal TransactionRecord from JSON: %w", err)
	}

	return &record, nil
}
