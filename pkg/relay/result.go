package relay

import (
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

// RejectReason is the stable error code for a relay refused before anything
// irreversible happened. The client can correct and retry with a fresh
// signed payload.
type RejectReason string

const (
	RejectInvalidPayload   RejectReason = "invalid_payload"
	RejectInvalidSignature RejectReason = "invalid_signature"
	RejectSignerMismatch   RejectReason = "signer_mismatch"
	RejectStaleTimestamp   RejectReason = "stale_timestamp"
)

// FailReason is the stable error code for a relay that failed at or after
// submission. Raw gateway error text never reaches the client; it stays in
// server logs.
type FailReason string

const (
	FailSubmission          FailReason = "submission_error"
	FailConfirmationTimeout FailReason = "confirmation_timeout"
	FailInternal            FailReason = "internal_error"
)

// Result is the tagged outcome of one relay attempt. Exactly one of the
// three concrete types is returned; consumers switch on the type rather
// than probing optional fields.
type Result interface {
	isResult()
}

// Success: the write was submitted and confirmed on-chain.
type Success struct {
	TxHash  common.Hash
	Receipt *ethtypes.Receipt
}

// Rejected: the relay was refused before submission. Nothing was written.
type Rejected struct {
	Reason RejectReason
}

// Failed: the relay failed at or after submission. TxHash is set when the
// write was broadcast before the failure - it may still confirm later, so
// the client gets the hash to poll the chain independently.
type Failed struct {
	Reason FailReason
	TxHash *common.Hash
}

func (Success) isResult()  {}
func (Rejected) isResult() {}
func (Failed) isResult()   {}
