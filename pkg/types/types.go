package types

import (
	"math/big"
	"time"

	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

// RelayPayload is the client-constructed message that gets signed in the
// browser wallet and relayed on-chain by the server. It is immutable once
// signed: any field change invalidates the signature.
//
// Amount is carried as its decimal string form end-to-end. It is an
// arbitrary-precision integer and must never pass through a float.
type RelayPayload struct {
	SenderName    string `json:"senderName"`
	To            string `json:"to"`
	RecipientName string `json:"recipientName"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	Purpose       string `json:"purpose"`
	IssuedAt      int64  `json:"date"`
}

// AmountBig parses the amount as a non-negative arbitrary-precision integer.
// Returns false for empty strings, non-decimal input and negative values.
func (p *RelayPayload) AmountBig() (*big.Int, bool) {
	amt, ok := new(big.Int).SetString(p.Amount, 10)
	if !ok || amt.Sign() < 0 {
		return nil, false
	}
	return amt, true
}

// RelayRequest is the wire-level envelope for one relay attempt. It is
// consumed exactly once and never persisted as-is.
type RelayRequest struct {
	Payload       *RelayPayload `json:"payload"`
	Signature     string        `json:"signature"` // 0x-prefixed hex, 65 bytes
	ClaimedSigner string        `json:"signer"`
}

// RecordKind classifies entries in the durable transaction log.
type RecordKind string

const (
	RecordKindApproveSender     RecordKind = "approveSender"
	RecordKindApproveRecipient  RecordKind = "approveRecipient"
	RecordKindTransferOwnership RecordKind = "transferOwnership"
	RecordKindAddTransaction    RecordKind = "addTransaction"
)

// Valid reports whether k is one of the declared record kinds.
func (k RecordKind) Valid() bool {
	switch k {
	case RecordKindApproveSender, RecordKindApproveRecipient,
		RecordKindTransferOwnership, RecordKindAddTransaction:
		return true
	}
	return false
}

// TransactionRecord is one entry in the durable transaction log. Records are
// created exactly once per successful write, never mutated and never deleted
// by this server. The log is an index for display, not the ledger of record;
// the chain is authoritative.
type TransactionRecord struct {
	Kind      RecordKind `json:"type"`
	TxHash    string     `json:"txHash"`
	Amount    string     `json:"amount,omitempty"`
	Currency  string     `json:"currency,omitempty"`
	From      string     `json:"from,omitempty"`
	To        string     `json:"to,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// LedgerEntry is one stored transaction read back from the ledger contract,
// normalized for transport: the uint256 amount becomes its decimal string.
type LedgerEntry struct {
	SenderName    string `json:"senderName"`
	To            string `json:"to"`
	RecipientName string `json:"recipientName"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	Purpose       string `json:"purpose"`
	Date          int64  `json:"date"`
}

// ReceiptSummary is the client-facing view of a mined receipt. Large integers
// are decimal strings so they survive JSON round-trips without precision loss.
type ReceiptSummary struct {
	TxHash      string `json:"txHash"`
	BlockNumber string `json:"blockNumber"`
	GasUsed     string `json:"gasUsed"`
	Status      uint64 `json:"status"`
}

// NewReceiptSummary converts a go-ethereum receipt at the transport boundary.
// This is the only place receipt integers are stringified; nothing walks
// arbitrary structures looking for big.Ints.
func NewReceiptSummary(receipt *ethtypes.Receipt) *ReceiptSummary {
	if receipt == nil {
		return nil
	}
	summary := &ReceiptSummary{
		TxHash:  receipt.TxHash.Hex(),
		GasUsed: new(big.Int).SetUint64(receipt.GasUsed).String(),
		Status:  receipt.Status,
	}
	if receipt.BlockNumber != nil {
		summary.BlockNumber = receipt.BlockNumber.String()
	}
	return summary
}
