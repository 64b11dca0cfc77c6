package relay

import (
	"context"
	"math/big"
	"time"

	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/codec"
	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/contractCaller"
	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/persistence"
	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/replayGuard"
	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/signatureVerifier"
	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"
)

// verifiedIntent pairs a payload with its recovered signer. It is only
// constructed after both the signature and the replay check pass; nothing
// reaches the ledger without going through one.
type verifiedIntent struct {
	payload *types.RelayPayload
	amount  *big.Int
	signer  common.Address
}

// Orchestrator drives a relay attempt through
// verify -> authorize -> submit -> confirm -> record -> respond.
//
// Pre-submission failures are client-correctable rejections. Once a write is
// broadcast there are no automatic retries: each relay attempt submits at
// most once, and a retry needs a freshly signed payload.
type Orchestrator struct {
	gateway contractCaller.ILedgerGateway
	txLog   persistence.ITransactionLog
	logger  *zap.Logger
	window  time.Duration
	now     func() int64
}

func NewOrchestrator(
	gateway contractCaller.ILedgerGateway,
	txLog persistence.ITransactionLog,
	window time.Duration,
	logger *zap.Logger,
) *Orchestrator {
	if window <= 0 {
		window = replayGuard.DefaultWindow
	}
	return &Orchestrator{
		gateway: gateway,
		txLog:   txLog,
		logger:  logger,
		window:  window,
		now:     func() int64 { return time.Now().Unix() },
	}
}

// Relay verifies a signed payload and, if it checks out, submits the
// equivalent addTransaction write from the server's funded account.
func (o *Orchestrator) Relay(ctx context.Context, req *types.RelayRequest) Result {
	intent, rejected := o.verify(req)
	if rejected != nil {
		o.logger.Info("Relay rejected",
			zap.String("reason", string(rejected.Reason)),
		)
		return *rejected
	}

	payload := intent.payload

	// Point of no return: exactly one submission per verified intent.
	tx, err := o.gateway.SubmitAddTransaction(ctx,
		payload.SenderName,
		common.HexToAddress(payload.To),
		payload.RecipientName,
		intent.amount,
		payload.Currency,
		payload.Purpose,
		payload.IssuedAt,
	)
	if err != nil {
		// The raw error stays server-side; the client sees a stable code.
		o.logger.Error("Relay submission failed",
			zap.String("signer", intent.signer.Hex()),
			zap.Error(err),
		)
		return Failed{Reason: FailSubmission}
	}
	txHash := tx.Hash()

	receipt, err := o.gateway.Confirm(ctx, tx)
	if err != nil {
		if receipt != nil {
			// Mined but reverted.
			o.logger.Error("Relayed write reverted",
				zap.String("txHash", txHash.Hex()),
				zap.Error(err),
			)
			return Failed{Reason: FailSubmission, TxHash: &txHash}
		}
		// The broadcast is irrevocable and may still land; hand the hash
		// back so the client can poll the chain on its own.
		o.logger.Warn("Relay confirmation did not complete",
			zap.String("txHash", txHash.Hex()),
			zap.Error(err),
		)
		return Failed{Reason: FailConfirmationTimeout, TxHash: &txHash}
	}

	o.record(intent, txHash)

	o.logger.Info("Relay confirmed",
		zap.String("txHash", txHash.Hex()),
		zap.String("signer", intent.signer.Hex()),
		zap.String("amount", intent.amount.String()),
	)

	return Success{TxHash: txHash, Receipt: receipt}
}

// verify runs the pre-submission pipeline: payload shape, signature
// recovery, signer match, replay window. Nothing here touches the chain.
func (o *Orchestrator) verify(req *types.RelayRequest) (*verifiedIntent, *Rejected) {
	if req == nil || req.Payload == nil || req.Signature == "" || req.ClaimedSigner == "" {
		return nil, &Rejected{Reason: RejectInvalidPayload}
	}

	payload := req.Payload
	if !common.IsHexAddress(payload.To) || !common.IsHexAddress(req.ClaimedSigner) {
		return nil, &Rejected{Reason: RejectInvalidPayload}
	}
	amount, ok := payload.AmountBig()
	if !ok {
		return nil, &Rejected{Reason: RejectInvalidPayload}
	}

	sigBytes, err := hexutil.Decode(req.Signature)
	if err != nil {
		return nil, &Rejected{Reason: RejectInvalidSignature}
	}

	encoded, err := codec.Encode(payload)
	if err != nil {
		return nil, &Rejected{Reason: RejectInvalidPayload}
	}

	recovered, err := signatureVerifier.Recover(encoded, sigBytes)
	if err != nil {
		return nil, &Rejected{Reason: RejectInvalidSignature}
	}
	if !signatureVerifier.Matches(recovered, req.ClaimedSigner) {
		return nil, &Rejected{Reason: RejectSignerMismatch}
	}

	if !replayGuard.Check(payload.IssuedAt, o.now(), o.window) {
		return nil, &Rejected{Reason: RejectStaleTimestamp}
	}

	return &verifiedIntent{payload: payload, amount: amount, signer: recovered}, nil
}

// record appends the relayed write to the transaction log. Best effort: the
// on-chain effect is authoritative and the log is only an index, so a sink
// failure is logged and swallowed - it never changes the client's outcome.
func (o *Orchestrator) record(intent *verifiedIntent, txHash common.Hash) {
	record := &types.TransactionRecord{
		Kind:      types.RecordKindAddTransaction,
		TxHash:    txHash.Hex(),
		Amount:    intent.amount.String(),
		Currency:  intent.payload.Currency,
		From:      intent.signer.Hex(),
		To:        common.HexToAddress(intent.payload.To).Hex(),
		CreatedAt: time.Now().UTC(),
	}
	if err := o.txLog.Append(record); err != nil {
		o.logger.Warn("Failed to record relayed transaction",
			zap.String("txHash", txHash.Hex()),
			zap.Error(err),
		)
	}
}
