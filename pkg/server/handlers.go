package server

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/persistence"
	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/relay"
	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/types"
	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/util"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type successResponse struct {
	OK     bool                  `json:"ok"`
	TxHash string                `json:"txHash,omitempty"`
	Result *types.ReceiptSummary `json:"result,omitempty"`
}

type errorResponse struct {
	OK     bool   `json:"ok"`
	Error  string `json:"error"`
	TxHash string `json:"txHash,omitempty"`
}

// transactionRecordView mirrors the legacy wire shape: optional fields are
// explicit nulls, never omitted.
type transactionRecordView struct {
	Type      string    `json:"type"`
	TxHash    string    `json:"txHash"`
	Amount    *string   `json:"amount"`
	Currency  *string   `json:"currency"`
	From      *string   `json:"from"`
	To        *string   `json:"to"`
	CreatedAt time.Time `json:"createdAt"`
}

// requestLogger tags all log lines of one request with a fresh ID.
func (s *Server) requestLogger(r *http.Request) *zap.Logger {
	return s.logger.With(
		zap.String("requestId", uuid.New().String()),
		zap.String("path", r.URL.Path),
	)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Sugar().Errorw("Failed to encode response", "error", err)
	}
}

func (s *Server) writeErrorCode(w http.ResponseWriter, status int, code string) {
	s.writeJSON(w, status, errorResponse{OK: false, Error: code})
}

// allowWrite applies the shared write rate limit.
func (s *Server) allowWrite(w http.ResponseWriter) bool {
	if s.writeLimiter.Allow() {
		return true
	}
	s.writeErrorCode(w, http.StatusTooManyRequests, "rate_limited")
	return false
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("Budget ledger relay API is running"))
}

// handleRelayAddTransaction handles the core relay endpoint: a payload
// signed off-chain by the user's wallet, submitted on-chain by the server's
// funded account.
func (s *Server) handleRelayAddTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !s.allowWrite(w) {
		return
	}
	logger := s.requestLogger(r)

	var req types.RelayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErrorCode(w, http.StatusBadRequest, string(relay.RejectInvalidPayload))
		return
	}

	result := s.orchestrator.Relay(r.Context(), &req)

	switch res := result.(type) {
	case relay.Success:
		s.writeJSON(w, http.StatusOK, successResponse{
			OK:     true,
			TxHash: res.TxHash.Hex(),
			Result: types.NewReceiptSummary(res.Receipt),
		})
	case relay.Rejected:
		s.writeErrorCode(w, http.StatusBadRequest, string(res.Reason))
	case relay.Failed:
		status := http.StatusBadGateway
		if res.Reason == relay.FailConfirmationTimeout {
			status = http.StatusGatewayTimeout
		}
		resp := errorResponse{OK: false, Error: string(res.Reason)}
		if res.TxHash != nil {
			resp.TxHash = res.TxHash.Hex()
		}
		s.writeJSON(w, status, resp)
	default:
		logger.Error("Unknown relay result type")
		s.writeErrorCode(w, http.StatusInternalServerError, string(relay.FailInternal))
	}
}

type approvalRequest struct {
	Address  string `json:"address"`
	Approved *bool  `json:"approved"`
}

func (s *Server) handleApproveSender(w http.ResponseWriter, r *http.Request) {
	s.handleApproval(w, r, types.RecordKindApproveSender)
}

func (s *Server) handleApproveRecipient(w http.ResponseWriter, r *http.Request) {
	s.handleApproval(w, r, types.RecordKindApproveRecipient)
}

func (s *Server) handleApproval(w http.ResponseWriter, r *http.Request, kind types.RecordKind) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !s.allowWrite(w) {
		return
	}
	logger := s.requestLogger(r)

	var req approvalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErrorCode(w, http.StatusBadRequest, "invalid_payload")
		return
	}
	if !common.IsHexAddress(req.Address) || req.Approved == nil {
		s.writeErrorCode(w, http.StatusBadRequest, "invalid_payload")
		return
	}

	who := common.HexToAddress(req.Address)
	var tx *ethtypes.Transaction
	var err error
	if kind == types.RecordKindApproveSender {
		tx, err = s.gateway.SubmitSetApprovedSender(r.Context(), who, *req.Approved)
	} else {
		tx, err = s.gateway.SubmitSetApprovedRecipient(r.Context(), who, *req.Approved)
	}
	if err != nil {
		logger.Error("Approval submission failed", zap.Error(err))
		s.writeErrorCode(w, http.StatusBadGateway, "submission_error")
		return
	}

	s.completeWrite(r.Context(), w, logger, tx, &types.TransactionRecord{
		Kind: kind,
		To:   who.Hex(),
	})
}

type addTransactionRequest struct {
	SenderName    string `json:"senderName"`
	To            string `json:"to"`
	RecipientName string `json:"recipientName"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	Purpose       string `json:"purpose"`
}

// handleAddTransaction is the direct (non-relayed) write: the server's own
// account is the author, no client signature involved.
func (s *Server) handleAddTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !s.allowWrite(w) {
		return
	}
	logger := s.requestLogger(r)

	var req addTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErrorCode(w, http.StatusBadRequest, "invalid_payload")
		return
	}
	if req.SenderName == "" || req.RecipientName == "" || !common.IsHexAddress(req.To) {
		s.writeErrorCode(w, http.StatusBadRequest, "invalid_payload")
		return
	}
	amount, ok := new(big.Int).SetString(req.Amount, 10)
	if !ok || amount.Sign() < 0 {
		s.writeErrorCode(w, http.StatusBadRequest, "invalid_payload")
		return
	}

	to := common.HexToAddress(req.To)
	date := time.Now().Unix()
	tx, err := s.gateway.SubmitAddTransaction(r.Context(),
		req.SenderName, to, req.RecipientName, amount, req.Currency, req.Purpose, date)
	if err != nil {
		logger.Error("addTransaction submission failed", zap.Error(err))
		s.writeErrorCode(w, http.StatusBadGateway, "submission_error")
		return
	}

	s.completeWrite(r.Context(), w, logger, tx, &types.TransactionRecord{
		Kind:     types.RecordKindAddTransaction,
		Amount:   amount.String(),
		Currency: req.Currency,
		From:     s.gateway.GetFromAddress().Hex(),
		To:       to.Hex(),
	})
}

type transferOwnershipRequest struct {
	NewOwner string `json:"newOwner"`
}

func (s *Server) handleTransferOwnership(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !s.allowWrite(w) {
		return
	}
	logger := s.requestLogger(r)

	var req transferOwnershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErrorCode(w, http.StatusBadRequest, "invalid_payload")
		return
	}
	if !common.IsHexAddress(req.NewOwner) {
		s.writeErrorCode(w, http.StatusBadRequest, "invalid_payload")
		return
	}

	newOwner := common.HexToAddress(req.NewOwner)
	tx, err := s.gateway.SubmitTransferOwnership(r.Context(), newOwner)
	if err != nil {
		logger.Error("transferOwnership submission failed", zap.Error(err))
		s.writeErrorCode(w, http.StatusBadGateway, "submission_error")
		return
	}

	s.completeWrite(r.Context(), w, logger, tx, &types.TransactionRecord{
		Kind: types.RecordKindTransferOwnership,
		To:   newOwner.Hex(),
	})
}

// completeWrite finishes an owner write: wait for confirmation, append to
// the transaction log (best effort) and respond. The txHash is returned
// even when the confirmation wait fails - the broadcast is irrevocable and
// may still land.
func (s *Server) completeWrite(ctx context.Context, w http.ResponseWriter, logger *zap.Logger, tx *ethtypes.Transaction, record *types.TransactionRecord) {
	txHash := tx.Hash()

	receipt, err := s.gateway.Confirm(ctx, tx)
	if err != nil {
		code, status := "confirmation_timeout", http.StatusGatewayTimeout
		if receipt != nil {
			code, status = "submission_error", http.StatusBadGateway
		}
		logger.Warn("Write confirmation failed",
			zap.String("txHash", txHash.Hex()),
			zap.Error(err),
		)
		s.writeJSON(w, status, errorResponse{OK: false, Error: code, TxHash: txHash.Hex()})
		return
	}

	record.TxHash = txHash.Hex()
	record.CreatedAt = time.Now().UTC()
	if err := s.txLog.Append(record); err != nil {
		logger.Warn("Failed to record transaction",
			zap.String("txHash", txHash.Hex()),
			zap.Error(err),
		)
	}

	s.writeJSON(w, http.StatusOK, successResponse{
		OK:     true,
		TxHash: txHash.Hex(),
		Result: types.NewReceiptSummary(receipt),
	})
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	records, err := s.txLog.ListRecent(persistence.DefaultListLimit)
	if err != nil {
		s.requestLogger(r).Error("Failed to list transactions", zap.Error(err))
		s.writeErrorCode(w, http.StatusInternalServerError, "internal_error")
		return
	}

	views := util.Map(records, func(rec *types.TransactionRecord, _ uint64) *transactionRecordView {
		return &transactionRecordView{
			Type:      string(rec.Kind),
			TxHash:    rec.TxHash,
			Amount:    optional(rec.Amount),
			Currency:  optional(rec.Currency),
			From:      optional(rec.From),
			To:        optional(rec.To),
			CreatedAt: rec.CreatedAt,
		}
	})

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":           true,
		"transactions": views,
	})
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (s *Server) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	raw := strings.TrimPrefix(r.URL.Path, "/api/ledger/transaction/")
	index, ok := parseIndex(raw)
	if !ok {
		s.writeErrorCode(w, http.StatusBadRequest, "invalid_index")
		return
	}

	entry, err := s.gateway.GetTransaction(r.Context(), index)
	if err != nil {
		s.requestLogger(r).Error("Failed to get transaction",
			zap.String("index", index.String()),
			zap.Error(err),
		)
		s.writeErrorCode(w, http.StatusInternalServerError, "internal_error")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok": true,
		"tx": entry,
	})
}

// parseIndex accepts only a non-negative decimal integer.
func parseIndex(raw string) (*big.Int, bool) {
	if raw == "" {
		return nil, false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return nil, false
		}
	}
	index, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, false
	}
	return index, true
}

func (s *Server) handleGetTransactionCount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	count, err := s.gateway.GetTransactionCount(r.Context())
	if err != nil {
		s.requestLogger(r).Error("Failed to get transaction count", zap.Error(err))
		s.writeErrorCode(w, http.StatusInternalServerError, "internal_error")
		return
	}

	// Decimal string: the count is a uint256 on-chain.
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":    true,
		"count": count.String(),
	})
}

func (s *Server) handleGetApprovedSenders(w http.ResponseWriter, r *http.Request) {
	s.handleApprovedList(w, r, true)
}

func (s *Server) handleGetApprovedRecipients(w http.ResponseWriter, r *http.Request) {
	s.handleApprovedList(w, r, false)
}

func (s *Server) handleApprovedList(w http.ResponseWriter, r *http.Request, senders bool) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var addresses []common.Address
	var err error
	if senders {
		addresses, err = s.gateway.GetApprovedSenders(r.Context())
	} else {
		addresses, err = s.gateway.GetApprovedRecipients(r.Context())
	}
	if err != nil {
		s.requestLogger(r).Error("Failed to get approved list", zap.Error(err))
		s.writeErrorCode(w, http.StatusInternalServerError, "internal_error")
		return
	}

	list := util.Map(addresses, func(addr common.Address, _ uint64) string {
		return addr.Hex()
	})

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":   true,
		"list": list,
	})
}
