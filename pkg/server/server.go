package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/contractCaller"
	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/persistence"
	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/relay"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Write endpoints share one limiter: every write spends gas from the same
// funded relayer account.
const (
	writeRatePerSecond = 2
	writeBurst         = 5
)

/*
Server handles HTTP requests for the ledger relay API.

Relay Flow (the core path):
  POST /api/ledger/relay-add-transaction:
    - Request: { payload, signature, signer }
    - Payload is re-encoded canonically, the signature recovered (EIP-191
      personal message), the recovered address compared to the claimed
      signer, and the timestamp checked against the replay window.
    - On success the server submits addTransaction from its own funded
      account, waits for confirmation and appends to the transaction log.
    - Response: { ok: true, txHash, result } with receipt integers as
      decimal strings.

Owner Writes (server-key operations):
  POST /api/ledger/approve-sender      { address, approved }
  POST /api/ledger/approve-recipient   { address, approved }
  POST /api/ledger/add-transaction     { senderName, to, recipientName, amount, currency, purpose }
  POST /api/ledger/transfer-ownership  { newOwner }

Reads (side-effect free, fully concurrent):
  GET /api/ledger/transactions          - recent transaction log records
  GET /api/ledger/transaction/{index}   - one on-chain entry
  GET /api/ledger/transaction-count
  GET /api/ledger/approved-senders
  GET /api/ledger/approved-recipients

Error Codes:
  400-class: invalid_payload | invalid_signature | signer_mismatch |
             stale_timestamp | invalid_index
  500-class: submission_error | confirmation_timeout | internal_error
  On post-submission failures the txHash is still included when known, so
  clients can poll the chain themselves.
*/
type Server struct {
	orchestrator *relay.Orchestrator
	gateway      contractCaller.ILedgerGateway
	txLog        persistence.ITransactionLog
	logger       *zap.Logger
	writeLimiter *rate.Limiter
	httpServer   *http.Server
}

// NewServer creates a new server instance
func NewServer(
	orchestrator *relay.Orchestrator,
	gateway contractCaller.ILedgerGateway,
	txLog persistence.ITransactionLog,
	port int,
	logger *zap.Logger,
) *Server {
	s := &Server{
		orchestrator: orchestrator,
		gateway:      gateway,
		txLog:        txLog,
		logger:       logger,
		writeLimiter: rate.NewLimiter(rate.Limit(writeRatePerSecond), writeBurst),
	}

	mux := http.NewServeMux()

	// Core relay endpoint
	mux.HandleFunc("/api/ledger/relay-add-transaction", s.handleRelayAddTransaction)

	// Owner write endpoints
	mux.HandleFunc("/api/ledger/approve-sender", s.handleApproveSender)
	mux.HandleFunc("/api/ledger/approve-recipient", s.handleApproveRecipient)
	mux.HandleFunc("/api/ledger/add-transaction", s.handleAddTransaction)
	mux.HandleFunc("/api/ledger/transfer-ownership", s.handleTransferOwnership)

	// Read endpoints
	mux.HandleFunc("/api/ledger/transactions", s.handleListTransactions)
	mux.HandleFunc("/api/ledger/transaction/", s.handleGetTransaction)
	mux.HandleFunc("/api/ledger/transaction-count", s.handleGetTransactionCount)
	mux.HandleFunc("/api/ledger/approved-senders", s.handleGetApprovedSenders)
	mux.HandleFunc("/api/ledger/approved-recipients", s.handleGetApprovedRecipients)

	// Liveness
	mux.HandleFunc("/", s.handleRoot)

	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}

	return s
}

// Start starts the HTTP server
func (s *Server) Start() error {
	go func() {
		s.logger.Sugar().Infow("Starting HTTP server", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != http.ErrServerClosed {
			s.logger.Sugar().Errorw("HTTP server error", "error", err)
		}
	}()
	return nil
}

// Stop gracefully stops the HTTP server. In-flight confirmation waits get
// until ctx expires to finish; broadcast writes are never abandoned.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// GetHandler returns the HTTP handler (for testing)
func (s *Server) GetHandler() http.Handler {
	return s.httpServer.Handler
}
