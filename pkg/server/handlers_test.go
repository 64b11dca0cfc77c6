package server

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/codec"
	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/persistence/memory"
	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/relay"
	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/signatureVerifier"
	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeGateway plays back configured outcomes without touching a chain.
type fakeGateway struct {
	tx          *ethtypes.Transaction
	submitErr   error
	confirmErr  error
	submitCalls int

	count      *big.Int
	entry      *types.LedgerEntry
	entryErr   error
	senders    []common.Address
	recipients []common.Address
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		tx:    ethtypes.NewTx(&ethtypes.LegacyTx{Nonce: 1, Gas: 21000, GasPrice: big.NewInt(1)}),
		count: big.NewInt(0),
	}
}

func (f *fakeGateway) submit() (*ethtypes.Transaction, error) {
	f.submitCalls++
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return f.tx, nil
}

func (f *fakeGateway) SubmitAddTransaction(context.Context, string, common.Address, string, *big.Int, string, string, int64) (*ethtypes.Transaction, error) {
	return f.submit()
}

func (f *fakeGateway) SubmitSetApprovedSender(context.Context, common.Address, bool) (*ethtypes.Transaction, error) {
	return f.submit()
}

func (f *fakeGateway) SubmitSetApprovedRecipient(context.Context, common.Address, bool) (*ethtypes.Transaction, error) {
	return f.submit()
}

func (f *fakeGateway) SubmitTransferOwnership(context.Context, common.Address) (*ethtypes.Transaction, error) {
	return f.submit()
}

func (f *fakeGateway) Confirm(_ context.Context, tx *ethtypes.Transaction) (*ethtypes.Receipt, error) {
	if f.confirmErr != nil {
		return nil, f.confirmErr
	}
	return &ethtypes.Receipt{
		TxHash:      tx.Hash(),
		Status:      ethtypes.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(42),
		GasUsed:     21000,
	}, nil
}

func (f *fakeGateway) GetTransactionCount(context.Context) (*big.Int, error) {
	return f.count, nil
}

func (f *fakeGateway) GetTransaction(context.Context, *big.Int) (*types.LedgerEntry, error) {
	if f.entryErr != nil {
		return nil, f.entryErr
	}
	return f.entry, nil
}

func (f *fakeGateway) GetApprovedSenders(context.Context) ([]common.Address, error) {
	return f.senders, nil
}

func (f *fakeGateway) GetApprovedRecipients(context.Context) ([]common.Address, error) {
	return f.recipients, nil
}

func (f *fakeGateway) GetFromAddress() common.Address {
	return common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
}

func newTestServer(t *testing.T, gateway *fakeGateway) (*Server, *memory.MemoryLog) {
	t.Helper()

	txLog := memory.NewMemoryLog()
	t.Cleanup(func() { _ = txLog.Close() })

	orchestrator := relay.NewOrchestrator(gateway, txLog, 300*time.Second, zap.NewNop())
	return NewServer(orchestrator, gateway, txLog, 0, zap.NewNop()), txLog
}

func doRequest(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	s.GetHandler().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func signedRelayRequest(t *testing.T, key *ecdsa.PrivateKey, payload *types.RelayPayload) *types.RelayRequest {
	t.Helper()

	encoded, err := codec.Encode(payload)
	require.NoError(t, err)
	sig, err := signatureVerifier.Sign(encoded, key)
	require.NoError(t, err)

	return &types.RelayRequest{
		Payload:       payload,
		Signature:     hexutil.Encode(sig),
		ClaimedSigner: crypto.PubkeyToAddress(key.PublicKey).Hex(),
	}
}

func TestRelayEndpoint_Success(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	gateway := newFakeGateway()
	s, txLog := newTestServer(t, gateway)

	payload := &types.RelayPayload{
		SenderName:    "Alice",
		To:            "0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
		RecipientName: "Bob",
		Amount:        "2500",
		Currency:      "PHP",
		Purpose:       "groceries",
		IssuedAt:      time.Now().Unix(),
	}

	rec := doRequest(t, s, http.MethodPost, "/api/ledger/relay-add-transaction", signedRelayRequest(t, key, payload))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, gateway.tx.Hash().Hex(), body["txHash"])

	result := body["result"].(map[string]interface{})
	assert.Equal(t, "42", result["blockNumber"])
	assert.Equal(t, "21000", result["gasUsed"])
	assert.Equal(t, float64(1), result["status"])

	records, err := txLog.ListRecent(10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, types.RecordKindAddTransaction, records[0].Kind)
}

func TestRelayEndpoint_SignerMismatch(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	otherKey, err := crypto.GenerateKey()
	require.NoError(t, err)

	gateway := newFakeGateway()
	s, _ := newTestServer(t, gateway)

	payload := &types.RelayPayload{
		SenderName:    "Alice",
		To:            "0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
		RecipientName: "Bob",
		Amount:        "2500",
		Currency:      "PHP",
		Purpose:       "groceries",
		IssuedAt:      time.Now().Unix(),
	}
	req := signedRelayRequest(t, key, payload)
	req.ClaimedSigner = crypto.PubkeyToAddress(otherKey.PublicKey).Hex()

	rec := doRequest(t, s, http.MethodPost, "/api/ledger/relay-add-transaction", req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "signer_mismatch", body["error"])
	assert.Equal(t, 0, gateway.submitCalls)
}

func TestRelayEndpoint_InvalidJSON(t *testing.T) {
	s, _ := newTestServer(t, newFakeGateway())

	req := httptest.NewRequest(http.MethodPost, "/api/ledger/relay-add-transaction", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	s.GetHandler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_payload", decodeBody(t, rec)["error"])
}

func TestRelayEndpoint_MethodNotAllowed(t *testing.T) {
	s, _ := newTestServer(t, newFakeGateway())

	rec := doRequest(t, s, http.MethodGet, "/api/ledger/relay-add-transaction", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestApproveSender_Success(t *testing.T) {
	gateway := newFakeGateway()
	s, txLog := newTestServer(t, gateway)

	approved := true
	rec := doRequest(t, s, http.MethodPost, "/api/ledger/approve-sender", approvalRequest{
		Address:  "0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
		Approved: &approved,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, gateway.tx.Hash().Hex(), body["txHash"])

	records, err := txLog.ListRecent(10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, types.RecordKindApproveSender, records[0].Kind)
	assert.Empty(t, records[0].Amount)
}

func TestApproveSender_InvalidInput(t *testing.T) {
	gateway := newFakeGateway()
	s, _ := newTestServer(t, gateway)

	approved := true
	for name, body := range map[string]approvalRequest{
		"bad address":      {Address: "nope", Approved: &approved},
		"missing approved": {Address: "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"},
	} {
		rec := doRequest(t, s, http.MethodPost, "/api/ledger/approve-sender", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, name)
		assert.Equal(t, "invalid_payload", decodeBody(t, rec)["error"], name)
	}
	assert.Equal(t, 0, gateway.submitCalls)
}

func TestAddTransaction_Direct(t *testing.T) {
	gateway := newFakeGateway()
	s, txLog := newTestServer(t, gateway)

	rec := doRequest(t, s, http.MethodPost, "/api/ledger/add-transaction", addTransactionRequest{
		SenderName:    "Treasurer",
		To:            "0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
		RecipientName: "Vendor",
		Amount:        "99000",
		Currency:      "PHP",
		Purpose:       "equipment",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	records, err := txLog.ListRecent(10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "99000", records[0].Amount)
	// Direct writes are authored by the relayer account.
	assert.Equal(t, gateway.GetFromAddress().Hex(), records[0].From)
}

func TestAddTransaction_RejectsBadAmount(t *testing.T) {
	gateway := newFakeGateway()
	s, _ := newTestServer(t, gateway)

	for _, amount := range []string{"", "-1", "10.5", "abc"} {
		rec := doRequest(t, s, http.MethodPost, "/api/ledger/add-transaction", addTransactionRequest{
			SenderName:    "Treasurer",
			To:            "0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
			RecipientName: "Vendor",
			Amount:        amount,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code, "amount %q", amount)
	}
	assert.Equal(t, 0, gateway.submitCalls)
}

func TestTransferOwnership(t *testing.T) {
	gateway := newFakeGateway()
	s, txLog := newTestServer(t, gateway)

	rec := doRequest(t, s, http.MethodPost, "/api/ledger/transfer-ownership", transferOwnershipRequest{
		NewOwner: "0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	records, err := txLog.ListRecent(10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, types.RecordKindTransferOwnership, records[0].Kind)
}

func TestWriteEndpoint_SubmissionError(t *testing.T) {
	gateway := newFakeGateway()
	gateway.submitErr = fmt.Errorf("insufficient funds")
	s, txLog := newTestServer(t, gateway)

	rec := doRequest(t, s, http.MethodPost, "/api/ledger/transfer-ownership", transferOwnershipRequest{
		NewOwner: "0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
	})
	require.Equal(t, http.StatusBadGateway, rec.Code)

	body := decodeBody(t, rec)
	// Raw error text never reaches the client.
	assert.Equal(t, "submission_error", body["error"])
	assert.NotContains(t, rec.Body.String(), "insufficient funds")

	records, err := txLog.ListRecent(10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestWriteEndpoint_ConfirmationTimeoutReturnsHash(t *testing.T) {
	gateway := newFakeGateway()
	gateway.confirmErr = context.DeadlineExceeded
	s, _ := newTestServer(t, gateway)

	approved := true
	rec := doRequest(t, s, http.MethodPost, "/api/ledger/approve-recipient", approvalRequest{
		Address:  "0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
		Approved: &approved,
	})
	require.Equal(t, http.StatusGatewayTimeout, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "confirmation_timeout", body["error"])
	assert.Equal(t, gateway.tx.Hash().Hex(), body["txHash"])
}

func TestListTransactions(t *testing.T) {
	gateway := newFakeGateway()
	s, txLog := newTestServer(t, gateway)

	require.NoError(t, txLog.Append(&types.TransactionRecord{
		Kind:      types.RecordKindApproveSender,
		TxHash:    "0xaaa",
		To:        "0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
		CreatedAt: time.Now().UTC(),
	}))

	rec := doRequest(t, s, http.MethodGet, "/api/ledger/transactions", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	transactions := body["transactions"].([]interface{})
	require.Len(t, transactions, 1)

	entry := transactions[0].(map[string]interface{})
	assert.Equal(t, "approveSender", entry["type"])
	assert.Equal(t, "0xaaa", entry["txHash"])
	// Approval records carry no amount; the view serializes explicit nulls.
	assert.Nil(t, entry["amount"])
	assert.Nil(t, entry["currency"])
}

func TestGetTransaction(t *testing.T) {
	gateway := newFakeGateway()
	gateway.entry = &types.LedgerEntry{
		SenderName:    "Alice",
		To:            "0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
		RecipientName: "Bob",
		Amount:        "123456789012345678901234567890",
		Currency:      "PHP",
		Purpose:       "groceries",
		Date:          1700000000,
	}
	s, _ := newTestServer(t, gateway)

	rec := doRequest(t, s, http.MethodGet, "/api/ledger/transaction/0", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	tx := body["tx"].(map[string]interface{})
	// Precision survives: amount is a decimal string.
	assert.Equal(t, "123456789012345678901234567890", tx["amount"])
	assert.Equal(t, float64(1700000000), tx["date"])
}

func TestGetTransaction_InvalidIndex(t *testing.T) {
	s, _ := newTestServer(t, newFakeGateway())

	for _, raw := range []string{"abc", "-1", "1.5", ""} {
		rec := doRequest(t, s, http.MethodGet, "/api/ledger/transaction/"+raw, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code, "index %q", raw)
		assert.Equal(t, "invalid_index", decodeBody(t, rec)["error"], "index %q", raw)
	}
}

func TestGetTransactionCount(t *testing.T) {
	gateway := newFakeGateway()
	gateway.count, _ = new(big.Int).SetString("98765432109876543210", 10)
	s, _ := newTestServer(t, gateway)

	rec := doRequest(t, s, http.MethodGet, "/api/ledger/transaction-count", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "98765432109876543210", body["count"])
}

func TestGetApprovedLists(t *testing.T) {
	gateway := newFakeGateway()
	gateway.senders = []common.Address{
		common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8"),
	}
	s, _ := newTestServer(t, gateway)

	rec := doRequest(t, s, http.MethodGet, "/api/ledger/approved-senders", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	list := body["list"].([]interface{})
	require.Len(t, list, 1)
	assert.Equal(t, "0x70997970C51812dc3A010C7d01b50e0d17dc79C8", list[0])

	// Empty list serializes as [], not null.
	rec = doRequest(t, s, http.MethodGet, "/api/ledger/approved-recipients", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, decodeBody(t, rec)["list"])
}

func TestRoot_Liveness(t *testing.T) {
	s, _ := newTestServer(t, newFakeGateway())

	rec := doRequest(t, s, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, s, http.MethodGet, "/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
