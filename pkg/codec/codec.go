package codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/types"
)

// wireMessage mirrors the object the browser client passes to JSON.stringify
// before signing. Field order is the wire contract; do not reorder.
type wireMessage struct {
	SenderName    string `json:"senderName"`
	To            string `json:"to"`
	RecipientName string `json:"recipientName"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	Purpose       string `json:"purpose"`
	Date          int64  `json:"date"`
}

// Encode produces the canonical byte string a client signs for the given
// payload. It must be byte-identical to the client's own encoding: same key
// order, amount as a decimal string, timestamp as a bare number, no inserted
// whitespace. Any divergence here makes every signature fail verification.
//
// JSON.stringify does not escape '<', '>' or '&', so HTML escaping is
// disabled to match.
func Encode(payload *types.RelayPayload) ([]byte, error) {
	if payload == nil {
		return nil, fmt.Errorf("cannot encode nil payload")
	}

	msg := wireMessage{
		SenderName:    payload.SenderName,
		To:            payload.To,
		RecipientName: payload.RecipientName,
		Amount:        payload.Amount,
		Currency:      payload.Currency,
		Purpose:       payload.Purpose,
		Date:          payload.IssuedAt,
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(msg); err != nil {
		return nil, fmt.Errorf("failed to encode relay payload: %w", err)
	}

	// json.Encoder terminates the stream with a newline; the signed message
	// does not include it.
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
