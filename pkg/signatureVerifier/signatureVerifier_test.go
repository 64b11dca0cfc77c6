package signatureVerifier

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndRecover_RoundTrip(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	expected := crypto.PubkeyToAddress(key.PublicKey)

	message := []byte(`{"senderName":"Alice","amount":"100"}`)

	sig, err := Sign(message, key)
	require.NoError(t, err)
	require.Len(t, sig, 65)
	// Wallet wire format.
	assert.True(t, sig[64] == 27 || sig[64] == 28)

	recovered, err := Recover(message, sig)
	require.NoError(t, err)
	assert.Equal(t, expected, recovered)
}

func TestRecover_AcceptsRawRecoveryID(t *testing.T) {
	// Some signers emit V as 0/1 instead of 27/28; both must recover.
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	expected := crypto.PubkeyToAddress(key.PublicKey)

	message := []byte("hello")
	sig, err := Sign(message, key)
	require.NoError(t, err)
	sig[64] -= 27

	recovered, err := Recover(message, sig)
	require.NoError(t, err)
	assert.Equal(t, expected, recovered)
}

func TestRecover_WrongLength(t *testing.T) {
	_, err := Recover([]byte("hello"), []byte{0x01, 0x02, 0x03})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSignature))
}

func TestRecover_InvalidRecoveryID(t *testing.T) {
	sig := make([]byte, 65)
	sig[64] = 5

	_, err := Recover([]byte("hello"), sig)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSignature))
}

func TestRecover_MutatedMessageRecoversDifferentAddress(t *testing.T) {
	// A valid signature over a different message is not malformed; it just
	// recovers to some other address. The mismatch is caught by Matches.
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	signer := crypto.PubkeyToAddress(key.PublicKey)

	sig, err := Sign([]byte(`{"amount":"100"}`), key)
	require.NoError(t, err)

	recovered, err := Recover([]byte(`{"amount":"999"}`), sig)
	require.NoError(t, err)
	assert.NotEqual(t, signer, recovered)
}

func TestMatches_CaseInsensitive(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	addr := crypto.PubkeyToAddress(key.PublicKey)

	assert.True(t, Matches(addr, addr.Hex()))
	assert.True(t, Matches(addr, strings.ToLower(addr.Hex())))
	assert.True(t, Matches(addr, strings.ToUpper(addr.Hex()[2:])))
}

func TestMatches_RejectsGarbage(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	addr := crypto.PubkeyToAddress(key.PublicKey)

	assert.False(t, Matches(addr, ""))
	assert.False(t, Matches(addr, "not-an-address"))
	assert.False(t, Matches(addr, "0x1234"))
}

func TestSign_NilKey(t *testing.T) {
	_, err := Sign([]byte("hello"), nil)
	assert.Error(t, err)
}
