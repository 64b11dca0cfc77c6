package signatureVerifier

import (
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

// ErrInvalidSignature indicates a malformed signature: wrong length, invalid
// recovery id or bytes that do not recover to any public key. A well-formed
// signature from the wrong key does NOT produce this error - recovery then
// succeeds to some other address, and the caller detects the mismatch by
// comparing against the claimed signer.
var ErrInvalidSignature = errors.New("invalid signature")

// signatureLength is r(32) || s(32) || v(1), the eth_sign wire format.
const signatureLength = 65

// Recover derives the address that produced signature over message using the
// EIP-191 personal-message scheme (personal_sign): the message is prefixed
// with "\x19Ethereum Signed Message:\n" + length before hashing.
func Recover(message, signature []byte) (common.Address, error) {
	if len(signature) != signatureLength {
		return common.Address{}, errors.Wrapf(ErrInvalidSignature,
			"expected %d signature bytes, got %d", signatureLength, len(signature))
	}

	// Wallets emit V as 27/28; crypto.SigToPub expects 0/1.
	sig := make([]byte, signatureLength)
	copy(sig, signature)
	if sig[64] >= 27 {
		sig[64] -= 27
	}
	if sig[64] > 1 {
		return common.Address{}, errors.Wrapf(ErrInvalidSignature,
			"invalid recovery id %d", sig[64])
	}

	pubKey, err := crypto.SigToPub(accounts.TextHash(message), sig)
	if err != nil {
		return common.Address{}, errors.Wrap(ErrInvalidSignature, err.Error())
	}

	return crypto.PubkeyToAddress(*pubKey), nil
}

// Matches reports whether recovered is the address claimed by the client.
// common.Address comparison is byte-level, so hex casing never matters.
func Matches(recovered common.Address, claimedSigner string) bool {
	if !common.IsHexAddress(claimedSigner) {
		return false
	}
	return recovered == common.HexToAddress(claimedSigner)
}

// Sign produces a personal_sign-compatible signature over message. Browser
// wallets produce the same bytes; this helper exists for tests and Go clients.
func Sign(message []byte, privateKey *ecdsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, errors.New("private key is nil")
	}

	sig, err := crypto.Sign(accounts.TextHash(message), privateKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign message")
	}

	// Match the wallet wire format (V = 27/28).
	sig[64] += 27
	return sig, nil
}
