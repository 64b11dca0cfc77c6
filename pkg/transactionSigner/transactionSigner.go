package transactionSigner

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

// ITransactionSigner provides signing for ledger write transactions. The
// server holds one funded account that pays gas for every relayed action.
type ITransactionSigner interface {
	// GetTransactOpts returns transaction options that sign with this
	// account, with EIP-1559 fee fields populated.
	GetTransactOpts(ctx context.Context) (*bind.TransactOpts, error)

	// GetFromAddress returns the address that will be used for signing
	GetFromAddress() common.Address

	// AcquireSubmitLock serializes submission for this signing account.
	// Nonce assignment happens at submit time; two in-flight submissions
	// from the same account would race for the same pending nonce. Returns
	// the release function.
	AcquireSubmitLock() func()
}

type SignerConfig struct {
	PrivateKey string `json:"privateKey" yaml:"privateKey"`
}

func NewTransactionSigner(cfg *SignerConfig, ethClient *ethclient.Client, logger *zap.Logger) (ITransactionSigner, error) {
	if cfg == nil || cfg.PrivateKey == "" {
		return nil, errEmptyPrivateKey
	}

	return NewPrivateKeySigner(cfg.PrivateKey, ethClient, logger)
}
