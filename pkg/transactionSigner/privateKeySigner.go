package transactionSigner

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var errEmptyPrivateKey = errors.New("private key cannot be empty")

// fallbackGasTipCap is used when the RPC does not support
// eth_maxPriorityFeePerGas. 0.001 gwei is plenty on Base.
var fallbackGasTipCap = big.NewInt(1000000)

// baseFeeMultiplier buffers maxFeePerGas against base fee spikes between
// estimation and inclusion.
const baseFeeMultiplier = 2

// PrivateKeySigner implements ITransactionSigner with a local secp256k1 key.
// This is the relayer account: it signs and pays for every write the server
// performs on behalf of clients.
type PrivateKeySigner struct {
	privateKey  *ecdsa.PrivateKey
	fromAddress common.Address
	chainID     *big.Int
	ethClient   *ethclient.Client
	logger      *zap.Logger

	// Guards nonce assignment: one in-flight submission per account.
	submitMu sync.Mutex
}

// NewPrivateKeySigner creates a signer from a hex-encoded private key,
// with or without the 0x prefix. The chain ID is fetched once at startup.
func NewPrivateKeySigner(privateKeyHex string, ethClient *ethclient.Client, logger *zap.Logger) (*PrivateKeySigner, error) {
	if privateKeyHex == "" {
		return nil, errEmptyPrivateKey
	}

	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse private key")
	}

	chainID, err := ethClient.ChainID(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}

	signer := &PrivateKeySigner{
		privateKey:  privateKey,
		fromAddress: crypto.PubkeyToAddress(privateKey.PublicKey),
		chainID:     chainID,
		ethClient:   ethClient,
		logger:      logger,
	}

	logger.Sugar().Infow("Transaction signer initialized",
		"fromAddress", signer.fromAddress.Hex(),
		"chainID", chainID.String(),
	)

	return signer, nil
}

// GetTransactOpts returns keyed transaction options with EIP-1559 fees set
// from the current chain state.
func (s *PrivateKeySigner) GetTransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(s.privateKey, s.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.Context = ctx

	// Estimate gas tip cap (priority fee)
	gasTipCap, err := s.ethClient.SuggestGasTipCap(ctx)
	if err != nil {
		// The backend may not support eth_maxPriorityFeePerGas;
		// fall back to the default constant.
		s.logger.Sugar().Warnw("GetTransactOpts: cannot get gasTipCap, using fallback",
			zap.Error(err),
		)
		gasTipCap = fallbackGasTipCap
	}

	header, err := s.ethClient.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest block header: %w", err)
	}

	// Max fee per gas: basefee * multiplier + tip
	opts.GasTipCap = gasTipCap
	opts.GasFeeCap = new(big.Int).Add(
		new(big.Int).Mul(header.BaseFee, big.NewInt(baseFeeMultiplier)),
		gasTipCap,
	)

	return opts, nil
}

// GetFromAddress returns the address that will be used for signing
func (s *PrivateKeySigner) GetFromAddress() common.Address {
	return s.fromAddress
}

// AcquireSubmitLock serializes transaction submission for this account.
func (s *PrivateKeySigner) AcquireSubmitLock() func() {
	s.submitMu.Lock()
	return s.submitMu.Unlock
}
