package contractCaller

import (
	"context"
	"math/big"
	"time"

	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/bindings/BudgetLedger"
	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/transactionSigner"
	"github.com/BSCS-4B-HACKATHON/try-outs-app/pkg/types"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ILedgerGateway is the capability boundary to the on-chain ledger contract.
// Submit* methods broadcast a signed write and return without waiting for it
// to be mined; Confirm blocks until the receipt arrives or the confirmation
// timeout elapses. Submission is a slow, fallible, non-idempotent operation:
// callers must never submit the same verified intent twice.
type ILedgerGateway interface {
	SubmitAddTransaction(ctx context.Context, senderName string, to common.Address, recipientName string, amount *big.Int, currency, purpose string, date int64) (*ethtypes.Transaction, error)
	SubmitSetApprovedSender(ctx context.Context, who common.Address, approved bool) (*ethtypes.Transaction, error)
	SubmitSetApprovedRecipient(ctx context.Context, who common.Address, approved bool) (*ethtypes.Transaction, error)
	SubmitTransferOwnership(ctx context.Context, newOwner common.Address) (*ethtypes.Transaction, error)

	// Confirm waits for tx to be mined. On timeout the receipt is nil; the
	// broadcast write itself is irrevocable and may still land later. A
	// reverted transaction returns its receipt together with an error.
	Confirm(ctx context.Context, tx *ethtypes.Transaction) (*ethtypes.Receipt, error)

	GetTransactionCount(ctx context.Context) (*big.Int, error)
	GetTransaction(ctx context.Context, index *big.Int) (*types.LedgerEntry, error)
	GetApprovedSenders(ctx context.Context) ([]common.Address, error)
	GetApprovedRecipients(ctx context.Context) ([]common.Address, error)

	GetFromAddress() common.Address
}

// ContractCaller implements ILedgerGateway against a deployed BudgetLedger
// contract.
type ContractCaller struct {
	ethclient      *ethclient.Client
	ledger         *BudgetLedger.BudgetLedger
	signer         transactionSigner.ITransactionSigner
	logger         *zap.Logger
	confirmTimeout time.Duration
}

func NewContractCaller(
	contractAddress common.Address,
	ethclient *ethclient.Client,
	signer transactionSigner.ITransactionSigner,
	confirmTimeout time.Duration,
	logger *zap.Logger,
) (*ContractCaller, error) {
	ledger, err := BudgetLedger.NewBudgetLedger(contractAddress, ethclient)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create ledger contract instance")
	}

	logger.Sugar().Infow("Ledger gateway initialized",
		"contractAddress", contractAddress.Hex(),
		"fromAddress", signer.GetFromAddress().Hex(),
	)

	return &ContractCaller{
		ethclient:      ethclient,
		ledger:         ledger,
		signer:         signer,
		logger:         logger,
		confirmTimeout: confirmTimeout,
	}, nil
}

// submit runs one write under the account submission lock. The lock covers
// nonce assignment through broadcast only; confirmation waits happen outside
// it so slow blocks never serialize unrelated relays.
func (cc *ContractCaller) submit(ctx context.Context, method string, transact func(opts *bind.TransactOpts) (*ethtypes.Transaction, error)) (*ethtypes.Transaction, error) {
	release := cc.signer.AcquireSubmitLock()
	defer release()

	opts, err := cc.signer.GetTransactOpts(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to prepare transact opts for %s", method)
	}

	tx, err := transact(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to submit %s", method)
	}

	cc.logger.Info("Submitted ledger write",
		zap.String("method", method),
		zap.String("txHash", tx.Hash().Hex()),
		zap.Uint64("nonce", tx.Nonce()),
	)

	return tx, nil
}

func (cc *ContractCaller) SubmitAddTransaction(ctx context.Context, senderName string, to common.Address, recipientName string, amount *big.Int, currency, purpose string, date int64) (*ethtypes.Transaction, error) {
	return cc.submit(ctx, "addTransaction", func(opts *bind.TransactOpts) (*ethtypes.Transaction, error) {
		return cc.ledger.AddTransaction(opts, senderName, to, recipientName, amount, currency, purpose, big.NewInt(date))
	})
}

func (cc *ContractCaller) SubmitSetApprovedSender(ctx context.Context, who common.Address, approved bool) (*ethtypes.Transaction, error) {
	return cc.submit(ctx, "setApprovedSender", func(opts *bind.TransactOpts) (*ethtypes.Transaction, error) {
		return cc.ledger.SetApprovedSender(opts, who, approved)
	})
}

func (cc *ContractCaller) SubmitSetApprovedRecipient(ctx context.Context, who common.Address, approved bool) (*ethtypes.Transaction, error) {
	return cc.submit(ctx, "setApprovedRecipient", func(opts *bind.TransactOpts) (*ethtypes.Transaction, error) {
		return cc.ledger.SetApprovedRecipient(opts, who, approved)
	})
}

func (cc *ContractCaller) SubmitTransferOwnership(ctx context.Context, newOwner common.Address) (*ethtypes.Transaction, error) {
	return cc.submit(ctx, "transferOwnership", func(opts *bind.TransactOpts) (*ethtypes.Transaction, error) {
		return cc.ledger.TransferOwnership(opts, newOwner)
	})
}

// Confirm blocks until tx is mined or the confirmation timeout elapses.
func (cc *ContractCaller) Confirm(ctx context.Context, tx *ethtypes.Transaction) (*ethtypes.Receipt, error) {
	waitCtx, cancel := context.WithTimeout(ctx, cc.confirmTimeout)
	defer cancel()

	receipt, err := bind.WaitMined(waitCtx, cc.ethclient, tx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to wait for transaction %s", tx.Hash().Hex())
	}

	if receipt.Status != ethtypes.ReceiptStatusSuccessful {
		cc.logger.Error("Ledger write reverted",
			zap.String("txHash", receipt.TxHash.Hex()),
			zap.Uint64("status", receipt.Status),
			zap.Uint64("gasUsed", receipt.GasUsed),
		)
		return receipt, errors.Errorf("transaction %s reverted with status %d", receipt.TxHash.Hex(), receipt.Status)
	}

	cc.logger.Info("Ledger write confirmed",
		zap.String("txHash", receipt.TxHash.Hex()),
		zap.Uint64("gasUsed", receipt.GasUsed),
		zap.Uint64("blockNumber", receipt.BlockNumber.Uint64()),
	)

	return receipt, nil
}

func (cc *ContractCaller) GetTransactionCount(ctx context.Context) (*big.Int, error) {
	count, err := cc.ledger.GetTransactionCount(&bind.CallOpts{Context: ctx})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction count")
	}
	return count, nil
}

func (cc *ContractCaller) GetTransaction(ctx context.Context, index *big.Int) (*types.LedgerEntry, error) {
	stored, err := cc.ledger.GetTransaction(&bind.CallOpts{Context: ctx}, index)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get transaction at index %s", index.String())
	}

	entry := &types.LedgerEntry{
		SenderName:    stored.SenderName,
		To:            stored.To.Hex(),
		RecipientName: stored.RecipientName,
		Currency:      stored.Currency,
		Purpose:       stored.Purpose,
	}
	if stored.Amount != nil {
		entry.Amount = stored.Amount.String()
	}
	if stored.Date != nil {
		entry.Date = stored.Date.Int64()
	}
	return entry, nil
}

func (cc *ContractCaller) GetApprovedSenders(ctx context.Context) ([]common.Address, error) {
	senders, err := cc.ledger.GetApprovedSenders(&bind.CallOpts{Context: ctx})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get approved senders")
	}
	return senders, nil
}

func (cc *ContractCaller) GetApprovedRecipients(ctx context.Context) ([]common.Address, error) {
	recipients, err := cc.ledger.GetApprovedRecipients(&bind.CallOpts{Context: ctx})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get approved recipients")
	}
	return recipients, nil
}

func (cc *ContractCaller) GetFromAddress() common.Address {
	return cc.signer.GetFromAddress()
}
