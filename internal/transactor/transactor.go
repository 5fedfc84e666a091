package transactor

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

var (
	ErrSigning             error = errors.New("transaction signing failed")
	ErrBroadcastRejected   error = errors.New("transaction rejected by node")
	ErrConfirmationTimeout error = errors.New("transaction confirmation timed out")
)

const defaultPollInterval = 2 * time.Second

// UnsignedTx is a fully populated transaction skeleton ready for signing.
type UnsignedTx struct {
	From      common.Address
	To        *common.Address
	Nonce     uint64
	Gas       uint64
	GasPrice  *big.Int
	Value     *big.Int
	Data      []byte
	GasFeeCap *big.Int
	GasTipCap *big.Int
}

// Transactor drives a transaction through its lifecycle: build a skeleton
// from overrides and live chain state, sign it with the held credential,
// broadcast it and poll for the receipt.
type Transactor struct {
	logs         *zap.SugaredLogger
	chain        Chain
	cred         Credential
	clock        Clock
	pollInterval time.Duration
}

type Option func(*Transactor)

// WithClock swaps the system clock, used by tests to drive the
// confirmation poll loop deterministically.
func WithClock(clock Clock) Option {
	return func(t *Transactor) {
		t.clock = clock
	}
}

// WithPollInterval sets how often AwaitConfirmation asks the node for a
// receipt.
func WithPollInterval(interval time.Duration) Option {
	return func(t *Transactor) {
		t.pollInterval = interval
	}
}

func New(logger *zap.SugaredLogger, chain Chain, cred Credential, opts ...Option) *Transactor {
	t := &Transactor{
		logs:         logger,
		chain:        chain,
		cred:         cred,
		clock:        NewClock(),
		pollInterval: defaultPollInterval,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Sender returns the address the transactor signs and sends from.
func (t *Transactor) Sender() common.Address {
	return t.cred.Address()
}

// Build assembles an unsigned transaction from the overrides, filling every
// missing field from chain state. Gas is estimated against the partial
// skeleton, before any fee field is applied, so an explicit gas price never
// skews the estimate.
func (t *Transactor) Build(ctx context.Context, ov Overrides) (UnsignedTx, error) {
	tx := UnsignedTx{
		From:      t.cred.Address(),
		To:        ov.To,
		Value:     ov.Value,
		Data:      ov.Data,
		GasFeeCap: ov.GasFeeCap,
		GasTipCap: ov.GasTipCap,
	}

	if ov.Nonce != nil {
		tx.Nonce = *ov.Nonce
	} else {
		nonce, err := t.chain.CurrentNonce(ctx, tx.From)
		if err != nil {
			t.logs.Errorw("failed to fetch account nonce", "error", err, "account", tx.From.Hex())
			return UnsignedTx{}, fmt.Errorf("fetch nonce: %w", err)
		}
		tx.Nonce = nonce
	}

	if ov.Gas != nil {
		tx.Gas = *ov.Gas
	} else {
		gas, err := t.chain.EstimateGas(ctx, ethereum.CallMsg{
			From: tx.From,
			To:   tx.To,
			Data: tx.Data,
		})
		if err != nil {
			t.logs.Errorw("failed to estimate gas", "error", err)
			return UnsignedTx{}, fmt.Errorf("estimate gas: %w", err)
		}
		tx.Gas = gas
	}

	if ov.GasPrice != nil {
		tx.GasPrice = ov.GasPrice
	} else if tx.GasFeeCap == nil && tx.GasTipCap == nil {
		price, err := t.chain.GasPrice(ctx)
		if err != nil {
			t.logs.Errorw("failed to fetch gas price", "error", err)
			return UnsignedTx{}, fmt.Errorf("fetch gas price: %w", err)
		}
		tx.GasPrice = price
	}

	return tx, nil
}

// Sign produces a signed transaction. A transaction carrying EIP-1559 fee
// caps is signed as a dynamic fee transaction, anything else as a legacy
// one.
func (t *Transactor) Sign(tx UnsignedTx) (*types.Transaction, error) {
	var unsigned *types.Transaction

	if tx.GasFeeCap != nil || tx.GasTipCap != nil {
		unsigned = types.NewTx(&types.DynamicFeeTx{
			ChainID:   t.chain.ChainID(),
			Nonce:     tx.Nonce,
			GasTipCap: tx.GasTipCap,
			GasFeeCap: tx.GasFeeCap,
			Gas:       tx.Gas,
			To:        tx.To,
			Value:     tx.Value,
			Data:      tx.Data,
		})
	} else {
		unsigned = types.NewTx(&types.LegacyTx{
			Nonce:    tx.Nonce,
			GasPrice: tx.GasPrice,
			Gas:      tx.Gas,
			To:       tx.To,
			Value:    tx.Value,
			Data:     tx.Data,
		})
	}

	signer := types.LatestSignerForChainID(t.chain.ChainID())
	signed, err := types.SignTx(unsigned, signer, t.cred.key)
	if err != nil {
		t.logs.Errorw("failed to sign transaction", "error", err, "nonce", tx.Nonce)
		return nil, fmt.Errorf("%w: %s", ErrSigning, err)
	}

	return signed, nil
}

// Broadcast submits the signed transaction to the node and returns its
// hash.
func (t *Transactor) Broadcast(ctx context.Context, tx *types.Transaction) (common.Hash, error) {
	if err := t.chain.SendTransaction(ctx, tx); err != nil {
		t.logs.Errorw("node rejected transaction", "error", err, "tx_hash", tx.Hash().Hex())
		return common.Hash{}, fmt.Errorf("%w: %s", ErrBroadcastRejected, err)
	}

	t.logs.Infow("transaction broadcast", "tx_hash", tx.Hash().Hex(), "nonce", tx.Nonce())
	return tx.Hash(), nil
}

// AwaitConfirmation polls the node until the transaction is mined, the
// timeout elapses or the context is cancelled. A missing receipt is not an
// error, it only means the transaction is still pending.
func (t *Transactor) AwaitConfirmation(ctx context.Context, txHash common.Hash, timeout time.Duration) (*types.Receipt, error) {
	deadline := t.clock.Now().Add(timeout)

	for {
		receipt, err := t.chain.Receipt(ctx, txHash)
		if err == nil {
			t.logs.Infow("transaction confirmed", "tx_hash", txHash.Hex(), "block", receipt.BlockNumber, "status", receipt.Status)
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			t.logs.Errorw("failed to fetch transaction receipt", "error", err, "tx_hash", txHash.Hex())
			return nil, fmt.Errorf("fetch receipt: %w", err)
		}

		if t.clock.Now().After(deadline) {
			return nil, fmt.Errorf("%w: %s", ErrConfirmationTimeout, txHash.Hex())
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.clock.After(t.pollInterval):
		}
	}
}
