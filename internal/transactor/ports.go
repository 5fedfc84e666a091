package transactor

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Chain . Chain
type Chain interface {
	ChainID() *big.Int
	CurrentNonce(ctx context.Context, account common.Address) (uint64, error)
	GasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	Receipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

//counterfeiter:generate -o fake -fake-name Clock . Clock
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}
