package token

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"tokenforge/internal/transactor"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TxPipeline . TxPipeline
type TxPipeline interface {
	Sender() common.Address
	Build(ctx context.Context, ov transactor.Overrides) (transactor.UnsignedTx, error)
	Sign(tx transactor.UnsignedTx) (*types.Transaction, error)
	Broadcast(ctx context.Context, tx *types.Transaction) (common.Hash, error)
	AwaitConfirmation(ctx context.Context, txHash common.Hash, timeout time.Duration) (*types.Receipt, error)
}

//counterfeiter:generate -o fake -fake-name ContractCaller . ContractCaller
type ContractCaller interface {
	ReadContract(ctx context.Context, contract common.Address, data []byte) ([]byte, error)
}
