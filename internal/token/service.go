package token

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"tokenforge/internal/transactor"
)

var (
	ErrContractCall error = errors.New("contract call failed")
	ErrDeployFailed error = errors.New("contract deployment failed")
)

// TransferResult reports a broadcast token transfer.
type TransferResult struct {
	TxHash common.Hash
	From   common.Address
	Nonce  uint64
}

// DeployParams describes a token contract to deploy. Bytecode is the
// compiled creation code of the contract, supplied by the caller.
type DeployParams struct {
	Name          string
	Symbol        string
	Decimals      uint8
	InitialSupply decimal.Decimal
	Bytecode      []byte
}

// Service exposes ERC-20 operations on top of the transaction pipeline.
// Amounts cross its boundary in human units and are scaled by the token's
// own decimals before they touch the chain.
type Service struct {
	logs     *zap.SugaredLogger
	pipeline TxPipeline
	caller   ContractCaller
}

func NewService(logger *zap.SugaredLogger, pipeline TxPipeline, caller ContractCaller) *Service {
	return &Service{
		logs:     logger,
		pipeline: pipeline,
		caller:   caller,
	}
}

// BalanceOf returns the token balance of the account, scaled down by the
// token's decimals.
func (s *Service) BalanceOf(ctx context.Context, contract common.Address, account common.Address) (decimal.Decimal, error) {
	decimals, err := s.decimals(ctx, contract)
	if err != nil {
		return decimal.Zero, err
	}

	data, err := ERC20ABI.Pack("balanceOf", account)
	if err != nil {
		return decimal.Zero, fmt.Errorf("pack balanceOf: %w", err)
	}

	raw, err := s.caller.ReadContract(ctx, contract, data)
	if err != nil {
		s.logs.Errorw("balanceOf call failed", "error", err, "contract", contract.Hex(), "account", account.Hex())
		return decimal.Zero, fmt.Errorf("%w: %s", ErrContractCall, err)
	}

	values, err := ERC20ABI.Unpack("balanceOf", raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("unpack balanceOf: %w", err)
	}

	balance, ok := values[0].(*big.Int)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: unexpected balanceOf return type %T", ErrContractCall, values[0])
	}

	return decimal.NewFromBigInt(balance, 0).Shift(-int32(decimals)), nil
}

// Transfer moves amount tokens from the service wallet to the recipient.
// It scales the amount by the token's decimals, packs the transfer call and
// pushes the transaction through build, sign and broadcast. Overrides let
// the caller pin nonce, gas or fee fields.
func (s *Service) Transfer(ctx context.Context, contract common.Address, to common.Address, amount decimal.Decimal, ov transactor.Overrides) (TransferResult, error) {
	decimals, err := s.decimals(ctx, contract)
	if err != nil {
		return TransferResult{}, err
	}

	value := amount.Shift(int32(decimals)).BigInt()

	data, err := ERC20ABI.Pack("transfer", to, value)
	if err != nil {
		return TransferResult{}, fmt.Errorf("pack transfer: %w", err)
	}

	ov.To = &contract
	ov.Data = data

	unsigned, err := s.pipeline.Build(ctx, ov)
	if err != nil {
		return TransferResult{}, fmt.Errorf("build transfer: %w", err)
	}

	signed, err := s.pipeline.Sign(unsigned)
	if err != nil {
		return TransferResult{}, fmt.Errorf("sign transfer: %w", err)
	}

	txHash, err := s.pipeline.Broadcast(ctx, signed)
	if err != nil {
		return TransferResult{}, fmt.Errorf("broadcast transfer: %w", err)
	}

	s.logs.Infow("token transfer broadcast",
		"tx_hash", txHash.Hex(),
		"contract", contract.Hex(),
		"to", to.Hex(),
		"amount", amount.String())

	return TransferResult{
		TxHash: txHash,
		From:   s.pipeline.Sender(),
		Nonce:  unsigned.Nonce,
	}, nil
}

// Deploy creates a new token contract and waits for it to be mined,
// returning the deployed contract address.
func (s *Service) Deploy(ctx context.Context, params DeployParams, timeout time.Duration) (common.Address, common.Hash, error) {
	if len(params.Bytecode) == 0 {
		return common.Address{}, common.Hash{}, fmt.Errorf("%w: empty bytecode", ErrDeployFailed)
	}

	supply := params.InitialSupply.Shift(int32(params.Decimals)).BigInt()

	args, err := ERC20ABI.Constructor.Inputs.Pack(params.Name, params.Symbol, params.Decimals, supply)
	if err != nil {
		return common.Address{}, common.Hash{}, fmt.Errorf("pack constructor: %w", err)
	}

	unsigned, err := s.pipeline.Build(ctx, transactor.Overrides{
		Data: append(params.Bytecode, args...),
	})
	if err != nil {
		return common.Address{}, common.Hash{}, fmt.Errorf("build deployment: %w", err)
	}

	signed, err := s.pipeline.Sign(unsigned)
	if err != nil {
		return common.Address{}, common.Hash{}, fmt.Errorf("sign deployment: %w", err)
	}

	txHash, err := s.pipeline.Broadcast(ctx, signed)
	if err != nil {
		return common.Address{}, common.Hash{}, fmt.Errorf("broadcast deployment: %w", err)
	}

	s.logs.Infow("token deployment broadcast", "tx_hash", txHash.Hex(), "symbol", params.Symbol)

	receipt, err := s.pipeline.AwaitConfirmation(ctx, txHash, timeout)
	if err != nil {
		return common.Address{}, txHash, fmt.Errorf("await deployment: %w", err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return common.Address{}, txHash, fmt.Errorf("%w: transaction %s reverted", ErrDeployFailed, txHash.Hex())
	}

	s.logs.Infow("token deployed", "contract", receipt.ContractAddress.Hex(), "symbol", params.Symbol)
	return receipt.ContractAddress, txHash, nil
}

func (s *Service) decimals(ctx context.Context, contract common.Address) (uint8, error) {
	data, err := ERC20ABI.Pack("decimals")
	if err != nil {
		return 0, fmt.Errorf("pack decimals: %w", err)
	}

	raw, err := s.caller.ReadContract(ctx, contract, data)
	if err != nil {
		s.logs.Errorw("decimals call failed", "error", err, "contract", contract.Hex())
		return 0, fmt.Errorf("%w: %s", ErrContractCall, err)
	}

	values, err := ERC20ABI.Unpack("decimals", raw)
	if err != nil {
		return 0, fmt.Errorf("unpack decimals: %w", err)
	}

	decimals, ok := values[0].(uint8)
	if !ok {
		return 0, fmt.Errorf("%w: unexpected decimals return type %T", ErrContractCall, values[0])
	}

	return decimals, nil
}
