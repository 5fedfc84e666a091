package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

var ErrConnectionFailed error = errors.New("unable to connect to network endpoint")

// Connector is a live session to a single network endpoint. Construction
// verifies connectivity; a connector never exists half-connected. All
// operations are synchronous, network-bound and unretried at this layer.
type Connector struct {
	client   NodeClient
	endpoint Endpoint
	chainID  *big.Int
}

// NewConnector verifies connectivity with a ChainID round trip and caches
// the result. A failed round trip is fatal to construction.
func NewConnector(ctx context.Context, client NodeClient, endpoint Endpoint) (*Connector, error) {
	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %s", ErrConnectionFailed, endpoint.Chain(), endpoint.Network(), err)
	}

	return &Connector{
		client:   client,
		endpoint: endpoint,
		chainID:  chainID,
	}, nil
}

// Dial connects to the endpoint's RPC URL and wraps the client in a
// connectivity-checked Connector.
func Dial(ctx context.Context, endpoint Endpoint) (*Connector, error) {
	client, err := ethclient.DialContext(ctx, endpoint.URL())
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s %s: %s", ErrConnectionFailed, endpoint.Chain(), endpoint.Network(), err)
	}

	return NewConnector(ctx, client, endpoint)
}

func (c *Connector) Endpoint() Endpoint {
	return c.endpoint
}

// ChainID returns the chain ID observed at construction.
func (c *Connector) ChainID() *big.Int {
	return new(big.Int).Set(c.chainID)
}

// CurrentNonce returns the account's transaction count at the latest block.
func (c *Connector) CurrentNonce(ctx context.Context, account common.Address) (uint64, error) {
	nonce, err := c.client.NonceAt(ctx, account, nil)
	if err != nil {
		return 0, fmt.Errorf("get transaction count for %s: %w", account.Hex(), err)
	}
	return nonce, nil
}

func (c *Connector) GasPrice(ctx context.Context) (*big.Int, error) {
	price, err := c.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("get gas price: %w", err)
	}
	return price, nil
}

func (c *Connector) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	gas, err := c.client.EstimateGas(ctx, call)
	if err != nil {
		return 0, fmt.Errorf("estimate gas: %w", err)
	}
	return gas, nil
}

// ReadContract executes a read-only call against the contract at the latest
// block and returns the raw ABI-encoded result.
func (c *Connector) ReadContract(ctx context.Context, contract common.Address, data []byte) ([]byte, error) {
	out, err := c.client.CallContract(ctx, ethereum.CallMsg{
		To:   &contract,
		Data: data,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("call contract %s: %w", contract.Hex(), err)
	}
	return out, nil
}

func (c *Connector) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	return c.client.SendTransaction(ctx, tx)
}

func (c *Connector) Receipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	return c.client.TransactionReceipt(ctx, txHash)
}
