package chain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

type Chain string

type Network string

const (
	ChainEthereum Chain = "ethereum"

	NetworkMainnet Network = "mainnet"
	NetworkSepolia Network = "sepolia"
)

var ErrUnsupportedChain error = errors.New("unsupported chain")
var ErrUnsupportedNetwork error = errors.New("unsupported network")

var networkURLs = map[Network]string{
	NetworkMainnet: "https://eth-mainnet.alchemyapi.io/v2/%s",
	NetworkSepolia: "https://eth-sepolia.g.alchemy.com/v2/%s",
}

// Endpoint identifies a (chain, network) pair and resolves to exactly one
// RPC URL. Construction is the only place chain and network values are
// checked; anything outside the allow-list is a configuration error.
type Endpoint struct {
	chain   Chain
	network Network
	url     string
}

func NewEndpoint(chainName, networkName, apiKey string) (Endpoint, error) {
	ch := Chain(strings.ToLower(chainName))
	nw := Network(strings.ToLower(networkName))

	if ch != ChainEthereum {
		return Endpoint{}, fmt.Errorf("%w: %q, only %q is supported", ErrUnsupportedChain, chainName, ChainEthereum)
	}

	urlTemplate, ok := networkURLs[nw]
	if !ok {
		return Endpoint{}, fmt.Errorf("%w: %q, supported networks are: %s", ErrUnsupportedNetwork, networkName, supportedNetworks())
	}

	return Endpoint{
		chain:   ch,
		network: nw,
		url:     fmt.Sprintf(urlTemplate, apiKey),
	}, nil
}

func (e Endpoint) Chain() Chain {
	return e.chain
}

func (e Endpoint) Network() Network {
	return e.network
}

// URL returns the resolved RPC URL, API key included. Callers must not log it.
func (e Endpoint) URL() string {
	return e.url
}

func supportedNetworks() string {
	names := make([]string, 0, len(networkURLs))
	for nw := range networkURLs {
		names = append(names, string(nw))
	}

	// map order is random, keep the message stable
	sort.Strings(names)
	return strings.Join(names, ", ")
}
