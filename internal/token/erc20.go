package token

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// erc20JSON covers the slice of the ERC-20 interface the service touches,
// plus the constructor of the deployable token contract.
const erc20JSON = `[
	{
		"type": "constructor",
		"inputs": [
			{"name": "name_", "type": "string"},
			{"name": "symbol_", "type": "string"},
			{"name": "decimals_", "type": "uint8"},
			{"name": "initialSupply_", "type": "uint256"}
		]
	},
	{
		"type": "function",
		"name": "balanceOf",
		"stateMutability": "view",
		"inputs": [{"name": "account", "type": "address"}],
		"outputs": [{"name": "", "type": "uint256"}]
	},
	{
		"type": "function",
		"name": "decimals",
		"stateMutability": "view",
		"inputs": [],
		"outputs": [{"name": "", "type": "uint8"}]
	},
	{
		"type": "function",
		"name": "transfer",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "to", "type": "address"},
			{"name": "value", "type": "uint256"}
		],
		"outputs": [{"name": "", "type": "bool"}]
	}
]`

// ERC20ABI is the parsed ABI shared by the service and its tests.
var ERC20ABI = mustParseABI(erc20JSON)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(err)
	}
	return parsed
}
