package core

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TransferMessage struct {
	Contract  string
	To        string
	Amount    decimal.Decimal
	Overrides map[string]any
}

type DeployMessage struct {
	Name          string
	Symbol        string
	Decimals      uint8
	InitialSupply decimal.Decimal
	Bytecode      string
}

type TransferRecord struct {
	TransactionHash string `json:"transaction_hash"`
	ContractAddress string `json:"contract_address"`
	From            string `json:"from"`
	To              string `json:"to"`
	Amount          string `json:"amount"`
	Nonce           uint64 `json:"nonce"`
	Status          string `json:"status"`
}

type DeployRecord struct {
	TransactionHash string `json:"transaction_hash"`
	ContractAddress string `json:"contract_address"`
	Name            string `json:"name"`
	Symbol          string `json:"symbol"`
}

// EventBatch mirrors the provider webhook envelope. The logs stay raw so
// the batch is handed to the queue untouched.
type EventBatch struct {
	Event WebhookEvent `json:"event"`
}

type WebhookEvent struct {
	Network string    `json:"network"`
	Data    EventData `json:"data"`
}

type EventData struct {
	Block EventBlock `json:"block"`
}

type EventBlock struct {
	Logs []json.RawMessage `json:"logs"`
}
