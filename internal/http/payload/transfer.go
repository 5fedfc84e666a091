package payload

import (
	"fmt"
	"regexp"

	"github.com/jellydator/validation"
	"github.com/shopspring/decimal"

	"tokenforge/internal/core"
)

var addressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

type TransferRequest struct {
	Contract  string         `json:"contract"`
	To        string         `json:"to"`
	Amount    string         `json:"amount"`
	Overrides map[string]any `json:"overrides"`
}

func (t TransferRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Contract, validation.Required, validation.Match(addressRegex)),
		validation.Field(&t.To, validation.Required, validation.Match(addressRegex)),
		validation.Field(&t.Amount, validation.Required, validation.By(validDecimal)),
	)
}

func (t TransferRequest) ToMessage() core.TransferMessage {
	amount, _ := decimal.NewFromString(t.Amount)
	return core.TransferMessage{
		Contract:  t.Contract,
		To:        t.To,
		Amount:    amount,
		Overrides: t.Overrides,
	}
}

func validDecimal(value any) error {
	raw, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("must be a decimal number")
	}
	if amount.Sign() <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}
