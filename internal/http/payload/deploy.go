package payload

import (
	"fmt"
	"regexp"

	"github.com/jellydator/validation"
	"github.com/shopspring/decimal"

	"tokenforge/internal/core"
)

var bytecodeRegex = regexp.MustCompile(`^(0x)?[0-9a-fA-F]+$`)

type DeployRequest struct {
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	Decimals      uint8  `json:"decimals"`
	InitialSupply string `json:"initial_supply"`
	Bytecode      string `json:"bytecode"`
}

func (d DeployRequest) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&d.Symbol, validation.Required, validation.Length(1, 32)),
		validation.Field(&d.InitialSupply, validation.Required, validation.By(validSupply)),
		validation.Field(&d.Bytecode, validation.Required, validation.Match(bytecodeRegex)),
	)
}

func (d DeployRequest) ToMessage() core.DeployMessage {
	supply, _ := decimal.NewFromString(d.InitialSupply)
	return core.DeployMessage{
		Name:          d.Name,
		Symbol:        d.Symbol,
		Decimals:      d.Decimals,
		InitialSupply: supply,
		Bytecode:      d.Bytecode,
	}
}

func validSupply(value any) error {
	raw, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}
	supply, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("must be a decimal number")
	}
	if supply.Sign() < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}
