package payload

import (
	"github.com/jellydator/validation"
)

type BalanceRequest struct {
	Contract string
	Account  string
}

func (b BalanceRequest) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Contract, validation.Required, validation.Match(addressRegex)),
		validation.Field(&b.Account, validation.Required, validation.Match(addressRegex)),
	)
}
