package transactor

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var ErrInvalidKey error = errors.New("invalid private key")

// Credential is a signing key and its derived address. It is built once,
// injected at construction, and owned by a single Transactor. The key itself
// never leaves this package and must never be logged.
type Credential struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

func NewCredential(hexKey string) (Credential, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return Credential{}, fmt.Errorf("%w: %s", ErrInvalidKey, err)
	}

	return Credential{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

func (c Credential) Address() common.Address {
	return c.address
}
