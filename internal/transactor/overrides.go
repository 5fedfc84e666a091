package transactor

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var ErrInvalidField error = errors.New("invalid transaction field")

// Overrides carries the caller-supplied transaction fields. Every field is
// optional; Build fills in whatever is missing from live chain state.
// Caller-supplied values are trusted verbatim.
type Overrides struct {
	To        *common.Address
	Nonce     *uint64
	Gas       *uint64
	GasPrice  *big.Int
	Value     *big.Int
	Data      []byte
	GasFeeCap *big.Int
	GasTipCap *big.Int
}

// field names accepted at the JSON/CLI boundary, matching the wire names
// used by Ethereum JSON-RPC
var acceptableFields = map[string]struct{}{
	"from":                 {},
	"to":                   {},
	"gas":                  {},
	"gasPrice":             {},
	"nonce":                {},
	"data":                 {},
	"value":                {},
	"maxFeePerGas":         {},
	"maxPriorityFeePerGas": {},
}

// ParseOverrides converts an open field map, as received from JSON or CLI
// flags, into Overrides. Keys outside the accepted set fail with
// ErrInvalidField listing every offending key, so the caller sees the full
// mismatch at once. The "from" key is accepted but ignored: the sender is
// always the credential held by the Transactor.
func ParseOverrides(fields map[string]any) (Overrides, error) {
	var invalid []string
	for key := range fields {
		if _, ok := acceptableFields[key]; !ok {
			invalid = append(invalid, key)
		}
	}
	if len(invalid) > 0 {
		sort.Strings(invalid)
		return Overrides{}, fmt.Errorf("%w: %s, options are: %s", ErrInvalidField, strings.Join(invalid, ", "), fieldOptions())
	}

	var ov Overrides
	var err error

	if raw, ok := fields["to"]; ok {
		addr, convErr := parseAddress(raw)
		if convErr != nil {
			return Overrides{}, fmt.Errorf("field %q: %w", "to", convErr)
		}
		ov.To = &addr
	}

	if raw, ok := fields["nonce"]; ok {
		nonce, convErr := parseUint64(raw)
		if convErr != nil {
			return Overrides{}, fmt.Errorf("field %q: %w", "nonce", convErr)
		}
		ov.Nonce = &nonce
	}

	if raw, ok := fields["gas"]; ok {
		gas, convErr := parseUint64(raw)
		if convErr != nil {
			return Overrides{}, fmt.Errorf("field %q: %w", "gas", convErr)
		}
		ov.Gas = &gas
	}

	if ov.GasPrice, err = parseOptionalBig(fields, "gasPrice"); err != nil {
		return Overrides{}, err
	}
	if ov.Value, err = parseOptionalBig(fields, "value"); err != nil {
		return Overrides{}, err
	}
	if ov.GasFeeCap, err = parseOptionalBig(fields, "maxFeePerGas"); err != nil {
		return Overrides{}, err
	}
	if ov.GasTipCap, err = parseOptionalBig(fields, "maxPriorityFeePerGas"); err != nil {
		return Overrides{}, err
	}

	if raw, ok := fields["data"]; ok {
		str, isStr := raw.(string)
		if !isStr {
			return Overrides{}, fmt.Errorf("field %q: %w: expected hex string, got %T", "data", ErrInvalidField, raw)
		}
		ov.Data = common.FromHex(str)
	}

	return ov, nil
}

func parseAddress(raw any) (common.Address, error) {
	str, ok := raw.(string)
	if !ok || !common.IsHexAddress(str) {
		return common.Address{}, fmt.Errorf("%w: expected hex address, got %v", ErrInvalidField, raw)
	}
	return common.HexToAddress(str), nil
}

func parseUint64(raw any) (uint64, error) {
	switch v := raw.(type) {
	case float64:
		if v < 0 {
			return 0, fmt.Errorf("%w: negative value %v", ErrInvalidField, v)
		}
		return uint64(v), nil
	case int:
		if v < 0 {
			return 0, fmt.Errorf("%w: negative value %v", ErrInvalidField, v)
		}
		return uint64(v), nil
	case uint64:
		return v, nil
	case string:
		b, ok := new(big.Int).SetString(v, 0)
		if !ok || b.Sign() < 0 || !b.IsUint64() {
			return 0, fmt.Errorf("%w: cannot parse %q as unsigned integer", ErrInvalidField, v)
		}
		return b.Uint64(), nil
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidField, raw)
	}
}

func parseBig(raw any) (*big.Int, error) {
	switch v := raw.(type) {
	case float64:
		b, _ := big.NewFloat(v).Int(nil)
		return b, nil
	case int:
		return big.NewInt(int64(v)), nil
	case *big.Int:
		return v, nil
	case string:
		b, ok := new(big.Int).SetString(v, 0)
		if !ok {
			return nil, fmt.Errorf("%w: cannot parse %q as integer", ErrInvalidField, v)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidField, raw)
	}
}

func parseOptionalBig(fields map[string]any, key string) (*big.Int, error) {
	raw, ok := fields[key]
	if !ok {
		return nil, nil
	}

	val, err := parseBig(raw)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", key, err)
	}
	return val, nil
}

func fieldOptions() string {
	names := make([]string, 0, len(acceptableFields))
	for name := range acceptableFields {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
