package transactor_test

import (
	"math/big"

	"tokenforge/internal/transactor"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ParseOverrides", func() {
	var (
		fields map[string]any

		overrides transactor.Overrides
		err       error
	)

	BeforeEach(func() {
		fields = map[string]any{}
	})

	JustBeforeEach(func() {
		overrides, err = transactor.ParseOverrides(fields)
	})

	When("the map is empty", func() {
		It("should return zero overrides", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(overrides).To(Equal(transactor.Overrides{}))
		})
	})

	When("every accepted field is set", func() {
		BeforeEach(func() {
			fields = map[string]any{
				"from":                 "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
				"to":                   "0x1111111111111111111111111111111111111111",
				"nonce":                float64(5),
				"gas":                  float64(21000),
				"gasPrice":             "1000000000",
				"value":                float64(0),
				"data":                 "0xdeadbeef",
				"maxFeePerGas":         "2000000000",
				"maxPriorityFeePerGas": "100000000",
			}
		})

		It("should populate the overrides", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(overrides.To.Hex()).To(Equal("0x1111111111111111111111111111111111111111"))
			Expect(*overrides.Nonce).To(Equal(uint64(5)))
			Expect(*overrides.Gas).To(Equal(uint64(21000)))
			Expect(overrides.GasPrice).To(Equal(big.NewInt(1_000_000_000)))
			Expect(overrides.Value).To(Equal(big.NewInt(0)))
			Expect(overrides.Data).To(Equal(common.FromHex("0xdeadbeef")))
			Expect(overrides.GasFeeCap).To(Equal(big.NewInt(2_000_000_000)))
			Expect(overrides.GasTipCap).To(Equal(big.NewInt(100_000_000)))
		})
	})

	When("the from field is present", func() {
		BeforeEach(func() {
			fields = map[string]any{
				"from": "0x1111111111111111111111111111111111111111",
			}
		})

		It("should accept and ignore it", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(overrides).To(Equal(transactor.Overrides{}))
		})
	})

	When("unknown fields are present", func() {
		BeforeEach(func() {
			fields = map[string]any{
				"gass":     float64(21000),
				"chainId":  float64(1),
				"gasPrice": "1000000000",
			}
		})

		It("should list every offending key and the accepted set", func() {
			Expect(err).To(MatchError(transactor.ErrInvalidField))
			Expect(err.Error()).To(ContainSubstring("chainId, gass"))
			Expect(err.Error()).To(ContainSubstring(
				"options are: data, from, gas, gasPrice, maxFeePerGas, maxPriorityFeePerGas, nonce, to, value"))
		})
	})

	When("the to field is not an address", func() {
		BeforeEach(func() {
			fields = map[string]any{
				"to": "not-an-address",
			}
		})

		It("should return invalid field error", func() {
			Expect(err).To(MatchError(transactor.ErrInvalidField))
			Expect(err.Error()).To(ContainSubstring(`"to"`))
		})
	})

	When("the nonce is negative", func() {
		BeforeEach(func() {
			fields = map[string]any{
				"nonce": float64(-1),
			}
		})

		It("should return invalid field error", func() {
			Expect(err).To(MatchError(transactor.ErrInvalidField))
		})
	})

	When("a big integer field is not parseable", func() {
		BeforeEach(func() {
			fields = map[string]any{
				"value": "lots",
			}
		})

		It("should return invalid field error naming the field", func() {
			Expect(err).To(MatchError(transactor.ErrInvalidField))
			Expect(err.Error()).To(ContainSubstring(`"value"`))
		})
	})

	When("numeric fields arrive as strings", func() {
		BeforeEach(func() {
			fields = map[string]any{
				"nonce": "12",
				"gas":   "0x5208",
			}
		})

		It("should parse them", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(*overrides.Nonce).To(Equal(uint64(12)))
			Expect(*overrides.Gas).To(Equal(uint64(21000)))
		})
	})

	When("data is not a string", func() {
		BeforeEach(func() {
			fields = map[string]any{
				"data": float64(1),
			}
		})

		It("should return invalid field error", func() {
			Expect(err).To(MatchError(transactor.ErrInvalidField))
			Expect(err.Error()).To(ContainSubstring(`"data"`))
		})
	})
})
