package payload_test

import (
	"net/http/httptest"
	"strings"

	"tokenforge/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DecodeValidator", func() {
	var dv payload.DecodeValidator

	Describe("DecodeAndValidateJSONPayload", func() {
		var transferRequest payload.TransferRequest

		BeforeEach(func() {
			transferRequest = payload.TransferRequest{}
		})

		When("the payload is a valid transfer request", func() {
			It("should decode it", func() {
				body := strings.NewReader(`{
					"contract": "0x2222222222222222222222222222222222222222",
					"to": "0x1111111111111111111111111111111111111111",
					"amount": "1.5",
					"overrides": {"nonce": 7}
				}`)
				req := httptest.NewRequest("POST", "/api/tokens/transfer", body)

				err := dv.DecodeAndValidateJSONPayload(req, &transferRequest)
				Expect(err).NotTo(HaveOccurred())
				Expect(transferRequest.Amount).To(Equal("1.5"))
				Expect(transferRequest.Overrides).To(HaveKey("nonce"))
			})
		})

		When("the payload carries unknown fields", func() {
			It("should reject it", func() {
				body := strings.NewReader(`{"contract": "0x2222222222222222222222222222222222222222", "extra": true}`)
				req := httptest.NewRequest("POST", "/api/tokens/transfer", body)

				err := dv.DecodeAndValidateJSONPayload(req, &transferRequest)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("decoding json payload"))
			})
		})

		When("the payload fails validation", func() {
			It("should return the validation error", func() {
				body := strings.NewReader(`{
					"contract": "0x2222222222222222222222222222222222222222",
					"to": "not-an-address",
					"amount": "1.5"
				}`)
				req := httptest.NewRequest("POST", "/api/tokens/transfer", body)

				err := dv.DecodeAndValidateJSONPayload(req, &transferRequest)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("validating payload"))
			})
		})
	})
})

var _ = Describe("TransferRequest", func() {
	var request payload.TransferRequest

	BeforeEach(func() {
		request = payload.TransferRequest{
			Contract: "0x2222222222222222222222222222222222222222",
			To:       "0x1111111111111111111111111111111111111111",
			Amount:   "1.5",
		}
	})

	It("should accept a well-formed request", func() {
		Expect(request.Validate()).To(Succeed())
	})

	It("should reject a zero amount", func() {
		request.Amount = "0"
		Expect(request.Validate()).To(HaveOccurred())
	})

	It("should reject a negative amount", func() {
		request.Amount = "-1"
		Expect(request.Validate()).To(HaveOccurred())
	})

	It("should reject a non-numeric amount", func() {
		request.Amount = "lots"
		Expect(request.Validate()).To(HaveOccurred())
	})

	It("should reject a malformed contract address", func() {
		request.Contract = "0x123"
		Expect(request.Validate()).To(HaveOccurred())
	})

	It("should convert the amount to a decimal message", func() {
		msg := request.ToMessage()
		Expect(msg.Amount.String()).To(Equal("1.5"))
		Expect(msg.Contract).To(Equal(request.Contract))
	})
})

var _ = Describe("DeployRequest", func() {
	var request payload.DeployRequest

	BeforeEach(func() {
		request = payload.DeployRequest{
			Name:          "Forge Token",
			Symbol:        "FRG",
			Decimals:      18,
			InitialSupply: "1000000",
			Bytecode:      "0x60806040",
		}
	})

	It("should accept a well-formed request", func() {
		Expect(request.Validate()).To(Succeed())
	})

	It("should accept a zero initial supply", func() {
		request.InitialSupply = "0"
		Expect(request.Validate()).To(Succeed())
	})

	It("should reject a negative initial supply", func() {
		request.InitialSupply = "-1"
		Expect(request.Validate()).To(HaveOccurred())
	})

	It("should reject non-hex bytecode", func() {
		request.Bytecode = "zzzz"
		Expect(request.Validate()).To(HaveOccurred())
	})

	It("should reject an empty name", func() {
		request.Name = ""
		Expect(request.Validate()).To(HaveOccurred())
	})
})

var _ = Describe("BalanceRequest", func() {
	It("should require both addresses", func() {
		request := payload.BalanceRequest{
			Contract: "0x2222222222222222222222222222222222222222",
		}
		Expect(request.Validate()).To(HaveOccurred())

		request.Account = "0x1111111111111111111111111111111111111111"
		Expect(request.Validate()).To(Succeed())
	})
})
