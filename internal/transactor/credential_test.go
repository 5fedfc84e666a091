package transactor_test

import (
	"tokenforge/internal/transactor"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Credential", func() {
	var (
		hexKey string

		cred transactor.Credential
		err  error
	)

	BeforeEach(func() {
		hexKey = testPrivateKey
	})

	JustBeforeEach(func() {
		cred, err = transactor.NewCredential(hexKey)
	})

	When("the key is a bare hex string", func() {
		It("should derive the address", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(cred.Address()).To(Equal(common.HexToAddress(testAddress)))
		})
	})

	When("the key carries a 0x prefix", func() {
		BeforeEach(func() {
			hexKey = "0x" + testPrivateKey
		})

		It("should strip it and derive the same address", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(cred.Address()).To(Equal(common.HexToAddress(testAddress)))
		})
	})

	When("the key is not valid hex", func() {
		BeforeEach(func() {
			hexKey = "not-a-key"
		})

		It("should return invalid key error", func() {
			Expect(err).To(MatchError(transactor.ErrInvalidKey))
		})
	})
})
