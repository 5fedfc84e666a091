package chain_test

import (
	"tokenforge/internal/chain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Endpoint", func() {
	var (
		chainName   string
		networkName string
		apiKey      string

		endpoint chain.Endpoint
		err      error
	)

	BeforeEach(func() {
		chainName = "ethereum"
		networkName = "sepolia"
		apiKey = "test-api-key"
	})

	JustBeforeEach(func() {
		endpoint, err = chain.NewEndpoint(chainName, networkName, apiKey)
	})

	When("chain and network are supported", func() {
		It("should resolve the endpoint URL with the api key", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(endpoint.Chain()).To(Equal(chain.ChainEthereum))
			Expect(endpoint.Network()).To(Equal(chain.NetworkSepolia))
			Expect(endpoint.URL()).To(Equal("https://eth-sepolia.g.alchemy.com/v2/test-api-key"))
		})
	})

	When("names use mixed case", func() {
		BeforeEach(func() {
			chainName = "Ethereum"
			networkName = "Mainnet"
		})

		It("should normalize them", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(endpoint.Network()).To(Equal(chain.NetworkMainnet))
			Expect(endpoint.URL()).To(ContainSubstring("eth-mainnet"))
		})
	})

	When("chain is not supported", func() {
		BeforeEach(func() {
			chainName = "solana"
		})

		It("should return unsupported chain error", func() {
			Expect(err).To(MatchError(chain.ErrUnsupportedChain))
			Expect(err.Error()).To(ContainSubstring("solana"))
		})
	})

	When("network is not supported", func() {
		BeforeEach(func() {
			networkName = "goerli"
		})

		It("should return unsupported network error listing the options", func() {
			Expect(err).To(MatchError(chain.ErrUnsupportedNetwork))
			Expect(err.Error()).To(ContainSubstring("mainnet, sepolia"))
		})
	})
})
