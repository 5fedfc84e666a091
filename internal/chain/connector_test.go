package chain_test

import (
	"context"
	"errors"
	"math/big"

	"tokenforge/internal/chain"
	"tokenforge/internal/chain/fake"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Connector", func() {
	var (
		fakeClient *fake.NodeClient
		endpoint   chain.Endpoint
		ctx        context.Context

		connector *chain.Connector
		err       error

		fakeErr error
	)

	BeforeEach(func() {
		fakeClient = new(fake.NodeClient)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		endpoint, err = chain.NewEndpoint("ethereum", "sepolia", "key")
		Expect(err).NotTo(HaveOccurred())

		fakeClient.ChainIDReturns(big.NewInt(11155111), nil)
	})

	JustBeforeEach(func() {
		connector, err = chain.NewConnector(ctx, fakeClient, endpoint)
	})

	When("the node responds to the chain ID round trip", func() {
		It("should cache the chain ID", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(connector.ChainID()).To(Equal(big.NewInt(11155111)))
			Expect(connector.Endpoint()).To(Equal(endpoint))
			Expect(fakeClient.ChainIDCallCount()).To(Equal(1))
		})

		It("should return a copy of the chain ID", func() {
			id := connector.ChainID()
			id.SetInt64(1)
			Expect(connector.ChainID()).To(Equal(big.NewInt(11155111)))
		})
	})

	When("the chain ID round trip fails", func() {
		BeforeEach(func() {
			fakeClient.ChainIDReturns(nil, fakeErr)
		})

		It("should fail construction", func() {
			Expect(err).To(MatchError(chain.ErrConnectionFailed))
			Expect(connector).To(BeNil())
		})
	})

	Describe("CurrentNonce", func() {
		var (
			account common.Address
			nonce   uint64
		)

		BeforeEach(func() {
			account = common.HexToAddress("0x1111111111111111111111111111111111111111")
		})

		JustBeforeEach(func() {
			nonce, err = connector.CurrentNonce(ctx, account)
		})

		When("the node returns a transaction count", func() {
			BeforeEach(func() {
				fakeClient.NonceAtReturns(7, nil)
			})

			It("should return it for the latest block", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(nonce).To(Equal(uint64(7)))

				_, argAccount, argBlock := fakeClient.NonceAtArgsForCall(0)
				Expect(argAccount).To(Equal(account))
				Expect(argBlock).To(BeNil())
			})
		})

		When("the node call fails", func() {
			BeforeEach(func() {
				fakeClient.NonceAtReturns(0, fakeErr)
			})

			It("should return a wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err.Error()).To(ContainSubstring(account.Hex()))
			})
		})
	})

	Describe("GasPrice", func() {
		When("the node suggests a price", func() {
			BeforeEach(func() {
				fakeClient.SuggestGasPriceReturns(big.NewInt(42_000_000_000), nil)
			})

			It("should return it", func() {
				price, priceErr := connector.GasPrice(ctx)
				Expect(priceErr).NotTo(HaveOccurred())
				Expect(price).To(Equal(big.NewInt(42_000_000_000)))
			})
		})

		When("the node call fails", func() {
			BeforeEach(func() {
				fakeClient.SuggestGasPriceReturns(nil, fakeErr)
			})

			It("should return an error", func() {
				_, priceErr := connector.GasPrice(ctx)
				Expect(priceErr).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ReadContract", func() {
		var (
			contract common.Address
			data     []byte
			out      []byte
		)

		BeforeEach(func() {
			contract = common.HexToAddress("0x2222222222222222222222222222222222222222")
			data = []byte{0x70, 0xa0, 0x82, 0x31}
		})

		JustBeforeEach(func() {
			out, err = connector.ReadContract(ctx, contract, data)
		})

		When("the call succeeds", func() {
			BeforeEach(func() {
				fakeClient.CallContractReturns([]byte{0x01}, nil)
			})

			It("should call the contract at the latest block", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(out).To(Equal([]byte{0x01}))

				_, argMsg, argBlock := fakeClient.CallContractArgsForCall(0)
				Expect(*argMsg.To).To(Equal(contract))
				Expect(argMsg.Data).To(Equal(data))
				Expect(argBlock).To(BeNil())
			})
		})

		When("the call fails", func() {
			BeforeEach(func() {
				fakeClient.CallContractReturns(nil, fakeErr)
			})

			It("should return a wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err.Error()).To(ContainSubstring(contract.Hex()))
			})
		})
	})

	Describe("Receipt", func() {
		var txHash common.Hash

		BeforeEach(func() {
			txHash = common.HexToHash("0xabcd")
		})

		When("the transaction is mined", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturns(&types.Receipt{
					Status: types.ReceiptStatusSuccessful,
				}, nil)
			})

			It("should return the receipt", func() {
				receipt, rcptErr := connector.Receipt(ctx, txHash)
				Expect(rcptErr).NotTo(HaveOccurred())
				Expect(receipt.Status).To(Equal(types.ReceiptStatusSuccessful))

				_, argHash := fakeClient.TransactionReceiptArgsForCall(0)
				Expect(argHash).To(Equal(txHash))
			})
		})
	})
})
