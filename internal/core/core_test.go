package core_test

import (
	"context"
	"encoding/json"
	"errors"

	"tokenforge/internal/core"
	"tokenforge/internal/core/fake"
	"tokenforge/internal/repository"
	"tokenforge/internal/token"
	"tokenforge/internal/transactor"
	tokenIssuer "tokenforge/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var _ = Describe("Forge", func() {
	var (
		fakeRepo      *fake.Repository
		fakeJWT       *fake.JWTIssuer
		fakeTokens    *fake.TokenService
		fakeConfirmer *fake.Confirmer
		fakeEnqueuer  *fake.Enqueuer
		fakeLogger    *zap.SugaredLogger
		ctx           context.Context

		forge *core.Forge

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		fakeTokens = new(fake.TokenService)
		fakeConfirmer = new(fake.Confirmer)
		fakeEnqueuer = new(fake.Enqueuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		forge = core.NewForge(fakeLogger, fakeRepo, fakeJWT, fakeTokens, fakeConfirmer, fakeEnqueuer, "sepolia")

		fakeErr = errors.New("fake error")
	})

	Describe("Authenticate", func() {
		var (
			authMsg        core.AuthMessage
			signed         string
			err            error
			userId         string
			hashedPassword string
			genToken       *jwt.Token
		)

		BeforeEach(func() {
			userId = uuid.New().String()
			hashedPassword = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky" // bcrypt hash of "testpass"
			genToken = jwt.New(jwt.SigningMethodHS512)

			authMsg = core.AuthMessage{
				Username: "testuser",
				Password: "testpass",
			}
		})

		JustBeforeEach(func() {
			signed, err = forge.Authenticate(ctx, authMsg)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           userId,
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)

				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("signed.token", nil)
			})

			It("should return a signed token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(signed).To(Equal("signed.token"))

				Expect(fakeRepo.GetUserByUsernameCallCount()).To(Equal(1))
				_, username := fakeRepo.GetUserByUsernameArgsForCall(0)
				Expect(username).To(Equal(authMsg.Username))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				argGen := fakeJWT.GenerateArgsForCall(0)
				Expect(argGen).To(Equal(tokenIssuer.TokenInfo{
					UserName:   authMsg.Username,
					Subject:    userId,
					Expiration: 24,
				}))

				Expect(fakeJWT.SignCallCount()).To(Equal(1))
				argSign := fakeJWT.SignArgsForCall(0)
				Expect(argSign).To(Equal(genToken))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				authMsg.Password = "wrongpass"
			})

			It("should return incorrect password error", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
			})
		})

		When("token signing fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           userId,
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return signing error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Balance", func() {
		var (
			contract string
			account  string
			balance  decimal.Decimal
			err      error
		)

		BeforeEach(func() {
			contract = "0x2222222222222222222222222222222222222222"
			account = "0x1111111111111111111111111111111111111111"
		})

		JustBeforeEach(func() {
			balance, err = forge.Balance(ctx, contract, account)
		})

		When("both addresses are valid", func() {
			BeforeEach(func() {
				fakeTokens.BalanceOfReturns(decimal.RequireFromString("1.5"), nil)
			})

			It("should return the balance", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(balance.String()).To(Equal("1.5"))

				_, argContract, argAccount := fakeTokens.BalanceOfArgsForCall(0)
				Expect(argContract).To(Equal(common.HexToAddress(contract)))
				Expect(argAccount).To(Equal(common.HexToAddress(account)))
			})
		})

		When("the contract address is invalid", func() {
			BeforeEach(func() {
				contract = "not-an-address"
			})

			It("should return invalid address error", func() {
				Expect(err).To(MatchError(core.ErrInvalidAddress))
				Expect(fakeTokens.BalanceOfCallCount()).To(Equal(0))
			})
		})

		When("the account address is invalid", func() {
			BeforeEach(func() {
				account = "0x123"
			})

			It("should return invalid address error", func() {
				Expect(err).To(MatchError(core.ErrInvalidAddress))
			})
		})
	})

	Describe("Transfer", func() {
		var (
			msg    core.TransferMessage
			record core.TransferRecord
			err    error

			txHash common.Hash
			sender common.Address
		)

		BeforeEach(func() {
			txHash = common.HexToHash("0xabcd")
			sender = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

			msg = core.TransferMessage{
				Contract: "0x2222222222222222222222222222222222222222",
				To:       "0x1111111111111111111111111111111111111111",
				Amount:   decimal.RequireFromString("1.5"),
			}

			fakeTokens.TransferReturns(token.TransferResult{
				TxHash: txHash,
				From:   sender,
				Nonce:  7,
			}, nil)
			fakeConfirmer.AwaitConfirmationReturns(&types.Receipt{
				Status: types.ReceiptStatusSuccessful,
			}, nil)
		})

		JustBeforeEach(func() {
			record, err = forge.Transfer(ctx, msg)
		})

		When("the transfer broadcasts", func() {
			It("should record it as pending", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.TransactionHash).To(Equal(txHash.Hex()))
				Expect(record.From).To(Equal(sender.Hex()))
				Expect(record.Nonce).To(Equal(uint64(7)))
				Expect(record.Status).To(Equal(repository.StatusPending))

				Expect(fakeRepo.SaveTransferCallCount()).To(Equal(1))
				_, saved := fakeRepo.SaveTransferArgsForCall(0)
				Expect(saved.TransactionHash).To(Equal(txHash.Hex()))
				Expect(saved.Amount).To(Equal("1.5"))
				Expect(saved.Status).To(Equal(repository.StatusPending))
			})

			It("should settle the transfer in the background", func() {
				Eventually(fakeRepo.UpdateTransferStatusCallCount).Should(Equal(1))
				_, argHash, argStatus := fakeRepo.UpdateTransferStatusArgsForCall(0)
				Expect(argHash).To(Equal(txHash.Hex()))
				Expect(argStatus).To(Equal(repository.StatusConfirmed))
			})
		})

		When("the mined transaction reverted", func() {
			BeforeEach(func() {
				fakeConfirmer.AwaitConfirmationReturns(&types.Receipt{
					Status: types.ReceiptStatusFailed,
				}, nil)
			})

			It("should mark the transfer failed", func() {
				Expect(err).NotTo(HaveOccurred())
				Eventually(fakeRepo.UpdateTransferStatusCallCount).Should(Equal(1))
				_, _, argStatus := fakeRepo.UpdateTransferStatusArgsForCall(0)
				Expect(argStatus).To(Equal(repository.StatusFailed))
			})
		})

		When("the confirmation times out", func() {
			BeforeEach(func() {
				fakeConfirmer.AwaitConfirmationReturns(nil, transactor.ErrConfirmationTimeout)
			})

			It("should leave the transfer pending", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Status).To(Equal(repository.StatusPending))
				Eventually(fakeConfirmer.AwaitConfirmationCallCount).Should(Equal(1))
				Consistently(fakeRepo.UpdateTransferStatusCallCount).Should(Equal(0))
			})
		})

		When("the confirmation fails on a node error", func() {
			BeforeEach(func() {
				fakeConfirmer.AwaitConfirmationReturns(nil, fakeErr)
			})

			It("should mark the transfer failed", func() {
				Expect(err).NotTo(HaveOccurred())
				Eventually(fakeRepo.UpdateTransferStatusCallCount).Should(Equal(1))
				_, _, argStatus := fakeRepo.UpdateTransferStatusArgsForCall(0)
				Expect(argStatus).To(Equal(repository.StatusFailed))
			})
		})

		When("the contract address is invalid", func() {
			BeforeEach(func() {
				msg.Contract = "nope"
			})

			It("should return invalid address error", func() {
				Expect(err).To(MatchError(core.ErrInvalidAddress))
				Expect(fakeTokens.TransferCallCount()).To(Equal(0))
			})
		})

		When("the overrides carry unknown fields", func() {
			BeforeEach(func() {
				msg.Overrides = map[string]any{"gass": float64(21000)}
			})

			It("should return invalid field error", func() {
				Expect(err).To(MatchError(transactor.ErrInvalidField))
				Expect(fakeTokens.TransferCallCount()).To(Equal(0))
			})
		})

		When("the overrides pin the nonce", func() {
			BeforeEach(func() {
				msg.Overrides = map[string]any{"nonce": float64(99)}
			})

			It("should pass the parsed overrides through", func() {
				Expect(err).NotTo(HaveOccurred())
				_, _, _, _, argOv := fakeTokens.TransferArgsForCall(0)
				Expect(*argOv.Nonce).To(Equal(uint64(99)))
			})
		})

		When("the broadcast fails", func() {
			BeforeEach(func() {
				fakeTokens.TransferReturns(token.TransferResult{}, fakeErr)
			})

			It("should return the error without recording", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.SaveTransferCallCount()).To(Equal(0))
			})
		})

		When("the record cannot be saved", func() {
			BeforeEach(func() {
				fakeRepo.SaveTransferReturns(fakeErr)
			})

			It("should still return the broadcast transfer", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.TransactionHash).To(Equal(txHash.Hex()))
			})
		})
	})

	Describe("Deploy", func() {
		var (
			msg    core.DeployMessage
			record core.DeployRecord
			err    error

			contractAddr common.Address
			txHash       common.Hash
		)

		BeforeEach(func() {
			contractAddr = common.HexToAddress("0x3333333333333333333333333333333333333333")
			txHash = common.HexToHash("0xbeef")

			msg = core.DeployMessage{
				Name:          "Forge Token",
				Symbol:        "FRG",
				Decimals:      18,
				InitialSupply: decimal.RequireFromString("1000000"),
				Bytecode:      "0x60806040",
			}

			fakeTokens.DeployReturns(contractAddr, txHash, nil)
		})

		JustBeforeEach(func() {
			record, err = forge.Deploy(ctx, msg)
		})

		When("the deployment is mined", func() {
			It("should record the deployment", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ContractAddress).To(Equal(contractAddr.Hex()))
				Expect(record.TransactionHash).To(Equal(txHash.Hex()))

				_, argParams, _ := fakeTokens.DeployArgsForCall(0)
				Expect(argParams.Name).To(Equal("Forge Token"))
				Expect(argParams.Bytecode).To(Equal(common.FromHex("0x60806040")))

				Expect(fakeRepo.SaveDeploymentCallCount()).To(Equal(1))
				_, saved := fakeRepo.SaveDeploymentArgsForCall(0)
				Expect(saved.Symbol).To(Equal("FRG"))
				Expect(saved.InitialSupply).To(Equal("1000000"))
			})
		})

		When("the deployment fails", func() {
			BeforeEach(func() {
				fakeTokens.DeployReturns(common.Address{}, common.Hash{}, fakeErr)
			})

			It("should return the error without recording", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.SaveDeploymentCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Transfers", func() {
		var (
			records []core.TransferRecord
			err     error
		)

		JustBeforeEach(func() {
			records, err = forge.Transfers(ctx)
		})

		When("transfers exist", func() {
			BeforeEach(func() {
				fakeRepo.GetTransfersReturns([]repository.Transfer{
					{TransactionHash: "0x1", FromAddress: "0xa", ToAddress: "0xb", Status: repository.StatusConfirmed},
					{TransactionHash: "0x2", Status: repository.StatusPending},
				}, nil)
			})

			It("should map them to records", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(2))
				Expect(records[0].TransactionHash).To(Equal("0x1"))
				Expect(records[0].From).To(Equal("0xa"))
				Expect(records[0].To).To(Equal("0xb"))
				Expect(records[1].Status).To(Equal(repository.StatusPending))
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				fakeRepo.GetTransfersReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ProcessEvent", func() {
		var (
			raw []byte
			err error
		)

		JustBeforeEach(func() {
			err = forge.ProcessEvent(ctx, raw)
		})

		When("the payload carries events", func() {
			BeforeEach(func() {
				raw = []byte(`{"event":{"network":"ETH_SEPOLIA","data":{"block":{"logs":[{"address":"0x1"},{"address":"0x2"}]}}}}`)
			})

			It("should enqueue the batch", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeEnqueuer.EnqueueBlockchainEventsCallCount()).To(Equal(1))

				_, payload := fakeEnqueuer.EnqueueBlockchainEventsArgsForCall(0)
				Expect(payload.Network).To(Equal("ETH_SEPOLIA"))
				Expect(payload.Logs).To(HaveLen(2))
				Expect(payload.Logs[0]).To(Equal(json.RawMessage(`{"address":"0x1"}`)))
			})
		})

		When("the payload is malformed", func() {
			BeforeEach(func() {
				raw = []byte("not-json")
			})

			It("should swallow the payload", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeEnqueuer.EnqueueBlockchainEventsCallCount()).To(Equal(0))
			})
		})

		When("the payload carries no events", func() {
			BeforeEach(func() {
				raw = []byte(`{"event":{"network":"ETH_SEPOLIA","data":{"block":{"logs":[]}}}}`)
			})

			It("should not enqueue anything", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeEnqueuer.EnqueueBlockchainEventsCallCount()).To(Equal(0))
			})
		})

		When("the envelope is missing", func() {
			BeforeEach(func() {
				raw = []byte(`{"network":"ETH_SEPOLIA","logs":[{"address":"0x1"}]}`)
			})

			It("should not enqueue anything", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeEnqueuer.EnqueueBlockchainEventsCallCount()).To(Equal(0))
			})
		})

		When("the enqueue fails", func() {
			BeforeEach(func() {
				raw = []byte(`{"event":{"network":"ETH_SEPOLIA","data":{"block":{"logs":[{"address":"0x1"}]}}}}`)
				fakeEnqueuer.EnqueueBlockchainEventsReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ValidateToken", func() {
		When("the token is valid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "user-id-1"}, nil)
			})

			It("should return the claims", func() {
				claims, err := forge.ValidateToken("signed.token")
				Expect(err).NotTo(HaveOccurred())
				Expect(claims["sub"]).To(Equal("user-id-1"))

				argToken := fakeJWT.ValidateArgsForCall(0)
				Expect(argToken).To(Equal("signed.token"))
			})
		})

		When("the token is invalid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				_, err := forge.ValidateToken("bad.token")
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
