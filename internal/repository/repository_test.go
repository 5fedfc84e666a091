package repository_test

import (
	"context"
	"errors"

	"tokenforge/internal/db"
	"tokenforge/internal/repository"
	"tokenforge/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("TokenRepository", func() {
	var (
		fakeDB *fake.Database
		ctx    context.Context

		repo *repository.TokenRepository

		fakeErr error
	)

	BeforeEach(func() {
		fakeDB = new(fake.Database)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		repo = repository.NewTokenRepository(fakeDB)
	})

	Describe("MigrateAndSeed", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.MigrateAndSeed(ctx)
		})

		When("migration and seeding succeed", func() {
			It("should migrate every table and seed the users", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeDB.MigrateTableCallCount()).To(Equal(1))
				tables := fakeDB.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(3))

				Expect(fakeDB.SeedTableCallCount()).To(Equal(1))
				_, seeded := fakeDB.SeedTableArgsForCall(0)
				users, ok := seeded.(*[]repository.User)
				Expect(ok).To(BeTrue())
				Expect(*users).To(HaveLen(2))
				Expect((*users)[0].Username).To(Equal("alice"))
				Expect((*users)[1].Username).To(Equal("bob"))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeDB.MigrateTableReturns(fakeErr)
			})

			It("should return the error without seeding", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeDB.SeedTableCallCount()).To(Equal(0))
			})
		})

		When("seeding fails", func() {
			BeforeEach(func() {
				fakeDB.SeedTableReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetUserByUsername", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.GetUserByUsername(ctx, "alice")
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeDB.GetOneByStub = func(_ context.Context, column string, value any, entity any) error {
					Expect(column).To(Equal("username"))
					Expect(value).To(Equal("alice"))
					*(entity.(*repository.User)) = repository.User{
						ID:       "user-id-1",
						Username: "alice",
					}
					return nil
				}
			})

			It("should return the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal("user-id-1"))
				Expect(user.Username).To(Equal("alice"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeDB.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeDB.GetOneByReturns(fakeErr)
			})

			It("should return the wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("SaveTransfer", func() {
		var (
			transfer repository.Transfer
			err      error
		)

		BeforeEach(func() {
			transfer = repository.Transfer{
				TransactionHash: "0xabc",
				Status:          repository.StatusPending,
			}
		})

		JustBeforeEach(func() {
			err = repo.SaveTransfer(ctx, transfer)
		})

		When("the transfer carries no ID", func() {
			It("should assign one before saving", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeDB.SaveToTableCallCount()).To(Equal(1))
				_, record := fakeDB.SaveToTableArgsForCall(0)
				saved, ok := record.(*repository.Transfer)
				Expect(ok).To(BeTrue())
				Expect(saved.ID).NotTo(BeEmpty())
				Expect(saved.TransactionHash).To(Equal("0xabc"))
			})
		})

		When("the transfer carries an ID", func() {
			BeforeEach(func() {
				transfer.ID = "fixed-id"
			})

			It("should keep it", func() {
				Expect(err).NotTo(HaveOccurred())
				_, record := fakeDB.SaveToTableArgsForCall(0)
				Expect(record.(*repository.Transfer).ID).To(Equal("fixed-id"))
			})
		})

		When("the save fails", func() {
			BeforeEach(func() {
				fakeDB.SaveToTableReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("UpdateTransferStatus", func() {
		It("should update the status by transaction hash", func() {
			err := repo.UpdateTransferStatus(ctx, "0xabc", repository.StatusConfirmed)
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeDB.UpdateColumnsCallCount()).To(Equal(1))
			_, model, column, value, updates := fakeDB.UpdateColumnsArgsForCall(0)
			Expect(model).To(BeAssignableToTypeOf(&repository.Transfer{}))
			Expect(column).To(Equal("transaction_hash"))
			Expect(value).To(Equal("0xabc"))
			Expect(updates).To(Equal(map[string]any{"status": repository.StatusConfirmed}))
		})
	})

	Describe("GetTransfers", func() {
		When("transfers exist", func() {
			BeforeEach(func() {
				fakeDB.GetAllStub = func(_ context.Context, entity any) error {
					*(entity.(*[]repository.Transfer)) = []repository.Transfer{
						{TransactionHash: "0x1"},
						{TransactionHash: "0x2"},
					}
					return nil
				}
			})

			It("should return them", func() {
				transfers, err := repo.GetTransfers(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(transfers).To(HaveLen(2))
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				fakeDB.GetAllReturns(fakeErr)
			})

			It("should return the error", func() {
				_, err := repo.GetTransfers(ctx)
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetTransfersByStatus", func() {
		It("should filter by the status column", func() {
			_, err := repo.GetTransfersByStatus(ctx, repository.StatusPending)
			Expect(err).NotTo(HaveOccurred())

			_, column, value, _ := fakeDB.GetAllByArgsForCall(0)
			Expect(column).To(Equal("status"))
			Expect(value).To(Equal(repository.StatusPending))
		})
	})

	Describe("SaveDeployment", func() {
		It("should assign an ID before saving", func() {
			err := repo.SaveDeployment(ctx, repository.Deployment{Symbol: "FRG"})
			Expect(err).NotTo(HaveOccurred())

			_, record := fakeDB.SaveToTableArgsForCall(0)
			deployment, ok := record.(*repository.Deployment)
			Expect(ok).To(BeTrue())
			Expect(deployment.ID).NotTo(BeEmpty())
			Expect(deployment.Symbol).To(Equal("FRG"))
		})
	})
})
