package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"tokenforge/internal/db"
)

var (
	ErrUserNotFound     error = errors.New("user not found")
	ErrTransferNotFound error = errors.New("transfer not found")
)

type TokenRepository struct {
	db Database
}

func NewTokenRepository(db Database) *TokenRepository {
	return &TokenRepository{
		db: db,
	}
}

func (r *TokenRepository) MigrateAndSeed(ctx context.Context) error {
	err := r.db.MigrateTable(&Transfer{}, &Deployment{}, &User{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	users := []User{
		{
			ID:           uuid.NewString(),
			Username:     "alice",
			PasswordHash: "$2a$10$7PrikY/17DYiRAA6JlaGl.yo26gwhTT53ESuovxGWvWJ4HhvGI/GK",
		},
		{
			ID:           uuid.NewString(),
			Username:     "bob",
			PasswordHash: "$2a$10$SHWr22XIYjY3/nLI6QOSJezr5KAB2AUs740F8NahmhBNsPsKacL8u",
		},
	}
	err = r.db.SeedTable(ctx, &users)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	return nil
}

func (r *TokenRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *TokenRepository) SaveTransfer(ctx context.Context, transfer Transfer) error {
	if transfer.ID == "" {
		transfer.ID = uuid.NewString()
	}

	err := r.db.SaveToTable(ctx, &transfer)
	if err != nil {
		return fmt.Errorf("save transfer: %w", err)
	}

	return nil
}

func (r *TokenRepository) UpdateTransferStatus(ctx context.Context, txHash string, status string) error {
	err := r.db.UpdateColumns(ctx, &Transfer{}, "transaction_hash", txHash, map[string]any{
		"status": status,
	})
	if err != nil {
		return fmt.Errorf("update transfer status: %w", err)
	}

	return nil
}

func (r *TokenRepository) GetTransfers(ctx context.Context) ([]Transfer, error) {
	var transfers []Transfer

	err := r.db.GetAll(ctx, &transfers)
	if err != nil {
		return nil, fmt.Errorf("get transfers: %w", err)
	}

	return transfers, nil
}

func (r *TokenRepository) GetTransfersByStatus(ctx context.Context, status string) ([]Transfer, error) {
	var transfers []Transfer

	err := r.db.GetAllBy(ctx, "status", status, &transfers)
	if err != nil {
		return nil, fmt.Errorf("get transfers by status: %w", err)
	}

	return transfers, nil
}

func (r *TokenRepository) SaveDeployment(ctx context.Context, deployment Deployment) error {
	if deployment.ID == "" {
		deployment.ID = uuid.NewString()
	}

	err := r.db.SaveToTable(ctx, &deployment)
	if err != nil {
		return fmt.Errorf("save deployment: %w", err)
	}

	return nil
}
