package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang-jwt/jwt"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"tokenforge/internal/queue"
	"tokenforge/internal/repository"
	"tokenforge/internal/token"
	"tokenforge/internal/transactor"
	tokenIssuer "tokenforge/pkg/jwt"
	"tokenforge/pkg/monitor"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")
var ErrInvalidAddress error = errors.New("invalid ethereum address")

const defaultConfirmTimeout = 2 * time.Minute

// Forge ties the token service, the persistence layer and the task queue
// together behind the operations the HTTP and CLI surfaces expose.
type Forge struct {
	logs           *zap.SugaredLogger
	repo           Repository
	jwtIssuer      JWTIssuer
	tokens         TokenService
	confirmer      Confirmer
	queue          Enqueuer
	network        string
	confirmTimeout time.Duration
}

func NewForge(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer, tokens TokenService, confirmer Confirmer, enqueuer Enqueuer, network string) *Forge {
	return &Forge{
		logs:           logger,
		repo:           repo,
		jwtIssuer:      jwt,
		tokens:         tokens,
		confirmer:      confirmer,
		queue:          enqueuer,
		network:        network,
		confirmTimeout: defaultConfirmTimeout,
	}
}

// Authenticate checks the credentials against the database and issues a
// signed JWT token on success.
func (f *Forge) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := f.repo.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    user.ID,
		Expiration: 24,
	}
	token := f.jwtIssuer.Generate(tokenInfo)
	signed, err := f.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// ValidateToken verifies the JWT token and returns its claims.
func (f *Forge) ValidateToken(token string) (jwt.MapClaims, error) {
	claims, err := f.jwtIssuer.Validate(token)
	if err != nil {
		return nil, fmt.Errorf("validate jwt token: %w", err)
	}
	return claims, nil
}

// Balance returns the token balance of the account in human units.
func (f *Forge) Balance(ctx context.Context, contract string, account string) (decimal.Decimal, error) {
	contractAddr, err := parseAddress(contract)
	if err != nil {
		return decimal.Zero, err
	}
	accountAddr, err := parseAddress(account)
	if err != nil {
		return decimal.Zero, err
	}

	balance, err := f.tokens.BalanceOf(ctx, contractAddr, accountAddr)
	if err != nil {
		return decimal.Zero, fmt.Errorf("token balance: %w", err)
	}

	return balance, nil
}

// Transfer broadcasts a token transfer, records it as pending and tracks
// its confirmation in the background.
func (f *Forge) Transfer(ctx context.Context, msg TransferMessage) (TransferRecord, error) {
	contractAddr, err := parseAddress(msg.Contract)
	if err != nil {
		return TransferRecord{}, err
	}
	toAddr, err := parseAddress(msg.To)
	if err != nil {
		return TransferRecord{}, err
	}

	overrides, err := transactor.ParseOverrides(msg.Overrides)
	if err != nil {
		return TransferRecord{}, fmt.Errorf("parse overrides: %w", err)
	}

	result, err := f.tokens.Transfer(ctx, contractAddr, toAddr, msg.Amount, overrides)
	if err != nil {
		if monitor.Business != nil {
			monitor.Business.BroadcastErrorsTotal.Inc()
		}
		return TransferRecord{}, fmt.Errorf("token transfer: %w", err)
	}

	if monitor.Business != nil {
		monitor.Business.TransfersBroadcastTotal.WithLabelValues(f.network).Inc()
	}

	record := TransferRecord{
		TransactionHash: result.TxHash.Hex(),
		ContractAddress: contractAddr.Hex(),
		From:            result.From.Hex(),
		To:              toAddr.Hex(),
		Amount:          msg.Amount.String(),
		Nonce:           result.Nonce,
		Status:          repository.StatusPending,
	}

	err = f.repo.SaveTransfer(ctx, repository.Transfer{
		TransactionHash: record.TransactionHash,
		ContractAddress: record.ContractAddress,
		FromAddress:     record.From,
		ToAddress:       record.To,
		Amount:          record.Amount,
		Nonce:           record.Nonce,
		Status:          record.Status,
		CreatedAt:       time.Now().UTC(),
	})
	if err != nil {
		f.logs.Errorw("failed to save transfer record", "error", err, "tx_hash", record.TransactionHash)
	}

	go f.trackConfirmation(result.TxHash)

	return record, nil
}

// Deploy creates a new token contract, waits for it to be mined and records
// the deployment.
func (f *Forge) Deploy(ctx context.Context, msg DeployMessage) (DeployRecord, error) {
	bytecode := common.FromHex(msg.Bytecode)

	contractAddr, txHash, err := f.tokens.Deploy(ctx, token.DeployParams{
		Name:          msg.Name,
		Symbol:        msg.Symbol,
		Decimals:      msg.Decimals,
		InitialSupply: msg.InitialSupply,
		Bytecode:      bytecode,
	}, f.confirmTimeout)
	if err != nil {
		return DeployRecord{}, fmt.Errorf("token deploy: %w", err)
	}

	if monitor.Business != nil {
		monitor.Business.DeploymentsTotal.Inc()
	}

	record := DeployRecord{
		TransactionHash: txHash.Hex(),
		ContractAddress: contractAddr.Hex(),
		Name:            msg.Name,
		Symbol:          msg.Symbol,
	}

	err = f.repo.SaveDeployment(ctx, repository.Deployment{
		TransactionHash: record.TransactionHash,
		ContractAddress: record.ContractAddress,
		Name:            msg.Name,
		Symbol:          msg.Symbol,
		Decimals:        msg.Decimals,
		InitialSupply:   msg.InitialSupply.String(),
		CreatedAt:       time.Now().UTC(),
	})
	if err != nil {
		f.logs.Errorw("failed to save deployment record", "error", err, "tx_hash", record.TransactionHash)
	}

	return record, nil
}

// Transfers returns every recorded transfer.
func (f *Forge) Transfers(ctx context.Context) ([]TransferRecord, error) {
	transfers, err := f.repo.GetTransfers(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting transfers: %w", err)
	}

	records := make([]TransferRecord, len(transfers))
	for i, tr := range transfers {
		records[i] = TransferRecord{
			TransactionHash: tr.TransactionHash,
			ContractAddress: tr.ContractAddress,
			From:            tr.FromAddress,
			To:              tr.ToAddress,
			Amount:          tr.Amount,
			Nonce:           tr.Nonce,
			Status:          tr.Status,
		}
	}

	return records, nil
}

// ProcessEvent handles a raw webhook payload. Malformed payloads are logged
// and dropped, the webhook always acknowledges. Batches with events are
// queued for background processing.
func (f *Forge) ProcessEvent(ctx context.Context, raw []byte) error {
	if monitor.Business != nil {
		monitor.Business.WebhookEventsTotal.Inc()
	}

	var batch EventBatch
	if err := json.Unmarshal(raw, &batch); err != nil {
		f.logs.Errorw("malformed webhook payload", "error", err, "payload_size", len(raw))
		return nil
	}

	logs := batch.Event.Data.Block.Logs
	if len(logs) == 0 {
		f.logs.Infow("webhook payload carried no events")
		return nil
	}

	err := f.queue.EnqueueBlockchainEvents(ctx, queue.EventsPayload{
		Network: batch.Event.Network,
		Logs:    logs,
	})
	if err != nil {
		return fmt.Errorf("enqueue events: %w", err)
	}

	return nil
}

func (f *Forge) trackConfirmation(txHash common.Hash) {
	ctx := context.Background()

	receipt, err := f.confirmer.AwaitConfirmation(ctx, txHash, f.confirmTimeout)
	if err != nil {
		// A timeout only means the transaction was not seen in time, it may
		// still confirm. The record stays pending rather than claiming a
		// failure that never happened.
		if errors.Is(err, transactor.ErrConfirmationTimeout) {
			f.logs.Warnw("transfer confirmation timed out, outcome unknown", "tx_hash", txHash.Hex())
			return
		}

		f.logs.Errorw("transfer confirmation failed", "error", err, "tx_hash", txHash.Hex())
		if updErr := f.repo.UpdateTransferStatus(ctx, txHash.Hex(), repository.StatusFailed); updErr != nil {
			f.logs.Errorw("failed to update transfer status", "error", updErr, "tx_hash", txHash.Hex())
		}
		if monitor.Business != nil {
			monitor.Business.TransfersConfirmedTotal.WithLabelValues(repository.StatusFailed).Inc()
		}
		return
	}

	status := repository.StatusConfirmed
	if receipt.Status != types.ReceiptStatusSuccessful {
		status = repository.StatusFailed
	}

	if err := f.repo.UpdateTransferStatus(ctx, txHash.Hex(), status); err != nil {
		f.logs.Errorw("failed to update transfer status", "error", err, "tx_hash", txHash.Hex())
	}
	if monitor.Business != nil {
		monitor.Business.TransfersConfirmedTotal.WithLabelValues(status).Inc()
	}

	f.logs.Infow("transfer settled", "tx_hash", txHash.Hex(), "status", status)
}

func parseAddress(raw string) (common.Address, error) {
	if !common.IsHexAddress(raw) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, raw)
	}
	return common.HexToAddress(raw), nil
}
