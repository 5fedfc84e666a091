package core

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang-jwt/jwt"
	"github.com/shopspring/decimal"

	"tokenforge/internal/queue"
	"tokenforge/internal/repository"
	"tokenforge/internal/token"
	"tokenforge/internal/transactor"
	tokenIssuer "tokenforge/pkg/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	SaveTransfer(ctx context.Context, transfer repository.Transfer) error
	UpdateTransferStatus(ctx context.Context, txHash string, status string) error
	GetTransfers(ctx context.Context) ([]repository.Transfer, error)
	SaveDeployment(ctx context.Context, deployment repository.Deployment) error
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name TokenService . TokenService
type TokenService interface {
	BalanceOf(ctx context.Context, contract common.Address, account common.Address) (decimal.Decimal, error)
	Transfer(ctx context.Context, contract common.Address, to common.Address, amount decimal.Decimal, ov transactor.Overrides) (token.TransferResult, error)
	Deploy(ctx context.Context, params token.DeployParams, timeout time.Duration) (common.Address, common.Hash, error)
}

//counterfeiter:generate -o fake -fake-name Confirmer . Confirmer
type Confirmer interface {
	AwaitConfirmation(ctx context.Context, txHash common.Hash, timeout time.Duration) (*types.Receipt, error)
}

//counterfeiter:generate -o fake -fake-name Enqueuer . Enqueuer
type Enqueuer interface {
	EnqueueBlockchainEvents(ctx context.Context, payload queue.EventsPayload) error
}
