package handler

import (
	"context"
	"net/http"

	"github.com/golang-jwt/jwt"
	"github.com/shopspring/decimal"

	"tokenforge/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenService . TokenService
type TokenService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	ValidateToken(token string) (jwt.MapClaims, error)
	Balance(ctx context.Context, contract string, account string) (decimal.Decimal, error)
	Transfer(ctx context.Context, msg core.TransferMessage) (core.TransferRecord, error)
	Deploy(ctx context.Context, msg core.DeployMessage) (core.DeployRecord, error)
	Transfers(ctx context.Context) ([]core.TransferRecord, error)
	ProcessEvent(ctx context.Context, raw []byte) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}
