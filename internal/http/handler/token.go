package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"tokenforge/internal/core"
	"tokenforge/internal/http/handler/middleware"
	"tokenforge/internal/http/payload"
	"tokenforge/internal/transactor"
)

var (
	Authenticate  = "POST /api/authenticate"
	TransferToken = "POST /api/tokens/transfer"
	GetBalance    = "GET /api/tokens/balance"
	DeployToken   = "POST /api/tokens/deploy"
	GetTransfers  = "GET /api/tokens/transfers"
	WebhookEvents = "POST /blockchain/events"
)

type TokenHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	forge            TokenService
}

func NewTokenHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, tokenService TokenService) *TokenHandler {
	return &TokenHandler{
		logs:             logger,
		requestValidator: requestValidator,
		forge:            tokenService,
	}
}

func (h *TokenHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var authRequest payload.AuthRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &authRequest)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token, err := h.forge.Authenticate(r.Context(), authRequest.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *TokenHandler) HandleTransfer(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if !h.authorize(w, r, TransferToken, requestId) {
		return
	}

	var transferRequest payload.TransferRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &transferRequest)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not transfer tokens",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", TransferToken,
			"request_id", requestId)
		return
	}

	record, err := h.forge.Transfer(r.Context(), transferRequest.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Could not transfer tokens",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, transactor.ErrInvalidField) || errors.Is(err, core.ErrInvalidAddress) {
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("token transfer failed",
			"error", err,
			"handler", TransferToken,
			"request_id", requestId)
		return
	}

	h.logs.Infow("token transfer accepted",
		"tx_hash", record.TransactionHash,
		"handler", TransferToken,
		"request_id", requestId)

	resp := map[string]core.TransferRecord{
		"transfer": record,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *TokenHandler) HandleBalance(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	values, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve balance",
			Error:   fmt.Errorf("parse query parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to parse query parameters", "error", err, "handler", GetBalance, "request_id", requestId)
		return
	}

	balanceRequest := payload.BalanceRequest{
		Contract: values.Get("contract"),
		Account:  values.Get("account"),
	}
	if err := balanceRequest.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve balance",
			Error:   fmt.Errorf("validate request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate request payload",
			"error", err,
			"handler", GetBalance,
			"request_id", requestId)
		return
	}

	balance, err := h.forge.Balance(r.Context(), balanceRequest.Contract, balanceRequest.Account)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve balance",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get token balance",
			"error", err,
			"handler", GetBalance,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"contract": balanceRequest.Contract,
		"account":  balanceRequest.Account,
		"balance":  balance.String(),
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *TokenHandler) HandleDeploy(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if !h.authorize(w, r, DeployToken, requestId) {
		return
	}

	var deployRequest payload.DeployRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &deployRequest)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not deploy token",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", DeployToken,
			"request_id", requestId)
		return
	}

	record, err := h.forge.Deploy(r.Context(), deployRequest.ToMessage())
	if err != nil {
		h.respond(w, Response{
			Message: "Could not deploy token",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("token deployment failed",
			"error", err,
			"handler", DeployToken,
			"request_id", requestId)
		return
	}

	h.logs.Infow("token deployed",
		"contract", record.ContractAddress,
		"handler", DeployToken,
		"request_id", requestId)

	resp := map[string]core.DeployRecord{
		"deployment": record,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *TokenHandler) HandleGetTransfers(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	transfers, err := h.forge.Transfers(r.Context())
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("get transfers: %w", err).Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get transfers",
			"error", err,
			"handler", GetTransfers,
			"request_id", requestId)
		return
	}

	resp := map[string][]core.TransferRecord{
		"transfers": transfers,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

// HandleWebhook ingests provider event batches. The provider retries on
// anything but success, so the handler acknowledges even payloads it cannot
// use and leaves the complaints to the logs.
func (h *TokenHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	body, err := io.ReadAll(r.Body)
	defer r.Body.Close()
	if err != nil {
		h.logs.Errorw("failed to read webhook body",
			"error", err,
			"handler", WebhookEvents,
			"request_id", requestId)
		h.respond(w, Response{Message: "success"}, http.StatusOK, requestId)
		return
	}

	if err := h.forge.ProcessEvent(r.Context(), body); err != nil {
		h.logs.Errorw("failed to process webhook events",
			"error", err,
			"handler", WebhookEvents,
			"request_id", requestId)
	}

	h.respond(w, Response{Message: "success"}, http.StatusOK, requestId)
}

func (h *TokenHandler) authorize(w http.ResponseWriter, r *http.Request, handlerName string, requestId string) bool {
	authToken := r.Header.Get("AUTH_TOKEN")
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "AUTH_TOKEN header is required",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", handlerName, "request_id", requestId)
		return false
	}

	if _, err := h.forge.ValidateToken(authToken); err != nil {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "invalid AUTH_TOKEN header",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("invalid AUTH_TOKEN header", "error", err, "handler", handlerName, "request_id", requestId)
		return false
	}

	return true
}

func (h *TokenHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx == nil {
		return ""
	}
	return reqIdCtx.(string)
}
