package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap/zapcore"

	"tokenforge/internal/chain"
	"tokenforge/internal/config"
	"tokenforge/internal/core"
	"tokenforge/internal/db"
	"tokenforge/internal/http/handler"
	"tokenforge/internal/http/handler/middleware"
	"tokenforge/internal/http/payload"
	"tokenforge/internal/http/server"
	"tokenforge/internal/queue"
	"tokenforge/internal/repository"
	"tokenforge/internal/token"
	"tokenforge/internal/transactor"
	"tokenforge/pkg/jwt"
	"tokenforge/pkg/log"
	"tokenforge/pkg/monitor"
)

func Start() error {
	logger := log.NewZapLogger("tokenforge", zapcore.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		logger.Errorw("failed to load config", "error", err)
		return err
	}

	monitor.Init()

	dbConn, err := db.NewPostgresDB(cfg.DB.DSN)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	repo := repository.NewTokenRepository(dbConn)
	if err = repo.MigrateAndSeed(context.Background()); err != nil {
		logger.Errorw("failed to migrate and seed database", "error", err)
		return err
	}

	jwtService := jwt.NewJWTService([]byte(cfg.Auth.JWTSecret))

	endpoint, err := chain.NewEndpoint(cfg.Chain.Chain, cfg.Chain.Network, cfg.Chain.APIKey)
	if err != nil {
		logger.Errorw("failed to resolve chain endpoint", "error", err)
		return err
	}

	connector, err := chain.Dial(context.Background(), endpoint)
	if err != nil {
		logger.Errorw("node connection failed", "error", err, "network", endpoint.Network())
		return err
	}
	logger.Infow("connected to node", "chain", endpoint.Chain(), "network", endpoint.Network(), "chain_id", connector.ChainID())

	cred, err := transactor.NewCredential(cfg.Wallet.PrivateKey)
	if err != nil {
		logger.Errorw("failed to load wallet credential", "error", err)
		return err
	}

	txr := transactor.New(logger, connector, cred)
	tokens := token.NewService(logger, txr, connector)

	queueClient := queue.NewClient(logger, asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer queueClient.Close()

	forge := core.NewForge(
		logger,
		repo,
		jwtService,
		tokens,
		txr,
		queueClient,
		string(endpoint.Network()))

	// handler
	tokenHlr := handler.NewTokenHandler(
		logger,
		payload.DecodeValidator{},
		forge)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	signature := middleware.NewSignatureMiddleware(logger, cfg.Webhook.SigningKey)

	// register routes
	mux.HandleFunc(handler.Authenticate, tokenHlr.HandleAuthenticate)
	mux.HandleFunc(handler.TransferToken, tokenHlr.HandleTransfer)
	mux.HandleFunc(handler.GetBalance, tokenHlr.HandleBalance)
	mux.HandleFunc(handler.DeployToken, tokenHlr.HandleDeploy)
	mux.HandleFunc(handler.GetTransfers, tokenHlr.HandleGetTransfers)
	mux.Handle(handler.WebhookEvents, signature.Verify(http.HandlerFunc(tokenHlr.HandleWebhook)))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := server.NewHTTP(logger, hdlr, cfg.Server.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
