package main

import (
	"fmt"
	"os"

	"github.com/hibiken/asynq"
	"go.uber.org/zap/zapcore"

	"tokenforge/internal/config"
	"tokenforge/internal/queue"
	"tokenforge/pkg/log"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("worker run into an error: %s", err)
		os.Exit(1)
	}
}

func run() error {
	logger := log.NewZapLogger("tokenforge-worker", zapcore.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		logger.Errorw("failed to load config", "error", err)
		return err
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: 10,
		},
	)

	handler := queue.NewEventsHandler(logger)

	mux := asynq.NewServeMux()
	mux.HandleFunc(queue.TypeBlockchainEvents, handler.HandleBlockchainEvents)

	logger.Infow("worker starting", "redis", cfg.Redis.Addr)
	if err := srv.Run(mux); err != nil {
		logger.Errorw("worker stopped", "error", err)
		return err
	}

	return nil
}
