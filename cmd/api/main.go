package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chainpay/chainpay-api/internal/bridge"
	"github.com/chainpay/chainpay-api/internal/config"
	"github.com/chainpay/chainpay-api/internal/db"
	"github.com/chainpay/chainpay-api/internal/logger"
	"github.com/chainpay/chainpay-api/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		// Missing .env is fine; variables may be set directly.
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger.InitLogger(cfg.Stage)
	defer logger.Sync()

	if cfg.Stage == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Unable to parse database DSN", zap.Error(err))
	}
	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Minute * 30
	poolConfig.MaxConnIdleTime = time.Minute * 15

	dbpool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}
	defer dbpool.Close()

	queries := db.New(dbpool)

	var bridgeClient bridge.Client
	if cfg.BridgeEnabled() {
		client, err := bridge.NewContractClient(bridge.ContractClientConfig{
			RPCURL:          cfg.RPCURL,
			ContractAddress: cfg.BatcherAddress,
			PrivateKeyHex:   cfg.PrivateKey,
			ChainID:         cfg.SourceChainID,
			PollInterval:    cfg.ReceiptInterval,
		})
		if err != nil {
			logger.Fatal("Failed to initialize bridge client", zap.Error(err))
		}
		bridgeClient = client
		logger.Info("Bridge client initialized",
			zap.String("contract", cfg.BatcherAddress),
			zap.Int64("chain_id", cfg.SourceChainID))
	} else {
		logger.Warn("Bridge not configured; batch execution is disabled")
	}

	router := server.NewRouter(server.Dependencies{
		Config:       cfg,
		Queries:      queries,
		BridgeClient: bridgeClient,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Server starting", zap.String("port", cfg.Port), zap.String("stage", cfg.Stage))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Forced shutdown", zap.Error(err))
	}
}
