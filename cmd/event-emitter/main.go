package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/PaulieB14/monad-usdc-indexer/internal/adapter"
	"github.com/PaulieB14/monad-usdc-indexer/internal/config"
	"github.com/PaulieB14/monad-usdc-indexer/internal/emitter"
	"github.com/PaulieB14/monad-usdc-indexer/internal/logger"
	"github.com/PaulieB14/monad-usdc-indexer/internal/messaging"
	"github.com/PaulieB14/monad-usdc-indexer/internal/providers/ethereum"
	"github.com/PaulieB14/monad-usdc-indexer/internal/providers/jetstream"
	"github.com/PaulieB14/monad-usdc-indexer/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadEmitterConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "event-emitter",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Event Emitter")

	// Connect to database, retrying while it comes up
	var db *gorm.DB
	connect := func() error {
		db, err = gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
		return err
	}
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = time.Minute
	if err := backoff.Retry(connect, backoff.WithContext(b, ctx)); err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clockAdapter := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	natsJS := adapter.NewNatsJetStream()

	// Initialize chain client
	ethDialer := adapter.NewEthClientDialer()
	adapterEthClient, err := ethDialer.Dial(ctx, cfg.Chain.WebSocketURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to dial chain RPC", zap.Error(err), zap.String("websocket_url", cfg.Chain.WebSocketURL))
	}
	defer adapterEthClient.Close()
	ethereumClient := ethereum.NewClient(adapterEthClient, clockAdapter)

	// Initialize NATS publisher
	var natsPublisher messaging.Publisher
	connectNats := func() error {
		natsPublisher, err = jetstream.NewPublisher(
			ctx,
			jetstream.Config{
				URL:            cfg.NATS.URL,
				StreamName:     cfg.NATS.StreamName,
				Chain:          cfg.Chain.Name,
				MaxReconnects:  cfg.NATS.MaxReconnects,
				ReconnectWait:  cfg.NATS.ReconnectWait,
				ConnectionName: cfg.NATS.ConnectionName,
			}, natsJS, jsonAdapter)
		return err
	}
	b.Reset()
	if err := backoff.Retry(connectNats, backoff.WithContext(b, ctx)); err != nil {
		logger.FatalCtx(ctx, "Failed to create NATS publisher", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer natsPublisher.Close()
	logger.InfoCtx(ctx, "Connected to NATS JetStream")

	// Limit the log filter to the configured contracts
	contracts := append([]string{}, cfg.Token.Addresses...)
	if cfg.Token.FactoryAddress != "" {
		contracts = append(contracts, cfg.Token.FactoryAddress)
	}

	// Initialize chain subscriber
	chainSubscriber, err := ethereum.NewSubscriber(ethereum.Config{
		WebSocketURL:      cfg.Chain.WebSocketURL,
		ContractAddresses: contracts,
	}, ethereumClient)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create chain subscriber", zap.Error(err), zap.String("websocket_url", cfg.Chain.WebSocketURL))
	}
	defer chainSubscriber.Close()
	logger.InfoCtx(ctx, "Connected to chain WebSocket")

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	eventEmitter := emitter.NewEmitter(
		chainSubscriber,
		natsPublisher,
		dataStore,
		emitter.Config{
			Chain:           cfg.Chain.Name,
			StartBlock:      cfg.Chain.StartBlock,
			CursorSaveFreq:  cfg.Chain.CursorSaveFreq,
			CursorSaveDelay: cfg.Chain.CursorSaveDelay,
		},
		clockAdapter,
	)
	defer eventEmitter.Close()

	// Channel for emitter errors
	errCh := make(chan error, 1)

	// Start the emitter
	go func() {
		if err := eventEmitter.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "emitter"))
		cancel()
	}

	// Give some time for graceful shutdown
	time.Sleep(time.Second)

	// Use non-context logger for final shutdown message since context is already canceled
	logger.Info("Event Emitter stopped")
}
