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
	"github.com/PaulieB14/monad-usdc-indexer/internal/domain"
	"github.com/PaulieB14/monad-usdc-indexer/internal/indexer"
	"github.com/PaulieB14/monad-usdc-indexer/internal/logger"
	"github.com/PaulieB14/monad-usdc-indexer/internal/messaging"
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
	cfg, err := config.LoadIndexerConfig(*configFile, *envPath)
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
			"service": "indexer",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Indexer")

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

	err = store.ConfigureConnectionPool(db,
		cfg.Database.MaxOpenConns,
		cfg.Database.MaxIdleConns,
		cfg.Database.ConnMaxLifetime,
		cfg.Database.ConnMaxIdleTime)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}

	if err := store.AutoMigrate(db); err != nil {
		logger.FatalCtx(ctx, "Failed to migrate database", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Database schema up to date")

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clockAdapter := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	natsJS := adapter.NewNatsJetStream()

	// Initialize the processing engine
	engine, err := indexer.NewEngine(ctx, dataStore, clockAdapter, indexer.Config{
		TokenDefaults: indexer.TokenDefaults{
			Name:     cfg.Token.DefaultName,
			Symbol:   cfg.Token.DefaultSymbol,
			Decimals: cfg.Token.DefaultDecimals,
		},
		TokenAddresses: cfg.Token.Addresses,
		FactoryAddress: cfg.Token.FactoryAddress,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create indexer engine", zap.Error(err))
	}

	// Initialize NATS consumer
	var natsConsumer messaging.Consumer
	connectNats := func() error {
		natsConsumer, err = jetstream.NewConsumer(jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			Chain:          cfg.Chain.Name,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
			ConsumerName:   cfg.NATS.ConsumerName,
			AckWaitTimeout: cfg.NATS.AckWait,
			MaxDeliver:     cfg.NATS.MaxDeliver,
		}, natsJS, jsonAdapter)
		return err
	}
	b.Reset()
	if err := backoff.Retry(connectNats, backoff.WithContext(b, ctx)); err != nil {
		logger.FatalCtx(ctx, "Failed to create NATS consumer", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer natsConsumer.Close()
	logger.InfoCtx(ctx, "Connected to NATS JetStream")

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Channel for consumer errors
	errCh := make(chan error, 1)

	// Start consuming
	go func() {
		handler := func(event *domain.ChainEvent) error {
			return engine.ProcessEvent(ctx, event)
		}
		if err := natsConsumer.Consume(ctx, handler); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "consumer"))
		cancel()
	}

	// Give some time for graceful shutdown
	time.Sleep(time.Second)

	// Use non-context logger for final shutdown message since context is already canceled
	logger.Info("Indexer stopped")
}
