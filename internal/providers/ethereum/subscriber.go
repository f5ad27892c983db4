package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/PaulieB14/monad-usdc-indexer/internal/logger"
	"github.com/PaulieB14/monad-usdc-indexer/internal/messaging"
)

// Config holds the configuration for chain subscription
type Config struct {
	// WebSocketURL is the node endpoint (e.g. wss://monad-mainnet.example/ws)
	WebSocketURL string
	// ContractAddresses restricts the log filter to the watched token and
	// factory contracts. Empty means no address filter; the indexer still
	// drops events from unwatched contracts, this just cuts the firehose.
	ContractAddresses []string
}

type ethSubscriber struct {
	client    EthereumClient
	addresses []common.Address
}

// NewSubscriber creates a new chain event subscriber
func NewSubscriber(cfg Config, ethereumClient EthereumClient) (messaging.Subscriber, error) {
	addresses := make([]common.Address, 0, len(cfg.ContractAddresses))
	for _, address := range cfg.ContractAddresses {
		if !common.IsHexAddress(address) {
			return nil, fmt.Errorf("invalid contract address %q", address)
		}
		addresses = append(addresses, common.HexToAddress(address))
	}

	return &ethSubscriber{
		client:    ethereumClient,
		addresses: addresses,
	}, nil
}

// SubscribeEvents subscribes to transfer, approval, role and factory events
func (s *ethSubscriber) SubscribeEvents(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		Addresses: s.addresses,
		Topics: [][]common.Hash{
			{
				transferEventSignature,
				approvalEventSignature,
				roleGrantedEventSignature,
				roleRevokedEventSignature,
				roleAdminChangedEventSignature,
				tokenCreatedEventSignature,
			},
		},
	}

	logs := make(chan types.Log)
	sub, err := s.client.SubscribeFilterLogs(ctx, query, logs)
	if err != nil {
		return fmt.Errorf("failed to subscribe to filter logs: %w", err)
	}
	defer func() {
		logger.InfoCtx(ctx, "Unsubscribing from chain event logs")
		sub.Unsubscribe()
		logger.InfoCtx(ctx, "Unsubscribed from chain event logs")
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-sub.Err():
			return fmt.Errorf("subscription error: %w", err)
		case vLog := <-logs:
			event, err := s.client.ParseEventLog(ctx, vLog)
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.ErrorCtx(ctx, err, zap.String("message", "Error parsing log"))
				continue
			}

			if event == nil {
				continue
			}

			if err := handler(event); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("message", "Error handling event"))
			}
		}
	}
}

// GetLatestBlock returns the latest block number
func (s *ethSubscriber) GetLatestBlock(ctx context.Context) (uint64, error) {
	header, err := s.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	return header.Number.Uint64(), nil
}

// Close closes the connection
func (s *ethSubscriber) Close() {
	if s.client == nil {
		return
	}

	s.client.Close()
	logger.Info("Chain WebSocket connection closed")
}
