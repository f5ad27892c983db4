// Package indexer applies normalized chain events to the aggregated token
// state: entity upserts, running counters, balance snapshots, role membership
// and daily rollups. Events must arrive in non-decreasing
// (block, transaction index, log index) order; each event is applied inside a
// single database transaction so a crash never leaves partial state.
package indexer

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/PaulieB14/monad-usdc-indexer/internal/adapter"
	"github.com/PaulieB14/monad-usdc-indexer/internal/domain"
	"github.com/PaulieB14/monad-usdc-indexer/internal/logger"
	"github.com/PaulieB14/monad-usdc-indexer/internal/store"
	"github.com/PaulieB14/monad-usdc-indexer/internal/types"
)

// TokenDefaults is the static metadata assigned to tokens on first sight.
// Metadata is never fetched from the chain, so a wrong default stays wrong.
type TokenDefaults struct {
	Name     string
	Symbol   string
	Decimals uint8
}

// Config holds the engine configuration
type Config struct {
	// TokenDefaults seeds the metadata of newly observed tokens
	TokenDefaults TokenDefaults
	// TokenAddresses are the token contracts watched from the start
	TokenAddresses []string
	// FactoryAddress is the token factory contract; empty disables
	// factory event handling
	FactoryAddress string
}

// Engine is the event processor. It is not safe for concurrent ProcessEvent
// calls by design: the stream contract is strictly sequential.
type Engine struct {
	store    store.Store
	clock    adapter.Clock
	defaults TokenDefaults
	factory  string

	mu      sync.Mutex
	watched *types.OrderedSet
	lastSeq domain.Sequence
	started bool
}

// NewEngine creates an engine and registers the configured contracts as
// watched, merging in any contracts persisted by earlier runs (tokens
// registered through the factory survive restarts this way).
func NewEngine(ctx context.Context, s store.Store, clock adapter.Clock, cfg Config) (*Engine, error) {
	e := &Engine{
		store:    s,
		clock:    clock,
		defaults: cfg.TokenDefaults,
		watched:  types.NewOrderedSet(),
	}

	persisted, err := s.WatchedContracts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load watched contracts: %w", err)
	}
	for _, address := range persisted {
		e.watched.Add(address)
	}

	for _, address := range cfg.TokenAddresses {
		if err := e.watch(ctx, s, domain.HexAddressID(address)); err != nil {
			return nil, err
		}
	}

	if cfg.FactoryAddress != "" {
		e.factory = domain.HexAddressID(cfg.FactoryAddress)
		if err := e.watch(ctx, s, e.factory); err != nil {
			return nil, err
		}
	}

	return e, nil
}

func (e *Engine) watch(ctx context.Context, s store.Store, address string) error {
	if !e.watched.Add(address) {
		return nil
	}
	if err := s.WatchContract(ctx, address, e.clock.Now()); err != nil {
		return fmt.Errorf("failed to watch contract %s: %w", address, err)
	}
	return nil
}

// IsContractWatched reports whether events from the given address are processed
func (e *Engine) IsContractWatched(address string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.watched.Contains(domain.HexAddressID(address))
}

// ProcessEvent validates, orders and applies one chain event. Events from
// unwatched contracts are skipped without error. A malformed or regressing
// event returns an error wrapping domain.ErrMalformedEvent or
// domain.ErrOutOfOrderEvent; storage errors are returned as-is so the caller
// can retry the delivery.
func (e *Engine) ProcessEvent(ctx context.Context, event *domain.ChainEvent) error {
	if !event.Valid() {
		return fmt.Errorf("%w: kind=%s tx=%s log=%d",
			domain.ErrMalformedEvent, event.Kind, event.TxHash, event.LogIndex)
	}

	seq := event.Sequence()
	e.mu.Lock()
	if e.started && seq.Before(e.lastSeq) {
		last := e.lastSeq
		e.mu.Unlock()
		return fmt.Errorf("%w: got (%d,%d,%d) after (%d,%d,%d)",
			domain.ErrOutOfOrderEvent,
			seq.BlockNumber, seq.TxIndex, seq.LogIndex,
			last.BlockNumber, last.TxIndex, last.LogIndex)
	}
	e.lastSeq = seq
	e.started = true

	contract := domain.HexAddressID(event.ContractAddress)
	isFactoryEvent := event.Kind == domain.EventKindTokenCreated
	watched := e.watched.Contains(contract)
	e.mu.Unlock()

	if isFactoryEvent {
		if contract != e.factory {
			logger.WarnCtx(ctx, "token created event from unexpected contract",
				zap.String("contract", contract),
				zap.String("factory", e.factory))
			return nil
		}
	} else if !watched {
		logger.DebugCtx(ctx, "skipping event from unwatched contract",
			zap.String("contract", contract),
			zap.String("kind", string(event.Kind)))
		return nil
	}

	err := e.store.Transactionally(ctx, func(tx store.Store) error {
		switch event.Kind {
		case domain.EventKindTransfer:
			return e.applyTransfer(ctx, tx, event)
		case domain.EventKindApproval:
			return e.applyApproval(ctx, tx, event)
		case domain.EventKindRoleGranted:
			return e.applyRoleGranted(ctx, tx, event)
		case domain.EventKindRoleRevoked:
			return e.applyRoleRevoked(ctx, tx, event)
		case domain.EventKindRoleAdminChanged:
			return e.applyRoleAdminChanged(ctx, tx, event)
		case domain.EventKindTokenCreated:
			return e.applyTokenCreated(ctx, tx, event)
		default:
			return fmt.Errorf("%w: %s", domain.ErrUnknownEventKind, event.Kind)
		}
	})
	if err != nil {
		return err
	}

	if isFactoryEvent {
		e.mu.Lock()
		e.watched.Add(domain.HexAddressID(event.Token))
		e.mu.Unlock()
	}

	return nil
}
