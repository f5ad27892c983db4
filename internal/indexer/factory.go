package indexer

import (
	"context"

	"go.uber.org/zap"

	"github.com/PaulieB14/monad-usdc-indexer/internal/domain"
	"github.com/PaulieB14/monad-usdc-indexer/internal/logger"
	"github.com/PaulieB14/monad-usdc-indexer/internal/store"
	"github.com/PaulieB14/monad-usdc-indexer/internal/store/schema"
	"github.com/PaulieB14/monad-usdc-indexer/internal/types"
)

// applyTokenCreated bumps the factory's token count, writes the token row
// with default metadata and creation provenance, and registers the new
// contract so its own events are processed from here on. An existing row for
// the token address is overwritten wholesale, zeroed aggregates included.
func (e *Engine) applyTokenCreated(ctx context.Context, tx store.Store, event *domain.ChainEvent) error {
	factoryID := domain.HexAddressID(event.ContractAddress)
	tokenID := domain.HexAddressID(event.Token)
	creator := domain.HexAddressID(event.Creator)

	factory, err := tx.GetFactory(ctx, factoryID)
	if err != nil {
		return err
	}
	if factory == nil {
		factory = &schema.Factory{
			ID:         factoryID,
			TokenCount: types.NewBigInt(0),
		}
	}
	factory.TokenCount.Inc()
	if err := tx.SaveFactory(ctx, factory); err != nil {
		return err
	}

	createdAt := event.Timestamp
	blockNumber := event.BlockNumber
	token := &schema.Token{
		ID:                   tokenID,
		Name:                 e.defaults.Name,
		Symbol:               e.defaults.Symbol,
		Decimals:             e.defaults.Decimals,
		TotalSupply:          types.NewBigInt(0),
		TotalTransfers:       types.NewBigInt(0),
		TotalMints:           types.NewBigInt(0),
		TotalBurns:           types.NewBigInt(0),
		HolderCount:          types.NewBigInt(0),
		TransferCount:        types.NewBigInt(0),
		ApprovalCount:        types.NewBigInt(0),
		FactoryID:            &factory.ID,
		Creator:              &creator,
		CreatedAtTimestamp:   &createdAt,
		CreatedAtBlockNumber: &blockNumber,
	}
	if err := tx.SaveToken(ctx, token); err != nil {
		return err
	}

	if err := tx.WatchContract(ctx, tokenID, e.clock.Now()); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "registered factory-created token",
		zap.String("token", tokenID),
		zap.String("factory", factoryID),
		zap.String("creator", creator))

	return nil
}
