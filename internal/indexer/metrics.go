package indexer

import (
	"context"

	"github.com/PaulieB14/monad-usdc-indexer/internal/domain"
	"github.com/PaulieB14/monad-usdc-indexer/internal/store"
	"github.com/PaulieB14/monad-usdc-indexer/internal/types"
)

// accumulateDailyMetric folds one transfer into the token's UTC day bucket.
// Active accounts counts transfer occurrences, not distinct addresses.
func accumulateDailyMetric(ctx context.Context, tx store.Store, tokenID string, event *domain.ChainEvent, value *types.BigInt, isMint, isBurn bool) error {
	metric, err := fetchOrCreateDailyMetric(ctx, tx, tokenID, event.Timestamp)
	if err != nil {
		return err
	}

	metric.DailyTransferCount.Inc()
	metric.DailyTransferVolume.Add(&value.Int)
	if isMint {
		metric.DailyMintCount.Inc()
		metric.DailyMintVolume.Add(&value.Int)
	} else if isBurn {
		metric.DailyBurnCount.Inc()
		metric.DailyBurnVolume.Add(&value.Int)
	}
	metric.DailyActiveAccounts.Inc()

	return tx.SaveDailyMetric(ctx, metric)
}
