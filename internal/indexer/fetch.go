package indexer

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/PaulieB14/monad-usdc-indexer/internal/domain"
	"github.com/PaulieB14/monad-usdc-indexer/internal/store"
	"github.com/PaulieB14/monad-usdc-indexer/internal/store/schema"
	"github.com/PaulieB14/monad-usdc-indexer/internal/types"
)

// Fetch-or-create helpers. Each loads an entity by id and lazily creates it
// with zeroed aggregates when absent, persisting the fresh row immediately so
// a later lookup within the same event sees it.

func (e *Engine) fetchOrCreateToken(ctx context.Context, tx store.Store, id string) (*schema.Token, error) {
	token, err := tx.GetToken(ctx, id)
	if err != nil || token != nil {
		return token, err
	}

	token = &schema.Token{
		ID:             id,
		Name:           e.defaults.Name,
		Symbol:         e.defaults.Symbol,
		Decimals:       e.defaults.Decimals,
		TotalSupply:    types.NewBigInt(0),
		TotalTransfers: types.NewBigInt(0),
		TotalMints:     types.NewBigInt(0),
		TotalBurns:     types.NewBigInt(0),
		HolderCount:    types.NewBigInt(0),
		TransferCount:  types.NewBigInt(0),
		ApprovalCount:  types.NewBigInt(0),
	}
	if err := tx.SaveToken(ctx, token); err != nil {
		return nil, err
	}
	return token, nil
}

// fetchOrCreateAccount creates the account on first sight and counts it
// toward the token's holder count, zero address included. The count is a
// count of accounts ever seen, not of current non-zero balances.
func (e *Engine) fetchOrCreateAccount(ctx context.Context, tx store.Store, id, tokenID string) (*schema.Account, error) {
	account, err := tx.GetAccount(ctx, id)
	if err != nil || account != nil {
		return account, err
	}

	account = &schema.Account{
		ID:            id,
		Balance:       types.NewBigInt(0),
		TransferCount: types.NewBigInt(0),
		ApprovalCount: types.NewBigInt(0),
		TokenID:       tokenID,
	}
	if err := tx.SaveAccount(ctx, account); err != nil {
		return nil, err
	}

	token, err := e.fetchOrCreateToken(ctx, tx, tokenID)
	if err != nil {
		return nil, err
	}
	token.HolderCount.Inc()
	if err := tx.SaveToken(ctx, token); err != nil {
		return nil, err
	}

	return account, nil
}

func ensureTransaction(ctx context.Context, tx store.Store, event *domain.ChainEvent) (*schema.Transaction, error) {
	id := domain.TransactionID(common.HexToHash(event.TxHash))
	transaction, err := tx.GetTransaction(ctx, id)
	if err != nil || transaction != nil {
		return transaction, err
	}

	transaction = &schema.Transaction{
		ID:          id,
		BlockNumber: event.BlockNumber,
		Timestamp:   event.Timestamp,
	}
	if err := tx.SaveTransaction(ctx, transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

func fetchOrCreateDailyMetric(ctx context.Context, tx store.Store, tokenID string, ts time.Time) (*schema.DailyMetric, error) {
	id := domain.DailyMetricID(tokenID, ts)
	metric, err := tx.GetDailyMetric(ctx, id)
	if err != nil || metric != nil {
		return metric, err
	}

	metric = &schema.DailyMetric{
		ID:                  id,
		Date:                domain.FormatDate(ts),
		Timestamp:           ts,
		DailyTransferCount:  types.NewBigInt(0),
		DailyTransferVolume: types.NewBigInt(0),
		DailyActiveAccounts: types.NewBigInt(0),
		DailyMintCount:      types.NewBigInt(0),
		DailyMintVolume:     types.NewBigInt(0),
		DailyBurnCount:      types.NewBigInt(0),
		DailyBurnVolume:     types.NewBigInt(0),
		TokenID:             tokenID,
	}
	if err := tx.SaveDailyMetric(ctx, metric); err != nil {
		return nil, err
	}
	return metric, nil
}
