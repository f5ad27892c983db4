package indexer

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/PaulieB14/monad-usdc-indexer/internal/domain"
	"github.com/PaulieB14/monad-usdc-indexer/internal/store"
	"github.com/PaulieB14/monad-usdc-indexer/internal/store/schema"
	"github.com/PaulieB14/monad-usdc-indexer/internal/types"
)

// applyTransfer folds one transfer into the ledger: token counters and
// supply, both account balances, per-block balance snapshots, the daily
// rollup bucket, and the immutable transfer record. A zero-address source is
// a mint, a zero-address destination a burn; the zero-address leg of either
// keeps its balance untouched and gets no snapshot.
func (e *Engine) applyTransfer(ctx context.Context, tx store.Store, event *domain.ChainEvent) error {
	tokenID := domain.HexAddressID(event.ContractAddress)
	fromID := domain.HexAddressID(event.From)
	toID := domain.HexAddressID(event.To)

	value, err := types.NewBigIntFromString(event.Value)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedEvent, err)
	}

	isMint := fromID == domain.ZeroAddress
	isBurn := toID == domain.ZeroAddress

	token, err := e.fetchOrCreateToken(ctx, tx, tokenID)
	if err != nil {
		return err
	}
	token.TransferCount.Inc()
	token.TotalTransfers.Inc()
	if isMint {
		token.TotalSupply.Add(&value.Int)
		token.TotalMints.Inc()
	} else if isBurn {
		token.TotalSupply.Sub(&value.Int)
		token.TotalBurns.Inc()
	}
	if err := tx.SaveToken(ctx, token); err != nil {
		return err
	}

	from, err := e.fetchOrCreateAccount(ctx, tx, fromID, tokenID)
	if err != nil {
		return err
	}
	from.TransferCount.Inc()

	// A self-transfer must fold both legs into one row
	to := from
	if toID != fromID {
		if to, err = e.fetchOrCreateAccount(ctx, tx, toID, tokenID); err != nil {
			return err
		}
	}
	to.TransferCount.Inc()

	if !isMint {
		from.Balance.Sub(&value.Int)
		from.LastUpdated = event.Timestamp
		if err := snapshotBalance(ctx, tx, from, tokenID, event); err != nil {
			return err
		}
	}
	if !isBurn {
		to.Balance.Add(&value.Int)
		to.LastUpdated = event.Timestamp
		if err := snapshotBalance(ctx, tx, to, tokenID, event); err != nil {
			return err
		}
	}

	if err := tx.SaveAccount(ctx, from); err != nil {
		return err
	}
	if to != from {
		if err := tx.SaveAccount(ctx, to); err != nil {
			return err
		}
	}

	transaction, err := ensureTransaction(ctx, tx, event)
	if err != nil {
		return err
	}

	if err := accumulateDailyMetric(ctx, tx, tokenID, event, value, isMint, isBurn); err != nil {
		return err
	}

	return tx.CreateTransfer(ctx, &schema.Transfer{
		ID:              domain.EventRecordID(common.HexToHash(event.TxHash), event.LogIndex),
		FromID:          from.ID,
		ToID:            to.ID,
		Value:           value,
		TokenID:         token.ID,
		TransactionID:   transaction.ID,
		IsMint:          isMint,
		IsBurn:          isBurn,
		BlockNumber:     event.BlockNumber,
		BlockTimestamp:  event.Timestamp,
		TransactionHash: event.TxHash,
	})
}

// snapshotBalance records the account's post-update balance, keyed by account
// and block. A later update in the same block overwrites the snapshot.
func snapshotBalance(ctx context.Context, tx store.Store, account *schema.Account, tokenID string, event *domain.ChainEvent) error {
	return tx.SaveAccountBalance(ctx, &schema.AccountBalance{
		ID:          domain.AccountBalanceID(account.ID, event.BlockNumber),
		AccountID:   account.ID,
		TokenID:     tokenID,
		Value:       account.Balance.Clone(),
		BlockNumber: event.BlockNumber,
		Timestamp:   event.Timestamp,
	})
}

// applyApproval bumps the token and owner approval counters and records the
// approval. The spender only gets its activity timestamp refreshed; its own
// approval counter tracks approvals it grants, not ones it receives.
func (e *Engine) applyApproval(ctx context.Context, tx store.Store, event *domain.ChainEvent) error {
	tokenID := domain.HexAddressID(event.ContractAddress)
	ownerID := domain.HexAddressID(event.Owner)
	spenderID := domain.HexAddressID(event.Spender)

	value, err := types.NewBigIntFromString(event.Value)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedEvent, err)
	}

	token, err := e.fetchOrCreateToken(ctx, tx, tokenID)
	if err != nil {
		return err
	}
	token.ApprovalCount.Inc()
	if err := tx.SaveToken(ctx, token); err != nil {
		return err
	}

	owner, err := e.fetchOrCreateAccount(ctx, tx, ownerID, tokenID)
	if err != nil {
		return err
	}
	owner.ApprovalCount.Inc()
	owner.LastUpdated = event.Timestamp

	spender := owner
	if spenderID != ownerID {
		if spender, err = e.fetchOrCreateAccount(ctx, tx, spenderID, tokenID); err != nil {
			return err
		}
	}
	spender.LastUpdated = event.Timestamp

	if err := tx.SaveAccount(ctx, owner); err != nil {
		return err
	}
	if spender != owner {
		if err := tx.SaveAccount(ctx, spender); err != nil {
			return err
		}
	}

	transaction, err := ensureTransaction(ctx, tx, event)
	if err != nil {
		return err
	}

	return tx.CreateApproval(ctx, &schema.Approval{
		ID:              domain.EventRecordID(common.HexToHash(event.TxHash), event.LogIndex),
		OwnerID:         owner.ID,
		SpenderID:       spender.ID,
		Value:           value,
		TokenID:         token.ID,
		TransactionID:   transaction.ID,
		BlockNumber:     event.BlockNumber,
		BlockTimestamp:  event.Timestamp,
		TransactionHash: event.TxHash,
	})
}
