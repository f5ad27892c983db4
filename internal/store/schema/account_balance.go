package schema

import (
	"time"

	"github.com/PaulieB14/monad-usdc-indexer/internal/types"
)

// AccountBalance represents the account_balances table - a per-block snapshot
// of an account's balance taken after the transfer that touched it.
type AccountBalance struct {
	// ID is the account id and block number joined by "-"
	ID string `gorm:"column:id;primaryKey;type:text"`
	// AccountID references the snapshotted account
	AccountID string `gorm:"column:account_id;not null;type:text;index:idx_account_balances_account_id"`
	// TokenID references the token the balance is denominated in
	TokenID string `gorm:"column:token_id;not null;type:text"`
	// Value is the account balance after the triggering transfer was applied
	Value *types.BigInt `gorm:"column:value;not null"`
	// BlockNumber is the block the snapshot was taken at
	BlockNumber uint64 `gorm:"column:block_number;not null"`
	// Timestamp is the block timestamp
	Timestamp time.Time `gorm:"column:timestamp;not null;type:timestamptz"`
}

// TableName specifies the table name for the AccountBalance model
func (AccountBalance) TableName() string {
	return "account_balances"
}
