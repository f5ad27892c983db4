package schema

import (
	"time"

	"github.com/PaulieB14/monad-usdc-indexer/internal/types"
)

// Approval represents the approvals table - an append-only record per
// approval log, keyed by (transaction hash, log index)
type Approval struct {
	// ID is hex(txHash ++ big-endian uint32 logIndex)
	ID string `gorm:"column:id;primaryKey;type:text"`
	// OwnerID references the granting account
	OwnerID string `gorm:"column:owner_id;not null;type:text;index:idx_approvals_owner"`
	// SpenderID references the approved account
	SpenderID string `gorm:"column:spender_id;not null;type:text"`
	// Value is the approved allowance
	Value *types.BigInt `gorm:"column:value;not null"`
	// TokenID references the emitting token contract
	TokenID string `gorm:"column:token_id;not null;type:text;index:idx_approvals_token"`
	// TransactionID references the containing transaction
	TransactionID string `gorm:"column:transaction_id;not null;type:text"`
	// BlockNumber is the block containing the log
	BlockNumber uint64 `gorm:"column:block_number;not null"`
	// BlockTimestamp is the block timestamp
	BlockTimestamp time.Time `gorm:"column:block_timestamp;not null;type:timestamptz"`
	// TransactionHash is the raw transaction hash
	TransactionHash string `gorm:"column:transaction_hash;not null;type:text"`
}

// TableName specifies the table name for the Approval model
func (Approval) TableName() string {
	return "approvals"
}
