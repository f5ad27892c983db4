package schema

import (
	"time"

	"github.com/PaulieB14/monad-usdc-indexer/internal/types"
)

// Transfer represents the transfers table - an append-only record per
// transfer log, keyed by (transaction hash, log index)
type Transfer struct {
	// ID is hex(txHash ++ big-endian uint32 logIndex)
	ID string `gorm:"column:id;primaryKey;type:text"`
	// FromID references the sending account
	FromID string `gorm:"column:from_id;not null;type:text;index:idx_transfers_from"`
	// ToID references the receiving account
	ToID string `gorm:"column:to_id;not null;type:text;index:idx_transfers_to"`
	// Value is the transferred amount
	Value *types.BigInt `gorm:"column:value;not null"`
	// TokenID references the emitting token contract
	TokenID string `gorm:"column:token_id;not null;type:text;index:idx_transfers_token"`
	// TransactionID references the containing transaction
	TransactionID string `gorm:"column:transaction_id;not null;type:text"`
	// IsMint is true when the transfer originated from the zero address
	IsMint bool `gorm:"column:is_mint;not null"`
	// IsBurn is true when the transfer was destined to the zero address
	IsBurn bool `gorm:"column:is_burn;not null"`
	// BlockNumber is the block containing the log
	BlockNumber uint64 `gorm:"column:block_number;not null"`
	// BlockTimestamp is the block timestamp
	BlockTimestamp time.Time `gorm:"column:block_timestamp;not null;type:timestamptz"`
	// TransactionHash is the raw transaction hash
	TransactionHash string `gorm:"column:transaction_hash;not null;type:text"`
}

// TableName specifies the table name for the Transfer model
func (Transfer) TableName() string {
	return "transfers"
}
