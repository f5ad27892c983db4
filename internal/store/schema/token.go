package schema

import (
	"time"

	"github.com/PaulieB14/monad-usdc-indexer/internal/types"
)

// Token represents the tokens table - one row per indexed token contract,
// keyed by the lowercase hex contract address
type Token struct {
	// ID is the lowercase hex contract address
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Name is the token name (static default; never fetched from chain)
	Name string `gorm:"column:name;not null;type:text"`
	// Symbol is the token symbol
	Symbol string `gorm:"column:symbol;not null;type:text"`
	// Decimals is the token decimal count
	Decimals uint8 `gorm:"column:decimals;not null"`
	// TotalSupply is the current supply: sum of mint values minus sum of burn values
	TotalSupply *types.BigInt `gorm:"column:total_supply;not null"`
	// TotalTransfers counts every transfer event processed for this token
	TotalTransfers *types.BigInt `gorm:"column:total_transfers;not null"`
	// TotalMints counts transfers originating from the zero address
	TotalMints *types.BigInt `gorm:"column:total_mints;not null"`
	// TotalBurns counts transfers destined to the zero address
	TotalBurns *types.BigInt `gorm:"column:total_burns;not null"`
	// HolderCount counts accounts ever created for this token
	HolderCount *types.BigInt `gorm:"column:holder_count;not null"`
	// TransferCount mirrors TotalTransfers (kept for schema compatibility)
	TransferCount *types.BigInt `gorm:"column:transfer_count;not null"`
	// ApprovalCount counts every approval event processed for this token
	ApprovalCount *types.BigInt `gorm:"column:approval_count;not null"`
	// FactoryID references the factory that created this token, when known
	FactoryID *string `gorm:"column:factory_id;type:text"`
	// Creator is the address that requested creation through the factory
	Creator *string `gorm:"column:creator;type:text"`
	// CreatedAtTimestamp is the block timestamp of the creation event
	CreatedAtTimestamp *time.Time `gorm:"column:created_at_timestamp;type:timestamptz"`
	// CreatedAtBlockNumber is the block number of the creation event
	CreatedAtBlockNumber *uint64 `gorm:"column:created_at_block_number"`
}

// TableName specifies the table name for the Token model
func (Token) TableName() string {
	return "tokens"
}
