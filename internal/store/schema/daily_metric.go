package schema

import (
	"time"

	"github.com/PaulieB14/monad-usdc-indexer/internal/types"
)

// DailyMetric represents the daily_metrics table - one row per (token, UTC
// day bucket) accumulating activity counters. The bucket index is
// floor(block timestamp / 86400).
type DailyMetric struct {
	// ID is the token id and day bucket joined by "-"
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Date is the human-readable UTC date, set when the row is created and
	// never rewritten afterwards
	Date string `gorm:"column:date;not null;type:text"`
	// Timestamp is the block timestamp of the first event observed in the
	// bucket, set when the row is created
	Timestamp time.Time `gorm:"column:timestamp;not null;type:timestamptz"`
	// DailyTransferCount is the number of transfers seen in the bucket
	DailyTransferCount *types.BigInt `gorm:"column:daily_transfer_count;not null"`
	// DailyTransferVolume is the summed transfer value in the bucket
	DailyTransferVolume *types.BigInt `gorm:"column:daily_transfer_volume;not null"`
	// DailyActiveAccounts counts transfer occurrences, not distinct addresses
	DailyActiveAccounts *types.BigInt `gorm:"column:daily_active_accounts;not null"`
	// DailyMintCount is the number of mints seen in the bucket
	DailyMintCount *types.BigInt `gorm:"column:daily_mint_count;not null"`
	// DailyMintVolume is the summed mint value in the bucket
	DailyMintVolume *types.BigInt `gorm:"column:daily_mint_volume;not null"`
	// DailyBurnCount is the number of burns seen in the bucket
	DailyBurnCount *types.BigInt `gorm:"column:daily_burn_count;not null"`
	// DailyBurnVolume is the summed burn value in the bucket
	DailyBurnVolume *types.BigInt `gorm:"column:daily_burn_volume;not null"`
	// TokenID references the token the bucket belongs to
	TokenID string `gorm:"column:token_id;not null;type:text;index:idx_daily_metrics_token_id"`
}

// TableName specifies the table name for the DailyMetric model
func (DailyMetric) TableName() string {
	return "daily_metrics"
}
