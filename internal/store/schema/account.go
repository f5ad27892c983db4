package schema

import (
	"time"

	"github.com/PaulieB14/monad-usdc-indexer/internal/types"
)

// Account represents the accounts table - one row per address observed
// interacting with a token, keyed by the lowercase hex address
type Account struct {
	// ID is the lowercase hex account address
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Balance is the running balance. Signed: a malformed or replayed stream
	// can drive it negative, which is an invariant violation consumers can
	// detect, not a crash.
	Balance *types.BigInt `gorm:"column:balance;not null"`
	// TransferCount counts transfers this account participated in, either side
	TransferCount *types.BigInt `gorm:"column:transfer_count;not null"`
	// ApprovalCount counts approvals granted by this account as owner
	ApprovalCount *types.BigInt `gorm:"column:approval_count;not null"`
	// LastUpdated is the block timestamp of the last balance or approval activity
	LastUpdated time.Time `gorm:"column:last_updated;type:timestamptz"`
	// TokenID references the owning token contract
	TokenID string `gorm:"column:token_id;not null;type:text;index:idx_accounts_token"`
}

// TableName specifies the table name for the Account model
func (Account) TableName() string {
	return "accounts"
}
