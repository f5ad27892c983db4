package schema

import "github.com/PaulieB14/monad-usdc-indexer/internal/types"

// Factory represents the factories table - one row per token factory contract
type Factory struct {
	// ID is the lowercase hex factory contract address
	ID string `gorm:"column:id;primaryKey;type:text"`
	// TokenCount is the number of tokens the factory has deployed
	TokenCount *types.BigInt `gorm:"column:token_count;not null"`
}

// TableName specifies the table name for the Factory model
func (Factory) TableName() string {
	return "factories"
}
