package schema

import "time"

// Transaction represents the transactions table - one immutable row per
// chain transaction hash, created on the first event seen within it
type Transaction struct {
	// ID is the hex transaction hash
	ID string `gorm:"column:id;primaryKey;type:text"`
	// BlockNumber is the block containing the transaction
	BlockNumber uint64 `gorm:"column:block_number;not null"`
	// Timestamp is the block timestamp
	Timestamp time.Time `gorm:"column:timestamp;not null;type:timestamptz"`
}

// TableName specifies the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}
