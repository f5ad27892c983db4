package schema

import "time"

// WatchedContract represents the watched_contracts table - the set of
// contract addresses the indexer accepts events from. Factory-created tokens
// land here when their TokenCreated event is processed, so the registry
// survives restarts.
type WatchedContract struct {
	// Address is the lowercase hex contract address
	Address string `gorm:"column:address;primaryKey;type:text"`
	// RegisteredAt is the wall-clock time the contract was registered
	RegisteredAt time.Time `gorm:"column:registered_at;not null;type:timestamptz"`
}

// TableName specifies the table name for the WatchedContract model
func (WatchedContract) TableName() string {
	return "watched_contracts"
}
