package schema

import "time"

// RoleGranted represents the role_granted_events table - an append-only
// record per RoleGranted log, keyed by (transaction hash, log index)
type RoleGranted struct {
	// ID is hex(txHash ++ big-endian uint32 logIndex)
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Role is the raw 32-byte role hash in hex
	Role string `gorm:"column:role;not null;type:text;index:idx_role_granted_role"`
	// Account is the address granted the role
	Account string `gorm:"column:account;not null;type:text"`
	// Sender is the address that performed the grant
	Sender string `gorm:"column:sender;not null;type:text"`
	// BlockNumber is the block containing the log
	BlockNumber uint64 `gorm:"column:block_number;not null"`
	// BlockTimestamp is the block timestamp
	BlockTimestamp time.Time `gorm:"column:block_timestamp;not null;type:timestamptz"`
	// TransactionHash is the raw transaction hash
	TransactionHash string `gorm:"column:transaction_hash;not null;type:text"`
}

// TableName specifies the table name for the RoleGranted model
func (RoleGranted) TableName() string {
	return "role_granted_events"
}

// RoleRevoked represents the role_revoked_events table - an append-only
// record per RoleRevoked log, keyed by (transaction hash, log index)
type RoleRevoked struct {
	// ID is hex(txHash ++ big-endian uint32 logIndex)
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Role is the raw 32-byte role hash in hex
	Role string `gorm:"column:role;not null;type:text;index:idx_role_revoked_role"`
	// Account is the address revoked from the role
	Account string `gorm:"column:account;not null;type:text"`
	// Sender is the address that performed the revocation
	Sender string `gorm:"column:sender;not null;type:text"`
	// BlockNumber is the block containing the log
	BlockNumber uint64 `gorm:"column:block_number;not null"`
	// BlockTimestamp is the block timestamp
	BlockTimestamp time.Time `gorm:"column:block_timestamp;not null;type:timestamptz"`
	// TransactionHash is the raw transaction hash
	TransactionHash string `gorm:"column:transaction_hash;not null;type:text"`
}

// TableName specifies the table name for the RoleRevoked model
func (RoleRevoked) TableName() string {
	return "role_revoked_events"
}

// RoleAdminChanged represents the role_admin_changed_events table - an
// append-only record per RoleAdminChanged log. Both the previous and the new
// admin role hashes are kept for audit even though the Role relationship
// pointer only reflects the new value.
type RoleAdminChanged struct {
	// ID is hex(txHash ++ big-endian uint32 logIndex)
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Role is the raw 32-byte role hash whose admin changed
	Role string `gorm:"column:role;not null;type:text;index:idx_role_admin_changed_role"`
	// PreviousAdminRole is the raw hash of the admin role before the change
	PreviousAdminRole string `gorm:"column:previous_admin_role;not null;type:text"`
	// NewAdminRole is the raw hash of the admin role after the change
	NewAdminRole string `gorm:"column:new_admin_role;not null;type:text"`
	// BlockNumber is the block containing the log
	BlockNumber uint64 `gorm:"column:block_number;not null"`
	// BlockTimestamp is the block timestamp
	BlockTimestamp time.Time `gorm:"column:block_timestamp;not null;type:timestamptz"`
	// TransactionHash is the raw transaction hash
	TransactionHash string `gorm:"column:transaction_hash;not null;type:text"`
}

// TableName specifies the table name for the RoleAdminChanged model
func (RoleAdminChanged) TableName() string {
	return "role_admin_changed_events"
}
