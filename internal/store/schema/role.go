package schema

import (
	"gorm.io/datatypes"
)

// Role represents the roles table - one row per access-control role hash
type Role struct {
	// ID is the 32-byte role hash in hex
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Name is a best-effort human-readable label resolved from a static
	// table of well-known role hashes; "UNKNOWN_ROLE" otherwise
	Name string `gorm:"column:name;not null;type:text"`
	// AdminRoleID references the role that administers this one, when known
	AdminRoleID *string `gorm:"column:admin_role_id;type:text"`
	// Members is the ordered set of member addresses, insertion order preserved
	Members datatypes.JSONSlice[string] `gorm:"column:members"`
}

// TableName specifies the table name for the Role model
func (Role) TableName() string {
	return "roles"
}
