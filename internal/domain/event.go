package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// EventKind represents the type of contract log event
type EventKind string

const (
	EventKindTransfer         EventKind = "transfer"
	EventKindApproval         EventKind = "approval"
	EventKindRoleGranted      EventKind = "role_granted"
	EventKindRoleRevoked      EventKind = "role_revoked"
	EventKindRoleAdminChanged EventKind = "role_admin_changed"
	EventKindTokenCreated     EventKind = "token_created"
)

// ChainEvent represents a normalized contract log event.
// This is the standard format published to NATS and consumed by the indexer.
// Only the parameter fields matching Kind are populated.
type ChainEvent struct {
	Kind            EventKind `json:"kind"`
	ContractAddress string    `json:"contract_address"` // emitting contract
	BlockNumber     uint64    `json:"block_number"`
	Timestamp       time.Time `json:"timestamp"` // block timestamp
	TxHash          string    `json:"tx_hash"`
	TxIndex         uint64    `json:"tx_index"`
	LogIndex        uint64    `json:"log_index"`

	// Transfer parameters
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`

	// Approval parameters
	Owner   string `json:"owner,omitempty"`
	Spender string `json:"spender,omitempty"`

	// Transfer/Approval amount as a decimal string (uint256 range)
	Value string `json:"value,omitempty"`

	// Role parameters. Role ids are 32-byte hashes in hex.
	Role              string `json:"role,omitempty"`
	Account           string `json:"account,omitempty"`
	Sender            string `json:"sender,omitempty"`
	PreviousAdminRole string `json:"previous_admin_role,omitempty"`
	NewAdminRole      string `json:"new_admin_role,omitempty"`

	// TokenCreated parameters
	Token   string `json:"token,omitempty"`
	Creator string `json:"creator,omitempty"`
}

// Valid reports whether the event carries a well-formed identity and the
// parameters its kind requires. Events from a trusted source are expected to
// always pass; a failure is fatal to that event's processing.
func (e *ChainEvent) Valid() bool {
	if !common.IsHexAddress(e.ContractAddress) {
		return false
	}
	if !validHash(e.TxHash) {
		return false
	}

	switch e.Kind {
	case EventKindTransfer:
		return common.IsHexAddress(e.From) && common.IsHexAddress(e.To) && validAmount(e.Value)
	case EventKindApproval:
		return common.IsHexAddress(e.Owner) && common.IsHexAddress(e.Spender) && validAmount(e.Value)
	case EventKindRoleGranted, EventKindRoleRevoked:
		return validHash(e.Role) && common.IsHexAddress(e.Account) && common.IsHexAddress(e.Sender)
	case EventKindRoleAdminChanged:
		return validHash(e.Role) && validHash(e.PreviousAdminRole) && validHash(e.NewAdminRole)
	case EventKindTokenCreated:
		return common.IsHexAddress(e.Token) && common.IsHexAddress(e.Creator)
	default:
		return false
	}
}

// Sequence returns the canonical ordering key of the event
func (e *ChainEvent) Sequence() Sequence {
	return Sequence{
		BlockNumber: e.BlockNumber,
		TxIndex:     e.TxIndex,
		LogIndex:    e.LogIndex,
	}
}

// Sequence is the canonical (block, transaction index, log index) ordering
// key. The event source guarantees non-decreasing delivery by this key; the
// indexer rejects any regression rather than reordering.
type Sequence struct {
	BlockNumber uint64
	TxIndex     uint64
	LogIndex    uint64
}

// Before reports whether s orders strictly before other
func (s Sequence) Before(other Sequence) bool {
	if s.BlockNumber != other.BlockNumber {
		return s.BlockNumber < other.BlockNumber
	}
	if s.TxIndex != other.TxIndex {
		return s.TxIndex < other.TxIndex
	}
	return s.LogIndex < other.LogIndex
}

func validAmount(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// validHash accepts a 0x-prefixed 32-byte hex string: transaction hashes and
// role ids. A non-hex digit anywhere fails; common.HexToHash would otherwise
// silently map it to the zero hash and collide ids.
func validHash(s string) bool {
	if len(s) != 2+2*common.HashLength || s[:2] != "0x" {
		return false
	}
	for _, c := range s[2:] {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}
