package indexer

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"gorm.io/datatypes"

	"github.com/PaulieB14/monad-usdc-indexer/internal/domain"
	"github.com/PaulieB14/monad-usdc-indexer/internal/store"
	"github.com/PaulieB14/monad-usdc-indexer/internal/store/schema"
	"github.com/PaulieB14/monad-usdc-indexer/internal/types"
)

// UnknownRoleName labels role hashes outside the static lookup table
const UnknownRoleName = "UNKNOWN_ROLE"

// wellKnownRoles maps keccak256 role hashes to their Solidity constant names.
// Resolution happens once, when the role row is created; a hash that later
// becomes well-known keeps its original label.
var wellKnownRoles = map[string]string{
	"0x0000000000000000000000000000000000000000000000000000000000000000": "DEFAULT_ADMIN_ROLE",
	"0x9f2df0fed2c77648de5860a4cc508cd0818c85b8b8a1ab4ceeef8d981c8956a6": "MINTER_ROLE",
	"0x3c11d16cbaffd01df69ce1c404f6340ee057498f5f00246190ea54220576a848": "BURNER_ROLE",
}

// RoleName resolves a role hash to its well-known name, if any
func RoleName(roleID string) string {
	if name, ok := wellKnownRoles[roleID]; ok {
		return name
	}
	return UnknownRoleName
}

func fetchOrCreateRole(ctx context.Context, tx store.Store, id string) (*schema.Role, error) {
	role, err := tx.GetRole(ctx, id)
	if err != nil || role != nil {
		return role, err
	}

	role = &schema.Role{
		ID:      id,
		Name:    RoleName(id),
		Members: datatypes.JSONSlice[string]{},
	}
	if err := tx.SaveRole(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

// applyRoleGranted adds the account to the role's member set and records the
// grant. A grant for an address already holding the role leaves the member
// set untouched but still produces a record.
func (e *Engine) applyRoleGranted(ctx context.Context, tx store.Store, event *domain.ChainEvent) error {
	roleID := domain.RoleID(common.HexToHash(event.Role))
	accountID := domain.HexAddressID(event.Account)

	role, err := fetchOrCreateRole(ctx, tx, roleID)
	if err != nil {
		return err
	}

	members := types.NewOrderedSet(role.Members...)
	if members.Add(accountID) {
		role.Members = members.Items()
		if err := tx.SaveRole(ctx, role); err != nil {
			return err
		}
	}

	return tx.CreateRoleGranted(ctx, &schema.RoleGranted{
		ID:              domain.EventRecordID(common.HexToHash(event.TxHash), event.LogIndex),
		Role:            roleID,
		Account:         accountID,
		Sender:          domain.HexAddressID(event.Sender),
		BlockNumber:     event.BlockNumber,
		BlockTimestamp:  event.Timestamp,
		TransactionHash: event.TxHash,
	})
}

// applyRoleRevoked removes the account from the role's member set, keeping
// the order of the remaining members, and records the revocation. Revoking a
// non-member is a no-op on the set.
func (e *Engine) applyRoleRevoked(ctx context.Context, tx store.Store, event *domain.ChainEvent) error {
	roleID := domain.RoleID(common.HexToHash(event.Role))
	accountID := domain.HexAddressID(event.Account)

	role, err := fetchOrCreateRole(ctx, tx, roleID)
	if err != nil {
		return err
	}

	members := types.NewOrderedSet(role.Members...)
	members.Remove(accountID)
	role.Members = members.Items()
	if err := tx.SaveRole(ctx, role); err != nil {
		return err
	}

	return tx.CreateRoleRevoked(ctx, &schema.RoleRevoked{
		ID:              domain.EventRecordID(common.HexToHash(event.TxHash), event.LogIndex),
		Role:            roleID,
		Account:         accountID,
		Sender:          domain.HexAddressID(event.Sender),
		BlockNumber:     event.BlockNumber,
		BlockTimestamp:  event.Timestamp,
		TransactionHash: event.TxHash,
	})
}

// applyRoleAdminChanged repoints the role's admin to the new admin role,
// materializing all three role rows, and records the change with both the
// previous and the new admin hashes.
func (e *Engine) applyRoleAdminChanged(ctx context.Context, tx store.Store, event *domain.ChainEvent) error {
	roleID := domain.RoleID(common.HexToHash(event.Role))
	previousID := domain.RoleID(common.HexToHash(event.PreviousAdminRole))
	newID := domain.RoleID(common.HexToHash(event.NewAdminRole))

	role, err := fetchOrCreateRole(ctx, tx, roleID)
	if err != nil {
		return err
	}
	if _, err := fetchOrCreateRole(ctx, tx, previousID); err != nil {
		return err
	}
	newAdmin, err := fetchOrCreateRole(ctx, tx, newID)
	if err != nil {
		return err
	}

	role.AdminRoleID = &newAdmin.ID
	if err := tx.SaveRole(ctx, role); err != nil {
		return err
	}

	return tx.CreateRoleAdminChanged(ctx, &schema.RoleAdminChanged{
		ID:                domain.EventRecordID(common.HexToHash(event.TxHash), event.LogIndex),
		Role:              roleID,
		PreviousAdminRole: previousID,
		NewAdminRole:      newID,
		BlockNumber:       event.BlockNumber,
		BlockTimestamp:    event.Timestamp,
		TransactionHash:   event.TxHash,
	})
}
