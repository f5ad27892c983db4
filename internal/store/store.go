package store

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks

import (
	"context"
	"time"

	"github.com/PaulieB14/monad-usdc-indexer/internal/store/schema"
)

// Store defines the interface for database operations.
//
// Get* methods return (nil, nil) when the entity does not exist. Save*
// methods upsert by primary key. Create* methods insert append-only event
// records and silently skip rows whose primary key already exists, which
// makes redelivered events idempotent.
type Store interface {
	// Transactionally runs fn against a store bound to a single database
	// transaction. Any error from fn rolls the transaction back.
	Transactionally(ctx context.Context, fn func(tx Store) error) error

	// GetToken retrieves a token by its lowercase hex contract address
	GetToken(ctx context.Context, id string) (*schema.Token, error)
	// SaveToken upserts a token
	SaveToken(ctx context.Context, token *schema.Token) error

	// GetAccount retrieves an account by its lowercase hex address
	GetAccount(ctx context.Context, id string) (*schema.Account, error)
	// SaveAccount upserts an account
	SaveAccount(ctx context.Context, account *schema.Account) error

	// GetTransaction retrieves a transaction by its hash
	GetTransaction(ctx context.Context, id string) (*schema.Transaction, error)
	// SaveTransaction upserts a transaction
	SaveTransaction(ctx context.Context, transaction *schema.Transaction) error

	// GetRole retrieves a role by its raw 32-byte hash in hex
	GetRole(ctx context.Context, id string) (*schema.Role, error)
	// SaveRole upserts a role
	SaveRole(ctx context.Context, role *schema.Role) error

	// GetFactory retrieves a factory by its lowercase hex contract address
	GetFactory(ctx context.Context, id string) (*schema.Factory, error)
	// SaveFactory upserts a factory
	SaveFactory(ctx context.Context, factory *schema.Factory) error

	// GetDailyMetric retrieves a daily metric bucket by its composite id
	GetDailyMetric(ctx context.Context, id string) (*schema.DailyMetric, error)
	// SaveDailyMetric upserts a daily metric bucket
	SaveDailyMetric(ctx context.Context, metric *schema.DailyMetric) error

	// CreateTransfer inserts a transfer record
	CreateTransfer(ctx context.Context, transfer *schema.Transfer) error
	// CreateApproval inserts an approval record
	CreateApproval(ctx context.Context, approval *schema.Approval) error
	// SaveAccountBalance upserts a balance snapshot. Several updates to one
	// account within a block share a snapshot id; the last write wins.
	SaveAccountBalance(ctx context.Context, balance *schema.AccountBalance) error
	// CreateRoleGranted inserts a role grant record
	CreateRoleGranted(ctx context.Context, event *schema.RoleGranted) error
	// CreateRoleRevoked inserts a role revocation record
	CreateRoleRevoked(ctx context.Context, event *schema.RoleRevoked) error
	// CreateRoleAdminChanged inserts a role admin change record
	CreateRoleAdminChanged(ctx context.Context, event *schema.RoleAdminChanged) error

	// WatchContract registers a contract address so its events are processed
	WatchContract(ctx context.Context, address string, registeredAt time.Time) error
	// IsContractWatched checks whether a contract address is registered
	IsContractWatched(ctx context.Context, address string) (bool, error)
	// WatchedContracts lists all registered contract addresses
	WatchedContracts(ctx context.Context) ([]string, error)

	// GetBlockCursor retrieves the last processed block number for a chain
	GetBlockCursor(ctx context.Context, chain string) (uint64, error)
	// SetBlockCursor stores the last processed block number for a chain
	SetBlockCursor(ctx context.Context, chain string, blockNumber uint64) error
}
