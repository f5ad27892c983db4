package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/PaulieB14/monad-usdc-indexer/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// AutoMigrate creates or updates the database tables for all indexer entities
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.Token{},
		&schema.Account{},
		&schema.Transaction{},
		&schema.Transfer{},
		&schema.Approval{},
		&schema.Role{},
		&schema.RoleGranted{},
		&schema.RoleRevoked{},
		&schema.RoleAdminChanged{},
		&schema.DailyMetric{},
		&schema.AccountBalance{},
		&schema.Factory{},
		&schema.WatchedContract{},
		&schema.KeyValueStore{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to reasonable defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// Transactionally runs fn against a store bound to a single database transaction
func (s *pgStore) Transactionally(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&pgStore{db: tx})
	})
}

func getByID[T any](ctx context.Context, db *gorm.DB, id string, kind string) (*T, error) {
	var entity T
	err := db.WithContext(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s: %w", kind, err)
	}
	return &entity, nil
}

func upsert(ctx context.Context, db *gorm.DB, entity any, kind string) error {
	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(entity).Error
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", kind, err)
	}
	return nil
}

func insertOnce(ctx context.Context, db *gorm.DB, record any, kind string) error {
	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(record).Error
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", kind, err)
	}
	return nil
}

// GetToken retrieves a token by its lowercase hex contract address
func (s *pgStore) GetToken(ctx context.Context, id string) (*schema.Token, error) {
	return getByID[schema.Token](ctx, s.db, id, "token")
}

// SaveToken upserts a token
func (s *pgStore) SaveToken(ctx context.Context, token *schema.Token) error {
	return upsert(ctx, s.db, token, "token")
}

// GetAccount retrieves an account by its lowercase hex address
func (s *pgStore) GetAccount(ctx context.Context, id string) (*schema.Account, error) {
	return getByID[schema.Account](ctx, s.db, id, "account")
}

// SaveAccount upserts an account
func (s *pgStore) SaveAccount(ctx context.Context, account *schema.Account) error {
	return upsert(ctx, s.db, account, "account")
}

// GetTransaction retrieves a transaction by its hash
func (s *pgStore) GetTransaction(ctx context.Context, id string) (*schema.Transaction, error) {
	return getByID[schema.Transaction](ctx, s.db, id, "transaction")
}

// SaveTransaction upserts a transaction
func (s *pgStore) SaveTransaction(ctx context.Context, transaction *schema.Transaction) error {
	return upsert(ctx, s.db, transaction, "transaction")
}

// GetRole retrieves a role by its raw 32-byte hash in hex
func (s *pgStore) GetRole(ctx context.Context, id string) (*schema.Role, error) {
	return getByID[schema.Role](ctx, s.db, id, "role")
}

// SaveRole upserts a role
func (s *pgStore) SaveRole(ctx context.Context, role *schema.Role) error {
	return upsert(ctx, s.db, role, "role")
}

// GetFactory retrieves a factory by its lowercase hex contract address
func (s *pgStore) GetFactory(ctx context.Context, id string) (*schema.Factory, error) {
	return getByID[schema.Factory](ctx, s.db, id, "factory")
}

// SaveFactory upserts a factory
func (s *pgStore) SaveFactory(ctx context.Context, factory *schema.Factory) error {
	return upsert(ctx, s.db, factory, "factory")
}

// GetDailyMetric retrieves a daily metric bucket by its composite id
func (s *pgStore) GetDailyMetric(ctx context.Context, id string) (*schema.DailyMetric, error) {
	return getByID[schema.DailyMetric](ctx, s.db, id, "daily metric")
}

// SaveDailyMetric upserts a daily metric bucket
func (s *pgStore) SaveDailyMetric(ctx context.Context, metric *schema.DailyMetric) error {
	return upsert(ctx, s.db, metric, "daily metric")
}

// CreateTransfer inserts a transfer record
func (s *pgStore) CreateTransfer(ctx context.Context, transfer *schema.Transfer) error {
	return insertOnce(ctx, s.db, transfer, "transfer")
}

// CreateApproval inserts an approval record
func (s *pgStore) CreateApproval(ctx context.Context, approval *schema.Approval) error {
	return insertOnce(ctx, s.db, approval, "approval")
}

// SaveAccountBalance upserts a balance snapshot
func (s *pgStore) SaveAccountBalance(ctx context.Context, balance *schema.AccountBalance) error {
	return upsert(ctx, s.db, balance, "account balance")
}

// CreateRoleGranted inserts a role grant record
func (s *pgStore) CreateRoleGranted(ctx context.Context, event *schema.RoleGranted) error {
	return insertOnce(ctx, s.db, event, "role granted event")
}

// CreateRoleRevoked inserts a role revocation record
func (s *pgStore) CreateRoleRevoked(ctx context.Context, event *schema.RoleRevoked) error {
	return insertOnce(ctx, s.db, event, "role revoked event")
}

// CreateRoleAdminChanged inserts a role admin change record
func (s *pgStore) CreateRoleAdminChanged(ctx context.Context, event *schema.RoleAdminChanged) error {
	return insertOnce(ctx, s.db, event, "role admin changed event")
}

// WatchContract registers a contract address so its events are processed
func (s *pgStore) WatchContract(ctx context.Context, address string, registeredAt time.Time) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}},
		DoNothing: true,
	}).Create(&schema.WatchedContract{
		Address:      address,
		RegisteredAt: registeredAt,
	}).Error
	if err != nil {
		return fmt.Errorf("failed to watch contract: %w", err)
	}
	return nil
}

// IsContractWatched checks whether a contract address is registered
func (s *pgStore) IsContractWatched(ctx context.Context, address string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.WatchedContract{}).
		Where("address = ?", address).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check watched contract: %w", err)
	}
	return count > 0, nil
}

// WatchedContracts lists all registered contract addresses
func (s *pgStore) WatchedContracts(ctx context.Context) ([]string, error) {
	var addresses []string
	err := s.db.WithContext(ctx).
		Model(&schema.WatchedContract{}).
		Pluck("address", &addresses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list watched contracts: %w", err)
	}
	return addresses, nil
}

// GetBlockCursor retrieves the last processed block number for a chain
func (s *pgStore) GetBlockCursor(ctx context.Context, chain string) (uint64, error) {
	key := fmt.Sprintf("block_cursor:%s", chain)

	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get block cursor: %w", err)
	}

	blockNumber, err := strconv.ParseUint(kv.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse block cursor: %w", err)
	}

	return blockNumber, nil
}

// SetBlockCursor stores the last processed block number for a chain
func (s *pgStore) SetBlockCursor(ctx context.Context, chain string, blockNumber uint64) error {
	key := fmt.Sprintf("block_cursor:%s", chain)
	value := strconv.FormatUint(blockNumber, 10)

	kv := schema.KeyValueStore{
		Key:   key,
		Value: value,
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to set block cursor: %w", err)
	}

	return nil
}
