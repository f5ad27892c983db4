package store

import (
	"context"
	"sync"
	"time"

	"github.com/PaulieB14/monad-usdc-indexer/internal/store/schema"
	"github.com/PaulieB14/monad-usdc-indexer/internal/types"
)

// MemoryStore is an in-memory Store used by unit tests. It mirrors the
// PostgreSQL store's semantics: Get* returns (nil, nil) for missing rows,
// Create* skips duplicate ids, and cursors default to zero. Rows are stored
// and returned as deep copies so caller-held structs never alias store
// state; a mutation without a Save never changes what a later Get reads.
// The append-only event records are readable through accessors the real
// store does not have.
type MemoryStore struct {
	mu sync.RWMutex

	tokens       map[string]schema.Token
	accounts     map[string]schema.Account
	transactions map[string]schema.Transaction
	roles        map[string]schema.Role
	factories    map[string]schema.Factory
	dailyMetrics map[string]schema.DailyMetric

	transfers        map[string]schema.Transfer
	approvals        map[string]schema.Approval
	accountBalances  map[string]schema.AccountBalance
	roleGranted      map[string]schema.RoleGranted
	roleRevoked      map[string]schema.RoleRevoked
	roleAdminChanged map[string]schema.RoleAdminChanged
	watchedContracts map[string]schema.WatchedContract
	watchedOrder     []string
	cursors          map[string]uint64
}

// NewMemoryStore creates an in-memory Store for tests
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tokens:           make(map[string]schema.Token),
		accounts:         make(map[string]schema.Account),
		transactions:     make(map[string]schema.Transaction),
		roles:            make(map[string]schema.Role),
		factories:        make(map[string]schema.Factory),
		dailyMetrics:     make(map[string]schema.DailyMetric),
		transfers:        make(map[string]schema.Transfer),
		approvals:        make(map[string]schema.Approval),
		accountBalances:  make(map[string]schema.AccountBalance),
		roleGranted:      make(map[string]schema.RoleGranted),
		roleRevoked:      make(map[string]schema.RoleRevoked),
		roleAdminChanged: make(map[string]schema.RoleAdminChanged),
		watchedContracts: make(map[string]schema.WatchedContract),
		cursors:          make(map[string]uint64),
	}
}

// Transactionally runs fn against the store itself. The in-memory store has
// no rollback, which is acceptable for the happy-path unit tests it serves.
func (m *MemoryStore) Transactionally(_ context.Context, fn func(tx Store) error) error {
	return fn(m)
}

func cloneBigInt(v *types.BigInt) *types.BigInt {
	if v == nil {
		return nil
	}
	return v.Clone()
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneToken(token *schema.Token) schema.Token {
	c := *token
	c.TotalSupply = cloneBigInt(token.TotalSupply)
	c.TotalTransfers = cloneBigInt(token.TotalTransfers)
	c.TotalMints = cloneBigInt(token.TotalMints)
	c.TotalBurns = cloneBigInt(token.TotalBurns)
	c.HolderCount = cloneBigInt(token.HolderCount)
	c.TransferCount = cloneBigInt(token.TransferCount)
	c.ApprovalCount = cloneBigInt(token.ApprovalCount)
	c.FactoryID = clonePtr(token.FactoryID)
	c.Creator = clonePtr(token.Creator)
	c.CreatedAtTimestamp = clonePtr(token.CreatedAtTimestamp)
	c.CreatedAtBlockNumber = clonePtr(token.CreatedAtBlockNumber)
	return c
}

func cloneAccount(account *schema.Account) schema.Account {
	c := *account
	c.Balance = cloneBigInt(account.Balance)
	c.TransferCount = cloneBigInt(account.TransferCount)
	c.ApprovalCount = cloneBigInt(account.ApprovalCount)
	return c
}

func cloneRole(role *schema.Role) schema.Role {
	c := *role
	c.AdminRoleID = clonePtr(role.AdminRoleID)
	c.Members = append(c.Members[:0:0], role.Members...)
	return c
}

func cloneFactory(factory *schema.Factory) schema.Factory {
	c := *factory
	c.TokenCount = cloneBigInt(factory.TokenCount)
	return c
}

func cloneDailyMetric(metric *schema.DailyMetric) schema.DailyMetric {
	c := *metric
	c.DailyTransferCount = cloneBigInt(metric.DailyTransferCount)
	c.DailyTransferVolume = cloneBigInt(metric.DailyTransferVolume)
	c.DailyActiveAccounts = cloneBigInt(metric.DailyActiveAccounts)
	c.DailyMintCount = cloneBigInt(metric.DailyMintCount)
	c.DailyMintVolume = cloneBigInt(metric.DailyMintVolume)
	c.DailyBurnCount = cloneBigInt(metric.DailyBurnCount)
	c.DailyBurnVolume = cloneBigInt(metric.DailyBurnVolume)
	return c
}

func cloneTransfer(transfer *schema.Transfer) schema.Transfer {
	c := *transfer
	c.Value = cloneBigInt(transfer.Value)
	return c
}

func cloneApproval(approval *schema.Approval) schema.Approval {
	c := *approval
	c.Value = cloneBigInt(approval.Value)
	return c
}

func cloneAccountBalance(balance *schema.AccountBalance) schema.AccountBalance {
	c := *balance
	c.Value = cloneBigInt(balance.Value)
	return c
}

func (m *MemoryStore) GetToken(_ context.Context, id string) (*schema.Token, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if token, ok := m.tokens[id]; ok {
		c := cloneToken(&token)
		return &c, nil
	}
	return nil, nil
}

func (m *MemoryStore) SaveToken(_ context.Context, token *schema.Token) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[token.ID] = cloneToken(token)
	return nil
}

func (m *MemoryStore) GetAccount(_ context.Context, id string) (*schema.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if account, ok := m.accounts[id]; ok {
		c := cloneAccount(&account)
		return &c, nil
	}
	return nil, nil
}

func (m *MemoryStore) SaveAccount(_ context.Context, account *schema.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = cloneAccount(account)
	return nil
}

func (m *MemoryStore) GetTransaction(_ context.Context, id string) (*schema.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if transaction, ok := m.transactions[id]; ok {
		return &transaction, nil
	}
	return nil, nil
}

func (m *MemoryStore) SaveTransaction(_ context.Context, transaction *schema.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions[transaction.ID] = *transaction
	return nil
}

func (m *MemoryStore) GetRole(_ context.Context, id string) (*schema.Role, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if role, ok := m.roles[id]; ok {
		c := cloneRole(&role)
		return &c, nil
	}
	return nil, nil
}

func (m *MemoryStore) SaveRole(_ context.Context, role *schema.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roles[role.ID] = cloneRole(role)
	return nil
}

func (m *MemoryStore) GetFactory(_ context.Context, id string) (*schema.Factory, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if factory, ok := m.factories[id]; ok {
		c := cloneFactory(&factory)
		return &c, nil
	}
	return nil, nil
}

func (m *MemoryStore) SaveFactory(_ context.Context, factory *schema.Factory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.factories[factory.ID] = cloneFactory(factory)
	return nil
}

func (m *MemoryStore) GetDailyMetric(_ context.Context, id string) (*schema.DailyMetric, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if metric, ok := m.dailyMetrics[id]; ok {
		c := cloneDailyMetric(&metric)
		return &c, nil
	}
	return nil, nil
}

func (m *MemoryStore) SaveDailyMetric(_ context.Context, metric *schema.DailyMetric) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dailyMetrics[metric.ID] = cloneDailyMetric(metric)
	return nil
}

func (m *MemoryStore) CreateTransfer(_ context.Context, transfer *schema.Transfer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.transfers[transfer.ID]; !ok {
		m.transfers[transfer.ID] = cloneTransfer(transfer)
	}
	return nil
}

func (m *MemoryStore) CreateApproval(_ context.Context, approval *schema.Approval) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.approvals[approval.ID]; !ok {
		m.approvals[approval.ID] = cloneApproval(approval)
	}
	return nil
}

func (m *MemoryStore) SaveAccountBalance(_ context.Context, balance *schema.AccountBalance) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accountBalances[balance.ID] = cloneAccountBalance(balance)
	return nil
}

func (m *MemoryStore) CreateRoleGranted(_ context.Context, event *schema.RoleGranted) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.roleGranted[event.ID]; !ok {
		m.roleGranted[event.ID] = *event
	}
	return nil
}

func (m *MemoryStore) CreateRoleRevoked(_ context.Context, event *schema.RoleRevoked) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.roleRevoked[event.ID]; !ok {
		m.roleRevoked[event.ID] = *event
	}
	return nil
}

func (m *MemoryStore) CreateRoleAdminChanged(_ context.Context, event *schema.RoleAdminChanged) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.roleAdminChanged[event.ID]; !ok {
		m.roleAdminChanged[event.ID] = *event
	}
	return nil
}

func (m *MemoryStore) WatchContract(_ context.Context, address string, registeredAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.watchedContracts[address]; !ok {
		m.watchedContracts[address] = schema.WatchedContract{
			Address:      address,
			RegisteredAt: registeredAt,
		}
		m.watchedOrder = append(m.watchedOrder, address)
	}
	return nil
}

func (m *MemoryStore) IsContractWatched(_ context.Context, address string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.watchedContracts[address]
	return ok, nil
}

func (m *MemoryStore) WatchedContracts(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	addresses := make([]string, len(m.watchedOrder))
	copy(addresses, m.watchedOrder)
	return addresses, nil
}

// GetTransfer reads back a transfer record by id, or nil when absent
func (m *MemoryStore) GetTransfer(id string) *schema.Transfer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if transfer, ok := m.transfers[id]; ok {
		c := cloneTransfer(&transfer)
		return &c
	}
	return nil
}

// GetApproval reads back an approval record by id, or nil when absent
func (m *MemoryStore) GetApproval(id string) *schema.Approval {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if approval, ok := m.approvals[id]; ok {
		c := cloneApproval(&approval)
		return &c
	}
	return nil
}

// GetAccountBalance reads back a balance snapshot by id, or nil when absent
func (m *MemoryStore) GetAccountBalance(id string) *schema.AccountBalance {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if balance, ok := m.accountBalances[id]; ok {
		c := cloneAccountBalance(&balance)
		return &c
	}
	return nil
}

// GetRoleGrantedEvent reads back a grant record by id, or nil when absent
func (m *MemoryStore) GetRoleGrantedEvent(id string) *schema.RoleGranted {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if event, ok := m.roleGranted[id]; ok {
		return &event
	}
	return nil
}

// GetRoleRevokedEvent reads back a revocation record by id, or nil when absent
func (m *MemoryStore) GetRoleRevokedEvent(id string) *schema.RoleRevoked {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if event, ok := m.roleRevoked[id]; ok {
		return &event
	}
	return nil
}

// GetRoleAdminChangedEvent reads back an admin change record by id, or nil
// when absent
func (m *MemoryStore) GetRoleAdminChangedEvent(id string) *schema.RoleAdminChanged {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if event, ok := m.roleAdminChanged[id]; ok {
		return &event
	}
	return nil
}

// TransferRecordCount returns the number of stored transfer records
func (m *MemoryStore) TransferRecordCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.transfers)
}

func (m *MemoryStore) GetBlockCursor(_ context.Context, chain string) (uint64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cursors[chain], nil
}

func (m *MemoryStore) SetBlockCursor(_ context.Context, chain string, blockNumber uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cursors[chain] = blockNumber
	return nil
}
