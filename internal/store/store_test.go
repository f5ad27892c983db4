package store

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/PaulieB14/monad-usdc-indexer/internal/store/schema"
	"github.com/PaulieB14/monad-usdc-indexer/internal/types"
)

// =============================================================================
// Test Data Builders
// =============================================================================

var testBlockTime = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

// buildTestToken creates a token row with non-zero counters so updates are
// distinguishable from freshly-created rows
func buildTestToken(id string) *schema.Token {
	return &schema.Token{
		ID:             id,
		Name:           "USD Coin",
		Symbol:         "USDC",
		Decimals:       6,
		TotalSupply:    types.NewBigInt(1000),
		TotalTransfers: types.NewBigInt(3),
		TotalMints:     types.NewBigInt(1),
		TotalBurns:     types.NewBigInt(0),
		HolderCount:    types.NewBigInt(2),
		TransferCount:  types.NewBigInt(3),
		ApprovalCount:  types.NewBigInt(1),
	}
}

// buildTestAccount creates an account row bound to the given token
func buildTestAccount(id, tokenID string) *schema.Account {
	return &schema.Account{
		ID:            id,
		Balance:       types.NewBigInt(500),
		TransferCount: types.NewBigInt(2),
		ApprovalCount: types.NewBigInt(0),
		LastUpdated:   testBlockTime,
		TokenID:       tokenID,
	}
}

// buildTestTransfer creates a transfer record keyed by the given id
func buildTestTransfer(id, tokenID string, value int64) *schema.Transfer {
	return &schema.Transfer{
		ID:              id,
		FromID:          "0x1111111111111111111111111111111111111111",
		ToID:            "0x2222222222222222222222222222222222222222",
		Value:           types.NewBigInt(value),
		TokenID:         tokenID,
		TransactionID:   "0xaaaa000000000000000000000000000000000000000000000000000000000000",
		BlockNumber:     100,
		BlockTimestamp:  testBlockTime,
		TransactionHash: "0xaaaa000000000000000000000000000000000000000000000000000000000000",
	}
}

// =============================================================================
// Shared Test Suite
// =============================================================================

// RunStoreTests runs every storage contract test against a Store
// implementation. initDB is called before each test to produce a clean
// store, cleanupDB after.
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Token", testToken},
		{"Account", testAccount},
		{"Transaction", testTransaction},
		{"Role", testRole},
		{"Factory", testFactory},
		{"DailyMetric", testDailyMetric},
		{"EventRecords", testEventRecords},
		{"AccountBalance", testAccountBalance},
		{"WatchedContracts", testWatchedContracts},
		{"BlockCursor", testBlockCursor},
		{"Transactionally", testTransactionally},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}

func testToken(t *testing.T, store Store) {
	ctx := context.Background()
	tokenID := "0x5d876d73f4441d5f2438b1a3e2a51771b337f27a"

	t.Run("get non-existent token returns nil", func(t *testing.T) {
		token, err := store.GetToken(ctx, tokenID)
		require.NoError(t, err)
		assert.Nil(t, token)
	})

	t.Run("save and get token", func(t *testing.T) {
		require.NoError(t, store.SaveToken(ctx, buildTestToken(tokenID)))

		got, err := store.GetToken(ctx, tokenID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "USD Coin", got.Name)
		assert.Equal(t, "USDC", got.Symbol)
		assert.Equal(t, uint8(6), got.Decimals)
		assert.Equal(t, "1000", got.TotalSupply.String())
		assert.Equal(t, "2", got.HolderCount.String())
		assert.Nil(t, got.FactoryID)
		assert.Nil(t, got.CreatedAtTimestamp)
	})

	t.Run("save overwrites existing token", func(t *testing.T) {
		factoryID := "0x92bca8b4d1a1f156cf4b60b2e0b6b521386bdef4"
		creator := "0x3333333333333333333333333333333333333333"
		blockNumber := uint64(200)

		updated := buildTestToken(tokenID)
		updated.TotalSupply = types.NewBigInt(2500)
		updated.FactoryID = &factoryID
		updated.Creator = &creator
		updated.CreatedAtTimestamp = &testBlockTime
		updated.CreatedAtBlockNumber = &blockNumber
		require.NoError(t, store.SaveToken(ctx, updated))

		got, err := store.GetToken(ctx, tokenID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "2500", got.TotalSupply.String())
		require.NotNil(t, got.FactoryID)
		assert.Equal(t, factoryID, *got.FactoryID)
		require.NotNil(t, got.Creator)
		assert.Equal(t, creator, *got.Creator)
		require.NotNil(t, got.CreatedAtTimestamp)
		assert.True(t, got.CreatedAtTimestamp.Equal(testBlockTime))
		require.NotNil(t, got.CreatedAtBlockNumber)
		assert.Equal(t, blockNumber, *got.CreatedAtBlockNumber)
	})
}

func testAccount(t *testing.T, store Store) {
	ctx := context.Background()
	accountID := "0x1111111111111111111111111111111111111111"
	tokenID := "0x5d876d73f4441d5f2438b1a3e2a51771b337f27a"

	t.Run("get non-existent account returns nil", func(t *testing.T) {
		account, err := store.GetAccount(ctx, accountID)
		require.NoError(t, err)
		assert.Nil(t, account)
	})

	t.Run("save and get account", func(t *testing.T) {
		require.NoError(t, store.SaveAccount(ctx, buildTestAccount(accountID, tokenID)))

		got, err := store.GetAccount(ctx, accountID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "500", got.Balance.String())
		assert.Equal(t, "2", got.TransferCount.String())
		assert.True(t, got.LastUpdated.Equal(testBlockTime))
		assert.Equal(t, tokenID, got.TokenID)
	})

	t.Run("save overwrites existing account", func(t *testing.T) {
		updated := buildTestAccount(accountID, tokenID)
		updated.Balance = types.NewBigInt(-10)
		updated.TransferCount = types.NewBigInt(3)
		require.NoError(t, store.SaveAccount(ctx, updated))

		got, err := store.GetAccount(ctx, accountID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "-10", got.Balance.String())
		assert.Equal(t, "3", got.TransferCount.String())
	})
}

func testTransaction(t *testing.T, store Store) {
	ctx := context.Background()
	txHash := "0xbbbb000000000000000000000000000000000000000000000000000000000000"

	t.Run("get non-existent transaction returns nil", func(t *testing.T) {
		tx, err := store.GetTransaction(ctx, txHash)
		require.NoError(t, err)
		assert.Nil(t, tx)
	})

	t.Run("save and get transaction", func(t *testing.T) {
		require.NoError(t, store.SaveTransaction(ctx, &schema.Transaction{
			ID:          txHash,
			BlockNumber: 100,
			Timestamp:   testBlockTime,
		}))

		got, err := store.GetTransaction(ctx, txHash)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, uint64(100), got.BlockNumber)
		assert.True(t, got.Timestamp.Equal(testBlockTime))
	})
}

func testRole(t *testing.T, store Store) {
	ctx := context.Background()
	roleID := "0x9f2df0fed2c77648de5860a4cc508cd0818c85b8b8a1ab4ceeef8d981c8956a6"
	adminRoleID := "0x0000000000000000000000000000000000000000000000000000000000000000"

	t.Run("get non-existent role returns nil", func(t *testing.T) {
		role, err := store.GetRole(ctx, roleID)
		require.NoError(t, err)
		assert.Nil(t, role)
	})

	t.Run("save and get role with members", func(t *testing.T) {
		members := []string{
			"0x1111111111111111111111111111111111111111",
			"0x2222222222222222222222222222222222222222",
		}
		require.NoError(t, store.SaveRole(ctx, &schema.Role{
			ID:      roleID,
			Name:    "MINTER_ROLE",
			Members: datatypes.NewJSONSlice(members),
		}))

		got, err := store.GetRole(ctx, roleID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "MINTER_ROLE", got.Name)
		assert.Nil(t, got.AdminRoleID)
		assert.Equal(t, members, []string(got.Members))
	})

	t.Run("save overwrites members and admin role", func(t *testing.T) {
		members := []string{"0x2222222222222222222222222222222222222222"}
		require.NoError(t, store.SaveRole(ctx, &schema.Role{
			ID:          roleID,
			Name:        "MINTER_ROLE",
			AdminRoleID: &adminRoleID,
			Members:     datatypes.NewJSONSlice(members),
		}))

		got, err := store.GetRole(ctx, roleID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.NotNil(t, got.AdminRoleID)
		assert.Equal(t, adminRoleID, *got.AdminRoleID)
		assert.Equal(t, members, []string(got.Members))
	})
}

func testFactory(t *testing.T, store Store) {
	ctx := context.Background()
	factoryID := "0x92bca8b4d1a1f156cf4b60b2e0b6b521386bdef4"

	t.Run("get non-existent factory returns nil", func(t *testing.T) {
		factory, err := store.GetFactory(ctx, factoryID)
		require.NoError(t, err)
		assert.Nil(t, factory)
	})

	t.Run("save and increment token count", func(t *testing.T) {
		require.NoError(t, store.SaveFactory(ctx, &schema.Factory{
			ID:         factoryID,
			TokenCount: types.NewBigInt(1),
		}))

		got, err := store.GetFactory(ctx, factoryID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "1", got.TokenCount.String())

		got.TokenCount.Inc()
		require.NoError(t, store.SaveFactory(ctx, got))

		got, err = store.GetFactory(ctx, factoryID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "2", got.TokenCount.String())
	})
}

func testDailyMetric(t *testing.T, store Store) {
	ctx := context.Background()
	metricID := "0x5d876d73f4441d5f2438b1a3e2a51771b337f27a-20161"

	t.Run("get non-existent metric returns nil", func(t *testing.T) {
		metric, err := store.GetDailyMetric(ctx, metricID)
		require.NoError(t, err)
		assert.Nil(t, metric)
	})

	t.Run("save and accumulate metric", func(t *testing.T) {
		require.NoError(t, store.SaveDailyMetric(ctx, &schema.DailyMetric{
			ID:                  metricID,
			Date:                "2025-03-14",
			Timestamp:           testBlockTime,
			DailyTransferCount:  types.NewBigInt(1),
			DailyTransferVolume: types.NewBigInt(700),
			DailyActiveAccounts: types.NewBigInt(2),
			DailyMintCount:      types.NewBigInt(0),
			DailyMintVolume:     types.NewBigInt(0),
			DailyBurnCount:      types.NewBigInt(0),
			DailyBurnVolume:     types.NewBigInt(0),
			TokenID:             "0x5d876d73f4441d5f2438b1a3e2a51771b337f27a",
		}))

		got, err := store.GetDailyMetric(ctx, metricID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "2025-03-14", got.Date)
		assert.True(t, got.Timestamp.Equal(testBlockTime))
		assert.Equal(t, "700", got.DailyTransferVolume.String())

		got.DailyTransferCount.Inc()
		got.DailyTransferVolume.Add(big.NewInt(300))
		require.NoError(t, store.SaveDailyMetric(ctx, got))

		got, err = store.GetDailyMetric(ctx, metricID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "2", got.DailyTransferCount.String())
		assert.Equal(t, "1000", got.DailyTransferVolume.String())
	})
}

func testEventRecords(t *testing.T, store Store) {
	ctx := context.Background()
	tokenID := "0x5d876d73f4441d5f2438b1a3e2a51771b337f27a"
	txHash := "0xcccc000000000000000000000000000000000000000000000000000000000000"

	t.Run("duplicate transfer create is tolerated", func(t *testing.T) {
		transferID := txHash + "00000001"
		require.NoError(t, store.CreateTransfer(ctx, buildTestTransfer(transferID, tokenID, 700)))
		// A redelivered event produces the same id; the second insert is a no-op.
		require.NoError(t, store.CreateTransfer(ctx, buildTestTransfer(transferID, tokenID, 999)))
	})

	t.Run("create approval", func(t *testing.T) {
		require.NoError(t, store.CreateApproval(ctx, &schema.Approval{
			ID:              txHash + "00000002",
			OwnerID:         "0x1111111111111111111111111111111111111111",
			SpenderID:       "0x2222222222222222222222222222222222222222",
			Value:           types.NewBigInt(500),
			TokenID:         tokenID,
			TransactionID:   txHash,
			BlockNumber:     100,
			BlockTimestamp:  testBlockTime,
			TransactionHash: txHash,
		}))
	})

	t.Run("create role events", func(t *testing.T) {
		roleHash := "0x9f2df0fed2c77648de5860a4cc508cd0818c85b8b8a1ab4ceeef8d981c8956a6"
		granted := &schema.RoleGranted{
			ID:              txHash + "00000003",
			Role:            roleHash,
			Account:         "0x1111111111111111111111111111111111111111",
			Sender:          "0x2222222222222222222222222222222222222222",
			BlockNumber:     100,
			BlockTimestamp:  testBlockTime,
			TransactionHash: txHash,
		}
		require.NoError(t, store.CreateRoleGranted(ctx, granted))
		require.NoError(t, store.CreateRoleGranted(ctx, granted))

		require.NoError(t, store.CreateRoleRevoked(ctx, &schema.RoleRevoked{
			ID:              txHash + "00000004",
			Role:            roleHash,
			Account:         "0x1111111111111111111111111111111111111111",
			Sender:          "0x2222222222222222222222222222222222222222",
			BlockNumber:     101,
			BlockTimestamp:  testBlockTime,
			TransactionHash: txHash,
		}))

		require.NoError(t, store.CreateRoleAdminChanged(ctx, &schema.RoleAdminChanged{
			ID:                txHash + "00000005",
			Role:              roleHash,
			PreviousAdminRole: "0x0000000000000000000000000000000000000000000000000000000000000000",
			NewAdminRole:      roleHash,
			BlockNumber:       102,
			BlockTimestamp:    testBlockTime,
			TransactionHash:   txHash,
		}))
	})
}

func testAccountBalance(t *testing.T, store Store) {
	ctx := context.Background()
	balanceID := "0x1111111111111111111111111111111111111111-100"

	balance := &schema.AccountBalance{
		ID:          balanceID,
		AccountID:   "0x1111111111111111111111111111111111111111",
		TokenID:     "0x5d876d73f4441d5f2438b1a3e2a51771b337f27a",
		Value:       types.NewBigInt(500),
		BlockNumber: 100,
		Timestamp:   testBlockTime,
	}
	require.NoError(t, store.SaveAccountBalance(ctx, balance))

	// Same snapshot id later in the block; the save must not conflict.
	balance.Value = types.NewBigInt(700)
	require.NoError(t, store.SaveAccountBalance(ctx, balance))
}

func testWatchedContracts(t *testing.T, store Store) {
	ctx := context.Background()
	tokenAddress := "0x5d876d73f4441d5f2438b1a3e2a51771b337f27a"
	childAddress := "0x4444444444444444444444444444444444444444"

	t.Run("unknown address is not watched", func(t *testing.T) {
		watched, err := store.IsContractWatched(ctx, tokenAddress)
		require.NoError(t, err)
		assert.False(t, watched)
	})

	t.Run("watch and query contracts", func(t *testing.T) {
		require.NoError(t, store.WatchContract(ctx, tokenAddress, testBlockTime))
		require.NoError(t, store.WatchContract(ctx, childAddress, testBlockTime.Add(time.Hour)))

		watched, err := store.IsContractWatched(ctx, tokenAddress)
		require.NoError(t, err)
		assert.True(t, watched)

		addresses, err := store.WatchedContracts(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{tokenAddress, childAddress}, addresses)
	})

	t.Run("watching twice is idempotent", func(t *testing.T) {
		require.NoError(t, store.WatchContract(ctx, tokenAddress, testBlockTime.Add(2*time.Hour)))

		addresses, err := store.WatchedContracts(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{tokenAddress, childAddress}, addresses)
	})
}

func testBlockCursor(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("get non-existent cursor returns 0", func(t *testing.T) {
		cursor, err := store.GetBlockCursor(ctx, "monad_nonexistent")
		require.NoError(t, err)
		assert.Equal(t, uint64(0), cursor)
	})

	t.Run("set and get cursor", func(t *testing.T) {
		require.NoError(t, store.SetBlockCursor(ctx, "monad", 12345))

		cursor, err := store.GetBlockCursor(ctx, "monad")
		require.NoError(t, err)
		assert.Equal(t, uint64(12345), cursor)
	})

	t.Run("update existing cursor", func(t *testing.T) {
		require.NoError(t, store.SetBlockCursor(ctx, "monad", 12350))

		cursor, err := store.GetBlockCursor(ctx, "monad")
		require.NoError(t, err)
		assert.Equal(t, uint64(12350), cursor)
	})
}

func testTransactionally(t *testing.T, store Store) {
	ctx := context.Background()
	tokenID := "0x5d876d73f4441d5f2438b1a3e2a51771b337f27a"

	err := store.Transactionally(ctx, func(tx Store) error {
		if err := tx.SaveToken(ctx, buildTestToken(tokenID)); err != nil {
			return err
		}
		return tx.SetBlockCursor(ctx, "monad", 100)
	})
	require.NoError(t, err)

	got, err := store.GetToken(ctx, tokenID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "USDC", got.Symbol)

	cursor, err := store.GetBlockCursor(ctx, "monad")
	require.NoError(t, err)
	assert.Equal(t, uint64(100), cursor)
}
