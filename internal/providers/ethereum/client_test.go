package ethereum_test

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PaulieB14/monad-usdc-indexer/internal/domain"
	"github.com/PaulieB14/monad-usdc-indexer/internal/mocks"
	"github.com/PaulieB14/monad-usdc-indexer/internal/providers/ethereum"
)

var (
	transferSig         = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))
	approvalSig         = crypto.Keccak256Hash([]byte("Approval(address,address,uint256)"))
	roleGrantedSig      = crypto.Keccak256Hash([]byte("RoleGranted(bytes32,address,address)"))
	roleRevokedSig      = crypto.Keccak256Hash([]byte("RoleRevoked(bytes32,address,address)"))
	roleAdminChangedSig = crypto.Keccak256Hash([]byte("RoleAdminChanged(bytes32,bytes32,bytes32)"))
	tokenCreatedSig     = crypto.Keccak256Hash([]byte("TokenCreated(address,address)"))
)

const blockTimestamp = int64(1741953600)

var (
	contractAddr = common.HexToAddress("0x5D876D73f4441D5f2438B1A3e2A51771B337F27A")
	fromAddr     = common.HexToAddress("0x1111111111111111111111111111111111111111")
	toAddr       = common.HexToAddress("0x2222222222222222222222222222222222222222")
	roleHash     = common.HexToHash("0x9f2df0fed2c77648de5860a4cc508cd0818c85b8b8a1ab4ceeef8d981c8956a6")
)

// addressTopic pads an address into a 32-byte log topic
func addressTopic(addr common.Address) common.Hash {
	return common.BytesToHash(addr.Bytes())
}

// amountData encodes a uint256 amount as a 32-byte data word
func amountData(amount int64) []byte {
	return common.LeftPadBytes(big.NewInt(amount).Bytes(), 32)
}

func setupTestClient(t *testing.T) (ethereum.EthereumClient, *mocks.MockEthClient) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	ethClient := mocks.NewMockEthClient(ctrl)
	clock := mocks.NewMockClock(ctrl)

	ethClient.EXPECT().
		HeaderByNumber(gomock.Any(), gomock.Any()).
		Return(&types.Header{Time: uint64(blockTimestamp)}, nil).
		AnyTimes()
	clock.EXPECT().
		Unix(blockTimestamp, int64(0)).
		Return(time.Unix(blockTimestamp, 0)).
		AnyTimes()

	return ethereum.NewClient(ethClient, clock), ethClient
}

func baseLog(topics []common.Hash, data []byte) types.Log {
	return types.Log{
		Address:     contractAddr,
		Topics:      topics,
		Data:        data,
		BlockNumber: 12345,
		TxHash:      common.HexToHash("0xabc1230000000000000000000000000000000000000000000000000000000001"),
		TxIndex:     3,
		Index:       7,
	}
}

func TestParseEventLog_Transfer(t *testing.T) {
	client, _ := setupTestClient(t)

	vLog := baseLog([]common.Hash{
		transferSig,
		addressTopic(fromAddr),
		addressTopic(toAddr),
	}, amountData(1000000))

	event, err := client.ParseEventLog(context.Background(), vLog)
	require.NoError(t, err)
	require.NotNil(t, event)

	assert.Equal(t, domain.EventKindTransfer, event.Kind)
	assert.Equal(t, contractAddr.Hex(), event.ContractAddress)
	assert.Equal(t, fromAddr.Hex(), event.From)
	assert.Equal(t, toAddr.Hex(), event.To)
	assert.Equal(t, "1000000", event.Value)
	assert.Equal(t, uint64(12345), event.BlockNumber)
	assert.Equal(t, uint64(3), event.TxIndex)
	assert.Equal(t, uint64(7), event.LogIndex)
	assert.Equal(t, vLog.TxHash.Hex(), event.TxHash)
	assert.Equal(t, time.Unix(blockTimestamp, 0), event.Timestamp)
	assert.True(t, event.Valid())
}

func TestParseEventLog_TransferERC721Skipped(t *testing.T) {
	client, _ := setupTestClient(t)

	// 4 topics is the ERC721 form of the same signature
	vLog := baseLog([]common.Hash{
		transferSig,
		addressTopic(fromAddr),
		addressTopic(toAddr),
		common.BigToHash(big.NewInt(42)),
	}, nil)

	event, err := client.ParseEventLog(context.Background(), vLog)
	require.NoError(t, err)
	assert.Nil(t, event)
}

func TestParseEventLog_TransferInsufficientData(t *testing.T) {
	client, _ := setupTestClient(t)

	vLog := baseLog([]common.Hash{
		transferSig,
		addressTopic(fromAddr),
		addressTopic(toAddr),
	}, []byte{0x01, 0x02})

	_, err := client.ParseEventLog(context.Background(), vLog)
	assert.Error(t, err)
}

func TestParseEventLog_Approval(t *testing.T) {
	client, _ := setupTestClient(t)

	vLog := baseLog([]common.Hash{
		approvalSig,
		addressTopic(fromAddr),
		addressTopic(toAddr),
	}, amountData(5000))

	event, err := client.ParseEventLog(context.Background(), vLog)
	require.NoError(t, err)
	require.NotNil(t, event)

	assert.Equal(t, domain.EventKindApproval, event.Kind)
	assert.Equal(t, fromAddr.Hex(), event.Owner)
	assert.Equal(t, toAddr.Hex(), event.Spender)
	assert.Equal(t, "5000", event.Value)
	assert.True(t, event.Valid())
}

func TestParseEventLog_ApprovalERC721Skipped(t *testing.T) {
	client, _ := setupTestClient(t)

	vLog := baseLog([]common.Hash{
		approvalSig,
		addressTopic(fromAddr),
		addressTopic(toAddr),
		common.BigToHash(big.NewInt(42)),
	}, nil)

	event, err := client.ParseEventLog(context.Background(), vLog)
	require.NoError(t, err)
	assert.Nil(t, event)
}

func TestParseEventLog_RoleGranted(t *testing.T) {
	client, _ := setupTestClient(t)

	vLog := baseLog([]common.Hash{
		roleGrantedSig,
		roleHash,
		addressTopic(fromAddr),
		addressTopic(toAddr),
	}, nil)

	event, err := client.ParseEventLog(context.Background(), vLog)
	require.NoError(t, err)
	require.NotNil(t, event)

	assert.Equal(t, domain.EventKindRoleGranted, event.Kind)
	assert.Equal(t, roleHash.Hex(), event.Role)
	assert.Equal(t, fromAddr.Hex(), event.Account)
	assert.Equal(t, toAddr.Hex(), event.Sender)
	assert.True(t, event.Valid())
}

func TestParseEventLog_RoleGrantedWrongArity(t *testing.T) {
	client, _ := setupTestClient(t)

	vLog := baseLog([]common.Hash{
		roleGrantedSig,
		roleHash,
		addressTopic(fromAddr),
	}, nil)

	_, err := client.ParseEventLog(context.Background(), vLog)
	assert.Error(t, err)
}

func TestParseEventLog_RoleRevoked(t *testing.T) {
	client, _ := setupTestClient(t)

	vLog := baseLog([]common.Hash{
		roleRevokedSig,
		roleHash,
		addressTopic(fromAddr),
		addressTopic(toAddr),
	}, nil)

	event, err := client.ParseEventLog(context.Background(), vLog)
	require.NoError(t, err)
	require.NotNil(t, event)

	assert.Equal(t, domain.EventKindRoleRevoked, event.Kind)
	assert.Equal(t, roleHash.Hex(), event.Role)
	assert.True(t, event.Valid())
}

func TestParseEventLog_RoleAdminChanged(t *testing.T) {
	client, _ := setupTestClient(t)

	previousAdmin := common.HexToHash("0x0000000000000000000000000000000000000000000000000000000000000000")
	newAdmin := common.HexToHash("0x3c11d16cbaffd01df69ce1c404f6340ee057498f5f00246190ea54220576a848")

	vLog := baseLog([]common.Hash{
		roleAdminChangedSig,
		roleHash,
		previousAdmin,
		newAdmin,
	}, nil)

	event, err := client.ParseEventLog(context.Background(), vLog)
	require.NoError(t, err)
	require.NotNil(t, event)

	assert.Equal(t, domain.EventKindRoleAdminChanged, event.Kind)
	assert.Equal(t, roleHash.Hex(), event.Role)
	assert.Equal(t, previousAdmin.Hex(), event.PreviousAdminRole)
	assert.Equal(t, newAdmin.Hex(), event.NewAdminRole)
	assert.True(t, event.Valid())
}

func TestParseEventLog_TokenCreated(t *testing.T) {
	client, _ := setupTestClient(t)

	vLog := baseLog([]common.Hash{
		tokenCreatedSig,
		addressTopic(fromAddr),
		addressTopic(toAddr),
	}, nil)

	event, err := client.ParseEventLog(context.Background(), vLog)
	require.NoError(t, err)
	require.NotNil(t, event)

	assert.Equal(t, domain.EventKindTokenCreated, event.Kind)
	assert.Equal(t, fromAddr.Hex(), event.Token)
	assert.Equal(t, toAddr.Hex(), event.Creator)
	assert.True(t, event.Valid())
}

func TestParseEventLog_UnknownSignature(t *testing.T) {
	client, _ := setupTestClient(t)

	vLog := baseLog([]common.Hash{
		crypto.Keccak256Hash([]byte("Paused(address)")),
		addressTopic(fromAddr),
	}, nil)

	event, err := client.ParseEventLog(context.Background(), vLog)
	require.NoError(t, err)
	assert.Nil(t, event)
}

func TestParseEventLog_NoTopics(t *testing.T) {
	client, _ := setupTestClient(t)

	event, err := client.ParseEventLog(context.Background(), types.Log{})
	require.NoError(t, err)
	assert.Nil(t, event)
}

func TestParseEventLog_HeaderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	ethClient := mocks.NewMockEthClient(ctrl)
	clock := mocks.NewMockClock(ctrl)
	ethClient.EXPECT().
		HeaderByNumber(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	client := ethereum.NewClient(ethClient, clock)
	vLog := baseLog([]common.Hash{
		transferSig,
		addressTopic(fromAddr),
		addressTopic(toAddr),
	}, amountData(1))

	_, err := client.ParseEventLog(context.Background(), vLog)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get block header")
}
