package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/PaulieB14/monad-usdc-indexer/internal/adapter"
	"github.com/PaulieB14/monad-usdc-indexer/internal/domain"
)

// Event signatures
var (
	// ERC20 Transfer(address indexed from, address indexed to, uint256 value) - 3 topics, value in data
	// The same signature with 4 topics is an ERC721 transfer and is skipped
	transferEventSignature = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

	// ERC20 Approval(address indexed owner, address indexed spender, uint256 value) - 3 topics, value in data
	approvalEventSignature = crypto.Keccak256Hash([]byte("Approval(address,address,uint256)"))

	// AccessControl RoleGranted(bytes32 indexed role, address indexed account, address indexed sender)
	roleGrantedEventSignature = crypto.Keccak256Hash([]byte("RoleGranted(bytes32,address,address)"))

	// AccessControl RoleRevoked(bytes32 indexed role, address indexed account, address indexed sender)
	roleRevokedEventSignature = crypto.Keccak256Hash([]byte("RoleRevoked(bytes32,address,address)"))

	// AccessControl RoleAdminChanged(bytes32 indexed role, bytes32 indexed previousAdminRole, bytes32 indexed newAdminRole)
	roleAdminChangedEventSignature = crypto.Keccak256Hash([]byte("RoleAdminChanged(bytes32,bytes32,bytes32)"))

	// Factory TokenCreated(address indexed token, address indexed creator)
	tokenCreatedEventSignature = crypto.Keccak256Hash([]byte("TokenCreated(address,address)"))
)

// EthereumClient wraps the raw node connection with log parsing
type EthereumClient interface {
	// ParseEventLog parses a contract log into a normalized chain event.
	// Logs with an unrecognized signature or topic arity return (nil, nil).
	ParseEventLog(ctx context.Context, vLog types.Log) (*domain.ChainEvent, error)

	// SubscribeFilterLogs subscribes to filter logs
	SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error)

	// HeaderByNumber returns a header by number
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)

	// Close closes the connection
	Close()
}

type ethereumClient struct {
	client adapter.EthClient
	clock  adapter.Clock
}

// NewClient creates an EthereumClient on top of a dialed node connection
func NewClient(client adapter.EthClient, clock adapter.Clock) EthereumClient {
	return &ethereumClient{client: client, clock: clock}
}

// SubscribeFilterLogs subscribes to filter logs
func (c *ethereumClient) SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	return c.client.SubscribeFilterLogs(ctx, query, ch)
}

// HeaderByNumber returns a header by number
func (c *ethereumClient) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	return c.client.HeaderByNumber(ctx, number)
}

// ParseEventLog parses a contract log into a normalized chain event
func (c *ethereumClient) ParseEventLog(ctx context.Context, vLog types.Log) (*domain.ChainEvent, error) {
	if len(vLog.Topics) == 0 {
		return nil, nil
	}

	// Get header to extract the block timestamp
	header, err := c.client.HeaderByNumber(ctx, new(big.Int).SetUint64(vLog.BlockNumber))
	if err != nil {
		return nil, fmt.Errorf("failed to get block header: %w", err)
	}

	event := &domain.ChainEvent{
		ContractAddress: vLog.Address.Hex(),
		BlockNumber:     vLog.BlockNumber,
		Timestamp:       c.clock.Unix(int64(header.Time), 0), //nolint:gosec,G115 // block timestamps fit in int64
		TxHash:          vLog.TxHash.Hex(),
		TxIndex:         uint64(vLog.TxIndex),
		LogIndex:        uint64(vLog.Index),
	}

	switch vLog.Topics[0] {
	case transferEventSignature:
		// 4 topics is the ERC721 form of the same signature
		if len(vLog.Topics) != 3 {
			return nil, nil
		}
		if len(vLog.Data) < 32 {
			return nil, fmt.Errorf("invalid Transfer event: insufficient data")
		}

		event.Kind = domain.EventKindTransfer
		event.From = common.BytesToAddress(vLog.Topics[1].Bytes()).Hex()
		event.To = common.BytesToAddress(vLog.Topics[2].Bytes()).Hex()
		event.Value = new(big.Int).SetBytes(vLog.Data[0:32]).String()

	case approvalEventSignature:
		// 4 topics is the ERC721 form of the same signature
		if len(vLog.Topics) != 3 {
			return nil, nil
		}
		if len(vLog.Data) < 32 {
			return nil, fmt.Errorf("invalid Approval event: insufficient data")
		}

		event.Kind = domain.EventKindApproval
		event.Owner = common.BytesToAddress(vLog.Topics[1].Bytes()).Hex()
		event.Spender = common.BytesToAddress(vLog.Topics[2].Bytes()).Hex()
		event.Value = new(big.Int).SetBytes(vLog.Data[0:32]).String()

	case roleGrantedEventSignature:
		if len(vLog.Topics) != 4 {
			return nil, fmt.Errorf("invalid RoleGranted event: expected 4 topics, got %d", len(vLog.Topics))
		}

		event.Kind = domain.EventKindRoleGranted
		event.Role = vLog.Topics[1].Hex()
		event.Account = common.BytesToAddress(vLog.Topics[2].Bytes()).Hex()
		event.Sender = common.BytesToAddress(vLog.Topics[3].Bytes()).Hex()

	case roleRevokedEventSignature:
		if len(vLog.Topics) != 4 {
			return nil, fmt.Errorf("invalid RoleRevoked event: expected 4 topics, got %d", len(vLog.Topics))
		}

		event.Kind = domain.EventKindRoleRevoked
		event.Role = vLog.Topics[1].Hex()
		event.Account = common.BytesToAddress(vLog.Topics[2].Bytes()).Hex()
		event.Sender = common.BytesToAddress(vLog.Topics[3].Bytes()).Hex()

	case roleAdminChangedEventSignature:
		if len(vLog.Topics) != 4 {
			return nil, fmt.Errorf("invalid RoleAdminChanged event: expected 4 topics, got %d", len(vLog.Topics))
		}

		event.Kind = domain.EventKindRoleAdminChanged
		event.Role = vLog.Topics[1].Hex()
		event.PreviousAdminRole = vLog.Topics[2].Hex()
		event.NewAdminRole = vLog.Topics[3].Hex()

	case tokenCreatedEventSignature:
		if len(vLog.Topics) != 3 {
			return nil, fmt.Errorf("invalid TokenCreated event: expected 3 topics, got %d", len(vLog.Topics))
		}

		event.Kind = domain.EventKindTokenCreated
		event.Token = common.BytesToAddress(vLog.Topics[1].Bytes()).Hex()
		event.Creator = common.BytesToAddress(vLog.Topics[2].Bytes()).Hex()

	default:
		return nil, nil
	}

	return event, nil
}

// Close closes the connection
func (c *ethereumClient) Close() {
	if c.client == nil {
		return
	}
	c.client.Close()
}
