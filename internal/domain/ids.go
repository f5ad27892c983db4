package domain

import (
	"encoding/binary"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Entity identifiers are deterministic functions of event metadata. All
// address-derived ids use the lowercase hex form so lookups are insensitive
// to EIP-55 checksum casing at the source.

// SecondsPerDay is the width of a daily metric bucket
const SecondsPerDay = 86400

// AddressID returns the entity id for a token or account address
func AddressID(address common.Address) string {
	return strings.ToLower(address.Hex())
}

// HexAddressID normalizes a hex address string into an entity id
func HexAddressID(address string) string {
	return AddressID(common.HexToAddress(address))
}

// TransactionID returns the entity id for a transaction hash
func TransactionID(txHash common.Hash) string {
	return txHash.Hex()
}

// RoleID returns the entity id for a 32-byte role hash
func RoleID(role common.Hash) string {
	return role.Hex()
}

// EventRecordID derives the id of an immutable event record from its
// transaction hash and log index: hex(txHash ++ big-endian uint32 logIndex).
// The composite is unique per log even when one transaction emits several.
func EventRecordID(txHash common.Hash, logIndex uint64) string {
	buf := make([]byte, 0, common.HashLength+4)
	buf = append(buf, txHash.Bytes()...)
	buf = binary.BigEndian.AppendUint32(buf, uint32(logIndex)) //nolint:gosec,G115 // log indexes fit in 32 bits
	return "0x" + hex.EncodeToString(buf)
}

// DayBucket returns the UTC day window index for a block timestamp
func DayBucket(ts time.Time) int64 {
	return ts.Unix() / SecondsPerDay
}

// DailyMetricID returns the id of the per-token daily rollup bucket
func DailyMetricID(tokenID string, ts time.Time) string {
	return tokenID + "-" + strconv.FormatInt(DayBucket(ts), 10)
}

// AccountBalanceID returns the id of a balance snapshot, keyed by account and block
func AccountBalanceID(accountID string, blockNumber uint64) string {
	return accountID + "-" + strconv.FormatUint(blockNumber, 10)
}

// FormatDate renders a block timestamp as a UTC YYYY-MM-DD calendar date
func FormatDate(ts time.Time) string {
	return ts.UTC().Format("2006-01-02")
}
