package types

import (
	"database/sql/driver"
	"fmt"
	"math/big"
)

// BigInt wraps math/big.Int so entity counters and monetary quantities can be
// stored in a numeric(78,0) column, large enough for any uint256 value.
// The zero value is usable and equals 0.
type BigInt struct {
	big.Int
}

// NewBigInt creates a BigInt from an int64
func NewBigInt(x int64) *BigInt {
	b := new(BigInt)
	b.SetInt64(x)
	return b
}

// NewBigIntFromString parses a base-10 string into a BigInt
func NewBigIntFromString(s string) (*BigInt, error) {
	b := new(BigInt)
	if _, ok := b.SetString(s, 10); !ok {
		return nil, fmt.Errorf("invalid numeric string: %q", s)
	}
	return b, nil
}

// Clone returns an independent copy
func (b *BigInt) Clone() *BigInt {
	c := new(BigInt)
	c.Set(&b.Int)
	return c
}

// Add adds x in place and returns the receiver
func (b *BigInt) Add(x *big.Int) *BigInt {
	b.Int.Add(&b.Int, x)
	return b
}

// Sub subtracts x in place and returns the receiver
func (b *BigInt) Sub(x *big.Int) *BigInt {
	b.Int.Sub(&b.Int, x)
	return b
}

// Inc increments by one in place and returns the receiver
func (b *BigInt) Inc() *BigInt {
	b.Int.Add(&b.Int, bigOne)
	return b
}

var bigOne = big.NewInt(1)

// Value implements driver.Valuer, emitting the decimal representation
func (b *BigInt) Value() (driver.Value, error) {
	if b == nil {
		return "0", nil
	}
	return b.String(), nil
}

// Scan implements sql.Scanner, accepting the textual forms Postgres returns
// for numeric columns
func (b *BigInt) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case nil:
		b.SetInt64(0)
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	case int64:
		b.SetInt64(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into BigInt", src)
	}

	if _, ok := b.SetString(s, 10); !ok {
		return fmt.Errorf("cannot parse %q as numeric", s)
	}
	return nil
}

// GormDataType tells gorm which column type to use
func (BigInt) GormDataType() string {
	return "numeric(78,0)"
}

// MarshalJSON encodes the value as a JSON string to avoid precision loss in consumers
func (b *BigInt) MarshalJSON() ([]byte, error) {
	if b == nil {
		return []byte(`"0"`), nil
	}
	return []byte(`"` + b.String() + `"`), nil
}

// UnmarshalJSON accepts both quoted and bare decimal representations
func (b *BigInt) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if s == "" || s == "null" {
		b.SetInt64(0)
		return nil
	}
	if _, ok := b.SetString(s, 10); !ok {
		return fmt.Errorf("cannot parse %q as numeric", s)
	}
	return nil
}
