package types_test

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PaulieB14/monad-usdc-indexer/internal/types"
)

func TestBigInt_FromString(t *testing.T) {
	b, err := types.NewBigIntFromString("115792089237316195423570985008687907853269984665640564039457584007913129639935")
	require.NoError(t, err)
	assert.Equal(t, "115792089237316195423570985008687907853269984665640564039457584007913129639935", b.String())

	_, err = types.NewBigIntFromString("12x4")
	assert.Error(t, err)

	_, err = types.NewBigIntFromString("")
	assert.Error(t, err)
}

func TestBigInt_Arithmetic(t *testing.T) {
	b := types.NewBigInt(100)

	b.Add(big.NewInt(50))
	assert.Equal(t, "150", b.String())

	b.Sub(big.NewInt(200))
	assert.Equal(t, "-50", b.String())

	b.Inc()
	assert.Equal(t, "-49", b.String())
}

func TestBigInt_CloneIsIndependent(t *testing.T) {
	original := types.NewBigInt(42)
	clone := original.Clone()

	clone.Inc()

	assert.Equal(t, "42", original.String())
	assert.Equal(t, "43", clone.String())
}

func TestBigInt_DriverValue(t *testing.T) {
	b := types.NewBigInt(1000000)
	v, err := b.Value()
	require.NoError(t, err)
	assert.Equal(t, "1000000", v)

	var nilValue *types.BigInt
	v, err = nilValue.Value()
	require.NoError(t, err)
	assert.Equal(t, "0", v)
}

func TestBigInt_Scan(t *testing.T) {
	tests := []struct {
		name     string
		src      any
		expected string
		wantErr  bool
	}{
		{name: "string", src: "12345", expected: "12345"},
		{name: "bytes", src: []byte("67890"), expected: "67890"},
		{name: "int64", src: int64(-7), expected: "-7"},
		{name: "nil", src: nil, expected: "0"},
		{name: "garbage", src: "12x4", wantErr: true},
		{name: "unsupported type", src: 3.14, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var b types.BigInt
			err := b.Scan(tc.src)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, b.String())
		})
	}
}

func TestBigInt_JSONRoundTrip(t *testing.T) {
	b := types.NewBigInt(0)
	b.Add(new(big.Int).Lsh(big.NewInt(1), 200))

	data, err := json.Marshal(b)
	require.NoError(t, err)
	// Encoded as a string so consumers keep full precision
	assert.Equal(t, byte('"'), data[0])

	var decoded types.BigInt
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, b.String(), decoded.String())
}

func TestBigInt_UnmarshalBareAndNull(t *testing.T) {
	var b types.BigInt
	require.NoError(t, b.UnmarshalJSON([]byte("12345")))
	assert.Equal(t, "12345", b.String())

	require.NoError(t, b.UnmarshalJSON([]byte("null")))
	assert.Equal(t, "0", b.String())
}
