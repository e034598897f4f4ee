// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package common_test

import (
	"math"
	"testing"

	"github.com/blinklabs-io/gochainlibs/crypto"
	"github.com/blinklabs-io/gochainlibs/internal/test"
	"github.com/blinklabs-io/gochainlibs/ledger/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressFromBech32(t *testing.T) {
	testDefs := []struct {
		address        string
		hex            string
		kind           common.AddressKind
		discrimination common.Discrimination
	}{
		{
			address:        "ca1qh9u0nxmnfg7af8ycuygx57p5xgzmnmgtaeer9xun7hly6mlgt3pj2xk344",
			hex:            "05cbc7ccdb9a51eea4e4c7088353c1a1902dcf685f739194dc9faff26b7f42e219",
			kind:           common.AddressKindAccount,
			discrimination: common.DiscriminationProduction,
		},
		{
			address:        "ca1q5nr5pvt9e5p009strshxndrsx5etcentslp2rwj6csm8sfk24a2w3swacn",
			hex:            "05263a058b2e6817bcb058e1734da381a995e3335c3e150dd2d621b3c136557aa7",
			kind:           common.AddressKindAccount,
			discrimination: common.DiscriminationProduction,
		},
		{
			address:        "ca1qkt4v2dgywvg6r6ruehaec9t0kp9uw58pudkq327s0w5x04hfwwsus6xplp",
			hex:            "05975629a823988d0f43e66fdce0ab7d825e3a870f1b60455e83dd433eb74b9d0e",
			kind:           common.AddressKindAccount,
			discrimination: common.DiscriminationProduction,
		},
		{
			address:        "ca1sk6gu33yw73dr60f2ehp6xemgf30r49rzc25gkrfnrfuuyf0mycgjvef0dw",
			hex:            "85b48e462477a2d1e9e9566e1d1b3b4262f1d4a3161544586998d3ce112fd93089",
			kind:           common.AddressKindAccount,
			discrimination: common.DiscriminationTest,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.address, func(t *testing.T) {
			addr, err := common.NewAddress(testDef.address)
			require.NoError(t, err)
			assert.Equal(t, testDef.kind, addr.Kind())
			assert.Equal(t, testDef.discrimination, addr.Discrimination())
			assert.Equal(t, test.DecodeHexString(testDef.hex), addr.Bytes())
			assert.Equal(t, testDef.address, addr.String())
			assert.Equal(t, testDef.address, addr.Bech32("ca"))
			accountKey, ok := addr.AccountKey()
			require.True(t, ok)
			assert.Equal(t, testDef.hex[2:], accountKey.String())
			_, ok = addr.SpendingKey()
			assert.False(t, ok)
		})
	}
}

func TestAddressConstructors(t *testing.T) {
	spending, err := crypto.NewPublicKeyFromHex(
		"cbc7ccdb9a51eea4e4c7088353c1a1902dcf685f739194dc9faff26b7f42e219",
	)
	require.NoError(t, err)
	account, err := crypto.NewPublicKeyFromHex(
		"263a058b2e6817bcb058e1734da381a995e3335c3e150dd2d621b3c136557aa7",
	)
	require.NoError(t, err)
	testDefs := []struct {
		name    string
		address common.Address
		size    int
		header  byte
	}{
		{
			name:    "Single",
			address: common.NewSingleAddress(common.DiscriminationProduction, spending),
			size:    33,
			header:  0x03,
		},
		{
			name:    "Group",
			address: common.NewGroupAddress(common.DiscriminationTest, spending, account),
			size:    65,
			header:  0x84,
		},
		{
			name:    "Account",
			address: common.NewAccountAddress(common.DiscriminationTest, account),
			size:    33,
			header:  0x85,
		},
		{
			name:    "Multisig",
			address: common.NewMultisigAddress(common.DiscriminationProduction, [32]byte{0x01}),
			size:    33,
			header:  0x06,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			data := testDef.address.Bytes()
			require.Len(t, data, testDef.size)
			assert.Equal(t, testDef.header, data[0])
			decoded, err := common.NewAddressFromBytes(data)
			require.NoError(t, err)
			assert.Equal(t, testDef.address, decoded)
			fromBech32, err := common.NewAddress(testDef.address.Bech32("addr"))
			require.NoError(t, err)
			assert.Equal(t, testDef.address, fromBech32)
		})
	}
	group := common.NewGroupAddress(common.DiscriminationTest, spending, account)
	spendingKey, ok := group.SpendingKey()
	require.True(t, ok)
	assert.Equal(t, spending, spendingKey)
	accountKey, ok := group.AccountKey()
	require.True(t, ok)
	assert.Equal(t, account, accountKey)
}

func TestAddressInvalid(t *testing.T) {
	testDefs := []struct {
		name string
		data []byte
	}{
		{name: "Empty", data: nil},
		{name: "UnknownKind", data: append([]byte{0x07}, make([]byte, 32)...)},
		{name: "Short", data: append([]byte{0x05}, make([]byte, 31)...)},
		{name: "ShortGroup", data: append([]byte{0x04}, make([]byte, 40)...)},
		{name: "Trailing", data: append([]byte{0x05}, make([]byte, 33)...)},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			_, err := common.NewAddressFromBytes(testDef.data)
			assert.ErrorIs(t, err, common.ErrInvalidAddress)
		})
	}
	_, err := common.NewAddress("not an address")
	assert.ErrorIs(t, err, common.ErrInvalidAddress)
}

func TestBlake2b256FromHex(t *testing.T) {
	h, err := common.NewBlake2b256FromHex(
		"6a702a181151b772ca0acbdc4d2870ed80c09b626b29fffc2e47abf2330ad0cd",
	)
	require.NoError(t, err)
	assert.Equal(
		t,
		"6a702a181151b772ca0acbdc4d2870ed80c09b626b29fffc2e47abf2330ad0cd",
		h.String(),
	)
	_, err = common.NewBlake2b256FromHex("6a70")
	assert.ErrorIs(t, err, common.ErrInvalidHex)
	_, err = common.NewBlake2b256FromHex("zz")
	assert.ErrorIs(t, err, common.ErrInvalidHex)
}

func TestBlake2b256Hash(t *testing.T) {
	// Blake2b-256 of the empty string
	assert.Equal(
		t,
		"0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8",
		common.Blake2b256Hash(nil).String(),
	)
	assert.Equal(
		t,
		common.Blake2b256Hash([]byte("abcdef")),
		common.Blake2b256HashParts([]byte("ab"), nil, []byte("cdef")),
	)
}

func TestPoolIdFromHex(t *testing.T) {
	poolId, err := common.NewPoolIdFromHex(
		"541db50349e2bc1a5b1a73939b9d86fc45067117cc930c36afbb6fb0a9329d41",
	)
	require.NoError(t, err)
	assert.Equal(
		t,
		"541db50349e2bc1a5b1a73939b9d86fc45067117cc930c36afbb6fb0a9329d41",
		poolId.String(),
	)
	_, err = common.NewPoolIdFromHex("541d")
	assert.ErrorIs(t, err, common.ErrInvalidHex)
}

func TestValueArithmetic(t *testing.T) {
	sum, err := common.Value(1000).Add(500)
	require.NoError(t, err)
	assert.Equal(t, common.Value(1500), sum)
	diff, err := sum.Sub(1045)
	require.NoError(t, err)
	assert.Equal(t, common.Value(455), diff)
	product, err := common.Value(5).Mul(3)
	require.NoError(t, err)
	assert.Equal(t, common.Value(15), product)

	_, err = common.Value(math.MaxUint64).Add(1)
	assert.ErrorIs(t, err, common.ErrArithmeticOverflow)
	_, err = common.Value(1).Sub(2)
	assert.ErrorIs(t, err, common.ErrArithmeticOverflow)
	_, err = common.Value(math.MaxUint64).Mul(2)
	assert.ErrorIs(t, err, common.ErrArithmeticOverflow)

	total, err := common.SumValues(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, common.Value(6), total)
	_, err = common.SumValues(math.MaxUint64, 1)
	assert.ErrorIs(t, err, common.ErrArithmeticOverflow)
}

func TestSpendingCounter(t *testing.T) {
	counter := common.SpendingCounterZero()
	assert.Equal(t, []byte{0, 0, 0, 0}, counter.Bytes())
	next, err := counter.Increment()
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 1}, next.Bytes())
	_, err = common.SpendingCounter(math.MaxUint32).Increment()
	assert.ErrorIs(t, err, common.ErrArithmeticOverflow)
}

func TestTypedErrors(t *testing.T) {
	testDefs := []struct {
		err      error
		sentinel error
	}{
		{err: common.InsufficientFundsError{Inputs: 1}, sentinel: common.ErrInsufficientFunds},
		{err: common.IndexOutOfRangeError{Index: 1, Size: 1}, sentinel: common.ErrIndexOutOfRange},
		{err: common.MalformedFragmentError{Reason: "x"}, sentinel: common.ErrMalformedFragment},
		{err: common.MalformedBlockError{Reason: "x"}, sentinel: common.ErrMalformedBlock},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.err.Error(), func(t *testing.T) {
			assert.ErrorIs(t, testDef.err, testDef.sentinel)
		})
	}
	nested := common.MalformedBlockError{
		Reason: "fragment",
		Err:    common.MalformedFragmentError{Reason: "tag"},
	}
	assert.ErrorIs(t, nested, common.ErrMalformedFragment)
	assert.ErrorIs(t, nested, common.ErrMalformedBlock)
}

func TestAddressValidate(t *testing.T) {
	require.ErrorIs(t, common.Address{}.Validate(), common.ErrInvalidAddress)
	addr := common.NewAccountAddress(common.DiscriminationProduction, crypto.PublicKey{})
	require.NoError(t, addr.Validate())
}
