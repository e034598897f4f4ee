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

package chainlibs_test

import (
	"testing"

	chainlibs "github.com/blinklabs-io/gochainlibs"
	"github.com/blinklabs-io/gochainlibs/crypto"
	"github.com/blinklabs-io/gochainlibs/ledger/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetworkLookup(t *testing.T) {
	assert.Equal(t, chainlibs.NetworkMainnet, chainlibs.NetworkByName("mainnet"))
	assert.Equal(t, chainlibs.NetworkTestnet, chainlibs.NetworkByAddressPrefix("ta"))
	assert.Equal(t, chainlibs.NetworkInvalid, chainlibs.NetworkByName("nope"))
	assert.Equal(t, "testnet", chainlibs.NetworkTestnet.String())
}

func TestNetworkAddresses(t *testing.T) {
	key, err := crypto.NewPublicKeyFromHex(
		"cbc7ccdb9a51eea4e4c7088353c1a1902dcf685f739194dc9faff26b7f42e219",
	)
	require.NoError(t, err)
	mainnet := chainlibs.NetworkMainnet
	addr := mainnet.AccountAddress(key)
	encoded := mainnet.FormatAddress(addr)
	assert.Equal(t, "ca1qh9u0nxmnfg7af8ycuygx57p5xgzmnmgtaeer9xun7hly6mlgt3pj2xk344", encoded)
	parsed, err := mainnet.ParseAddress(encoded)
	require.NoError(t, err)
	assert.Equal(t, addr, parsed)

	testnet := chainlibs.NetworkTestnet
	_, err = testnet.ParseAddress(encoded)
	assert.ErrorIs(t, err, common.ErrInvalidAddress)
	// right prefix, wrong discrimination
	_, err = testnet.ParseAddress(addr.Bech32(testnet.AddressPrefix))
	assert.ErrorIs(t, err, common.ErrInvalidAddress)
	testAddr := testnet.AccountAddress(key)
	parsed, err = testnet.ParseAddress(testnet.FormatAddress(testAddr))
	require.NoError(t, err)
	assert.Equal(t, common.DiscriminationTest, parsed.Discrimination())
}
