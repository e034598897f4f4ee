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

package crypto_test

import (
	"bytes"
	"crypto/ed25519"
	"testing"

	"github.com/blinklabs-io/gochainlibs/crypto"
	"github.com/blinklabs-io/gochainlibs/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testExtendedKeyBech32 = "ed25519e_sk1gz0ff4w444nwejap5shxrllypz5euswq6wn04fffzes02atw99xkd4jn838v3vrfg9eqt7f4sxjlsy0tdcmj0d2dqvwc8ztwgyfnwyszvjg32"
	testPublicKeyBech32   = "ed25519_pk1e0rueku628h2fex8pzp48sdpjqku76zlwwgefhyl4lexkl6zugvs0uuy0w"
	testPublicKeyHex      = "cbc7ccdb9a51eea4e4c7088353c1a1902dcf685f739194dc9faff26b7f42e219"
)

func TestPublicKeyFromBech32(t *testing.T) {
	pub, err := crypto.NewPublicKeyFromBech32(testPublicKeyBech32)
	require.NoError(t, err)
	assert.Equal(t, testPublicKeyHex, pub.String())
	assert.Equal(t, testPublicKeyBech32, pub.Bech32())
	fromHex, err := crypto.NewPublicKeyFromHex(testPublicKeyHex)
	require.NoError(t, err)
	assert.Equal(t, pub, fromHex)
}

func TestPublicKeyInvalid(t *testing.T) {
	testDefs := []struct {
		name    string
		parse   func() error
		wantErr error
	}{
		{
			name: "BadHex",
			parse: func() error {
				_, err := crypto.NewPublicKeyFromHex("zz")
				return err
			},
			wantErr: crypto.ErrInvalidHex,
		},
		{
			name: "ShortHex",
			parse: func() error {
				_, err := crypto.NewPublicKeyFromHex("cbc7")
				return err
			},
			wantErr: crypto.ErrInvalidKeyFormat,
		},
		{
			name: "WrongPrefix",
			parse: func() error {
				_, err := crypto.NewPublicKeyFromBech32(testExtendedKeyBech32)
				return err
			},
			wantErr: crypto.ErrInvalidKeyFormat,
		},
		{
			name: "BadChecksum",
			parse: func() error {
				_, err := crypto.NewPublicKeyFromBech32(
					"ed25519_pk1e0rueku628h2fex8pzp48sdpjqku76zlwwgefhyl4lexkl6zugvs0uuy0q",
				)
				return err
			},
			wantErr: crypto.ErrInvalidKeyFormat,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			assert.ErrorIs(t, testDef.parse(), testDef.wantErr)
		})
	}
}

func TestExtendedPrivateKey(t *testing.T) {
	key, err := crypto.NewPrivateKeyFromBech32(testExtendedKeyBech32)
	require.NoError(t, err)
	assert.True(t, key.IsExtended())
	assert.Equal(t, testPublicKeyHex, key.Public().String())
	assert.Equal(t, testExtendedKeyBech32, key.Bech32())
	assert.Len(t, key.Bytes(), crypto.ExtendedPrivateKeySize)
}

func TestExtendedPrivateKeySignature(t *testing.T) {
	// Stake delegation content (stake key || pool id) and its signature,
	// produced by the reference implementation with the same key
	message := test.DecodeHexString(
		testPublicKeyHex +
			"541db50349e2bc1a5b1a73939b9d86fc45067117cc930c36afbb6fb0a9329d41",
	)
	expected := "faef2a78b53511b598b9484108fff109d1a098558e037c6c04246a7b78557eccfb7f38a774dcf584bb68c99db205f6e95ffde4c42696a8b0d730030aaacad704"
	key, err := crypto.NewPrivateKeyFromBech32(testExtendedKeyBech32)
	require.NoError(t, err)
	sig, err := key.Sign(message)
	require.NoError(t, err)
	assert.Equal(t, expected, sig.String())
	assert.True(t, key.Public().Verify(message, sig))
	assert.True(
		t,
		ed25519.Verify(key.Public().Bytes(), message, sig.Bytes()),
	)
	message[0] ^= 0x01
	assert.False(t, key.Public().Verify(message, sig))
}

func TestExtendedPrivateKeyRejectsUnclampedScalar(t *testing.T) {
	data := make([]byte, crypto.ExtendedPrivateKeySize)
	data[31] = 0x40
	data[0] = 0x01
	_, err := crypto.NewPrivateKeyFromBytes(data)
	assert.ErrorIs(t, err, crypto.ErrInvalidKeyFormat)
	data[0] = 0x00
	data[31] = 0x80
	_, err = crypto.NewPrivateKeyFromBytes(data)
	assert.ErrorIs(t, err, crypto.ErrInvalidKeyFormat)
}

func TestNormalPrivateKeyRFC8032(t *testing.T) {
	// RFC 8032 section 7.1, test 1
	key, err := crypto.NewPrivateKeyFromHex(
		"9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60",
	)
	require.NoError(t, err)
	assert.False(t, key.IsExtended())
	assert.Equal(
		t,
		"d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a",
		key.Public().String(),
	)
	sig, err := key.Sign(nil)
	require.NoError(t, err)
	assert.Equal(
		t,
		"e5564300c360ac729086e2cc806e828a84877f1eb8e5d974d873e065224901555fb8821590a33bacc61e39701cf9b46bd25bf5f0595bbe24655141438e7a100b",
		sig.String(),
	)
	roundTrip, err := crypto.NewPrivateKeyFromBech32(key.Bech32())
	require.NoError(t, err)
	assert.Equal(t, key.Bytes(), roundTrip.Bytes())
	assert.Equal(t, key.Public(), roundTrip.Public())
}

func TestGeneratePrivateKeys(t *testing.T) {
	entropy := bytes.Repeat([]byte{0xa5}, 64)
	normal, err := crypto.GeneratePrivateKey(bytes.NewReader(entropy))
	require.NoError(t, err)
	extended, err := crypto.GenerateExtendedPrivateKey(bytes.NewReader(entropy))
	require.NoError(t, err)
	assert.True(t, extended.IsExtended())
	for _, key := range []crypto.PrivateKey{normal, extended} {
		sig, err := key.Sign([]byte("message"))
		require.NoError(t, err)
		assert.True(t, key.Public().Verify([]byte("message"), sig))
	}
	_, err = crypto.GeneratePrivateKey(bytes.NewReader([]byte{0x01}))
	assert.Error(t, err)
}

func TestZeroPrivateKeyCannotSign(t *testing.T) {
	var key crypto.PrivateKey
	_, err := key.Sign([]byte("message"))
	assert.ErrorIs(t, err, crypto.ErrInvalidKeyFormat)
}

func TestPrivateKeyInvalidLength(t *testing.T) {
	_, err := crypto.NewPrivateKeyFromBytes(make([]byte, 31))
	assert.ErrorIs(t, err, crypto.ErrInvalidKeyFormat)
	_, err = crypto.NewPrivateKeyFromHex("not hex")
	assert.ErrorIs(t, err, crypto.ErrInvalidHex)
	_, err = crypto.NewPrivateKeyFromBech32(testPublicKeyBech32)
	assert.ErrorIs(t, err, crypto.ErrInvalidKeyFormat)
}
