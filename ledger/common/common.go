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

package common

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/blinklabs-io/gochainlibs/codec"
	"github.com/blinklabs-io/gochainlibs/crypto"
	"golang.org/x/crypto/blake2b"
)

const (
	Blake2b256Size = 32
	PoolIdSize     = 32
)

type Blake2b256 [Blake2b256Size]byte

func NewBlake2b256(data []byte) Blake2b256 {
	b := Blake2b256{}
	copy(b[:], data)
	return b
}

// NewBlake2b256FromHex parses a hex encoded hash of exactly Blake2b256Size bytes
func NewBlake2b256FromHex(s string) (Blake2b256, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return Blake2b256{}, fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}
	if len(data) != Blake2b256Size {
		return Blake2b256{}, fmt.Errorf(
			"%w: hash must be %d bytes, got %d",
			ErrInvalidHex,
			Blake2b256Size,
			len(data),
		)
	}
	return NewBlake2b256(data), nil
}

func (b Blake2b256) String() string {
	return hex.EncodeToString(b[:])
}

func (b Blake2b256) Bytes() []byte {
	return b[:]
}

func (b Blake2b256) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// Blake2b256Hash generates a Blake2b-256 hash from the provided data
func Blake2b256Hash(data []byte) Blake2b256 {
	return Blake2b256(blake2b.Sum256(data))
}

// Blake2b256HashParts hashes the concatenation of the provided byte slices
func Blake2b256HashParts(parts ...[]byte) Blake2b256 {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(
			fmt.Sprintf(
				"unexpected error creating empty blake2b hash: %s",
				err,
			),
		)
	}
	for _, part := range parts {
		h.Write(part)
	}
	return Blake2b256(h.Sum(nil))
}

// PoolId identifies a stake pool
type PoolId [PoolIdSize]byte

func NewPoolIdFromHex(s string) (PoolId, error) {
	h, err := NewBlake2b256FromHex(s)
	if err != nil {
		return PoolId{}, err
	}
	return PoolId(h), nil
}

func (p PoolId) String() string {
	return hex.EncodeToString(p[:])
}

func (p PoolId) Bytes() []byte {
	return p[:]
}

func (p PoolId) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// DecodeBlake2b256 reads a hash from r
func DecodeBlake2b256(r *codec.Reader) (Blake2b256, error) {
	var ret Blake2b256
	if err := r.ReadInto(ret[:]); err != nil {
		return Blake2b256{}, err
	}
	return ret, nil
}

// DecodePublicKey reads a raw public key from r
func DecodePublicKey(r *codec.Reader) (crypto.PublicKey, error) {
	var ret crypto.PublicKey
	if err := r.ReadInto(ret[:]); err != nil {
		return crypto.PublicKey{}, err
	}
	return ret, nil
}
