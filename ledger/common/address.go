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
	"encoding/json"
	"fmt"

	"github.com/blinklabs-io/gochainlibs/codec"
	"github.com/blinklabs-io/gochainlibs/crypto"
)

const (
	AddressHeaderKindMask           = 0x7f
	AddressHeaderDiscriminationMask = 0x80

	AddressKindSingle   AddressKind = 3
	AddressKindGroup    AddressKind = 4
	AddressKindAccount  AddressKind = 5
	AddressKindMultisig AddressKind = 6

	DiscriminationProduction Discrimination = 0
	DiscriminationTest       Discrimination = 1

	// AddressPrefix is the bech32 human readable part used when none is
	// specified
	AddressPrefix = "ca"

	MultisigRootSize = 32
)

type AddressKind uint8

func (k AddressKind) String() string {
	switch k {
	case AddressKindSingle:
		return "single"
	case AddressKindGroup:
		return "group"
	case AddressKindAccount:
		return "account"
	case AddressKindMultisig:
		return "multisig"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// payloadSize returns the number of bytes following the header byte
func (k AddressKind) payloadSize() (int, bool) {
	switch k {
	case AddressKindSingle, AddressKindAccount:
		return crypto.PublicKeySize, true
	case AddressKindGroup:
		return 2 * crypto.PublicKeySize, true
	case AddressKindMultisig:
		return MultisigRootSize, true
	default:
		return 0, false
	}
}

type Discrimination uint8

func (d Discrimination) String() string {
	if d == DiscriminationTest {
		return "test"
	}
	return "production"
}

// Address is a spending or account address. The zero value is not a valid
// address
type Address struct {
	kind           AddressKind
	discrimination Discrimination
	// spending key for single and group addresses, account key for account
	// addresses, merkle root for multisig addresses
	key [32]byte
	// account key for group addresses
	accountKey crypto.PublicKey
}

func NewSingleAddress(
	discrimination Discrimination,
	spendingKey crypto.PublicKey,
) Address {
	return Address{
		kind:           AddressKindSingle,
		discrimination: discrimination,
		key:            spendingKey,
	}
}

func NewGroupAddress(
	discrimination Discrimination,
	spendingKey crypto.PublicKey,
	accountKey crypto.PublicKey,
) Address {
	return Address{
		kind:           AddressKindGroup,
		discrimination: discrimination,
		key:            spendingKey,
		accountKey:     accountKey,
	}
}

func NewAccountAddress(
	discrimination Discrimination,
	accountKey crypto.PublicKey,
) Address {
	return Address{
		kind:           AddressKindAccount,
		discrimination: discrimination,
		key:            accountKey,
	}
}

func NewMultisigAddress(
	discrimination Discrimination,
	root [MultisigRootSize]byte,
) Address {
	return Address{
		kind:           AddressKindMultisig,
		discrimination: discrimination,
		key:            root,
	}
}

// NewAddress returns an Address based on the provided bech32 address string.
// The human readable part is not checked
func NewAddress(addr string) (Address, error) {
	_, data, err := crypto.Bech32Decode(addr)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	return NewAddressFromBytes(data)
}

// NewAddressFromBytes returns an Address based on the raw bytes provided.
// The bytes must contain exactly one address
func NewAddressFromBytes(data []byte) (Address, error) {
	r := codec.NewReader(data)
	ret, err := DecodeAddress(r)
	if err != nil {
		return Address{}, err
	}
	if !r.Empty() {
		return Address{}, fmt.Errorf(
			"%w: %d trailing bytes",
			ErrInvalidAddress,
			r.Len(),
		)
	}
	return ret, nil
}

// DecodeAddress reads an address from r. Its length is implied by the kind
// in the header byte
func DecodeAddress(r *codec.Reader) (Address, error) {
	header, err := r.ReadU8()
	if err != nil {
		return Address{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	ret := Address{
		kind: AddressKind(header & AddressHeaderKindMask),
	}
	if header&AddressHeaderDiscriminationMask != 0 {
		ret.discrimination = DiscriminationTest
	}
	size, ok := ret.kind.payloadSize()
	if !ok {
		return Address{}, fmt.Errorf(
			"%w: unknown address kind %d",
			ErrInvalidAddress,
			uint8(ret.kind),
		)
	}
	if err := r.ReadInto(ret.key[:]); err != nil {
		return Address{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if size > len(ret.key) {
		if err := r.ReadInto(ret.accountKey[:]); err != nil {
			return Address{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
		}
	}
	return ret, nil
}

// Validate reports whether the address has a kind that can be encoded
func (a Address) Validate() error {
	if _, ok := a.kind.payloadSize(); !ok {
		return fmt.Errorf(
			"%w: unknown address kind %d",
			ErrInvalidAddress,
			uint8(a.kind),
		)
	}
	return nil
}

func (a Address) Kind() AddressKind {
	return a.kind
}

func (a Address) Discrimination() Discrimination {
	return a.discrimination
}

// SpendingKey returns the spending key of single and group addresses
func (a Address) SpendingKey() (crypto.PublicKey, bool) {
	switch a.kind {
	case AddressKindSingle, AddressKindGroup:
		return a.key, true
	default:
		return crypto.PublicKey{}, false
	}
}

// AccountKey returns the account key of account and group addresses
func (a Address) AccountKey() (crypto.PublicKey, bool) {
	switch a.kind {
	case AddressKindAccount:
		return a.key, true
	case AddressKindGroup:
		return a.accountKey, true
	default:
		return crypto.PublicKey{}, false
	}
}

// Encode appends the wire form of the address to w
func (a Address) Encode(w *codec.Writer) {
	header := uint8(a.kind) & AddressHeaderKindMask
	if a.discrimination == DiscriminationTest {
		header |= AddressHeaderDiscriminationMask
	}
	w.PutU8(header)
	w.PutBytes(a.key[:])
	if a.kind == AddressKindGroup {
		w.PutBytes(a.accountKey[:])
	}
}

// Bytes returns the raw bytes for the address
func (a Address) Bytes() []byte {
	size, _ := a.kind.payloadSize()
	w := codec.NewWriter(1 + size)
	a.Encode(w)
	return w.Bytes()
}

// Bech32 returns the bech32 form of the address with the given prefix
func (a Address) Bech32(prefix string) string {
	encoded, err := crypto.Bech32Encode(prefix, a.Bytes())
	if err != nil {
		panic(
			fmt.Sprintf("unexpected error encoding data as bech32: %s", err),
		)
	}
	return encoded
}

// String returns the bech32 form of the address using AddressPrefix
func (a Address) String() string {
	return a.Bech32(AddressPrefix)
}

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}
