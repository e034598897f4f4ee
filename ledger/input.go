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

package ledger

import (
	"fmt"

	"github.com/blinklabs-io/gochainlibs/codec"
	"github.com/blinklabs-io/gochainlibs/crypto"
	"github.com/blinklabs-io/gochainlibs/ledger/common"
)

const (
	// InputAccountMarker in the index byte marks an account input
	InputAccountMarker = 0xff
	InputPointerSize   = 32
	// 1 byte index + 8 byte value + pointer
	inputSize = 1 + 8 + InputPointerSize
)

type InputType uint8

const (
	InputTypeUtxo InputType = iota
	InputTypeAccount
)

func (t InputType) String() string {
	switch t {
	case InputTypeUtxo:
		return "Utxo"
	case InputTypeAccount:
		return "Account"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// UtxoPointer references an output of an earlier transaction
type UtxoPointer struct {
	TransactionId common.Blake2b256
	OutputIndex   uint8
}

func (p UtxoPointer) String() string {
	return fmt.Sprintf("%s#%d", p.TransactionId.String(), p.OutputIndex)
}

// Input spends either an unspent output or value held by an account
type Input struct {
	inputType InputType
	index     uint8
	value     common.Value
	pointer   [InputPointerSize]byte
}

// NewAccountInput spends value from the account identified by its public key
func NewAccountInput(account crypto.PublicKey, value common.Value) Input {
	return Input{
		inputType: InputTypeAccount,
		index:     InputAccountMarker,
		value:     value,
		pointer:   account,
	}
}

// NewAccountInputFromAddress spends value from the account behind an account
// address
func NewAccountInputFromAddress(
	addr common.Address,
	value common.Value,
) (Input, error) {
	if addr.Kind() != common.AddressKindAccount {
		return Input{}, fmt.Errorf(
			"%w: %s address does not identify an account",
			common.ErrInvalidAddress,
			addr.Kind(),
		)
	}
	account, _ := addr.AccountKey()
	return NewAccountInput(account, value), nil
}

// NewUtxoInput spends the referenced output. Its value must be the value of
// that output
func NewUtxoInput(pointer UtxoPointer, value common.Value) (Input, error) {
	if pointer.OutputIndex == InputAccountMarker {
		return Input{}, common.IndexOutOfRangeError{
			Index: int(pointer.OutputIndex),
			Size:  InputAccountMarker,
		}
	}
	return Input{
		inputType: InputTypeUtxo,
		index:     pointer.OutputIndex,
		value:     value,
		pointer:   pointer.TransactionId,
	}, nil
}

func (i Input) Type() InputType {
	return i.inputType
}

func (i Input) Value() common.Value {
	return i.value
}

// Account returns the account public key of an account input
func (i Input) Account() (crypto.PublicKey, bool) {
	if i.inputType != InputTypeAccount {
		return crypto.PublicKey{}, false
	}
	return i.pointer, true
}

// AccountAddress returns the account address of an account input
func (i Input) AccountAddress(
	discrimination common.Discrimination,
) (common.Address, bool) {
	account, ok := i.Account()
	if !ok {
		return common.Address{}, false
	}
	return common.NewAccountAddress(discrimination, account), true
}

// UtxoPointer returns the referenced output of a UTxO input
func (i Input) UtxoPointer() (UtxoPointer, bool) {
	if i.inputType != InputTypeUtxo {
		return UtxoPointer{}, false
	}
	return UtxoPointer{
		TransactionId: i.pointer,
		OutputIndex:   i.index,
	}, true
}

func (i Input) String() string {
	if i.inputType == InputTypeAccount {
		return fmt.Sprintf(
			"Account(%s, %d)",
			crypto.PublicKey(i.pointer).String(),
			i.value,
		)
	}
	ptr, _ := i.UtxoPointer()
	return fmt.Sprintf("Utxo(%s, %d)", ptr.String(), i.value)
}

func (i Input) encode(w *codec.Writer) {
	w.PutU8(i.index)
	w.PutU64(uint64(i.value))
	w.PutBytes(i.pointer[:])
}

func decodeInput(r *codec.Reader) (Input, error) {
	var ret Input
	index, err := r.ReadU8()
	if err != nil {
		return Input{}, err
	}
	value, err := r.ReadU64()
	if err != nil {
		return Input{}, err
	}
	if err := r.ReadInto(ret.pointer[:]); err != nil {
		return Input{}, err
	}
	ret.index = index
	ret.value = common.Value(value)
	if index == InputAccountMarker {
		ret.inputType = InputTypeAccount
	} else {
		ret.inputType = InputTypeUtxo
	}
	return ret, nil
}
