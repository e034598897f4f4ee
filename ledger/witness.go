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
	"errors"
	"fmt"

	"github.com/blinklabs-io/gochainlibs/codec"
	"github.com/blinklabs-io/gochainlibs/crypto"
	"github.com/blinklabs-io/gochainlibs/ledger/common"
)

const ExtendedPublicKeySize = 64

// WitnessType is the tag byte of a witness. It is also the first byte of the
// data the witness signs
type WitnessType uint8

const (
	WitnessTypeOldUtxo  WitnessType = 0
	WitnessTypeUtxo     WitnessType = 1
	WitnessTypeAccount  WitnessType = 2
	WitnessTypeMultisig WitnessType = 3
)

func (t WitnessType) String() string {
	switch t {
	case WitnessTypeOldUtxo:
		return "OldUtxo"
	case WitnessTypeUtxo:
		return "Utxo"
	case WitnessTypeAccount:
		return "Account"
	case WitnessTypeMultisig:
		return "Multisig"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// Witness authorizes the spending of one input
type Witness struct {
	witnessType WitnessType
	// OldUtxo only
	extendedPublicKey [ExtendedPublicKeySize]byte
	signature         crypto.Signature
}

// AccountWitnessSigningData returns the bytes signed by an account witness:
// the witness tag, the genesis block hash, the transaction id and the big-endian
// spending counter
func AccountWitnessSigningData(
	block0 common.Blake2b256,
	txId common.Blake2b256,
	counter common.SpendingCounter,
) []byte {
	ret := make(
		[]byte,
		0,
		1+2*common.Blake2b256Size+common.SpendingCounterSize,
	)
	ret = append(ret, byte(WitnessTypeAccount))
	ret = append(ret, block0[:]...)
	ret = append(ret, txId[:]...)
	ret = append(ret, counter.Bytes()...)
	return ret
}

// UtxoWitnessSigningData returns the bytes signed by a UTxO witness
func UtxoWitnessSigningData(
	block0 common.Blake2b256,
	txId common.Blake2b256,
) []byte {
	return utxoSigningData(WitnessTypeUtxo, block0, txId)
}

func utxoSigningData(
	witnessType WitnessType,
	block0 common.Blake2b256,
	txId common.Blake2b256,
) []byte {
	ret := make([]byte, 0, 1+2*common.Blake2b256Size)
	ret = append(ret, byte(witnessType))
	ret = append(ret, block0[:]...)
	ret = append(ret, txId[:]...)
	return ret
}

// NewAccountWitness signs a transaction for an account input
func NewAccountWitness(
	block0 common.Blake2b256,
	txId common.Blake2b256,
	key crypto.PrivateKey,
	counter common.SpendingCounter,
) (Witness, error) {
	sig, err := key.Sign(AccountWitnessSigningData(block0, txId, counter))
	if err != nil {
		return Witness{}, fmt.Errorf("sign account witness: %w", err)
	}
	return Witness{
		witnessType: WitnessTypeAccount,
		signature:   sig,
	}, nil
}

// NewUtxoWitness signs a transaction for a UTxO input
func NewUtxoWitness(
	block0 common.Blake2b256,
	txId common.Blake2b256,
	key crypto.PrivateKey,
) (Witness, error) {
	sig, err := key.Sign(UtxoWitnessSigningData(block0, txId))
	if err != nil {
		return Witness{}, fmt.Errorf("sign utxo witness: %w", err)
	}
	return Witness{
		witnessType: WitnessTypeUtxo,
		signature:   sig,
	}, nil
}

func (w Witness) Type() WitnessType {
	return w.witnessType
}

func (w Witness) Signature() crypto.Signature {
	return w.signature
}

// ExtendedPublicKey returns the public key and chain code carried by legacy
// UTxO witnesses
func (w Witness) ExtendedPublicKey() ([]byte, bool) {
	if w.witnessType != WitnessTypeOldUtxo {
		return nil, false
	}
	ret := make([]byte, ExtendedPublicKeySize)
	copy(ret, w.extendedPublicKey[:])
	return ret, true
}

// VerifyAccount reports whether the witness is an account witness for txId
// made by account at the given spending counter
func (w Witness) VerifyAccount(
	account crypto.PublicKey,
	block0 common.Blake2b256,
	txId common.Blake2b256,
	counter common.SpendingCounter,
) bool {
	if w.witnessType != WitnessTypeAccount {
		return false
	}
	return account.Verify(
		AccountWitnessSigningData(block0, txId, counter),
		w.signature,
	)
}

// VerifyUtxo reports whether the witness is a UTxO witness for txId made by
// key. Legacy witnesses are checked against the key they carry
func (w Witness) VerifyUtxo(
	key crypto.PublicKey,
	block0 common.Blake2b256,
	txId common.Blake2b256,
) bool {
	switch w.witnessType {
	case WitnessTypeUtxo:
		return key.Verify(UtxoWitnessSigningData(block0, txId), w.signature)
	case WitnessTypeOldUtxo:
		var carried crypto.PublicKey
		copy(carried[:], w.extendedPublicKey[:crypto.PublicKeySize])
		if carried != key {
			return false
		}
		return key.Verify(
			utxoSigningData(WitnessTypeOldUtxo, block0, txId),
			w.signature,
		)
	default:
		return false
	}
}

// matches reports whether the witness can authorize an input of the given type
func (w Witness) matches(inputType InputType) bool {
	switch inputType {
	case InputTypeAccount:
		return w.witnessType == WitnessTypeAccount
	case InputTypeUtxo:
		return w.witnessType == WitnessTypeUtxo ||
			w.witnessType == WitnessTypeOldUtxo
	default:
		return false
	}
}

func (w Witness) encode(wr *codec.Writer) {
	wr.PutU8(uint8(w.witnessType))
	if w.witnessType == WitnessTypeOldUtxo {
		wr.PutBytes(w.extendedPublicKey[:])
	}
	wr.PutBytes(w.signature[:])
}

var errUnsupportedWitnessType = errors.New("unsupported witness type")

func decodeWitness(r *codec.Reader) (Witness, error) {
	var ret Witness
	witnessType, err := r.ReadU8()
	if err != nil {
		return Witness{}, err
	}
	ret.witnessType = WitnessType(witnessType)
	switch ret.witnessType {
	case WitnessTypeOldUtxo:
		if err := r.ReadInto(ret.extendedPublicKey[:]); err != nil {
			return Witness{}, err
		}
	case WitnessTypeUtxo, WitnessTypeAccount:
	default:
		return Witness{}, fmt.Errorf(
			"%w: %s",
			errUnsupportedWitnessType,
			ret.witnessType,
		)
	}
	if err := r.ReadInto(ret.signature[:]); err != nil {
		return Witness{}, err
	}
	return ret, nil
}
