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
	"math"
	"slices"

	"github.com/blinklabs-io/gochainlibs/codec"
	"github.com/blinklabs-io/gochainlibs/ledger/common"
)

// FragmentKind is the tag byte following the fragment size
type FragmentKind uint8

const (
	FragmentKindInitial            FragmentKind = 0
	FragmentKindOldUtxoDeclaration FragmentKind = 1
	FragmentKindTransaction        FragmentKind = 2
	FragmentKindCertificate        FragmentKind = 3
	FragmentKindUpdateProposal     FragmentKind = 4
	FragmentKindUpdateVote         FragmentKind = 5
)

// MaxFragmentSize is the largest tag plus payload a frame can declare
const MaxFragmentSize = math.MaxUint16

func (k FragmentKind) String() string {
	switch k {
	case FragmentKindInitial:
		return "Initial"
	case FragmentKindOldUtxoDeclaration:
		return "OldUtxoDeclaration"
	case FragmentKindTransaction:
		return "Transaction"
	case FragmentKindCertificate:
		return "Certificate"
	case FragmentKindUpdateProposal:
		return "UpdateProposal"
	case FragmentKindUpdateVote:
		return "UpdateVote"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

func (k FragmentKind) valid() bool {
	return k <= FragmentKindUpdateVote
}

// carriesTransaction reports whether the payload is a transaction, with a
// certificate for FragmentKindCertificate
func (k FragmentKind) carriesTransaction() bool {
	return k == FragmentKindTransaction || k == FragmentKindCertificate
}

// Fragment is a framed unit of block content. Fragments that carry a
// transaction expose it decoded; other kinds keep their payload as is
type Fragment struct {
	codec.DecodeStoreRaw
	kind        FragmentKind
	payload     []byte
	transaction *AuthenticatedTransaction
}

// NewTransactionFragment frames a signed transaction. Transactions with a
// certificate use FragmentKindCertificate
func NewTransactionFragment(tx *AuthenticatedTransaction) (*Fragment, error) {
	kind := FragmentKindTransaction
	if tx.transaction.certificate != nil {
		kind = FragmentKindCertificate
	}
	w := codec.NewWriter(tx.encodedSize())
	if err := tx.encode(w); err != nil {
		return nil, err
	}
	return newFragment(kind, w.Bytes(), tx)
}

// NewFragment frames an opaque payload of a kind that does not carry a
// transaction
func NewFragment(kind FragmentKind, payload []byte) (*Fragment, error) {
	if !kind.valid() {
		return nil, common.MalformedFragmentError{
			Reason: fmt.Sprintf("unknown fragment kind %d", uint8(kind)),
		}
	}
	if kind.carriesTransaction() && 1+len(payload) <= MaxFragmentSize {
		return NewFragmentFromBytes(frame(kind, payload))
	}
	return newFragment(kind, slices.Clone(payload), nil)
}

func newFragment(
	kind FragmentKind,
	payload []byte,
	tx *AuthenticatedTransaction,
) (*Fragment, error) {
	if 1+len(payload) > MaxFragmentSize {
		return nil, common.MalformedFragmentError{
			Reason: "fragment too large",
			Err: fmt.Errorf(
				"%w: %d exceeds %d",
				codec.ErrLengthOverflow,
				1+len(payload),
				MaxFragmentSize,
			),
		}
	}
	ret := &Fragment{
		kind:        kind,
		payload:     payload,
		transaction: tx,
	}
	ret.SetRaw(frame(kind, payload))
	return ret, nil
}

func frame(kind FragmentKind, payload []byte) []byte {
	w := codec.NewWriter(3 + len(payload))
	// #nosec G115 -- callers check against MaxFragmentSize
	w.PutU16(uint16(1 + len(payload)))
	w.PutU8(uint8(kind))
	w.PutBytes(payload)
	return w.Bytes()
}

// NewFragmentFromBytes decodes a single framed fragment. The data must
// contain exactly one fragment
func NewFragmentFromBytes(data []byte) (*Fragment, error) {
	r := codec.NewReader(data)
	ret, err := DecodeFragment(r)
	if err != nil {
		return nil, err
	}
	if !r.Empty() {
		return nil, common.MalformedFragmentError{
			Offset: r.Offset(),
			Reason: fmt.Sprintf("%d trailing bytes", r.Len()),
		}
	}
	return ret, nil
}

// DecodeFragment reads one framed fragment from r
func DecodeFragment(r *codec.Reader) (*Fragment, error) {
	start := r.Offset()
	remaining := r.Remaining()
	size, err := r.ReadU16()
	if err != nil {
		return nil, common.MalformedFragmentError{
			Offset: start,
			Reason: "fragment size",
			Err:    err,
		}
	}
	if size == 0 {
		return nil, common.MalformedFragmentError{
			Offset: start,
			Reason: "empty fragment",
		}
	}
	body, bodyBytes, err := r.Sub(int(size))
	if err != nil {
		return nil, common.MalformedFragmentError{
			Offset: start,
			Reason: "declared size overruns buffer",
			Err:    err,
		}
	}
	tag, _ := body.ReadU8()
	kind := FragmentKind(tag)
	if !kind.valid() {
		return nil, common.MalformedFragmentError{
			Offset: start + 2,
			Reason: fmt.Sprintf("unknown fragment kind %d", tag),
		}
	}
	ret := &Fragment{
		kind:    kind,
		payload: slices.Clone(bodyBytes[1:]),
	}
	if kind.carriesTransaction() {
		tx, err := decodeAuthenticatedTransaction(
			body,
			kind == FragmentKindCertificate,
		)
		if err != nil {
			return nil, err
		}
		if !body.Empty() {
			return nil, common.MalformedFragmentError{
				Offset: body.Offset(),
				Reason: fmt.Sprintf(
					"%d bytes after %s payload",
					body.Len(),
					kind,
				),
			}
		}
		ret.transaction = tx
	}
	ret.SetRaw(remaining[:2+int(size)])
	return ret, nil
}

// Bytes returns the full frame, size prefix included
func (f *Fragment) Bytes() []byte {
	return slices.Clone(f.Raw())
}

func (f *Fragment) Kind() FragmentKind {
	return f.kind
}

// Payload returns the bytes following the tag
func (f *Fragment) Payload() []byte {
	return slices.Clone(f.payload)
}

// IsTransaction reports whether the fragment carries a transaction, with or
// without a certificate
func (f *Fragment) IsTransaction() bool {
	return f.transaction != nil
}

// Transaction returns the signed transaction carried by the fragment
func (f *Fragment) Transaction() (*AuthenticatedTransaction, error) {
	if f.transaction == nil {
		return nil, fmt.Errorf(
			"%w: %s fragment does not carry a transaction",
			common.ErrWrongFragmentKind,
			f.kind,
		)
	}
	return f.transaction, nil
}

// Id returns the hash of the tag and payload
func (f *Fragment) Id() common.Blake2b256 {
	return common.Blake2b256Hash(f.Raw()[2:])
}

func (f *Fragment) String() string {
	return fmt.Sprintf("%s fragment (%d bytes)", f.kind, len(f.Raw()))
}
