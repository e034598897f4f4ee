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
	"errors"
	"fmt"

	"github.com/blinklabs-io/gochainlibs/crypto"
)

var (
	ErrInvalidHex       = crypto.ErrInvalidHex
	ErrInvalidKeyFormat = crypto.ErrInvalidKeyFormat
	ErrInvalidAddress   = errors.New("invalid address")

	ErrArithmeticOverflow   = errors.New("arithmetic overflow")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrTooManyInputs        = errors.New("too many inputs")
	ErrTooManyOutputs       = errors.New("too many outputs")
	ErrMalformedCertificate = errors.New("malformed certificate")

	ErrIndexOutOfRange     = errors.New("index out of range")
	ErrWitnessKindMismatch = errors.New("witness kind does not match input")
	ErrIncompleteWitnesses = errors.New("incomplete witnesses")

	ErrWrongFragmentKind = errors.New("wrong fragment kind")
	ErrMalformedFragment = errors.New("malformed fragment")
	ErrMalformedBlock    = errors.New("malformed block")
)

// InsufficientFundsError indicates that the inputs cannot cover the outputs
// and the fee
type InsufficientFundsError struct {
	Inputs  Value
	Outputs Value
	Fee     Value
}

func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf(
		"insufficient funds: inputs %d, outputs %d, fee %d",
		e.Inputs,
		e.Outputs,
		e.Fee,
	)
}

func (InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// IndexOutOfRangeError indicates an index past the end of a sized sequence
type IndexOutOfRangeError struct {
	Index int
	Size  int
}

func (e IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index out of range: %d (size %d)", e.Index, e.Size)
}

func (IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// MalformedFragmentError describes a fragment that cannot be decoded
type MalformedFragmentError struct {
	Offset int
	Reason string
	Err    error
}

func (e MalformedFragmentError) Error() string {
	msg := fmt.Sprintf("malformed fragment at offset %d: %s", e.Offset, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e MalformedFragmentError) Unwrap() error { return e.Err }

func (MalformedFragmentError) Is(target error) bool {
	return target == ErrMalformedFragment
}

// MalformedBlockError describes a block that cannot be decoded
type MalformedBlockError struct {
	Offset int
	Reason string
	Err    error
}

func (e MalformedBlockError) Error() string {
	msg := fmt.Sprintf("malformed block at offset %d: %s", e.Offset, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e MalformedBlockError) Unwrap() error { return e.Err }

func (MalformedBlockError) Is(target error) bool {
	return target == ErrMalformedBlock
}
