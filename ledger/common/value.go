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
	"encoding/binary"
	"fmt"
	"math"
	"math/bits"
	"strconv"
)

// Value is an amount of the native currency
type Value uint64

// Add returns v + other, failing instead of wrapping around
func (v Value) Add(other Value) (Value, error) {
	sum, carry := bits.Add64(uint64(v), uint64(other), 0)
	if carry != 0 {
		return 0, fmt.Errorf("%w: %d + %d", ErrArithmeticOverflow, v, other)
	}
	return Value(sum), nil
}

// Sub returns v - other, failing instead of wrapping around
func (v Value) Sub(other Value) (Value, error) {
	diff, borrow := bits.Sub64(uint64(v), uint64(other), 0)
	if borrow != 0 {
		return 0, fmt.Errorf("%w: %d - %d", ErrArithmeticOverflow, v, other)
	}
	return Value(diff), nil
}

// Mul returns v * other, failing instead of wrapping around
func (v Value) Mul(other uint64) (Value, error) {
	hi, lo := bits.Mul64(uint64(v), other)
	if hi != 0 {
		return 0, fmt.Errorf("%w: %d * %d", ErrArithmeticOverflow, v, other)
	}
	return Value(lo), nil
}

func (v Value) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

// SumValues adds up all the provided values
func SumValues(values ...Value) (Value, error) {
	var total Value
	var err error
	for _, value := range values {
		total, err = total.Add(value)
		if err != nil {
			return 0, err
		}
	}
	return total, nil
}

const SpendingCounterSize = 4

// SpendingCounter is the per-account replay protection counter
type SpendingCounter uint32

func SpendingCounterZero() SpendingCounter {
	return 0
}

// Increment returns the next counter value
func (c SpendingCounter) Increment() (SpendingCounter, error) {
	if c == math.MaxUint32 {
		return 0, fmt.Errorf(
			"%w: spending counter exhausted",
			ErrArithmeticOverflow,
		)
	}
	return c + 1, nil
}

// Bytes returns the big-endian encoding used in witness signing data
func (c SpendingCounter) Bytes() []byte {
	return binary.BigEndian.AppendUint32(nil, uint32(c))
}
