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

	"github.com/blinklabs-io/gochainlibs/ledger/common"
)

// ErrNoFeeAlgorithm is returned when a nil FeeAlgorithm is supplied
var ErrNoFeeAlgorithm = errors.New("no fee algorithm")

// FeeAlgorithm computes the fee owed by a transaction of the given shape
type FeeAlgorithm interface {
	CalculateFee(inputs int, outputs int, certificate bool) (common.Value, error)
}

// LinearFee charges a constant, plus a coefficient per input and output,
// plus a flat amount when the transaction carries a certificate
type LinearFee struct {
	Constant    common.Value
	Coefficient common.Value
	Certificate common.Value
}

func NewLinearFee(
	constant common.Value,
	coefficient common.Value,
	certificate common.Value,
) LinearFee {
	return LinearFee{
		Constant:    constant,
		Coefficient: coefficient,
		Certificate: certificate,
	}
}

func (f LinearFee) CalculateFee(
	inputs int,
	outputs int,
	certificate bool,
) (common.Value, error) {
	if inputs < 0 || outputs < 0 {
		return 0, fmt.Errorf(
			"invalid transaction shape: %d inputs, %d outputs",
			inputs,
			outputs,
		)
	}
	perItem, err := f.Coefficient.Mul(uint64(inputs) + uint64(outputs))
	if err != nil {
		return 0, err
	}
	fee, err := f.Constant.Add(perItem)
	if err != nil {
		return 0, err
	}
	if certificate {
		fee, err = fee.Add(f.Certificate)
		if err != nil {
			return 0, err
		}
	}
	return fee, nil
}
