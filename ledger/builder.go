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
	"log/slog"
	"slices"

	"github.com/blinklabs-io/gochainlibs/ledger/common"
)

type outputPolicyKind uint8

const (
	outputPolicyForget outputPolicyKind = iota
	outputPolicyOne
)

// OutputPolicy decides what happens to value left over after outputs and fee
type OutputPolicy struct {
	kind    outputPolicyKind
	address common.Address
}

// OutputPolicyOne sends any leftover value to address as an extra output.
// A leftover too small to pay for its own output is left to the fee
func OutputPolicyOne(address common.Address) OutputPolicy {
	return OutputPolicy{
		kind:    outputPolicyOne,
		address: address,
	}
}

// OutputPolicyForget leaves any leftover value to the fee
func OutputPolicyForget() OutputPolicy {
	return OutputPolicy{
		kind: outputPolicyForget,
	}
}

type BalanceSign int8

const (
	BalanceNegative BalanceSign = -1
	BalanceZero     BalanceSign = 0
	BalancePositive BalanceSign = 1
)

// Balance is the difference between the inputs and the outputs plus the fee
type Balance struct {
	Sign  BalanceSign
	Value common.Value
}

func (b Balance) String() string {
	switch b.Sign {
	case BalanceNegative:
		return fmt.Sprintf("-%d", b.Value)
	case BalancePositive:
		return fmt.Sprintf("+%d", b.Value)
	default:
		return "0"
	}
}

type TransactionBuilderOptionFunc func(*TransactionBuilder)

// WithLogger specifies the logger object to use for debug output
func WithLogger(logger *slog.Logger) TransactionBuilderOptionFunc {
	return func(b *TransactionBuilder) {
		b.logger = logger
	}
}

// TransactionBuilder collects the parts of a transaction and balances them
type TransactionBuilder struct {
	inputs      []Input
	outputs     []Output
	certificate *Certificate
	logger      *slog.Logger
}

func NewTransactionBuilder(
	opts ...TransactionBuilderOptionFunc,
) *TransactionBuilder {
	b := &TransactionBuilder{}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	return b
}

func (b *TransactionBuilder) AddInput(input Input) {
	b.inputs = append(b.inputs, input)
}

func (b *TransactionBuilder) AddOutput(address common.Address, value common.Value) {
	b.outputs = append(b.outputs, NewOutput(address, value))
}

// SetCertificate attaches a copy of certificate, replacing any earlier one.
// Signatures added to certificate afterwards are not seen by the builder
func (b *TransactionBuilder) SetCertificate(certificate *Certificate) {
	b.certificate = certificate.clone()
}

func (b *TransactionBuilder) InputCount() int {
	return len(b.inputs)
}

func (b *TransactionBuilder) OutputCount() int {
	return len(b.outputs)
}

// EstimateFee returns the fee for the transaction as currently built, without
// any change output
func (b *TransactionBuilder) EstimateFee(fee FeeAlgorithm) (common.Value, error) {
	if fee == nil {
		return 0, ErrNoFeeAlgorithm
	}
	return fee.CalculateFee(
		len(b.inputs),
		len(b.outputs),
		b.certificate != nil,
	)
}

// GetBalance returns the inputs minus the outputs and the estimated fee
func (b *TransactionBuilder) GetBalance(fee FeeAlgorithm) (Balance, error) {
	totalIn, totalOut, err := b.totals()
	if err != nil {
		return Balance{}, err
	}
	feeValue, err := b.EstimateFee(fee)
	if err != nil {
		return Balance{}, err
	}
	return balance(totalIn, totalOut, feeValue)
}

func (b *TransactionBuilder) totals() (common.Value, common.Value, error) {
	var totalIn, totalOut common.Value
	var err error
	for _, input := range b.inputs {
		if totalIn, err = totalIn.Add(input.Value()); err != nil {
			return 0, 0, err
		}
	}
	for _, output := range b.outputs {
		if totalOut, err = totalOut.Add(output.Value()); err != nil {
			return 0, 0, err
		}
	}
	return totalIn, totalOut, nil
}

func balance(totalIn, totalOut, fee common.Value) (Balance, error) {
	spent, err := totalOut.Add(fee)
	if err != nil {
		return Balance{}, err
	}
	switch {
	case totalIn > spent:
		return Balance{Sign: BalancePositive, Value: totalIn - spent}, nil
	case totalIn < spent:
		return Balance{Sign: BalanceNegative, Value: spent - totalIn}, nil
	default:
		return Balance{Sign: BalanceZero}, nil
	}
}

// Finalize balances the transaction against fee and disposes of any leftover
// according to policy. The builder is left unchanged
func (b *TransactionBuilder) Finalize(
	fee FeeAlgorithm,
	policy OutputPolicy,
) (*Transaction, error) {
	if fee == nil {
		return nil, ErrNoFeeAlgorithm
	}
	if policy.kind == outputPolicyOne {
		if err := policy.address.Validate(); err != nil {
			return nil, fmt.Errorf("change address: %w", err)
		}
	}
	if b.certificate != nil {
		if err := b.certificate.Verify(); err != nil {
			return nil, err
		}
	}
	if len(b.inputs) > MaxInputs {
		return nil, fmt.Errorf(
			"%w: %d exceeds %d",
			common.ErrTooManyInputs,
			len(b.inputs),
			MaxInputs,
		)
	}
	totalIn, totalOut, err := b.totals()
	if err != nil {
		return nil, err
	}
	feeValue, err := b.EstimateFee(fee)
	if err != nil {
		return nil, err
	}
	bal, err := balance(totalIn, totalOut, feeValue)
	if err != nil {
		return nil, err
	}
	outputs := slices.Clone(b.outputs)
	switch bal.Sign {
	case BalanceNegative:
		return nil, common.InsufficientFundsError{
			Inputs:  totalIn,
			Outputs: totalOut,
			Fee:     feeValue,
		}
	case BalancePositive:
		if policy.kind != outputPolicyOne {
			b.logger.Debug(
				"leaving leftover value to the fee",
				"component", "ledger",
				"leftover", uint64(bal.Value),
			)
			break
		}
		// the change output pays for itself
		changeFee, err := fee.CalculateFee(
			len(b.inputs),
			len(b.outputs)+1,
			b.certificate != nil,
		)
		if err != nil {
			return nil, err
		}
		changeBal, err := balance(totalIn, totalOut, changeFee)
		if err != nil {
			return nil, err
		}
		if changeBal.Sign != BalancePositive {
			b.logger.Debug(
				"leftover value does not cover a change output, leaving it to the fee",
				"component", "ledger",
				"leftover", uint64(bal.Value),
			)
			break
		}
		b.logger.Debug(
			"adding change output",
			"component", "ledger",
			"address", policy.address.String(),
			"value", uint64(changeBal.Value),
			"fee", uint64(changeFee),
		)
		outputs = append(outputs, NewOutput(policy.address, changeBal.Value))
	}
	return newTransaction(b.inputs, outputs, b.certificate)
}
