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
	"github.com/blinklabs-io/gochainlibs/crypto"
	"github.com/blinklabs-io/gochainlibs/ledger/common"
)

const (
	MaxInputs  = math.MaxUint8
	MaxOutputs = math.MaxUint8
)

// Transaction is a balanced transaction without witnesses. It is immutable
type Transaction struct {
	inputs      []Input
	outputs     []Output
	certificate *Certificate
	id          common.Blake2b256
}

func newTransaction(
	inputs []Input,
	outputs []Output,
	certificate *Certificate,
) (*Transaction, error) {
	if len(inputs) > MaxInputs {
		return nil, fmt.Errorf(
			"%w: %d exceeds %d",
			common.ErrTooManyInputs,
			len(inputs),
			MaxInputs,
		)
	}
	if len(outputs) > MaxOutputs {
		return nil, fmt.Errorf(
			"%w: %d exceeds %d",
			common.ErrTooManyOutputs,
			len(outputs),
			MaxOutputs,
		)
	}
	for idx, output := range outputs {
		if err := output.Address().Validate(); err != nil {
			return nil, fmt.Errorf("output %d: %w", idx, err)
		}
	}
	ret := &Transaction{
		inputs:      slices.Clone(inputs),
		outputs:     slices.Clone(outputs),
		certificate: certificate.clone(),
	}
	w := codec.NewWriter(ret.encodedSize())
	if err := ret.encodeBody(w); err != nil {
		return nil, err
	}
	ret.id = common.Blake2b256Hash(w.Bytes())
	return ret, nil
}

func (t *Transaction) Inputs() []Input {
	return slices.Clone(t.inputs)
}

func (t *Transaction) Outputs() []Output {
	return slices.Clone(t.outputs)
}

// Certificate returns a copy of the certificate, or nil
func (t *Transaction) Certificate() *Certificate {
	return t.certificate.clone()
}

// Id returns the transaction id: the hash of the inputs, the outputs and the
// certificate. Witnesses sign it and are not part of it
func (t *Transaction) Id() common.Blake2b256 {
	return t.id
}

func (t *Transaction) TotalInput() (common.Value, error) {
	var total common.Value
	var err error
	for _, input := range t.inputs {
		total, err = total.Add(input.Value())
		if err != nil {
			return 0, err
		}
	}
	return total, nil
}

func (t *Transaction) TotalOutput() (common.Value, error) {
	var total common.Value
	var err error
	for _, output := range t.outputs {
		total, err = total.Add(output.Value())
		if err != nil {
			return 0, err
		}
	}
	return total, nil
}

// Fee returns what the fee algorithm charges for this transaction
func (t *Transaction) Fee(fee FeeAlgorithm) (common.Value, error) {
	if fee == nil {
		return 0, ErrNoFeeAlgorithm
	}
	return fee.CalculateFee(
		len(t.inputs),
		len(t.outputs),
		t.certificate != nil,
	)
}

// ImpliedFee returns the value consumed by the transaction, the difference
// between its inputs and its outputs
func (t *Transaction) ImpliedFee() (common.Value, error) {
	in, err := t.TotalInput()
	if err != nil {
		return 0, err
	}
	out, err := t.TotalOutput()
	if err != nil {
		return 0, err
	}
	return in.Sub(out)
}

func (t *Transaction) encodedSize() int {
	size := 2 + len(t.inputs)*inputSize
	for _, output := range t.outputs {
		size += len(output.address.Bytes()) + 8
	}
	if t.certificate != nil {
		size += 1 + len(t.certificate.Content()) + 1 +
			len(t.certificate.signatures)*(2+crypto.SignatureSize)
	}
	return size
}

// encodeBody writes the inputs, outputs and certificate without their counts.
// This is the transaction id preimage and the bulk of the wire form
func (t *Transaction) encodeBody(w *codec.Writer) error {
	for _, input := range t.inputs {
		input.encode(w)
	}
	for _, output := range t.outputs {
		output.encode(w)
	}
	if t.certificate != nil {
		if err := t.certificate.encode(w); err != nil {
			return err
		}
	}
	return nil
}

// AuthenticatedTransaction is a transaction with one witness per input. It
// is immutable
type AuthenticatedTransaction struct {
	transaction *Transaction
	witnesses   []Witness
}

func (a *AuthenticatedTransaction) Transaction() *Transaction {
	return a.transaction
}

func (a *AuthenticatedTransaction) Witnesses() []Witness {
	return slices.Clone(a.witnesses)
}

func (a *AuthenticatedTransaction) Id() common.Blake2b256 {
	return a.transaction.Id()
}

// VerifyAccountWitnesses checks the witness of every account input against
// the account key. Accounts missing from counters are checked at counter zero
func (a *AuthenticatedTransaction) VerifyAccountWitnesses(
	block0 common.Blake2b256,
	counters map[crypto.PublicKey]common.SpendingCounter,
) error {
	txId := a.Id()
	for idx, input := range a.transaction.inputs {
		account, ok := input.Account()
		if !ok {
			continue
		}
		if !a.witnesses[idx].VerifyAccount(account, block0, txId, counters[account]) {
			return fmt.Errorf(
				"invalid witness for input %d (account %s)",
				idx,
				account.String(),
			)
		}
	}
	return nil
}

// encode writes the wire form of the transaction as carried by a fragment
func (a *AuthenticatedTransaction) encode(w *codec.Writer) error {
	tx := a.transaction
	if err := w.PutLen8(len(tx.inputs)); err != nil {
		return fmt.Errorf("%w: %w", common.ErrTooManyInputs, err)
	}
	if err := w.PutLen8(len(tx.outputs)); err != nil {
		return fmt.Errorf("%w: %w", common.ErrTooManyOutputs, err)
	}
	if err := tx.encodeBody(w); err != nil {
		return err
	}
	for _, witness := range a.witnesses {
		witness.encode(w)
	}
	return nil
}

func (a *AuthenticatedTransaction) encodedSize() int {
	size := a.transaction.encodedSize()
	for _, witness := range a.witnesses {
		size += 1 + crypto.SignatureSize
		if witness.witnessType == WitnessTypeOldUtxo {
			size += ExtendedPublicKeySize
		}
	}
	return size
}

// decodeAuthenticatedTransaction reads a transaction payload. A certificate
// is expected only when withCertificate is set
func decodeAuthenticatedTransaction(
	r *codec.Reader,
	withCertificate bool,
) (*AuthenticatedTransaction, error) {
	malformed := func(reason string, err error) error {
		return common.MalformedFragmentError{
			Offset: r.Offset(),
			Reason: reason,
			Err:    err,
		}
	}
	inputCount, err := r.ReadU8()
	if err != nil {
		return nil, malformed("input count", err)
	}
	outputCount, err := r.ReadU8()
	if err != nil {
		return nil, malformed("output count", err)
	}
	inputs := make([]Input, 0, inputCount)
	for idx := range int(inputCount) {
		input, err := decodeInput(r)
		if err != nil {
			return nil, malformed(fmt.Sprintf("input %d", idx), err)
		}
		inputs = append(inputs, input)
	}
	outputs := make([]Output, 0, outputCount)
	for idx := range int(outputCount) {
		output, err := decodeOutput(r)
		if err != nil {
			return nil, malformed(fmt.Sprintf("output %d", idx), err)
		}
		outputs = append(outputs, output)
	}
	var certificate *Certificate
	if withCertificate {
		certificate, err = decodeCertificate(r)
		if err != nil {
			return nil, malformed("certificate", err)
		}
	}
	witnesses := make([]Witness, 0, inputCount)
	for idx := range int(inputCount) {
		witness, err := decodeWitness(r)
		if err != nil {
			return nil, malformed(fmt.Sprintf("witness %d", idx), err)
		}
		if !witness.matches(inputs[idx].Type()) {
			return nil, malformed(
				fmt.Sprintf("witness %d", idx),
				fmt.Errorf(
					"%w: %s witness for %s input",
					common.ErrWitnessKindMismatch,
					witness.Type(),
					inputs[idx].Type(),
				),
			)
		}
		witnesses = append(witnesses, witness)
	}
	tx, err := newTransaction(inputs, outputs, certificate)
	if err != nil {
		return nil, malformed("transaction", err)
	}
	return &AuthenticatedTransaction{
		transaction: tx,
		witnesses:   witnesses,
	}, nil
}
