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

	"github.com/blinklabs-io/gochainlibs/ledger/common"
)

// TransactionFinalizer attaches witnesses to a finalized transaction
type TransactionFinalizer struct {
	transaction *Transaction
	witnesses   []*Witness
}

func NewTransactionFinalizer(tx *Transaction) *TransactionFinalizer {
	return &TransactionFinalizer{
		transaction: tx,
		witnesses:   make([]*Witness, len(tx.inputs)),
	}
}

// GetTxId returns the id that witnesses must sign
func (f *TransactionFinalizer) GetTxId() common.Blake2b256 {
	return f.transaction.Id()
}

// SetWitness attaches the witness for the input at index, replacing any
// earlier one
func (f *TransactionFinalizer) SetWitness(index int, witness Witness) error {
	if index < 0 || index >= len(f.witnesses) {
		return common.IndexOutOfRangeError{
			Index: index,
			Size:  len(f.witnesses),
		}
	}
	input := f.transaction.inputs[index]
	if !witness.matches(input.Type()) {
		return fmt.Errorf(
			"%w: %s witness for %s input %d",
			common.ErrWitnessKindMismatch,
			witness.Type(),
			input.Type(),
			index,
		)
	}
	f.witnesses[index] = &witness
	return nil
}

// Build returns the signed transaction once every input has a witness
func (f *TransactionFinalizer) Build() (*AuthenticatedTransaction, error) {
	witnesses := make([]Witness, 0, len(f.witnesses))
	for idx, witness := range f.witnesses {
		if witness == nil {
			return nil, fmt.Errorf(
				"%w: no witness for input %d of %d",
				common.ErrIncompleteWitnesses,
				idx,
				len(f.witnesses),
			)
		}
		witnesses = append(witnesses, *witness)
	}
	return &AuthenticatedTransaction{
		transaction: f.transaction,
		witnesses:   witnesses,
	}, nil
}
