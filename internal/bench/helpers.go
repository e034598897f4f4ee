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

// Package bench provides benchmark fixtures and allocation regression tests
// for the block decoder and the transaction builder.
package bench

import (
	"fmt"

	"github.com/blinklabs-io/gochainlibs/block"
	"github.com/blinklabs-io/gochainlibs/crypto"
	"github.com/blinklabs-io/gochainlibs/internal/testdata"
	"github.com/blinklabs-io/gochainlibs/ledger"
	"github.com/blinklabs-io/gochainlibs/ledger/common"
)

// BlockFixture contains a pre-decoded block for benchmarking.
type BlockFixture struct {
	Raw   []byte
	Block *block.Block
}

// LoadBlockFixture decodes the embedded block fixture.
func LoadBlockFixture() (*BlockFixture, error) {
	raw := testdata.Block()
	blk, err := block.NewBlockFromBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("decode block fixture: %w", err)
	}
	return &BlockFixture{
		Raw:   raw,
		Block: blk,
	}, nil
}

// MustLoadBlockFixture loads the block fixture and panics on error.
func MustLoadBlockFixture() *BlockFixture {
	fixture, err := LoadBlockFixture()
	if err != nil {
		panic(err.Error())
	}
	return fixture
}

// TxFixture holds the inputs needed to rebuild the certificate transaction
// fixture from scratch.
type TxFixture struct {
	Raw      []byte
	Block0   common.Blake2b256
	Key      crypto.PrivateKey
	Input    common.Address
	Output   common.Address
	StakeKey crypto.PublicKey
	PoolId   common.PoolId
	Fee      ledger.LinearFee
}

// LoadTxFixture parses the embedded transaction fixture parameters.
func LoadTxFixture() (*TxFixture, error) {
	ret := &TxFixture{
		Raw: testdata.TransactionFragment(),
		Fee: ledger.NewLinearFee(20, 5, 10),
	}
	var err error
	if ret.Block0, err = common.NewBlake2b256FromHex(testdata.TransactionFragmentBlock0Hash); err != nil {
		return nil, err
	}
	if ret.Key, err = crypto.NewPrivateKeyFromBech32(testdata.TransactionFragmentPrivateKey); err != nil {
		return nil, err
	}
	if ret.Input, err = common.NewAddress(testdata.TransactionFragmentInput); err != nil {
		return nil, err
	}
	if ret.Output, err = common.NewAddress(testdata.TransactionFragmentOutput); err != nil {
		return nil, err
	}
	if ret.StakeKey, err = crypto.NewPublicKeyFromBech32(testdata.TransactionFragmentStakeKey); err != nil {
		return nil, err
	}
	if ret.PoolId, err = common.NewPoolIdFromHex(testdata.TransactionFragmentPoolId); err != nil {
		return nil, err
	}
	return ret, nil
}

// MustLoadTxFixture loads the transaction fixture and panics on error.
func MustLoadTxFixture() *TxFixture {
	fixture, err := LoadTxFixture()
	if err != nil {
		panic(fmt.Sprintf("failed to load tx fixture: %v", err))
	}
	return fixture
}

// Build runs the full builder, finalizer and fragment encoding pipeline and
// returns the resulting fragment
func (f *TxFixture) Build() (*ledger.Fragment, error) {
	input, err := ledger.NewAccountInputFromAddress(f.Input, 1000)
	if err != nil {
		return nil, err
	}
	cert := ledger.NewStakeDelegationCertificate(f.PoolId, f.StakeKey)
	if err := cert.Sign(f.Key); err != nil {
		return nil, err
	}
	builder := ledger.NewTransactionBuilder()
	builder.AddInput(input)
	builder.AddOutput(f.Output, 500)
	builder.SetCertificate(cert)
	tx, err := builder.Finalize(f.Fee, ledger.OutputPolicyOne(f.Input))
	if err != nil {
		return nil, err
	}
	finalizer := ledger.NewTransactionFinalizer(tx)
	witness, err := ledger.NewAccountWitness(
		f.Block0,
		finalizer.GetTxId(),
		f.Key,
		common.SpendingCounterZero(),
	)
	if err != nil {
		return nil, err
	}
	if err := finalizer.SetWitness(0, witness); err != nil {
		return nil, err
	}
	signed, err := finalizer.Build()
	if err != nil {
		return nil, err
	}
	return ledger.NewTransactionFragment(signed)
}
