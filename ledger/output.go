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
	"github.com/blinklabs-io/gochainlibs/ledger/common"
)

// Output credits value to an address
type Output struct {
	address common.Address
	value   common.Value
}

func NewOutput(address common.Address, value common.Value) Output {
	return Output{
		address: address,
		value:   value,
	}
}

func (o Output) Address() common.Address {
	return o.address
}

func (o Output) Value() common.Value {
	return o.value
}

func (o Output) String() string {
	return fmt.Sprintf("Output(%s, %d)", o.address.String(), o.value)
}

func (o Output) encode(w *codec.Writer) {
	o.address.Encode(w)
	w.PutU64(uint64(o.value))
}

func decodeOutput(r *codec.Reader) (Output, error) {
	addr, err := common.DecodeAddress(r)
	if err != nil {
		return Output{}, err
	}
	value, err := r.ReadU64()
	if err != nil {
		return Output{}, err
	}
	return Output{
		address: addr,
		value:   common.Value(value),
	}, nil
}
