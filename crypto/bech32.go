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

package crypto

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// Bech32Decode decodes a bech32 string of any length and returns its
// human-readable part and 8-bit data
func Bech32Decode(s string) (string, []byte, error) {
	hrp, data, err := bech32.DecodeNoLimit(s)
	if err != nil {
		return "", nil, err
	}
	decoded, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", nil, err
	}
	return hrp, decoded, nil
}

// Bech32Encode encodes 8-bit data as a bech32 string with the given prefix
func Bech32Encode(hrp string, data []byte) (string, error) {
	convData, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", err
	}
	encoded, err := bech32.Encode(hrp, convData)
	if err != nil {
		return "", err
	}
	return encoded, nil
}

func mustBech32Encode(hrp string, data []byte) string {
	encoded, err := Bech32Encode(hrp, data)
	if err != nil {
		panic(
			fmt.Sprintf("unexpected error encoding data as bech32: %s", err),
		)
	}
	return encoded
}
