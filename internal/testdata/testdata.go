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

// Package testdata provides shared fixtures for tests and benchmarks.
package testdata

import (
	_ "embed"
	"encoding/hex"
	"strings"
)

// Genesis praos block carrying a single account to account transaction
// Id: c0a74e7b5ee427101c19cc18d3863a8822f1b4bf977648bf4b6a7b288fd9214b
// Epoch: 0, Slot: 0x169, Chain length: 10
//
//go:embed block.hex
var BlockHex string

const BlockId = "c0a74e7b5ee427101c19cc18d3863a8822f1b4bf977648bf4b6a7b288fd9214b"

// Certificate transaction fragment: one account input of 1000, one output of
// 500, a signed stake delegation and change of 455 back to the input account
// under linear fee 20 + 5 per input/output + 10 per certificate
//
//go:embed transaction_fragment.hex
var TransactionFragmentHex string

const (
	TransactionFragmentBlock0Hash  = "6a702a181151b772ca0acbdc4d2870ed80c09b626b29fffc2e47abf2330ad0cd"
	TransactionFragmentId          = "0003a474efcc0869c72cc8c5b0653fc6a525426746bf2befe2490aeb7ea49610"
	TransactionFragmentPrivateKey  = "ed25519e_sk1gz0ff4w444nwejap5shxrllypz5euswq6wn04fffzes02atw99xkd4jn838v3vrfg9eqt7f4sxjlsy0tdcmj0d2dqvwc8ztwgyfnwyszvjg32"
	TransactionFragmentInput       = "ca1qh9u0nxmnfg7af8ycuygx57p5xgzmnmgtaeer9xun7hly6mlgt3pj2xk344"
	TransactionFragmentOutput      = "ca1q5nr5pvt9e5p009strshxndrsx5etcentslp2rwj6csm8sfk24a2w3swacn"
	TransactionFragmentStakeKey    = "ed25519_pk1e0rueku628h2fex8pzp48sdpjqku76zlwwgefhyl4lexkl6zugvs0uuy0w"
	TransactionFragmentPoolId      = "541db50349e2bc1a5b1a73939b9d86fc45067117cc930c36afbb6fb0a9329d41"
	TransactionFragmentCertificate = "faef2a78b53511b598b9484108fff109d1a098558e037c6c04246a7b78557eccfb7f38a774dcf584bb68c99db205f6e95ffde4c42696a8b0d730030aaacad704"
)

// Block returns the decoded bytes of BlockHex
func Block() []byte {
	return mustDecodeHex(BlockHex)
}

// TransactionFragment returns the decoded bytes of TransactionFragmentHex
func TransactionFragment() []byte {
	return mustDecodeHex(TransactionFragmentHex)
}

func mustDecodeHex(s string) []byte {
	ret, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		panic("invalid embedded fixture: " + err.Error())
	}
	return ret
}
