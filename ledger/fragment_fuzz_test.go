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

package ledger_test

import (
	"bytes"
	"testing"

	"github.com/blinklabs-io/gochainlibs/internal/testdata"
	"github.com/blinklabs-io/gochainlibs/ledger"
)

func FuzzFragmentFromBytes(f *testing.F) {
	f.Add(testdata.TransactionFragment())
	f.Add([]byte{0x00, 0x03, 0x05, 0xde, 0xad})
	f.Add([]byte{0x00, 0x03, 0x02, 0x00, 0x00})
	f.Fuzz(func(t *testing.T, data []byte) {
		fragment, err := ledger.NewFragmentFromBytes(data)
		if err != nil {
			return
		}
		if !bytes.Equal(fragment.Bytes(), data) {
			t.Fatalf("fragment bytes differ from input")
		}
		if !fragment.IsTransaction() {
			return
		}
		tx, err := fragment.Transaction()
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		reencoded, err := ledger.NewTransactionFragment(tx)
		if err != nil {
			t.Fatalf("unexpected error re-encoding transaction: %s", err)
		}
		if !bytes.Equal(reencoded.Bytes(), data) {
			t.Fatalf("re-encoded fragment differs: %x != %x", reencoded.Bytes(), data)
		}
	})
}
