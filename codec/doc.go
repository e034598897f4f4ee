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

// Package codec provides the binary primitives used by the ledger wire format.
//
// All integers are big-endian and every read is checked against the bytes
// remaining in the buffer, so a truncated or length-inconsistent input
// produces a ShortBufferError instead of a panic.
//
// # Key Types
//
//   - Reader: bounds-checked cursor over a byte slice, with Sub() for
//     length-framed sections
//   - Writer: append-only encoder producing the canonical byte layout
//   - DecodeStoreRaw: embed to keep the original bytes of a decoded value
//     for hashing and byte-identical re-encoding
package codec
