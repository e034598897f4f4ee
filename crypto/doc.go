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

// Package crypto implements the Ed25519 key material used to authorize
// ledger transactions and certificates.
//
// Two private key forms are supported:
//
//   - normal keys (bech32 prefix "ed25519_sk"), a 32-byte RFC 8032 seed
//   - extended keys (bech32 prefix "ed25519e_sk"), a 64-byte BIP32-Ed25519
//     key (kL || kR) that signs with kL as the scalar and kR as the nonce
//     prefix
//
// Both produce standard Ed25519 signatures that verify with crypto/ed25519.
package crypto
