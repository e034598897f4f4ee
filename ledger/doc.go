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

// Package ledger builds, signs and encodes transactions and their fragments.
//
// A transaction goes through three stages. TransactionBuilder collects
// inputs, outputs and an optional certificate and balances them against a
// FeeAlgorithm. TransactionFinalizer attaches one witness per input.
// NewTransactionFragment then wraps the signed result in its wire frame.
// NewFragmentFromBytes is the exact inverse of Fragment.Bytes.
package ledger
