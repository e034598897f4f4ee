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
	"crypto/sha512"
	"fmt"

	"filippo.io/edwards25519"
)

// extendedScalar reduces kL modulo the group order without clamping it again
func extendedScalar(kL []byte) (*edwards25519.Scalar, error) {
	var wide [64]byte
	copy(wide[:32], kL)
	return edwards25519.NewScalar().SetUniformBytes(wide[:])
}

func extendedPublicKey(kL []byte) (PublicKey, error) {
	s, err := extendedScalar(kL)
	if err != nil {
		return PublicKey{}, err
	}
	A := (&edwards25519.Point{}).ScalarBaseMult(s)
	return PublicKey(A.Bytes()), nil
}

// signExtended produces an Ed25519 signature with a BIP32-Ed25519 key:
//
//	r = SHA512(kR || M) mod l
//	R = r*B
//	S = r + SHA512(R || A || M)*kL mod l
func signExtended(
	key *[64]byte,
	public PublicKey,
	message []byte,
) (Signature, error) {
	// #nosec G401 -- SHA-512 is mandated by RFC 8032
	h := sha512.New()
	h.Write(key[32:])
	h.Write(message)
	var digest [64]byte
	r, err := edwards25519.NewScalar().SetUniformBytes(h.Sum(digest[:0]))
	if err != nil {
		return Signature{}, fmt.Errorf("derive nonce: %w", err)
	}
	R := (&edwards25519.Point{}).ScalarBaseMult(r)
	h.Reset()
	h.Write(R.Bytes())
	h.Write(public[:])
	h.Write(message)
	k, err := edwards25519.NewScalar().SetUniformBytes(h.Sum(digest[:0]))
	if err != nil {
		return Signature{}, fmt.Errorf("derive challenge: %w", err)
	}
	s, err := extendedScalar(key[:32])
	if err != nil {
		return Signature{}, fmt.Errorf("derive scalar: %w", err)
	}
	S := edwards25519.NewScalar().MultiplyAdd(k, s, r)
	var ret Signature
	copy(ret[:32], R.Bytes())
	copy(ret[32:], S.Bytes())
	return ret, nil
}
