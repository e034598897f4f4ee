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
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

const (
	PublicKeySize          = ed25519.PublicKeySize
	SignatureSize          = ed25519.SignatureSize
	SeedSize               = ed25519.SeedSize
	ExtendedPrivateKeySize = 64

	Bech32PrefixPublicKey          = "ed25519_pk"
	Bech32PrefixPrivateKey         = "ed25519_sk"
	Bech32PrefixExtendedPrivateKey = "ed25519e_sk"
)

var (
	ErrInvalidHex       = errors.New("invalid hex")
	ErrInvalidKeyFormat = errors.New("invalid key format")
)

type PublicKey [PublicKeySize]byte

func NewPublicKeyFromBytes(data []byte) (PublicKey, error) {
	if len(data) != PublicKeySize {
		return PublicKey{}, fmt.Errorf(
			"%w: public key must be %d bytes, got %d",
			ErrInvalidKeyFormat,
			PublicKeySize,
			len(data),
		)
	}
	return PublicKey(data), nil
}

func NewPublicKeyFromHex(s string) (PublicKey, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return PublicKey{}, fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}
	return NewPublicKeyFromBytes(data)
}

// NewPublicKeyFromBech32 parses an "ed25519_pk1..." string
func NewPublicKeyFromBech32(s string) (PublicKey, error) {
	hrp, data, err := Bech32Decode(s)
	if err != nil {
		return PublicKey{}, fmt.Errorf("%w: %w", ErrInvalidKeyFormat, err)
	}
	if hrp != Bech32PrefixPublicKey {
		return PublicKey{}, fmt.Errorf(
			"%w: unexpected bech32 prefix %q",
			ErrInvalidKeyFormat,
			hrp,
		)
	}
	return NewPublicKeyFromBytes(data)
}

func (k PublicKey) Bytes() []byte {
	return k[:]
}

func (k PublicKey) String() string {
	return hex.EncodeToString(k[:])
}

func (k PublicKey) Bech32() string {
	return mustBech32Encode(Bech32PrefixPublicKey, k[:])
}

func (k PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.Bech32())
}

// Verify reports whether sig is a valid signature of message by this key
func (k PublicKey) Verify(message []byte, sig Signature) bool {
	return ed25519.Verify(ed25519.PublicKey(k[:]), message, sig[:])
}

type Signature [SignatureSize]byte

func NewSignatureFromBytes(data []byte) (Signature, error) {
	if len(data) != SignatureSize {
		return Signature{}, fmt.Errorf(
			"%w: signature must be %d bytes, got %d",
			ErrInvalidKeyFormat,
			SignatureSize,
			len(data),
		)
	}
	return Signature(data), nil
}

func (s Signature) Bytes() []byte {
	return s[:]
}

func (s Signature) String() string {
	return hex.EncodeToString(s[:])
}

// PrivateKey is either a normal Ed25519 key or an extended BIP32-Ed25519 key.
// The zero value is not a usable key
type PrivateKey struct {
	extended bool
	// normal: the 32-byte seed followed by the public key (crypto/ed25519 layout)
	// extended: kL || kR
	key    [64]byte
	public PublicKey
	valid  bool
}

// NewPrivateKeyFromBytes builds a normal key from a 32-byte seed or an
// extended key from 64 bytes
func NewPrivateKeyFromBytes(data []byte) (PrivateKey, error) {
	switch len(data) {
	case SeedSize:
		return newNormalPrivateKey(data), nil
	case ExtendedPrivateKeySize:
		return newExtendedPrivateKey(data)
	default:
		return PrivateKey{}, fmt.Errorf(
			"%w: private key must be %d or %d bytes, got %d",
			ErrInvalidKeyFormat,
			SeedSize,
			ExtendedPrivateKeySize,
			len(data),
		)
	}
}

func NewPrivateKeyFromHex(s string) (PrivateKey, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return PrivateKey{}, fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}
	return NewPrivateKeyFromBytes(data)
}

// NewPrivateKeyFromBech32 parses an "ed25519_sk1..." (normal) or
// "ed25519e_sk1..." (extended) string
func NewPrivateKeyFromBech32(s string) (PrivateKey, error) {
	hrp, data, err := Bech32Decode(s)
	if err != nil {
		return PrivateKey{}, fmt.Errorf("%w: %w", ErrInvalidKeyFormat, err)
	}
	switch hrp {
	case Bech32PrefixPrivateKey:
		if len(data) != SeedSize {
			return PrivateKey{}, fmt.Errorf(
				"%w: private key must be %d bytes, got %d",
				ErrInvalidKeyFormat,
				SeedSize,
				len(data),
			)
		}
		return newNormalPrivateKey(data), nil
	case Bech32PrefixExtendedPrivateKey:
		return newExtendedPrivateKey(data)
	default:
		return PrivateKey{}, fmt.Errorf(
			"%w: unexpected bech32 prefix %q",
			ErrInvalidKeyFormat,
			hrp,
		)
	}
}

// GeneratePrivateKey creates a normal key from the provided entropy source
func GeneratePrivateKey(rand io.Reader) (PrivateKey, error) {
	var seed [SeedSize]byte
	if _, err := io.ReadFull(rand, seed[:]); err != nil {
		return PrivateKey{}, err
	}
	return newNormalPrivateKey(seed[:]), nil
}

// GenerateExtendedPrivateKey creates an extended key from the provided
// entropy source, applying the BIP32-Ed25519 bit constraints to kL
func GenerateExtendedPrivateKey(rand io.Reader) (PrivateKey, error) {
	var data [ExtendedPrivateKeySize]byte
	if _, err := io.ReadFull(rand, data[:]); err != nil {
		return PrivateKey{}, err
	}
	data[0] &= 0xf8
	data[31] &= 0x1f
	data[31] |= 0x40
	return newExtendedPrivateKey(data[:])
}

func newNormalPrivateKey(seed []byte) PrivateKey {
	edKey := ed25519.NewKeyFromSeed(seed)
	ret := PrivateKey{valid: true}
	copy(ret.key[:], edKey)
	copy(ret.public[:], edKey[SeedSize:])
	return ret
}

func newExtendedPrivateKey(data []byte) (PrivateKey, error) {
	if !isValidExtendedKey(data) {
		return PrivateKey{}, fmt.Errorf(
			"%w: extended private key scalar is not correctly clamped",
			ErrInvalidKeyFormat,
		)
	}
	ret := PrivateKey{extended: true, valid: true}
	copy(ret.key[:], data)
	pub, err := extendedPublicKey(ret.key[:32])
	if err != nil {
		return PrivateKey{}, fmt.Errorf("%w: %w", ErrInvalidKeyFormat, err)
	}
	ret.public = pub
	return ret, nil
}

// isValidExtendedKey checks the bits BIP32-Ed25519 fixes in kL: the three
// lowest are clear, the highest is clear and the second highest is set
func isValidExtendedKey(data []byte) bool {
	return data[0]&0x07 == 0 && data[31]&0xc0 == 0x40
}

func (k PrivateKey) IsExtended() bool {
	return k.extended
}

func (k PrivateKey) Public() PublicKey {
	return k.public
}

// Bytes returns the key material: the 32-byte seed for normal keys and the
// 64-byte kL || kR for extended keys
func (k PrivateKey) Bytes() []byte {
	if k.extended {
		ret := make([]byte, ExtendedPrivateKeySize)
		copy(ret, k.key[:])
		return ret
	}
	ret := make([]byte, SeedSize)
	copy(ret, k.key[:SeedSize])
	return ret
}

func (k PrivateKey) Bech32() string {
	if k.extended {
		return mustBech32Encode(Bech32PrefixExtendedPrivateKey, k.Bytes())
	}
	return mustBech32Encode(Bech32PrefixPrivateKey, k.Bytes())
}

// Sign signs message with the key
func (k PrivateKey) Sign(message []byte) (Signature, error) {
	if !k.valid {
		return Signature{}, fmt.Errorf("%w: empty private key", ErrInvalidKeyFormat)
	}
	if k.extended {
		return signExtended(&k.key, k.public, message)
	}
	var ret Signature
	copy(ret[:], ed25519.Sign(ed25519.PrivateKey(k.key[:]), message))
	return ret, nil
}
