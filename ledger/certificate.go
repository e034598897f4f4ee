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
	"errors"
	"fmt"
	"slices"

	"github.com/blinklabs-io/gochainlibs/codec"
	"github.com/blinklabs-io/gochainlibs/crypto"
	"github.com/blinklabs-io/gochainlibs/ledger/common"
)

type CertificateType uint8

const (
	CertificateTypeStakeDelegation CertificateType = 1
)

func (t CertificateType) String() string {
	switch t {
	case CertificateTypeStakeDelegation:
		return "StakeDelegation"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// StakeDelegation delegates the stake of a key to a pool
type StakeDelegation struct {
	StakeKey crypto.PublicKey
	PoolId   common.PoolId
}

// Bytes returns the certificate content covered by its signatures
func (d StakeDelegation) Bytes() []byte {
	ret := make([]byte, 0, crypto.PublicKeySize+common.PoolIdSize)
	ret = append(ret, d.StakeKey[:]...)
	ret = append(ret, d.PoolId[:]...)
	return ret
}

// Certificate is a signed statement carried by a transaction
type Certificate struct {
	certType        CertificateType
	stakeDelegation StakeDelegation
	signatures      []crypto.Signature
}

// NewStakeDelegationCertificate builds an unsigned stake delegation
func NewStakeDelegationCertificate(
	poolId common.PoolId,
	stakeKey crypto.PublicKey,
) *Certificate {
	return &Certificate{
		certType: CertificateTypeStakeDelegation,
		stakeDelegation: StakeDelegation{
			StakeKey: stakeKey,
			PoolId:   poolId,
		},
	}
}

func (c *Certificate) Type() CertificateType {
	return c.certType
}

func (c *Certificate) StakeDelegation() (StakeDelegation, bool) {
	if c.certType != CertificateTypeStakeDelegation {
		return StakeDelegation{}, false
	}
	return c.stakeDelegation, true
}

// Content returns the bytes covered by the certificate signatures
func (c *Certificate) Content() []byte {
	return c.stakeDelegation.Bytes()
}

// Sign appends a signature of the certificate content made with key
func (c *Certificate) Sign(key crypto.PrivateKey) error {
	sig, err := key.Sign(c.Content())
	if err != nil {
		return err
	}
	c.signatures = append(c.signatures, sig)
	return nil
}

func (c *Certificate) Signatures() []crypto.Signature {
	return slices.Clone(c.signatures)
}

func (c *Certificate) IsSigned() bool {
	return len(c.signatures) > 0
}

// Verify checks that the certificate is signed and that every signature was
// made by the stake key
func (c *Certificate) Verify() error {
	if !c.IsSigned() {
		return fmt.Errorf("%w: certificate is not signed", common.ErrMalformedCertificate)
	}
	content := c.Content()
	for idx, sig := range c.signatures {
		if !c.stakeDelegation.StakeKey.Verify(content, sig) {
			return fmt.Errorf(
				"%w: signature %d does not match stake key %s",
				common.ErrMalformedCertificate,
				idx,
				c.stakeDelegation.StakeKey.String(),
			)
		}
	}
	return nil
}

func (c *Certificate) clone() *Certificate {
	if c == nil {
		return nil
	}
	ret := *c
	ret.signatures = slices.Clone(c.signatures)
	return &ret
}

func (c *Certificate) encode(w *codec.Writer) error {
	w.PutU8(uint8(c.certType))
	w.PutBytes(c.Content())
	if err := w.PutLen8(len(c.signatures)); err != nil {
		return fmt.Errorf("%w: signature count: %w", common.ErrMalformedCertificate, err)
	}
	for _, sig := range c.signatures {
		if err := w.PutLen16(len(sig)); err != nil {
			return err
		}
		w.PutBytes(sig[:])
	}
	return nil
}

var errUnknownCertificateType = errors.New("unknown certificate type")

func decodeCertificate(r *codec.Reader) (*Certificate, error) {
	certType, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	ret := &Certificate{
		certType: CertificateType(certType),
	}
	switch ret.certType {
	case CertificateTypeStakeDelegation:
		if ret.stakeDelegation.StakeKey, err = common.DecodePublicKey(r); err != nil {
			return nil, err
		}
		var poolId common.Blake2b256
		if poolId, err = common.DecodeBlake2b256(r); err != nil {
			return nil, err
		}
		ret.stakeDelegation.PoolId = common.PoolId(poolId)
	default:
		return nil, fmt.Errorf("%w: %d", errUnknownCertificateType, certType)
	}
	sigCount, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	ret.signatures = make([]crypto.Signature, 0, sigCount)
	for range sigCount {
		sigLen, err := r.ReadU16()
		if err != nil {
			return nil, err
		}
		sigBytes, err := r.ReadBytes(int(sigLen))
		if err != nil {
			return nil, err
		}
		sig, err := crypto.NewSignatureFromBytes(sigBytes)
		if err != nil {
			return nil, err
		}
		ret.signatures = append(ret.signatures, sig)
	}
	return ret, nil
}
