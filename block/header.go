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

package block

import (
	"encoding/json"
	"fmt"

	"github.com/blinklabs-io/gochainlibs/codec"
	"github.com/blinklabs-io/gochainlibs/crypto"
	"github.com/blinklabs-io/gochainlibs/ledger/common"
)

type HeaderVersion uint16

const (
	HeaderVersionUnsigned     HeaderVersion = 0
	HeaderVersionBft          HeaderVersion = 1
	HeaderVersionGenesisPraos HeaderVersion = 2
)

const (
	// version, content size, epoch, slot, chain length, content hash, parent hash
	CommonHeaderSize = 2 + 4 + 4 + 4 + 4 + common.Blake2b256Size + common.Blake2b256Size

	NodeIdSize       = 32
	VrfProofSize     = 96
	KesSignatureSize = 484

	BftProofSize          = crypto.PublicKeySize + crypto.SignatureSize
	GenesisPraosProofSize = NodeIdSize + VrfProofSize + KesSignatureSize
)

func (v HeaderVersion) String() string {
	switch v {
	case HeaderVersionUnsigned:
		return "Unsigned"
	case HeaderVersionBft:
		return "BFT"
	case HeaderVersionGenesisPraos:
		return "GenesisPraos"
	default:
		return fmt.Sprintf("unknown(%d)", uint16(v))
	}
}

// HeaderSize returns the size of a header of this version, without the
// size prefix
func (v HeaderVersion) HeaderSize() (int, bool) {
	switch v {
	case HeaderVersionUnsigned:
		return CommonHeaderSize, true
	case HeaderVersionBft:
		return CommonHeaderSize + BftProofSize, true
	case HeaderVersionGenesisPraos:
		return CommonHeaderSize + GenesisPraosProofSize, true
	default:
		return 0, false
	}
}

type BlockDate struct {
	Epoch uint32
	Slot  uint32
}

func (d BlockDate) String() string {
	return fmt.Sprintf("%d.%d", d.Epoch, d.Slot)
}

// BftProof is the leader signature of a BFT header
type BftProof struct {
	LeaderId  crypto.PublicKey
	Signature crypto.Signature
}

// GenesisPraosProof is the stake pool proof of a Genesis Praos header. It is
// parsed for its structure only
type GenesisPraosProof struct {
	NodeId       [NodeIdSize]byte
	VrfProof     [VrfProofSize]byte
	KesSignature [KesSignatureSize]byte
}

type Header struct {
	codec.DecodeStoreRaw
	Version           HeaderVersion
	ContentSize       uint32
	Date              BlockDate
	ChainLength       uint32
	ContentHash       common.Blake2b256
	ParentHash        common.Blake2b256
	BftProof          *BftProof
	GenesisPraosProof *GenesisPraosProof
}

func (h *Header) clone() *Header {
	ret := *h
	ret.SetRaw(h.Raw())
	if h.BftProof != nil {
		proof := *h.BftProof
		ret.BftProof = &proof
	}
	if h.GenesisPraosProof != nil {
		proof := *h.GenesisPraosProof
		ret.GenesisPraosProof = &proof
	}
	return &ret
}

// NewHeaderFromBytes decodes a header without its size prefix
func NewHeaderFromBytes(data []byte) (*Header, error) {
	r := codec.NewReader(data)
	ret, err := decodeHeader(r, len(data))
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func decodeHeader(r *codec.Reader, size int) (*Header, error) {
	start := r.Offset()
	remaining := r.Remaining()
	malformed := func(reason string, err error) error {
		return common.MalformedBlockError{
			Offset: r.Offset(),
			Reason: reason,
			Err:    err,
		}
	}
	ret := &Header{}
	version, err := r.ReadU16()
	if err != nil {
		return nil, malformed("header version", err)
	}
	ret.Version = HeaderVersion(version)
	expected, ok := ret.Version.HeaderSize()
	if !ok {
		return nil, common.MalformedBlockError{
			Offset: start,
			Reason: fmt.Sprintf("unknown header version %d", version),
		}
	}
	if expected != size {
		return nil, common.MalformedBlockError{
			Offset: start,
			Reason: fmt.Sprintf(
				"%s header must be %d bytes, declared %d",
				ret.Version,
				expected,
				size,
			),
		}
	}
	if ret.ContentSize, err = r.ReadU32(); err != nil {
		return nil, malformed("content size", err)
	}
	if ret.Date.Epoch, err = r.ReadU32(); err != nil {
		return nil, malformed("epoch", err)
	}
	if ret.Date.Slot, err = r.ReadU32(); err != nil {
		return nil, malformed("slot", err)
	}
	if ret.ChainLength, err = r.ReadU32(); err != nil {
		return nil, malformed("chain length", err)
	}
	if ret.ContentHash, err = common.DecodeBlake2b256(r); err != nil {
		return nil, malformed("content hash", err)
	}
	if ret.ParentHash, err = common.DecodeBlake2b256(r); err != nil {
		return nil, malformed("parent hash", err)
	}
	switch ret.Version {
	case HeaderVersionBft:
		proof := &BftProof{}
		if proof.LeaderId, err = common.DecodePublicKey(r); err != nil {
			return nil, malformed("leader id", err)
		}
		if err := r.ReadInto(proof.Signature[:]); err != nil {
			return nil, malformed("leader signature", err)
		}
		ret.BftProof = proof
	case HeaderVersionGenesisPraos:
		proof := &GenesisPraosProof{}
		if err := r.ReadInto(proof.NodeId[:]); err != nil {
			return nil, malformed("node id", err)
		}
		if err := r.ReadInto(proof.VrfProof[:]); err != nil {
			return nil, malformed("vrf proof", err)
		}
		if err := r.ReadInto(proof.KesSignature[:]); err != nil {
			return nil, malformed("kes signature", err)
		}
		ret.GenesisPraosProof = proof
	}
	ret.SetRaw(remaining[:size])
	return ret, nil
}

// encode writes the header without its size prefix
func (h *Header) encode(w *codec.Writer) error {
	w.PutU16(uint16(h.Version))
	w.PutU32(h.ContentSize)
	w.PutU32(h.Date.Epoch)
	w.PutU32(h.Date.Slot)
	w.PutU32(h.ChainLength)
	w.PutBytes(h.ContentHash[:])
	w.PutBytes(h.ParentHash[:])
	switch h.Version {
	case HeaderVersionUnsigned:
	case HeaderVersionBft:
		if h.BftProof == nil {
			return fmt.Errorf("%s header without proof", h.Version)
		}
		w.PutBytes(h.BftProof.LeaderId[:])
		w.PutBytes(h.BftProof.Signature[:])
	case HeaderVersionGenesisPraos:
		if h.GenesisPraosProof == nil {
			return fmt.Errorf("%s header without proof", h.Version)
		}
		w.PutBytes(h.GenesisPraosProof.NodeId[:])
		w.PutBytes(h.GenesisPraosProof.VrfProof[:])
		w.PutBytes(h.GenesisPraosProof.KesSignature[:])
	default:
		return fmt.Errorf("unknown header version %d", uint16(h.Version))
	}
	return nil
}

// Bytes returns the header without its size prefix
func (h *Header) Bytes() []byte {
	if raw := h.Raw(); raw != nil {
		return append([]byte{}, raw...)
	}
	size, _ := h.Version.HeaderSize()
	w := codec.NewWriter(size)
	if err := h.encode(w); err != nil {
		return nil
	}
	return w.Bytes()
}

// Id returns the block id: the hash of the header bytes
func (h *Header) Id() common.Blake2b256 {
	return common.Blake2b256Hash(h.Bytes())
}

func (h *Header) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Id          common.Blake2b256 `json:"id"`
		Version     string            `json:"version"`
		Date        string            `json:"date"`
		ChainLength uint32            `json:"chainLength"`
		ContentSize uint32            `json:"contentSize"`
		ContentHash common.Blake2b256 `json:"contentHash"`
		ParentHash  common.Blake2b256 `json:"parentHash"`
	}{
		Id:          h.Id(),
		Version:     h.Version.String(),
		Date:        h.Date.String(),
		ChainLength: h.ChainLength,
		ContentSize: h.ContentSize,
		ContentHash: h.ContentHash,
		ParentHash:  h.ParentHash,
	})
}
