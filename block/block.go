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
	"fmt"
	"iter"
	"log/slog"
	"math"
	"slices"

	"github.com/blinklabs-io/gochainlibs/codec"
	"github.com/blinklabs-io/gochainlibs/ledger"
	"github.com/blinklabs-io/gochainlibs/ledger/common"
)

type decodeConfig struct {
	logger           *slog.Logger
	skipContentCheck bool
}

type DecoderOptionFunc func(*decodeConfig)

// WithLogger specifies the logger object to use for debug output
func WithLogger(logger *slog.Logger) DecoderOptionFunc {
	return func(c *decodeConfig) {
		c.logger = logger
	}
}

// WithoutContentHashCheck skips comparing the content against the content
// hash declared in the header
func WithoutContentHashCheck() DecoderOptionFunc {
	return func(c *decodeConfig) {
		c.skipContentCheck = true
	}
}

// Block is a decoded block. It is immutable
type Block struct {
	codec.DecodeStoreRaw
	header    *Header
	fragments *Fragments
}

// NewBlockFromBytes decodes a block: the size prefixed header followed by
// the fragments it commits to
func NewBlockFromBytes(data []byte, opts ...DecoderOptionFunc) (*Block, error) {
	cfg := decodeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	r := codec.NewReader(data)
	headerSize, err := r.ReadU16()
	if err != nil {
		return nil, common.MalformedBlockError{
			Reason: "header size",
			Err:    err,
		}
	}
	headerReader, _, err := r.Sub(int(headerSize))
	if err != nil {
		return nil, common.MalformedBlockError{
			Offset: 2,
			Reason: "declared header size overruns buffer",
			Err:    err,
		}
	}
	header, err := decodeHeader(headerReader, int(headerSize))
	if err != nil {
		return nil, err
	}
	cfg.logger.Debug(
		"decoded block header",
		"component", "block",
		"id", header.Id().String(),
		"version", header.Version.String(),
		"date", header.Date.String(),
		"chain_length", header.ChainLength,
		"content_size", header.ContentSize,
	)
	if uint64(header.ContentSize) != uint64(r.Len()) {
		return nil, common.MalformedBlockError{
			Offset: r.Offset(),
			Reason: fmt.Sprintf(
				"declared content size %d, have %d bytes",
				header.ContentSize,
				r.Len(),
			),
		}
	}
	content := r.Remaining()
	if !cfg.skipContentCheck {
		contentHash := common.Blake2b256Hash(content)
		if contentHash != header.ContentHash {
			return nil, common.MalformedBlockError{
				Offset: r.Offset(),
				Reason: fmt.Sprintf(
					"content hash %s does not match declared %s",
					contentHash.String(),
					header.ContentHash.String(),
				),
			}
		}
	}
	fragments := &Fragments{}
	for !r.Empty() {
		offset := r.Offset()
		fragment, err := ledger.DecodeFragment(r)
		if err != nil {
			return nil, common.MalformedBlockError{
				Offset: offset,
				Reason: fmt.Sprintf("fragment %d", len(fragments.items)),
				Err:    err,
			}
		}
		cfg.logger.Debug(
			"decoded fragment",
			"component", "block",
			"index", len(fragments.items),
			"kind", fragment.Kind().String(),
			"size", len(fragment.Raw()),
		)
		fragments.items = append(fragments.items, fragment)
	}
	ret := &Block{
		header:    header,
		fragments: fragments,
	}
	ret.SetRaw(data)
	return ret, nil
}

// NewBlock assembles a block from a header and its fragments. The content
// size and content hash of the header are computed from the fragments
func NewBlock(header Header, fragments []*ledger.Fragment) (*Block, error) {
	var content []byte
	for idx, fragment := range fragments {
		if fragment == nil {
			return nil, fmt.Errorf("fragment %d is nil", idx)
		}
		content = append(content, fragment.Raw()...)
	}
	if uint64(len(content)) > math.MaxUint32 {
		return nil, fmt.Errorf(
			"%w: content size %d",
			codec.ErrLengthOverflow,
			len(content),
		)
	}
	header.ContentSize = uint32(len(content))
	header.ContentHash = common.Blake2b256Hash(content)
	header.SetRaw(nil)
	size, ok := header.Version.HeaderSize()
	if !ok {
		return nil, fmt.Errorf("unknown header version %d", uint16(header.Version))
	}
	w := codec.NewWriter(2 + size + len(content))
	if err := w.PutLen16(size); err != nil {
		return nil, err
	}
	if err := header.encode(w); err != nil {
		return nil, err
	}
	header.SetRaw(w.Bytes()[2:])
	w.PutBytes(content)
	ret := &Block{
		header: &header,
		fragments: &Fragments{
			items: slices.Clone(fragments),
		},
	}
	ret.SetRaw(w.Bytes())
	return ret, nil
}

// Id returns the hash of the block header
func (b *Block) Id() common.Blake2b256 {
	return b.header.Id()
}

// Header returns a copy of the block header
func (b *Block) Header() *Header {
	return b.header.clone()
}

func (b *Block) Fragments() *Fragments {
	return b.fragments
}

// Bytes returns the encoded block
func (b *Block) Bytes() []byte {
	return slices.Clone(b.Raw())
}

// Fragments is the ordered content of a block
type Fragments struct {
	items []*ledger.Fragment
}

func (f *Fragments) Len() int {
	return len(f.items)
}

// Size is an alias for Len
func (f *Fragments) Size() int {
	return f.Len()
}

// Get returns the fragment at index
func (f *Fragments) Get(index int) (*ledger.Fragment, error) {
	if index < 0 || index >= len(f.items) {
		return nil, common.IndexOutOfRangeError{
			Index: index,
			Size:  len(f.items),
		}
	}
	return f.items[index], nil
}

// GetByIndex is an alias for Get
func (f *Fragments) GetByIndex(index int) (*ledger.Fragment, error) {
	return f.Get(index)
}

// All iterates over the fragments in block order
func (f *Fragments) All() iter.Seq2[int, *ledger.Fragment] {
	return slices.All(f.items)
}
