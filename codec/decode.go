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

package codec

import (
	"encoding/binary"
)

// Reader is a bounds-checked cursor over a byte slice
type Reader struct {
	data   []byte
	offset int
	// base is the absolute offset of data[0], used for error reporting in
	// sub-readers
	base int
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Offset returns the absolute position of the cursor
func (r *Reader) Offset() int {
	return r.base + r.offset
}

// Len returns the number of unread bytes
func (r *Reader) Len() int {
	return len(r.data) - r.offset
}

// Empty returns true when all bytes have been consumed
func (r *Reader) Empty() bool {
	return r.Len() == 0
}

func (r *Reader) need(n int) error {
	if n < 0 || n > r.Len() {
		return ShortBufferError{
			Offset: r.Offset(),
			Need:   n,
			Have:   r.Len(),
		}
	}
	return nil
}

// next returns the next n bytes without copying and advances the cursor
func (r *Reader) next(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	ret := r.data[r.offset : r.offset+n]
	r.offset += n
	return ret, nil
}

func (r *Reader) PeekU8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	return r.data[r.offset], nil
}

func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.next(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) ReadU16() (uint16, error) {
	b, err := r.next(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *Reader) ReadU32() (uint32, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (r *Reader) ReadU64() (uint64, error) {
	b, err := r.next(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// ReadBytes returns a copy of the next n bytes
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	b, err := r.next(n)
	if err != nil {
		return nil, err
	}
	ret := make([]byte, n)
	copy(ret, b)
	return ret, nil
}

// ReadInto fills dst from the next len(dst) bytes. It is intended for
// fixed-size array fields, e.g. r.ReadInto(hash[:])
func (r *Reader) ReadInto(dst []byte) error {
	b, err := r.next(len(dst))
	if err != nil {
		return err
	}
	copy(dst, b)
	return nil
}

// Sub consumes the next n bytes and returns a Reader limited to them, along
// with the raw bytes of the section. Offsets reported by the returned Reader
// stay absolute
func (r *Reader) Sub(n int) (*Reader, []byte, error) {
	start := r.Offset()
	b, err := r.next(n)
	if err != nil {
		return nil, nil, err
	}
	return &Reader{data: b, base: start}, b, nil
}

// Consumed returns the bytes read so far
func (r *Reader) Consumed() []byte {
	return r.data[:r.offset]
}

// Remaining returns the unread bytes without consuming them
func (r *Reader) Remaining() []byte {
	return r.data[r.offset:]
}
