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
	"fmt"
	"math"
)

// Writer accumulates the canonical encoding of a value
type Writer struct {
	buf []byte
}

func NewWriter(sizeHint int) *Writer {
	return &Writer{
		buf: make([]byte, 0, max(sizeHint, 0)),
	}
}

func (w *Writer) PutU8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *Writer) PutU16(v uint16) {
	w.buf = binary.BigEndian.AppendUint16(w.buf, v)
}

func (w *Writer) PutU32(v uint32) {
	w.buf = binary.BigEndian.AppendUint32(w.buf, v)
}

func (w *Writer) PutU64(v uint64) {
	w.buf = binary.BigEndian.AppendUint64(w.buf, v)
}

func (w *Writer) PutBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// PutLen8 writes a count or length that must fit in a single byte
func (w *Writer) PutLen8(n int) error {
	if n < 0 || n > math.MaxUint8 {
		return fmt.Errorf("%w: %d exceeds %d", ErrLengthOverflow, n, math.MaxUint8)
	}
	w.PutU8(uint8(n))
	return nil
}

// PutLen16 writes a length that must fit in two bytes
func (w *Writer) PutLen16(n int) error {
	if n < 0 || n > math.MaxUint16 {
		return fmt.Errorf("%w: %d exceeds %d", ErrLengthOverflow, n, math.MaxUint16)
	}
	w.PutU16(uint16(n))
	return nil
}

func (w *Writer) Len() int {
	return len(w.buf)
}

// Bytes returns the encoded bytes. The returned slice aliases the Writer's
// buffer until the next Put call
func (w *Writer) Bytes() []byte {
	return w.buf
}
