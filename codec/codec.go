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
	"errors"
	"fmt"
)

// ErrShortBuffer is returned (wrapped in a ShortBufferError) when a read or a
// declared length goes past the end of the available data
var ErrShortBuffer = errors.New("short buffer")

// ShortBufferError describes a read that would cross the end of the buffer
type ShortBufferError struct {
	Offset int
	Need   int
	Have   int
}

func (e ShortBufferError) Error() string {
	return fmt.Sprintf(
		"short buffer at offset %d: need %d bytes, have %d",
		e.Offset,
		e.Need,
		e.Have,
	)
}

func (ShortBufferError) Is(target error) bool {
	return target == ErrShortBuffer
}

// ErrLengthOverflow is returned when a length does not fit its wire field
var ErrLengthOverflow = errors.New("length does not fit in field")

type DecodeStoreRaw struct {
	rawData []byte
}

// Raw returns the original bytes for the object
func (d *DecodeStoreRaw) Raw() []byte {
	return d.rawData
}

// SetRaw stores a copy of the provided bytes as the original bytes for the object
func (d *DecodeStoreRaw) SetRaw(data []byte) {
	if data == nil {
		d.rawData = nil
		return
	}
	d.rawData = make([]byte, len(data))
	copy(d.rawData, data)
}
