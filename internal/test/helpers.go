package test

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// ConcatHex decodes each hex string and joins the results. It is used to
// spell out expected encodings field by field
func ConcatHex(parts ...string) []byte {
	var ret []byte
	for _, part := range parts {
		ret = append(ret, DecodeHexString(part)...)
	}
	return ret
}

// Flip returns a copy of data with the bit at the given position inverted
func Flip(data []byte, bit int) []byte {
	ret := make([]byte, len(data))
	copy(ret, data)
	ret[bit/8] ^= 1 << (bit % 8)
	return ret
}
