// Copyright (C) MongoDB, Inc. 2026-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bytecodec

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

const (
	hextable      = "0123456789ABCDEF"
	hextableLower = "0123456789abcdef"
)

// EncodeHex returns the uppercase hexadecimal encoding of src, high nibble
// first. For example, []byte{0x00, 0xa8} encodes to "00A8".
//
// If src is nil or empty, EncodeHex returns "" and ErrEmptyInput.
func EncodeHex(src []byte) (string, error) {
	if len(src) == 0 {
		return "", ErrEmptyInput
	}
	return string(appendHex(make([]byte, 0, len(src)*2), src, hextable)), nil
}

// EncodeHexFormatted is an alias of EncodeHex kept for callers of the
// formatted-integer encoder. Its output is identical to EncodeHex for every
// input.
func EncodeHexFormatted(src []byte) (string, error) { return EncodeHex(src) }

// EncodeHexLower is like EncodeHex but uses lowercase digits.
func EncodeHexLower(src []byte) (string, error) {
	if len(src) == 0 {
		return "", ErrEmptyInput
	}
	return string(appendHex(make([]byte, 0, len(src)*2), src, hextableLower)), nil
}

// EncodeByteHex returns the two-character uppercase encoding of b.
func EncodeByteHex(b byte) string {
	return string([]byte{hextable[b>>4], hextable[b&0x0f]})
}

// AppendHex appends the uppercase hexadecimal encoding of src to dst and
// returns the extended buffer. An empty src leaves dst unchanged.
func AppendHex(dst, src []byte) []byte {
	return appendHex(dst, src, hextable)
}

func appendHex(dst, src []byte, table string) []byte {
	for _, v := range src {
		dst = append(dst, table[v>>4], table[v&0x0f])
	}
	return dst
}

// DecodeHex returns the bytes represented by the hexadecimal string s. Upper
// and lower case digits are both accepted.
//
// DecodeHex is strict: it returns ErrEmptyInput for "", ErrOddLength when s
// has an odd number of characters, and an InvalidByteError for any character
// that is not a hexadecimal digit. New callers should prefer it over
// DecodeHexLenient and DecodeHexLegacy.
func DecodeHex(s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, ErrEmptyInput
	}
	if len(s)%2 != 0 {
		return nil, errors.Wrapf(ErrOddLength, "decoding %d hex characters", len(s))
	}

	dst := make([]byte, len(s)/2)
	if _, err := hex.Decode(dst, []byte(s)); err != nil {
		// The length is even, so an invalid byte is the only possible failure.
		if ibe, ok := err.(hex.InvalidByteError); ok {
			return nil, InvalidByteError{Byte: byte(ibe), Offset: strings.IndexByte(s, byte(ibe))}
		}
		return nil, err
	}
	return dst, nil
}
