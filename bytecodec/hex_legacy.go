// Copyright (C) MongoDB, Inc. 2026-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bytecodec

import (
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// The legacy decoders count, pad and pair characters as UTF-16 code units, the
// unit the strings they were written for were made of. Invalid UTF-8 bytes in
// s count as one U+FFFD unit each.

// DecodeHexLenient decodes s the way the padding decoder always has. If s has
// an odd number of UTF-16 units a '0' is prepended first, so "A" decodes to
// []byte{0x0A}. This silently changes the meaning of the leading byte.
//
// Characters are not validated. Each unit maps to its value as a base 16
// digit, or -1 when it is not one, and every byte is built as (hi << 4) + lo
// on signed integers before truncation. "G0" therefore decodes to 0xF0 and
// "0G" to 0xFF. Digits are the ASCII and full-width Latin letters a-f, plus
// every Unicode decimal digit in the Basic Multilingual Plane, so "０A"
// decodes to 0x0A.
//
// The only error is ErrEmptyInput.
func DecodeHexLenient(s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, ErrEmptyInput
	}
	units := utf16.Encode([]rune(s))
	if len(units)%2 != 0 {
		units = append([]uint16{'0'}, units...)
	}

	dst := make([]byte, len(units)/2)
	for i := 0; i < len(units); i += 2 {
		dst[i/2] = byte(digit(units[i])<<4 + digit(units[i+1]))
	}
	return dst, nil
}

// DecodeHexLegacy decodes s with the table-free decoder. It returns
// ErrEmptyInput for "" and ErrInvalidLength when s has an odd number of
// UTF-16 units.
//
// s is then upper-cased with full Unicode case mapping, which can lengthen
// it ("ß" becomes "SS", "ﬀ" becomes "FF"). Each unit of the result maps to
// HexIndex, and every byte is built as hi<<4 | lo on sign-extended integers,
// so "G5" decodes to 0xF5 and "3G" to 0xFF. A trailing unpaired unit left by
// the upper-casing is ignored.
func DecodeHexLegacy(s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, ErrEmptyInput
	}
	if n := len(utf16.Encode([]rune(s))); n%2 != 0 {
		return nil, errors.Wrapf(ErrInvalidLength, "decoding %d hex characters", n)
	}

	units := utf16.Encode([]rune(cases.Upper(language.Und).String(s)))
	dst := make([]byte, len(units)/2)
	for i := range dst {
		hi, lo := HexIndex(rune(units[2*i])), HexIndex(rune(units[2*i+1]))
		dst[i] = byte(int(hi)<<4 | int(lo))
	}
	return dst, nil
}

// HexIndex returns the position of c in "0123456789ABCDEF", or -1 when c does
// not occur in it. Lowercase letters are not found.
func HexIndex(c rune) int8 {
	if c >= 0x80 {
		return -1
	}
	return int8(strings.IndexByte(hextable, byte(c)))
}

// digit returns the value of the UTF-16 unit c as a base 16 digit, or -1.
func digit(c uint16) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	case 0xff21 <= c && c <= 0xff26: // full-width A-F
		return int(c-0xff21) + 10
	case 0xff41 <= c && c <= 0xff46: // full-width a-f
		return int(c-0xff41) + 10
	case c < 0x80 || utf16.IsSurrogate(rune(c)):
		return -1
	}

	r := rune(c)
	if !unicode.IsDigit(r) {
		return -1
	}
	// Decimal digits are assigned in contiguous runs of ten starting at zero.
	start := r
	for unicode.IsDigit(start - 1) {
		start--
	}
	return int(r-start) % 10
}
